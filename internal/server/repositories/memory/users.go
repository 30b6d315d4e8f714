package memory

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/google/uuid"
)

type UsersRepository struct {
	s *Store
}

func (s *Store) Users() *UsersRepository {
	return &UsersRepository{s: s}
}

func (r *UsersRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	defer r.s.lock(ctx)()

	email := strings.ToLower(user.Email)
	if _, taken := r.s.data.emails[email]; taken {
		return nil, common.ErrEmailTaken
	}

	now := r.s.now()
	user.ID = uuid.NewString()
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now

	r.s.data.users[user.ID] = *user
	r.s.data.emails[email] = user.ID
	return user, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	defer r.s.lock(ctx)()

	id, ok := r.s.data.emails[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := r.s.data.users[id]
	return &u, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	defer r.s.lock(ctx)()

	u, ok := r.s.data.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *UsersRepository) update(ctx context.Context, id string, fn func(u *models.User)) error {
	defer r.s.lock(ctx)()

	u, ok := r.s.data.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	fn(&u)
	u.UpdatedAt = r.s.now()
	r.s.data.users[id] = u
	return nil
}

func (r *UsersRepository) MarkVerified(ctx context.Context, id string) error {
	return r.update(ctx, id, func(u *models.User) { u.IsVerified = true })
}

func (r *UsersRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.update(ctx, id, func(u *models.User) { u.PasswordHash = passwordHash })
}
