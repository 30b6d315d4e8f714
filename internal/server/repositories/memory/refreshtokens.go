package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/google/uuid"
)

type RefreshTokensRepository struct {
	s *Store
}

func (s *Store) RefreshTokens() *RefreshTokensRepository {
	return &RefreshTokensRepository{s: s}
}

func (r *RefreshTokensRepository) Create(ctx context.Context, userID string, token string, expiresAt time.Time) (*models.RefreshToken, error) {
	defer r.s.lock(ctx)()

	rt := models.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: r.s.now(),
	}
	r.s.data.refresh[rt.ID] = rt
	return &rt, nil
}

func (r *RefreshTokensRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	defer r.s.lock(ctx)()

	for _, rt := range r.s.data.refresh {
		if rt.Token != token {
			continue
		}
		u, ok := r.s.data.users[rt.UserID]
		if !ok {
			return nil, common.ErrorNotFound
		}
		rt.Owner = &u
		return &rt, nil
	}
	return nil, common.ErrorNotFound
}

func (r *RefreshTokensRepository) Delete(ctx context.Context, token string) error {
	defer r.s.lock(ctx)()

	for id, rt := range r.s.data.refresh {
		if rt.Token == token {
			delete(r.s.data.refresh, id)
		}
	}
	return nil
}

func (r *RefreshTokensRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	defer r.s.lock(ctx)()

	if _, ok := r.s.data.refresh[id]; !ok {
		return false, nil
	}
	delete(r.s.data.refresh, id)
	return true, nil
}

func (r *RefreshTokensRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	defer r.s.lock(ctx)()

	var n int64
	for id, rt := range r.s.data.refresh {
		if rt.ExpiresAt.Before(now) {
			delete(r.s.data.refresh, id)
			n++
		}
	}
	return n, nil
}
