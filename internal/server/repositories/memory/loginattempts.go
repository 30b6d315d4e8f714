package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/google/uuid"
)

type LoginAttemptsRepository struct {
	s *Store
}

func (s *Store) LoginAttempts() *LoginAttemptsRepository {
	return &LoginAttemptsRepository{s: s}
}

func (r *LoginAttemptsRepository) Create(ctx context.Context, a *models.LoginAttempt) error {
	defer r.s.lock(ctx)()

	a.ID = uuid.NewString()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.s.now()
	}
	r.s.data.attempts = append(r.s.data.attempts, *a)
	return nil
}

func (r *LoginAttemptsRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.LoginAttempt, error) {
	defer r.s.lock(ctx)()

	var out []*models.LoginAttempt
	for i := len(r.s.data.attempts) - 1; i >= 0; i-- {
		a := r.s.data.attempts[i]
		if a.UserID != userID {
			continue
		}
		out = append(out, &a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *LoginAttemptsRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*models.LoginAttempt, error) {
	defer r.s.lock(ctx)()

	var out []*models.LoginAttempt
	for _, a := range r.s.data.attempts {
		if !a.CreatedAt.Before(from) && a.CreatedAt.Before(to) {
			out = append(out, &a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
