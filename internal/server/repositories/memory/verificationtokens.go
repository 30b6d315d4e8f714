package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type VerificationTokensRepository struct {
	s *Store
}

func (s *Store) VerificationTokens() *VerificationTokensRepository {
	return &VerificationTokensRepository{s: s}
}

func (r *VerificationTokensRepository) Upsert(ctx context.Context, t *models.VerificationToken) error {
	defer r.s.lock(ctx)()

	for k, existing := range r.s.data.verification {
		if existing.UserID == t.UserID && existing.Purpose == t.Purpose {
			delete(r.s.data.verification, k)
		}
	}
	stored := *t
	stored.Used = false
	stored.CreatedAt = r.s.now()
	r.s.data.verification[t.Token] = stored
	return nil
}

func (r *VerificationTokensRepository) Find(ctx context.Context, token string) (*models.VerificationToken, error) {
	defer r.s.lock(ctx)()

	t, ok := r.s.data.verification[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *VerificationTokensRepository) FindValid(ctx context.Context, token, purpose string, now time.Time) (*models.VerificationToken, error) {
	defer r.s.lock(ctx)()

	t, ok := r.s.data.verification[token]
	if !ok || t.Purpose != purpose || t.Used || t.ExpiresAt.Before(now) {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *VerificationTokensRepository) MarkUsed(ctx context.Context, token, purpose string, now time.Time) (bool, error) {
	defer r.s.lock(ctx)()

	t, ok := r.s.data.verification[token]
	if !ok || t.Purpose != purpose || t.Used || t.ExpiresAt.Before(now) {
		return false, nil
	}
	t.Used = true
	r.s.data.verification[token] = t
	return true, nil
}

func (r *VerificationTokensRepository) DeleteExpired(ctx context.Context, purpose string, now time.Time) (int64, error) {
	defer r.s.lock(ctx)()

	var n int64
	for k, t := range r.s.data.verification {
		if t.ExpiresAt.Before(now) && (purpose == "" || t.Purpose == purpose) {
			delete(r.s.data.verification, k)
			n++
		}
	}
	return n, nil
}

// ByPurpose returns a copy of every stored token with the given purpose.
func (r *VerificationTokensRepository) ByPurpose(purpose string) []models.VerificationToken {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.VerificationToken
	for _, t := range r.s.data.verification {
		if t.Purpose == purpose {
			out = append(out, t)
		}
	}
	return out
}
