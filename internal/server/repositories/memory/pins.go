package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type PinsRepository struct {
	s *Store
}

func (s *Store) Pins() *PinsRepository {
	return &PinsRepository{s: s}
}

func (r *PinsRepository) Upsert(ctx context.Context, p *models.Pin) error {
	defer r.s.lock(ctx)()

	r.s.data.pins[p.AccountID] = models.Pin{
		AccountID: p.AccountID,
		Salt:      append([]byte(nil), p.Salt...),
		Hash:      append([]byte(nil), p.Hash...),
		UpdatedAt: r.s.now(),
	}
	return nil
}

func (r *PinsRepository) Get(ctx context.Context, accountID string) (*models.Pin, error) {
	defer r.s.lock(ctx)()

	p, ok := r.s.data.pins[accountID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (r *PinsRepository) RecordFailure(ctx context.Context, accountID string, now time.Time, maxAttempts int, lockedSince time.Time) (*models.Pin, error) {
	defer r.s.lock(ctx)()

	p, ok := r.s.data.pins[accountID]
	if !ok {
		return nil, common.ErrAccountLocked
	}
	if p.IsLocked && p.LastFailedAttempt != nil && p.LastFailedAttempt.After(lockedSince) {
		return nil, common.ErrAccountLocked
	}

	if p.IsLocked {
		p.FailedAttempts = 1
	} else {
		p.FailedAttempts++
	}
	p.IsLocked = p.FailedAttempts >= maxAttempts
	p.LastFailedAttempt = &now
	p.UpdatedAt = r.s.now()
	r.s.data.pins[accountID] = p

	return &p, nil
}

func (r *PinsRepository) ResetFailures(ctx context.Context, accountID string, lockedSince time.Time) (bool, error) {
	defer r.s.lock(ctx)()

	p, ok := r.s.data.pins[accountID]
	if !ok {
		return false, nil
	}
	if p.IsLocked && p.LastFailedAttempt != nil && p.LastFailedAttempt.After(lockedSince) {
		return false, nil
	}
	p.FailedAttempts = 0
	p.IsLocked = false
	p.LastFailedAttempt = nil
	p.UpdatedAt = r.s.now()
	r.s.data.pins[accountID] = p
	return true, nil
}
