package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/google/uuid"
)

type BankAccountsRepository struct {
	s *Store
}

func (s *Store) BankAccounts() *BankAccountsRepository {
	return &BankAccountsRepository{s: s}
}

func (r *BankAccountsRepository) Create(ctx context.Context, a *models.BankAccount) (*models.BankAccount, error) {
	defer r.s.lock(ctx)()

	for _, existing := range r.s.data.accounts {
		if existing.AccountNumber == a.AccountNumber {
			return nil, fmt.Errorf("account number %s: %w", a.AccountNumber, common.ErrorConflict)
		}
	}
	a.ID = uuid.NewString()
	a.CreatedAt = r.s.now()
	r.s.data.accounts[a.ID] = *a
	return a, nil
}

func (r *BankAccountsRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	defer r.s.lock(ctx)()

	for _, a := range r.s.data.accounts {
		if a.AccountNumber == number {
			return true, nil
		}
	}
	return false, nil
}

// LockUser is a no-op: WithTx already holds the store lock.
func (r *BankAccountsRepository) LockUser(context.Context, string) error {
	return nil
}

func (r *BankAccountsRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	defer r.s.lock(ctx)()

	n := 0
	for _, a := range r.s.data.accounts {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *BankAccountsRepository) ListByUser(ctx context.Context, userID string) ([]*models.BankAccount, error) {
	defer r.s.lock(ctx)()

	var out []*models.BankAccount
	for _, a := range r.s.data.accounts {
		if a.UserID == userID {
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
