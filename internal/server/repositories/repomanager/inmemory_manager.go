package repomanager

import (
	"context"

	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/bankaccounts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/loginattempts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/memory"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/outbox"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/pins"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/users"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/verificationtokens"
	"github.com/dmitrijs2005/pegasus/internal/timex"
)

// InMemoryRepositoryManager serves every repository from one memory.Store.
// The DBTX arguments are ignored.
type InMemoryRepositoryManager struct {
	*memory.Store
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.Store.Users()
}

func (m *InMemoryRepositoryManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return m.Store.RefreshTokens()
}

func (m *InMemoryRepositoryManager) VerificationTokens(dbx.DBTX) verificationtokens.Repository {
	return m.Store.VerificationTokens()
}

func (m *InMemoryRepositoryManager) Pins(dbx.DBTX) pins.Repository {
	return m.Store.Pins()
}

func (m *InMemoryRepositoryManager) LoginAttempts(dbx.DBTX) loginattempts.Repository {
	return m.Store.LoginAttempts()
}

func (m *InMemoryRepositoryManager) Outbox(dbx.DBTX) outbox.Repository {
	return m.Store.Outbox()
}

func (m *InMemoryRepositoryManager) BankAccounts(dbx.DBTX) bankaccounts.Repository {
	return m.Store.BankAccounts()
}

func NewInMemoryRepositoryManager(clock timex.Clock) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{Store: memory.NewStore(clock)}
}
