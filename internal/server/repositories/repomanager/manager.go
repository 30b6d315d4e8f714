// Package repomanager wires repository implementations together behind a
// single RepositoryManager so services stay independent of the backing store.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/bankaccounts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/loginattempts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/outbox"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/pins"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/users"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/verificationtokens"
)

// RepositoryManager vends repositories bound to a DBTX handle (the default
// connection from Conn, or the tx passed to a WithTx callback).
type RepositoryManager interface {
	dbx.Transactor

	RunMigrations(ctx context.Context) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	VerificationTokens(db dbx.DBTX) verificationtokens.Repository
	Pins(db dbx.DBTX) pins.Repository
	LoginAttempts(db dbx.DBTX) loginattempts.Repository
	Outbox(db dbx.DBTX) outbox.Repository
	BankAccounts(db dbx.DBTX) bankaccounts.Repository
}
