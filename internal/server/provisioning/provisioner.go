// Package provisioning opens the first bank account of a newly registered
// user. It consumes user.registered events, so registration never waits on
// it.
package provisioning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/messaging"
	"github.com/dmitrijs2005/pegasus/internal/server/config"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/bankaccounts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
)

const (
	accountNumberDigits = 7
	maxNumberAttempts   = 10
	defaultAccountType  = "savings"
)

var ErrNoFreeAccountNumber = fmt.Errorf("no free account number: %w", common.ErrorInternal)

type Provisioner struct {
	repomanager repomanager.RepositoryManager
	prefix      string
	currency    string
	logger      logging.Logger
}

func NewProvisioner(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *Provisioner {
	return &Provisioner{
		repomanager: m,
		prefix:      cfg.AccountNumberPrefix,
		currency:    cfg.DefaultCurrency,
		logger:      logger.With("module", "provisioning"),
	}
}

// Bindings maps the routing keys this component consumes to handlers.
func (p *Provisioner) Bindings() map[string]messaging.Handler {
	return map[string]messaging.Handler{
		common.RoutingKeyUserRegistered: p.HandleUserRegistered,
	}
}

// HandleUserRegistered is a messaging.Handler. Malformed events are dropped;
// storage failures requeue the message.
func (p *Provisioner) HandleUserRegistered(ctx context.Context, body []byte) bool {
	var ev models.UserRegisteredEvent
	if err := json.Unmarshal(body, &ev); err != nil || ev.UserID == "" {
		p.logger.Error(ctx, "malformed user.registered event dropped", "error", err)
		return true
	}

	if _, err := p.Provision(ctx, ev); err != nil {
		p.logger.Error(ctx, "account provisioning failed", "user_id", ev.UserID, "error", err)
		return false
	}
	return true
}

// Provision creates the first account for the user. Redelivered events are
// harmless: a user who already has an account gets nil and no error. The
// count and the insert share one transaction holding a per-user lock, so
// concurrent deliveries of the same event open one account.
func (p *Provisioner) Provision(ctx context.Context, ev models.UserRegisteredEvent) (*models.BankAccount, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		account, err := p.provisionOnce(ctx, ev)
		if errors.Is(err, common.ErrorConflict) {
			// lost a race for the number; the insert aborted the transaction
			continue
		}
		if err != nil {
			return nil, err
		}

		if account == nil {
			p.logger.Debug(ctx, "user already has an account", "user_id", ev.UserID)
			return nil, nil
		}
		p.logger.Info(ctx, "account created", "user_id", ev.UserID, "account_number", account.AccountNumber)
		return account, nil
	}
	return nil, ErrNoFreeAccountNumber
}

func (p *Provisioner) provisionOnce(ctx context.Context, ev models.UserRegisteredEvent) (*models.BankAccount, error) {
	var account *models.BankAccount

	err := p.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := p.repomanager.BankAccounts(tx)

		if err := repo.LockUser(ctx, ev.UserID); err != nil {
			return err
		}

		n, err := repo.CountByUser(ctx, ev.UserID)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		number, err := p.generateAccountNumber(ctx, repo)
		if err != nil {
			return err
		}

		account, err = repo.Create(ctx, &models.BankAccount{
			UserID:        ev.UserID,
			AccountNumber: number,
			AccountName:   accountName(ev),
			AccountType:   defaultAccountType,
			Currency:      p.currency,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// generateAccountNumber draws prefix + 7 random digits until it finds one
// that is not in use.
func (p *Provisioner) generateAccountNumber(ctx context.Context, repo bankaccounts.Repository) (string, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		digits, err := common.MakeRandDigits(accountNumberDigits)
		if err != nil {
			return "", err
		}
		number := p.prefix + digits

		taken, err := repo.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", ErrNoFreeAccountNumber
}

func accountName(ev models.UserRegisteredEvent) string {
	name := ev.FirstName
	if ev.LastName != "" {
		name += " " + ev.LastName
	}
	if name == "" {
		return ev.Email
	}
	return name
}
