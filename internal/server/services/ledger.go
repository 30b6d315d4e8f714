package services

import (
	"context"

	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
)

// defaultAttemptsLimit caps List when the caller passes no limit.
const defaultAttemptsLimit = 50

// LoginAttemptLedger appends login outcomes for auditing. Writing to it
// never fails a login.
type LoginAttemptLedger struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewLoginAttemptLedger(m repomanager.RepositoryManager, logger logging.Logger) *LoginAttemptLedger {
	return &LoginAttemptLedger{repomanager: m, logger: logger.With("module", "ledger")}
}

// Record stores the attempt and logs, rather than returns, any failure.
func (l *LoginAttemptLedger) Record(ctx context.Context, userID, ip, userAgent string, success bool) {
	a := &models.LoginAttempt{
		UserID:    userID,
		IPAddress: ip,
		UserAgent: userAgent,
		Success:   success,
	}
	if err := l.repomanager.LoginAttempts(l.repomanager.Conn()).Create(ctx, a); err != nil {
		l.logger.Error(ctx, "login attempt not recorded", "user_id", userID, "success", success, "error", err)
	}
}

// List returns the newest attempts of userID first.
func (l *LoginAttemptLedger) List(ctx context.Context, userID string, limit int) ([]*models.LoginAttempt, error) {
	if limit <= 0 || limit > defaultAttemptsLimit {
		limit = defaultAttemptsLimit
	}
	return l.repomanager.LoginAttempts(l.repomanager.Conn()).ListByUser(ctx, userID, limit)
}
