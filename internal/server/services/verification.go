package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/config"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/timex"
)

// verificationTokenBytes gives 256 bits of entropy per token.
const verificationTokenBytes = 32

// VerificationService issues and validates the opaque single-use tokens
// behind email verification and password reset.
type VerificationService struct {
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
	ttl         map[string]time.Duration
	logger      logging.Logger
}

func NewVerificationService(m repomanager.RepositoryManager, cfg *config.Config, clock timex.Clock, logger logging.Logger) *VerificationService {
	return &VerificationService{
		repomanager: m,
		clock:       clock,
		ttl: map[string]time.Duration{
			common.PurposeVerifyEmail:   cfg.VerificationTokenValidityDuration,
			common.PurposeResetPassword: cfg.ResetTokenValidityDuration,
		},
		logger: logger.With("module", "verification"),
	}
}

// Issue creates a fresh token for userID and purpose. Any earlier token of
// the same purpose stops working.
func (s *VerificationService) Issue(ctx context.Context, userID, purpose string) (*models.VerificationToken, error) {
	return s.issue(ctx, s.repomanager.Conn(), userID, purpose)
}

func (s *VerificationService) issue(ctx context.Context, db dbx.DBTX, userID, purpose string) (*models.VerificationToken, error) {
	ttl, ok := s.ttl[purpose]
	if !ok {
		return nil, common.NewValidationError("unknown token purpose %q", purpose)
	}

	value, err := common.MakeRandHexString(verificationTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	t := &models.VerificationToken{
		Token:     value,
		UserID:    userID,
		Purpose:   purpose,
		ExpiresAt: s.clock.Now().Add(ttl),
	}
	if err := s.repomanager.VerificationTokens(db).Upsert(ctx, t); err != nil {
		return nil, fmt.Errorf("error storing token: %w", err)
	}
	return t, nil
}

// Find returns the token in whatever state it is, or nil when unknown.
func (s *VerificationService) Find(ctx context.Context, value string) (*models.VerificationToken, error) {
	t, err := s.repomanager.VerificationTokens(s.repomanager.Conn()).Find(ctx, value)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	return t, err
}

// FindValid returns the token only while it is unused and not expired,
// nil otherwise.
func (s *VerificationService) FindValid(ctx context.Context, value, purpose string) (*models.VerificationToken, error) {
	t, err := s.repomanager.VerificationTokens(s.repomanager.Conn()).FindValid(ctx, value, purpose, s.clock.Now())
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	return t, err
}

// MarkUsed consumes a valid token of purpose. It reports false when the
// token is unknown, expired or already consumed.
func (s *VerificationService) MarkUsed(ctx context.Context, value, purpose string) (bool, error) {
	return s.repomanager.VerificationTokens(s.repomanager.Conn()).MarkUsed(ctx, value, purpose, s.clock.Now())
}

// SweepExpired deletes expired tokens of purpose, or of every purpose when
// purpose is empty.
func (s *VerificationService) SweepExpired(ctx context.Context, purpose string) (int64, error) {
	n, err := s.repomanager.VerificationTokens(s.repomanager.Conn()).DeleteExpired(ctx, purpose, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("error sweeping tokens: %w", err)
	}
	if n > 0 {
		s.logger.Debug(ctx, "expired tokens swept", "purpose", purpose, "count", n)
	}
	return n, nil
}
