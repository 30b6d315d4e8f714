package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/timex"
)

// RefreshTokenService keeps the server-side record of issued refresh tokens.
// Several tokens may be live per user at once, one per session.
type RefreshTokenService struct {
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
}

func NewRefreshTokenService(m repomanager.RepositoryManager, clock timex.Clock) *RefreshTokenService {
	return &RefreshTokenService{repomanager: m, clock: clock}
}

func (s *RefreshTokenService) Save(ctx context.Context, userID, token string, expiresAt time.Time) (*models.RefreshToken, error) {
	return s.save(ctx, s.repomanager.Conn(), userID, token, expiresAt)
}

func (s *RefreshTokenService) save(ctx context.Context, db dbx.DBTX, userID, token string, expiresAt time.Time) (*models.RefreshToken, error) {
	rt, err := s.repomanager.RefreshTokens(db).Create(ctx, userID, token, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("error saving refresh token: %w", err)
	}
	return rt, nil
}

// FindByValue returns the record with its owner, or nil when unknown.
func (s *RefreshTokenService) FindByValue(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, err := s.repomanager.RefreshTokens(s.repomanager.Conn()).Find(ctx, token)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	return rt, nil
}

// DeleteByID reports whether the record still existed.
func (s *RefreshTokenService) DeleteByID(ctx context.Context, id string) (bool, error) {
	return s.repomanager.RefreshTokens(s.repomanager.Conn()).DeleteByID(ctx, id)
}

// DeleteByValue is idempotent.
func (s *RefreshTokenService) DeleteByValue(ctx context.Context, token string) error {
	if err := s.repomanager.RefreshTokens(s.repomanager.Conn()).Delete(ctx, token); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

func (s *RefreshTokenService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.repomanager.RefreshTokens(s.repomanager.Conn()).DeleteExpired(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("error sweeping refresh tokens: %w", err)
	}
	return n, nil
}
