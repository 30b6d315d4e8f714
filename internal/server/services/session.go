// Package services contains the server-side business logic: the session
// lifecycle (registration, login, verification, token rotation, password
// reset) and the PIN guard, together with the token stores they rely on.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/cryptox"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/auth"
	"github.com/dmitrijs2005/pegasus/internal/server/config"
	pmail "github.com/dmitrijs2005/pegasus/internal/server/mail"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/ratelimit"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/timex"
)

type RegisterInput struct {
	FirstName  string
	LastName   string
	MiddleName string
	Email      string
	Password   string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User   models.PublicUser
	Tokens *auth.TokenPair
}

// SessionService drives the account and session lifecycle.
type SessionService struct {
	repomanager  repomanager.RepositoryManager
	codec        *auth.Codec
	passwords    cryptox.PasswordHasher
	verification *VerificationService
	refresh      *RefreshTokenService
	ledger       *LoginAttemptLedger
	mailer       pmail.Dispatcher
	links        pmail.Links
	clock        timex.Clock
	logger       logging.Logger

	eventsExchange string

	// resendLimiter throttles verification emails per user. Nil disables it.
	resendLimiter ratelimit.Limiter

	dummyOnce sync.Once
	dummyHash string
}

func NewSessionService(
	m repomanager.RepositoryManager,
	cfg *config.Config,
	codec *auth.Codec,
	passwords cryptox.PasswordHasher,
	mailer pmail.Dispatcher,
	clock timex.Clock,
	logger logging.Logger,
) *SessionService {
	return &SessionService{
		repomanager:    m,
		codec:          codec,
		passwords:      passwords,
		verification:   NewVerificationService(m, cfg, clock, logger),
		refresh:        NewRefreshTokenService(m, clock),
		ledger:         NewLoginAttemptLedger(m, logger),
		mailer:         mailer,
		links:          pmail.Links{BaseURL: cfg.MailLinkBaseURL},
		clock:          clock,
		logger:         logger.With("module", "session"),
		eventsExchange: cfg.EventsExchange,
	}
}

// WithResendLimiter enables throttling of verification emails.
func (s *SessionService) WithResendLimiter(l ratelimit.Limiter) *SessionService {
	s.resendLimiter = l
	return s
}

func (s *SessionService) Verification() *VerificationService { return s.verification }
func (s *SessionService) RefreshTokens() *RefreshTokenService { return s.refresh }
func (s *SessionService) Ledger() *LoginAttemptLedger { return s.ledger }

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", common.NewValidationError("invalid email address")
	}
	return email, nil
}

func validatePassword(password string) error {
	if password == "" {
		return common.NewValidationError("password is required")
	}
	return nil
}

// Register creates an unverified account. The user row, its verification
// token and the user.registered event commit together; the verification
// email goes out afterwards and its failure does not fail registration.
func (s *SessionService) Register(ctx context.Context, in RegisterInput) (*models.PublicUser, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return nil, common.NewValidationError("first and last name are required")
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	_, err = s.repomanager.Users(s.repomanager.Conn()).GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	var (
		user  *models.User
		token *models.VerificationToken
	)
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			FirstName:    strings.TrimSpace(in.FirstName),
			LastName:     strings.TrimSpace(in.LastName),
			MiddleName:   strings.TrimSpace(in.MiddleName),
			Email:        email,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}

		token, err = s.verification.issue(ctx, tx, user.ID, common.PurposeVerifyEmail)
		if err != nil {
			return err
		}

		return s.repomanager.Outbox(tx).Enqueue(ctx, s.eventsExchange, common.RoutingKeyUserRegistered, models.UserRegisteredEvent{
			UserID:    user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.sendVerification(ctx, user, token.Token)

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	pub := user.Public()
	return &pub, nil
}

func (s *SessionService) sendVerification(ctx context.Context, user *models.User, token string) {
	ok := s.mailer.Send(ctx, pmail.TemplateEmailVerification, user.Email, map[string]string{
		"name": user.FirstName,
		"url":  s.links.Verification(token),
	})
	if !ok {
		s.logger.Error(ctx, "error sending email verification mail", "user_id", user.ID)
	}
}

// reissueVerification rotates the verification token and mails the new one,
// unless the resend throttle says no. It reports whether a mail was sent.
func (s *SessionService) reissueVerification(ctx context.Context, user *models.User) (bool, error) {
	if s.resendLimiter != nil {
		d, err := s.resendLimiter.Allow(ctx, "resend:"+user.ID)
		if err != nil {
			s.logger.Warn(ctx, "resend limiter failed", "error", err)
		}
		if !d.Allowed {
			s.logger.Info(ctx, "verification resend throttled", "user_id", user.ID, "retry_after", d.RetryAfter)
			return false, nil
		}
	}

	token, err := s.verification.Issue(ctx, user.ID, common.PurposeVerifyEmail)
	if err != nil {
		return false, err
	}
	s.sendVerification(ctx, user, token.Token)
	return true, nil
}

// checkDummyPassword burns the same bcrypt work as a real check so unknown
// emails cannot be told apart by response time.
func (s *SessionService) checkDummyPassword(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.passwords.Hash("pegasus-timing-equalizer")
	})
	if s.dummyHash != "" {
		_, _ = s.passwords.Verify(password, s.dummyHash)
	}
}

// Login checks credentials and opens a session. An unverified account gets
// a fresh verification email and common.ErrAccountNotVerified without the
// password being checked.
func (s *SessionService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.repomanager.Users(s.repomanager.Conn()).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.checkDummyPassword(in.Password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !user.IsVerified {
		if _, err := s.reissueVerification(ctx, user); err != nil {
			return nil, err
		}
		return nil, common.ErrAccountNotVerified
	}

	ok, err := s.passwords.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.ledger.Record(ctx, user.ID, in.IPAddress, in.UserAgent, false)
		return nil, common.ErrInvalidCredentials
	}

	pair, err := s.codec.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}
	if _, err := s.refresh.Save(ctx, user.ID, pair.RefreshToken, pair.RefreshExpiresAt); err != nil {
		return nil, err
	}

	s.ledger.Record(ctx, user.ID, in.IPAddress, in.UserAgent, true)

	return &LoginResult{User: user.Public(), Tokens: pair}, nil
}

// VerifyAccount marks the owner of an email verification token verified.
// Presenting the token again after success is not an error, even once the
// token has expired.
func (s *SessionService) VerifyAccount(ctx context.Context, token string) (*models.PublicUser, error) {
	t, err := s.verification.Find(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error searching token: %w", err)
	}
	if t == nil || t.Purpose != common.PurposeVerifyEmail {
		return nil, common.ErrInvalidToken
	}

	users := s.repomanager.Users(s.repomanager.Conn())
	user, err := users.GetByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if user.IsVerified {
		pub := user.Public()
		return &pub, nil
	}

	if t.ExpiredAt(s.clock.Now()) {
		return nil, common.ErrTokenExpired
	}

	if err := users.MarkVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("error verifying user: %w", err)
	}
	user.IsVerified = true

	s.logger.Info(ctx, "account verified", "user_id", user.ID)
	pub := user.Public()
	return &pub, nil
}

// ResendVerification replaces the verification token identified by token
// and mails the new one. It reports whether a mail was dispatched; for an
// already verified account nothing happens.
func (s *SessionService) ResendVerification(ctx context.Context, token string) (bool, error) {
	t, err := s.verification.Find(ctx, token)
	if err != nil {
		return false, fmt.Errorf("error searching token: %w", err)
	}
	if t == nil || t.Purpose != common.PurposeVerifyEmail {
		return false, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.repomanager.Conn()).GetByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, common.ErrInvalidToken
		}
		return false, fmt.Errorf("error loading user: %w", err)
	}
	if user.IsVerified {
		return false, nil
	}

	return s.reissueVerification(ctx, user)
}

// Refresh exchanges a refresh token for a new pair. The presented token is
// consumed: the old record is deleted and the new one stored in the same
// transaction, so a replay of the old token fails with common.ErrInvalidToken.
func (s *SessionService) Refresh(ctx context.Context, token string) (*auth.TokenPair, error) {
	record, err := s.refresh.FindByValue(ctx, token)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, common.ErrInvalidToken
	}

	// signature only; expiry is judged by the stored record
	claims, err := s.codec.Verify(token, auth.RefreshToken, auth.VerifyOptions{IgnoreExpiration: true})
	if err != nil || claims.UserID != record.UserID {
		return nil, common.ErrInvalidToken
	}

	if s.clock.Now().After(record.ExpiresAt) {
		if _, err := s.refresh.DeleteByID(ctx, record.ID); err != nil {
			s.logger.Warn(ctx, "stale refresh token not deleted", "error", err)
		}
		return nil, common.ErrRefreshTokenExpired
	}

	owner := record.Owner
	if owner == nil {
		owner, err = s.repomanager.Users(s.repomanager.Conn()).GetByID(ctx, record.UserID)
		if err != nil {
			return nil, fmt.Errorf("error loading user: %w", err)
		}
	}

	var pair *auth.TokenPair
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		deleted, err := s.repomanager.RefreshTokens(tx).DeleteByID(ctx, record.ID)
		if err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		if !deleted {
			// rotated concurrently
			return common.ErrInvalidToken
		}

		pair, err = s.codec.IssuePair(owner.ID, owner.Email)
		if err != nil {
			return fmt.Errorf("error generating token pair: %w", err)
		}

		_, err = s.refresh.save(ctx, tx, owner.ID, pair.RefreshToken, pair.RefreshExpiresAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	return pair, nil
}

// ForgotPassword mails a reset link when email belongs to an account. The
// result is the same whether it does or not.
func (s *SessionService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repomanager.Users(s.repomanager.Conn()).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error searching user: %w", err)
	}

	token, err := s.verification.Issue(ctx, user.ID, common.PurposeResetPassword)
	if err != nil {
		return err
	}

	ok := s.mailer.Send(ctx, pmail.TemplatePasswordReset, user.Email, map[string]string{
		"name": user.FirstName,
		"url":  s.links.PasswordReset(token.Token),
	})
	if !ok {
		s.logger.Error(ctx, "error sending password reset mail", "user_id", user.ID)
	}

	if _, err := s.verification.SweepExpired(ctx, common.PurposeResetPassword); err != nil {
		s.logger.Warn(ctx, "reset token sweep failed", "error", err)
	}
	return nil
}

// ResetPassword sets a new password using a reset token. The token works
// once.
func (s *SessionService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	t, err := s.verification.FindValid(ctx, token, common.PurposeResetPassword)
	if err != nil {
		return fmt.Errorf("error searching token: %w", err)
	}
	if t == nil {
		return common.ErrInvalidOrExpiredToken
	}

	hash, err := s.passwords.Hash(newPassword)
	if err != nil {
		return err
	}

	err = s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		consumed, err := s.repomanager.VerificationTokens(tx).MarkUsed(ctx, t.Token, common.PurposeResetPassword, s.clock.Now())
		if err != nil {
			return err
		}
		if !consumed {
			return common.ErrInvalidOrExpiredToken
		}
		return s.repomanager.Users(tx).UpdatePassword(ctx, t.UserID, hash)
	})
	if errors.Is(err, common.ErrInvalidOrExpiredToken) {
		return err
	}
	if err != nil {
		return fmt.Errorf("error resetting password: %w", err)
	}

	s.logger.Info(ctx, "password reset", "user_id", t.UserID)
	return nil
}

// ChangePassword replaces the password of a signed-in user after checking
// the current one.
func (s *SessionService) ChangePassword(ctx context.Context, userID, current, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	users := s.repomanager.Users(s.repomanager.Conn())
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidCredentials
		}
		return fmt.Errorf("error loading user: %w", err)
	}

	ok, err := s.passwords.Verify(current, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrInvalidCredentials
	}

	hash, err := s.passwords.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}

// Logout forgets the refresh token. Unknown tokens are ignored.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) error {
	return s.refresh.DeleteByValue(ctx, refreshToken)
}
