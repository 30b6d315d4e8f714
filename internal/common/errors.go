package common

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds. Every error returned by the session lifecycle wraps exactly
// one of these, so callers can branch with errors.Is.
var (
	ErrorValidation   = errors.New("validation error")
	ErrorNotFound     = errors.New("not found")
	ErrorConflict     = errors.New("conflict")
	ErrorExpired      = errors.New("expired")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInternal     = errors.New("internal error")
)

// ErrTransientDependency marks failures of external collaborators
// (database, broker, object store). It is an internal error.
var ErrTransientDependency = fmt.Errorf("transient dependency failure: %w", ErrorInternal)

var (
	ErrEmailTaken         = fmt.Errorf("email already registered: %w", ErrorConflict)
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrorUnauthorized)
	ErrAccountNotVerified = fmt.Errorf("account not verified, a new verification email has been sent: %w", ErrorUnauthorized)

	ErrInvalidPin       = fmt.Errorf("invalid pin: %w", ErrorUnauthorized)
	ErrAccountLocked    = fmt.Errorf("account locked: %w", ErrorUnauthorized)
	ErrPinNotSet        = fmt.Errorf("pin not set: %w", ErrorNotFound)
	ErrInvalidPinFormat = fmt.Errorf("pin must be exactly 4 digits: %w", ErrorValidation)

	ErrInvalidToken          = fmt.Errorf("invalid token: %w", ErrorUnauthorized)
	ErrInvalidSignature      = fmt.Errorf("invalid token signature: %w", ErrorUnauthorized)
	ErrTokenExpired          = fmt.Errorf("token expired: %w", ErrorExpired)
	ErrRefreshTokenExpired   = fmt.Errorf("refresh %w", ErrTokenExpired)
	ErrInvalidOrExpiredToken = fmt.Errorf("invalid or expired token: %w", ErrorExpired)
	ErrCorruptCredential     = fmt.Errorf("stored credential is corrupt: %w", ErrorInternal)
)

// AccountLockedError reports a PIN lockout together with the instant the
// lockout ends. It matches ErrAccountLocked under errors.Is.
type AccountLockedError struct {
	Until time.Time
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked until %s", e.Until.UTC().Format(time.RFC3339))
}

func (e *AccountLockedError) Unwrap() error {
	return ErrAccountLocked
}

// RetryAfter returns how long the caller has to wait at instant now.
func (e *AccountLockedError) RetryAfter(now time.Time) time.Duration {
	if d := e.Until.Sub(now); d > 0 {
		return d
	}
	return 0
}

// NewValidationError wraps a message as a validation failure.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrorValidation)
}
