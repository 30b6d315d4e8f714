package models

import "time"

// VerificationToken is a single-use opaque token bound to one user and one
// purpose (email verification or password reset).
type VerificationToken struct {
	Token     string
	UserID    string
	Purpose   string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// ExpiredAt reports whether the token is past its expiry at now.
func (t *VerificationToken) ExpiredAt(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
