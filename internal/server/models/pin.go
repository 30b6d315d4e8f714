package models

import "time"

// Pin is the hashed transaction PIN of an account together with its
// brute-force counters.
type Pin struct {
	AccountID         string
	Salt              []byte
	Hash              []byte
	FailedAttempts    int
	IsLocked          bool
	LastFailedAttempt *time.Time
	UpdatedAt         time.Time
}

// LockedUntil returns when the current lockout ends. The zero time means
// the PIN is not locked.
func (p *Pin) LockedUntil(lockout time.Duration) time.Time {
	if !p.IsLocked || p.LastFailedAttempt == nil {
		return time.Time{}
	}
	return p.LastFailedAttempt.Add(lockout)
}
