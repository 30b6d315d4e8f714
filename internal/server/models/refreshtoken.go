package models

import "time"

type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time

	// Owner is filled when the token is looked up by value.
	Owner *User
}
