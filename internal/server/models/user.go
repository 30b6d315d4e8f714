// Package models defines server-side data models persisted by the
// repositories.
package models

import "time"

type User struct {
	ID           string
	FirstName    string
	LastName     string
	MiddleName   string
	Email        string
	PasswordHash string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the client-facing projection of a User. It never carries
// credential material.
type PublicUser struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name,omitempty"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Email:      u.Email,
		IsVerified: u.IsVerified,
	}
}
