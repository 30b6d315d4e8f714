// Package cryptox implements the one-way credential hashing used by the
// server: bcrypt for account passwords and argon2id for transaction PINs.
package cryptox

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and checks salted password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches the digest. A malformed
	// digest yields common.ErrCorruptCredential.
	Verify(password, hash string) (bool, error)
}

// BcryptHasher is a PasswordHasher with an adjustable work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, falling back to
// bcrypt.DefaultCost when cost is outside the supported range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", common.NewValidationError("password is longer than 72 bytes")
		}
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrCorruptCredential, err)
	}
}
