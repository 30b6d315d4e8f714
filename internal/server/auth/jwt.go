// Package auth signs and verifies the JWT access and refresh tokens.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/timex"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind selects which secret and lifetime a token is issued with.
type Kind int

const (
	AccessToken Kind = iota
	RefreshToken
)

// Claims carries the subject identity plus the standard registered claims.
// Every token gets a random ID so two tokens minted in the same second
// still differ.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

// TokenPair is what a successful login or refresh hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	// RefreshExpiresAt is the instant the refresh token stops being accepted.
	RefreshExpiresAt time.Time
}

// VerifyOptions tunes Verify. IgnoreExpiration checks the signature only.
type VerifyOptions struct {
	IgnoreExpiration bool
}

// Codec issues and verifies HS256 tokens. Access and refresh tokens use
// distinct secrets so one can never be presented as the other.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	clock         timex.Clock
}

func NewCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, clock timex.Clock) *Codec {
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		clock:         clock,
	}
}

func (c *Codec) secret(kind Kind) []byte {
	if kind == RefreshToken {
		return c.refreshSecret
	}
	return c.accessSecret
}

// TTL returns the configured lifetime for kind.
func (c *Codec) TTL(kind Kind) time.Duration {
	if kind == RefreshToken {
		return c.refreshTTL
	}
	return c.accessTTL
}

// Issue signs a token of the given kind for the subject.
func (c *Codec) Issue(userID, email string, kind Kind) (string, time.Time, error) {
	now := c.clock.Now()
	exp := now.Add(c.TTL(kind))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email:  email,
		UserID: userID,
	})

	s, err := token.SignedString(c.secret(kind))
	if err != nil {
		return "", time.Time{}, err
	}
	return s, exp, nil
}

// IssuePair mints a fresh access/refresh pair.
func (c *Codec) IssuePair(userID, email string) (*TokenPair, error) {
	access, _, err := c.Issue(userID, email, AccessToken)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := c.Issue(userID, email, RefreshToken)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, RefreshExpiresAt: refreshExp}, nil
}

// Verify checks signature and, unless told otherwise, expiry. It returns
// common.ErrTokenExpired for an expired but well-signed token and
// common.ErrInvalidSignature for everything else.
func (c *Codec) Verify(tokenString string, kind Kind, opts VerifyOptions) (*Claims, error) {
	claims := &Claims{}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.clock.Now),
	}
	if opts.IgnoreExpiration {
		parserOpts = append(parserOpts, jwt.WithoutClaimsValidation())
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret(kind), nil
	}, parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidSignature
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidSignature
	}

	return claims, nil
}
