// Package auth encodes and verifies the mock session token.
//
// A token is a compact JWT carrying the public profile claims and an expiry
// in epoch milliseconds. Without a secret the token is unsigned (alg "none"):
// anyone holding it can read or forge it. That is acceptable for the demo
// login only; configure a secret to get HS256 signatures instead.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token payload.
type Claims struct {
	ID              int         `json:"id"`
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	Name            string      `json:"name"`
	Role            models.Role `json:"role"`
	ExpiresAtMillis int64       `json:"exp_ms"`
	jwt.RegisteredClaims
}

// ExpiresAtTime returns the expiry as a time.
func (c *Claims) ExpiresAtTime() time.Time {
	return time.UnixMilli(c.ExpiresAtMillis)
}

// TokenCodec signs and verifies tokens.
type TokenCodec struct {
	method jwt.SigningMethod
	key    any
}

// NewTokenCodec returns an HS256 codec for a non-empty secret, otherwise an
// unsigned one.
func NewTokenCodec(secret []byte) *TokenCodec {
	if len(secret) == 0 {
		return &TokenCodec{method: jwt.SigningMethodNone, key: jwt.UnsafeAllowNoneSignatureType}
	}
	return &TokenCodec{method: jwt.SigningMethodHS256, key: secret}
}

// Signed reports whether tokens carry a verifiable signature.
func (c *TokenCodec) Signed() bool {
	return c.method != jwt.SigningMethodNone
}

// Sign builds a token for p expiring at expiresAt.
func (c *TokenCodec) Sign(p models.Profile, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		ID:              p.ID,
		Username:        p.Username,
		Email:           p.Email,
		Name:            p.Name,
		Role:            p.Role,
		ExpiresAtMillis: expiresAt.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(c.method, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Decode parses the token and checks its signature, but not its expiry.
func (c *TokenCodec) Decode(token string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// Verify decodes the token and accepts it only while now is strictly before
// its expiry. No other claim is checked.
func (c *TokenCodec) Verify(token string, now time.Time) (*Claims, error) {
	claims, err := c.Decode(token)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAtMillis <= now.UnixMilli() {
		return nil, common.ErrTokenExpired
	}
	return claims, nil
}

// IsRejected reports whether err means the token must be discarded.
func IsRejected(err error) bool {
	return errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired)
}
