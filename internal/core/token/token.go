// Package token issues and verifies the signed bearer tokens that prove a
// previously established identity. Tokens are HS256 JWTs with a fixed
// 15-minute lifetime; only the signing secret is configurable.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
)

// TTL is the fixed token lifetime from issuance.
const TTL = 15 * time.Minute

var ErrEmptySecret = errors.New("signing secret must not be empty")

// Claims carries the identity encoded in a token. Subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Issuer signs and verifies bearer tokens with a symmetric secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer. An empty secret is a configuration error and
// must abort startup, never be discovered per-request.
func NewIssuer(secret []byte) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &Issuer{secret: secret, ttl: TTL}, nil
}

// Issue produces a signed token for the given user.
func (i *Issuer) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry. Every failure collapses into
// domain.ErrInvalidToken so callers cannot distinguish a forged token from an
// expired or malformed one.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
