// Package auth provides the authentication primitives of the server: the
// signed session-token codec and the password hasher.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mkravets/bookshelf/internal/common"
	"github.com/mkravets/bookshelf/internal/server/config"
)

// Claims is the claim set embedded in a session token. The subject registered
// claim carries the username.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenIssuer encodes and decodes signed, time-bounded session tokens. The
// signing key and algorithm are fixed at construction from the server config;
// nothing is read from ambient state afterwards.
type TokenIssuer struct {
	secret   []byte
	method   jwt.SigningMethod
	alg      string
	validity time.Duration
}

// NewTokenIssuer builds a TokenIssuer from the server configuration.
// Only HMAC algorithms are accepted.
func NewTokenIssuer(cfg *config.Config) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(cfg.SigningAlgorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.SigningAlgorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC algorithm", cfg.SigningAlgorithm)
	}
	return &TokenIssuer{
		secret:   []byte(cfg.SecretKey),
		method:   method,
		alg:      cfg.SigningAlgorithm,
		validity: cfg.AccessTokenValidityDuration,
	}, nil
}

// Issue returns a compact signed token asserting the given subject until the
// configured validity duration elapses.
func (i *TokenIssuer) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(i.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Subject validates the token's structure, signature, and expiry and returns
// the embedded subject. Every failure mode collapses into
// common.ErrInvalidToken so callers cannot tell an expired token from a
// malformed or forged one.
func (i *TokenIssuer) Subject(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{i.alg}))
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
