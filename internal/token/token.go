// Package token issues and verifies the signed bearer tokens that carry a
// user's identity between requests. Tokens are stateless; there is no
// server-side revocation list.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TTL is how long an issued token remains valid.
const TTL = 7 * 24 * time.Hour

// ErrInvalidToken covers every verification failure: malformed input, bad
// signature, wrong signing algorithm, tampered payload, and expiry.
var ErrInvalidToken = errors.New("invalid token")

// Issue creates a signed token embedding the user's identity as
// {"user":{"id":<userID>}}, expiring TTL from now.
func Issue(secret string, userID uint) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user": map[string]any{
			"id": userID,
		},
		"iat": now.Unix(),
		"exp": now.Add(TTL).Unix(),
		"jti": uuid.New().String(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Verify parses and validates a token, returning the embedded user ID.
// All failures surface as ErrInvalidToken; the wrapped cause is for logs
// only and must not be sent to clients.
func Verify(secret, tokenString string) (uint, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	user, ok := claims["user"].(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%w: missing user claim", ErrInvalidToken)
	}

	// JSON numbers decode as float64.
	id, ok := user["id"].(float64)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return uint(id), nil
}
