// Package token issues and verifies the signed session tokens that gate
// write access. Tokens are self-contained HS256 JWTs carrying the user's
// identity and their own expiry; there is no server-side session table, so
// the only revocation mechanism is rotating the signing secret.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ubudab109/number-discussion/internal/domain"
)

// Claims carries the identity of a logged-in user plus the standard
// registered claims (expiry, issued-at).
type Claims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a process-wide secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a Manager signing with secret; issued tokens expire
// after ttl.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given user.
func (m *Manager) Issue(userID uint, username string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a token string and returns its claims. Any failure —
// bad signature, malformed payload, or expiry in the past — yields
// domain.ErrInvalidToken.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
