// Package session issues and verifies the signed session cookie value.
// Sessions are HS256 JWTs carrying the caller's role; nothing is kept
// server side.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// ErrInvalidSession covers every reason a token cannot be trusted.
var ErrInvalidSession = errors.New("invalid session")

// Manager signs and verifies session tokens.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a manager. secret must be at least 32 characters.
func NewManager(secret, issuer string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL is the lifetime of issued tokens.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

type claims struct {
	jwt.RegisteredClaims
	Name string      `json:"name,omitempty"`
	Role domain.Role `json:"role"`
}

// Issue signs a token for p and returns it with its expiry.
func (m *Manager) Issue(p domain.Principal) (string, time.Time, error) {
	if p.Role == domain.RoleAnonymous || p.Subject == "" {
		return "", time.Time{}, fmt.Errorf("%w: anonymous principal", ErrInvalidSession)
	}

	now := m.now()
	expires := now.Add(m.ttl)

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Name: p.Name,
		Role: p.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}

	return signed, expires, nil
}

// Parse verifies a token and returns the principal it carries.
func (m *Manager) Parse(token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, fmt.Errorf("%w: empty token", ErrInvalidSession)
	}

	var c claims

	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	switch c.Role {
	case domain.RoleUser, domain.RoleAdmin:
	default:
		return domain.Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidSession, c.Role)
	}

	if c.Subject == "" {
		return domain.Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidSession)
	}

	return domain.Principal{Subject: c.Subject, Name: c.Name, Role: c.Role}, nil
}
