package session

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(now time.Time) *Manager {
	m := NewManager(testSecret, "feedbackd", time.Hour)
	m.now = func() time.Time { return now }

	return m
}

func TestIssueAndParse(t *testing.T) {
	now := time.Now()
	m := newTestManager(now)

	tests := []struct {
		name string
		p    domain.Principal
	}{
		{name: "user", p: domain.Principal{Subject: "7", Name: "Ada", Role: domain.RoleUser}},
		{name: "admin", p: domain.Principal{Subject: "admin", Role: domain.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, expires, err := m.Issue(tt.p)
			require.NoError(t, err)
			assert.WithinDuration(t, now.Add(time.Hour), expires, time.Second)

			got, err := m.Parse(token)
			require.NoError(t, err)
			assert.Equal(t, tt.p, got)
		})
	}
}

func TestIssue_RejectsAnonymous(t *testing.T) {
	_, _, err := newTestManager(time.Now()).Issue(domain.Principal{})
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestParse_Rejections(t *testing.T) {
	now := time.Now()
	m := newTestManager(now)

	valid, _, err := m.Issue(domain.Principal{Subject: "7", Role: domain.RoleUser})
	require.NoError(t, err)

	other := NewManager(strings.Repeat("x", 32), "feedbackd", time.Hour)
	foreign, _, err := other.Issue(domain.Principal{Subject: "7", Role: domain.RoleAdmin})
	require.NoError(t, err)

	wrongIssuer := NewManager(testSecret, "someone-else", time.Hour)
	misissued, _, err := wrongIssuer.Issue(domain.Principal{Subject: "7", Role: domain.RoleAdmin})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "7", "role": "admin", "iss": "feedbackd", "exp": now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7", "role": "root", "iss": "feedbackd", "exp": now.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	// admin claims under the user token's signature
	validParts := strings.Split(valid, ".")
	adminParts := strings.Split(misissued, ".")
	tampered := strings.Join([]string{validParts[0], adminParts[1], validParts[2]}, ".")

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "tampered", token: tampered},
		{name: "foreign secret", token: foreign},
		{name: "wrong issuer", token: misissued},
		{name: "alg none", token: noneToken},
		{name: "unknown role", token: badRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Parse(tt.token)
			require.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func TestParse_Expired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)

	token, _, err := newTestManager(issuedAt).Issue(domain.Principal{Subject: "7", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = newTestManager(time.Now()).Parse(token)
	require.ErrorIs(t, err, ErrInvalidSession)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "correct-horse", hash)
	assert.True(t, CheckPassword(hash, "correct-horse"))
	assert.False(t, CheckPassword(hash, "wrong-horse"))
	assert.False(t, CheckPassword("not-a-hash", "correct-horse"))
}
