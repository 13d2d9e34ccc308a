package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", "signlearn", "signlearn-app", 7)
}

func TestTokenManager_GenerateAndParse(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	userID := uuid.New()

	token, expiresAt, err := m.Generate(userID, "Jane Doe", "jane@example.com", "User")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "User", claims.Role)
	assert.Equal(t, "signlearn", claims.Issuer)
	assert.Contains(t, claims.Audience, "signlearn-app")
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestTokenManager_SevenDayExpiry(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	_, expiresAt, err := m.Generate(uuid.New(), "A", "a@example.com", "User")
	require.NoError(t, err)

	expected := time.Now().Add(7 * 24 * time.Hour)
	assert.WithinDuration(t, expected, expiresAt, time.Minute)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	token, _, err := m.Generate(uuid.New(), "A", "a@example.com", "User")
	require.NoError(t, err)

	other := NewTokenManager("another-secret", "signlearn", "signlearn-app", 7)
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_RejectsWrongIssuerAndAudience(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	token, _, err := m.Generate(uuid.New(), "A", "a@example.com", "User")
	require.NoError(t, err)

	wrongIssuer := NewTokenManager("test-secret", "someone-else", "signlearn-app", 7)
	_, err = wrongIssuer.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	wrongAudience := NewTokenManager("test-secret", "signlearn", "other-app", 7)
	_, err = wrongAudience.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	m.ttl = -time.Hour

	token, _, err := m.Generate(uuid.New(), "A", "a@example.com", "User")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	_, err := m.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("s", "i", "a", 0)
	assert.Equal(t, 7*24*time.Hour, m.TTL())
}
