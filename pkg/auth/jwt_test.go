package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	m, err := NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)
	return m
}

func TestManagerAccessTokenRoundtrip(t *testing.T) {
	m := newTestManager(t)

	token, err := m.NewAccessToken("user-1", "alice")
	require.NoError(t, err)
	assert.True(t, LooksLikeJWT(token))

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
}

func TestManagerRefreshTokenHasUniqueJTI(t *testing.T) {
	m := newTestManager(t)

	tok1, jti1, err := m.NewRefreshToken("user-1", "alice")
	require.NoError(t, err)
	tok2, jti2, err := m.NewRefreshToken("user-1", "alice")
	require.NoError(t, err)

	assert.NotEqual(t, jti1, jti2)
	assert.NotEqual(t, tok1, tok2)

	claims, err := m.Parse(tok1)
	require.NoError(t, err)
	assert.Equal(t, jti1, claims.ID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestManagerRejectsWrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := NewManager("different-secret", 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	token, err := m.NewAccessToken("user-1", "alice")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestManagerRejectsExpiredToken(t *testing.T) {
	m, err := NewManager("test-secret", -time.Minute, 24*time.Hour)
	require.NoError(t, err)

	token, err := m.NewAccessToken("user-1", "alice")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestNewManagerRequiresSecret(t *testing.T) {
	_, err := NewManager("", time.Minute, time.Hour)
	assert.Error(t, err)
}

func TestLooksLikeJWT(t *testing.T) {
	assert.True(t, LooksLikeJWT("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig"))
	assert.False(t, LooksLikeJWT("plain-api-key"))
	assert.False(t, LooksLikeJWT("eyJ-not-three-parts"))
	assert.False(t, LooksLikeJWT("a.b.c"))
	assert.False(t, LooksLikeJWT(""))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	// Empty hash burns a comparison but never matches.
	assert.False(t, CheckPassword("", "s3cret"))
	assert.False(t, CheckPassword("", ""))
}
