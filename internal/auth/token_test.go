package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := SignToken(secret, "sess-123", 42, time.Now().Add(SessionTTL))
	require.NoError(t, err)

	sessionID, userID, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "sess-123", sessionID)
	assert.Equal(t, uint(42), userID)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignToken([]byte("right"), "sess-123", 42, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, _, err = ParseToken([]byte("wrong"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := SignToken(secret, "sess-123", 42, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, _, err = ParseToken(secret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, _, err := ParseToken([]byte("test-secret"), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
