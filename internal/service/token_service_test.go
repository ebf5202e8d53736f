package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iumatch/coursematch-backend/internal/config"
)

func tokenService(secret string, ttl time.Duration) *TokenService {
	return NewTokenService(&config.Config{SessionSecret: secret, SessionTTL: ttl})
}

func TestToken_MintAndValidate(t *testing.T) {
	svc := tokenService("test-secret", time.Hour)

	token, err := svc.Mint("session-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestToken_RejectsGarbage(t *testing.T) {
	svc := tokenService("test-secret", time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(bad)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestToken_RejectsWrongSecret(t *testing.T) {
	minter := tokenService("secret-one", time.Hour)
	checker := tokenService("secret-two", time.Hour)

	token, err := minter.Mint("session-123")
	require.NoError(t, err)

	_, err = checker.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_RejectsExpired(t *testing.T) {
	svc := tokenService("test-secret", -time.Minute)

	token, err := svc.Mint("session-123")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
