package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pocketwise/pocketwise/internal/config"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	provider := NewProvider(config.GetDefaultConfig())

	token, err := provider.GenerateToken("user_123", time.Hour)
	require.NoError(t, err)

	claims, err := provider.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.UserID)
}

func TestValidateTokenRejects(t *testing.T) {
	cfg := config.GetDefaultConfig()
	provider := NewProvider(cfg)

	expired, err := provider.GenerateToken("user_123", -time.Minute)
	require.NoError(t, err)

	otherCfg := config.GetDefaultConfig()
	otherCfg.Auth.Secret = "another-secret"
	foreign, err := NewProvider(otherCfg).GenerateToken("user_123", time.Hour)
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(cfg.Auth.Secret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"wrong secret", foreign},
		{"missing user", noUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.ValidateToken(context.Background(), tt.token)
			require.Error(t, err)
			assert.True(t, ierr.IsUnauthenticated(err))
		})
	}
}

func TestValidateTokenChecksIssuer(t *testing.T) {
	issuerCfg := config.GetDefaultConfig()
	issuerCfg.Auth.Issuer = "pocketwise"
	token, err := NewProvider(issuerCfg).GenerateToken("user_1", time.Hour)
	require.NoError(t, err)

	_, err = NewProvider(issuerCfg).ValidateToken(context.Background(), token)
	require.NoError(t, err)

	otherCfg := config.GetDefaultConfig()
	otherCfg.Auth.Issuer = "someone-else"
	_, err = NewProvider(otherCfg).ValidateToken(context.Background(), token)
	assert.Error(t, err)
}
