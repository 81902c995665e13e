package auth

import (
	"context"
	"time"

	"github.com/pocketwise/pocketwise/internal/config"
)

// Claims are the identity facts resolved from a token
type Claims struct {
	UserID string
}

// Provider resolves the authenticated user of a request. Session management
// lives outside this service; tokens are only verified here.
type Provider interface {
	ValidateToken(ctx context.Context, token string) (*Claims, error)
	GenerateToken(userID string, ttl time.Duration) (string, error)
}

func NewProvider(cfg *config.Configuration) Provider {
	return NewJWTAuth(cfg)
}
