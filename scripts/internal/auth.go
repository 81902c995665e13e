package internal

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pocketwise/pocketwise/internal/auth"
	"github.com/pocketwise/pocketwise/internal/config"
)

const DefaultTokenTTL = 24 * time.Hour

// GenerateToken prints a bearer token signed with the configured auth secret
func GenerateToken(userID string, ttl time.Duration) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	token, err := auth.NewProvider(cfg).GenerateToken(userID, ttl)
	if err != nil {
		return err
	}

	fmt.Printf("\nToken for user %s (expires in %s):\n", userID, ttl)
	fmt.Printf("Authorization: Bearer %s\n", token)
	return nil
}

// GenerateSecret prints a random 256-bit key suitable for auth.secret
func GenerateSecret() error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("unable to generate key: %w", err)
	}

	fmt.Printf("Generated secret (hex): %s\n", hex.EncodeToString(key))
	fmt.Printf("Set it as auth.secret in config.yaml or POCKETWISE_AUTH_SECRET\n")
	return nil
}
