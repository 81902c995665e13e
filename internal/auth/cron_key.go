package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/pocketwise/pocketwise/internal/config"
)

// HashCronKey returns the SHA-256 hex digest stored in config for a key
func HashCronKey(key string) string {
	hasher := sha256.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}

// ValidateCronKey checks a raw key against the configured digest. No key is
// valid while the digest is unset.
func ValidateCronKey(cfg *config.Configuration, key string) bool {
	expected := cfg.Auth.CronKey.Hash
	if expected == "" || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(HashCronKey(key)), []byte(expected)) == 1
}
