package auth

import (
	"testing"

	"github.com/pocketwise/pocketwise/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestValidateCronKey(t *testing.T) {
	cfg := config.GetDefaultConfig()
	assert.False(t, ValidateCronKey(cfg, "scheduler-key"), "no digest configured")

	cfg.Auth.CronKey.Hash = HashCronKey("scheduler-key")
	assert.True(t, ValidateCronKey(cfg, "scheduler-key"))
	assert.False(t, ValidateCronKey(cfg, "other-key"))
	assert.False(t, ValidateCronKey(cfg, ""))
	assert.Len(t, cfg.Auth.CronKey.Hash, 64)
}
