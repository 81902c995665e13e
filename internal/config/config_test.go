package config

import (
	"testing"

	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "app",
		Password: "secret",
		DBName:   "ledger",
		SSLMode:  "require",
	}
	assert.Equal(t, "user=app password=secret dbname=ledger host=db port=5433 sslmode=require", cfg.GetDSN())
}

func TestValidateRequiresPostgresAndAuth(t *testing.T) {
	cfg := GetDefaultConfig()
	err := cfg.Validate()
	require.Error(t, err, "default config has no postgres section")

	cfg.Postgres = PostgresConfig{Host: "localhost", Port: 5432, User: "app", DBName: "app"}
	require.NoError(t, cfg.Validate())

	cfg.Auth.Secret = ""
	assert.Error(t, cfg.Validate())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("POCKETWISE_POSTGRES_HOST", "pg.internal")
	t.Setenv("POCKETWISE_POSTGRES_USER", "app")
	t.Setenv("POCKETWISE_POSTGRES_DBNAME", "app")
	t.Setenv("POCKETWISE_AUTH_SECRET", "s3cret")
	t.Setenv("POCKETWISE_LOGGING_LEVEL", "warn")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "pg.internal", cfg.Postgres.Host)
	assert.Equal(t, types.LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, 4, cfg.Billing.StatusRefreshWorkers)
	assert.Equal(t, types.HeaderCronKey, cfg.Auth.CronKey.Header)
}
