package postgres

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/internal/config"
	"github.com/pocketwise/pocketwise/internal/logger"
)

// DB owns the connection pool shared by the ent client
type DB struct {
	*sqlx.DB
	logger *logger.Logger
}

// NewDB opens and pings the connection pool described by the postgres
// configuration
func NewDB(cfg *config.Configuration, logger *logger.Logger) (*DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Postgres.GetDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetimeMinutes) * time.Minute)

	return &DB{DB: db, logger: logger}, nil
}

// Close closes the database connection
func (db *DB) Close() {
	if err := db.DB.Close(); err != nil {
		db.logger.Errorw("error closing database", "error", err)
	}
}

// NewEntClient builds the ent client on top of the shared pool. Every
// statement goes through the query tracer.
func NewEntClient(cfg *config.Configuration, db *DB, logger *logger.Logger) (*ent.Client, error) {
	drv := entsql.OpenDB(dialect.Postgres, db.DB.DB)
	client := ent.NewClient(ent.Driver(NewTracedDriver(drv, logger)))

	// Run the auto migration tool if enabled
	if cfg.Postgres.AutoMigrate {
		if err := client.Schema.Create(context.Background()); err != nil {
			return nil, fmt.Errorf("failed creating schema resources: %w", err)
		}
	}

	return client, nil
}
