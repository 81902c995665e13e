package internal

import (
	"context"
	"fmt"

	"github.com/pocketwise/pocketwise/internal/cache"
	"github.com/pocketwise/pocketwise/internal/config"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/metrics"
	"github.com/pocketwise/pocketwise/internal/postgres"
	"github.com/pocketwise/pocketwise/internal/repository"
	"github.com/pocketwise/pocketwise/internal/service"
)

// RefreshBillStatuses runs the bill status refresh outside the API server,
// for the given users or for every card owner when none are given
func RefreshBillStatuses(ctx context.Context, userIDs []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.NewDB(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	entClient, err := postgres.NewEntClient(cfg, db, log)
	if err != nil {
		return fmt.Errorf("failed to create ent client: %w", err)
	}

	m := metrics.NewMetrics()
	client := postgres.NewClient(entClient, log, m)
	params := service.NewServiceParams(
		log,
		cfg,
		client,
		cache.NewInMemoryCache(cfg, log),
		m,
		repository.NewCreditCardRepository(client, log),
		repository.NewCreditExpenseRepository(client, log),
		repository.NewCreditBillRepository(client, log),
		repository.NewCreditIncomeRepository(client, log),
		repository.NewRefundRepository(client, log),
	)

	resp, err := service.NewCreditBillService(params).RefreshBillStatuses(ctx, userIDs)
	if err != nil {
		return err
	}

	log.Infow("refreshed credit bill statuses",
		"users", len(userIDs),
		"cards", resp.Cards,
		"bills", resp.Bills,
		"changed", resp.Changed,
		"failed", resp.Failed,
	)
	return nil
}
