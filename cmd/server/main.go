package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketwise/pocketwise/internal/api"
	"github.com/pocketwise/pocketwise/internal/api/cron"
	v1 "github.com/pocketwise/pocketwise/internal/api/v1"
	"github.com/pocketwise/pocketwise/internal/auth"
	"github.com/pocketwise/pocketwise/internal/cache"
	"github.com/pocketwise/pocketwise/internal/config"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/metrics"
	"github.com/pocketwise/pocketwise/internal/postgres"
	"github.com/pocketwise/pocketwise/internal/repository"
	"github.com/pocketwise/pocketwise/internal/service"
	"github.com/pocketwise/pocketwise/internal/types"
	"go.uber.org/fx"
)

// @title PocketWise API
// @version 1.0
// @description Credit card billing cycles, installments and refunds
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			metrics.NewMetrics,

			// Cache
			cache.NewInMemoryCache,

			// Auth
			auth.NewProvider,

			// Repositories
			repository.NewCreditCardRepository,
			repository.NewCreditExpenseRepository,
			repository.NewCreditBillRepository,
			repository.NewCreditIncomeRepository,
			repository.NewRefundRepository,
		),
		// Postgres
		postgres.Module(),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewCreditCardService,
			service.NewCreditBillService,
			service.NewCreditExpenseService,
			service.NewRefundService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			registerDBHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	creditCardService service.CreditCardService,
	creditBillService service.CreditBillService,
	creditExpenseService service.CreditExpenseService,
	refundService service.RefundService,
) api.Handlers {
	return api.Handlers{
		Health:         v1.NewHealthHandler(logger),
		CreditCard:     v1.NewCreditCardHandler(creditCardService, creditBillService, logger),
		CreditExpense:  v1.NewCreditExpenseHandler(creditExpenseService, refundService, logger),
		CreditBill:     v1.NewCreditBillHandler(creditBillService, logger),
		CronCreditBill: cron.NewCreditBillCronHandler(logger, creditBillService),
	}
}

func provideRouter(
	handlers api.Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	provider auth.Provider,
	m *metrics.Metrics,
) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger, provider, m)
}

func registerDBHooks(lc fx.Lifecycle, db *postgres.DB, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing database connections")
			db.Close()
			return nil
		},
	})
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address, "mode", cfg.Deployment.Mode)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}
