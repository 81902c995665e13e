package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketwise/pocketwise/internal/api/cron"
	v1 "github.com/pocketwise/pocketwise/internal/api/v1"
	"github.com/pocketwise/pocketwise/internal/auth"
	"github.com/pocketwise/pocketwise/internal/config"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/metrics"
	"github.com/pocketwise/pocketwise/internal/rest/middleware"
	"github.com/pocketwise/pocketwise/internal/types"
)

type Handlers struct {
	Health        *v1.HealthHandler
	CreditCard    *v1.CreditCardHandler
	CreditExpense *v1.CreditExpenseHandler
	CreditBill    *v1.CreditBillHandler

	// Cron jobs
	CronCreditBill *cron.CreditBillCronHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger, provider auth.Provider, m *metrics.Metrics) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.MetricsMiddleware(m),
		middleware.ErrorHandler(logger),
	)

	// Public routes
	router.GET("/health", handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	authenticate := middleware.AuthenticateMiddleware(provider, logger)
	if cfg.Deployment.Mode == types.ModeLocal {
		authenticate = middleware.GuestAuthenticateMiddleware
	}

	v1Private := router.Group("/v1")
	v1Private.Use(authenticate)
	registerV1Routes(v1Private, handlers)

	v1Cron := router.Group("/v1/cron")
	v1Cron.Use(middleware.CronAuthMiddleware(cfg, logger, authenticate))
	registerCronRoutes(v1Cron, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	creditCards := router.Group("/credit-cards")
	{
		creditCards.POST("", handlers.CreditCard.CreateCreditCard)
		creditCards.GET("", handlers.CreditCard.ListCreditCards)
		creditCards.GET("/:id", handlers.CreditCard.GetCreditCard)
		creditCards.PUT("/:id", handlers.CreditCard.UpdateCreditCard)
		creditCards.DELETE("/:id", handlers.CreditCard.DeleteCreditCard)
		creditCards.GET("/:id/bills", handlers.CreditCard.ListCreditBills)
	}

	creditExpenses := router.Group("/credit-expenses")
	{
		creditExpenses.POST("", handlers.CreditExpense.CreateCreditExpense)
		creditExpenses.GET("", handlers.CreditExpense.ListCreditExpenses)
		creditExpenses.GET("/:id", handlers.CreditExpense.GetCreditExpense)
		creditExpenses.GET("/:id/refunds", handlers.CreditExpense.ListRefundEvents)
		creditExpenses.POST("/:id/refund", handlers.CreditExpense.RefundCreditExpense)
	}

	creditBills := router.Group("/credit-bills")
	{
		creditBills.GET("/:id", handlers.CreditBill.GetCreditBill)
		creditBills.POST("/:id/pay", handlers.CreditBill.PayCreditBill)
		creditBills.POST("/:id/recalculate", handlers.CreditBill.RecalculateCreditBill)
	}
}

func registerCronRoutes(router *gin.RouterGroup, handlers Handlers) {
	router.POST("/credit-bills/refresh-statuses", handlers.CronCreditBill.RefreshStatuses)
}
