package service

import (
	"time"

	"github.com/pocketwise/pocketwise/internal/cache"
	"github.com/pocketwise/pocketwise/internal/config"
	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/domain/creditcard"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/domain/refund"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/metrics"
	"github.com/pocketwise/pocketwise/internal/postgres"
)

// Clock returns the current time. Services read "today" through it.
type Clock func() time.Time

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger  *logger.Logger
	Config  *config.Configuration
	DB      postgres.IClient
	Cache   cache.Cache
	Metrics *metrics.Metrics
	Clock   Clock

	// Repositories
	CreditCardRepo    creditcard.Repository
	CreditExpenseRepo creditexpense.Repository
	CreditBillRepo    creditbill.Repository
	CreditIncomeRepo  creditbill.CreditRepository
	RefundRepo        refund.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	cache cache.Cache,
	metrics *metrics.Metrics,
	creditCardRepo creditcard.Repository,
	creditExpenseRepo creditexpense.Repository,
	creditBillRepo creditbill.Repository,
	creditIncomeRepo creditbill.CreditRepository,
	refundRepo refund.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:            logger,
		Config:            config,
		DB:                db,
		Cache:             cache,
		Metrics:           metrics,
		CreditCardRepo:    creditCardRepo,
		CreditExpenseRepo: creditExpenseRepo,
		CreditBillRepo:    creditBillRepo,
		CreditIncomeRepo:  creditIncomeRepo,
		RefundRepo:        refundRepo,
	}
}

// Now returns the current UTC time of the configured clock
func (p ServiceParams) Now() time.Time {
	if p.Clock == nil {
		return time.Now().UTC()
	}
	return p.Clock().UTC()
}

// Today truncates Now to midnight UTC
func (p ServiceParams) Today() time.Time {
	now := p.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
