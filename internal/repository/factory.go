package repository

import (
	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/domain/creditcard"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/domain/refund"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/postgres"
	entRepo "github.com/pocketwise/pocketwise/internal/repository/ent"
)

func NewCreditCardRepository(client postgres.IClient, logger *logger.Logger) creditcard.Repository {
	return entRepo.NewCreditCardRepository(client, logger)
}

func NewCreditExpenseRepository(client postgres.IClient, logger *logger.Logger) creditexpense.Repository {
	return entRepo.NewCreditExpenseRepository(client, logger)
}

func NewCreditBillRepository(client postgres.IClient, logger *logger.Logger) creditbill.Repository {
	return entRepo.NewCreditBillRepository(client, logger)
}

func NewCreditIncomeRepository(client postgres.IClient, logger *logger.Logger) creditbill.CreditRepository {
	return entRepo.NewCreditIncomeRepository(client, logger)
}

func NewRefundRepository(client postgres.IClient, logger *logger.Logger) refund.Repository {
	return entRepo.NewRefundRepository(client, logger)
}
