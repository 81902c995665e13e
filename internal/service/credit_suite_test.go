package service

import (
	"github.com/pocketwise/pocketwise/internal/api/dto"
	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/domain/creditcard"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/testutil"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// creditServiceSuite wires every credit service on top of the in-memory
// stores. Suites embed it and add their own fixtures.
type creditServiceSuite struct {
	testutil.BaseServiceTestSuite
	params   ServiceParams
	cards    CreditCardService
	expenses CreditExpenseService
	bills    CreditBillService
	refunds  RefundService
}

func (s *creditServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupServices()
}

func (s *creditServiceSuite) setupServices() {
	stores := s.GetStores()
	s.params = ServiceParams{
		Logger:            s.GetLogger(),
		Config:            s.GetConfig(),
		DB:                s.GetDB(),
		Cache:             s.GetCache(),
		Metrics:           s.GetMetrics(),
		Clock:             s.Clock(),
		CreditCardRepo:    stores.CreditCardRepo,
		CreditExpenseRepo: stores.CreditExpenseRepo,
		CreditBillRepo:    stores.CreditBillRepo,
		CreditIncomeRepo:  stores.CreditIncomeRepo,
		RefundRepo:        stores.RefundRepo,
	}
	s.cards = NewCreditCardService(s.params)
	s.expenses = NewCreditExpenseService(s.params)
	s.bills = NewCreditBillService(s.params)
	s.refunds = NewRefundService(s.params)
}

func (s *creditServiceSuite) createCard(closingDay, dueDay int) *creditcard.CreditCard {
	resp, err := s.cards.CreateCreditCard(s.GetContext(), &dto.CreateCreditCardRequest{
		Name:        "Test Card",
		ClosingDay:  closingDay,
		DueDay:      dueDay,
		CreditLimit: decimal.NewFromInt(5000),
	})
	s.Require().NoError(err)
	return resp.CreditCard
}

func (s *creditServiceSuite) createPurchase(cardID, amount, date string, installments int) *dto.CreditExpenseResponse {
	resp, err := s.expenses.CreateCreditExpense(s.GetContext(), &dto.CreateCreditExpenseRequest{
		CreditCardID: cardID,
		Description:  "Laptop",
		Amount:       decimal.RequireFromString(amount),
		PurchaseDate: date,
		Installments: lo.ToPtr(installments),
	})
	s.Require().NoError(err)
	s.Require().Len(resp.InstallmentItems, installments)
	return resp
}

func (s *creditServiceSuite) bill(id string) *creditbill.CreditBill {
	b, err := s.GetStores().CreditBillRepo.Get(s.GetContext(), id)
	s.Require().NoError(err)
	return b
}

// payBill settles the remaining amount of the bill an installment sits on
func (s *creditServiceSuite) payBill(inst *creditexpense.CreditExpense) *creditbill.CreditBill {
	b := s.bill(inst.BillID())
	resp, err := s.bills.PayCreditBill(s.GetContext(), b.ID, &dto.PayCreditBillRequest{
		Amount: b.RemainingAmount(),
	})
	s.Require().NoError(err)
	s.Require().Equal(types.CreditBillStatusPaid, resp.BillStatus)
	return resp.CreditBill
}

func (s *creditServiceSuite) expense(id string) *creditexpense.CreditExpense {
	e, err := s.GetStores().CreditExpenseRepo.Get(s.GetContext(), id)
	s.Require().NoError(err)
	return e
}

func (s *creditServiceSuite) activeInstallments(purchaseID string) []*creditexpense.CreditExpense {
	filter := types.NewNoLimitCreditExpenseFilter()
	filter.ParentExpenseIDs = []string{purchaseID}
	filter.Types = []types.CreditExpenseType{types.CreditExpenseTypeExpense}
	items, err := s.GetStores().CreditExpenseRepo.List(s.GetContext(), filter)
	s.Require().NoError(err)
	return items
}

func (s *creditServiceSuite) credits(billID string) []*creditbill.CreditIncome {
	filter := types.NewNoLimitCreditIncomeFilter()
	filter.CreditBillIDs = []string{billID}
	items, err := s.GetStores().CreditIncomeRepo.List(s.GetContext(), filter)
	s.Require().NoError(err)
	return items
}

func (s *creditServiceSuite) assertMoney(expected string, actual decimal.Decimal) {
	s.True(decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}
