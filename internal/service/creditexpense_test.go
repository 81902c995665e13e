package service

import (
	"testing"
	"time"

	"github.com/pocketwise/pocketwise/internal/api/dto"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CreditExpenseServiceSuite struct {
	creditServiceSuite
}

func TestCreditExpenseService(t *testing.T) {
	suite.Run(t, new(CreditExpenseServiceSuite))
}

func (s *CreditExpenseServiceSuite) TestCreateAfterClosingSchedulesFromNextStatement() {
	card := s.createCard(10, 20)

	resp := s.createPurchase(card.ID, "1200", "2024-03-15", 3)

	expectedDue := []time.Time{
		time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
	}
	for i, inst := range resp.InstallmentItems {
		s.Equal(i+1, inst.InstallmentNumber)
		s.assertMoney("400", inst.Amount)
		s.Require().NotNil(inst.DueDate)
		s.True(expectedDue[i].Equal(*inst.DueDate), "installment %d due %s", i+1, inst.DueDate)
		s.Equal(resp.ID, lo.FromPtr(inst.ParentExpenseID))

		bill := s.bill(inst.BillID())
		s.True(expectedDue[i].Equal(bill.DueDate))
		s.assertMoney("400", bill.TotalAmount)
		s.Equal(types.CreditBillStatusPending, bill.BillStatus)
	}
	s.True(resp.IsRoot())
	s.Nil(resp.CreditBillID)
}

func (s *CreditExpenseServiceSuite) TestCreateSplitsRemainderOnLastInstallment() {
	card := s.createCard(10, 20)

	resp := s.createPurchase(card.ID, "100", "2024-03-05", 3)

	s.assertMoney("33.33", resp.InstallmentItems[0].Amount)
	s.assertMoney("33.33", resp.InstallmentItems[1].Amount)
	s.assertMoney("33.34", resp.InstallmentItems[2].Amount)
	s.Equal("Laptop (1/3)", resp.InstallmentItems[0].Description)
}

func (s *CreditExpenseServiceSuite) TestCreateSharesBillsBetweenPurchases() {
	card := s.createCard(10, 20)

	first := s.createPurchase(card.ID, "100", "2024-03-01", 2)
	second := s.createPurchase(card.ID, "50", "2024-03-09", 1)

	s.Equal(first.InstallmentItems[0].BillID(), second.InstallmentItems[0].BillID())
	s.assertMoney("100", s.bill(first.InstallmentItems[0].BillID()).TotalAmount)

	bills, err := s.bills.ListCreditBills(s.GetContext(), &types.CreditBillFilter{
		QueryFilter:  types.NewDefaultQueryFilter(),
		CreditCardID: card.ID,
	})
	s.Require().NoError(err)
	s.Equal(2, bills.Pagination.Total)
}

func (s *CreditExpenseServiceSuite) TestCreateValidation() {
	card := s.createCard(10, 20)

	testCases := []struct {
		name    string
		request dto.CreateCreditExpenseRequest
		check   func(error) bool
	}{
		{
			name: "negative_amount",
			request: dto.CreateCreditExpenseRequest{
				CreditCardID: card.ID,
				Description:  "Bad",
				Amount:       decimal.NewFromInt(-1),
				PurchaseDate: "2024-03-01",
			},
			check: ierr.IsValidation,
		},
		{
			name: "sub_cent_amount",
			request: dto.CreateCreditExpenseRequest{
				CreditCardID: card.ID,
				Description:  "Bad",
				Amount:       decimal.RequireFromString("10.001"),
				PurchaseDate: "2024-03-01",
			},
			check: ierr.IsValidation,
		},
		{
			name: "zero_installments",
			request: dto.CreateCreditExpenseRequest{
				CreditCardID: card.ID,
				Description:  "Bad",
				Amount:       decimal.NewFromInt(10),
				PurchaseDate: "2024-03-01",
				Installments: lo.ToPtr(0),
			},
			check: ierr.IsValidation,
		},
		{
			name: "malformed_date",
			request: dto.CreateCreditExpenseRequest{
				CreditCardID: card.ID,
				Description:  "Bad",
				Amount:       decimal.NewFromInt(10),
				PurchaseDate: "03/01/2024",
			},
			check: ierr.IsValidation,
		},
		{
			name: "unknown_card",
			request: dto.CreateCreditExpenseRequest{
				CreditCardID: "card_missing",
				Description:  "Bad",
				Amount:       decimal.NewFromInt(10),
				PurchaseDate: "2024-03-01",
			},
			check: ierr.IsNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := tc.request
			_, err := s.expenses.CreateCreditExpense(s.GetContext(), &req)
			s.Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *CreditExpenseServiceSuite) TestGetCreditExpenseReturnsChildren() {
	card := s.createCard(10, 20)
	resp := s.createPurchase(card.ID, "300", "2024-03-05", 3)

	_, err := s.refunds.RefundCreditExpense(s.GetContext(), resp.ID, &dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{3},
	})
	s.Require().NoError(err)

	got, err := s.expenses.GetCreditExpense(s.GetContext(), resp.ID)
	s.Require().NoError(err)
	s.Len(got.InstallmentItems, 3)
	s.Require().Len(got.Refunds, 1)
	s.assertMoney("-100", got.Refunds[0].Amount)
	s.Contains(got.Tags, types.RefundedInstallmentTag(3))
}

func (s *CreditExpenseServiceSuite) TestListCreditExpensesOnlyReturnsPurchases() {
	card := s.createCard(10, 20)
	s.createPurchase(card.ID, "300", "2024-03-05", 3)
	s.createPurchase(card.ID, "20", "2024-03-06", 1)

	list, err := s.expenses.ListCreditExpenses(s.GetContext(), &types.CreditExpenseFilter{
		QueryFilter:  types.NewDefaultQueryFilter(),
		CreditCardID: card.ID,
	})
	s.Require().NoError(err)
	s.Len(list.Items, 2)
	s.Equal(2, list.Pagination.Total)
	for _, item := range list.Items {
		s.True(item.IsRoot())
	}
}

func (s *CreditExpenseServiceSuite) TestListRefundEvents() {
	card := s.createCard(10, 20)
	resp := s.createPurchase(card.ID, "300", "2024-03-05", 3)

	for _, n := range []int{2, 3} {
		_, err := s.refunds.RefundCreditExpense(s.GetContext(), resp.ID, &dto.RefundCreditExpenseRequest{
			RefundType:           types.RefundTypeInstallment,
			SelectedInstallments: []int{n},
		})
		s.Require().NoError(err)
	}

	events, err := s.expenses.ListRefundEvents(s.GetContext(), resp.ID)
	s.Require().NoError(err)
	s.Require().Len(events.Items, 2)
	s.Equal(1, events.Items[0].Sequence)
	s.Equal(2, events.Items[1].Sequence)

	_, err = s.expenses.ListRefundEvents(s.GetContext(), resp.InstallmentItems[0].ID)
	s.True(ierr.IsInvalidOperation(err))
}
