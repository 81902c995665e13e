package service

import (
	"testing"
	"time"

	"github.com/pocketwise/pocketwise/internal/api/dto"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CreditBillServiceSuite struct {
	creditServiceSuite
	purchase *dto.CreditExpenseResponse
}

func TestCreditBillService(t *testing.T) {
	suite.Run(t, new(CreditBillServiceSuite))
}

func (s *CreditBillServiceSuite) SetupTest() {
	s.creditServiceSuite.SetupTest()
	card := s.createCard(10, 20)
	s.purchase = s.createPurchase(card.ID, "300", "2024-03-05", 3)
}

func (s *CreditBillServiceSuite) TestPayCreditBill() {
	billID := s.purchase.InstallmentItems[0].BillID()

	resp, err := s.bills.PayCreditBill(s.GetContext(), billID, &dto.PayCreditBillRequest{
		Amount: decimal.NewFromInt(40),
	})
	s.Require().NoError(err)
	s.Equal(types.CreditBillStatusPartial, resp.BillStatus)
	s.Nil(resp.PaidAt)

	resp, err = s.bills.PayCreditBill(s.GetContext(), billID, &dto.PayCreditBillRequest{
		Amount: decimal.NewFromInt(60),
	})
	s.Require().NoError(err)
	s.Equal(types.CreditBillStatusPaid, resp.BillStatus)
	s.Require().NotNil(resp.PaidAt)
	s.True(s.GetNow().Equal(*resp.PaidAt))
	s.assertMoney("100", s.bill(billID).PaidAmount)
}

func (s *CreditBillServiceSuite) TestPayCreditBillValidation() {
	billID := s.purchase.InstallmentItems[0].BillID()

	_, err := s.bills.PayCreditBill(s.GetContext(), billID, &dto.PayCreditBillRequest{})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)

	_, err = s.bills.PayCreditBill(s.GetContext(), "bill_missing", &dto.PayCreditBillRequest{
		Amount: decimal.NewFromInt(1),
	})
	s.True(ierr.IsNotFound(err), "unexpected error: %v", err)
}

func (s *CreditBillServiceSuite) TestGetCreditBillIncludesLines() {
	billID := s.purchase.InstallmentItems[1].BillID()

	resp, err := s.bills.GetCreditBill(s.GetContext(), billID)
	s.Require().NoError(err)
	s.Require().Len(resp.Expenses, 1)
	s.Equal(s.purchase.InstallmentItems[1].ID, resp.Expenses[0].ID)
	s.Empty(resp.Credits)
	s.assertMoney("100", resp.TotalAmount)
}

func (s *CreditBillServiceSuite) TestRecalculateBillTotalRepairsCache() {
	billID := s.purchase.InstallmentItems[0].BillID()

	bill := s.bill(billID)
	bill.TotalAmount = decimal.NewFromInt(999)
	s.Require().NoError(s.GetStores().CreditBillRepo.Update(s.GetContext(), bill))

	first, err := s.bills.RecalculateBillTotal(s.GetContext(), billID)
	s.Require().NoError(err)
	s.assertMoney("100", first.TotalAmount)

	second, err := s.bills.RecalculateBillTotal(s.GetContext(), billID)
	s.Require().NoError(err)
	s.True(first.TotalAmount.Equal(second.TotalAmount))
	s.Equal(first.BillStatus, second.BillStatus)
}

func (s *CreditBillServiceSuite) TestSweepZeroTotalBills() {
	bill := s.bill(s.purchase.InstallmentItems[2].BillID())
	bill.TotalAmount = decimal.Zero
	bill.BillStatus = types.CreditBillStatusPending
	s.Require().NoError(s.GetStores().CreditBillRepo.Update(s.GetContext(), bill))

	promoted, err := s.bills.SweepZeroTotalBills(s.GetContext(), bill.CreditCardID)
	s.Require().NoError(err)
	s.Equal(1, promoted)

	swept := s.bill(bill.ID)
	s.Equal(types.CreditBillStatusPaid, swept.BillStatus)
	s.NotNil(swept.PaidAt)
	s.Equal(types.CreditBillStatusPending, s.bill(s.purchase.InstallmentItems[0].BillID()).BillStatus)
}

func (s *CreditBillServiceSuite) TestRefreshBillStatusesMarksOverdue() {
	s.SetNow(time.Date(2024, time.April, 21, 9, 0, 0, 0, time.UTC))

	resp, err := s.bills.RefreshBillStatuses(s.GetContext(), nil)
	s.Require().NoError(err)
	s.Equal(1, resp.Cards)
	s.Equal(3, resp.Bills)
	s.Equal(1, resp.Changed)
	s.Equal(0, resp.Failed)

	s.Equal(types.CreditBillStatusOverdue, s.bill(s.purchase.InstallmentItems[0].BillID()).BillStatus)
	s.Equal(types.CreditBillStatusPending, s.bill(s.purchase.InstallmentItems[1].BillID()).BillStatus)

	// the due date itself is not overdue yet
	s.SetNow(time.Date(2024, time.May, 20, 23, 0, 0, 0, time.UTC))
	_, err = s.bills.RefreshBillStatuses(s.GetContext(), []string{types.DefaultUserID})
	s.Require().NoError(err)
	s.Equal(types.CreditBillStatusPending, s.bill(s.purchase.InstallmentItems[1].BillID()).BillStatus)
}

func (s *CreditBillServiceSuite) TestRefreshBillStatusesIgnoresOtherUsers() {
	resp, err := s.bills.RefreshBillStatuses(s.GetContext(), []string{"someone-else"})
	s.Require().NoError(err)
	s.Equal(0, resp.Cards)
	s.Equal(0, resp.Bills)
}

func (s *CreditBillServiceSuite) TestListCreditBillsUnknownCard() {
	_, err := s.bills.ListCreditBills(s.GetContext(), &types.CreditBillFilter{
		QueryFilter:  types.NewDefaultQueryFilter(),
		CreditCardID: "card_missing",
	})
	s.True(ierr.IsNotFound(err), "unexpected error: %v", err)
}
