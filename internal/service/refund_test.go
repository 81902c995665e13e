package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pocketwise/pocketwise/internal/api/dto"
	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RefundServiceSuite struct {
	creditServiceSuite
	purchase *dto.CreditExpenseResponse
}

func TestRefundService(t *testing.T) {
	suite.Run(t, new(RefundServiceSuite))
}

// SetupTest creates a 300.00 purchase in 3 installments on a card closing on
// the 10th. Today is 2024-03-20, so the March statement is closed and the
// April one is open.
func (s *RefundServiceSuite) SetupTest() {
	s.creditServiceSuite.SetupTest()
	card := s.createCard(10, 20)
	s.purchase = s.createPurchase(card.ID, "300", "2024-03-05", 3)
}

func (s *RefundServiceSuite) refund(req *dto.RefundCreditExpenseRequest) (*dto.RefundCreditExpenseResponse, error) {
	return s.refunds.RefundCreditExpense(s.GetContext(), s.purchase.ID, req)
}

func amount(v string) *decimal.Decimal {
	return lo.ToPtr(decimal.RequireFromString(v))
}

func (s *RefundServiceSuite) TestFullRefundCancelsInstallments() {
	resp, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypeFull,
		Amount:     amount("300"),
	})
	s.Require().NoError(err)

	s.Equal("Refund processed successfully", resp.Message)
	s.Equal(3, resp.Data.AffectedBillsCount)
	s.Len(resp.Data.CancelledIDs, 3)
	s.Empty(resp.Data.Refunds)
	s.Empty(resp.Data.Credits)
	s.assertMoney("300", resp.Data.RefundedAmount)
	s.Equal(1, resp.Data.Event.Sequence)

	s.Empty(s.activeInstallments(s.purchase.ID))
	s.Contains(s.expense(s.purchase.ID).Tags, types.TagRefundedFull)

	for _, inst := range s.purchase.InstallmentItems {
		bill := s.bill(inst.BillID())
		s.True(bill.TotalAmount.IsZero())
		s.Equal(types.CreditBillStatusPaid, bill.BillStatus)
	}
}

func (s *RefundServiceSuite) TestFullRefundTolerance() {
	testCases := []struct {
		name   string
		amount string
		valid  bool
	}{
		{name: "one_cent_above", amount: "300.01", valid: true},
		{name: "one_cent_below", amount: "299.99", valid: true},
		{name: "two_cents_above", amount: "300.02", valid: false},
		{name: "far_below", amount: "150", valid: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			_, err := s.refund(&dto.RefundCreditExpenseRequest{
				RefundType: types.RefundTypeFull,
				Amount:     amount(tc.amount),
			})
			if tc.valid {
				s.NoError(err)
				return
			}
			s.True(ierr.IsValidation(err), "unexpected error: %v", err)
			s.Len(s.activeInstallments(s.purchase.ID), 3)
		})
	}
}

func (s *RefundServiceSuite) TestFullRefundRejectedWithPaidInstallment() {
	paid := s.payBill(s.purchase.InstallmentItems[0])

	_, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypeFull,
		Amount:     amount("300"),
	})
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))

	// nothing was written
	s.Len(s.activeInstallments(s.purchase.ID), 3)
	s.NotContains(s.expense(s.purchase.ID).Tags, types.TagRefundedFull)
	events, err := s.GetStores().RefundRepo.ListByCreditExpense(s.GetContext(), s.purchase.ID)
	s.Require().NoError(err)
	s.Empty(events)
	s.Equal(types.CreditBillStatusPaid, s.bill(paid.ID).BillStatus)
	s.assertMoney("100", s.bill(s.purchase.InstallmentItems[1].BillID()).TotalAmount)
}

func (s *RefundServiceSuite) TestFullRefundTwiceConflicts() {
	_, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypeFull,
		Amount:     amount("300"),
	})
	s.Require().NoError(err)

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypeFull,
		Amount:     amount("300"),
	})
	s.True(ierr.IsConflict(err), "unexpected error: %v", err)

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("10"),
	})
	s.True(ierr.IsConflict(err), "unexpected error: %v", err)
}

func (s *RefundServiceSuite) TestFullRefundRejectedAfterEarlierRefund() {
	_, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{3},
	})
	s.Require().NoError(err)

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypeFull,
		Amount:     amount("300"),
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)
}

func (s *RefundServiceSuite) TestPartialRefundCeiling() {
	s.payBill(s.purchase.InstallmentItems[0])

	_, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("200.01"),
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)

	resp, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("150"),
	})
	s.Require().NoError(err)

	// one share per unpaid installment, starting with the open April statement
	s.Require().Len(resp.Data.Credits, 2)
	april := s.purchase.InstallmentItems[1].BillID()
	may := s.purchase.InstallmentItems[2].BillID()
	s.Equal(april, resp.Data.Credits[0].CreditBillID)
	s.Equal(may, resp.Data.Credits[1].CreditBillID)
	for _, credit := range resp.Data.Credits {
		s.assertMoney("75", credit.Amount)
		s.Equal(resp.Data.Refunds[0].ID, credit.CreditExpenseID)
	}
	s.Require().Len(resp.Data.Refunds, 1)
	s.assertMoney("-150", resp.Data.Refunds[0].Amount)
	s.Nil(resp.Data.Refunds[0].CreditBillID)
	s.assertMoney("25", s.bill(april).TotalAmount)
	s.assertMoney("25", s.bill(may).TotalAmount)
	s.Contains(s.expense(s.purchase.ID).Tags, types.RefundedPartialTag(1))

	// earlier partial refunds reduce the ceiling
	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("50.01"),
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)

	resp, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("50"),
	})
	s.Require().NoError(err)
	s.Equal(2, resp.Data.Event.Sequence)
	s.Contains(s.expense(s.purchase.ID).Tags, types.RefundedPartialTag(2))

	for _, id := range []string{april, may} {
		bill := s.bill(id)
		s.True(bill.TotalAmount.IsZero())
		s.Equal(types.CreditBillStatusPaid, bill.BillStatus)
	}
}

func (s *RefundServiceSuite) TestInstallmentRefundOfPaidInstallmentCreditsOpenBill() {
	paid := s.payBill(s.purchase.InstallmentItems[0])

	resp, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{1},
	})
	s.Require().NoError(err)

	// the open statement on 2024-03-20 is April's
	april := s.purchase.InstallmentItems[1].BillID()
	s.Require().Len(resp.Data.Credits, 1)
	credit := resp.Data.Credits[0]
	s.Equal(april, credit.CreditBillID)
	s.Equal(s.purchase.InstallmentItems[0].ID, credit.CreditExpenseID)
	s.assertMoney("100", credit.Amount)
	s.Empty(resp.Data.Refunds)
	s.Equal([]string{april}, resp.Data.AffectedBillIDs)

	// the paid installment and its bill are untouched
	s.Len(s.activeInstallments(s.purchase.ID), 3)
	march := s.bill(paid.ID)
	s.Equal(types.CreditBillStatusPaid, march.BillStatus)
	s.assertMoney("100", march.TotalAmount)
	s.assertMoney("0", s.bill(april).TotalAmount)
	s.Len(s.credits(april), 1)
	s.Contains(s.expense(s.purchase.ID).Tags, types.RefundedInstallmentTag(1))
}

func (s *RefundServiceSuite) TestInstallmentRefundOfOpenInstallmentOffsetsSameBill() {
	resp, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{3, 2},
	})
	s.Require().NoError(err)

	s.Require().Len(resp.Data.Refunds, 2)
	s.Empty(resp.Data.Credits)
	s.assertMoney("200", resp.Data.RefundedAmount)
	s.Equal([]int64{2, 3}, []int64(resp.Data.Event.InstallmentNumbers))

	for i, n := range []int{2, 3} {
		inst := s.purchase.InstallmentItems[n-1]
		record := resp.Data.Refunds[i]
		s.Equal(types.CreditExpenseTypeRefund, record.ExpenseType)
		s.Equal(inst.BillID(), record.BillID())
		s.Equal(n, record.InstallmentNumber)
		s.assertMoney("-100", record.Amount)
		s.Contains(record.Tags, types.RefundOfTag(s.purchase.ID))

		bill := s.bill(inst.BillID())
		s.True(bill.TotalAmount.IsZero())
		s.Equal(types.CreditBillStatusPaid, bill.BillStatus)
	}
	s.Len(s.activeInstallments(s.purchase.ID), 3)
}

func (s *RefundServiceSuite) TestInstallmentRefundValidation() {
	_, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{4},
	})
	s.True(ierr.IsNotFound(err), "unexpected error: %v", err)

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{2},
	})
	s.Require().NoError(err)

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{1, 2},
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)
	s.NotContains(s.expense(s.purchase.ID).Tags, types.RefundedInstallmentTag(1))

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypeInstallment,
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)
}

func (s *RefundServiceSuite) TestRefundRequiresPurchase() {
	_, err := s.refunds.RefundCreditExpense(s.GetContext(), s.purchase.InstallmentItems[0].ID, &dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypeFull,
		Amount:     amount("100"),
	})
	s.True(ierr.IsNotFound(err), "unexpected error: %v", err)

	_, err = s.refunds.RefundCreditExpense(s.GetContext(), "cexp_missing", &dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypeFull,
		Amount:     amount("100"),
	})
	s.True(ierr.IsNotFound(err), "unexpected error: %v", err)

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: "BOGUS",
		Amount:     amount("100"),
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("0"),
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)
}

func (s *RefundServiceSuite) TestInstallmentRefundAfterFullPartialRefund() {
	_, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("300"),
	})
	s.Require().NoError(err)

	// credits zeroed every bill, none of them was paid with money
	for _, inst := range s.purchase.InstallmentItems {
		bill := s.bill(inst.BillID())
		s.Equal(types.CreditBillStatusPaid, bill.BillStatus)
		s.True(bill.PaidAmount.IsZero())
	}

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{1, 2, 3},
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)

	events, err := s.GetStores().RefundRepo.ListByCreditExpense(s.GetContext(), s.purchase.ID)
	s.Require().NoError(err)
	s.Len(events, 1)
	for _, n := range []int{1, 2, 3} {
		s.NotContains(s.expense(s.purchase.ID).Tags, types.RefundedInstallmentTag(n))
	}
	for _, inst := range s.purchase.InstallmentItems {
		s.Len(s.credits(inst.BillID()), 1)
	}
}

func (s *RefundServiceSuite) TestInstallmentRefundReturnsOnlyTheUnrefundedPart() {
	_, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("90"),
	})
	s.Require().NoError(err)

	resp, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{2},
	})
	s.Require().NoError(err)

	s.assertMoney("70", resp.Data.RefundedAmount)
	s.Require().Len(resp.Data.Refunds, 1)
	s.assertMoney("-70", resp.Data.Refunds[0].Amount)
	april := s.purchase.InstallmentItems[1].BillID()
	s.assertMoney("0", s.bill(april).TotalAmount)

	// 90 + 70 returned so far, 140 left
	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("140.01"),
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("140"),
	})
	s.Require().NoError(err)

	events, err := s.GetStores().RefundRepo.ListByCreditExpense(s.GetContext(), s.purchase.ID)
	s.Require().NoError(err)
	total := decimal.Zero
	for _, e := range events {
		total = total.Add(e.Amount)
	}
	s.assertMoney("300", total)
}

func (s *RefundServiceSuite) TestPartialRefundCreditsInstallmentBills() {
	// 2024-03-20 is after the closing date of the first installment
	resp, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("90"),
	})
	s.Require().NoError(err)

	s.Require().Len(resp.Data.Credits, 3)
	for i, credit := range resp.Data.Credits {
		inst := s.purchase.InstallmentItems[i]
		s.Equal(inst.BillID(), credit.CreditBillID)
		s.Equal(inst.InstallmentNumber, credit.InstallmentNumber)
		s.assertMoney("30", credit.Amount)
		s.assertMoney("70", s.bill(inst.BillID()).TotalAmount)
	}

	march := s.bill(s.purchase.InstallmentItems[0].BillID())
	s.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), march.ClosingDate)

	// no statement past the last installment was opened
	_, err = s.GetStores().CreditBillRepo.GetByClosingDate(s.GetContext(), s.purchase.CreditCardID,
		time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	s.True(ierr.IsNotFound(err), "unexpected error: %v", err)
}

func (s *RefundServiceSuite) TestPartialRefundCapsAtUnrefundedInstallments() {
	_, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{3},
	})
	s.Require().NoError(err)

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("180"),
	})
	s.Require().NoError(err)

	resp, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("20"),
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Data.Credits, 2)
	for i, credit := range resp.Data.Credits {
		s.Equal(s.purchase.InstallmentItems[i].BillID(), credit.CreditBillID)
		s.assertMoney("10", credit.Amount)
	}

	_, err = s.refund(&dto.RefundCreditExpenseRequest{
		RefundType: types.RefundTypePartial,
		Amount:     amount("0.01"),
	})
	s.True(ierr.IsValidation(err), "unexpected error: %v", err)
}

func (s *RefundServiceSuite) TestInstallmentRefundSkipsPaidOpenStatement() {
	s.payBill(s.purchase.InstallmentItems[0])
	april := s.payBill(s.purchase.InstallmentItems[1])

	resp, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{1},
	})
	s.Require().NoError(err)

	// April is open on 2024-03-20 but already paid, May takes the credit
	may := s.purchase.InstallmentItems[2].BillID()
	s.Require().Len(resp.Data.Credits, 1)
	s.Equal(may, resp.Data.Credits[0].CreditBillID)
	s.Equal([]string{may}, resp.Data.AffectedBillIDs)
	s.assertMoney("0", s.bill(may).TotalAmount)

	s.Empty(s.credits(april.ID))
	s.assertMoney("100", s.bill(april.ID).TotalAmount)
	s.Equal(types.CreditBillStatusPaid, s.bill(april.ID).BillStatus)
}

// sweepFailingBillStore fails the status filtered listings the post-commit
// bill maintenance runs
type sweepFailingBillStore struct {
	creditbill.Repository
	failures int
}

func (f *sweepFailingBillStore) List(ctx context.Context, filter *types.CreditBillFilter) ([]*creditbill.CreditBill, error) {
	if len(filter.BillStatus) > 0 {
		f.failures++
		return nil, ierr.NewError("connection reset").Mark(ierr.ErrDatabase)
	}
	return f.Repository.List(ctx, filter)
}

func (s *RefundServiceSuite) TestRefundSucceedsWhenBillSweepFails() {
	store := &sweepFailingBillStore{Repository: s.GetStores().CreditBillRepo}
	s.params.CreditBillRepo = store
	s.refunds = NewRefundService(s.params)

	resp, err := s.refund(&dto.RefundCreditExpenseRequest{
		RefundType:           types.RefundTypeInstallment,
		SelectedInstallments: []int{2},
	})
	s.Require().NoError(err)
	s.Positive(store.failures)

	events, err := s.GetStores().RefundRepo.ListByCreditExpense(s.GetContext(), s.purchase.ID)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(resp.Data.Event.ID, events[0].ID)

	s.Require().Len(resp.Data.Refunds, 1)
	record := s.expense(resp.Data.Refunds[0].ID)
	s.assertMoney("-100", record.Amount)
	s.Contains(s.expense(s.purchase.ID).Tags, types.RefundedInstallmentTag(2))
	s.assertMoney("0", s.bill(s.purchase.InstallmentItems[1].BillID()).TotalAmount)

	rec := httptest.NewRecorder()
	s.GetMetrics().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Contains(rec.Body.String(), "pocketwise_credit_bill_sweep_failures_total 1")
	s.Contains(rec.Body.String(), `pocketwise_refunds_total{refund_type="INSTALLMENT",result="success"} 1`)
}
