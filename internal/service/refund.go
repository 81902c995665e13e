package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/internal/api/dto"
	"github.com/pocketwise/pocketwise/internal/domain/billingcycle"
	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/domain/creditcard"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/domain/refund"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	refundSuccessMessage = "Refund processed successfully"

	defaultSweepMaxElapsed = 5 * time.Second
)

type RefundService interface {
	// RefundCreditExpense refunds a purchase FULLY, PARTIALLY or per
	// INSTALLMENT. All writes happen in one transaction; bill maintenance
	// runs after commit and never fails the refund.
	RefundCreditExpense(ctx context.Context, id string, req *dto.RefundCreditExpenseRequest) (*dto.RefundCreditExpenseResponse, error)
}

type refundService struct {
	ServiceParams
	billService CreditBillService
}

func NewRefundService(params ServiceParams) RefundService {
	return &refundService{
		ServiceParams: params,
		billService:   NewCreditBillService(params),
	}
}

// refundState is everything a refund decision needs, read under the purchase
// row lock
type refundState struct {
	card         *creditcard.CreditCard
	purchase     *creditexpense.CreditExpense
	installments []*creditexpense.CreditExpense
	bills        map[string]*creditbill.CreditBill
	events       []*refund.RefundEvent
	// credited is what PARTIAL refunds already returned per installment
	credited map[int]decimal.Decimal
	today    time.Time
}

// isPaid reports whether money was paid against the installment's bill. Bills
// swept to PAID because credits zeroed them do not count.
func (st *refundState) isPaid(inst *creditexpense.CreditExpense) bool {
	bill, ok := st.bills[inst.BillID()]
	return ok && bill.IsPaid() && bill.PaidAmount.IsPositive()
}

// billClosed reports whether the installment's bill no longer takes charges
func (st *refundState) billClosed(inst *creditexpense.CreditExpense) bool {
	bill, ok := st.bills[inst.BillID()]
	return ok && bill.IsPaid()
}

// remaining is the part of an installment no PARTIAL refund returned yet
func (st *refundState) remaining(inst *creditexpense.CreditExpense) decimal.Decimal {
	left := inst.Amount.Sub(st.credited[inst.InstallmentNumber])
	if left.IsNegative() {
		return decimal.Zero
	}
	return types.NormalizeMoney(left)
}

// unrefunded is what the ledger says is still owed back at most
func (st *refundState) unrefunded() decimal.Decimal {
	left := st.purchase.Amount.Sub(refund.Total(st.events))
	if left.IsNegative() {
		return decimal.Zero
	}
	return types.NormalizeMoney(left)
}

// refundedNumbers returns the installments refunded individually so far,
// according to both the ledger and the audit tags
func (st *refundState) refundedNumbers() map[int]bool {
	refunded := make(map[int]bool)
	for _, n := range types.RefundedInstallmentNumbers(st.purchase.Tags) {
		refunded[n] = true
	}
	for _, e := range st.events {
		if e.RefundType != types.RefundTypeInstallment {
			continue
		}
		for _, n := range e.InstallmentNumbers {
			refunded[int(n)] = true
		}
	}
	return refunded
}

func (st *refundState) paidCount() int {
	return lo.CountBy(st.installments, st.isPaid)
}

// partialCount is the number of PARTIAL refunds recorded so far
func (st *refundState) partialCount() int {
	fromEvents := lo.CountBy(st.events, func(e *refund.RefundEvent) bool {
		return e.RefundType == types.RefundTypePartial
	})
	return max(fromEvents, types.CountPartialRefundTags(st.purchase.Tags))
}

// openInstallments are the installments neither paid nor refunded
// individually, in installment order
func (st *refundState) openInstallments() []*creditexpense.CreditExpense {
	refunded := st.refundedNumbers()
	return lo.Filter(st.installments, func(inst *creditexpense.CreditExpense, _ int) bool {
		return !st.isPaid(inst) && !refunded[inst.InstallmentNumber]
	})
}

// refundableCeiling is what a PARTIAL refund may still return: the
// unrefunded part of the open installments, bounded by the ledger
func (st *refundState) refundableCeiling() decimal.Decimal {
	ceiling := decimal.Zero
	for _, inst := range st.openInstallments() {
		ceiling = ceiling.Add(st.remaining(inst))
	}
	if len(st.installments) == 0 {
		ceiling = st.purchase.Amount.Sub(refund.PartialTotal(st.events))
	}
	return types.NormalizeMoney(decimal.Min(ceiling, st.unrefunded()))
}

// refundOutcome collects the writes of one refund
type refundOutcome struct {
	amount       decimal.Decimal
	refunds      []*creditexpense.CreditExpense
	credits      []*creditbill.CreditIncome
	cancelledIDs []string
	numbers      []int
	billIDs      []string
}

func (o *refundOutcome) touch(billID string) {
	if billID != "" && !lo.Contains(o.billIDs, billID) {
		o.billIDs = append(o.billIDs, billID)
	}
}

func (s *refundService) RefundCreditExpense(ctx context.Context, id string, req *dto.RefundCreditExpenseRequest) (*dto.RefundCreditExpenseResponse, error) {
	result, err := s.refundCreditExpense(ctx, id, req)
	if s.Metrics != nil {
		s.Metrics.ObserveRefund(string(req.RefundType), err)
	}
	if err != nil {
		s.Logger.Errorw("failed to refund credit expense",
			"credit_expense_id", id,
			"refund_type", req.RefundType,
			"error", err,
		)
		return nil, err
	}

	s.Logger.Infow("credit expense refunded",
		"credit_expense_id", id,
		"refund_type", result.RefundType,
		"refunded_amount", result.RefundedAmount,
		"affected_bills", result.AffectedBillsCount,
	)

	s.settleBills(ctx, result.Event.CreditCardID)

	return &dto.RefundCreditExpenseResponse{
		Message: refundSuccessMessage,
		Data:    result,
	}, nil
}

func (s *refundService) refundCreditExpense(ctx context.Context, id string, req *dto.RefundCreditExpenseRequest) (*dto.RefundResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result *dto.RefundResult
	err := s.DB.WithTx(ctx, func(tx context.Context) error {
		st, err := s.loadRefundState(tx, id)
		if err != nil {
			return err
		}

		var outcome *refundOutcome
		switch req.RefundType {
		case types.RefundTypeFull:
			outcome, err = s.refundFull(tx, st, req.GetAmount())
		case types.RefundTypePartial:
			outcome, err = s.refundPartial(tx, st, req.GetAmount())
		case types.RefundTypeInstallment:
			outcome, err = s.refundInstallments(tx, st, req.SelectedInstallments)
		}
		if err != nil {
			return err
		}

		if len(outcome.refunds) > 0 {
			if err := s.CreditExpenseRepo.CreateBulk(tx, outcome.refunds); err != nil {
				return err
			}
		}
		if len(outcome.credits) > 0 {
			if err := s.CreditIncomeRepo.CreateBulk(tx, outcome.credits); err != nil {
				return err
			}
		}

		st.purchase.Touch(tx)
		if err := s.CreditExpenseRepo.Update(tx, st.purchase); err != nil {
			return err
		}

		sort.Strings(outcome.billIDs)
		event := &refund.RefundEvent{
			ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REFUND_EVENT),
			CreditExpenseID:    st.purchase.ID,
			CreditCardID:       st.card.ID,
			RefundType:         req.RefundType,
			Amount:             outcome.amount,
			Sequence:           refund.NextSequence(st.events),
			InstallmentNumbers: toInt64Array(outcome.numbers),
			CreditBillIDs:      pq.StringArray(outcome.billIDs),
			BaseModel:          types.GetDefaultBaseModel(tx),
		}
		if err := s.RefundRepo.Create(tx, event); err != nil {
			return err
		}

		for _, billID := range outcome.billIDs {
			if _, err := s.billService.RecalculateBillTotal(tx, billID); err != nil {
				return err
			}
		}

		result = &dto.RefundResult{
			CreditExpenseID:    st.purchase.ID,
			RefundType:         req.RefundType,
			RefundedAmount:     outcome.amount,
			Refunds:            outcome.refunds,
			Credits:            outcome.credits,
			CancelledIDs:       outcome.cancelledIDs,
			AffectedBillIDs:    outcome.billIDs,
			AffectedBillsCount: len(outcome.billIDs),
			Event:              event,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *refundService) loadRefundState(ctx context.Context, id string) (*refundState, error) {
	purchase, err := s.CreditExpenseRepo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if !purchase.IsRoot() || purchase.IsRefund() {
		return nil, ierr.NewError("purchase not found").
			WithHint("Only purchases can be refunded, not installments or refund records").
			WithReportableDetails(map[string]any{
				"credit_expense_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	if purchase.IsFullyRefunded() {
		return nil, ierr.NewError("purchase already fully refunded").
			WithHint("This purchase has already been fully refunded").
			WithReportableDetails(map[string]any{
				"credit_expense_id": id,
			}).
			Mark(ierr.ErrConflict)
	}

	card, err := s.loadCreditCard(ctx, purchase.CreditCardID)
	if err != nil {
		return nil, err
	}

	filter := types.NewNoLimitCreditExpenseFilter()
	filter.ParentExpenseIDs = []string{purchase.ID}
	children, err := s.CreditExpenseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	installments, refundRows := splitChildren(children)

	bills := make(map[string]*creditbill.CreditBill)
	billIDs := lo.Uniq(lo.FilterMap(installments, func(inst *creditexpense.CreditExpense, _ int) (string, bool) {
		return inst.BillID(), inst.BillID() != ""
	}))
	if len(billIDs) > 0 {
		billFilter := types.NewNoLimitCreditBillFilter()
		billFilter.CreditBillIDs = billIDs
		list, err := s.CreditBillRepo.List(ctx, billFilter)
		if err != nil {
			return nil, err
		}
		bills = lo.KeyBy(list, func(b *creditbill.CreditBill) string {
			return b.ID
		})
	}

	events, err := s.RefundRepo.ListByCreditExpense(ctx, purchase.ID)
	if err != nil {
		return nil, err
	}

	credited, err := s.loadPartialCredits(ctx, refundRows)
	if err != nil {
		return nil, err
	}

	return &refundState{
		card:         card,
		purchase:     purchase,
		installments: installments,
		bills:        bills,
		events:       events,
		credited:     credited,
		today:        s.Today(),
	}, nil
}

// loadPartialCredits sums the credits of earlier PARTIAL refunds per
// installment number
func (s *refundService) loadPartialCredits(ctx context.Context, refundRows []*creditexpense.CreditExpense) (map[int]decimal.Decimal, error) {
	credited := make(map[int]decimal.Decimal)
	if len(refundRows) == 0 {
		return credited, nil
	}

	filter := types.NewNoLimitCreditIncomeFilter()
	filter.CreditExpenseIDs = lo.Map(refundRows, func(e *creditexpense.CreditExpense, _ int) string {
		return e.ID
	})
	credits, err := s.CreditIncomeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, c := range credits {
		credited[c.InstallmentNumber] = credited[c.InstallmentNumber].Add(c.Amount)
	}
	return credited, nil
}

func (s *refundService) refundFull(ctx context.Context, st *refundState, amount decimal.Decimal) (*refundOutcome, error) {
	if paid := st.paidCount(); paid > 0 {
		return nil, ierr.NewError("purchase has paid installments").
			WithHint("A purchase with paid installments cannot be fully refunded, use a PARTIAL or INSTALLMENT refund").
			WithReportableDetails(map[string]any{
				"paid_installments": paid,
			}).
			Mark(ierr.ErrValidation)
	}

	if len(st.events) > 0 || types.CountPartialRefundTags(st.purchase.Tags) > 0 ||
		len(types.RefundedInstallmentNumbers(st.purchase.Tags)) > 0 {
		return nil, ierr.NewError("purchase already partially refunded").
			WithHint("A purchase with earlier refunds cannot be fully refunded, use a PARTIAL or INSTALLMENT refund").
			WithReportableDetails(map[string]any{
				"previous_refunds": max(len(st.events), st.partialCount()),
			}).
			Mark(ierr.ErrValidation)
	}

	if !types.WithinTolerance(amount, st.purchase.Amount) {
		return nil, ierr.NewError("refund amount does not match the purchase amount").
			WithHintf("A full refund must be %s", st.purchase.Amount.StringFixed(types.MoneyPrecision)).
			WithReportableDetails(map[string]any{
				"amount":          amount,
				"purchase_amount": st.purchase.Amount,
			}).
			Mark(ierr.ErrValidation)
	}

	outcome := &refundOutcome{amount: st.purchase.Amount}
	for _, inst := range st.installments {
		outcome.cancelledIDs = append(outcome.cancelledIDs, inst.ID)
		outcome.numbers = append(outcome.numbers, inst.InstallmentNumber)
		outcome.touch(inst.BillID())
	}

	if len(outcome.cancelledIDs) > 0 {
		if err := s.CreditExpenseRepo.Delete(ctx, outcome.cancelledIDs); err != nil {
			return nil, err
		}
	}

	st.purchase.AddTags(types.TagRefundedFull)
	return outcome, nil
}

func (s *refundService) refundPartial(ctx context.Context, st *refundState, amount decimal.Decimal) (*refundOutcome, error) {
	ceiling := st.refundableCeiling()
	if amount.GreaterThan(ceiling) {
		return nil, ierr.NewError("refund amount exceeds the refundable amount").
			WithHintf("At most %s can still be refunded", ceiling.StringFixed(types.MoneyPrecision)).
			WithReportableDetails(map[string]any{
				"amount":     amount,
				"refundable": ceiling,
			}).
			Mark(ierr.ErrValidation)
	}

	total := max(len(st.installments), st.purchase.Installments, 1)
	shares, err := s.allocatePartial(st, amount, total)
	if err != nil {
		return nil, err
	}

	n := st.partialCount() + 1
	header := s.newRefundRecord(ctx, st, amount, types.RefundOfTag(st.purchase.ID))
	header.Description = fmt.Sprintf("Partial refund #%d: %s", n, st.purchase.Description)
	outcome := &refundOutcome{
		amount:  amount,
		refunds: []*creditexpense.CreditExpense{header},
	}

	for _, share := range shares {
		if !share.Amount.IsPositive() {
			continue
		}
		bill, err := s.shareBill(ctx, st, share)
		if err != nil {
			return nil, err
		}
		outcome.credits = append(outcome.credits, &creditbill.CreditIncome{
			ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT_INCOME),
			CreditCardID:      st.card.ID,
			CreditBillID:      bill.ID,
			CreditExpenseID:   header.ID,
			Description:       installmentDescription(header.Description, share.Installment, total),
			Amount:            share.Amount,
			InstallmentNumber: share.Installment,
			Date:              st.today,
			BaseModel:         types.GetDefaultBaseModel(ctx),
		})
		outcome.numbers = append(outcome.numbers, share.Installment)
		outcome.touch(bill.ID)
	}

	st.purchase.AddTags(types.RefundedPartialTag(n))
	return outcome, nil
}

// allocatePartial spreads a PARTIAL refund over the bills of the open
// installments, each taking at most what is still unrefunded on it. A purchase
// without installment rows takes the whole refund on the open statement.
func (s *refundService) allocatePartial(st *refundState, amount decimal.Decimal, total int) ([]billingcycle.RefundShare, error) {
	cycle := st.card.Cycle()
	if len(st.installments) == 0 {
		return cycle.DistributeRefund(amount, total, total-1, st.today)
	}

	targets := make([]billingcycle.RefundTarget, 0, len(st.installments))
	for _, inst := range st.openInstallments() {
		capacity := st.remaining(inst)
		if !capacity.IsPositive() {
			continue
		}
		statement := cycle.Statement(cycle.PeriodFor(st.today))
		if bill, ok := st.bills[inst.BillID()]; ok {
			statement = billingcycle.Statement{
				Period:      bill.Period(),
				ClosingDate: bill.ClosingDate,
				DueDate:     bill.DueDate,
			}
		}
		targets = append(targets, billingcycle.RefundTarget{
			Installment: inst.InstallmentNumber,
			Capacity:    capacity,
			Statement:   statement,
		})
	}
	return billingcycle.AllocateRefund(amount, targets)
}

// shareBill is the bill a PARTIAL share is credited on: the installment's own
// bill unless it is PAID, then the first bill still open from today on
func (s *refundService) shareBill(ctx context.Context, st *refundState, share billingcycle.RefundShare) (*creditbill.CreditBill, error) {
	inst, found := lo.Find(st.installments, func(e *creditexpense.CreditExpense) bool {
		return e.InstallmentNumber == share.Installment
	})
	if found {
		if bill, ok := st.bills[inst.BillID()]; ok {
			if bill.IsPaid() {
				return s.openBill(ctx, st, st.card.Cycle().PeriodFor(st.today))
			}
			return bill, nil
		}
	}

	bill, err := s.billService.GetOrCreateBill(ctx, st.card, share.Statement)
	if err != nil {
		return nil, err
	}
	if bill.IsPaid() {
		return s.openBill(ctx, st, share.Period.Add(1))
	}
	return bill, nil
}

// openBill returns the bill of the first statement from period on that is
// not PAID, creating it when missing
func (s *refundService) openBill(ctx context.Context, st *refundState, period billingcycle.Period) (*creditbill.CreditBill, error) {
	cycle := st.card.Cycle()
	for {
		bill, err := s.billService.GetOrCreateBill(ctx, st.card, cycle.Statement(period))
		if err != nil {
			return nil, err
		}
		if !bill.IsPaid() {
			return bill, nil
		}
		period = period.Add(1)
	}
}

func (s *refundService) refundInstallments(ctx context.Context, st *refundState, selected []int) (*refundOutcome, error) {
	byNumber := lo.KeyBy(st.installments, func(inst *creditexpense.CreditExpense) int {
		return inst.InstallmentNumber
	})

	missing := lo.Filter(selected, func(n int, _ int) bool {
		_, ok := byNumber[n]
		return !ok
	})
	if len(missing) > 0 {
		return nil, ierr.NewError("installments not found").
			WithHint("Some of the selected installments do not exist for this purchase").
			WithReportableDetails(map[string]any{
				"installments": missing,
			}).
			Mark(ierr.ErrNotFound)
	}

	refunded := st.refundedNumbers()
	repeated := lo.Filter(selected, func(n int, _ int) bool {
		return refunded[n]
	})
	if len(repeated) > 0 {
		return nil, ierr.NewError("installments already refunded").
			WithHint("Some of the selected installments have already been refunded").
			WithReportableDetails(map[string]any{
				"installments": repeated,
			}).
			Mark(ierr.ErrValidation)
	}

	exhausted := lo.Filter(selected, func(n int, _ int) bool {
		return !st.remaining(byNumber[n]).IsPositive()
	})
	if len(exhausted) > 0 {
		return nil, ierr.NewError("installments already refunded").
			WithHint("Earlier partial refunds already returned the whole of some selected installments").
			WithReportableDetails(map[string]any{
				"installments": exhausted,
			}).
			Mark(ierr.ErrValidation)
	}

	numbers := append([]int(nil), selected...)
	sort.Ints(numbers)

	requested := decimal.Zero
	for _, n := range numbers {
		requested = requested.Add(st.remaining(byNumber[n]))
	}
	if left := st.unrefunded(); requested.GreaterThan(left) {
		return nil, ierr.NewError("refund amount exceeds the refundable amount").
			WithHintf("At most %s can still be refunded", left.StringFixed(types.MoneyPrecision)).
			WithReportableDetails(map[string]any{
				"amount":     requested,
				"refundable": left,
			}).
			Mark(ierr.ErrValidation)
	}

	outcome := &refundOutcome{amount: decimal.Zero}
	for _, n := range numbers {
		inst := byNumber[n]
		amount := st.remaining(inst)

		if st.billClosed(inst) {
			// the closed statement stays as is, the money comes back on the
			// first statement still open
			bill, err := s.openBill(ctx, st, st.card.Cycle().PeriodFor(st.today))
			if err != nil {
				return nil, err
			}
			outcome.credits = append(outcome.credits, &creditbill.CreditIncome{
				ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT_INCOME),
				CreditCardID:      st.card.ID,
				CreditBillID:      bill.ID,
				CreditExpenseID:   inst.ID,
				Description:       "Refund: " + inst.Description,
				Amount:            amount,
				InstallmentNumber: n,
				Date:              st.today,
				BaseModel:         types.GetDefaultBaseModel(ctx),
			})
			outcome.touch(bill.ID)
		} else {
			record := s.newRefundRecord(ctx, st, amount, types.RefundOfTag(st.purchase.ID))
			record.Description = "Refund: " + inst.Description
			record.InstallmentNumber = n
			record.CreditBillID = inst.CreditBillID
			record.DueDate = inst.DueDate
			outcome.refunds = append(outcome.refunds, record)
			outcome.touch(inst.BillID())
		}

		outcome.amount = outcome.amount.Add(amount)
		outcome.numbers = append(outcome.numbers, n)
		st.purchase.AddTags(types.RefundedInstallmentTag(n))
	}

	return outcome, nil
}

// newRefundRecord builds a REFUND row of the purchase for amount. The row
// carries the amount negated and is not attached to any bill.
func (s *refundService) newRefundRecord(ctx context.Context, st *refundState, amount decimal.Decimal, tags ...string) *creditexpense.CreditExpense {
	return &creditexpense.CreditExpense{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT_EXPENSE),
		CreditCardID:    st.card.ID,
		Description:     "Refund: " + st.purchase.Description,
		Amount:          amount.Neg(),
		PurchaseDate:    st.today,
		Installments:    1,
		ExpenseType:     types.CreditExpenseTypeRefund,
		ParentExpenseID: lo.ToPtr(st.purchase.ID),
		Tags:            pq.StringArray(tags),
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

// settleBills runs after commit. Zero total bills of the card are promoted to
// PAID, retrying transient failures, then every bill status of the user is
// refreshed. Failures are logged and counted, never returned.
func (s *refundService) settleBills(ctx context.Context, creditCardID string) {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = s.Config.Billing.SweepMaxElapsed
	if b.MaxElapsedTime <= 0 {
		b.MaxElapsedTime = defaultSweepMaxElapsed
	}

	sweep := func() error {
		_, err := s.billService.SweepZeroTotalBills(ctx, creditCardID)
		if ierr.IsNotFound(err) || ierr.IsValidation(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	if err := backoff.Retry(sweep, backoff.WithContext(b, ctx)); err != nil {
		s.Logger.Errorw("failed to sweep zero total bills",
			"credit_card_id", creditCardID,
			"error", err,
		)
		if s.Metrics != nil {
			s.Metrics.IncBillSweepFailure()
		}
	}

	if _, err := s.billService.RefreshBillStatuses(ctx, []string{types.GetUserID(ctx)}); err != nil {
		s.Logger.Errorw("failed to refresh bill statuses",
			"credit_card_id", creditCardID,
			"error", err,
		)
	}
}

func toInt64Array(numbers []int) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, int64(n))
	}
	return out
}
