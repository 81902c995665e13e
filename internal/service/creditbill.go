package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pocketwise/pocketwise/internal/api/dto"
	"github.com/pocketwise/pocketwise/internal/domain/billingcycle"
	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/domain/creditcard"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
)

const (
	statusRefreshChanged   = "changed"
	statusRefreshUnchanged = "unchanged"
	statusRefreshFailed    = "failed"

	defaultStatusRefreshWorkers = 4
)

type CreditBillService interface {
	GetCreditBill(ctx context.Context, id string) (*dto.CreditBillResponse, error)
	ListCreditBills(ctx context.Context, filter *types.CreditBillFilter) (*dto.ListCreditBillsResponse, error)
	PayCreditBill(ctx context.Context, id string, req *dto.PayCreditBillRequest) (*dto.CreditBillResponse, error)

	// RecalculateBillTotal rebuilds the cached total of a bill from its active
	// line items and refreshes its status. Safe to call repeatedly.
	RecalculateBillTotal(ctx context.Context, billID string) (*creditbill.CreditBill, error)

	// GetOrCreateBill returns the bill of the card for a statement, creating
	// an empty one on first use
	GetOrCreateBill(ctx context.Context, card *creditcard.CreditCard, st billingcycle.Statement) (*creditbill.CreditBill, error)

	// SweepZeroTotalBills marks every unpaid bill of the card whose total is
	// zero as PAID and returns how many were promoted
	SweepZeroTotalBills(ctx context.Context, creditCardID string) (int, error)

	// RefreshBillStatuses re-evaluates the status of every unpaid bill of the
	// given users, or of every card owner when userIDs is empty
	RefreshBillStatuses(ctx context.Context, userIDs []string) (*dto.RefreshBillStatusesResponse, error)
}

type creditBillService struct {
	ServiceParams
}

func NewCreditBillService(params ServiceParams) CreditBillService {
	return &creditBillService{
		ServiceParams: params,
	}
}

func (s *creditBillService) GetCreditBill(ctx context.Context, id string) (*dto.CreditBillResponse, error) {
	bill, err := s.CreditBillRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	expenses, credits, err := s.lineItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.CreditBillResponse{
		CreditBill: bill,
		Expenses:   expenses,
		Credits:    credits,
	}, nil
}

func (s *creditBillService) ListCreditBills(ctx context.Context, filter *types.CreditBillFilter) (*dto.ListCreditBillsResponse, error) {
	if filter == nil {
		filter = types.NewCreditBillFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if filter.CreditCardID != "" {
		if _, err := s.loadCreditCard(ctx, filter.CreditCardID); err != nil {
			return nil, err
		}
	}

	bills, err := s.CreditBillRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.CreditBillRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(bills, func(bill *creditbill.CreditBill, _ int) *dto.CreditBillResponse {
		return &dto.CreditBillResponse{CreditBill: bill}
	})

	response := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &response, nil
}

func (s *creditBillService) PayCreditBill(ctx context.Context, id string, req *dto.PayCreditBillRequest) (*dto.CreditBillResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var bill *creditbill.CreditBill
	err := s.DB.WithTx(ctx, func(tx context.Context) error {
		var err error
		bill, err = s.RecalculateBillTotal(tx, id)
		if err != nil {
			return err
		}

		bill.PaidAmount = types.RoundMoney(bill.PaidAmount.Add(req.Amount))
		bill.RefreshStatus(s.Now())
		bill.Touch(tx)
		return s.CreditBillRepo.Update(tx, bill)
	})
	if err != nil {
		s.Logger.Errorw("failed to pay credit bill",
			"credit_bill_id", id,
			"amount", req.Amount,
			"error", err,
		)
		return nil, err
	}

	s.Logger.Infow("credit bill payment registered",
		"credit_bill_id", bill.ID,
		"amount", req.Amount,
		"paid_amount", bill.PaidAmount,
		"bill_status", bill.BillStatus,
	)

	return &dto.CreditBillResponse{CreditBill: bill}, nil
}

func (s *creditBillService) RecalculateBillTotal(ctx context.Context, billID string) (*creditbill.CreditBill, error) {
	var bill *creditbill.CreditBill
	err := s.DB.WithTx(ctx, func(tx context.Context) error {
		var err error
		bill, err = s.CreditBillRepo.Get(tx, billID)
		if err != nil {
			return err
		}

		expenses, credits, err := s.lineItems(tx, billID)
		if err != nil {
			return err
		}

		total := creditbill.CalculateTotal(expenses, credits)
		if !bill.Apply(total, s.Now()) {
			return nil
		}

		bill.Touch(tx)
		if err := s.CreditBillRepo.Update(tx, bill); err != nil {
			return err
		}

		s.Logger.Debugw("credit bill recalculated",
			"credit_bill_id", bill.ID,
			"total_amount", bill.TotalAmount,
			"bill_status", bill.BillStatus,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Metrics != nil {
		s.Metrics.IncBillsRecalculated(1)
	}
	return bill, nil
}

func (s *creditBillService) lineItems(ctx context.Context, billID string) ([]*creditexpense.CreditExpense, []*creditbill.CreditIncome, error) {
	expenseFilter := types.NewNoLimitCreditExpenseFilter()
	expenseFilter.CreditBillIDs = []string{billID}
	expenses, err := s.CreditExpenseRepo.List(ctx, expenseFilter)
	if err != nil {
		return nil, nil, err
	}

	creditFilter := types.NewNoLimitCreditIncomeFilter()
	creditFilter.CreditBillIDs = []string{billID}
	credits, err := s.CreditIncomeRepo.List(ctx, creditFilter)
	if err != nil {
		return nil, nil, err
	}

	return expenses, credits, nil
}

func (s *creditBillService) GetOrCreateBill(ctx context.Context, card *creditcard.CreditCard, st billingcycle.Statement) (*creditbill.CreditBill, error) {
	bill := creditbill.FromStatement(card.ID, st, types.GetDefaultBaseModel(ctx))
	return s.CreditBillRepo.GetOrCreate(ctx, bill)
}

func (s *creditBillService) SweepZeroTotalBills(ctx context.Context, creditCardID string) (int, error) {
	filter := types.NewNoLimitCreditBillFilter()
	filter.CreditCardID = creditCardID
	filter.BillStatus = []types.CreditBillStatus{
		types.CreditBillStatusPending,
		types.CreditBillStatusPartial,
		types.CreditBillStatusOverdue,
	}

	bills, err := s.CreditBillRepo.List(ctx, filter)
	if err != nil {
		return 0, err
	}

	promoted := 0
	for _, bill := range bills {
		if !types.NormalizeMoney(bill.TotalAmount).IsZero() {
			continue
		}

		bill.BillStatus = types.CreditBillStatusPaid
		bill.RefreshStatus(s.Now())
		bill.Touch(ctx)
		if err := s.CreditBillRepo.Update(ctx, bill); err != nil {
			return promoted, err
		}
		promoted++
	}

	if promoted > 0 {
		s.Logger.Infow("zero total bills marked as paid",
			"credit_card_id", creditCardID,
			"count", promoted,
		)
	}
	return promoted, nil
}

type cardRef struct {
	userID string
	cardID string
}

func (s *creditBillService) RefreshBillStatuses(ctx context.Context, userIDs []string) (*dto.RefreshBillStatusesResponse, error) {
	if len(userIDs) == 0 {
		var err error
		userIDs, err = s.CreditCardRepo.ListUserIDs(ctx)
		if err != nil {
			return nil, err
		}
	}

	refs := make([]cardRef, 0)
	for _, userID := range userIDs {
		cards, err := s.CreditCardRepo.List(types.SetUserID(ctx, userID), types.NewNoLimitCreditCardFilter())
		if err != nil {
			return nil, err
		}
		for _, card := range cards {
			refs = append(refs, cardRef{userID: userID, cardID: card.ID})
		}
	}

	workers := s.Config.Billing.StatusRefreshWorkers
	if workers <= 0 {
		workers = defaultStatusRefreshWorkers
	}

	var mu sync.Mutex
	response := &dto.RefreshBillStatusesResponse{Cards: len(refs)}
	now := s.Now()

	p := pool.New().WithMaxGoroutines(workers)
	for _, ref := range refs {
		p.Go(func() {
			bills, changed, err := s.refreshCardStatuses(types.SetUserID(ctx, ref.userID), ref.cardID, now)

			mu.Lock()
			defer mu.Unlock()
			response.Bills += bills
			response.Changed += changed
			if err != nil {
				response.Failed++
				s.Logger.Errorw("failed to refresh bill statuses",
					"user_id", ref.userID,
					"credit_card_id", ref.cardID,
					"error", err,
				)
			}
		})
	}
	p.Wait()

	s.Logger.Infow("bill statuses refreshed",
		"users", len(userIDs),
		"cards", response.Cards,
		"bills", response.Bills,
		"changed", response.Changed,
		"failed", response.Failed,
	)
	return response, nil
}

func (s *creditBillService) refreshCardStatuses(ctx context.Context, cardID string, now time.Time) (int, int, error) {
	filter := types.NewNoLimitCreditBillFilter()
	filter.CreditCardID = cardID
	filter.BillStatus = []types.CreditBillStatus{
		types.CreditBillStatusPending,
		types.CreditBillStatusPartial,
		types.CreditBillStatusOverdue,
	}

	bills, err := s.CreditBillRepo.List(ctx, filter)
	if err != nil {
		return 0, 0, err
	}

	sort.Slice(bills, func(i, j int) bool {
		return bills[i].ClosingDate.Before(bills[j].ClosingDate)
	})

	changed := 0
	for _, bill := range bills {
		if !bill.RefreshStatus(now) {
			s.observeStatusRefresh(statusRefreshUnchanged)
			continue
		}
		bill.Touch(ctx)
		if err := s.CreditBillRepo.Update(ctx, bill); err != nil {
			s.observeStatusRefresh(statusRefreshFailed)
			return len(bills), changed, err
		}
		s.observeStatusRefresh(statusRefreshChanged)
		changed++
	}
	return len(bills), changed, nil
}

func (s *creditBillService) observeStatusRefresh(outcome string) {
	if s.Metrics != nil {
		s.Metrics.ObserveStatusRefresh(outcome)
	}
}
