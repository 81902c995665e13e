package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/internal/api/dto"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
)

type CreditExpenseService interface {
	// CreateCreditExpense records a purchase and schedules all of its
	// installments on their statements in one transaction
	CreateCreditExpense(ctx context.Context, req *dto.CreateCreditExpenseRequest) (*dto.CreditExpenseResponse, error)
	GetCreditExpense(ctx context.Context, id string) (*dto.CreditExpenseResponse, error)
	ListCreditExpenses(ctx context.Context, filter *types.CreditExpenseFilter) (*dto.ListCreditExpensesResponse, error)
	ListRefundEvents(ctx context.Context, id string) (*dto.ListRefundEventsResponse, error)
}

type creditExpenseService struct {
	ServiceParams
}

func NewCreditExpenseService(params ServiceParams) CreditExpenseService {
	return &creditExpenseService{
		ServiceParams: params,
	}
}

func (s *creditExpenseService) CreateCreditExpense(ctx context.Context, req *dto.CreateCreditExpenseRequest) (*dto.CreditExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	card, err := s.loadCreditCard(ctx, req.CreditCardID)
	if err != nil {
		return nil, err
	}

	purchase := req.ToCreditExpense(ctx)
	schedule, err := card.Cycle().ScheduleInstallments(purchase.PurchaseDate, purchase.Installments, purchase.Amount)
	if err != nil {
		return nil, err
	}

	billService := NewCreditBillService(s.ServiceParams)
	items := make([]*creditexpense.CreditExpense, 0, len(schedule))

	err = s.DB.WithTx(ctx, func(tx context.Context) error {
		if err := s.CreditExpenseRepo.Create(tx, purchase); err != nil {
			return err
		}

		billIDs := make([]string, 0, len(schedule))
		for _, inst := range schedule {
			bill, err := billService.GetOrCreateBill(tx, card, inst.Statement)
			if err != nil {
				return err
			}

			dueDate := inst.DueDate
			items = append(items, &creditexpense.CreditExpense{
				ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT_EXPENSE),
				CreditCardID:      card.ID,
				Description:       installmentDescription(purchase.Description, inst.Number, len(schedule)),
				Amount:            inst.Amount,
				PurchaseDate:      purchase.PurchaseDate,
				Installments:      purchase.Installments,
				InstallmentNumber: inst.Number,
				ExpenseType:       types.CreditExpenseTypeExpense,
				ParentExpenseID:   lo.ToPtr(purchase.ID),
				CreditBillID:      lo.ToPtr(bill.ID),
				DueDate:           &dueDate,
				Tags:              pq.StringArray{},
				BaseModel:         types.GetDefaultBaseModel(tx),
			})
			billIDs = append(billIDs, bill.ID)
		}

		if err := s.CreditExpenseRepo.CreateBulk(tx, items); err != nil {
			return err
		}

		for _, billID := range lo.Uniq(billIDs) {
			if _, err := billService.RecalculateBillTotal(tx, billID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.Logger.Errorw("failed to create credit expense",
			"credit_card_id", req.CreditCardID,
			"amount", req.Amount,
			"installments", purchase.Installments,
			"error", err,
		)
		return nil, err
	}

	s.Logger.Infow("credit expense created",
		"credit_expense_id", purchase.ID,
		"credit_card_id", card.ID,
		"amount", purchase.Amount,
		"installments", purchase.Installments,
	)

	return &dto.CreditExpenseResponse{
		CreditExpense:    purchase,
		InstallmentItems: items,
	}, nil
}

func installmentDescription(description string, number, count int) string {
	if count == 1 {
		return description
	}
	return fmt.Sprintf("%s (%d/%d)", description, number, count)
}

func (s *creditExpenseService) GetCreditExpense(ctx context.Context, id string) (*dto.CreditExpenseResponse, error) {
	expense, err := s.CreditExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	response := &dto.CreditExpenseResponse{CreditExpense: expense}
	if !expense.IsRoot() {
		return response, nil
	}

	filter := types.NewNoLimitCreditExpenseFilter()
	filter.ParentExpenseIDs = []string{expense.ID}
	children, err := s.CreditExpenseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response.InstallmentItems, response.Refunds = splitChildren(children)
	return response, nil
}

// splitChildren separates the installments of a purchase from its refund
// records. Installments are returned in installment order.
func splitChildren(children []*creditexpense.CreditExpense) ([]*creditexpense.CreditExpense, []*creditexpense.CreditExpense) {
	refunds, installments := lo.FilterReject(children, func(e *creditexpense.CreditExpense, _ int) bool {
		return e.IsRefund()
	})
	sort.SliceStable(installments, func(i, j int) bool {
		return installments[i].InstallmentNumber < installments[j].InstallmentNumber
	})
	return installments, refunds
}

func (s *creditExpenseService) ListCreditExpenses(ctx context.Context, filter *types.CreditExpenseFilter) (*dto.ListCreditExpensesResponse, error) {
	if filter == nil {
		filter = types.NewCreditExpenseFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	filter.RootOnly = true

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	expenses, err := s.CreditExpenseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.CreditExpenseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(expenses, func(e *creditexpense.CreditExpense, _ int) *dto.CreditExpenseResponse {
		return &dto.CreditExpenseResponse{CreditExpense: e}
	})

	response := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &response, nil
}

func (s *creditExpenseService) ListRefundEvents(ctx context.Context, id string) (*dto.ListRefundEventsResponse, error) {
	expense, err := s.CreditExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !expense.IsRoot() {
		return nil, ierr.NewError("credit expense is not a purchase").
			WithHint("Refund history is only kept for purchases").
			WithReportableDetails(map[string]any{
				"credit_expense_id": id,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	events, err := s.RefundRepo.ListByCreditExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	response := types.NewListResponse(events, len(events), len(events), 0)
	return &response, nil
}
