package testutil

import (
	"context"

	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/internal/domain/refund"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/samber/lo"
)

// InMemoryRefundStore implements refund.Repository
type InMemoryRefundStore struct {
	*InMemoryStore[*refund.RefundEvent]
}

func NewInMemoryRefundStore() *InMemoryRefundStore {
	return &InMemoryRefundStore{
		InMemoryStore: NewInMemoryStore[*refund.RefundEvent](),
	}
}

func copyRefundEvent(e *refund.RefundEvent) *refund.RefundEvent {
	if e == nil {
		return nil
	}
	copied := *e
	copied.InstallmentNumbers = append(pq.Int64Array{}, e.InstallmentNumbers...)
	copied.CreditBillIDs = append(pq.StringArray{}, e.CreditBillIDs...)
	return &copied
}

func (s *InMemoryRefundStore) Create(ctx context.Context, e *refund.RefundEvent) error {
	existing, err := s.ListByCreditExpense(ctx, e.CreditExpenseID)
	if err != nil {
		return err
	}
	if lo.ContainsBy(existing, func(other *refund.RefundEvent) bool {
		return other.Sequence == e.Sequence
	}) {
		return ierr.NewErrorf("refund sequence %d already recorded", e.Sequence).
			Mark(ierr.ErrAlreadyExists)
	}
	return s.InMemoryStore.Create(ctx, e.ID, copyRefundEvent(e))
}

func (s *InMemoryRefundStore) ListByCreditExpense(ctx context.Context, creditExpenseID string) ([]*refund.RefundEvent, error) {
	events, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, e *refund.RefundEvent, _ interface{}) bool {
		return CheckUserScope(ctx, e.BaseModel) && e.CreditExpenseID == creditExpenseID
	}, func(i, j *refund.RefundEvent) bool {
		return i.Sequence < j.Sequence
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(events, func(e *refund.RefundEvent, _ int) *refund.RefundEvent {
		return copyRefundEvent(e)
	}), nil
}
