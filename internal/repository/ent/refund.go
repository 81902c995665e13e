package ent

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/ent/refundevent"
	"github.com/pocketwise/pocketwise/ent/schema"
	domainRefund "github.com/pocketwise/pocketwise/internal/domain/refund"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/postgres"
	"github.com/pocketwise/pocketwise/internal/types"
)

type refundRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

// NewRefundRepository stores the append-only refund ledger
func NewRefundRepository(client postgres.IClient, log *logger.Logger) domainRefund.Repository {
	return &refundRepository{
		client: client,
		log:    log,
	}
}

func (r *refundRepository) Create(ctx context.Context, event *domainRefund.RefundEvent) error {
	r.log.Infow("recording refund",
		"refund_id", event.ID,
		"credit_expense_id", event.CreditExpenseID,
		"refund_type", event.RefundType,
		"sequence", event.Sequence,
	)

	installments := event.InstallmentNumbers
	if installments == nil {
		installments = pq.Int64Array{}
	}
	bills := event.CreditBillIDs
	if bills == nil {
		bills = pq.StringArray{}
	}

	_, err := r.client.Querier(ctx).RefundEvent.Create().
		SetID(event.ID).
		SetUserID(event.UserID).
		SetCreditExpenseID(event.CreditExpenseID).
		SetCreditCardID(event.CreditCardID).
		SetRefundType(event.RefundType).
		SetAmount(event.Amount).
		SetSequence(event.Sequence).
		SetInstallmentNumbers(installments).
		SetCreditBills(bills).
		SetStatus(string(event.Status)).
		SetCreatedAt(event.CreatedAt).
		SetUpdatedAt(event.UpdatedAt).
		SetCreatedBy(event.CreatedBy).
		SetUpdatedBy(event.UpdatedBy).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Constraint == schema.Idx_refund_event_expense_sequence_unique {
				return ierr.WithError(err).
					WithHint("Another refund of this purchase was recorded concurrently").
					WithReportableDetails(map[string]any{
						"credit_expense_id": event.CreditExpenseID,
						"sequence":          event.Sequence,
					}).
					Mark(ierr.ErrAlreadyExists)
			}
		}
		return dbError(err, "failed to record refund")
	}
	return nil
}

func (r *refundRepository) ListByCreditExpense(ctx context.Context, creditExpenseID string) ([]*domainRefund.RefundEvent, error) {
	events, err := r.client.Querier(ctx).RefundEvent.Query().
		Where(
			refundevent.CreditExpenseID(creditExpenseID),
			refundevent.UserID(types.GetUserID(ctx)),
			refundevent.Status(string(types.StatusActive)),
		).
		Order(ent.Asc(refundevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, dbError(err, "failed to list refunds")
	}
	return domainRefund.FromEntList(events), nil
}
