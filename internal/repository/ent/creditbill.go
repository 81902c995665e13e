package ent

import (
	"context"
	"time"

	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	domainCreditBill "github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/postgres"
	"github.com/pocketwise/pocketwise/internal/types"
)

type creditBillRepository struct {
	client    postgres.IClient
	log       *logger.Logger
	queryOpts CreditBillQueryOptions
}

func NewCreditBillRepository(client postgres.IClient, log *logger.Logger) domainCreditBill.Repository {
	return &creditBillRepository{
		client:    client,
		log:       log,
		queryOpts: CreditBillQueryOptions{},
	}
}

func (r *creditBillRepository) builder(client *ent.Client, b *domainCreditBill.CreditBill) *ent.CreditBillCreate {
	return client.CreditBill.Create().
		SetID(b.ID).
		SetUserID(b.UserID).
		SetCreditCardID(b.CreditCardID).
		SetClosingDate(b.ClosingDate).
		SetDueDate(b.DueDate).
		SetTotalAmount(b.TotalAmount).
		SetPaidAmount(b.PaidAmount).
		SetBillStatus(b.BillStatus).
		SetNillablePaidAt(b.PaidAt).
		SetStatus(string(b.Status)).
		SetCreatedAt(b.CreatedAt).
		SetUpdatedAt(b.UpdatedAt).
		SetCreatedBy(b.CreatedBy).
		SetUpdatedBy(b.UpdatedBy)
}

func (r *creditBillRepository) Create(ctx context.Context, b *domainCreditBill.CreditBill) error {
	r.log.Debugw("creating credit bill",
		"credit_bill_id", b.ID,
		"credit_card_id", b.CreditCardID,
		"closing_date", b.ClosingDate,
	)

	if _, err := r.builder(r.client.Querier(ctx), b).Save(ctx); err != nil {
		return dbError(err, "failed to create credit bill")
	}
	return nil
}

// GetOrCreate relies on the unique (credit_card_id, closing_date) index. A
// conflicting insert is turned into a no-op update so the surrounding
// transaction stays usable, then the stored row is read back.
func (r *creditBillRepository) GetOrCreate(ctx context.Context, b *domainCreditBill.CreditBill) (*domainCreditBill.CreditBill, error) {
	client := r.client.Querier(ctx)

	err := r.builder(client, b).
		OnConflictColumns(creditbill.FieldCreditCardID, creditbill.FieldClosingDate).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, dbError(err, "failed to get or create credit bill")
	}

	stored, err := r.GetByClosingDate(ctx, b.CreditCardID, b.ClosingDate)
	if err != nil {
		return nil, err
	}

	if stored.ID != b.ID {
		r.log.Debugw("reusing existing credit bill",
			"credit_bill_id", stored.ID,
			"closing_date", stored.ClosingDate,
		)
	}
	return stored, nil
}

func (r *creditBillRepository) Get(ctx context.Context, id string) (*domainCreditBill.CreditBill, error) {
	query := r.client.Querier(ctx).CreditBill.Query().
		Where(creditbill.ID(id))
	query = ApplyBaseFilters(ctx, query, r.queryOpts)

	b, err := query.Only(ctx)
	if err != nil {
		return nil, notFound(err, "credit bill", id)
	}
	return domainCreditBill.FromEnt(b), nil
}

func (r *creditBillRepository) GetByClosingDate(ctx context.Context, creditCardID string, closingDate time.Time) (*domainCreditBill.CreditBill, error) {
	query := r.client.Querier(ctx).CreditBill.Query().
		Where(
			creditbill.CreditCardID(creditCardID),
			creditbill.ClosingDate(closingDate),
		)
	query = ApplyBaseFilters(ctx, query, r.queryOpts)

	b, err := query.Only(ctx)
	if err != nil {
		return nil, notFound(err, "credit bill", creditCardID+"@"+closingDate.Format(time.DateOnly))
	}
	return domainCreditBill.FromEnt(b), nil
}

func (r *creditBillRepository) List(ctx context.Context, filter *types.CreditBillFilter) ([]*domainCreditBill.CreditBill, error) {
	if filter == nil {
		filter = types.NewNoLimitCreditBillFilter()
	}

	query := r.client.Querier(ctx).CreditBill.Query()
	query = ApplyQueryOptions(ctx, query, filter.QueryFilter, "closing_date", r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	bills, err := query.All(ctx)
	if err != nil {
		return nil, dbError(err, "failed to list credit bills")
	}
	return domainCreditBill.FromEntList(bills), nil
}

func (r *creditBillRepository) Count(ctx context.Context, filter *types.CreditBillFilter) (int, error) {
	query := r.client.Querier(ctx).CreditBill.Query()
	query = ApplyBaseFilters(ctx, query, r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	count, err := query.Count(ctx)
	if err != nil {
		return 0, dbError(err, "failed to count credit bills")
	}
	return count, nil
}

func (r *creditBillRepository) Update(ctx context.Context, b *domainCreditBill.CreditBill) error {
	r.log.Debugw("updating credit bill",
		"credit_bill_id", b.ID,
		"total_amount", b.TotalAmount,
		"bill_status", b.BillStatus,
	)

	update := r.client.Querier(ctx).CreditBill.Update().
		Where(
			creditbill.ID(b.ID),
			creditbill.UserID(b.UserID),
			creditbill.Status(string(types.StatusActive)),
		).
		SetTotalAmount(b.TotalAmount).
		SetPaidAmount(b.PaidAmount).
		SetBillStatus(b.BillStatus).
		SetUpdatedAt(b.UpdatedAt).
		SetUpdatedBy(b.UpdatedBy)

	if b.PaidAt != nil {
		update.SetPaidAt(*b.PaidAt)
	} else {
		update.ClearPaidAt()
	}

	n, err := update.Save(ctx)
	if err != nil {
		return dbError(err, "failed to update credit bill")
	}
	return affected(n, "credit bill", b.ID)
}

// CreditBillQuery type alias for better readability
type CreditBillQuery = *ent.CreditBillQuery

// CreditBillQueryOptions implements BaseQueryOptions for credit bill queries
type CreditBillQueryOptions struct{}

func (o CreditBillQueryOptions) ApplyUserFilter(ctx context.Context, query CreditBillQuery) CreditBillQuery {
	return query.Where(creditbill.UserID(types.GetUserID(ctx)))
}

func (o CreditBillQueryOptions) ApplyStatusFilter(query CreditBillQuery, status string) CreditBillQuery {
	if status == "" {
		return query.Where(creditbill.StatusNotIn(string(types.StatusDeleted)))
	}
	return query.Where(creditbill.Status(status))
}

func (o CreditBillQueryOptions) ApplySortFilter(query CreditBillQuery, field string, order string) CreditBillQuery {
	orderFunc := ent.Desc
	if order == types.OrderAsc {
		orderFunc = ent.Asc
	}
	return query.Order(orderFunc(o.GetFieldName(field), creditbill.FieldID))
}

func (o CreditBillQueryOptions) ApplyPaginationFilter(query CreditBillQuery, limit int, offset int) CreditBillQuery {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

func (o CreditBillQueryOptions) GetFieldName(field string) string {
	switch field {
	case "closing_date":
		return creditbill.FieldClosingDate
	case "due_date":
		return creditbill.FieldDueDate
	default:
		return field
	}
}

func (o CreditBillQueryOptions) applyEntityQueryOptions(_ context.Context, f *types.CreditBillFilter, query CreditBillQuery) CreditBillQuery {
	if f == nil {
		return query
	}
	if f.CreditCardID != "" {
		query = query.Where(creditbill.CreditCardID(f.CreditCardID))
	}
	if len(f.CreditBillIDs) > 0 {
		query = query.Where(creditbill.IDIn(f.CreditBillIDs...))
	}
	if len(f.BillStatus) > 0 {
		query = query.Where(creditbill.BillStatusIn(f.BillStatus...))
	}
	return query
}
