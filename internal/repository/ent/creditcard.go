package ent

import (
	"context"
	"time"

	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	domainCreditCard "github.com/pocketwise/pocketwise/internal/domain/creditcard"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/postgres"
	"github.com/pocketwise/pocketwise/internal/types"
)

type creditCardRepository struct {
	client    postgres.IClient
	log       *logger.Logger
	queryOpts CreditCardQueryOptions
}

func NewCreditCardRepository(client postgres.IClient, log *logger.Logger) domainCreditCard.Repository {
	return &creditCardRepository{
		client:    client,
		log:       log,
		queryOpts: CreditCardQueryOptions{},
	}
}

func (r *creditCardRepository) Create(ctx context.Context, c *domainCreditCard.CreditCard) error {
	r.log.Debugw("creating credit card",
		"credit_card_id", c.ID,
		"user_id", c.UserID,
	)

	_, err := r.client.Querier(ctx).CreditCard.Create().
		SetID(c.ID).
		SetUserID(c.UserID).
		SetName(c.Name).
		SetClosingDay(c.ClosingDay).
		SetDueDay(c.DueDay).
		SetCreditLimit(c.CreditLimit).
		SetStatus(string(c.Status)).
		SetCreatedAt(c.CreatedAt).
		SetUpdatedAt(c.UpdatedAt).
		SetCreatedBy(c.CreatedBy).
		SetUpdatedBy(c.UpdatedBy).
		Save(ctx)
	if err != nil {
		return dbError(err, "failed to create credit card")
	}
	return nil
}

func (r *creditCardRepository) Get(ctx context.Context, id string) (*domainCreditCard.CreditCard, error) {
	query := r.client.Querier(ctx).CreditCard.Query().
		Where(creditcard.ID(id))
	query = ApplyBaseFilters(ctx, query, r.queryOpts)

	c, err := query.Only(ctx)
	if err != nil {
		return nil, notFound(err, "credit card", id)
	}
	return domainCreditCard.FromEnt(c), nil
}

func (r *creditCardRepository) List(ctx context.Context, filter *types.CreditCardFilter) ([]*domainCreditCard.CreditCard, error) {
	if filter == nil {
		filter = types.NewNoLimitCreditCardFilter()
	}

	query := r.client.Querier(ctx).CreditCard.Query()
	query = ApplyQueryOptions(ctx, query, filter.QueryFilter, "created_at", r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	cards, err := query.All(ctx)
	if err != nil {
		return nil, dbError(err, "failed to list credit cards")
	}
	return domainCreditCard.FromEntList(cards), nil
}

func (r *creditCardRepository) Count(ctx context.Context, filter *types.CreditCardFilter) (int, error) {
	query := r.client.Querier(ctx).CreditCard.Query()
	query = ApplyBaseFilters(ctx, query, r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	count, err := query.Count(ctx)
	if err != nil {
		return 0, dbError(err, "failed to count credit cards")
	}
	return count, nil
}

func (r *creditCardRepository) Update(ctx context.Context, c *domainCreditCard.CreditCard) error {
	r.log.Debugw("updating credit card",
		"credit_card_id", c.ID,
		"closing_day", c.ClosingDay,
		"due_day", c.DueDay,
	)

	n, err := r.client.Querier(ctx).CreditCard.Update().
		Where(
			creditcard.ID(c.ID),
			creditcard.UserID(c.UserID),
			creditcard.Status(string(types.StatusActive)),
		).
		SetName(c.Name).
		SetClosingDay(c.ClosingDay).
		SetDueDay(c.DueDay).
		SetCreditLimit(c.CreditLimit).
		SetUpdatedAt(c.UpdatedAt).
		SetUpdatedBy(c.UpdatedBy).
		Save(ctx)
	if err != nil {
		return dbError(err, "failed to update credit card")
	}
	return affected(n, "credit card", c.ID)
}

func (r *creditCardRepository) Delete(ctx context.Context, id string) error {
	userID := types.GetUserID(ctx)

	n, err := r.client.Querier(ctx).CreditCard.Update().
		Where(
			creditcard.ID(id),
			creditcard.UserID(userID),
			creditcard.Status(string(types.StatusActive)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(userID).
		Save(ctx)
	if err != nil {
		return dbError(err, "failed to delete credit card")
	}
	return affected(n, "credit card", id)
}

// ListUserIDs returns every user owning an active card, used by the cron
// refresh
func (r *creditCardRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	userIDs, err := r.client.Querier(ctx).CreditCard.Query().
		Where(creditcard.Status(string(types.StatusActive))).
		Unique(true).
		Order(ent.Asc(creditcard.FieldUserID)).
		Select(creditcard.FieldUserID).
		Strings(ctx)
	if err != nil {
		return nil, dbError(err, "failed to list card owners")
	}
	return userIDs, nil
}

// CreditCardQuery type alias for better readability
type CreditCardQuery = *ent.CreditCardQuery

// CreditCardQueryOptions implements BaseQueryOptions for credit card queries
type CreditCardQueryOptions struct{}

func (o CreditCardQueryOptions) ApplyUserFilter(ctx context.Context, query CreditCardQuery) CreditCardQuery {
	return query.Where(creditcard.UserID(types.GetUserID(ctx)))
}

func (o CreditCardQueryOptions) ApplyStatusFilter(query CreditCardQuery, status string) CreditCardQuery {
	if status == "" {
		return query.Where(creditcard.StatusNotIn(string(types.StatusDeleted)))
	}
	return query.Where(creditcard.Status(status))
}

func (o CreditCardQueryOptions) ApplySortFilter(query CreditCardQuery, field string, order string) CreditCardQuery {
	orderFunc := ent.Desc
	if order == types.OrderAsc {
		orderFunc = ent.Asc
	}
	return query.Order(orderFunc(o.GetFieldName(field), creditcard.FieldID))
}

func (o CreditCardQueryOptions) ApplyPaginationFilter(query CreditCardQuery, limit int, offset int) CreditCardQuery {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

func (o CreditCardQueryOptions) GetFieldName(field string) string {
	switch field {
	case "created_at":
		return creditcard.FieldCreatedAt
	case "name":
		return creditcard.FieldName
	default:
		return field
	}
}

func (o CreditCardQueryOptions) applyEntityQueryOptions(_ context.Context, f *types.CreditCardFilter, query CreditCardQuery) CreditCardQuery {
	if f == nil {
		return query
	}
	if len(f.CreditCardIDs) > 0 {
		query = query.Where(creditcard.IDIn(f.CreditCardIDs...))
	}
	return query
}
