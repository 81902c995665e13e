// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/refundevent"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// RefundEventCreate is the builder for creating a RefundEvent entity.
type RefundEventCreate struct {
	config
	mutation *RefundEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (rec *RefundEventCreate) SetUserID(s string) *RefundEventCreate {
	rec.mutation.SetUserID(s)
	return rec
}

// SetStatus sets the "status" field.
func (rec *RefundEventCreate) SetStatus(s string) *RefundEventCreate {
	rec.mutation.SetStatus(s)
	return rec
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (rec *RefundEventCreate) SetNillableStatus(s *string) *RefundEventCreate {
	if s != nil {
		rec.SetStatus(*s)
	}
	return rec
}

// SetCreatedAt sets the "created_at" field.
func (rec *RefundEventCreate) SetCreatedAt(t time.Time) *RefundEventCreate {
	rec.mutation.SetCreatedAt(t)
	return rec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rec *RefundEventCreate) SetNillableCreatedAt(t *time.Time) *RefundEventCreate {
	if t != nil {
		rec.SetCreatedAt(*t)
	}
	return rec
}

// SetUpdatedAt sets the "updated_at" field.
func (rec *RefundEventCreate) SetUpdatedAt(t time.Time) *RefundEventCreate {
	rec.mutation.SetUpdatedAt(t)
	return rec
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (rec *RefundEventCreate) SetNillableUpdatedAt(t *time.Time) *RefundEventCreate {
	if t != nil {
		rec.SetUpdatedAt(*t)
	}
	return rec
}

// SetCreatedBy sets the "created_by" field.
func (rec *RefundEventCreate) SetCreatedBy(s string) *RefundEventCreate {
	rec.mutation.SetCreatedBy(s)
	return rec
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (rec *RefundEventCreate) SetNillableCreatedBy(s *string) *RefundEventCreate {
	if s != nil {
		rec.SetCreatedBy(*s)
	}
	return rec
}

// SetUpdatedBy sets the "updated_by" field.
func (rec *RefundEventCreate) SetUpdatedBy(s string) *RefundEventCreate {
	rec.mutation.SetUpdatedBy(s)
	return rec
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (rec *RefundEventCreate) SetNillableUpdatedBy(s *string) *RefundEventCreate {
	if s != nil {
		rec.SetUpdatedBy(*s)
	}
	return rec
}

// SetCreditExpenseID sets the "credit_expense_id" field.
func (rec *RefundEventCreate) SetCreditExpenseID(s string) *RefundEventCreate {
	rec.mutation.SetCreditExpenseID(s)
	return rec
}

// SetCreditCardID sets the "credit_card_id" field.
func (rec *RefundEventCreate) SetCreditCardID(s string) *RefundEventCreate {
	rec.mutation.SetCreditCardID(s)
	return rec
}

// SetRefundType sets the "refund_type" field.
func (rec *RefundEventCreate) SetRefundType(tt types.RefundType) *RefundEventCreate {
	rec.mutation.SetRefundType(tt)
	return rec
}

// SetAmount sets the "amount" field.
func (rec *RefundEventCreate) SetAmount(d decimal.Decimal) *RefundEventCreate {
	rec.mutation.SetAmount(d)
	return rec
}

// SetSequence sets the "sequence" field.
func (rec *RefundEventCreate) SetSequence(i int) *RefundEventCreate {
	rec.mutation.SetSequence(i)
	return rec
}

// SetInstallmentNumbers sets the "installment_numbers" field.
func (rec *RefundEventCreate) SetInstallmentNumbers(pq pq.Int64Array) *RefundEventCreate {
	rec.mutation.SetInstallmentNumbers(pq)
	return rec
}

// SetCreditBills sets the "credit_bills" field.
func (rec *RefundEventCreate) SetCreditBills(pa pq.StringArray) *RefundEventCreate {
	rec.mutation.SetCreditBills(pa)
	return rec
}

// SetID sets the "id" field.
func (rec *RefundEventCreate) SetID(s string) *RefundEventCreate {
	rec.mutation.SetID(s)
	return rec
}

// SetCreditExpense sets the "credit_expense" edge to the CreditExpense entity.
func (rec *RefundEventCreate) SetCreditExpense(c *CreditExpense) *RefundEventCreate {
	return rec.SetCreditExpenseID(c.ID)
}

// SetCreditCard sets the "credit_card" edge to the CreditCard entity.
func (rec *RefundEventCreate) SetCreditCard(c *CreditCard) *RefundEventCreate {
	return rec.SetCreditCardID(c.ID)
}

// Mutation returns the RefundEventMutation object of the builder.
func (rec *RefundEventCreate) Mutation() *RefundEventMutation {
	return rec.mutation
}

// Save creates the RefundEvent in the database.
func (rec *RefundEventCreate) Save(ctx context.Context) (*RefundEvent, error) {
	rec.defaults()
	return withHooks(ctx, rec.sqlSave, rec.mutation, rec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rec *RefundEventCreate) SaveX(ctx context.Context) *RefundEvent {
	v, err := rec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rec *RefundEventCreate) Exec(ctx context.Context) error {
	_, err := rec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rec *RefundEventCreate) ExecX(ctx context.Context) {
	if err := rec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rec *RefundEventCreate) defaults() {
	if _, ok := rec.mutation.Status(); !ok {
		v := refundevent.DefaultStatus
		rec.mutation.SetStatus(v)
	}
	if _, ok := rec.mutation.CreatedAt(); !ok {
		v := refundevent.DefaultCreatedAt()
		rec.mutation.SetCreatedAt(v)
	}
	if _, ok := rec.mutation.UpdatedAt(); !ok {
		v := refundevent.DefaultUpdatedAt()
		rec.mutation.SetUpdatedAt(v)
	}
	if _, ok := rec.mutation.InstallmentNumbers(); !ok {
		v := refundevent.DefaultInstallmentNumbers
		rec.mutation.SetInstallmentNumbers(v)
	}
	if _, ok := rec.mutation.CreditBills(); !ok {
		v := refundevent.DefaultCreditBills
		rec.mutation.SetCreditBills(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rec *RefundEventCreate) check() error {
	if _, ok := rec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RefundEvent.user_id"`)}
	}
	if v, ok := rec.mutation.UserID(); ok {
		if err := refundevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RefundEvent.user_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RefundEvent.status"`)}
	}
	if _, ok := rec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RefundEvent.created_at"`)}
	}
	if _, ok := rec.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RefundEvent.updated_at"`)}
	}
	if _, ok := rec.mutation.CreditExpenseID(); !ok {
		return &ValidationError{Name: "credit_expense_id", err: errors.New(`ent: missing required field "RefundEvent.credit_expense_id"`)}
	}
	if v, ok := rec.mutation.CreditExpenseID(); ok {
		if err := refundevent.CreditExpenseIDValidator(v); err != nil {
			return &ValidationError{Name: "credit_expense_id", err: fmt.Errorf(`ent: validator failed for field "RefundEvent.credit_expense_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.CreditCardID(); !ok {
		return &ValidationError{Name: "credit_card_id", err: errors.New(`ent: missing required field "RefundEvent.credit_card_id"`)}
	}
	if v, ok := rec.mutation.CreditCardID(); ok {
		if err := refundevent.CreditCardIDValidator(v); err != nil {
			return &ValidationError{Name: "credit_card_id", err: fmt.Errorf(`ent: validator failed for field "RefundEvent.credit_card_id": %w`, err)}
		}
	}
	if _, ok := rec.mutation.RefundType(); !ok {
		return &ValidationError{Name: "refund_type", err: errors.New(`ent: missing required field "RefundEvent.refund_type"`)}
	}
	if v, ok := rec.mutation.RefundType(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "refund_type", err: fmt.Errorf(`ent: validator failed for field "RefundEvent.refund_type": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "RefundEvent.amount"`)}
	}
	if _, ok := rec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RefundEvent.sequence"`)}
	}
	if v, ok := rec.mutation.Sequence(); ok {
		if err := refundevent.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "RefundEvent.sequence": %w`, err)}
		}
	}
	if _, ok := rec.mutation.InstallmentNumbers(); !ok {
		return &ValidationError{Name: "installment_numbers", err: errors.New(`ent: missing required field "RefundEvent.installment_numbers"`)}
	}
	if _, ok := rec.mutation.CreditBills(); !ok {
		return &ValidationError{Name: "credit_bills", err: errors.New(`ent: missing required field "RefundEvent.credit_bills"`)}
	}
	if len(rec.mutation.CreditExpenseIDs()) == 0 {
		return &ValidationError{Name: "credit_expense", err: errors.New(`ent: missing required edge "RefundEvent.credit_expense"`)}
	}
	if len(rec.mutation.CreditCardIDs()) == 0 {
		return &ValidationError{Name: "credit_card", err: errors.New(`ent: missing required edge "RefundEvent.credit_card"`)}
	}
	return nil
}

func (rec *RefundEventCreate) sqlSave(ctx context.Context) (*RefundEvent, error) {
	if err := rec.check(); err != nil {
		return nil, err
	}
	_node, _spec := rec.createSpec()
	if err := sqlgraph.CreateNode(ctx, rec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RefundEvent.ID type: %T", _spec.ID.Value)
		}
	}
	rec.mutation.id = &_node.ID
	rec.mutation.done = true
	return _node, nil
}

func (rec *RefundEventCreate) createSpec() (*RefundEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RefundEvent{config: rec.config}
		_spec = sqlgraph.NewCreateSpec(refundevent.Table, sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = rec.conflict
	if id, ok := rec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := rec.mutation.UserID(); ok {
		_spec.SetField(refundevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := rec.mutation.Status(); ok {
		_spec.SetField(refundevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := rec.mutation.CreatedAt(); ok {
		_spec.SetField(refundevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := rec.mutation.UpdatedAt(); ok {
		_spec.SetField(refundevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := rec.mutation.CreatedBy(); ok {
		_spec.SetField(refundevent.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := rec.mutation.UpdatedBy(); ok {
		_spec.SetField(refundevent.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := rec.mutation.RefundType(); ok {
		_spec.SetField(refundevent.FieldRefundType, field.TypeString, value)
		_node.RefundType = value
	}
	if value, ok := rec.mutation.Amount(); ok {
		_spec.SetField(refundevent.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := rec.mutation.Sequence(); ok {
		_spec.SetField(refundevent.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := rec.mutation.InstallmentNumbers(); ok {
		_spec.SetField(refundevent.FieldInstallmentNumbers, field.TypeOther, value)
		_node.InstallmentNumbers = value
	}
	if value, ok := rec.mutation.CreditBills(); ok {
		_spec.SetField(refundevent.FieldCreditBills, field.TypeOther, value)
		_node.CreditBills = value
	}
	if nodes := rec.mutation.CreditExpenseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   refundevent.CreditExpenseTable,
			Columns: []string{refundevent.CreditExpenseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CreditExpenseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := rec.mutation.CreditCardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   refundevent.CreditCardTable,
			Columns: []string{refundevent.CreditCardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditcard.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CreditCardID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RefundEvent.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RefundEventUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (rec *RefundEventCreate) OnConflict(opts ...sql.ConflictOption) *RefundEventUpsertOne {
	rec.conflict = opts
	return &RefundEventUpsertOne{
		create: rec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RefundEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rec *RefundEventCreate) OnConflictColumns(columns ...string) *RefundEventUpsertOne {
	rec.conflict = append(rec.conflict, sql.ConflictColumns(columns...))
	return &RefundEventUpsertOne{
		create: rec,
	}
}

type (
	// RefundEventUpsertOne is the builder for "upsert"-ing
	//  one RefundEvent node.
	RefundEventUpsertOne struct {
		create *RefundEventCreate
	}

	// RefundEventUpsert is the "OnConflict" setter.
	RefundEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *RefundEventUpsert) SetStatus(v string) *RefundEventUpsert {
	u.Set(refundevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RefundEventUpsert) UpdateStatus() *RefundEventUpsert {
	u.SetExcluded(refundevent.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RefundEventUpsert) SetUpdatedAt(v time.Time) *RefundEventUpsert {
	u.Set(refundevent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RefundEventUpsert) UpdateUpdatedAt() *RefundEventUpsert {
	u.SetExcluded(refundevent.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *RefundEventUpsert) SetUpdatedBy(v string) *RefundEventUpsert {
	u.Set(refundevent.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *RefundEventUpsert) UpdateUpdatedBy() *RefundEventUpsert {
	u.SetExcluded(refundevent.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *RefundEventUpsert) ClearUpdatedBy() *RefundEventUpsert {
	u.SetNull(refundevent.FieldUpdatedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RefundEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(refundevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RefundEventUpsertOne) UpdateNewValues() *RefundEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(refundevent.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(refundevent.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(refundevent.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(refundevent.FieldCreatedBy)
		}
		if _, exists := u.create.mutation.CreditExpenseID(); exists {
			s.SetIgnore(refundevent.FieldCreditExpenseID)
		}
		if _, exists := u.create.mutation.CreditCardID(); exists {
			s.SetIgnore(refundevent.FieldCreditCardID)
		}
		if _, exists := u.create.mutation.RefundType(); exists {
			s.SetIgnore(refundevent.FieldRefundType)
		}
		if _, exists := u.create.mutation.Amount(); exists {
			s.SetIgnore(refundevent.FieldAmount)
		}
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(refundevent.FieldSequence)
		}
		if _, exists := u.create.mutation.InstallmentNumbers(); exists {
			s.SetIgnore(refundevent.FieldInstallmentNumbers)
		}
		if _, exists := u.create.mutation.CreditBills(); exists {
			s.SetIgnore(refundevent.FieldCreditBills)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RefundEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RefundEventUpsertOne) Ignore() *RefundEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RefundEventUpsertOne) DoNothing() *RefundEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RefundEventCreate.OnConflict
// documentation for more info.
func (u *RefundEventUpsertOne) Update(set func(*RefundEventUpsert)) *RefundEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RefundEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RefundEventUpsertOne) SetStatus(v string) *RefundEventUpsertOne {
	return u.Update(func(s *RefundEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RefundEventUpsertOne) UpdateStatus() *RefundEventUpsertOne {
	return u.Update(func(s *RefundEventUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RefundEventUpsertOne) SetUpdatedAt(v time.Time) *RefundEventUpsertOne {
	return u.Update(func(s *RefundEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RefundEventUpsertOne) UpdateUpdatedAt() *RefundEventUpsertOne {
	return u.Update(func(s *RefundEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *RefundEventUpsertOne) SetUpdatedBy(v string) *RefundEventUpsertOne {
	return u.Update(func(s *RefundEventUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *RefundEventUpsertOne) UpdateUpdatedBy() *RefundEventUpsertOne {
	return u.Update(func(s *RefundEventUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *RefundEventUpsertOne) ClearUpdatedBy() *RefundEventUpsertOne {
	return u.Update(func(s *RefundEventUpsert) {
		s.ClearUpdatedBy()
	})
}

// Exec executes the query.
func (u *RefundEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RefundEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RefundEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RefundEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RefundEventUpsertOne.ID is not supported by MySQL driver. Use RefundEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RefundEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RefundEventCreateBulk is the builder for creating many RefundEvent entities in bulk.
type RefundEventCreateBulk struct {
	config
	err      error
	builders []*RefundEventCreate
	conflict []sql.ConflictOption
}

// Save creates the RefundEvent entities in the database.
func (recb *RefundEventCreateBulk) Save(ctx context.Context) ([]*RefundEvent, error) {
	if recb.err != nil {
		return nil, recb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(recb.builders))
	nodes := make([]*RefundEvent, len(recb.builders))
	mutators := make([]Mutator, len(recb.builders))
	for i := range recb.builders {
		func(i int, root context.Context) {
			builder := recb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RefundEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, recb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = recb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, recb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, recb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (recb *RefundEventCreateBulk) SaveX(ctx context.Context) []*RefundEvent {
	v, err := recb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (recb *RefundEventCreateBulk) Exec(ctx context.Context) error {
	_, err := recb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (recb *RefundEventCreateBulk) ExecX(ctx context.Context) {
	if err := recb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RefundEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RefundEventUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (recb *RefundEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *RefundEventUpsertBulk {
	recb.conflict = opts
	return &RefundEventUpsertBulk{
		create: recb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RefundEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (recb *RefundEventCreateBulk) OnConflictColumns(columns ...string) *RefundEventUpsertBulk {
	recb.conflict = append(recb.conflict, sql.ConflictColumns(columns...))
	return &RefundEventUpsertBulk{
		create: recb,
	}
}

// RefundEventUpsertBulk is the builder for "upsert"-ing
// a bulk of RefundEvent nodes.
type RefundEventUpsertBulk struct {
	create *RefundEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RefundEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(refundevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RefundEventUpsertBulk) UpdateNewValues() *RefundEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(refundevent.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(refundevent.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(refundevent.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(refundevent.FieldCreatedBy)
			}
			if _, exists := b.mutation.CreditExpenseID(); exists {
				s.SetIgnore(refundevent.FieldCreditExpenseID)
			}
			if _, exists := b.mutation.CreditCardID(); exists {
				s.SetIgnore(refundevent.FieldCreditCardID)
			}
			if _, exists := b.mutation.RefundType(); exists {
				s.SetIgnore(refundevent.FieldRefundType)
			}
			if _, exists := b.mutation.Amount(); exists {
				s.SetIgnore(refundevent.FieldAmount)
			}
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(refundevent.FieldSequence)
			}
			if _, exists := b.mutation.InstallmentNumbers(); exists {
				s.SetIgnore(refundevent.FieldInstallmentNumbers)
			}
			if _, exists := b.mutation.CreditBills(); exists {
				s.SetIgnore(refundevent.FieldCreditBills)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RefundEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RefundEventUpsertBulk) Ignore() *RefundEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RefundEventUpsertBulk) DoNothing() *RefundEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RefundEventCreateBulk.OnConflict
// documentation for more info.
func (u *RefundEventUpsertBulk) Update(set func(*RefundEventUpsert)) *RefundEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RefundEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RefundEventUpsertBulk) SetStatus(v string) *RefundEventUpsertBulk {
	return u.Update(func(s *RefundEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RefundEventUpsertBulk) UpdateStatus() *RefundEventUpsertBulk {
	return u.Update(func(s *RefundEventUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RefundEventUpsertBulk) SetUpdatedAt(v time.Time) *RefundEventUpsertBulk {
	return u.Update(func(s *RefundEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RefundEventUpsertBulk) UpdateUpdatedAt() *RefundEventUpsertBulk {
	return u.Update(func(s *RefundEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *RefundEventUpsertBulk) SetUpdatedBy(v string) *RefundEventUpsertBulk {
	return u.Update(func(s *RefundEventUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *RefundEventUpsertBulk) UpdateUpdatedBy() *RefundEventUpsertBulk {
	return u.Update(func(s *RefundEventUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *RefundEventUpsertBulk) ClearUpdatedBy() *RefundEventUpsertBulk {
	return u.Update(func(s *RefundEventUpsert) {
		s.ClearUpdatedBy()
	})
}

// Exec executes the query.
func (u *RefundEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RefundEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RefundEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RefundEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
