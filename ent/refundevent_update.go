// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/pocketwise/pocketwise/ent/refundevent"
)

// RefundEventUpdate is the builder for updating RefundEvent entities.
type RefundEventUpdate struct {
	config
	hooks    []Hook
	mutation *RefundEventMutation
}

// Where appends a list predicates to the RefundEventUpdate builder.
func (reu *RefundEventUpdate) Where(ps ...predicate.RefundEvent) *RefundEventUpdate {
	reu.mutation.Where(ps...)
	return reu
}

// SetStatus sets the "status" field.
func (reu *RefundEventUpdate) SetStatus(s string) *RefundEventUpdate {
	reu.mutation.SetStatus(s)
	return reu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (reu *RefundEventUpdate) SetNillableStatus(s *string) *RefundEventUpdate {
	if s != nil {
		reu.SetStatus(*s)
	}
	return reu
}

// SetUpdatedAt sets the "updated_at" field.
func (reu *RefundEventUpdate) SetUpdatedAt(t time.Time) *RefundEventUpdate {
	reu.mutation.SetUpdatedAt(t)
	return reu
}

// SetUpdatedBy sets the "updated_by" field.
func (reu *RefundEventUpdate) SetUpdatedBy(s string) *RefundEventUpdate {
	reu.mutation.SetUpdatedBy(s)
	return reu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (reu *RefundEventUpdate) SetNillableUpdatedBy(s *string) *RefundEventUpdate {
	if s != nil {
		reu.SetUpdatedBy(*s)
	}
	return reu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (reu *RefundEventUpdate) ClearUpdatedBy() *RefundEventUpdate {
	reu.mutation.ClearUpdatedBy()
	return reu
}

// Mutation returns the RefundEventMutation object of the builder.
func (reu *RefundEventUpdate) Mutation() *RefundEventMutation {
	return reu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (reu *RefundEventUpdate) Save(ctx context.Context) (int, error) {
	reu.defaults()
	return withHooks(ctx, reu.sqlSave, reu.mutation, reu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reu *RefundEventUpdate) SaveX(ctx context.Context) int {
	affected, err := reu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (reu *RefundEventUpdate) Exec(ctx context.Context) error {
	_, err := reu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reu *RefundEventUpdate) ExecX(ctx context.Context) {
	if err := reu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (reu *RefundEventUpdate) defaults() {
	if _, ok := reu.mutation.UpdatedAt(); !ok {
		v := refundevent.UpdateDefaultUpdatedAt()
		reu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reu *RefundEventUpdate) check() error {
	if reu.mutation.CreditExpenseCleared() && len(reu.mutation.CreditExpenseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RefundEvent.credit_expense"`)
	}
	if reu.mutation.CreditCardCleared() && len(reu.mutation.CreditCardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RefundEvent.credit_card"`)
	}
	return nil
}

func (reu *RefundEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := reu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(refundevent.Table, refundevent.Columns, sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString))
	if ps := reu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reu.mutation.Status(); ok {
		_spec.SetField(refundevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := reu.mutation.UpdatedAt(); ok {
		_spec.SetField(refundevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if reu.mutation.CreatedByCleared() {
		_spec.ClearField(refundevent.FieldCreatedBy, field.TypeString)
	}
	if value, ok := reu.mutation.UpdatedBy(); ok {
		_spec.SetField(refundevent.FieldUpdatedBy, field.TypeString, value)
	}
	if reu.mutation.UpdatedByCleared() {
		_spec.ClearField(refundevent.FieldUpdatedBy, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, reu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	reu.mutation.done = true
	return n, nil
}

// RefundEventUpdateOne is the builder for updating a single RefundEvent entity.
type RefundEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RefundEventMutation
}

// SetStatus sets the "status" field.
func (reuo *RefundEventUpdateOne) SetStatus(s string) *RefundEventUpdateOne {
	reuo.mutation.SetStatus(s)
	return reuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (reuo *RefundEventUpdateOne) SetNillableStatus(s *string) *RefundEventUpdateOne {
	if s != nil {
		reuo.SetStatus(*s)
	}
	return reuo
}

// SetUpdatedAt sets the "updated_at" field.
func (reuo *RefundEventUpdateOne) SetUpdatedAt(t time.Time) *RefundEventUpdateOne {
	reuo.mutation.SetUpdatedAt(t)
	return reuo
}

// SetUpdatedBy sets the "updated_by" field.
func (reuo *RefundEventUpdateOne) SetUpdatedBy(s string) *RefundEventUpdateOne {
	reuo.mutation.SetUpdatedBy(s)
	return reuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (reuo *RefundEventUpdateOne) SetNillableUpdatedBy(s *string) *RefundEventUpdateOne {
	if s != nil {
		reuo.SetUpdatedBy(*s)
	}
	return reuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (reuo *RefundEventUpdateOne) ClearUpdatedBy() *RefundEventUpdateOne {
	reuo.mutation.ClearUpdatedBy()
	return reuo
}

// Mutation returns the RefundEventMutation object of the builder.
func (reuo *RefundEventUpdateOne) Mutation() *RefundEventMutation {
	return reuo.mutation
}

// Where appends a list predicates to the RefundEventUpdate builder.
func (reuo *RefundEventUpdateOne) Where(ps ...predicate.RefundEvent) *RefundEventUpdateOne {
	reuo.mutation.Where(ps...)
	return reuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (reuo *RefundEventUpdateOne) Select(field string, fields ...string) *RefundEventUpdateOne {
	reuo.fields = append([]string{field}, fields...)
	return reuo
}

// Save executes the query and returns the updated RefundEvent entity.
func (reuo *RefundEventUpdateOne) Save(ctx context.Context) (*RefundEvent, error) {
	reuo.defaults()
	return withHooks(ctx, reuo.sqlSave, reuo.mutation, reuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reuo *RefundEventUpdateOne) SaveX(ctx context.Context) *RefundEvent {
	node, err := reuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (reuo *RefundEventUpdateOne) Exec(ctx context.Context) error {
	_, err := reuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reuo *RefundEventUpdateOne) ExecX(ctx context.Context) {
	if err := reuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (reuo *RefundEventUpdateOne) defaults() {
	if _, ok := reuo.mutation.UpdatedAt(); !ok {
		v := refundevent.UpdateDefaultUpdatedAt()
		reuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reuo *RefundEventUpdateOne) check() error {
	if reuo.mutation.CreditExpenseCleared() && len(reuo.mutation.CreditExpenseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RefundEvent.credit_expense"`)
	}
	if reuo.mutation.CreditCardCleared() && len(reuo.mutation.CreditCardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RefundEvent.credit_card"`)
	}
	return nil
}

func (reuo *RefundEventUpdateOne) sqlSave(ctx context.Context) (_node *RefundEvent, err error) {
	if err := reuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(refundevent.Table, refundevent.Columns, sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString))
	id, ok := reuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RefundEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := reuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, refundevent.FieldID)
		for _, f := range fields {
			if !refundevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != refundevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := reuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reuo.mutation.Status(); ok {
		_spec.SetField(refundevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := reuo.mutation.UpdatedAt(); ok {
		_spec.SetField(refundevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if reuo.mutation.CreatedByCleared() {
		_spec.ClearField(refundevent.FieldCreatedBy, field.TypeString)
	}
	if value, ok := reuo.mutation.UpdatedBy(); ok {
		_spec.SetField(refundevent.FieldUpdatedBy, field.TypeString, value)
	}
	if reuo.mutation.UpdatedByCleared() {
		_spec.ClearField(refundevent.FieldUpdatedBy, field.TypeString)
	}
	_node = &RefundEvent{config: reuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, reuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	reuo.mutation.done = true
	return _node, nil
}
