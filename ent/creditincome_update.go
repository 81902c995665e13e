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
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/predicate"
)

// CreditIncomeUpdate is the builder for updating CreditIncome entities.
type CreditIncomeUpdate struct {
	config
	hooks    []Hook
	mutation *CreditIncomeMutation
}

// Where appends a list predicates to the CreditIncomeUpdate builder.
func (ciu *CreditIncomeUpdate) Where(ps ...predicate.CreditIncome) *CreditIncomeUpdate {
	ciu.mutation.Where(ps...)
	return ciu
}

// SetStatus sets the "status" field.
func (ciu *CreditIncomeUpdate) SetStatus(s string) *CreditIncomeUpdate {
	ciu.mutation.SetStatus(s)
	return ciu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ciu *CreditIncomeUpdate) SetNillableStatus(s *string) *CreditIncomeUpdate {
	if s != nil {
		ciu.SetStatus(*s)
	}
	return ciu
}

// SetUpdatedAt sets the "updated_at" field.
func (ciu *CreditIncomeUpdate) SetUpdatedAt(t time.Time) *CreditIncomeUpdate {
	ciu.mutation.SetUpdatedAt(t)
	return ciu
}

// SetUpdatedBy sets the "updated_by" field.
func (ciu *CreditIncomeUpdate) SetUpdatedBy(s string) *CreditIncomeUpdate {
	ciu.mutation.SetUpdatedBy(s)
	return ciu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ciu *CreditIncomeUpdate) SetNillableUpdatedBy(s *string) *CreditIncomeUpdate {
	if s != nil {
		ciu.SetUpdatedBy(*s)
	}
	return ciu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (ciu *CreditIncomeUpdate) ClearUpdatedBy() *CreditIncomeUpdate {
	ciu.mutation.ClearUpdatedBy()
	return ciu
}

// SetDescription sets the "description" field.
func (ciu *CreditIncomeUpdate) SetDescription(s string) *CreditIncomeUpdate {
	ciu.mutation.SetDescription(s)
	return ciu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ciu *CreditIncomeUpdate) SetNillableDescription(s *string) *CreditIncomeUpdate {
	if s != nil {
		ciu.SetDescription(*s)
	}
	return ciu
}

// Mutation returns the CreditIncomeMutation object of the builder.
func (ciu *CreditIncomeUpdate) Mutation() *CreditIncomeMutation {
	return ciu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ciu *CreditIncomeUpdate) Save(ctx context.Context) (int, error) {
	ciu.defaults()
	return withHooks(ctx, ciu.sqlSave, ciu.mutation, ciu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ciu *CreditIncomeUpdate) SaveX(ctx context.Context) int {
	affected, err := ciu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ciu *CreditIncomeUpdate) Exec(ctx context.Context) error {
	_, err := ciu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ciu *CreditIncomeUpdate) ExecX(ctx context.Context) {
	if err := ciu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ciu *CreditIncomeUpdate) defaults() {
	if _, ok := ciu.mutation.UpdatedAt(); !ok {
		v := creditincome.UpdateDefaultUpdatedAt()
		ciu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ciu *CreditIncomeUpdate) check() error {
	if ciu.mutation.CreditCardCleared() && len(ciu.mutation.CreditCardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditIncome.credit_card"`)
	}
	if ciu.mutation.CreditBillCleared() && len(ciu.mutation.CreditBillIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditIncome.credit_bill"`)
	}
	if ciu.mutation.CreditExpenseCleared() && len(ciu.mutation.CreditExpenseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditIncome.credit_expense"`)
	}
	return nil
}

func (ciu *CreditIncomeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ciu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditincome.Table, creditincome.Columns, sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString))
	if ps := ciu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ciu.mutation.Status(); ok {
		_spec.SetField(creditincome.FieldStatus, field.TypeString, value)
	}
	if value, ok := ciu.mutation.UpdatedAt(); ok {
		_spec.SetField(creditincome.FieldUpdatedAt, field.TypeTime, value)
	}
	if ciu.mutation.CreatedByCleared() {
		_spec.ClearField(creditincome.FieldCreatedBy, field.TypeString)
	}
	if value, ok := ciu.mutation.UpdatedBy(); ok {
		_spec.SetField(creditincome.FieldUpdatedBy, field.TypeString, value)
	}
	if ciu.mutation.UpdatedByCleared() {
		_spec.ClearField(creditincome.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := ciu.mutation.Description(); ok {
		_spec.SetField(creditincome.FieldDescription, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ciu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditincome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ciu.mutation.done = true
	return n, nil
}

// CreditIncomeUpdateOne is the builder for updating a single CreditIncome entity.
type CreditIncomeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditIncomeMutation
}

// SetStatus sets the "status" field.
func (ciuo *CreditIncomeUpdateOne) SetStatus(s string) *CreditIncomeUpdateOne {
	ciuo.mutation.SetStatus(s)
	return ciuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ciuo *CreditIncomeUpdateOne) SetNillableStatus(s *string) *CreditIncomeUpdateOne {
	if s != nil {
		ciuo.SetStatus(*s)
	}
	return ciuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ciuo *CreditIncomeUpdateOne) SetUpdatedAt(t time.Time) *CreditIncomeUpdateOne {
	ciuo.mutation.SetUpdatedAt(t)
	return ciuo
}

// SetUpdatedBy sets the "updated_by" field.
func (ciuo *CreditIncomeUpdateOne) SetUpdatedBy(s string) *CreditIncomeUpdateOne {
	ciuo.mutation.SetUpdatedBy(s)
	return ciuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ciuo *CreditIncomeUpdateOne) SetNillableUpdatedBy(s *string) *CreditIncomeUpdateOne {
	if s != nil {
		ciuo.SetUpdatedBy(*s)
	}
	return ciuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (ciuo *CreditIncomeUpdateOne) ClearUpdatedBy() *CreditIncomeUpdateOne {
	ciuo.mutation.ClearUpdatedBy()
	return ciuo
}

// SetDescription sets the "description" field.
func (ciuo *CreditIncomeUpdateOne) SetDescription(s string) *CreditIncomeUpdateOne {
	ciuo.mutation.SetDescription(s)
	return ciuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ciuo *CreditIncomeUpdateOne) SetNillableDescription(s *string) *CreditIncomeUpdateOne {
	if s != nil {
		ciuo.SetDescription(*s)
	}
	return ciuo
}

// Mutation returns the CreditIncomeMutation object of the builder.
func (ciuo *CreditIncomeUpdateOne) Mutation() *CreditIncomeMutation {
	return ciuo.mutation
}

// Where appends a list predicates to the CreditIncomeUpdate builder.
func (ciuo *CreditIncomeUpdateOne) Where(ps ...predicate.CreditIncome) *CreditIncomeUpdateOne {
	ciuo.mutation.Where(ps...)
	return ciuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ciuo *CreditIncomeUpdateOne) Select(field string, fields ...string) *CreditIncomeUpdateOne {
	ciuo.fields = append([]string{field}, fields...)
	return ciuo
}

// Save executes the query and returns the updated CreditIncome entity.
func (ciuo *CreditIncomeUpdateOne) Save(ctx context.Context) (*CreditIncome, error) {
	ciuo.defaults()
	return withHooks(ctx, ciuo.sqlSave, ciuo.mutation, ciuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ciuo *CreditIncomeUpdateOne) SaveX(ctx context.Context) *CreditIncome {
	node, err := ciuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ciuo *CreditIncomeUpdateOne) Exec(ctx context.Context) error {
	_, err := ciuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ciuo *CreditIncomeUpdateOne) ExecX(ctx context.Context) {
	if err := ciuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ciuo *CreditIncomeUpdateOne) defaults() {
	if _, ok := ciuo.mutation.UpdatedAt(); !ok {
		v := creditincome.UpdateDefaultUpdatedAt()
		ciuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ciuo *CreditIncomeUpdateOne) check() error {
	if ciuo.mutation.CreditCardCleared() && len(ciuo.mutation.CreditCardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditIncome.credit_card"`)
	}
	if ciuo.mutation.CreditBillCleared() && len(ciuo.mutation.CreditBillIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditIncome.credit_bill"`)
	}
	if ciuo.mutation.CreditExpenseCleared() && len(ciuo.mutation.CreditExpenseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditIncome.credit_expense"`)
	}
	return nil
}

func (ciuo *CreditIncomeUpdateOne) sqlSave(ctx context.Context) (_node *CreditIncome, err error) {
	if err := ciuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditincome.Table, creditincome.Columns, sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString))
	id, ok := ciuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditIncome.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ciuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditincome.FieldID)
		for _, f := range fields {
			if !creditincome.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditincome.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ciuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ciuo.mutation.Status(); ok {
		_spec.SetField(creditincome.FieldStatus, field.TypeString, value)
	}
	if value, ok := ciuo.mutation.UpdatedAt(); ok {
		_spec.SetField(creditincome.FieldUpdatedAt, field.TypeTime, value)
	}
	if ciuo.mutation.CreatedByCleared() {
		_spec.ClearField(creditincome.FieldCreatedBy, field.TypeString)
	}
	if value, ok := ciuo.mutation.UpdatedBy(); ok {
		_spec.SetField(creditincome.FieldUpdatedBy, field.TypeString, value)
	}
	if ciuo.mutation.UpdatedByCleared() {
		_spec.ClearField(creditincome.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := ciuo.mutation.Description(); ok {
		_spec.SetField(creditincome.FieldDescription, field.TypeString, value)
	}
	_node = &CreditIncome{config: ciuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ciuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditincome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ciuo.mutation.done = true
	return _node, nil
}
