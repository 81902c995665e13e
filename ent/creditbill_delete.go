// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/predicate"
)

// CreditBillDelete is the builder for deleting a CreditBill entity.
type CreditBillDelete struct {
	config
	hooks    []Hook
	mutation *CreditBillMutation
}

// Where appends a list predicates to the CreditBillDelete builder.
func (cbd *CreditBillDelete) Where(ps ...predicate.CreditBill) *CreditBillDelete {
	cbd.mutation.Where(ps...)
	return cbd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cbd *CreditBillDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cbd.sqlExec, cbd.mutation, cbd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cbd *CreditBillDelete) ExecX(ctx context.Context) int {
	n, err := cbd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cbd *CreditBillDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(creditbill.Table, sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString))
	if ps := cbd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cbd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cbd.mutation.done = true
	return affected, err
}

// CreditBillDeleteOne is the builder for deleting a single CreditBill entity.
type CreditBillDeleteOne struct {
	cbd *CreditBillDelete
}

// Where appends a list predicates to the CreditBillDelete builder.
func (cbdo *CreditBillDeleteOne) Where(ps ...predicate.CreditBill) *CreditBillDeleteOne {
	cbdo.cbd.mutation.Where(ps...)
	return cbdo
}

// Exec executes the deletion query.
func (cbdo *CreditBillDeleteOne) Exec(ctx context.Context) error {
	n, err := cbdo.cbd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{creditbill.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cbdo *CreditBillDeleteOne) ExecX(ctx context.Context) {
	if err := cbdo.Exec(ctx); err != nil {
		panic(err)
	}
}
