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
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/pocketwise/pocketwise/ent/refundevent"
	"github.com/shopspring/decimal"
)

// CreditExpenseUpdate is the builder for updating CreditExpense entities.
type CreditExpenseUpdate struct {
	config
	hooks    []Hook
	mutation *CreditExpenseMutation
}

// Where appends a list predicates to the CreditExpenseUpdate builder.
func (ceu *CreditExpenseUpdate) Where(ps ...predicate.CreditExpense) *CreditExpenseUpdate {
	ceu.mutation.Where(ps...)
	return ceu
}

// SetStatus sets the "status" field.
func (ceu *CreditExpenseUpdate) SetStatus(s string) *CreditExpenseUpdate {
	ceu.mutation.SetStatus(s)
	return ceu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ceu *CreditExpenseUpdate) SetNillableStatus(s *string) *CreditExpenseUpdate {
	if s != nil {
		ceu.SetStatus(*s)
	}
	return ceu
}

// SetUpdatedAt sets the "updated_at" field.
func (ceu *CreditExpenseUpdate) SetUpdatedAt(t time.Time) *CreditExpenseUpdate {
	ceu.mutation.SetUpdatedAt(t)
	return ceu
}

// SetUpdatedBy sets the "updated_by" field.
func (ceu *CreditExpenseUpdate) SetUpdatedBy(s string) *CreditExpenseUpdate {
	ceu.mutation.SetUpdatedBy(s)
	return ceu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ceu *CreditExpenseUpdate) SetNillableUpdatedBy(s *string) *CreditExpenseUpdate {
	if s != nil {
		ceu.SetUpdatedBy(*s)
	}
	return ceu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (ceu *CreditExpenseUpdate) ClearUpdatedBy() *CreditExpenseUpdate {
	ceu.mutation.ClearUpdatedBy()
	return ceu
}

// SetDescription sets the "description" field.
func (ceu *CreditExpenseUpdate) SetDescription(s string) *CreditExpenseUpdate {
	ceu.mutation.SetDescription(s)
	return ceu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ceu *CreditExpenseUpdate) SetNillableDescription(s *string) *CreditExpenseUpdate {
	if s != nil {
		ceu.SetDescription(*s)
	}
	return ceu
}

// SetAmount sets the "amount" field.
func (ceu *CreditExpenseUpdate) SetAmount(d decimal.Decimal) *CreditExpenseUpdate {
	ceu.mutation.SetAmount(d)
	return ceu
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (ceu *CreditExpenseUpdate) SetNillableAmount(d *decimal.Decimal) *CreditExpenseUpdate {
	if d != nil {
		ceu.SetAmount(*d)
	}
	return ceu
}

// SetCreditBillID sets the "credit_bill_id" field.
func (ceu *CreditExpenseUpdate) SetCreditBillID(s string) *CreditExpenseUpdate {
	ceu.mutation.SetCreditBillID(s)
	return ceu
}

// SetNillableCreditBillID sets the "credit_bill_id" field if the given value is not nil.
func (ceu *CreditExpenseUpdate) SetNillableCreditBillID(s *string) *CreditExpenseUpdate {
	if s != nil {
		ceu.SetCreditBillID(*s)
	}
	return ceu
}

// ClearCreditBillID clears the value of the "credit_bill_id" field.
func (ceu *CreditExpenseUpdate) ClearCreditBillID() *CreditExpenseUpdate {
	ceu.mutation.ClearCreditBillID()
	return ceu
}

// SetDueDate sets the "due_date" field.
func (ceu *CreditExpenseUpdate) SetDueDate(t time.Time) *CreditExpenseUpdate {
	ceu.mutation.SetDueDate(t)
	return ceu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (ceu *CreditExpenseUpdate) SetNillableDueDate(t *time.Time) *CreditExpenseUpdate {
	if t != nil {
		ceu.SetDueDate(*t)
	}
	return ceu
}

// ClearDueDate clears the value of the "due_date" field.
func (ceu *CreditExpenseUpdate) ClearDueDate() *CreditExpenseUpdate {
	ceu.mutation.ClearDueDate()
	return ceu
}

// SetTags sets the "tags" field.
func (ceu *CreditExpenseUpdate) SetTags(pa pq.StringArray) *CreditExpenseUpdate {
	ceu.mutation.SetTags(pa)
	return ceu
}

// AddChildIDs adds the "children" edge to the CreditExpense entity by IDs.
func (ceu *CreditExpenseUpdate) AddChildIDs(ids ...string) *CreditExpenseUpdate {
	ceu.mutation.AddChildIDs(ids...)
	return ceu
}

// AddChildren adds the "children" edges to the CreditExpense entity.
func (ceu *CreditExpenseUpdate) AddChildren(c ...*CreditExpense) *CreditExpenseUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ceu.AddChildIDs(ids...)
}

// SetCreditBill sets the "credit_bill" edge to the CreditBill entity.
func (ceu *CreditExpenseUpdate) SetCreditBill(c *CreditBill) *CreditExpenseUpdate {
	return ceu.SetCreditBillID(c.ID)
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by IDs.
func (ceu *CreditExpenseUpdate) AddCreditIncomeIDs(ids ...string) *CreditExpenseUpdate {
	ceu.mutation.AddCreditIncomeIDs(ids...)
	return ceu
}

// AddCreditIncomes adds the "credit_incomes" edges to the CreditIncome entity.
func (ceu *CreditExpenseUpdate) AddCreditIncomes(c ...*CreditIncome) *CreditExpenseUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ceu.AddCreditIncomeIDs(ids...)
}

// AddRefundEventIDs adds the "refund_events" edge to the RefundEvent entity by IDs.
func (ceu *CreditExpenseUpdate) AddRefundEventIDs(ids ...string) *CreditExpenseUpdate {
	ceu.mutation.AddRefundEventIDs(ids...)
	return ceu
}

// AddRefundEvents adds the "refund_events" edges to the RefundEvent entity.
func (ceu *CreditExpenseUpdate) AddRefundEvents(r ...*RefundEvent) *CreditExpenseUpdate {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ceu.AddRefundEventIDs(ids...)
}

// Mutation returns the CreditExpenseMutation object of the builder.
func (ceu *CreditExpenseUpdate) Mutation() *CreditExpenseMutation {
	return ceu.mutation
}

// ClearChildren clears all "children" edges to the CreditExpense entity.
func (ceu *CreditExpenseUpdate) ClearChildren() *CreditExpenseUpdate {
	ceu.mutation.ClearChildren()
	return ceu
}

// RemoveChildIDs removes the "children" edge to CreditExpense entities by IDs.
func (ceu *CreditExpenseUpdate) RemoveChildIDs(ids ...string) *CreditExpenseUpdate {
	ceu.mutation.RemoveChildIDs(ids...)
	return ceu
}

// RemoveChildren removes "children" edges to CreditExpense entities.
func (ceu *CreditExpenseUpdate) RemoveChildren(c ...*CreditExpense) *CreditExpenseUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ceu.RemoveChildIDs(ids...)
}

// ClearCreditBill clears the "credit_bill" edge to the CreditBill entity.
func (ceu *CreditExpenseUpdate) ClearCreditBill() *CreditExpenseUpdate {
	ceu.mutation.ClearCreditBill()
	return ceu
}

// ClearCreditIncomes clears all "credit_incomes" edges to the CreditIncome entity.
func (ceu *CreditExpenseUpdate) ClearCreditIncomes() *CreditExpenseUpdate {
	ceu.mutation.ClearCreditIncomes()
	return ceu
}

// RemoveCreditIncomeIDs removes the "credit_incomes" edge to CreditIncome entities by IDs.
func (ceu *CreditExpenseUpdate) RemoveCreditIncomeIDs(ids ...string) *CreditExpenseUpdate {
	ceu.mutation.RemoveCreditIncomeIDs(ids...)
	return ceu
}

// RemoveCreditIncomes removes "credit_incomes" edges to CreditIncome entities.
func (ceu *CreditExpenseUpdate) RemoveCreditIncomes(c ...*CreditIncome) *CreditExpenseUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ceu.RemoveCreditIncomeIDs(ids...)
}

// ClearRefundEvents clears all "refund_events" edges to the RefundEvent entity.
func (ceu *CreditExpenseUpdate) ClearRefundEvents() *CreditExpenseUpdate {
	ceu.mutation.ClearRefundEvents()
	return ceu
}

// RemoveRefundEventIDs removes the "refund_events" edge to RefundEvent entities by IDs.
func (ceu *CreditExpenseUpdate) RemoveRefundEventIDs(ids ...string) *CreditExpenseUpdate {
	ceu.mutation.RemoveRefundEventIDs(ids...)
	return ceu
}

// RemoveRefundEvents removes "refund_events" edges to RefundEvent entities.
func (ceu *CreditExpenseUpdate) RemoveRefundEvents(r ...*RefundEvent) *CreditExpenseUpdate {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ceu.RemoveRefundEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ceu *CreditExpenseUpdate) Save(ctx context.Context) (int, error) {
	ceu.defaults()
	return withHooks(ctx, ceu.sqlSave, ceu.mutation, ceu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceu *CreditExpenseUpdate) SaveX(ctx context.Context) int {
	affected, err := ceu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ceu *CreditExpenseUpdate) Exec(ctx context.Context) error {
	_, err := ceu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceu *CreditExpenseUpdate) ExecX(ctx context.Context) {
	if err := ceu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ceu *CreditExpenseUpdate) defaults() {
	if _, ok := ceu.mutation.UpdatedAt(); !ok {
		v := creditexpense.UpdateDefaultUpdatedAt()
		ceu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ceu *CreditExpenseUpdate) check() error {
	if ceu.mutation.CreditCardCleared() && len(ceu.mutation.CreditCardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditExpense.credit_card"`)
	}
	return nil
}

func (ceu *CreditExpenseUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ceu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditexpense.Table, creditexpense.Columns, sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString))
	if ps := ceu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceu.mutation.Status(); ok {
		_spec.SetField(creditexpense.FieldStatus, field.TypeString, value)
	}
	if value, ok := ceu.mutation.UpdatedAt(); ok {
		_spec.SetField(creditexpense.FieldUpdatedAt, field.TypeTime, value)
	}
	if ceu.mutation.CreatedByCleared() {
		_spec.ClearField(creditexpense.FieldCreatedBy, field.TypeString)
	}
	if value, ok := ceu.mutation.UpdatedBy(); ok {
		_spec.SetField(creditexpense.FieldUpdatedBy, field.TypeString, value)
	}
	if ceu.mutation.UpdatedByCleared() {
		_spec.ClearField(creditexpense.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := ceu.mutation.Description(); ok {
		_spec.SetField(creditexpense.FieldDescription, field.TypeString, value)
	}
	if value, ok := ceu.mutation.Amount(); ok {
		_spec.SetField(creditexpense.FieldAmount, field.TypeOther, value)
	}
	if value, ok := ceu.mutation.DueDate(); ok {
		_spec.SetField(creditexpense.FieldDueDate, field.TypeTime, value)
	}
	if ceu.mutation.DueDateCleared() {
		_spec.ClearField(creditexpense.FieldDueDate, field.TypeTime)
	}
	if value, ok := ceu.mutation.Tags(); ok {
		_spec.SetField(creditexpense.FieldTags, field.TypeOther, value)
	}
	if ceu.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.ChildrenTable,
			Columns: []string{creditexpense.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !ceu.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.ChildrenTable,
			Columns: []string{creditexpense.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.ChildrenTable,
			Columns: []string{creditexpense.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ceu.mutation.CreditBillCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditexpense.CreditBillTable,
			Columns: []string{creditexpense.CreditBillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.CreditBillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditexpense.CreditBillTable,
			Columns: []string{creditexpense.CreditBillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ceu.mutation.CreditIncomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.CreditIncomesTable,
			Columns: []string{creditexpense.CreditIncomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.RemovedCreditIncomesIDs(); len(nodes) > 0 && !ceu.mutation.CreditIncomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.CreditIncomesTable,
			Columns: []string{creditexpense.CreditIncomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.CreditIncomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.CreditIncomesTable,
			Columns: []string{creditexpense.CreditIncomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ceu.mutation.RefundEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.RefundEventsTable,
			Columns: []string{creditexpense.RefundEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.RemovedRefundEventsIDs(); len(nodes) > 0 && !ceu.mutation.RefundEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.RefundEventsTable,
			Columns: []string{creditexpense.RefundEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceu.mutation.RefundEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.RefundEventsTable,
			Columns: []string{creditexpense.RefundEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ceu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditexpense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ceu.mutation.done = true
	return n, nil
}

// CreditExpenseUpdateOne is the builder for updating a single CreditExpense entity.
type CreditExpenseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditExpenseMutation
}

// SetStatus sets the "status" field.
func (ceuo *CreditExpenseUpdateOne) SetStatus(s string) *CreditExpenseUpdateOne {
	ceuo.mutation.SetStatus(s)
	return ceuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ceuo *CreditExpenseUpdateOne) SetNillableStatus(s *string) *CreditExpenseUpdateOne {
	if s != nil {
		ceuo.SetStatus(*s)
	}
	return ceuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ceuo *CreditExpenseUpdateOne) SetUpdatedAt(t time.Time) *CreditExpenseUpdateOne {
	ceuo.mutation.SetUpdatedAt(t)
	return ceuo
}

// SetUpdatedBy sets the "updated_by" field.
func (ceuo *CreditExpenseUpdateOne) SetUpdatedBy(s string) *CreditExpenseUpdateOne {
	ceuo.mutation.SetUpdatedBy(s)
	return ceuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ceuo *CreditExpenseUpdateOne) SetNillableUpdatedBy(s *string) *CreditExpenseUpdateOne {
	if s != nil {
		ceuo.SetUpdatedBy(*s)
	}
	return ceuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (ceuo *CreditExpenseUpdateOne) ClearUpdatedBy() *CreditExpenseUpdateOne {
	ceuo.mutation.ClearUpdatedBy()
	return ceuo
}

// SetDescription sets the "description" field.
func (ceuo *CreditExpenseUpdateOne) SetDescription(s string) *CreditExpenseUpdateOne {
	ceuo.mutation.SetDescription(s)
	return ceuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ceuo *CreditExpenseUpdateOne) SetNillableDescription(s *string) *CreditExpenseUpdateOne {
	if s != nil {
		ceuo.SetDescription(*s)
	}
	return ceuo
}

// SetAmount sets the "amount" field.
func (ceuo *CreditExpenseUpdateOne) SetAmount(d decimal.Decimal) *CreditExpenseUpdateOne {
	ceuo.mutation.SetAmount(d)
	return ceuo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (ceuo *CreditExpenseUpdateOne) SetNillableAmount(d *decimal.Decimal) *CreditExpenseUpdateOne {
	if d != nil {
		ceuo.SetAmount(*d)
	}
	return ceuo
}

// SetCreditBillID sets the "credit_bill_id" field.
func (ceuo *CreditExpenseUpdateOne) SetCreditBillID(s string) *CreditExpenseUpdateOne {
	ceuo.mutation.SetCreditBillID(s)
	return ceuo
}

// SetNillableCreditBillID sets the "credit_bill_id" field if the given value is not nil.
func (ceuo *CreditExpenseUpdateOne) SetNillableCreditBillID(s *string) *CreditExpenseUpdateOne {
	if s != nil {
		ceuo.SetCreditBillID(*s)
	}
	return ceuo
}

// ClearCreditBillID clears the value of the "credit_bill_id" field.
func (ceuo *CreditExpenseUpdateOne) ClearCreditBillID() *CreditExpenseUpdateOne {
	ceuo.mutation.ClearCreditBillID()
	return ceuo
}

// SetDueDate sets the "due_date" field.
func (ceuo *CreditExpenseUpdateOne) SetDueDate(t time.Time) *CreditExpenseUpdateOne {
	ceuo.mutation.SetDueDate(t)
	return ceuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (ceuo *CreditExpenseUpdateOne) SetNillableDueDate(t *time.Time) *CreditExpenseUpdateOne {
	if t != nil {
		ceuo.SetDueDate(*t)
	}
	return ceuo
}

// ClearDueDate clears the value of the "due_date" field.
func (ceuo *CreditExpenseUpdateOne) ClearDueDate() *CreditExpenseUpdateOne {
	ceuo.mutation.ClearDueDate()
	return ceuo
}

// SetTags sets the "tags" field.
func (ceuo *CreditExpenseUpdateOne) SetTags(pa pq.StringArray) *CreditExpenseUpdateOne {
	ceuo.mutation.SetTags(pa)
	return ceuo
}

// AddChildIDs adds the "children" edge to the CreditExpense entity by IDs.
func (ceuo *CreditExpenseUpdateOne) AddChildIDs(ids ...string) *CreditExpenseUpdateOne {
	ceuo.mutation.AddChildIDs(ids...)
	return ceuo
}

// AddChildren adds the "children" edges to the CreditExpense entity.
func (ceuo *CreditExpenseUpdateOne) AddChildren(c ...*CreditExpense) *CreditExpenseUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ceuo.AddChildIDs(ids...)
}

// SetCreditBill sets the "credit_bill" edge to the CreditBill entity.
func (ceuo *CreditExpenseUpdateOne) SetCreditBill(c *CreditBill) *CreditExpenseUpdateOne {
	return ceuo.SetCreditBillID(c.ID)
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by IDs.
func (ceuo *CreditExpenseUpdateOne) AddCreditIncomeIDs(ids ...string) *CreditExpenseUpdateOne {
	ceuo.mutation.AddCreditIncomeIDs(ids...)
	return ceuo
}

// AddCreditIncomes adds the "credit_incomes" edges to the CreditIncome entity.
func (ceuo *CreditExpenseUpdateOne) AddCreditIncomes(c ...*CreditIncome) *CreditExpenseUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ceuo.AddCreditIncomeIDs(ids...)
}

// AddRefundEventIDs adds the "refund_events" edge to the RefundEvent entity by IDs.
func (ceuo *CreditExpenseUpdateOne) AddRefundEventIDs(ids ...string) *CreditExpenseUpdateOne {
	ceuo.mutation.AddRefundEventIDs(ids...)
	return ceuo
}

// AddRefundEvents adds the "refund_events" edges to the RefundEvent entity.
func (ceuo *CreditExpenseUpdateOne) AddRefundEvents(r ...*RefundEvent) *CreditExpenseUpdateOne {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ceuo.AddRefundEventIDs(ids...)
}

// Mutation returns the CreditExpenseMutation object of the builder.
func (ceuo *CreditExpenseUpdateOne) Mutation() *CreditExpenseMutation {
	return ceuo.mutation
}

// ClearChildren clears all "children" edges to the CreditExpense entity.
func (ceuo *CreditExpenseUpdateOne) ClearChildren() *CreditExpenseUpdateOne {
	ceuo.mutation.ClearChildren()
	return ceuo
}

// RemoveChildIDs removes the "children" edge to CreditExpense entities by IDs.
func (ceuo *CreditExpenseUpdateOne) RemoveChildIDs(ids ...string) *CreditExpenseUpdateOne {
	ceuo.mutation.RemoveChildIDs(ids...)
	return ceuo
}

// RemoveChildren removes "children" edges to CreditExpense entities.
func (ceuo *CreditExpenseUpdateOne) RemoveChildren(c ...*CreditExpense) *CreditExpenseUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ceuo.RemoveChildIDs(ids...)
}

// ClearCreditBill clears the "credit_bill" edge to the CreditBill entity.
func (ceuo *CreditExpenseUpdateOne) ClearCreditBill() *CreditExpenseUpdateOne {
	ceuo.mutation.ClearCreditBill()
	return ceuo
}

// ClearCreditIncomes clears all "credit_incomes" edges to the CreditIncome entity.
func (ceuo *CreditExpenseUpdateOne) ClearCreditIncomes() *CreditExpenseUpdateOne {
	ceuo.mutation.ClearCreditIncomes()
	return ceuo
}

// RemoveCreditIncomeIDs removes the "credit_incomes" edge to CreditIncome entities by IDs.
func (ceuo *CreditExpenseUpdateOne) RemoveCreditIncomeIDs(ids ...string) *CreditExpenseUpdateOne {
	ceuo.mutation.RemoveCreditIncomeIDs(ids...)
	return ceuo
}

// RemoveCreditIncomes removes "credit_incomes" edges to CreditIncome entities.
func (ceuo *CreditExpenseUpdateOne) RemoveCreditIncomes(c ...*CreditIncome) *CreditExpenseUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ceuo.RemoveCreditIncomeIDs(ids...)
}

// ClearRefundEvents clears all "refund_events" edges to the RefundEvent entity.
func (ceuo *CreditExpenseUpdateOne) ClearRefundEvents() *CreditExpenseUpdateOne {
	ceuo.mutation.ClearRefundEvents()
	return ceuo
}

// RemoveRefundEventIDs removes the "refund_events" edge to RefundEvent entities by IDs.
func (ceuo *CreditExpenseUpdateOne) RemoveRefundEventIDs(ids ...string) *CreditExpenseUpdateOne {
	ceuo.mutation.RemoveRefundEventIDs(ids...)
	return ceuo
}

// RemoveRefundEvents removes "refund_events" edges to RefundEvent entities.
func (ceuo *CreditExpenseUpdateOne) RemoveRefundEvents(r ...*RefundEvent) *CreditExpenseUpdateOne {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ceuo.RemoveRefundEventIDs(ids...)
}

// Where appends a list predicates to the CreditExpenseUpdate builder.
func (ceuo *CreditExpenseUpdateOne) Where(ps ...predicate.CreditExpense) *CreditExpenseUpdateOne {
	ceuo.mutation.Where(ps...)
	return ceuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ceuo *CreditExpenseUpdateOne) Select(field string, fields ...string) *CreditExpenseUpdateOne {
	ceuo.fields = append([]string{field}, fields...)
	return ceuo
}

// Save executes the query and returns the updated CreditExpense entity.
func (ceuo *CreditExpenseUpdateOne) Save(ctx context.Context) (*CreditExpense, error) {
	ceuo.defaults()
	return withHooks(ctx, ceuo.sqlSave, ceuo.mutation, ceuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceuo *CreditExpenseUpdateOne) SaveX(ctx context.Context) *CreditExpense {
	node, err := ceuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ceuo *CreditExpenseUpdateOne) Exec(ctx context.Context) error {
	_, err := ceuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceuo *CreditExpenseUpdateOne) ExecX(ctx context.Context) {
	if err := ceuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ceuo *CreditExpenseUpdateOne) defaults() {
	if _, ok := ceuo.mutation.UpdatedAt(); !ok {
		v := creditexpense.UpdateDefaultUpdatedAt()
		ceuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ceuo *CreditExpenseUpdateOne) check() error {
	if ceuo.mutation.CreditCardCleared() && len(ceuo.mutation.CreditCardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditExpense.credit_card"`)
	}
	return nil
}

func (ceuo *CreditExpenseUpdateOne) sqlSave(ctx context.Context) (_node *CreditExpense, err error) {
	if err := ceuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditexpense.Table, creditexpense.Columns, sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString))
	id, ok := ceuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditExpense.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ceuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditexpense.FieldID)
		for _, f := range fields {
			if !creditexpense.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditexpense.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ceuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceuo.mutation.Status(); ok {
		_spec.SetField(creditexpense.FieldStatus, field.TypeString, value)
	}
	if value, ok := ceuo.mutation.UpdatedAt(); ok {
		_spec.SetField(creditexpense.FieldUpdatedAt, field.TypeTime, value)
	}
	if ceuo.mutation.CreatedByCleared() {
		_spec.ClearField(creditexpense.FieldCreatedBy, field.TypeString)
	}
	if value, ok := ceuo.mutation.UpdatedBy(); ok {
		_spec.SetField(creditexpense.FieldUpdatedBy, field.TypeString, value)
	}
	if ceuo.mutation.UpdatedByCleared() {
		_spec.ClearField(creditexpense.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := ceuo.mutation.Description(); ok {
		_spec.SetField(creditexpense.FieldDescription, field.TypeString, value)
	}
	if value, ok := ceuo.mutation.Amount(); ok {
		_spec.SetField(creditexpense.FieldAmount, field.TypeOther, value)
	}
	if value, ok := ceuo.mutation.DueDate(); ok {
		_spec.SetField(creditexpense.FieldDueDate, field.TypeTime, value)
	}
	if ceuo.mutation.DueDateCleared() {
		_spec.ClearField(creditexpense.FieldDueDate, field.TypeTime)
	}
	if value, ok := ceuo.mutation.Tags(); ok {
		_spec.SetField(creditexpense.FieldTags, field.TypeOther, value)
	}
	if ceuo.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.ChildrenTable,
			Columns: []string{creditexpense.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !ceuo.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.ChildrenTable,
			Columns: []string{creditexpense.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.ChildrenTable,
			Columns: []string{creditexpense.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ceuo.mutation.CreditBillCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditexpense.CreditBillTable,
			Columns: []string{creditexpense.CreditBillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.CreditBillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditexpense.CreditBillTable,
			Columns: []string{creditexpense.CreditBillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ceuo.mutation.CreditIncomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.CreditIncomesTable,
			Columns: []string{creditexpense.CreditIncomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.RemovedCreditIncomesIDs(); len(nodes) > 0 && !ceuo.mutation.CreditIncomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.CreditIncomesTable,
			Columns: []string{creditexpense.CreditIncomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.CreditIncomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.CreditIncomesTable,
			Columns: []string{creditexpense.CreditIncomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ceuo.mutation.RefundEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.RefundEventsTable,
			Columns: []string{creditexpense.RefundEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.RemovedRefundEventsIDs(); len(nodes) > 0 && !ceuo.mutation.RefundEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.RefundEventsTable,
			Columns: []string{creditexpense.RefundEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ceuo.mutation.RefundEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.RefundEventsTable,
			Columns: []string{creditexpense.RefundEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CreditExpense{config: ceuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ceuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditexpense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ceuo.mutation.done = true
	return _node, nil
}
