// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/pocketwise/pocketwise/ent/refundevent"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCreditBill    = "CreditBill"
	TypeCreditCard    = "CreditCard"
	TypeCreditExpense = "CreditExpense"
	TypeCreditIncome  = "CreditIncome"
	TypeRefundEvent   = "RefundEvent"
)

// CreditBillMutation represents an operation that mutates the CreditBill nodes in the graph.
type CreditBillMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	status                 *string
	created_at             *time.Time
	updated_at             *time.Time
	created_by             *string
	updated_by             *string
	closing_date           *time.Time
	due_date               *time.Time
	total_amount           *decimal.Decimal
	paid_amount            *decimal.Decimal
	bill_status            *types.CreditBillStatus
	paid_at                *time.Time
	clearedFields          map[string]struct{}
	credit_card            *string
	clearedcredit_card     bool
	credit_expenses        map[string]struct{}
	removedcredit_expenses map[string]struct{}
	clearedcredit_expenses bool
	credit_incomes         map[string]struct{}
	removedcredit_incomes  map[string]struct{}
	clearedcredit_incomes  bool
	done                   bool
	oldValue               func(context.Context) (*CreditBill, error)
	predicates             []predicate.CreditBill
}

var _ ent.Mutation = (*CreditBillMutation)(nil)

// creditbillOption allows management of the mutation configuration using functional options.
type creditbillOption func(*CreditBillMutation)

// newCreditBillMutation creates new mutation for the CreditBill entity.
func newCreditBillMutation(c config, op Op, opts ...creditbillOption) *CreditBillMutation {
	m := &CreditBillMutation{
		config:        c,
		op:            op,
		typ:           TypeCreditBill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreditBillID sets the ID field of the mutation.
func withCreditBillID(id string) creditbillOption {
	return func(m *CreditBillMutation) {
		var (
			err   error
			once  sync.Once
			value *CreditBill
		)
		m.oldValue = func(ctx context.Context) (*CreditBill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreditBill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreditBill sets the old CreditBill of the mutation.
func withCreditBill(node *CreditBill) creditbillOption {
	return func(m *CreditBillMutation) {
		m.oldValue = func(context.Context) (*CreditBill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreditBillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreditBillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreditBill entities.
func (m *CreditBillMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreditBillMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreditBillMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreditBill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CreditBillMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CreditBillMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CreditBillMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *CreditBillMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CreditBillMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CreditBillMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CreditBillMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreditBillMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreditBillMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CreditBillMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CreditBillMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CreditBillMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *CreditBillMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *CreditBillMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *CreditBillMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[creditbill.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *CreditBillMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[creditbill.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *CreditBillMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, creditbill.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *CreditBillMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *CreditBillMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *CreditBillMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[creditbill.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *CreditBillMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[creditbill.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *CreditBillMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, creditbill.FieldUpdatedBy)
}

// SetCreditCardID sets the "credit_card_id" field.
func (m *CreditBillMutation) SetCreditCardID(s string) {
	m.credit_card = &s
}

// CreditCardID returns the value of the "credit_card_id" field in the mutation.
func (m *CreditBillMutation) CreditCardID() (r string, exists bool) {
	v := m.credit_card
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditCardID returns the old "credit_card_id" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldCreditCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditCardID: %w", err)
	}
	return oldValue.CreditCardID, nil
}

// ResetCreditCardID resets all changes to the "credit_card_id" field.
func (m *CreditBillMutation) ResetCreditCardID() {
	m.credit_card = nil
}

// SetClosingDate sets the "closing_date" field.
func (m *CreditBillMutation) SetClosingDate(t time.Time) {
	m.closing_date = &t
}

// ClosingDate returns the value of the "closing_date" field in the mutation.
func (m *CreditBillMutation) ClosingDate() (r time.Time, exists bool) {
	v := m.closing_date
	if v == nil {
		return
	}
	return *v, true
}

// OldClosingDate returns the old "closing_date" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldClosingDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosingDate: %w", err)
	}
	return oldValue.ClosingDate, nil
}

// ResetClosingDate resets all changes to the "closing_date" field.
func (m *CreditBillMutation) ResetClosingDate() {
	m.closing_date = nil
}

// SetDueDate sets the "due_date" field.
func (m *CreditBillMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *CreditBillMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldDueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *CreditBillMutation) ResetDueDate() {
	m.due_date = nil
}

// SetTotalAmount sets the "total_amount" field.
func (m *CreditBillMutation) SetTotalAmount(d decimal.Decimal) {
	m.total_amount = &d
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *CreditBillMutation) TotalAmount() (r decimal.Decimal, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldTotalAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *CreditBillMutation) ResetTotalAmount() {
	m.total_amount = nil
}

// SetPaidAmount sets the "paid_amount" field.
func (m *CreditBillMutation) SetPaidAmount(d decimal.Decimal) {
	m.paid_amount = &d
}

// PaidAmount returns the value of the "paid_amount" field in the mutation.
func (m *CreditBillMutation) PaidAmount() (r decimal.Decimal, exists bool) {
	v := m.paid_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAmount returns the old "paid_amount" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldPaidAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAmount: %w", err)
	}
	return oldValue.PaidAmount, nil
}

// ResetPaidAmount resets all changes to the "paid_amount" field.
func (m *CreditBillMutation) ResetPaidAmount() {
	m.paid_amount = nil
}

// SetBillStatus sets the "bill_status" field.
func (m *CreditBillMutation) SetBillStatus(tbs types.CreditBillStatus) {
	m.bill_status = &tbs
}

// BillStatus returns the value of the "bill_status" field in the mutation.
func (m *CreditBillMutation) BillStatus() (r types.CreditBillStatus, exists bool) {
	v := m.bill_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBillStatus returns the old "bill_status" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldBillStatus(ctx context.Context) (v types.CreditBillStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillStatus: %w", err)
	}
	return oldValue.BillStatus, nil
}

// ResetBillStatus resets all changes to the "bill_status" field.
func (m *CreditBillMutation) ResetBillStatus() {
	m.bill_status = nil
}

// SetPaidAt sets the "paid_at" field.
func (m *CreditBillMutation) SetPaidAt(t time.Time) {
	m.paid_at = &t
}

// PaidAt returns the value of the "paid_at" field in the mutation.
func (m *CreditBillMutation) PaidAt() (r time.Time, exists bool) {
	v := m.paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAt returns the old "paid_at" field's value of the CreditBill entity.
// If the CreditBill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditBillMutation) OldPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAt: %w", err)
	}
	return oldValue.PaidAt, nil
}

// ClearPaidAt clears the value of the "paid_at" field.
func (m *CreditBillMutation) ClearPaidAt() {
	m.paid_at = nil
	m.clearedFields[creditbill.FieldPaidAt] = struct{}{}
}

// PaidAtCleared returns if the "paid_at" field was cleared in this mutation.
func (m *CreditBillMutation) PaidAtCleared() bool {
	_, ok := m.clearedFields[creditbill.FieldPaidAt]
	return ok
}

// ResetPaidAt resets all changes to the "paid_at" field.
func (m *CreditBillMutation) ResetPaidAt() {
	m.paid_at = nil
	delete(m.clearedFields, creditbill.FieldPaidAt)
}

// ClearCreditCard clears the "credit_card" edge to the CreditCard entity.
func (m *CreditBillMutation) ClearCreditCard() {
	m.clearedcredit_card = true
	m.clearedFields[creditbill.FieldCreditCardID] = struct{}{}
}

// CreditCardCleared reports if the "credit_card" edge to the CreditCard entity was cleared.
func (m *CreditBillMutation) CreditCardCleared() bool {
	return m.clearedcredit_card
}

// CreditCardIDs returns the "credit_card" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreditCardID instead. It exists only for internal usage by the builders.
func (m *CreditBillMutation) CreditCardIDs() (ids []string) {
	if id := m.credit_card; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreditCard resets all changes to the "credit_card" edge.
func (m *CreditBillMutation) ResetCreditCard() {
	m.credit_card = nil
	m.clearedcredit_card = false
}

// AddCreditExpenseIDs adds the "credit_expenses" edge to the CreditExpense entity by ids.
func (m *CreditBillMutation) AddCreditExpenseIDs(ids ...string) {
	if m.credit_expenses == nil {
		m.credit_expenses = make(map[string]struct{})
	}
	for i := range ids {
		m.credit_expenses[ids[i]] = struct{}{}
	}
}

// ClearCreditExpenses clears the "credit_expenses" edge to the CreditExpense entity.
func (m *CreditBillMutation) ClearCreditExpenses() {
	m.clearedcredit_expenses = true
}

// CreditExpensesCleared reports if the "credit_expenses" edge to the CreditExpense entity was cleared.
func (m *CreditBillMutation) CreditExpensesCleared() bool {
	return m.clearedcredit_expenses
}

// RemoveCreditExpenseIDs removes the "credit_expenses" edge to the CreditExpense entity by IDs.
func (m *CreditBillMutation) RemoveCreditExpenseIDs(ids ...string) {
	if m.removedcredit_expenses == nil {
		m.removedcredit_expenses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credit_expenses, ids[i])
		m.removedcredit_expenses[ids[i]] = struct{}{}
	}
}

// RemovedCreditExpenses returns the removed IDs of the "credit_expenses" edge to the CreditExpense entity.
func (m *CreditBillMutation) RemovedCreditExpensesIDs() (ids []string) {
	for id := range m.removedcredit_expenses {
		ids = append(ids, id)
	}
	return
}

// CreditExpensesIDs returns the "credit_expenses" edge IDs in the mutation.
func (m *CreditBillMutation) CreditExpensesIDs() (ids []string) {
	for id := range m.credit_expenses {
		ids = append(ids, id)
	}
	return
}

// ResetCreditExpenses resets all changes to the "credit_expenses" edge.
func (m *CreditBillMutation) ResetCreditExpenses() {
	m.credit_expenses = nil
	m.clearedcredit_expenses = false
	m.removedcredit_expenses = nil
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by ids.
func (m *CreditBillMutation) AddCreditIncomeIDs(ids ...string) {
	if m.credit_incomes == nil {
		m.credit_incomes = make(map[string]struct{})
	}
	for i := range ids {
		m.credit_incomes[ids[i]] = struct{}{}
	}
}

// ClearCreditIncomes clears the "credit_incomes" edge to the CreditIncome entity.
func (m *CreditBillMutation) ClearCreditIncomes() {
	m.clearedcredit_incomes = true
}

// CreditIncomesCleared reports if the "credit_incomes" edge to the CreditIncome entity was cleared.
func (m *CreditBillMutation) CreditIncomesCleared() bool {
	return m.clearedcredit_incomes
}

// RemoveCreditIncomeIDs removes the "credit_incomes" edge to the CreditIncome entity by IDs.
func (m *CreditBillMutation) RemoveCreditIncomeIDs(ids ...string) {
	if m.removedcredit_incomes == nil {
		m.removedcredit_incomes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credit_incomes, ids[i])
		m.removedcredit_incomes[ids[i]] = struct{}{}
	}
}

// RemovedCreditIncomes returns the removed IDs of the "credit_incomes" edge to the CreditIncome entity.
func (m *CreditBillMutation) RemovedCreditIncomesIDs() (ids []string) {
	for id := range m.removedcredit_incomes {
		ids = append(ids, id)
	}
	return
}

// CreditIncomesIDs returns the "credit_incomes" edge IDs in the mutation.
func (m *CreditBillMutation) CreditIncomesIDs() (ids []string) {
	for id := range m.credit_incomes {
		ids = append(ids, id)
	}
	return
}

// ResetCreditIncomes resets all changes to the "credit_incomes" edge.
func (m *CreditBillMutation) ResetCreditIncomes() {
	m.credit_incomes = nil
	m.clearedcredit_incomes = false
	m.removedcredit_incomes = nil
}

// Where appends a list predicates to the CreditBillMutation builder.
func (m *CreditBillMutation) Where(ps ...predicate.CreditBill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreditBillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreditBillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreditBill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreditBillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreditBillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreditBill).
func (m *CreditBillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreditBillMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, creditbill.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, creditbill.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, creditbill.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, creditbill.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, creditbill.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, creditbill.FieldUpdatedBy)
	}
	if m.credit_card != nil {
		fields = append(fields, creditbill.FieldCreditCardID)
	}
	if m.closing_date != nil {
		fields = append(fields, creditbill.FieldClosingDate)
	}
	if m.due_date != nil {
		fields = append(fields, creditbill.FieldDueDate)
	}
	if m.total_amount != nil {
		fields = append(fields, creditbill.FieldTotalAmount)
	}
	if m.paid_amount != nil {
		fields = append(fields, creditbill.FieldPaidAmount)
	}
	if m.bill_status != nil {
		fields = append(fields, creditbill.FieldBillStatus)
	}
	if m.paid_at != nil {
		fields = append(fields, creditbill.FieldPaidAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreditBillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case creditbill.FieldUserID:
		return m.UserID()
	case creditbill.FieldStatus:
		return m.Status()
	case creditbill.FieldCreatedAt:
		return m.CreatedAt()
	case creditbill.FieldUpdatedAt:
		return m.UpdatedAt()
	case creditbill.FieldCreatedBy:
		return m.CreatedBy()
	case creditbill.FieldUpdatedBy:
		return m.UpdatedBy()
	case creditbill.FieldCreditCardID:
		return m.CreditCardID()
	case creditbill.FieldClosingDate:
		return m.ClosingDate()
	case creditbill.FieldDueDate:
		return m.DueDate()
	case creditbill.FieldTotalAmount:
		return m.TotalAmount()
	case creditbill.FieldPaidAmount:
		return m.PaidAmount()
	case creditbill.FieldBillStatus:
		return m.BillStatus()
	case creditbill.FieldPaidAt:
		return m.PaidAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreditBillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case creditbill.FieldUserID:
		return m.OldUserID(ctx)
	case creditbill.FieldStatus:
		return m.OldStatus(ctx)
	case creditbill.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case creditbill.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case creditbill.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case creditbill.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case creditbill.FieldCreditCardID:
		return m.OldCreditCardID(ctx)
	case creditbill.FieldClosingDate:
		return m.OldClosingDate(ctx)
	case creditbill.FieldDueDate:
		return m.OldDueDate(ctx)
	case creditbill.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case creditbill.FieldPaidAmount:
		return m.OldPaidAmount(ctx)
	case creditbill.FieldBillStatus:
		return m.OldBillStatus(ctx)
	case creditbill.FieldPaidAt:
		return m.OldPaidAt(ctx)
	}
	return nil, fmt.Errorf("unknown CreditBill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditBillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case creditbill.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case creditbill.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case creditbill.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case creditbill.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case creditbill.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case creditbill.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case creditbill.FieldCreditCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditCardID(v)
		return nil
	case creditbill.FieldClosingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosingDate(v)
		return nil
	case creditbill.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case creditbill.FieldTotalAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case creditbill.FieldPaidAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAmount(v)
		return nil
	case creditbill.FieldBillStatus:
		v, ok := value.(types.CreditBillStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillStatus(v)
		return nil
	case creditbill.FieldPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAt(v)
		return nil
	}
	return fmt.Errorf("unknown CreditBill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreditBillMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreditBillMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditBillMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CreditBill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreditBillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(creditbill.FieldCreatedBy) {
		fields = append(fields, creditbill.FieldCreatedBy)
	}
	if m.FieldCleared(creditbill.FieldUpdatedBy) {
		fields = append(fields, creditbill.FieldUpdatedBy)
	}
	if m.FieldCleared(creditbill.FieldPaidAt) {
		fields = append(fields, creditbill.FieldPaidAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreditBillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreditBillMutation) ClearField(name string) error {
	switch name {
	case creditbill.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case creditbill.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case creditbill.FieldPaidAt:
		m.ClearPaidAt()
		return nil
	}
	return fmt.Errorf("unknown CreditBill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreditBillMutation) ResetField(name string) error {
	switch name {
	case creditbill.FieldUserID:
		m.ResetUserID()
		return nil
	case creditbill.FieldStatus:
		m.ResetStatus()
		return nil
	case creditbill.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case creditbill.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case creditbill.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case creditbill.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case creditbill.FieldCreditCardID:
		m.ResetCreditCardID()
		return nil
	case creditbill.FieldClosingDate:
		m.ResetClosingDate()
		return nil
	case creditbill.FieldDueDate:
		m.ResetDueDate()
		return nil
	case creditbill.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case creditbill.FieldPaidAmount:
		m.ResetPaidAmount()
		return nil
	case creditbill.FieldBillStatus:
		m.ResetBillStatus()
		return nil
	case creditbill.FieldPaidAt:
		m.ResetPaidAt()
		return nil
	}
	return fmt.Errorf("unknown CreditBill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreditBillMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.credit_card != nil {
		edges = append(edges, creditbill.EdgeCreditCard)
	}
	if m.credit_expenses != nil {
		edges = append(edges, creditbill.EdgeCreditExpenses)
	}
	if m.credit_incomes != nil {
		edges = append(edges, creditbill.EdgeCreditIncomes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreditBillMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case creditbill.EdgeCreditCard:
		if id := m.credit_card; id != nil {
			return []ent.Value{*id}
		}
	case creditbill.EdgeCreditExpenses:
		ids := make([]ent.Value, 0, len(m.credit_expenses))
		for id := range m.credit_expenses {
			ids = append(ids, id)
		}
		return ids
	case creditbill.EdgeCreditIncomes:
		ids := make([]ent.Value, 0, len(m.credit_incomes))
		for id := range m.credit_incomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreditBillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcredit_expenses != nil {
		edges = append(edges, creditbill.EdgeCreditExpenses)
	}
	if m.removedcredit_incomes != nil {
		edges = append(edges, creditbill.EdgeCreditIncomes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreditBillMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case creditbill.EdgeCreditExpenses:
		ids := make([]ent.Value, 0, len(m.removedcredit_expenses))
		for id := range m.removedcredit_expenses {
			ids = append(ids, id)
		}
		return ids
	case creditbill.EdgeCreditIncomes:
		ids := make([]ent.Value, 0, len(m.removedcredit_incomes))
		for id := range m.removedcredit_incomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreditBillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcredit_card {
		edges = append(edges, creditbill.EdgeCreditCard)
	}
	if m.clearedcredit_expenses {
		edges = append(edges, creditbill.EdgeCreditExpenses)
	}
	if m.clearedcredit_incomes {
		edges = append(edges, creditbill.EdgeCreditIncomes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreditBillMutation) EdgeCleared(name string) bool {
	switch name {
	case creditbill.EdgeCreditCard:
		return m.clearedcredit_card
	case creditbill.EdgeCreditExpenses:
		return m.clearedcredit_expenses
	case creditbill.EdgeCreditIncomes:
		return m.clearedcredit_incomes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreditBillMutation) ClearEdge(name string) error {
	switch name {
	case creditbill.EdgeCreditCard:
		m.ClearCreditCard()
		return nil
	}
	return fmt.Errorf("unknown CreditBill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreditBillMutation) ResetEdge(name string) error {
	switch name {
	case creditbill.EdgeCreditCard:
		m.ResetCreditCard()
		return nil
	case creditbill.EdgeCreditExpenses:
		m.ResetCreditExpenses()
		return nil
	case creditbill.EdgeCreditIncomes:
		m.ResetCreditIncomes()
		return nil
	}
	return fmt.Errorf("unknown CreditBill edge %s", name)
}

// CreditCardMutation represents an operation that mutates the CreditCard nodes in the graph.
type CreditCardMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	status                 *string
	created_at             *time.Time
	updated_at             *time.Time
	created_by             *string
	updated_by             *string
	name                   *string
	closing_day            *int
	addclosing_day         *int
	due_day                *int
	adddue_day             *int
	credit_limit           *decimal.Decimal
	clearedFields          map[string]struct{}
	credit_bills           map[string]struct{}
	removedcredit_bills    map[string]struct{}
	clearedcredit_bills    bool
	credit_expenses        map[string]struct{}
	removedcredit_expenses map[string]struct{}
	clearedcredit_expenses bool
	credit_incomes         map[string]struct{}
	removedcredit_incomes  map[string]struct{}
	clearedcredit_incomes  bool
	refund_events          map[string]struct{}
	removedrefund_events   map[string]struct{}
	clearedrefund_events   bool
	done                   bool
	oldValue               func(context.Context) (*CreditCard, error)
	predicates             []predicate.CreditCard
}

var _ ent.Mutation = (*CreditCardMutation)(nil)

// creditcardOption allows management of the mutation configuration using functional options.
type creditcardOption func(*CreditCardMutation)

// newCreditCardMutation creates new mutation for the CreditCard entity.
func newCreditCardMutation(c config, op Op, opts ...creditcardOption) *CreditCardMutation {
	m := &CreditCardMutation{
		config:        c,
		op:            op,
		typ:           TypeCreditCard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreditCardID sets the ID field of the mutation.
func withCreditCardID(id string) creditcardOption {
	return func(m *CreditCardMutation) {
		var (
			err   error
			once  sync.Once
			value *CreditCard
		)
		m.oldValue = func(ctx context.Context) (*CreditCard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreditCard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreditCard sets the old CreditCard of the mutation.
func withCreditCard(node *CreditCard) creditcardOption {
	return func(m *CreditCardMutation) {
		m.oldValue = func(context.Context) (*CreditCard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreditCardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreditCardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreditCard entities.
func (m *CreditCardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreditCardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreditCardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreditCard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CreditCardMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CreditCardMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CreditCardMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *CreditCardMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CreditCardMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CreditCardMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CreditCardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreditCardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreditCardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CreditCardMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CreditCardMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CreditCardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *CreditCardMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *CreditCardMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *CreditCardMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[creditcard.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *CreditCardMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[creditcard.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *CreditCardMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, creditcard.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *CreditCardMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *CreditCardMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *CreditCardMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[creditcard.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *CreditCardMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[creditcard.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *CreditCardMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, creditcard.FieldUpdatedBy)
}

// SetName sets the "name" field.
func (m *CreditCardMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CreditCardMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CreditCardMutation) ResetName() {
	m.name = nil
}

// SetClosingDay sets the "closing_day" field.
func (m *CreditCardMutation) SetClosingDay(i int) {
	m.closing_day = &i
	m.addclosing_day = nil
}

// ClosingDay returns the value of the "closing_day" field in the mutation.
func (m *CreditCardMutation) ClosingDay() (r int, exists bool) {
	v := m.closing_day
	if v == nil {
		return
	}
	return *v, true
}

// OldClosingDay returns the old "closing_day" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldClosingDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosingDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosingDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosingDay: %w", err)
	}
	return oldValue.ClosingDay, nil
}

// AddClosingDay adds i to the "closing_day" field.
func (m *CreditCardMutation) AddClosingDay(i int) {
	if m.addclosing_day != nil {
		*m.addclosing_day += i
	} else {
		m.addclosing_day = &i
	}
}

// AddedClosingDay returns the value that was added to the "closing_day" field in this mutation.
func (m *CreditCardMutation) AddedClosingDay() (r int, exists bool) {
	v := m.addclosing_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetClosingDay resets all changes to the "closing_day" field.
func (m *CreditCardMutation) ResetClosingDay() {
	m.closing_day = nil
	m.addclosing_day = nil
}

// SetDueDay sets the "due_day" field.
func (m *CreditCardMutation) SetDueDay(i int) {
	m.due_day = &i
	m.adddue_day = nil
}

// DueDay returns the value of the "due_day" field in the mutation.
func (m *CreditCardMutation) DueDay() (r int, exists bool) {
	v := m.due_day
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDay returns the old "due_day" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldDueDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDay: %w", err)
	}
	return oldValue.DueDay, nil
}

// AddDueDay adds i to the "due_day" field.
func (m *CreditCardMutation) AddDueDay(i int) {
	if m.adddue_day != nil {
		*m.adddue_day += i
	} else {
		m.adddue_day = &i
	}
}

// AddedDueDay returns the value that was added to the "due_day" field in this mutation.
func (m *CreditCardMutation) AddedDueDay() (r int, exists bool) {
	v := m.adddue_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetDueDay resets all changes to the "due_day" field.
func (m *CreditCardMutation) ResetDueDay() {
	m.due_day = nil
	m.adddue_day = nil
}

// SetCreditLimit sets the "credit_limit" field.
func (m *CreditCardMutation) SetCreditLimit(d decimal.Decimal) {
	m.credit_limit = &d
}

// CreditLimit returns the value of the "credit_limit" field in the mutation.
func (m *CreditCardMutation) CreditLimit() (r decimal.Decimal, exists bool) {
	v := m.credit_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditLimit returns the old "credit_limit" field's value of the CreditCard entity.
// If the CreditCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditCardMutation) OldCreditLimit(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditLimit: %w", err)
	}
	return oldValue.CreditLimit, nil
}

// ResetCreditLimit resets all changes to the "credit_limit" field.
func (m *CreditCardMutation) ResetCreditLimit() {
	m.credit_limit = nil
}

// AddCreditBillIDs adds the "credit_bills" edge to the CreditBill entity by ids.
func (m *CreditCardMutation) AddCreditBillIDs(ids ...string) {
	if m.credit_bills == nil {
		m.credit_bills = make(map[string]struct{})
	}
	for i := range ids {
		m.credit_bills[ids[i]] = struct{}{}
	}
}

// ClearCreditBills clears the "credit_bills" edge to the CreditBill entity.
func (m *CreditCardMutation) ClearCreditBills() {
	m.clearedcredit_bills = true
}

// CreditBillsCleared reports if the "credit_bills" edge to the CreditBill entity was cleared.
func (m *CreditCardMutation) CreditBillsCleared() bool {
	return m.clearedcredit_bills
}

// RemoveCreditBillIDs removes the "credit_bills" edge to the CreditBill entity by IDs.
func (m *CreditCardMutation) RemoveCreditBillIDs(ids ...string) {
	if m.removedcredit_bills == nil {
		m.removedcredit_bills = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credit_bills, ids[i])
		m.removedcredit_bills[ids[i]] = struct{}{}
	}
}

// RemovedCreditBills returns the removed IDs of the "credit_bills" edge to the CreditBill entity.
func (m *CreditCardMutation) RemovedCreditBillsIDs() (ids []string) {
	for id := range m.removedcredit_bills {
		ids = append(ids, id)
	}
	return
}

// CreditBillsIDs returns the "credit_bills" edge IDs in the mutation.
func (m *CreditCardMutation) CreditBillsIDs() (ids []string) {
	for id := range m.credit_bills {
		ids = append(ids, id)
	}
	return
}

// ResetCreditBills resets all changes to the "credit_bills" edge.
func (m *CreditCardMutation) ResetCreditBills() {
	m.credit_bills = nil
	m.clearedcredit_bills = false
	m.removedcredit_bills = nil
}

// AddCreditExpenseIDs adds the "credit_expenses" edge to the CreditExpense entity by ids.
func (m *CreditCardMutation) AddCreditExpenseIDs(ids ...string) {
	if m.credit_expenses == nil {
		m.credit_expenses = make(map[string]struct{})
	}
	for i := range ids {
		m.credit_expenses[ids[i]] = struct{}{}
	}
}

// ClearCreditExpenses clears the "credit_expenses" edge to the CreditExpense entity.
func (m *CreditCardMutation) ClearCreditExpenses() {
	m.clearedcredit_expenses = true
}

// CreditExpensesCleared reports if the "credit_expenses" edge to the CreditExpense entity was cleared.
func (m *CreditCardMutation) CreditExpensesCleared() bool {
	return m.clearedcredit_expenses
}

// RemoveCreditExpenseIDs removes the "credit_expenses" edge to the CreditExpense entity by IDs.
func (m *CreditCardMutation) RemoveCreditExpenseIDs(ids ...string) {
	if m.removedcredit_expenses == nil {
		m.removedcredit_expenses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credit_expenses, ids[i])
		m.removedcredit_expenses[ids[i]] = struct{}{}
	}
}

// RemovedCreditExpenses returns the removed IDs of the "credit_expenses" edge to the CreditExpense entity.
func (m *CreditCardMutation) RemovedCreditExpensesIDs() (ids []string) {
	for id := range m.removedcredit_expenses {
		ids = append(ids, id)
	}
	return
}

// CreditExpensesIDs returns the "credit_expenses" edge IDs in the mutation.
func (m *CreditCardMutation) CreditExpensesIDs() (ids []string) {
	for id := range m.credit_expenses {
		ids = append(ids, id)
	}
	return
}

// ResetCreditExpenses resets all changes to the "credit_expenses" edge.
func (m *CreditCardMutation) ResetCreditExpenses() {
	m.credit_expenses = nil
	m.clearedcredit_expenses = false
	m.removedcredit_expenses = nil
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by ids.
func (m *CreditCardMutation) AddCreditIncomeIDs(ids ...string) {
	if m.credit_incomes == nil {
		m.credit_incomes = make(map[string]struct{})
	}
	for i := range ids {
		m.credit_incomes[ids[i]] = struct{}{}
	}
}

// ClearCreditIncomes clears the "credit_incomes" edge to the CreditIncome entity.
func (m *CreditCardMutation) ClearCreditIncomes() {
	m.clearedcredit_incomes = true
}

// CreditIncomesCleared reports if the "credit_incomes" edge to the CreditIncome entity was cleared.
func (m *CreditCardMutation) CreditIncomesCleared() bool {
	return m.clearedcredit_incomes
}

// RemoveCreditIncomeIDs removes the "credit_incomes" edge to the CreditIncome entity by IDs.
func (m *CreditCardMutation) RemoveCreditIncomeIDs(ids ...string) {
	if m.removedcredit_incomes == nil {
		m.removedcredit_incomes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credit_incomes, ids[i])
		m.removedcredit_incomes[ids[i]] = struct{}{}
	}
}

// RemovedCreditIncomes returns the removed IDs of the "credit_incomes" edge to the CreditIncome entity.
func (m *CreditCardMutation) RemovedCreditIncomesIDs() (ids []string) {
	for id := range m.removedcredit_incomes {
		ids = append(ids, id)
	}
	return
}

// CreditIncomesIDs returns the "credit_incomes" edge IDs in the mutation.
func (m *CreditCardMutation) CreditIncomesIDs() (ids []string) {
	for id := range m.credit_incomes {
		ids = append(ids, id)
	}
	return
}

// ResetCreditIncomes resets all changes to the "credit_incomes" edge.
func (m *CreditCardMutation) ResetCreditIncomes() {
	m.credit_incomes = nil
	m.clearedcredit_incomes = false
	m.removedcredit_incomes = nil
}

// AddRefundEventIDs adds the "refund_events" edge to the RefundEvent entity by ids.
func (m *CreditCardMutation) AddRefundEventIDs(ids ...string) {
	if m.refund_events == nil {
		m.refund_events = make(map[string]struct{})
	}
	for i := range ids {
		m.refund_events[ids[i]] = struct{}{}
	}
}

// ClearRefundEvents clears the "refund_events" edge to the RefundEvent entity.
func (m *CreditCardMutation) ClearRefundEvents() {
	m.clearedrefund_events = true
}

// RefundEventsCleared reports if the "refund_events" edge to the RefundEvent entity was cleared.
func (m *CreditCardMutation) RefundEventsCleared() bool {
	return m.clearedrefund_events
}

// RemoveRefundEventIDs removes the "refund_events" edge to the RefundEvent entity by IDs.
func (m *CreditCardMutation) RemoveRefundEventIDs(ids ...string) {
	if m.removedrefund_events == nil {
		m.removedrefund_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.refund_events, ids[i])
		m.removedrefund_events[ids[i]] = struct{}{}
	}
}

// RemovedRefundEvents returns the removed IDs of the "refund_events" edge to the RefundEvent entity.
func (m *CreditCardMutation) RemovedRefundEventsIDs() (ids []string) {
	for id := range m.removedrefund_events {
		ids = append(ids, id)
	}
	return
}

// RefundEventsIDs returns the "refund_events" edge IDs in the mutation.
func (m *CreditCardMutation) RefundEventsIDs() (ids []string) {
	for id := range m.refund_events {
		ids = append(ids, id)
	}
	return
}

// ResetRefundEvents resets all changes to the "refund_events" edge.
func (m *CreditCardMutation) ResetRefundEvents() {
	m.refund_events = nil
	m.clearedrefund_events = false
	m.removedrefund_events = nil
}

// Where appends a list predicates to the CreditCardMutation builder.
func (m *CreditCardMutation) Where(ps ...predicate.CreditCard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreditCardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreditCardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreditCard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreditCardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreditCardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreditCard).
func (m *CreditCardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreditCardMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, creditcard.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, creditcard.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, creditcard.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, creditcard.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, creditcard.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, creditcard.FieldUpdatedBy)
	}
	if m.name != nil {
		fields = append(fields, creditcard.FieldName)
	}
	if m.closing_day != nil {
		fields = append(fields, creditcard.FieldClosingDay)
	}
	if m.due_day != nil {
		fields = append(fields, creditcard.FieldDueDay)
	}
	if m.credit_limit != nil {
		fields = append(fields, creditcard.FieldCreditLimit)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreditCardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case creditcard.FieldUserID:
		return m.UserID()
	case creditcard.FieldStatus:
		return m.Status()
	case creditcard.FieldCreatedAt:
		return m.CreatedAt()
	case creditcard.FieldUpdatedAt:
		return m.UpdatedAt()
	case creditcard.FieldCreatedBy:
		return m.CreatedBy()
	case creditcard.FieldUpdatedBy:
		return m.UpdatedBy()
	case creditcard.FieldName:
		return m.Name()
	case creditcard.FieldClosingDay:
		return m.ClosingDay()
	case creditcard.FieldDueDay:
		return m.DueDay()
	case creditcard.FieldCreditLimit:
		return m.CreditLimit()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreditCardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case creditcard.FieldUserID:
		return m.OldUserID(ctx)
	case creditcard.FieldStatus:
		return m.OldStatus(ctx)
	case creditcard.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case creditcard.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case creditcard.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case creditcard.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case creditcard.FieldName:
		return m.OldName(ctx)
	case creditcard.FieldClosingDay:
		return m.OldClosingDay(ctx)
	case creditcard.FieldDueDay:
		return m.OldDueDay(ctx)
	case creditcard.FieldCreditLimit:
		return m.OldCreditLimit(ctx)
	}
	return nil, fmt.Errorf("unknown CreditCard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditCardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case creditcard.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case creditcard.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case creditcard.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case creditcard.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case creditcard.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case creditcard.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case creditcard.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case creditcard.FieldClosingDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosingDay(v)
		return nil
	case creditcard.FieldDueDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDay(v)
		return nil
	case creditcard.FieldCreditLimit:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditLimit(v)
		return nil
	}
	return fmt.Errorf("unknown CreditCard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreditCardMutation) AddedFields() []string {
	var fields []string
	if m.addclosing_day != nil {
		fields = append(fields, creditcard.FieldClosingDay)
	}
	if m.adddue_day != nil {
		fields = append(fields, creditcard.FieldDueDay)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreditCardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case creditcard.FieldClosingDay:
		return m.AddedClosingDay()
	case creditcard.FieldDueDay:
		return m.AddedDueDay()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditCardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case creditcard.FieldClosingDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClosingDay(v)
		return nil
	case creditcard.FieldDueDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDueDay(v)
		return nil
	}
	return fmt.Errorf("unknown CreditCard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreditCardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(creditcard.FieldCreatedBy) {
		fields = append(fields, creditcard.FieldCreatedBy)
	}
	if m.FieldCleared(creditcard.FieldUpdatedBy) {
		fields = append(fields, creditcard.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreditCardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreditCardMutation) ClearField(name string) error {
	switch name {
	case creditcard.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case creditcard.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown CreditCard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreditCardMutation) ResetField(name string) error {
	switch name {
	case creditcard.FieldUserID:
		m.ResetUserID()
		return nil
	case creditcard.FieldStatus:
		m.ResetStatus()
		return nil
	case creditcard.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case creditcard.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case creditcard.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case creditcard.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case creditcard.FieldName:
		m.ResetName()
		return nil
	case creditcard.FieldClosingDay:
		m.ResetClosingDay()
		return nil
	case creditcard.FieldDueDay:
		m.ResetDueDay()
		return nil
	case creditcard.FieldCreditLimit:
		m.ResetCreditLimit()
		return nil
	}
	return fmt.Errorf("unknown CreditCard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreditCardMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.credit_bills != nil {
		edges = append(edges, creditcard.EdgeCreditBills)
	}
	if m.credit_expenses != nil {
		edges = append(edges, creditcard.EdgeCreditExpenses)
	}
	if m.credit_incomes != nil {
		edges = append(edges, creditcard.EdgeCreditIncomes)
	}
	if m.refund_events != nil {
		edges = append(edges, creditcard.EdgeRefundEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreditCardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case creditcard.EdgeCreditBills:
		ids := make([]ent.Value, 0, len(m.credit_bills))
		for id := range m.credit_bills {
			ids = append(ids, id)
		}
		return ids
	case creditcard.EdgeCreditExpenses:
		ids := make([]ent.Value, 0, len(m.credit_expenses))
		for id := range m.credit_expenses {
			ids = append(ids, id)
		}
		return ids
	case creditcard.EdgeCreditIncomes:
		ids := make([]ent.Value, 0, len(m.credit_incomes))
		for id := range m.credit_incomes {
			ids = append(ids, id)
		}
		return ids
	case creditcard.EdgeRefundEvents:
		ids := make([]ent.Value, 0, len(m.refund_events))
		for id := range m.refund_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreditCardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedcredit_bills != nil {
		edges = append(edges, creditcard.EdgeCreditBills)
	}
	if m.removedcredit_expenses != nil {
		edges = append(edges, creditcard.EdgeCreditExpenses)
	}
	if m.removedcredit_incomes != nil {
		edges = append(edges, creditcard.EdgeCreditIncomes)
	}
	if m.removedrefund_events != nil {
		edges = append(edges, creditcard.EdgeRefundEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreditCardMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case creditcard.EdgeCreditBills:
		ids := make([]ent.Value, 0, len(m.removedcredit_bills))
		for id := range m.removedcredit_bills {
			ids = append(ids, id)
		}
		return ids
	case creditcard.EdgeCreditExpenses:
		ids := make([]ent.Value, 0, len(m.removedcredit_expenses))
		for id := range m.removedcredit_expenses {
			ids = append(ids, id)
		}
		return ids
	case creditcard.EdgeCreditIncomes:
		ids := make([]ent.Value, 0, len(m.removedcredit_incomes))
		for id := range m.removedcredit_incomes {
			ids = append(ids, id)
		}
		return ids
	case creditcard.EdgeRefundEvents:
		ids := make([]ent.Value, 0, len(m.removedrefund_events))
		for id := range m.removedrefund_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreditCardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcredit_bills {
		edges = append(edges, creditcard.EdgeCreditBills)
	}
	if m.clearedcredit_expenses {
		edges = append(edges, creditcard.EdgeCreditExpenses)
	}
	if m.clearedcredit_incomes {
		edges = append(edges, creditcard.EdgeCreditIncomes)
	}
	if m.clearedrefund_events {
		edges = append(edges, creditcard.EdgeRefundEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreditCardMutation) EdgeCleared(name string) bool {
	switch name {
	case creditcard.EdgeCreditBills:
		return m.clearedcredit_bills
	case creditcard.EdgeCreditExpenses:
		return m.clearedcredit_expenses
	case creditcard.EdgeCreditIncomes:
		return m.clearedcredit_incomes
	case creditcard.EdgeRefundEvents:
		return m.clearedrefund_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreditCardMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CreditCard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreditCardMutation) ResetEdge(name string) error {
	switch name {
	case creditcard.EdgeCreditBills:
		m.ResetCreditBills()
		return nil
	case creditcard.EdgeCreditExpenses:
		m.ResetCreditExpenses()
		return nil
	case creditcard.EdgeCreditIncomes:
		m.ResetCreditIncomes()
		return nil
	case creditcard.EdgeRefundEvents:
		m.ResetRefundEvents()
		return nil
	}
	return fmt.Errorf("unknown CreditCard edge %s", name)
}

// CreditExpenseMutation represents an operation that mutates the CreditExpense nodes in the graph.
type CreditExpenseMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	status                *string
	created_at            *time.Time
	updated_at            *time.Time
	created_by            *string
	updated_by            *string
	description           *string
	amount                *decimal.Decimal
	purchase_date         *time.Time
	installments          *int
	addinstallments       *int
	installment_number    *int
	addinstallment_number *int
	expense_type          *types.CreditExpenseType
	due_date              *time.Time
	tags                  *pq.StringArray
	clearedFields         map[string]struct{}
	credit_card           *string
	clearedcredit_card    bool
	parent                *string
	clearedparent         bool
	children              map[string]struct{}
	removedchildren       map[string]struct{}
	clearedchildren       bool
	credit_bill           *string
	clearedcredit_bill    bool
	credit_incomes        map[string]struct{}
	removedcredit_incomes map[string]struct{}
	clearedcredit_incomes bool
	refund_events         map[string]struct{}
	removedrefund_events  map[string]struct{}
	clearedrefund_events  bool
	done                  bool
	oldValue              func(context.Context) (*CreditExpense, error)
	predicates            []predicate.CreditExpense
}

var _ ent.Mutation = (*CreditExpenseMutation)(nil)

// creditexpenseOption allows management of the mutation configuration using functional options.
type creditexpenseOption func(*CreditExpenseMutation)

// newCreditExpenseMutation creates new mutation for the CreditExpense entity.
func newCreditExpenseMutation(c config, op Op, opts ...creditexpenseOption) *CreditExpenseMutation {
	m := &CreditExpenseMutation{
		config:        c,
		op:            op,
		typ:           TypeCreditExpense,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreditExpenseID sets the ID field of the mutation.
func withCreditExpenseID(id string) creditexpenseOption {
	return func(m *CreditExpenseMutation) {
		var (
			err   error
			once  sync.Once
			value *CreditExpense
		)
		m.oldValue = func(ctx context.Context) (*CreditExpense, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreditExpense.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreditExpense sets the old CreditExpense of the mutation.
func withCreditExpense(node *CreditExpense) creditexpenseOption {
	return func(m *CreditExpenseMutation) {
		m.oldValue = func(context.Context) (*CreditExpense, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreditExpenseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreditExpenseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreditExpense entities.
func (m *CreditExpenseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreditExpenseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreditExpenseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreditExpense.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CreditExpenseMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CreditExpenseMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CreditExpenseMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *CreditExpenseMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CreditExpenseMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CreditExpenseMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CreditExpenseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreditExpenseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreditExpenseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CreditExpenseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CreditExpenseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CreditExpenseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *CreditExpenseMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *CreditExpenseMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *CreditExpenseMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[creditexpense.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *CreditExpenseMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[creditexpense.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *CreditExpenseMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, creditexpense.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *CreditExpenseMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *CreditExpenseMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *CreditExpenseMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[creditexpense.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *CreditExpenseMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[creditexpense.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *CreditExpenseMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, creditexpense.FieldUpdatedBy)
}

// SetCreditCardID sets the "credit_card_id" field.
func (m *CreditExpenseMutation) SetCreditCardID(s string) {
	m.credit_card = &s
}

// CreditCardID returns the value of the "credit_card_id" field in the mutation.
func (m *CreditExpenseMutation) CreditCardID() (r string, exists bool) {
	v := m.credit_card
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditCardID returns the old "credit_card_id" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldCreditCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditCardID: %w", err)
	}
	return oldValue.CreditCardID, nil
}

// ResetCreditCardID resets all changes to the "credit_card_id" field.
func (m *CreditExpenseMutation) ResetCreditCardID() {
	m.credit_card = nil
}

// SetDescription sets the "description" field.
func (m *CreditExpenseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CreditExpenseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *CreditExpenseMutation) ResetDescription() {
	m.description = nil
}

// SetAmount sets the "amount" field.
func (m *CreditExpenseMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
}

// Amount returns the value of the "amount" field in the mutation.
func (m *CreditExpenseMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *CreditExpenseMutation) ResetAmount() {
	m.amount = nil
}

// SetPurchaseDate sets the "purchase_date" field.
func (m *CreditExpenseMutation) SetPurchaseDate(t time.Time) {
	m.purchase_date = &t
}

// PurchaseDate returns the value of the "purchase_date" field in the mutation.
func (m *CreditExpenseMutation) PurchaseDate() (r time.Time, exists bool) {
	v := m.purchase_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchaseDate returns the old "purchase_date" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldPurchaseDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchaseDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchaseDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchaseDate: %w", err)
	}
	return oldValue.PurchaseDate, nil
}

// ResetPurchaseDate resets all changes to the "purchase_date" field.
func (m *CreditExpenseMutation) ResetPurchaseDate() {
	m.purchase_date = nil
}

// SetInstallments sets the "installments" field.
func (m *CreditExpenseMutation) SetInstallments(i int) {
	m.installments = &i
	m.addinstallments = nil
}

// Installments returns the value of the "installments" field in the mutation.
func (m *CreditExpenseMutation) Installments() (r int, exists bool) {
	v := m.installments
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallments returns the old "installments" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldInstallments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallments: %w", err)
	}
	return oldValue.Installments, nil
}

// AddInstallments adds i to the "installments" field.
func (m *CreditExpenseMutation) AddInstallments(i int) {
	if m.addinstallments != nil {
		*m.addinstallments += i
	} else {
		m.addinstallments = &i
	}
}

// AddedInstallments returns the value that was added to the "installments" field in this mutation.
func (m *CreditExpenseMutation) AddedInstallments() (r int, exists bool) {
	v := m.addinstallments
	if v == nil {
		return
	}
	return *v, true
}

// ResetInstallments resets all changes to the "installments" field.
func (m *CreditExpenseMutation) ResetInstallments() {
	m.installments = nil
	m.addinstallments = nil
}

// SetInstallmentNumber sets the "installment_number" field.
func (m *CreditExpenseMutation) SetInstallmentNumber(i int) {
	m.installment_number = &i
	m.addinstallment_number = nil
}

// InstallmentNumber returns the value of the "installment_number" field in the mutation.
func (m *CreditExpenseMutation) InstallmentNumber() (r int, exists bool) {
	v := m.installment_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallmentNumber returns the old "installment_number" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldInstallmentNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallmentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallmentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallmentNumber: %w", err)
	}
	return oldValue.InstallmentNumber, nil
}

// AddInstallmentNumber adds i to the "installment_number" field.
func (m *CreditExpenseMutation) AddInstallmentNumber(i int) {
	if m.addinstallment_number != nil {
		*m.addinstallment_number += i
	} else {
		m.addinstallment_number = &i
	}
}

// AddedInstallmentNumber returns the value that was added to the "installment_number" field in this mutation.
func (m *CreditExpenseMutation) AddedInstallmentNumber() (r int, exists bool) {
	v := m.addinstallment_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetInstallmentNumber resets all changes to the "installment_number" field.
func (m *CreditExpenseMutation) ResetInstallmentNumber() {
	m.installment_number = nil
	m.addinstallment_number = nil
}

// SetExpenseType sets the "expense_type" field.
func (m *CreditExpenseMutation) SetExpenseType(tet types.CreditExpenseType) {
	m.expense_type = &tet
}

// ExpenseType returns the value of the "expense_type" field in the mutation.
func (m *CreditExpenseMutation) ExpenseType() (r types.CreditExpenseType, exists bool) {
	v := m.expense_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExpenseType returns the old "expense_type" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldExpenseType(ctx context.Context) (v types.CreditExpenseType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpenseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpenseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpenseType: %w", err)
	}
	return oldValue.ExpenseType, nil
}

// ResetExpenseType resets all changes to the "expense_type" field.
func (m *CreditExpenseMutation) ResetExpenseType() {
	m.expense_type = nil
}

// SetParentExpenseID sets the "parent_expense_id" field.
func (m *CreditExpenseMutation) SetParentExpenseID(s string) {
	m.parent = &s
}

// ParentExpenseID returns the value of the "parent_expense_id" field in the mutation.
func (m *CreditExpenseMutation) ParentExpenseID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentExpenseID returns the old "parent_expense_id" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldParentExpenseID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentExpenseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentExpenseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentExpenseID: %w", err)
	}
	return oldValue.ParentExpenseID, nil
}

// ClearParentExpenseID clears the value of the "parent_expense_id" field.
func (m *CreditExpenseMutation) ClearParentExpenseID() {
	m.parent = nil
	m.clearedFields[creditexpense.FieldParentExpenseID] = struct{}{}
}

// ParentExpenseIDCleared returns if the "parent_expense_id" field was cleared in this mutation.
func (m *CreditExpenseMutation) ParentExpenseIDCleared() bool {
	_, ok := m.clearedFields[creditexpense.FieldParentExpenseID]
	return ok
}

// ResetParentExpenseID resets all changes to the "parent_expense_id" field.
func (m *CreditExpenseMutation) ResetParentExpenseID() {
	m.parent = nil
	delete(m.clearedFields, creditexpense.FieldParentExpenseID)
}

// SetCreditBillID sets the "credit_bill_id" field.
func (m *CreditExpenseMutation) SetCreditBillID(s string) {
	m.credit_bill = &s
}

// CreditBillID returns the value of the "credit_bill_id" field in the mutation.
func (m *CreditExpenseMutation) CreditBillID() (r string, exists bool) {
	v := m.credit_bill
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditBillID returns the old "credit_bill_id" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldCreditBillID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditBillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditBillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditBillID: %w", err)
	}
	return oldValue.CreditBillID, nil
}

// ClearCreditBillID clears the value of the "credit_bill_id" field.
func (m *CreditExpenseMutation) ClearCreditBillID() {
	m.credit_bill = nil
	m.clearedFields[creditexpense.FieldCreditBillID] = struct{}{}
}

// CreditBillIDCleared returns if the "credit_bill_id" field was cleared in this mutation.
func (m *CreditExpenseMutation) CreditBillIDCleared() bool {
	_, ok := m.clearedFields[creditexpense.FieldCreditBillID]
	return ok
}

// ResetCreditBillID resets all changes to the "credit_bill_id" field.
func (m *CreditExpenseMutation) ResetCreditBillID() {
	m.credit_bill = nil
	delete(m.clearedFields, creditexpense.FieldCreditBillID)
}

// SetDueDate sets the "due_date" field.
func (m *CreditExpenseMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *CreditExpenseMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *CreditExpenseMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[creditexpense.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *CreditExpenseMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[creditexpense.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *CreditExpenseMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, creditexpense.FieldDueDate)
}

// SetTags sets the "tags" field.
func (m *CreditExpenseMutation) SetTags(pa pq.StringArray) {
	m.tags = &pa
}

// Tags returns the value of the "tags" field in the mutation.
func (m *CreditExpenseMutation) Tags() (r pq.StringArray, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the CreditExpense entity.
// If the CreditExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditExpenseMutation) OldTags(ctx context.Context) (v pq.StringArray, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// ResetTags resets all changes to the "tags" field.
func (m *CreditExpenseMutation) ResetTags() {
	m.tags = nil
}

// ClearCreditCard clears the "credit_card" edge to the CreditCard entity.
func (m *CreditExpenseMutation) ClearCreditCard() {
	m.clearedcredit_card = true
	m.clearedFields[creditexpense.FieldCreditCardID] = struct{}{}
}

// CreditCardCleared reports if the "credit_card" edge to the CreditCard entity was cleared.
func (m *CreditExpenseMutation) CreditCardCleared() bool {
	return m.clearedcredit_card
}

// CreditCardIDs returns the "credit_card" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreditCardID instead. It exists only for internal usage by the builders.
func (m *CreditExpenseMutation) CreditCardIDs() (ids []string) {
	if id := m.credit_card; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreditCard resets all changes to the "credit_card" edge.
func (m *CreditExpenseMutation) ResetCreditCard() {
	m.credit_card = nil
	m.clearedcredit_card = false
}

// SetParentID sets the "parent" edge to the CreditExpense entity by id.
func (m *CreditExpenseMutation) SetParentID(id string) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the CreditExpense entity.
func (m *CreditExpenseMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[creditexpense.FieldParentExpenseID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the CreditExpense entity was cleared.
func (m *CreditExpenseMutation) ParentCleared() bool {
	return m.ParentExpenseIDCleared() || m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *CreditExpenseMutation) ParentID() (id string, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *CreditExpenseMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *CreditExpenseMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the CreditExpense entity by ids.
func (m *CreditExpenseMutation) AddChildIDs(ids ...string) {
	if m.children == nil {
		m.children = make(map[string]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the CreditExpense entity.
func (m *CreditExpenseMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the CreditExpense entity was cleared.
func (m *CreditExpenseMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the CreditExpense entity by IDs.
func (m *CreditExpenseMutation) RemoveChildIDs(ids ...string) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the CreditExpense entity.
func (m *CreditExpenseMutation) RemovedChildrenIDs() (ids []string) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *CreditExpenseMutation) ChildrenIDs() (ids []string) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *CreditExpenseMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// ClearCreditBill clears the "credit_bill" edge to the CreditBill entity.
func (m *CreditExpenseMutation) ClearCreditBill() {
	m.clearedcredit_bill = true
	m.clearedFields[creditexpense.FieldCreditBillID] = struct{}{}
}

// CreditBillCleared reports if the "credit_bill" edge to the CreditBill entity was cleared.
func (m *CreditExpenseMutation) CreditBillCleared() bool {
	return m.CreditBillIDCleared() || m.clearedcredit_bill
}

// CreditBillIDs returns the "credit_bill" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreditBillID instead. It exists only for internal usage by the builders.
func (m *CreditExpenseMutation) CreditBillIDs() (ids []string) {
	if id := m.credit_bill; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreditBill resets all changes to the "credit_bill" edge.
func (m *CreditExpenseMutation) ResetCreditBill() {
	m.credit_bill = nil
	m.clearedcredit_bill = false
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by ids.
func (m *CreditExpenseMutation) AddCreditIncomeIDs(ids ...string) {
	if m.credit_incomes == nil {
		m.credit_incomes = make(map[string]struct{})
	}
	for i := range ids {
		m.credit_incomes[ids[i]] = struct{}{}
	}
}

// ClearCreditIncomes clears the "credit_incomes" edge to the CreditIncome entity.
func (m *CreditExpenseMutation) ClearCreditIncomes() {
	m.clearedcredit_incomes = true
}

// CreditIncomesCleared reports if the "credit_incomes" edge to the CreditIncome entity was cleared.
func (m *CreditExpenseMutation) CreditIncomesCleared() bool {
	return m.clearedcredit_incomes
}

// RemoveCreditIncomeIDs removes the "credit_incomes" edge to the CreditIncome entity by IDs.
func (m *CreditExpenseMutation) RemoveCreditIncomeIDs(ids ...string) {
	if m.removedcredit_incomes == nil {
		m.removedcredit_incomes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credit_incomes, ids[i])
		m.removedcredit_incomes[ids[i]] = struct{}{}
	}
}

// RemovedCreditIncomes returns the removed IDs of the "credit_incomes" edge to the CreditIncome entity.
func (m *CreditExpenseMutation) RemovedCreditIncomesIDs() (ids []string) {
	for id := range m.removedcredit_incomes {
		ids = append(ids, id)
	}
	return
}

// CreditIncomesIDs returns the "credit_incomes" edge IDs in the mutation.
func (m *CreditExpenseMutation) CreditIncomesIDs() (ids []string) {
	for id := range m.credit_incomes {
		ids = append(ids, id)
	}
	return
}

// ResetCreditIncomes resets all changes to the "credit_incomes" edge.
func (m *CreditExpenseMutation) ResetCreditIncomes() {
	m.credit_incomes = nil
	m.clearedcredit_incomes = false
	m.removedcredit_incomes = nil
}

// AddRefundEventIDs adds the "refund_events" edge to the RefundEvent entity by ids.
func (m *CreditExpenseMutation) AddRefundEventIDs(ids ...string) {
	if m.refund_events == nil {
		m.refund_events = make(map[string]struct{})
	}
	for i := range ids {
		m.refund_events[ids[i]] = struct{}{}
	}
}

// ClearRefundEvents clears the "refund_events" edge to the RefundEvent entity.
func (m *CreditExpenseMutation) ClearRefundEvents() {
	m.clearedrefund_events = true
}

// RefundEventsCleared reports if the "refund_events" edge to the RefundEvent entity was cleared.
func (m *CreditExpenseMutation) RefundEventsCleared() bool {
	return m.clearedrefund_events
}

// RemoveRefundEventIDs removes the "refund_events" edge to the RefundEvent entity by IDs.
func (m *CreditExpenseMutation) RemoveRefundEventIDs(ids ...string) {
	if m.removedrefund_events == nil {
		m.removedrefund_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.refund_events, ids[i])
		m.removedrefund_events[ids[i]] = struct{}{}
	}
}

// RemovedRefundEvents returns the removed IDs of the "refund_events" edge to the RefundEvent entity.
func (m *CreditExpenseMutation) RemovedRefundEventsIDs() (ids []string) {
	for id := range m.removedrefund_events {
		ids = append(ids, id)
	}
	return
}

// RefundEventsIDs returns the "refund_events" edge IDs in the mutation.
func (m *CreditExpenseMutation) RefundEventsIDs() (ids []string) {
	for id := range m.refund_events {
		ids = append(ids, id)
	}
	return
}

// ResetRefundEvents resets all changes to the "refund_events" edge.
func (m *CreditExpenseMutation) ResetRefundEvents() {
	m.refund_events = nil
	m.clearedrefund_events = false
	m.removedrefund_events = nil
}

// Where appends a list predicates to the CreditExpenseMutation builder.
func (m *CreditExpenseMutation) Where(ps ...predicate.CreditExpense) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreditExpenseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreditExpenseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreditExpense, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreditExpenseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreditExpenseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreditExpense).
func (m *CreditExpenseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreditExpenseMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.user_id != nil {
		fields = append(fields, creditexpense.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, creditexpense.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, creditexpense.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, creditexpense.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, creditexpense.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, creditexpense.FieldUpdatedBy)
	}
	if m.credit_card != nil {
		fields = append(fields, creditexpense.FieldCreditCardID)
	}
	if m.description != nil {
		fields = append(fields, creditexpense.FieldDescription)
	}
	if m.amount != nil {
		fields = append(fields, creditexpense.FieldAmount)
	}
	if m.purchase_date != nil {
		fields = append(fields, creditexpense.FieldPurchaseDate)
	}
	if m.installments != nil {
		fields = append(fields, creditexpense.FieldInstallments)
	}
	if m.installment_number != nil {
		fields = append(fields, creditexpense.FieldInstallmentNumber)
	}
	if m.expense_type != nil {
		fields = append(fields, creditexpense.FieldExpenseType)
	}
	if m.parent != nil {
		fields = append(fields, creditexpense.FieldParentExpenseID)
	}
	if m.credit_bill != nil {
		fields = append(fields, creditexpense.FieldCreditBillID)
	}
	if m.due_date != nil {
		fields = append(fields, creditexpense.FieldDueDate)
	}
	if m.tags != nil {
		fields = append(fields, creditexpense.FieldTags)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreditExpenseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case creditexpense.FieldUserID:
		return m.UserID()
	case creditexpense.FieldStatus:
		return m.Status()
	case creditexpense.FieldCreatedAt:
		return m.CreatedAt()
	case creditexpense.FieldUpdatedAt:
		return m.UpdatedAt()
	case creditexpense.FieldCreatedBy:
		return m.CreatedBy()
	case creditexpense.FieldUpdatedBy:
		return m.UpdatedBy()
	case creditexpense.FieldCreditCardID:
		return m.CreditCardID()
	case creditexpense.FieldDescription:
		return m.Description()
	case creditexpense.FieldAmount:
		return m.Amount()
	case creditexpense.FieldPurchaseDate:
		return m.PurchaseDate()
	case creditexpense.FieldInstallments:
		return m.Installments()
	case creditexpense.FieldInstallmentNumber:
		return m.InstallmentNumber()
	case creditexpense.FieldExpenseType:
		return m.ExpenseType()
	case creditexpense.FieldParentExpenseID:
		return m.ParentExpenseID()
	case creditexpense.FieldCreditBillID:
		return m.CreditBillID()
	case creditexpense.FieldDueDate:
		return m.DueDate()
	case creditexpense.FieldTags:
		return m.Tags()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreditExpenseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case creditexpense.FieldUserID:
		return m.OldUserID(ctx)
	case creditexpense.FieldStatus:
		return m.OldStatus(ctx)
	case creditexpense.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case creditexpense.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case creditexpense.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case creditexpense.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case creditexpense.FieldCreditCardID:
		return m.OldCreditCardID(ctx)
	case creditexpense.FieldDescription:
		return m.OldDescription(ctx)
	case creditexpense.FieldAmount:
		return m.OldAmount(ctx)
	case creditexpense.FieldPurchaseDate:
		return m.OldPurchaseDate(ctx)
	case creditexpense.FieldInstallments:
		return m.OldInstallments(ctx)
	case creditexpense.FieldInstallmentNumber:
		return m.OldInstallmentNumber(ctx)
	case creditexpense.FieldExpenseType:
		return m.OldExpenseType(ctx)
	case creditexpense.FieldParentExpenseID:
		return m.OldParentExpenseID(ctx)
	case creditexpense.FieldCreditBillID:
		return m.OldCreditBillID(ctx)
	case creditexpense.FieldDueDate:
		return m.OldDueDate(ctx)
	case creditexpense.FieldTags:
		return m.OldTags(ctx)
	}
	return nil, fmt.Errorf("unknown CreditExpense field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditExpenseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case creditexpense.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case creditexpense.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case creditexpense.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case creditexpense.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case creditexpense.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case creditexpense.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case creditexpense.FieldCreditCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditCardID(v)
		return nil
	case creditexpense.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case creditexpense.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case creditexpense.FieldPurchaseDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchaseDate(v)
		return nil
	case creditexpense.FieldInstallments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallments(v)
		return nil
	case creditexpense.FieldInstallmentNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallmentNumber(v)
		return nil
	case creditexpense.FieldExpenseType:
		v, ok := value.(types.CreditExpenseType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpenseType(v)
		return nil
	case creditexpense.FieldParentExpenseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentExpenseID(v)
		return nil
	case creditexpense.FieldCreditBillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditBillID(v)
		return nil
	case creditexpense.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case creditexpense.FieldTags:
		v, ok := value.(pq.StringArray)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	}
	return fmt.Errorf("unknown CreditExpense field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreditExpenseMutation) AddedFields() []string {
	var fields []string
	if m.addinstallments != nil {
		fields = append(fields, creditexpense.FieldInstallments)
	}
	if m.addinstallment_number != nil {
		fields = append(fields, creditexpense.FieldInstallmentNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreditExpenseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case creditexpense.FieldInstallments:
		return m.AddedInstallments()
	case creditexpense.FieldInstallmentNumber:
		return m.AddedInstallmentNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditExpenseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case creditexpense.FieldInstallments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInstallments(v)
		return nil
	case creditexpense.FieldInstallmentNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInstallmentNumber(v)
		return nil
	}
	return fmt.Errorf("unknown CreditExpense numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreditExpenseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(creditexpense.FieldCreatedBy) {
		fields = append(fields, creditexpense.FieldCreatedBy)
	}
	if m.FieldCleared(creditexpense.FieldUpdatedBy) {
		fields = append(fields, creditexpense.FieldUpdatedBy)
	}
	if m.FieldCleared(creditexpense.FieldParentExpenseID) {
		fields = append(fields, creditexpense.FieldParentExpenseID)
	}
	if m.FieldCleared(creditexpense.FieldCreditBillID) {
		fields = append(fields, creditexpense.FieldCreditBillID)
	}
	if m.FieldCleared(creditexpense.FieldDueDate) {
		fields = append(fields, creditexpense.FieldDueDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreditExpenseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreditExpenseMutation) ClearField(name string) error {
	switch name {
	case creditexpense.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case creditexpense.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case creditexpense.FieldParentExpenseID:
		m.ClearParentExpenseID()
		return nil
	case creditexpense.FieldCreditBillID:
		m.ClearCreditBillID()
		return nil
	case creditexpense.FieldDueDate:
		m.ClearDueDate()
		return nil
	}
	return fmt.Errorf("unknown CreditExpense nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreditExpenseMutation) ResetField(name string) error {
	switch name {
	case creditexpense.FieldUserID:
		m.ResetUserID()
		return nil
	case creditexpense.FieldStatus:
		m.ResetStatus()
		return nil
	case creditexpense.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case creditexpense.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case creditexpense.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case creditexpense.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case creditexpense.FieldCreditCardID:
		m.ResetCreditCardID()
		return nil
	case creditexpense.FieldDescription:
		m.ResetDescription()
		return nil
	case creditexpense.FieldAmount:
		m.ResetAmount()
		return nil
	case creditexpense.FieldPurchaseDate:
		m.ResetPurchaseDate()
		return nil
	case creditexpense.FieldInstallments:
		m.ResetInstallments()
		return nil
	case creditexpense.FieldInstallmentNumber:
		m.ResetInstallmentNumber()
		return nil
	case creditexpense.FieldExpenseType:
		m.ResetExpenseType()
		return nil
	case creditexpense.FieldParentExpenseID:
		m.ResetParentExpenseID()
		return nil
	case creditexpense.FieldCreditBillID:
		m.ResetCreditBillID()
		return nil
	case creditexpense.FieldDueDate:
		m.ResetDueDate()
		return nil
	case creditexpense.FieldTags:
		m.ResetTags()
		return nil
	}
	return fmt.Errorf("unknown CreditExpense field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreditExpenseMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.credit_card != nil {
		edges = append(edges, creditexpense.EdgeCreditCard)
	}
	if m.parent != nil {
		edges = append(edges, creditexpense.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, creditexpense.EdgeChildren)
	}
	if m.credit_bill != nil {
		edges = append(edges, creditexpense.EdgeCreditBill)
	}
	if m.credit_incomes != nil {
		edges = append(edges, creditexpense.EdgeCreditIncomes)
	}
	if m.refund_events != nil {
		edges = append(edges, creditexpense.EdgeRefundEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreditExpenseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case creditexpense.EdgeCreditCard:
		if id := m.credit_card; id != nil {
			return []ent.Value{*id}
		}
	case creditexpense.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case creditexpense.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case creditexpense.EdgeCreditBill:
		if id := m.credit_bill; id != nil {
			return []ent.Value{*id}
		}
	case creditexpense.EdgeCreditIncomes:
		ids := make([]ent.Value, 0, len(m.credit_incomes))
		for id := range m.credit_incomes {
			ids = append(ids, id)
		}
		return ids
	case creditexpense.EdgeRefundEvents:
		ids := make([]ent.Value, 0, len(m.refund_events))
		for id := range m.refund_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreditExpenseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedchildren != nil {
		edges = append(edges, creditexpense.EdgeChildren)
	}
	if m.removedcredit_incomes != nil {
		edges = append(edges, creditexpense.EdgeCreditIncomes)
	}
	if m.removedrefund_events != nil {
		edges = append(edges, creditexpense.EdgeRefundEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreditExpenseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case creditexpense.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case creditexpense.EdgeCreditIncomes:
		ids := make([]ent.Value, 0, len(m.removedcredit_incomes))
		for id := range m.removedcredit_incomes {
			ids = append(ids, id)
		}
		return ids
	case creditexpense.EdgeRefundEvents:
		ids := make([]ent.Value, 0, len(m.removedrefund_events))
		for id := range m.removedrefund_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreditExpenseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedcredit_card {
		edges = append(edges, creditexpense.EdgeCreditCard)
	}
	if m.clearedparent {
		edges = append(edges, creditexpense.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, creditexpense.EdgeChildren)
	}
	if m.clearedcredit_bill {
		edges = append(edges, creditexpense.EdgeCreditBill)
	}
	if m.clearedcredit_incomes {
		edges = append(edges, creditexpense.EdgeCreditIncomes)
	}
	if m.clearedrefund_events {
		edges = append(edges, creditexpense.EdgeRefundEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreditExpenseMutation) EdgeCleared(name string) bool {
	switch name {
	case creditexpense.EdgeCreditCard:
		return m.clearedcredit_card
	case creditexpense.EdgeParent:
		return m.clearedparent
	case creditexpense.EdgeChildren:
		return m.clearedchildren
	case creditexpense.EdgeCreditBill:
		return m.clearedcredit_bill
	case creditexpense.EdgeCreditIncomes:
		return m.clearedcredit_incomes
	case creditexpense.EdgeRefundEvents:
		return m.clearedrefund_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreditExpenseMutation) ClearEdge(name string) error {
	switch name {
	case creditexpense.EdgeCreditCard:
		m.ClearCreditCard()
		return nil
	case creditexpense.EdgeParent:
		m.ClearParent()
		return nil
	case creditexpense.EdgeCreditBill:
		m.ClearCreditBill()
		return nil
	}
	return fmt.Errorf("unknown CreditExpense unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreditExpenseMutation) ResetEdge(name string) error {
	switch name {
	case creditexpense.EdgeCreditCard:
		m.ResetCreditCard()
		return nil
	case creditexpense.EdgeParent:
		m.ResetParent()
		return nil
	case creditexpense.EdgeChildren:
		m.ResetChildren()
		return nil
	case creditexpense.EdgeCreditBill:
		m.ResetCreditBill()
		return nil
	case creditexpense.EdgeCreditIncomes:
		m.ResetCreditIncomes()
		return nil
	case creditexpense.EdgeRefundEvents:
		m.ResetRefundEvents()
		return nil
	}
	return fmt.Errorf("unknown CreditExpense edge %s", name)
}

// CreditIncomeMutation represents an operation that mutates the CreditIncome nodes in the graph.
type CreditIncomeMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	status                *string
	created_at            *time.Time
	updated_at            *time.Time
	created_by            *string
	updated_by            *string
	description           *string
	amount                *decimal.Decimal
	installment_number    *int
	addinstallment_number *int
	date                  *time.Time
	clearedFields         map[string]struct{}
	credit_card           *string
	clearedcredit_card    bool
	credit_bill           *string
	clearedcredit_bill    bool
	credit_expense        *string
	clearedcredit_expense bool
	done                  bool
	oldValue              func(context.Context) (*CreditIncome, error)
	predicates            []predicate.CreditIncome
}

var _ ent.Mutation = (*CreditIncomeMutation)(nil)

// creditincomeOption allows management of the mutation configuration using functional options.
type creditincomeOption func(*CreditIncomeMutation)

// newCreditIncomeMutation creates new mutation for the CreditIncome entity.
func newCreditIncomeMutation(c config, op Op, opts ...creditincomeOption) *CreditIncomeMutation {
	m := &CreditIncomeMutation{
		config:        c,
		op:            op,
		typ:           TypeCreditIncome,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreditIncomeID sets the ID field of the mutation.
func withCreditIncomeID(id string) creditincomeOption {
	return func(m *CreditIncomeMutation) {
		var (
			err   error
			once  sync.Once
			value *CreditIncome
		)
		m.oldValue = func(ctx context.Context) (*CreditIncome, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreditIncome.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreditIncome sets the old CreditIncome of the mutation.
func withCreditIncome(node *CreditIncome) creditincomeOption {
	return func(m *CreditIncomeMutation) {
		m.oldValue = func(context.Context) (*CreditIncome, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreditIncomeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreditIncomeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreditIncome entities.
func (m *CreditIncomeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreditIncomeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreditIncomeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreditIncome.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CreditIncomeMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CreditIncomeMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CreditIncomeMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *CreditIncomeMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CreditIncomeMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CreditIncomeMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CreditIncomeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreditIncomeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreditIncomeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CreditIncomeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CreditIncomeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CreditIncomeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *CreditIncomeMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *CreditIncomeMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *CreditIncomeMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[creditincome.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *CreditIncomeMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[creditincome.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *CreditIncomeMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, creditincome.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *CreditIncomeMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *CreditIncomeMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *CreditIncomeMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[creditincome.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *CreditIncomeMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[creditincome.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *CreditIncomeMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, creditincome.FieldUpdatedBy)
}

// SetCreditCardID sets the "credit_card_id" field.
func (m *CreditIncomeMutation) SetCreditCardID(s string) {
	m.credit_card = &s
}

// CreditCardID returns the value of the "credit_card_id" field in the mutation.
func (m *CreditIncomeMutation) CreditCardID() (r string, exists bool) {
	v := m.credit_card
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditCardID returns the old "credit_card_id" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldCreditCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditCardID: %w", err)
	}
	return oldValue.CreditCardID, nil
}

// ResetCreditCardID resets all changes to the "credit_card_id" field.
func (m *CreditIncomeMutation) ResetCreditCardID() {
	m.credit_card = nil
}

// SetCreditBillID sets the "credit_bill_id" field.
func (m *CreditIncomeMutation) SetCreditBillID(s string) {
	m.credit_bill = &s
}

// CreditBillID returns the value of the "credit_bill_id" field in the mutation.
func (m *CreditIncomeMutation) CreditBillID() (r string, exists bool) {
	v := m.credit_bill
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditBillID returns the old "credit_bill_id" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldCreditBillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditBillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditBillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditBillID: %w", err)
	}
	return oldValue.CreditBillID, nil
}

// ResetCreditBillID resets all changes to the "credit_bill_id" field.
func (m *CreditIncomeMutation) ResetCreditBillID() {
	m.credit_bill = nil
}

// SetCreditExpenseID sets the "credit_expense_id" field.
func (m *CreditIncomeMutation) SetCreditExpenseID(s string) {
	m.credit_expense = &s
}

// CreditExpenseID returns the value of the "credit_expense_id" field in the mutation.
func (m *CreditIncomeMutation) CreditExpenseID() (r string, exists bool) {
	v := m.credit_expense
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditExpenseID returns the old "credit_expense_id" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldCreditExpenseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditExpenseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditExpenseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditExpenseID: %w", err)
	}
	return oldValue.CreditExpenseID, nil
}

// ResetCreditExpenseID resets all changes to the "credit_expense_id" field.
func (m *CreditIncomeMutation) ResetCreditExpenseID() {
	m.credit_expense = nil
}

// SetDescription sets the "description" field.
func (m *CreditIncomeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CreditIncomeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *CreditIncomeMutation) ResetDescription() {
	m.description = nil
}

// SetAmount sets the "amount" field.
func (m *CreditIncomeMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
}

// Amount returns the value of the "amount" field in the mutation.
func (m *CreditIncomeMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *CreditIncomeMutation) ResetAmount() {
	m.amount = nil
}

// SetInstallmentNumber sets the "installment_number" field.
func (m *CreditIncomeMutation) SetInstallmentNumber(i int) {
	m.installment_number = &i
	m.addinstallment_number = nil
}

// InstallmentNumber returns the value of the "installment_number" field in the mutation.
func (m *CreditIncomeMutation) InstallmentNumber() (r int, exists bool) {
	v := m.installment_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallmentNumber returns the old "installment_number" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldInstallmentNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallmentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallmentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallmentNumber: %w", err)
	}
	return oldValue.InstallmentNumber, nil
}

// AddInstallmentNumber adds i to the "installment_number" field.
func (m *CreditIncomeMutation) AddInstallmentNumber(i int) {
	if m.addinstallment_number != nil {
		*m.addinstallment_number += i
	} else {
		m.addinstallment_number = &i
	}
}

// AddedInstallmentNumber returns the value that was added to the "installment_number" field in this mutation.
func (m *CreditIncomeMutation) AddedInstallmentNumber() (r int, exists bool) {
	v := m.addinstallment_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetInstallmentNumber resets all changes to the "installment_number" field.
func (m *CreditIncomeMutation) ResetInstallmentNumber() {
	m.installment_number = nil
	m.addinstallment_number = nil
}

// SetDate sets the "date" field.
func (m *CreditIncomeMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *CreditIncomeMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the CreditIncome entity.
// If the CreditIncome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditIncomeMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *CreditIncomeMutation) ResetDate() {
	m.date = nil
}

// ClearCreditCard clears the "credit_card" edge to the CreditCard entity.
func (m *CreditIncomeMutation) ClearCreditCard() {
	m.clearedcredit_card = true
	m.clearedFields[creditincome.FieldCreditCardID] = struct{}{}
}

// CreditCardCleared reports if the "credit_card" edge to the CreditCard entity was cleared.
func (m *CreditIncomeMutation) CreditCardCleared() bool {
	return m.clearedcredit_card
}

// CreditCardIDs returns the "credit_card" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreditCardID instead. It exists only for internal usage by the builders.
func (m *CreditIncomeMutation) CreditCardIDs() (ids []string) {
	if id := m.credit_card; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreditCard resets all changes to the "credit_card" edge.
func (m *CreditIncomeMutation) ResetCreditCard() {
	m.credit_card = nil
	m.clearedcredit_card = false
}

// ClearCreditBill clears the "credit_bill" edge to the CreditBill entity.
func (m *CreditIncomeMutation) ClearCreditBill() {
	m.clearedcredit_bill = true
	m.clearedFields[creditincome.FieldCreditBillID] = struct{}{}
}

// CreditBillCleared reports if the "credit_bill" edge to the CreditBill entity was cleared.
func (m *CreditIncomeMutation) CreditBillCleared() bool {
	return m.clearedcredit_bill
}

// CreditBillIDs returns the "credit_bill" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreditBillID instead. It exists only for internal usage by the builders.
func (m *CreditIncomeMutation) CreditBillIDs() (ids []string) {
	if id := m.credit_bill; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreditBill resets all changes to the "credit_bill" edge.
func (m *CreditIncomeMutation) ResetCreditBill() {
	m.credit_bill = nil
	m.clearedcredit_bill = false
}

// ClearCreditExpense clears the "credit_expense" edge to the CreditExpense entity.
func (m *CreditIncomeMutation) ClearCreditExpense() {
	m.clearedcredit_expense = true
	m.clearedFields[creditincome.FieldCreditExpenseID] = struct{}{}
}

// CreditExpenseCleared reports if the "credit_expense" edge to the CreditExpense entity was cleared.
func (m *CreditIncomeMutation) CreditExpenseCleared() bool {
	return m.clearedcredit_expense
}

// CreditExpenseIDs returns the "credit_expense" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreditExpenseID instead. It exists only for internal usage by the builders.
func (m *CreditIncomeMutation) CreditExpenseIDs() (ids []string) {
	if id := m.credit_expense; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreditExpense resets all changes to the "credit_expense" edge.
func (m *CreditIncomeMutation) ResetCreditExpense() {
	m.credit_expense = nil
	m.clearedcredit_expense = false
}

// Where appends a list predicates to the CreditIncomeMutation builder.
func (m *CreditIncomeMutation) Where(ps ...predicate.CreditIncome) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreditIncomeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreditIncomeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreditIncome, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreditIncomeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreditIncomeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreditIncome).
func (m *CreditIncomeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreditIncomeMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, creditincome.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, creditincome.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, creditincome.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, creditincome.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, creditincome.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, creditincome.FieldUpdatedBy)
	}
	if m.credit_card != nil {
		fields = append(fields, creditincome.FieldCreditCardID)
	}
	if m.credit_bill != nil {
		fields = append(fields, creditincome.FieldCreditBillID)
	}
	if m.credit_expense != nil {
		fields = append(fields, creditincome.FieldCreditExpenseID)
	}
	if m.description != nil {
		fields = append(fields, creditincome.FieldDescription)
	}
	if m.amount != nil {
		fields = append(fields, creditincome.FieldAmount)
	}
	if m.installment_number != nil {
		fields = append(fields, creditincome.FieldInstallmentNumber)
	}
	if m.date != nil {
		fields = append(fields, creditincome.FieldDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreditIncomeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case creditincome.FieldUserID:
		return m.UserID()
	case creditincome.FieldStatus:
		return m.Status()
	case creditincome.FieldCreatedAt:
		return m.CreatedAt()
	case creditincome.FieldUpdatedAt:
		return m.UpdatedAt()
	case creditincome.FieldCreatedBy:
		return m.CreatedBy()
	case creditincome.FieldUpdatedBy:
		return m.UpdatedBy()
	case creditincome.FieldCreditCardID:
		return m.CreditCardID()
	case creditincome.FieldCreditBillID:
		return m.CreditBillID()
	case creditincome.FieldCreditExpenseID:
		return m.CreditExpenseID()
	case creditincome.FieldDescription:
		return m.Description()
	case creditincome.FieldAmount:
		return m.Amount()
	case creditincome.FieldInstallmentNumber:
		return m.InstallmentNumber()
	case creditincome.FieldDate:
		return m.Date()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreditIncomeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case creditincome.FieldUserID:
		return m.OldUserID(ctx)
	case creditincome.FieldStatus:
		return m.OldStatus(ctx)
	case creditincome.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case creditincome.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case creditincome.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case creditincome.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case creditincome.FieldCreditCardID:
		return m.OldCreditCardID(ctx)
	case creditincome.FieldCreditBillID:
		return m.OldCreditBillID(ctx)
	case creditincome.FieldCreditExpenseID:
		return m.OldCreditExpenseID(ctx)
	case creditincome.FieldDescription:
		return m.OldDescription(ctx)
	case creditincome.FieldAmount:
		return m.OldAmount(ctx)
	case creditincome.FieldInstallmentNumber:
		return m.OldInstallmentNumber(ctx)
	case creditincome.FieldDate:
		return m.OldDate(ctx)
	}
	return nil, fmt.Errorf("unknown CreditIncome field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditIncomeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case creditincome.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case creditincome.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case creditincome.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case creditincome.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case creditincome.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case creditincome.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case creditincome.FieldCreditCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditCardID(v)
		return nil
	case creditincome.FieldCreditBillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditBillID(v)
		return nil
	case creditincome.FieldCreditExpenseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditExpenseID(v)
		return nil
	case creditincome.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case creditincome.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case creditincome.FieldInstallmentNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallmentNumber(v)
		return nil
	case creditincome.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	}
	return fmt.Errorf("unknown CreditIncome field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreditIncomeMutation) AddedFields() []string {
	var fields []string
	if m.addinstallment_number != nil {
		fields = append(fields, creditincome.FieldInstallmentNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreditIncomeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case creditincome.FieldInstallmentNumber:
		return m.AddedInstallmentNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditIncomeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case creditincome.FieldInstallmentNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInstallmentNumber(v)
		return nil
	}
	return fmt.Errorf("unknown CreditIncome numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreditIncomeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(creditincome.FieldCreatedBy) {
		fields = append(fields, creditincome.FieldCreatedBy)
	}
	if m.FieldCleared(creditincome.FieldUpdatedBy) {
		fields = append(fields, creditincome.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreditIncomeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreditIncomeMutation) ClearField(name string) error {
	switch name {
	case creditincome.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case creditincome.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown CreditIncome nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreditIncomeMutation) ResetField(name string) error {
	switch name {
	case creditincome.FieldUserID:
		m.ResetUserID()
		return nil
	case creditincome.FieldStatus:
		m.ResetStatus()
		return nil
	case creditincome.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case creditincome.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case creditincome.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case creditincome.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case creditincome.FieldCreditCardID:
		m.ResetCreditCardID()
		return nil
	case creditincome.FieldCreditBillID:
		m.ResetCreditBillID()
		return nil
	case creditincome.FieldCreditExpenseID:
		m.ResetCreditExpenseID()
		return nil
	case creditincome.FieldDescription:
		m.ResetDescription()
		return nil
	case creditincome.FieldAmount:
		m.ResetAmount()
		return nil
	case creditincome.FieldInstallmentNumber:
		m.ResetInstallmentNumber()
		return nil
	case creditincome.FieldDate:
		m.ResetDate()
		return nil
	}
	return fmt.Errorf("unknown CreditIncome field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreditIncomeMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.credit_card != nil {
		edges = append(edges, creditincome.EdgeCreditCard)
	}
	if m.credit_bill != nil {
		edges = append(edges, creditincome.EdgeCreditBill)
	}
	if m.credit_expense != nil {
		edges = append(edges, creditincome.EdgeCreditExpense)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreditIncomeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case creditincome.EdgeCreditCard:
		if id := m.credit_card; id != nil {
			return []ent.Value{*id}
		}
	case creditincome.EdgeCreditBill:
		if id := m.credit_bill; id != nil {
			return []ent.Value{*id}
		}
	case creditincome.EdgeCreditExpense:
		if id := m.credit_expense; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreditIncomeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreditIncomeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreditIncomeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcredit_card {
		edges = append(edges, creditincome.EdgeCreditCard)
	}
	if m.clearedcredit_bill {
		edges = append(edges, creditincome.EdgeCreditBill)
	}
	if m.clearedcredit_expense {
		edges = append(edges, creditincome.EdgeCreditExpense)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreditIncomeMutation) EdgeCleared(name string) bool {
	switch name {
	case creditincome.EdgeCreditCard:
		return m.clearedcredit_card
	case creditincome.EdgeCreditBill:
		return m.clearedcredit_bill
	case creditincome.EdgeCreditExpense:
		return m.clearedcredit_expense
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreditIncomeMutation) ClearEdge(name string) error {
	switch name {
	case creditincome.EdgeCreditCard:
		m.ClearCreditCard()
		return nil
	case creditincome.EdgeCreditBill:
		m.ClearCreditBill()
		return nil
	case creditincome.EdgeCreditExpense:
		m.ClearCreditExpense()
		return nil
	}
	return fmt.Errorf("unknown CreditIncome unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreditIncomeMutation) ResetEdge(name string) error {
	switch name {
	case creditincome.EdgeCreditCard:
		m.ResetCreditCard()
		return nil
	case creditincome.EdgeCreditBill:
		m.ResetCreditBill()
		return nil
	case creditincome.EdgeCreditExpense:
		m.ResetCreditExpense()
		return nil
	}
	return fmt.Errorf("unknown CreditIncome edge %s", name)
}

// RefundEventMutation represents an operation that mutates the RefundEvent nodes in the graph.
type RefundEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	status                *string
	created_at            *time.Time
	updated_at            *time.Time
	created_by            *string
	updated_by            *string
	refund_type           *types.RefundType
	amount                *decimal.Decimal
	sequence              *int
	addsequence           *int
	installment_numbers   *pq.Int64Array
	credit_bills          *pq.StringArray
	clearedFields         map[string]struct{}
	credit_expense        *string
	clearedcredit_expense bool
	credit_card           *string
	clearedcredit_card    bool
	done                  bool
	oldValue              func(context.Context) (*RefundEvent, error)
	predicates            []predicate.RefundEvent
}

var _ ent.Mutation = (*RefundEventMutation)(nil)

// refundeventOption allows management of the mutation configuration using functional options.
type refundeventOption func(*RefundEventMutation)

// newRefundEventMutation creates new mutation for the RefundEvent entity.
func newRefundEventMutation(c config, op Op, opts ...refundeventOption) *RefundEventMutation {
	m := &RefundEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRefundEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRefundEventID sets the ID field of the mutation.
func withRefundEventID(id string) refundeventOption {
	return func(m *RefundEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RefundEvent
		)
		m.oldValue = func(ctx context.Context) (*RefundEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RefundEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRefundEvent sets the old RefundEvent of the mutation.
func withRefundEvent(node *RefundEvent) refundeventOption {
	return func(m *RefundEventMutation) {
		m.oldValue = func(context.Context) (*RefundEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RefundEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RefundEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RefundEvent entities.
func (m *RefundEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RefundEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RefundEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RefundEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *RefundEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RefundEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RefundEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *RefundEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RefundEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RefundEventMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RefundEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RefundEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RefundEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RefundEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RefundEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RefundEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *RefundEventMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *RefundEventMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *RefundEventMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[refundevent.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *RefundEventMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[refundevent.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *RefundEventMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, refundevent.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *RefundEventMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *RefundEventMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *RefundEventMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[refundevent.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *RefundEventMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[refundevent.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *RefundEventMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, refundevent.FieldUpdatedBy)
}

// SetCreditExpenseID sets the "credit_expense_id" field.
func (m *RefundEventMutation) SetCreditExpenseID(s string) {
	m.credit_expense = &s
}

// CreditExpenseID returns the value of the "credit_expense_id" field in the mutation.
func (m *RefundEventMutation) CreditExpenseID() (r string, exists bool) {
	v := m.credit_expense
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditExpenseID returns the old "credit_expense_id" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldCreditExpenseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditExpenseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditExpenseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditExpenseID: %w", err)
	}
	return oldValue.CreditExpenseID, nil
}

// ResetCreditExpenseID resets all changes to the "credit_expense_id" field.
func (m *RefundEventMutation) ResetCreditExpenseID() {
	m.credit_expense = nil
}

// SetCreditCardID sets the "credit_card_id" field.
func (m *RefundEventMutation) SetCreditCardID(s string) {
	m.credit_card = &s
}

// CreditCardID returns the value of the "credit_card_id" field in the mutation.
func (m *RefundEventMutation) CreditCardID() (r string, exists bool) {
	v := m.credit_card
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditCardID returns the old "credit_card_id" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldCreditCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditCardID: %w", err)
	}
	return oldValue.CreditCardID, nil
}

// ResetCreditCardID resets all changes to the "credit_card_id" field.
func (m *RefundEventMutation) ResetCreditCardID() {
	m.credit_card = nil
}

// SetRefundType sets the "refund_type" field.
func (m *RefundEventMutation) SetRefundType(tt types.RefundType) {
	m.refund_type = &tt
}

// RefundType returns the value of the "refund_type" field in the mutation.
func (m *RefundEventMutation) RefundType() (r types.RefundType, exists bool) {
	v := m.refund_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRefundType returns the old "refund_type" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldRefundType(ctx context.Context) (v types.RefundType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefundType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefundType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefundType: %w", err)
	}
	return oldValue.RefundType, nil
}

// ResetRefundType resets all changes to the "refund_type" field.
func (m *RefundEventMutation) ResetRefundType() {
	m.refund_type = nil
}

// SetAmount sets the "amount" field.
func (m *RefundEventMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
}

// Amount returns the value of the "amount" field in the mutation.
func (m *RefundEventMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *RefundEventMutation) ResetAmount() {
	m.amount = nil
}

// SetSequence sets the "sequence" field.
func (m *RefundEventMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RefundEventMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RefundEventMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RefundEventMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RefundEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetInstallmentNumbers sets the "installment_numbers" field.
func (m *RefundEventMutation) SetInstallmentNumbers(pq pq.Int64Array) {
	m.installment_numbers = &pq
}

// InstallmentNumbers returns the value of the "installment_numbers" field in the mutation.
func (m *RefundEventMutation) InstallmentNumbers() (r pq.Int64Array, exists bool) {
	v := m.installment_numbers
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallmentNumbers returns the old "installment_numbers" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldInstallmentNumbers(ctx context.Context) (v pq.Int64Array, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallmentNumbers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallmentNumbers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallmentNumbers: %w", err)
	}
	return oldValue.InstallmentNumbers, nil
}

// ResetInstallmentNumbers resets all changes to the "installment_numbers" field.
func (m *RefundEventMutation) ResetInstallmentNumbers() {
	m.installment_numbers = nil
}

// SetCreditBills sets the "credit_bills" field.
func (m *RefundEventMutation) SetCreditBills(pa pq.StringArray) {
	m.credit_bills = &pa
}

// CreditBills returns the value of the "credit_bills" field in the mutation.
func (m *RefundEventMutation) CreditBills() (r pq.StringArray, exists bool) {
	v := m.credit_bills
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditBills returns the old "credit_bills" field's value of the RefundEvent entity.
// If the RefundEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefundEventMutation) OldCreditBills(ctx context.Context) (v pq.StringArray, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditBills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditBills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditBills: %w", err)
	}
	return oldValue.CreditBills, nil
}

// ResetCreditBills resets all changes to the "credit_bills" field.
func (m *RefundEventMutation) ResetCreditBills() {
	m.credit_bills = nil
}

// ClearCreditExpense clears the "credit_expense" edge to the CreditExpense entity.
func (m *RefundEventMutation) ClearCreditExpense() {
	m.clearedcredit_expense = true
	m.clearedFields[refundevent.FieldCreditExpenseID] = struct{}{}
}

// CreditExpenseCleared reports if the "credit_expense" edge to the CreditExpense entity was cleared.
func (m *RefundEventMutation) CreditExpenseCleared() bool {
	return m.clearedcredit_expense
}

// CreditExpenseIDs returns the "credit_expense" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreditExpenseID instead. It exists only for internal usage by the builders.
func (m *RefundEventMutation) CreditExpenseIDs() (ids []string) {
	if id := m.credit_expense; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreditExpense resets all changes to the "credit_expense" edge.
func (m *RefundEventMutation) ResetCreditExpense() {
	m.credit_expense = nil
	m.clearedcredit_expense = false
}

// ClearCreditCard clears the "credit_card" edge to the CreditCard entity.
func (m *RefundEventMutation) ClearCreditCard() {
	m.clearedcredit_card = true
	m.clearedFields[refundevent.FieldCreditCardID] = struct{}{}
}

// CreditCardCleared reports if the "credit_card" edge to the CreditCard entity was cleared.
func (m *RefundEventMutation) CreditCardCleared() bool {
	return m.clearedcredit_card
}

// CreditCardIDs returns the "credit_card" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreditCardID instead. It exists only for internal usage by the builders.
func (m *RefundEventMutation) CreditCardIDs() (ids []string) {
	if id := m.credit_card; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreditCard resets all changes to the "credit_card" edge.
func (m *RefundEventMutation) ResetCreditCard() {
	m.credit_card = nil
	m.clearedcredit_card = false
}

// Where appends a list predicates to the RefundEventMutation builder.
func (m *RefundEventMutation) Where(ps ...predicate.RefundEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RefundEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RefundEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RefundEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RefundEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RefundEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RefundEvent).
func (m *RefundEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RefundEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, refundevent.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, refundevent.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, refundevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, refundevent.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, refundevent.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, refundevent.FieldUpdatedBy)
	}
	if m.credit_expense != nil {
		fields = append(fields, refundevent.FieldCreditExpenseID)
	}
	if m.credit_card != nil {
		fields = append(fields, refundevent.FieldCreditCardID)
	}
	if m.refund_type != nil {
		fields = append(fields, refundevent.FieldRefundType)
	}
	if m.amount != nil {
		fields = append(fields, refundevent.FieldAmount)
	}
	if m.sequence != nil {
		fields = append(fields, refundevent.FieldSequence)
	}
	if m.installment_numbers != nil {
		fields = append(fields, refundevent.FieldInstallmentNumbers)
	}
	if m.credit_bills != nil {
		fields = append(fields, refundevent.FieldCreditBills)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RefundEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case refundevent.FieldUserID:
		return m.UserID()
	case refundevent.FieldStatus:
		return m.Status()
	case refundevent.FieldCreatedAt:
		return m.CreatedAt()
	case refundevent.FieldUpdatedAt:
		return m.UpdatedAt()
	case refundevent.FieldCreatedBy:
		return m.CreatedBy()
	case refundevent.FieldUpdatedBy:
		return m.UpdatedBy()
	case refundevent.FieldCreditExpenseID:
		return m.CreditExpenseID()
	case refundevent.FieldCreditCardID:
		return m.CreditCardID()
	case refundevent.FieldRefundType:
		return m.RefundType()
	case refundevent.FieldAmount:
		return m.Amount()
	case refundevent.FieldSequence:
		return m.Sequence()
	case refundevent.FieldInstallmentNumbers:
		return m.InstallmentNumbers()
	case refundevent.FieldCreditBills:
		return m.CreditBills()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RefundEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case refundevent.FieldUserID:
		return m.OldUserID(ctx)
	case refundevent.FieldStatus:
		return m.OldStatus(ctx)
	case refundevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case refundevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case refundevent.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case refundevent.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case refundevent.FieldCreditExpenseID:
		return m.OldCreditExpenseID(ctx)
	case refundevent.FieldCreditCardID:
		return m.OldCreditCardID(ctx)
	case refundevent.FieldRefundType:
		return m.OldRefundType(ctx)
	case refundevent.FieldAmount:
		return m.OldAmount(ctx)
	case refundevent.FieldSequence:
		return m.OldSequence(ctx)
	case refundevent.FieldInstallmentNumbers:
		return m.OldInstallmentNumbers(ctx)
	case refundevent.FieldCreditBills:
		return m.OldCreditBills(ctx)
	}
	return nil, fmt.Errorf("unknown RefundEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefundEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case refundevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case refundevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case refundevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case refundevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case refundevent.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case refundevent.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case refundevent.FieldCreditExpenseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditExpenseID(v)
		return nil
	case refundevent.FieldCreditCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditCardID(v)
		return nil
	case refundevent.FieldRefundType:
		v, ok := value.(types.RefundType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefundType(v)
		return nil
	case refundevent.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case refundevent.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case refundevent.FieldInstallmentNumbers:
		v, ok := value.(pq.Int64Array)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallmentNumbers(v)
		return nil
	case refundevent.FieldCreditBills:
		v, ok := value.(pq.StringArray)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditBills(v)
		return nil
	}
	return fmt.Errorf("unknown RefundEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RefundEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, refundevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RefundEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case refundevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefundEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case refundevent.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown RefundEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RefundEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(refundevent.FieldCreatedBy) {
		fields = append(fields, refundevent.FieldCreatedBy)
	}
	if m.FieldCleared(refundevent.FieldUpdatedBy) {
		fields = append(fields, refundevent.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RefundEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RefundEventMutation) ClearField(name string) error {
	switch name {
	case refundevent.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case refundevent.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown RefundEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RefundEventMutation) ResetField(name string) error {
	switch name {
	case refundevent.FieldUserID:
		m.ResetUserID()
		return nil
	case refundevent.FieldStatus:
		m.ResetStatus()
		return nil
	case refundevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case refundevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case refundevent.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case refundevent.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case refundevent.FieldCreditExpenseID:
		m.ResetCreditExpenseID()
		return nil
	case refundevent.FieldCreditCardID:
		m.ResetCreditCardID()
		return nil
	case refundevent.FieldRefundType:
		m.ResetRefundType()
		return nil
	case refundevent.FieldAmount:
		m.ResetAmount()
		return nil
	case refundevent.FieldSequence:
		m.ResetSequence()
		return nil
	case refundevent.FieldInstallmentNumbers:
		m.ResetInstallmentNumbers()
		return nil
	case refundevent.FieldCreditBills:
		m.ResetCreditBills()
		return nil
	}
	return fmt.Errorf("unknown RefundEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RefundEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.credit_expense != nil {
		edges = append(edges, refundevent.EdgeCreditExpense)
	}
	if m.credit_card != nil {
		edges = append(edges, refundevent.EdgeCreditCard)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RefundEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case refundevent.EdgeCreditExpense:
		if id := m.credit_expense; id != nil {
			return []ent.Value{*id}
		}
	case refundevent.EdgeCreditCard:
		if id := m.credit_card; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RefundEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RefundEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RefundEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcredit_expense {
		edges = append(edges, refundevent.EdgeCreditExpense)
	}
	if m.clearedcredit_card {
		edges = append(edges, refundevent.EdgeCreditCard)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RefundEventMutation) EdgeCleared(name string) bool {
	switch name {
	case refundevent.EdgeCreditExpense:
		return m.clearedcredit_expense
	case refundevent.EdgeCreditCard:
		return m.clearedcredit_card
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RefundEventMutation) ClearEdge(name string) error {
	switch name {
	case refundevent.EdgeCreditExpense:
		m.ClearCreditExpense()
		return nil
	case refundevent.EdgeCreditCard:
		m.ClearCreditCard()
		return nil
	}
	return fmt.Errorf("unknown RefundEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RefundEventMutation) ResetEdge(name string) error {
	switch name {
	case refundevent.EdgeCreditExpense:
		m.ResetCreditExpense()
		return nil
	case refundevent.EdgeCreditCard:
		m.ResetCreditCard()
		return nil
	}
	return fmt.Errorf("unknown RefundEvent edge %s", name)
}
