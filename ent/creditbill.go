// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// CreditBill is the model entity for the CreditBill schema.
type CreditBill struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy string `json:"updated_by,omitempty"`
	// CreditCardID holds the value of the "credit_card_id" field.
	CreditCardID string `json:"credit_card_id,omitempty"`
	// ClosingDate holds the value of the "closing_date" field.
	ClosingDate time.Time `json:"closing_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate time.Time `json:"due_date,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount decimal.Decimal `json:"total_amount,omitempty"`
	// PaidAmount holds the value of the "paid_amount" field.
	PaidAmount decimal.Decimal `json:"paid_amount,omitempty"`
	// BillStatus holds the value of the "bill_status" field.
	BillStatus types.CreditBillStatus `json:"bill_status,omitempty"`
	// PaidAt holds the value of the "paid_at" field.
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreditBillQuery when eager-loading is set.
	Edges        CreditBillEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreditBillEdges holds the relations/edges for other nodes in the graph.
type CreditBillEdges struct {
	// CreditCard holds the value of the credit_card edge.
	CreditCard *CreditCard `json:"credit_card,omitempty"`
	// CreditExpenses holds the value of the credit_expenses edge.
	CreditExpenses []*CreditExpense `json:"credit_expenses,omitempty"`
	// CreditIncomes holds the value of the credit_incomes edge.
	CreditIncomes []*CreditIncome `json:"credit_incomes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CreditCardOrErr returns the CreditCard value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditBillEdges) CreditCardOrErr() (*CreditCard, error) {
	if e.CreditCard != nil {
		return e.CreditCard, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: creditcard.Label}
	}
	return nil, &NotLoadedError{edge: "credit_card"}
}

// CreditExpensesOrErr returns the CreditExpenses value or an error if the edge
// was not loaded in eager-loading.
func (e CreditBillEdges) CreditExpensesOrErr() ([]*CreditExpense, error) {
	if e.loadedTypes[1] {
		return e.CreditExpenses, nil
	}
	return nil, &NotLoadedError{edge: "credit_expenses"}
}

// CreditIncomesOrErr returns the CreditIncomes value or an error if the edge
// was not loaded in eager-loading.
func (e CreditBillEdges) CreditIncomesOrErr() ([]*CreditIncome, error) {
	if e.loadedTypes[2] {
		return e.CreditIncomes, nil
	}
	return nil, &NotLoadedError{edge: "credit_incomes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditBill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditbill.FieldTotalAmount, creditbill.FieldPaidAmount:
			values[i] = new(decimal.Decimal)
		case creditbill.FieldID, creditbill.FieldUserID, creditbill.FieldStatus, creditbill.FieldCreatedBy, creditbill.FieldUpdatedBy, creditbill.FieldCreditCardID, creditbill.FieldBillStatus:
			values[i] = new(sql.NullString)
		case creditbill.FieldCreatedAt, creditbill.FieldUpdatedAt, creditbill.FieldClosingDate, creditbill.FieldDueDate, creditbill.FieldPaidAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditBill fields.
func (cb *CreditBill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditbill.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				cb.ID = value.String
			}
		case creditbill.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				cb.UserID = value.String
			}
		case creditbill.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				cb.Status = value.String
			}
		case creditbill.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cb.CreatedAt = value.Time
			}
		case creditbill.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cb.UpdatedAt = value.Time
			}
		case creditbill.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				cb.CreatedBy = value.String
			}
		case creditbill.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				cb.UpdatedBy = value.String
			}
		case creditbill.FieldCreditCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credit_card_id", values[i])
			} else if value.Valid {
				cb.CreditCardID = value.String
			}
		case creditbill.FieldClosingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closing_date", values[i])
			} else if value.Valid {
				cb.ClosingDate = value.Time
			}
		case creditbill.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				cb.DueDate = value.Time
			}
		case creditbill.FieldTotalAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value != nil {
				cb.TotalAmount = *value
			}
		case creditbill.FieldPaidAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field paid_amount", values[i])
			} else if value != nil {
				cb.PaidAmount = *value
			}
		case creditbill.FieldBillStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_status", values[i])
			} else if value.Valid {
				cb.BillStatus = types.CreditBillStatus(value.String)
			}
		case creditbill.FieldPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_at", values[i])
			} else if value.Valid {
				cb.PaidAt = new(time.Time)
				*cb.PaidAt = value.Time
			}
		default:
			cb.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditBill.
// This includes values selected through modifiers, order, etc.
func (cb *CreditBill) Value(name string) (ent.Value, error) {
	return cb.selectValues.Get(name)
}

// QueryCreditCard queries the "credit_card" edge of the CreditBill entity.
func (cb *CreditBill) QueryCreditCard() *CreditCardQuery {
	return NewCreditBillClient(cb.config).QueryCreditCard(cb)
}

// QueryCreditExpenses queries the "credit_expenses" edge of the CreditBill entity.
func (cb *CreditBill) QueryCreditExpenses() *CreditExpenseQuery {
	return NewCreditBillClient(cb.config).QueryCreditExpenses(cb)
}

// QueryCreditIncomes queries the "credit_incomes" edge of the CreditBill entity.
func (cb *CreditBill) QueryCreditIncomes() *CreditIncomeQuery {
	return NewCreditBillClient(cb.config).QueryCreditIncomes(cb)
}

// Update returns a builder for updating this CreditBill.
// Note that you need to call CreditBill.Unwrap() before calling this method if this CreditBill
// was returned from a transaction, and the transaction was committed or rolled back.
func (cb *CreditBill) Update() *CreditBillUpdateOne {
	return NewCreditBillClient(cb.config).UpdateOne(cb)
}

// Unwrap unwraps the CreditBill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cb *CreditBill) Unwrap() *CreditBill {
	_tx, ok := cb.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditBill is not a transactional entity")
	}
	cb.config.driver = _tx.drv
	return cb
}

// String implements the fmt.Stringer.
func (cb *CreditBill) String() string {
	var builder strings.Builder
	builder.WriteString("CreditBill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cb.ID))
	builder.WriteString("user_id=")
	builder.WriteString(cb.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(cb.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cb.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cb.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(cb.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(cb.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("credit_card_id=")
	builder.WriteString(cb.CreditCardID)
	builder.WriteString(", ")
	builder.WriteString("closing_date=")
	builder.WriteString(cb.ClosingDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("due_date=")
	builder.WriteString(cb.DueDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", cb.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("paid_amount=")
	builder.WriteString(fmt.Sprintf("%v", cb.PaidAmount))
	builder.WriteString(", ")
	builder.WriteString("bill_status=")
	builder.WriteString(fmt.Sprintf("%v", cb.BillStatus))
	builder.WriteString(", ")
	if v := cb.PaidAt; v != nil {
		builder.WriteString("paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CreditBills is a parsable slice of CreditBill.
type CreditBills []*CreditBill
