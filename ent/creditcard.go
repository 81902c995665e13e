// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/shopspring/decimal"
)

// CreditCard is the model entity for the CreditCard schema.
type CreditCard struct {
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
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ClosingDay holds the value of the "closing_day" field.
	ClosingDay int `json:"closing_day,omitempty"`
	// DueDay holds the value of the "due_day" field.
	DueDay int `json:"due_day,omitempty"`
	// CreditLimit holds the value of the "credit_limit" field.
	CreditLimit decimal.Decimal `json:"credit_limit,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreditCardQuery when eager-loading is set.
	Edges        CreditCardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreditCardEdges holds the relations/edges for other nodes in the graph.
type CreditCardEdges struct {
	// CreditBills holds the value of the credit_bills edge.
	CreditBills []*CreditBill `json:"credit_bills,omitempty"`
	// CreditExpenses holds the value of the credit_expenses edge.
	CreditExpenses []*CreditExpense `json:"credit_expenses,omitempty"`
	// CreditIncomes holds the value of the credit_incomes edge.
	CreditIncomes []*CreditIncome `json:"credit_incomes,omitempty"`
	// RefundEvents holds the value of the refund_events edge.
	RefundEvents []*RefundEvent `json:"refund_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// CreditBillsOrErr returns the CreditBills value or an error if the edge
// was not loaded in eager-loading.
func (e CreditCardEdges) CreditBillsOrErr() ([]*CreditBill, error) {
	if e.loadedTypes[0] {
		return e.CreditBills, nil
	}
	return nil, &NotLoadedError{edge: "credit_bills"}
}

// CreditExpensesOrErr returns the CreditExpenses value or an error if the edge
// was not loaded in eager-loading.
func (e CreditCardEdges) CreditExpensesOrErr() ([]*CreditExpense, error) {
	if e.loadedTypes[1] {
		return e.CreditExpenses, nil
	}
	return nil, &NotLoadedError{edge: "credit_expenses"}
}

// CreditIncomesOrErr returns the CreditIncomes value or an error if the edge
// was not loaded in eager-loading.
func (e CreditCardEdges) CreditIncomesOrErr() ([]*CreditIncome, error) {
	if e.loadedTypes[2] {
		return e.CreditIncomes, nil
	}
	return nil, &NotLoadedError{edge: "credit_incomes"}
}

// RefundEventsOrErr returns the RefundEvents value or an error if the edge
// was not loaded in eager-loading.
func (e CreditCardEdges) RefundEventsOrErr() ([]*RefundEvent, error) {
	if e.loadedTypes[3] {
		return e.RefundEvents, nil
	}
	return nil, &NotLoadedError{edge: "refund_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditCard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditcard.FieldCreditLimit:
			values[i] = new(decimal.Decimal)
		case creditcard.FieldClosingDay, creditcard.FieldDueDay:
			values[i] = new(sql.NullInt64)
		case creditcard.FieldID, creditcard.FieldUserID, creditcard.FieldStatus, creditcard.FieldCreatedBy, creditcard.FieldUpdatedBy, creditcard.FieldName:
			values[i] = new(sql.NullString)
		case creditcard.FieldCreatedAt, creditcard.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditCard fields.
func (cc *CreditCard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditcard.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				cc.ID = value.String
			}
		case creditcard.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				cc.UserID = value.String
			}
		case creditcard.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				cc.Status = value.String
			}
		case creditcard.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cc.CreatedAt = value.Time
			}
		case creditcard.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cc.UpdatedAt = value.Time
			}
		case creditcard.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				cc.CreatedBy = value.String
			}
		case creditcard.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				cc.UpdatedBy = value.String
			}
		case creditcard.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				cc.Name = value.String
			}
		case creditcard.FieldClosingDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field closing_day", values[i])
			} else if value.Valid {
				cc.ClosingDay = int(value.Int64)
			}
		case creditcard.FieldDueDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field due_day", values[i])
			} else if value.Valid {
				cc.DueDay = int(value.Int64)
			}
		case creditcard.FieldCreditLimit:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field credit_limit", values[i])
			} else if value != nil {
				cc.CreditLimit = *value
			}
		default:
			cc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditCard.
// This includes values selected through modifiers, order, etc.
func (cc *CreditCard) Value(name string) (ent.Value, error) {
	return cc.selectValues.Get(name)
}

// QueryCreditBills queries the "credit_bills" edge of the CreditCard entity.
func (cc *CreditCard) QueryCreditBills() *CreditBillQuery {
	return NewCreditCardClient(cc.config).QueryCreditBills(cc)
}

// QueryCreditExpenses queries the "credit_expenses" edge of the CreditCard entity.
func (cc *CreditCard) QueryCreditExpenses() *CreditExpenseQuery {
	return NewCreditCardClient(cc.config).QueryCreditExpenses(cc)
}

// QueryCreditIncomes queries the "credit_incomes" edge of the CreditCard entity.
func (cc *CreditCard) QueryCreditIncomes() *CreditIncomeQuery {
	return NewCreditCardClient(cc.config).QueryCreditIncomes(cc)
}

// QueryRefundEvents queries the "refund_events" edge of the CreditCard entity.
func (cc *CreditCard) QueryRefundEvents() *RefundEventQuery {
	return NewCreditCardClient(cc.config).QueryRefundEvents(cc)
}

// Update returns a builder for updating this CreditCard.
// Note that you need to call CreditCard.Unwrap() before calling this method if this CreditCard
// was returned from a transaction, and the transaction was committed or rolled back.
func (cc *CreditCard) Update() *CreditCardUpdateOne {
	return NewCreditCardClient(cc.config).UpdateOne(cc)
}

// Unwrap unwraps the CreditCard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cc *CreditCard) Unwrap() *CreditCard {
	_tx, ok := cc.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditCard is not a transactional entity")
	}
	cc.config.driver = _tx.drv
	return cc
}

// String implements the fmt.Stringer.
func (cc *CreditCard) String() string {
	var builder strings.Builder
	builder.WriteString("CreditCard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cc.ID))
	builder.WriteString("user_id=")
	builder.WriteString(cc.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(cc.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cc.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(cc.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(cc.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(cc.Name)
	builder.WriteString(", ")
	builder.WriteString("closing_day=")
	builder.WriteString(fmt.Sprintf("%v", cc.ClosingDay))
	builder.WriteString(", ")
	builder.WriteString("due_day=")
	builder.WriteString(fmt.Sprintf("%v", cc.DueDay))
	builder.WriteString(", ")
	builder.WriteString("credit_limit=")
	builder.WriteString(fmt.Sprintf("%v", cc.CreditLimit))
	builder.WriteByte(')')
	return builder.String()
}

// CreditCards is a parsable slice of CreditCard.
type CreditCards []*CreditCard
