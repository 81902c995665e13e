// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/refundevent"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// RefundEvent is the model entity for the RefundEvent schema.
type RefundEvent struct {
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
	// CreditExpenseID holds the value of the "credit_expense_id" field.
	CreditExpenseID string `json:"credit_expense_id,omitempty"`
	// CreditCardID holds the value of the "credit_card_id" field.
	CreditCardID string `json:"credit_card_id,omitempty"`
	// RefundType holds the value of the "refund_type" field.
	RefundType types.RefundType `json:"refund_type,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount decimal.Decimal `json:"amount,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence int `json:"sequence,omitempty"`
	// InstallmentNumbers holds the value of the "installment_numbers" field.
	InstallmentNumbers pq.Int64Array `json:"installment_numbers,omitempty"`
	// CreditBills holds the value of the "credit_bills" field.
	CreditBills pq.StringArray `json:"credit_bills,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RefundEventQuery when eager-loading is set.
	Edges        RefundEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RefundEventEdges holds the relations/edges for other nodes in the graph.
type RefundEventEdges struct {
	// CreditExpense holds the value of the credit_expense edge.
	CreditExpense *CreditExpense `json:"credit_expense,omitempty"`
	// CreditCard holds the value of the credit_card edge.
	CreditCard *CreditCard `json:"credit_card,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CreditExpenseOrErr returns the CreditExpense value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RefundEventEdges) CreditExpenseOrErr() (*CreditExpense, error) {
	if e.CreditExpense != nil {
		return e.CreditExpense, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: creditexpense.Label}
	}
	return nil, &NotLoadedError{edge: "credit_expense"}
}

// CreditCardOrErr returns the CreditCard value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RefundEventEdges) CreditCardOrErr() (*CreditCard, error) {
	if e.CreditCard != nil {
		return e.CreditCard, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: creditcard.Label}
	}
	return nil, &NotLoadedError{edge: "credit_card"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RefundEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case refundevent.FieldAmount:
			values[i] = new(decimal.Decimal)
		case refundevent.FieldInstallmentNumbers:
			values[i] = new(pq.Int64Array)
		case refundevent.FieldCreditBills:
			values[i] = new(pq.StringArray)
		case refundevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case refundevent.FieldID, refundevent.FieldUserID, refundevent.FieldStatus, refundevent.FieldCreatedBy, refundevent.FieldUpdatedBy, refundevent.FieldCreditExpenseID, refundevent.FieldCreditCardID, refundevent.FieldRefundType:
			values[i] = new(sql.NullString)
		case refundevent.FieldCreatedAt, refundevent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RefundEvent fields.
func (re *RefundEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case refundevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				re.ID = value.String
			}
		case refundevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				re.UserID = value.String
			}
		case refundevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				re.Status = value.String
			}
		case refundevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				re.CreatedAt = value.Time
			}
		case refundevent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				re.UpdatedAt = value.Time
			}
		case refundevent.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				re.CreatedBy = value.String
			}
		case refundevent.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				re.UpdatedBy = value.String
			}
		case refundevent.FieldCreditExpenseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credit_expense_id", values[i])
			} else if value.Valid {
				re.CreditExpenseID = value.String
			}
		case refundevent.FieldCreditCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credit_card_id", values[i])
			} else if value.Valid {
				re.CreditCardID = value.String
			}
		case refundevent.FieldRefundType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field refund_type", values[i])
			} else if value.Valid {
				re.RefundType = types.RefundType(value.String)
			}
		case refundevent.FieldAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value != nil {
				re.Amount = *value
			}
		case refundevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				re.Sequence = int(value.Int64)
			}
		case refundevent.FieldInstallmentNumbers:
			if value, ok := values[i].(*pq.Int64Array); !ok {
				return fmt.Errorf("unexpected type %T for field installment_numbers", values[i])
			} else if value != nil {
				re.InstallmentNumbers = *value
			}
		case refundevent.FieldCreditBills:
			if value, ok := values[i].(*pq.StringArray); !ok {
				return fmt.Errorf("unexpected type %T for field credit_bills", values[i])
			} else if value != nil {
				re.CreditBills = *value
			}
		default:
			re.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RefundEvent.
// This includes values selected through modifiers, order, etc.
func (re *RefundEvent) Value(name string) (ent.Value, error) {
	return re.selectValues.Get(name)
}

// QueryCreditExpense queries the "credit_expense" edge of the RefundEvent entity.
func (re *RefundEvent) QueryCreditExpense() *CreditExpenseQuery {
	return NewRefundEventClient(re.config).QueryCreditExpense(re)
}

// QueryCreditCard queries the "credit_card" edge of the RefundEvent entity.
func (re *RefundEvent) QueryCreditCard() *CreditCardQuery {
	return NewRefundEventClient(re.config).QueryCreditCard(re)
}

// Update returns a builder for updating this RefundEvent.
// Note that you need to call RefundEvent.Unwrap() before calling this method if this RefundEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (re *RefundEvent) Update() *RefundEventUpdateOne {
	return NewRefundEventClient(re.config).UpdateOne(re)
}

// Unwrap unwraps the RefundEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (re *RefundEvent) Unwrap() *RefundEvent {
	_tx, ok := re.config.driver.(*txDriver)
	if !ok {
		panic("ent: RefundEvent is not a transactional entity")
	}
	re.config.driver = _tx.drv
	return re
}

// String implements the fmt.Stringer.
func (re *RefundEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RefundEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", re.ID))
	builder.WriteString("user_id=")
	builder.WriteString(re.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(re.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(re.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(re.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(re.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(re.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("credit_expense_id=")
	builder.WriteString(re.CreditExpenseID)
	builder.WriteString(", ")
	builder.WriteString("credit_card_id=")
	builder.WriteString(re.CreditCardID)
	builder.WriteString(", ")
	builder.WriteString("refund_type=")
	builder.WriteString(fmt.Sprintf("%v", re.RefundType))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", re.Amount))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", re.Sequence))
	builder.WriteString(", ")
	builder.WriteString("installment_numbers=")
	builder.WriteString(fmt.Sprintf("%v", re.InstallmentNumbers))
	builder.WriteString(", ")
	builder.WriteString("credit_bills=")
	builder.WriteString(fmt.Sprintf("%v", re.CreditBills))
	builder.WriteByte(')')
	return builder.String()
}

// RefundEvents is a parsable slice of RefundEvent.
type RefundEvents []*RefundEvent
