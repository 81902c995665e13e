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
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/shopspring/decimal"
)

// CreditIncome is the model entity for the CreditIncome schema.
type CreditIncome struct {
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
	// CreditBillID holds the value of the "credit_bill_id" field.
	CreditBillID string `json:"credit_bill_id,omitempty"`
	// CreditExpenseID holds the value of the "credit_expense_id" field.
	CreditExpenseID string `json:"credit_expense_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount decimal.Decimal `json:"amount,omitempty"`
	// InstallmentNumber holds the value of the "installment_number" field.
	InstallmentNumber int `json:"installment_number,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreditIncomeQuery when eager-loading is set.
	Edges        CreditIncomeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreditIncomeEdges holds the relations/edges for other nodes in the graph.
type CreditIncomeEdges struct {
	// CreditCard holds the value of the credit_card edge.
	CreditCard *CreditCard `json:"credit_card,omitempty"`
	// CreditBill holds the value of the credit_bill edge.
	CreditBill *CreditBill `json:"credit_bill,omitempty"`
	// CreditExpense holds the value of the credit_expense edge.
	CreditExpense *CreditExpense `json:"credit_expense,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CreditCardOrErr returns the CreditCard value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditIncomeEdges) CreditCardOrErr() (*CreditCard, error) {
	if e.CreditCard != nil {
		return e.CreditCard, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: creditcard.Label}
	}
	return nil, &NotLoadedError{edge: "credit_card"}
}

// CreditBillOrErr returns the CreditBill value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditIncomeEdges) CreditBillOrErr() (*CreditBill, error) {
	if e.CreditBill != nil {
		return e.CreditBill, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: creditbill.Label}
	}
	return nil, &NotLoadedError{edge: "credit_bill"}
}

// CreditExpenseOrErr returns the CreditExpense value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditIncomeEdges) CreditExpenseOrErr() (*CreditExpense, error) {
	if e.CreditExpense != nil {
		return e.CreditExpense, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: creditexpense.Label}
	}
	return nil, &NotLoadedError{edge: "credit_expense"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditIncome) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditincome.FieldAmount:
			values[i] = new(decimal.Decimal)
		case creditincome.FieldInstallmentNumber:
			values[i] = new(sql.NullInt64)
		case creditincome.FieldID, creditincome.FieldUserID, creditincome.FieldStatus, creditincome.FieldCreatedBy, creditincome.FieldUpdatedBy, creditincome.FieldCreditCardID, creditincome.FieldCreditBillID, creditincome.FieldCreditExpenseID, creditincome.FieldDescription:
			values[i] = new(sql.NullString)
		case creditincome.FieldCreatedAt, creditincome.FieldUpdatedAt, creditincome.FieldDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditIncome fields.
func (ci *CreditIncome) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditincome.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				ci.ID = value.String
			}
		case creditincome.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ci.UserID = value.String
			}
		case creditincome.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ci.Status = value.String
			}
		case creditincome.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ci.CreatedAt = value.Time
			}
		case creditincome.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ci.UpdatedAt = value.Time
			}
		case creditincome.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				ci.CreatedBy = value.String
			}
		case creditincome.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				ci.UpdatedBy = value.String
			}
		case creditincome.FieldCreditCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credit_card_id", values[i])
			} else if value.Valid {
				ci.CreditCardID = value.String
			}
		case creditincome.FieldCreditBillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credit_bill_id", values[i])
			} else if value.Valid {
				ci.CreditBillID = value.String
			}
		case creditincome.FieldCreditExpenseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credit_expense_id", values[i])
			} else if value.Valid {
				ci.CreditExpenseID = value.String
			}
		case creditincome.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				ci.Description = value.String
			}
		case creditincome.FieldAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value != nil {
				ci.Amount = *value
			}
		case creditincome.FieldInstallmentNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field installment_number", values[i])
			} else if value.Valid {
				ci.InstallmentNumber = int(value.Int64)
			}
		case creditincome.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				ci.Date = value.Time
			}
		default:
			ci.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditIncome.
// This includes values selected through modifiers, order, etc.
func (ci *CreditIncome) Value(name string) (ent.Value, error) {
	return ci.selectValues.Get(name)
}

// QueryCreditCard queries the "credit_card" edge of the CreditIncome entity.
func (ci *CreditIncome) QueryCreditCard() *CreditCardQuery {
	return NewCreditIncomeClient(ci.config).QueryCreditCard(ci)
}

// QueryCreditBill queries the "credit_bill" edge of the CreditIncome entity.
func (ci *CreditIncome) QueryCreditBill() *CreditBillQuery {
	return NewCreditIncomeClient(ci.config).QueryCreditBill(ci)
}

// QueryCreditExpense queries the "credit_expense" edge of the CreditIncome entity.
func (ci *CreditIncome) QueryCreditExpense() *CreditExpenseQuery {
	return NewCreditIncomeClient(ci.config).QueryCreditExpense(ci)
}

// Update returns a builder for updating this CreditIncome.
// Note that you need to call CreditIncome.Unwrap() before calling this method if this CreditIncome
// was returned from a transaction, and the transaction was committed or rolled back.
func (ci *CreditIncome) Update() *CreditIncomeUpdateOne {
	return NewCreditIncomeClient(ci.config).UpdateOne(ci)
}

// Unwrap unwraps the CreditIncome entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ci *CreditIncome) Unwrap() *CreditIncome {
	_tx, ok := ci.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditIncome is not a transactional entity")
	}
	ci.config.driver = _tx.drv
	return ci
}

// String implements the fmt.Stringer.
func (ci *CreditIncome) String() string {
	var builder strings.Builder
	builder.WriteString("CreditIncome(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ci.ID))
	builder.WriteString("user_id=")
	builder.WriteString(ci.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(ci.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ci.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ci.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(ci.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(ci.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("credit_card_id=")
	builder.WriteString(ci.CreditCardID)
	builder.WriteString(", ")
	builder.WriteString("credit_bill_id=")
	builder.WriteString(ci.CreditBillID)
	builder.WriteString(", ")
	builder.WriteString("credit_expense_id=")
	builder.WriteString(ci.CreditExpenseID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(ci.Description)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", ci.Amount))
	builder.WriteString(", ")
	builder.WriteString("installment_number=")
	builder.WriteString(fmt.Sprintf("%v", ci.InstallmentNumber))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(ci.Date.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CreditIncomes is a parsable slice of CreditIncome.
type CreditIncomes []*CreditIncome
