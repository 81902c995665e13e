// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// CreditExpense is the model entity for the CreditExpense schema.
type CreditExpense struct {
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
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount decimal.Decimal `json:"amount,omitempty"`
	// PurchaseDate holds the value of the "purchase_date" field.
	PurchaseDate time.Time `json:"purchase_date,omitempty"`
	// Installments holds the value of the "installments" field.
	Installments int `json:"installments,omitempty"`
	// InstallmentNumber holds the value of the "installment_number" field.
	InstallmentNumber int `json:"installment_number,omitempty"`
	// ExpenseType holds the value of the "expense_type" field.
	ExpenseType types.CreditExpenseType `json:"expense_type,omitempty"`
	// ParentExpenseID holds the value of the "parent_expense_id" field.
	ParentExpenseID *string `json:"parent_expense_id,omitempty"`
	// CreditBillID holds the value of the "credit_bill_id" field.
	CreditBillID *string `json:"credit_bill_id,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags pq.StringArray `json:"tags,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreditExpenseQuery when eager-loading is set.
	Edges        CreditExpenseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreditExpenseEdges holds the relations/edges for other nodes in the graph.
type CreditExpenseEdges struct {
	// CreditCard holds the value of the credit_card edge.
	CreditCard *CreditCard `json:"credit_card,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *CreditExpense `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*CreditExpense `json:"children,omitempty"`
	// CreditBill holds the value of the credit_bill edge.
	CreditBill *CreditBill `json:"credit_bill,omitempty"`
	// CreditIncomes holds the value of the credit_incomes edge.
	CreditIncomes []*CreditIncome `json:"credit_incomes,omitempty"`
	// RefundEvents holds the value of the refund_events edge.
	RefundEvents []*RefundEvent `json:"refund_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// CreditCardOrErr returns the CreditCard value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditExpenseEdges) CreditCardOrErr() (*CreditCard, error) {
	if e.CreditCard != nil {
		return e.CreditCard, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: creditcard.Label}
	}
	return nil, &NotLoadedError{edge: "credit_card"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditExpenseEdges) ParentOrErr() (*CreditExpense, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: creditexpense.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e CreditExpenseEdges) ChildrenOrErr() ([]*CreditExpense, error) {
	if e.loadedTypes[2] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// CreditBillOrErr returns the CreditBill value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditExpenseEdges) CreditBillOrErr() (*CreditBill, error) {
	if e.CreditBill != nil {
		return e.CreditBill, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: creditbill.Label}
	}
	return nil, &NotLoadedError{edge: "credit_bill"}
}

// CreditIncomesOrErr returns the CreditIncomes value or an error if the edge
// was not loaded in eager-loading.
func (e CreditExpenseEdges) CreditIncomesOrErr() ([]*CreditIncome, error) {
	if e.loadedTypes[4] {
		return e.CreditIncomes, nil
	}
	return nil, &NotLoadedError{edge: "credit_incomes"}
}

// RefundEventsOrErr returns the RefundEvents value or an error if the edge
// was not loaded in eager-loading.
func (e CreditExpenseEdges) RefundEventsOrErr() ([]*RefundEvent, error) {
	if e.loadedTypes[5] {
		return e.RefundEvents, nil
	}
	return nil, &NotLoadedError{edge: "refund_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditExpense) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditexpense.FieldAmount:
			values[i] = new(decimal.Decimal)
		case creditexpense.FieldTags:
			values[i] = new(pq.StringArray)
		case creditexpense.FieldInstallments, creditexpense.FieldInstallmentNumber:
			values[i] = new(sql.NullInt64)
		case creditexpense.FieldID, creditexpense.FieldUserID, creditexpense.FieldStatus, creditexpense.FieldCreatedBy, creditexpense.FieldUpdatedBy, creditexpense.FieldCreditCardID, creditexpense.FieldDescription, creditexpense.FieldExpenseType, creditexpense.FieldParentExpenseID, creditexpense.FieldCreditBillID:
			values[i] = new(sql.NullString)
		case creditexpense.FieldCreatedAt, creditexpense.FieldUpdatedAt, creditexpense.FieldPurchaseDate, creditexpense.FieldDueDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditExpense fields.
func (ce *CreditExpense) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditexpense.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				ce.ID = value.String
			}
		case creditexpense.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ce.UserID = value.String
			}
		case creditexpense.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ce.Status = value.String
			}
		case creditexpense.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ce.CreatedAt = value.Time
			}
		case creditexpense.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ce.UpdatedAt = value.Time
			}
		case creditexpense.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				ce.CreatedBy = value.String
			}
		case creditexpense.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				ce.UpdatedBy = value.String
			}
		case creditexpense.FieldCreditCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credit_card_id", values[i])
			} else if value.Valid {
				ce.CreditCardID = value.String
			}
		case creditexpense.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				ce.Description = value.String
			}
		case creditexpense.FieldAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value != nil {
				ce.Amount = *value
			}
		case creditexpense.FieldPurchaseDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_date", values[i])
			} else if value.Valid {
				ce.PurchaseDate = value.Time
			}
		case creditexpense.FieldInstallments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field installments", values[i])
			} else if value.Valid {
				ce.Installments = int(value.Int64)
			}
		case creditexpense.FieldInstallmentNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field installment_number", values[i])
			} else if value.Valid {
				ce.InstallmentNumber = int(value.Int64)
			}
		case creditexpense.FieldExpenseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expense_type", values[i])
			} else if value.Valid {
				ce.ExpenseType = types.CreditExpenseType(value.String)
			}
		case creditexpense.FieldParentExpenseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_expense_id", values[i])
			} else if value.Valid {
				ce.ParentExpenseID = new(string)
				*ce.ParentExpenseID = value.String
			}
		case creditexpense.FieldCreditBillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credit_bill_id", values[i])
			} else if value.Valid {
				ce.CreditBillID = new(string)
				*ce.CreditBillID = value.String
			}
		case creditexpense.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				ce.DueDate = new(time.Time)
				*ce.DueDate = value.Time
			}
		case creditexpense.FieldTags:
			if value, ok := values[i].(*pq.StringArray); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil {
				ce.Tags = *value
			}
		default:
			ce.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditExpense.
// This includes values selected through modifiers, order, etc.
func (ce *CreditExpense) Value(name string) (ent.Value, error) {
	return ce.selectValues.Get(name)
}

// QueryCreditCard queries the "credit_card" edge of the CreditExpense entity.
func (ce *CreditExpense) QueryCreditCard() *CreditCardQuery {
	return NewCreditExpenseClient(ce.config).QueryCreditCard(ce)
}

// QueryParent queries the "parent" edge of the CreditExpense entity.
func (ce *CreditExpense) QueryParent() *CreditExpenseQuery {
	return NewCreditExpenseClient(ce.config).QueryParent(ce)
}

// QueryChildren queries the "children" edge of the CreditExpense entity.
func (ce *CreditExpense) QueryChildren() *CreditExpenseQuery {
	return NewCreditExpenseClient(ce.config).QueryChildren(ce)
}

// QueryCreditBill queries the "credit_bill" edge of the CreditExpense entity.
func (ce *CreditExpense) QueryCreditBill() *CreditBillQuery {
	return NewCreditExpenseClient(ce.config).QueryCreditBill(ce)
}

// QueryCreditIncomes queries the "credit_incomes" edge of the CreditExpense entity.
func (ce *CreditExpense) QueryCreditIncomes() *CreditIncomeQuery {
	return NewCreditExpenseClient(ce.config).QueryCreditIncomes(ce)
}

// QueryRefundEvents queries the "refund_events" edge of the CreditExpense entity.
func (ce *CreditExpense) QueryRefundEvents() *RefundEventQuery {
	return NewCreditExpenseClient(ce.config).QueryRefundEvents(ce)
}

// Update returns a builder for updating this CreditExpense.
// Note that you need to call CreditExpense.Unwrap() before calling this method if this CreditExpense
// was returned from a transaction, and the transaction was committed or rolled back.
func (ce *CreditExpense) Update() *CreditExpenseUpdateOne {
	return NewCreditExpenseClient(ce.config).UpdateOne(ce)
}

// Unwrap unwraps the CreditExpense entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ce *CreditExpense) Unwrap() *CreditExpense {
	_tx, ok := ce.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditExpense is not a transactional entity")
	}
	ce.config.driver = _tx.drv
	return ce
}

// String implements the fmt.Stringer.
func (ce *CreditExpense) String() string {
	var builder strings.Builder
	builder.WriteString("CreditExpense(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ce.ID))
	builder.WriteString("user_id=")
	builder.WriteString(ce.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(ce.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ce.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ce.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(ce.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(ce.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("credit_card_id=")
	builder.WriteString(ce.CreditCardID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(ce.Description)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", ce.Amount))
	builder.WriteString(", ")
	builder.WriteString("purchase_date=")
	builder.WriteString(ce.PurchaseDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("installments=")
	builder.WriteString(fmt.Sprintf("%v", ce.Installments))
	builder.WriteString(", ")
	builder.WriteString("installment_number=")
	builder.WriteString(fmt.Sprintf("%v", ce.InstallmentNumber))
	builder.WriteString(", ")
	builder.WriteString("expense_type=")
	builder.WriteString(fmt.Sprintf("%v", ce.ExpenseType))
	builder.WriteString(", ")
	if v := ce.ParentExpenseID; v != nil {
		builder.WriteString("parent_expense_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := ce.CreditBillID; v != nil {
		builder.WriteString("credit_bill_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := ce.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", ce.Tags))
	builder.WriteByte(')')
	return builder.String()
}

// CreditExpenses is a parsable slice of CreditExpense.
type CreditExpenses []*CreditExpense
