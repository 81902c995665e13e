// Code generated by ent, DO NOT EDIT.

package refundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lib/pq"
)

const (
	// Label holds the string label denoting the refundevent type in the database.
	Label = "refund_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// FieldCreditExpenseID holds the string denoting the credit_expense_id field in the database.
	FieldCreditExpenseID = "credit_expense_id"
	// FieldCreditCardID holds the string denoting the credit_card_id field in the database.
	FieldCreditCardID = "credit_card_id"
	// FieldRefundType holds the string denoting the refund_type field in the database.
	FieldRefundType = "refund_type"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldInstallmentNumbers holds the string denoting the installment_numbers field in the database.
	FieldInstallmentNumbers = "installment_numbers"
	// FieldCreditBills holds the string denoting the credit_bills field in the database.
	FieldCreditBills = "credit_bills"
	// EdgeCreditExpense holds the string denoting the credit_expense edge name in mutations.
	EdgeCreditExpense = "credit_expense"
	// EdgeCreditCard holds the string denoting the credit_card edge name in mutations.
	EdgeCreditCard = "credit_card"
	// Table holds the table name of the refundevent in the database.
	Table = "refund_events"
	// CreditExpenseTable is the table that holds the credit_expense relation/edge.
	CreditExpenseTable = "refund_events"
	// CreditExpenseInverseTable is the table name for the CreditExpense entity.
	// It exists in this package in order to avoid circular dependency with the "creditexpense" package.
	CreditExpenseInverseTable = "credit_expenses"
	// CreditExpenseColumn is the table column denoting the credit_expense relation/edge.
	CreditExpenseColumn = "credit_expense_id"
	// CreditCardTable is the table that holds the credit_card relation/edge.
	CreditCardTable = "refund_events"
	// CreditCardInverseTable is the table name for the CreditCard entity.
	// It exists in this package in order to avoid circular dependency with the "creditcard" package.
	CreditCardInverseTable = "credit_cards"
	// CreditCardColumn is the table column denoting the credit_card relation/edge.
	CreditCardColumn = "credit_card_id"
)

// Columns holds all SQL columns for refundevent fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldCreditExpenseID,
	FieldCreditCardID,
	FieldRefundType,
	FieldAmount,
	FieldSequence,
	FieldInstallmentNumbers,
	FieldCreditBills,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CreditExpenseIDValidator is a validator for the "credit_expense_id" field. It is called by the builders before save.
	CreditExpenseIDValidator func(string) error
	// CreditCardIDValidator is a validator for the "credit_card_id" field. It is called by the builders before save.
	CreditCardIDValidator func(string) error
	// SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	SequenceValidator func(int) error
	// DefaultInstallmentNumbers holds the default value on creation for the "installment_numbers" field.
	DefaultInstallmentNumbers pq.Int64Array
	// DefaultCreditBills holds the default value on creation for the "credit_bills" field.
	DefaultCreditBills pq.StringArray
)

// OrderOption defines the ordering options for the RefundEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// ByCreditExpenseID orders the results by the credit_expense_id field.
func ByCreditExpenseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditExpenseID, opts...).ToFunc()
}

// ByCreditCardID orders the results by the credit_card_id field.
func ByCreditCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditCardID, opts...).ToFunc()
}

// ByRefundType orders the results by the refund_type field.
func ByRefundType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefundType, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByInstallmentNumbers orders the results by the installment_numbers field.
func ByInstallmentNumbers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallmentNumbers, opts...).ToFunc()
}

// ByCreditBills orders the results by the credit_bills field.
func ByCreditBills(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditBills, opts...).ToFunc()
}

// ByCreditExpenseField orders the results by credit_expense field.
func ByCreditExpenseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditExpenseStep(), sql.OrderByField(field, opts...))
	}
}

// ByCreditCardField orders the results by credit_card field.
func ByCreditCardField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditCardStep(), sql.OrderByField(field, opts...))
	}
}
func newCreditExpenseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditExpenseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreditExpenseTable, CreditExpenseColumn),
	)
}
func newCreditCardStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditCardInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreditCardTable, CreditCardColumn),
	)
}
