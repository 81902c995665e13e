// Code generated by ent, DO NOT EDIT.

package creditbill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the creditbill type in the database.
	Label = "credit_bill"
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
	// FieldCreditCardID holds the string denoting the credit_card_id field in the database.
	FieldCreditCardID = "credit_card_id"
	// FieldClosingDate holds the string denoting the closing_date field in the database.
	FieldClosingDate = "closing_date"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldPaidAmount holds the string denoting the paid_amount field in the database.
	FieldPaidAmount = "paid_amount"
	// FieldBillStatus holds the string denoting the bill_status field in the database.
	FieldBillStatus = "bill_status"
	// FieldPaidAt holds the string denoting the paid_at field in the database.
	FieldPaidAt = "paid_at"
	// EdgeCreditCard holds the string denoting the credit_card edge name in mutations.
	EdgeCreditCard = "credit_card"
	// EdgeCreditExpenses holds the string denoting the credit_expenses edge name in mutations.
	EdgeCreditExpenses = "credit_expenses"
	// EdgeCreditIncomes holds the string denoting the credit_incomes edge name in mutations.
	EdgeCreditIncomes = "credit_incomes"
	// Table holds the table name of the creditbill in the database.
	Table = "credit_bills"
	// CreditCardTable is the table that holds the credit_card relation/edge.
	CreditCardTable = "credit_bills"
	// CreditCardInverseTable is the table name for the CreditCard entity.
	// It exists in this package in order to avoid circular dependency with the "creditcard" package.
	CreditCardInverseTable = "credit_cards"
	// CreditCardColumn is the table column denoting the credit_card relation/edge.
	CreditCardColumn = "credit_card_id"
	// CreditExpensesTable is the table that holds the credit_expenses relation/edge.
	CreditExpensesTable = "credit_expenses"
	// CreditExpensesInverseTable is the table name for the CreditExpense entity.
	// It exists in this package in order to avoid circular dependency with the "creditexpense" package.
	CreditExpensesInverseTable = "credit_expenses"
	// CreditExpensesColumn is the table column denoting the credit_expenses relation/edge.
	CreditExpensesColumn = "credit_bill_id"
	// CreditIncomesTable is the table that holds the credit_incomes relation/edge.
	CreditIncomesTable = "credit_incomes"
	// CreditIncomesInverseTable is the table name for the CreditIncome entity.
	// It exists in this package in order to avoid circular dependency with the "creditincome" package.
	CreditIncomesInverseTable = "credit_incomes"
	// CreditIncomesColumn is the table column denoting the credit_incomes relation/edge.
	CreditIncomesColumn = "credit_bill_id"
)

// Columns holds all SQL columns for creditbill fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldCreditCardID,
	FieldClosingDate,
	FieldDueDate,
	FieldTotalAmount,
	FieldPaidAmount,
	FieldBillStatus,
	FieldPaidAt,
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
	// CreditCardIDValidator is a validator for the "credit_card_id" field. It is called by the builders before save.
	CreditCardIDValidator func(string) error
	// DefaultTotalAmount holds the default value on creation for the "total_amount" field.
	DefaultTotalAmount decimal.Decimal
	// DefaultPaidAmount holds the default value on creation for the "paid_amount" field.
	DefaultPaidAmount decimal.Decimal
	// DefaultBillStatus holds the default value on creation for the "bill_status" field.
	DefaultBillStatus types.CreditBillStatus
)

// OrderOption defines the ordering options for the CreditBill queries.
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

// ByCreditCardID orders the results by the credit_card_id field.
func ByCreditCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditCardID, opts...).ToFunc()
}

// ByClosingDate orders the results by the closing_date field.
func ByClosingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosingDate, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByPaidAmount orders the results by the paid_amount field.
func ByPaidAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidAmount, opts...).ToFunc()
}

// ByBillStatus orders the results by the bill_status field.
func ByBillStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillStatus, opts...).ToFunc()
}

// ByPaidAt orders the results by the paid_at field.
func ByPaidAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidAt, opts...).ToFunc()
}

// ByCreditCardField orders the results by credit_card field.
func ByCreditCardField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditCardStep(), sql.OrderByField(field, opts...))
	}
}

// ByCreditExpensesCount orders the results by credit_expenses count.
func ByCreditExpensesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCreditExpensesStep(), opts...)
	}
}

// ByCreditExpenses orders the results by credit_expenses terms.
func ByCreditExpenses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditExpensesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCreditIncomesCount orders the results by credit_incomes count.
func ByCreditIncomesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCreditIncomesStep(), opts...)
	}
}

// ByCreditIncomes orders the results by credit_incomes terms.
func ByCreditIncomes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditIncomesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCreditCardStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditCardInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreditCardTable, CreditCardColumn),
	)
}
func newCreditExpensesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditExpensesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CreditExpensesTable, CreditExpensesColumn),
	)
}
func newCreditIncomesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditIncomesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CreditIncomesTable, CreditIncomesColumn),
	)
}
