// Code generated by ent, DO NOT EDIT.

package creditcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the creditcard type in the database.
	Label = "credit_card"
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
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldClosingDay holds the string denoting the closing_day field in the database.
	FieldClosingDay = "closing_day"
	// FieldDueDay holds the string denoting the due_day field in the database.
	FieldDueDay = "due_day"
	// FieldCreditLimit holds the string denoting the credit_limit field in the database.
	FieldCreditLimit = "credit_limit"
	// EdgeCreditBills holds the string denoting the credit_bills edge name in mutations.
	EdgeCreditBills = "credit_bills"
	// EdgeCreditExpenses holds the string denoting the credit_expenses edge name in mutations.
	EdgeCreditExpenses = "credit_expenses"
	// EdgeCreditIncomes holds the string denoting the credit_incomes edge name in mutations.
	EdgeCreditIncomes = "credit_incomes"
	// EdgeRefundEvents holds the string denoting the refund_events edge name in mutations.
	EdgeRefundEvents = "refund_events"
	// Table holds the table name of the creditcard in the database.
	Table = "credit_cards"
	// CreditBillsTable is the table that holds the credit_bills relation/edge.
	CreditBillsTable = "credit_bills"
	// CreditBillsInverseTable is the table name for the CreditBill entity.
	// It exists in this package in order to avoid circular dependency with the "creditbill" package.
	CreditBillsInverseTable = "credit_bills"
	// CreditBillsColumn is the table column denoting the credit_bills relation/edge.
	CreditBillsColumn = "credit_card_id"
	// CreditExpensesTable is the table that holds the credit_expenses relation/edge.
	CreditExpensesTable = "credit_expenses"
	// CreditExpensesInverseTable is the table name for the CreditExpense entity.
	// It exists in this package in order to avoid circular dependency with the "creditexpense" package.
	CreditExpensesInverseTable = "credit_expenses"
	// CreditExpensesColumn is the table column denoting the credit_expenses relation/edge.
	CreditExpensesColumn = "credit_card_id"
	// CreditIncomesTable is the table that holds the credit_incomes relation/edge.
	CreditIncomesTable = "credit_incomes"
	// CreditIncomesInverseTable is the table name for the CreditIncome entity.
	// It exists in this package in order to avoid circular dependency with the "creditincome" package.
	CreditIncomesInverseTable = "credit_incomes"
	// CreditIncomesColumn is the table column denoting the credit_incomes relation/edge.
	CreditIncomesColumn = "credit_card_id"
	// RefundEventsTable is the table that holds the refund_events relation/edge.
	RefundEventsTable = "refund_events"
	// RefundEventsInverseTable is the table name for the RefundEvent entity.
	// It exists in this package in order to avoid circular dependency with the "refundevent" package.
	RefundEventsInverseTable = "refund_events"
	// RefundEventsColumn is the table column denoting the refund_events relation/edge.
	RefundEventsColumn = "credit_card_id"
)

// Columns holds all SQL columns for creditcard fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldName,
	FieldClosingDay,
	FieldDueDay,
	FieldCreditLimit,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// ClosingDayValidator is a validator for the "closing_day" field. It is called by the builders before save.
	ClosingDayValidator func(int) error
	// DueDayValidator is a validator for the "due_day" field. It is called by the builders before save.
	DueDayValidator func(int) error
	// DefaultCreditLimit holds the default value on creation for the "credit_limit" field.
	DefaultCreditLimit decimal.Decimal
)

// OrderOption defines the ordering options for the CreditCard queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByClosingDay orders the results by the closing_day field.
func ByClosingDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosingDay, opts...).ToFunc()
}

// ByDueDay orders the results by the due_day field.
func ByDueDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDay, opts...).ToFunc()
}

// ByCreditLimit orders the results by the credit_limit field.
func ByCreditLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditLimit, opts...).ToFunc()
}

// ByCreditBillsCount orders the results by credit_bills count.
func ByCreditBillsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCreditBillsStep(), opts...)
	}
}

// ByCreditBills orders the results by credit_bills terms.
func ByCreditBills(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditBillsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByRefundEventsCount orders the results by refund_events count.
func ByRefundEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRefundEventsStep(), opts...)
	}
}

// ByRefundEvents orders the results by refund_events terms.
func ByRefundEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRefundEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCreditBillsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditBillsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CreditBillsTable, CreditBillsColumn),
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
func newRefundEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RefundEventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RefundEventsTable, RefundEventsColumn),
	)
}
