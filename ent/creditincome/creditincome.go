// Code generated by ent, DO NOT EDIT.

package creditincome

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the creditincome type in the database.
	Label = "credit_income"
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
	// FieldCreditBillID holds the string denoting the credit_bill_id field in the database.
	FieldCreditBillID = "credit_bill_id"
	// FieldCreditExpenseID holds the string denoting the credit_expense_id field in the database.
	FieldCreditExpenseID = "credit_expense_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldInstallmentNumber holds the string denoting the installment_number field in the database.
	FieldInstallmentNumber = "installment_number"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// EdgeCreditCard holds the string denoting the credit_card edge name in mutations.
	EdgeCreditCard = "credit_card"
	// EdgeCreditBill holds the string denoting the credit_bill edge name in mutations.
	EdgeCreditBill = "credit_bill"
	// EdgeCreditExpense holds the string denoting the credit_expense edge name in mutations.
	EdgeCreditExpense = "credit_expense"
	// Table holds the table name of the creditincome in the database.
	Table = "credit_incomes"
	// CreditCardTable is the table that holds the credit_card relation/edge.
	CreditCardTable = "credit_incomes"
	// CreditCardInverseTable is the table name for the CreditCard entity.
	// It exists in this package in order to avoid circular dependency with the "creditcard" package.
	CreditCardInverseTable = "credit_cards"
	// CreditCardColumn is the table column denoting the credit_card relation/edge.
	CreditCardColumn = "credit_card_id"
	// CreditBillTable is the table that holds the credit_bill relation/edge.
	CreditBillTable = "credit_incomes"
	// CreditBillInverseTable is the table name for the CreditBill entity.
	// It exists in this package in order to avoid circular dependency with the "creditbill" package.
	CreditBillInverseTable = "credit_bills"
	// CreditBillColumn is the table column denoting the credit_bill relation/edge.
	CreditBillColumn = "credit_bill_id"
	// CreditExpenseTable is the table that holds the credit_expense relation/edge.
	CreditExpenseTable = "credit_incomes"
	// CreditExpenseInverseTable is the table name for the CreditExpense entity.
	// It exists in this package in order to avoid circular dependency with the "creditexpense" package.
	CreditExpenseInverseTable = "credit_expenses"
	// CreditExpenseColumn is the table column denoting the credit_expense relation/edge.
	CreditExpenseColumn = "credit_expense_id"
)

// Columns holds all SQL columns for creditincome fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldCreditCardID,
	FieldCreditBillID,
	FieldCreditExpenseID,
	FieldDescription,
	FieldAmount,
	FieldInstallmentNumber,
	FieldDate,
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
	// CreditBillIDValidator is a validator for the "credit_bill_id" field. It is called by the builders before save.
	CreditBillIDValidator func(string) error
	// CreditExpenseIDValidator is a validator for the "credit_expense_id" field. It is called by the builders before save.
	CreditExpenseIDValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultInstallmentNumber holds the default value on creation for the "installment_number" field.
	DefaultInstallmentNumber int
)

// OrderOption defines the ordering options for the CreditIncome queries.
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

// ByCreditBillID orders the results by the credit_bill_id field.
func ByCreditBillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditBillID, opts...).ToFunc()
}

// ByCreditExpenseID orders the results by the credit_expense_id field.
func ByCreditExpenseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditExpenseID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByInstallmentNumber orders the results by the installment_number field.
func ByInstallmentNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallmentNumber, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByCreditCardField orders the results by credit_card field.
func ByCreditCardField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditCardStep(), sql.OrderByField(field, opts...))
	}
}

// ByCreditBillField orders the results by credit_bill field.
func ByCreditBillField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditBillStep(), sql.OrderByField(field, opts...))
	}
}

// ByCreditExpenseField orders the results by credit_expense field.
func ByCreditExpenseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditExpenseStep(), sql.OrderByField(field, opts...))
	}
}
func newCreditCardStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditCardInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreditCardTable, CreditCardColumn),
	)
}
func newCreditBillStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditBillInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreditBillTable, CreditBillColumn),
	)
}
func newCreditExpenseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditExpenseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreditExpenseTable, CreditExpenseColumn),
	)
}
