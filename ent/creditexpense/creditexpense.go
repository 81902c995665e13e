// Code generated by ent, DO NOT EDIT.

package creditexpense

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/internal/types"
)

const (
	// Label holds the string label denoting the creditexpense type in the database.
	Label = "credit_expense"
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
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldPurchaseDate holds the string denoting the purchase_date field in the database.
	FieldPurchaseDate = "purchase_date"
	// FieldInstallments holds the string denoting the installments field in the database.
	FieldInstallments = "installments"
	// FieldInstallmentNumber holds the string denoting the installment_number field in the database.
	FieldInstallmentNumber = "installment_number"
	// FieldExpenseType holds the string denoting the expense_type field in the database.
	FieldExpenseType = "expense_type"
	// FieldParentExpenseID holds the string denoting the parent_expense_id field in the database.
	FieldParentExpenseID = "parent_expense_id"
	// FieldCreditBillID holds the string denoting the credit_bill_id field in the database.
	FieldCreditBillID = "credit_bill_id"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// EdgeCreditCard holds the string denoting the credit_card edge name in mutations.
	EdgeCreditCard = "credit_card"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// EdgeCreditBill holds the string denoting the credit_bill edge name in mutations.
	EdgeCreditBill = "credit_bill"
	// EdgeCreditIncomes holds the string denoting the credit_incomes edge name in mutations.
	EdgeCreditIncomes = "credit_incomes"
	// EdgeRefundEvents holds the string denoting the refund_events edge name in mutations.
	EdgeRefundEvents = "refund_events"
	// Table holds the table name of the creditexpense in the database.
	Table = "credit_expenses"
	// CreditCardTable is the table that holds the credit_card relation/edge.
	CreditCardTable = "credit_expenses"
	// CreditCardInverseTable is the table name for the CreditCard entity.
	// It exists in this package in order to avoid circular dependency with the "creditcard" package.
	CreditCardInverseTable = "credit_cards"
	// CreditCardColumn is the table column denoting the credit_card relation/edge.
	CreditCardColumn = "credit_card_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "credit_expenses"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_expense_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "credit_expenses"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_expense_id"
	// CreditBillTable is the table that holds the credit_bill relation/edge.
	CreditBillTable = "credit_expenses"
	// CreditBillInverseTable is the table name for the CreditBill entity.
	// It exists in this package in order to avoid circular dependency with the "creditbill" package.
	CreditBillInverseTable = "credit_bills"
	// CreditBillColumn is the table column denoting the credit_bill relation/edge.
	CreditBillColumn = "credit_bill_id"
	// CreditIncomesTable is the table that holds the credit_incomes relation/edge.
	CreditIncomesTable = "credit_incomes"
	// CreditIncomesInverseTable is the table name for the CreditIncome entity.
	// It exists in this package in order to avoid circular dependency with the "creditincome" package.
	CreditIncomesInverseTable = "credit_incomes"
	// CreditIncomesColumn is the table column denoting the credit_incomes relation/edge.
	CreditIncomesColumn = "credit_expense_id"
	// RefundEventsTable is the table that holds the refund_events relation/edge.
	RefundEventsTable = "refund_events"
	// RefundEventsInverseTable is the table name for the RefundEvent entity.
	// It exists in this package in order to avoid circular dependency with the "refundevent" package.
	RefundEventsInverseTable = "refund_events"
	// RefundEventsColumn is the table column denoting the refund_events relation/edge.
	RefundEventsColumn = "credit_expense_id"
)

// Columns holds all SQL columns for creditexpense fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldCreditCardID,
	FieldDescription,
	FieldAmount,
	FieldPurchaseDate,
	FieldInstallments,
	FieldInstallmentNumber,
	FieldExpenseType,
	FieldParentExpenseID,
	FieldCreditBillID,
	FieldDueDate,
	FieldTags,
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
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultInstallments holds the default value on creation for the "installments" field.
	DefaultInstallments int
	// DefaultInstallmentNumber holds the default value on creation for the "installment_number" field.
	DefaultInstallmentNumber int
	// DefaultExpenseType holds the default value on creation for the "expense_type" field.
	DefaultExpenseType types.CreditExpenseType
	// DefaultTags holds the default value on creation for the "tags" field.
	DefaultTags pq.StringArray
)

// OrderOption defines the ordering options for the CreditExpense queries.
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

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByPurchaseDate orders the results by the purchase_date field.
func ByPurchaseDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchaseDate, opts...).ToFunc()
}

// ByInstallments orders the results by the installments field.
func ByInstallments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallments, opts...).ToFunc()
}

// ByInstallmentNumber orders the results by the installment_number field.
func ByInstallmentNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallmentNumber, opts...).ToFunc()
}

// ByExpenseType orders the results by the expense_type field.
func ByExpenseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpenseType, opts...).ToFunc()
}

// ByParentExpenseID orders the results by the parent_expense_id field.
func ByParentExpenseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentExpenseID, opts...).ToFunc()
}

// ByCreditBillID orders the results by the credit_bill_id field.
func ByCreditBillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditBillID, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByTags orders the results by the tags field.
func ByTags(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTags, opts...).ToFunc()
}

// ByCreditCardField orders the results by credit_card field.
func ByCreditCardField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditCardStep(), sql.OrderByField(field, opts...))
	}
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCreditBillField orders the results by credit_bill field.
func ByCreditBillField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreditBillStep(), sql.OrderByField(field, opts...))
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
func newCreditCardStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditCardInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreditCardTable, CreditCardColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
func newCreditBillStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreditBillInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreditBillTable, CreditBillColumn),
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
