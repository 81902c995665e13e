// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CreditBill is the predicate function for creditbill builders.
type CreditBill func(*sql.Selector)

// CreditCard is the predicate function for creditcard builders.
type CreditCard func(*sql.Selector)

// CreditExpense is the predicate function for creditexpense builders.
type CreditExpense func(*sql.Selector)

// CreditIncome is the predicate function for creditincome builders.
type CreditIncome func(*sql.Selector)

// RefundEvent is the predicate function for refundevent builders.
type RefundEvent func(*sql.Selector)
