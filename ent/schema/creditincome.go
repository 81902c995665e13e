package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/pocketwise/pocketwise/ent/schema/mixin"
	"github.com/shopspring/decimal"
)

// CreditIncome holds the schema definition for the CreditIncome entity.
type CreditIncome struct {
	ent.Schema
}

// Mixin of the CreditIncome.
func (CreditIncome) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the CreditIncome.
func (CreditIncome) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("credit_card_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty().
			Immutable(),
		field.String("credit_bill_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty().
			Immutable(),
		field.String("credit_expense_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty().
			Immutable(),
		field.String("description").
			SchemaType(map[string]string{
				"postgres": "varchar(255)",
			}).
			Default(""),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,2)",
			}).
			Immutable(),
		field.Int("installment_number").
			SchemaType(map[string]string{
				"postgres": "smallint",
			}).
			Default(0).
			Immutable(),
		field.Time("date").
			SchemaType(map[string]string{
				"postgres": "date",
			}).
			Immutable(),
	}
}

// Edges of the CreditIncome.
func (CreditIncome) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("credit_card", CreditCard.Type).
			Ref("credit_incomes").
			Field("credit_card_id").
			Unique().
			Required().
			Immutable(),
		edge.From("credit_bill", CreditBill.Type).
			Ref("credit_incomes").
			Field("credit_bill_id").
			Unique().
			Required().
			Immutable(),
		edge.From("credit_expense", CreditExpense.Type).
			Ref("credit_incomes").
			Field("credit_expense_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CreditIncome.
func (CreditIncome) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("credit_bill_id"),
		index.Fields("credit_expense_id"),
	}
}
