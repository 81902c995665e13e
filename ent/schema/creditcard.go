package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/pocketwise/pocketwise/ent/schema/mixin"
	"github.com/shopspring/decimal"
)

// CreditCard holds the schema definition for the CreditCard entity.
type CreditCard struct {
	ent.Schema
}

// Mixin of the CreditCard.
func (CreditCard) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the CreditCard.
func (CreditCard) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("name").
			SchemaType(map[string]string{
				"postgres": "varchar(255)",
			}).
			NotEmpty(),
		field.Int("closing_day").
			SchemaType(map[string]string{
				"postgres": "smallint",
			}).
			Range(1, 31),
		field.Int("due_day").
			SchemaType(map[string]string{
				"postgres": "smallint",
			}).
			Range(1, 31),
		field.Other("credit_limit", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,2)",
			}).
			Default(decimal.Zero),
	}
}

// Edges of the CreditCard.
func (CreditCard) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("credit_bills", CreditBill.Type),
		edge.To("credit_expenses", CreditExpense.Type),
		edge.To("credit_incomes", CreditIncome.Type),
		edge.To("refund_events", RefundEvent.Type),
	}
}

// Indexes of the CreditCard.
func (CreditCard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
	}
}
