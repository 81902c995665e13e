package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/lib/pq"
	baseMixin "github.com/pocketwise/pocketwise/ent/schema/mixin"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// CreditExpense holds the schema definition for the CreditExpense entity.
// Purchases, their installments and refund records share the table, linked
// through parent_expense_id.
type CreditExpense struct {
	ent.Schema
}

// Mixin of the CreditExpense.
func (CreditExpense) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the CreditExpense.
func (CreditExpense) Fields() []ent.Field {
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
		field.String("description").
			SchemaType(map[string]string{
				"postgres": "varchar(255)",
			}).
			Default(""),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,2)",
			}),
		field.Time("purchase_date").
			SchemaType(map[string]string{
				"postgres": "date",
			}).
			Immutable(),
		field.Int("installments").
			SchemaType(map[string]string{
				"postgres": "smallint",
			}).
			Default(1).
			Immutable(),
		field.Int("installment_number").
			SchemaType(map[string]string{
				"postgres": "smallint",
			}).
			Default(0).
			Immutable(),
		field.String("expense_type").
			GoType(types.CreditExpenseType("")).
			SchemaType(map[string]string{
				"postgres": "varchar(20)",
			}).
			Default(string(types.CreditExpenseTypeExpense)).
			Immutable(),
		field.String("parent_expense_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Optional().
			Nillable().
			Immutable(),
		field.String("credit_bill_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Optional().
			Nillable(),
		field.Time("due_date").
			SchemaType(map[string]string{
				"postgres": "date",
			}).
			Optional().
			Nillable(),
		field.Other("tags", pq.StringArray{}).
			SchemaType(map[string]string{
				"postgres": "text[]",
			}).
			Default(pq.StringArray{}),
	}
}

// Edges of the CreditExpense.
func (CreditExpense) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("credit_card", CreditCard.Type).
			Ref("credit_expenses").
			Field("credit_card_id").
			Unique().
			Required().
			Immutable(),
		edge.To("children", CreditExpense.Type).
			From("parent").
			Field("parent_expense_id").
			Unique().
			Immutable(),
		edge.From("credit_bill", CreditBill.Type).
			Ref("credit_expenses").
			Field("credit_bill_id").
			Unique(),
		edge.To("credit_incomes", CreditIncome.Type),
		edge.To("refund_events", RefundEvent.Type),
	}
}

// Indexes of the CreditExpense.
func (CreditExpense) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "credit_card_id"),
		index.Fields("parent_expense_id"),
		index.Fields("credit_bill_id"),
	}
}
