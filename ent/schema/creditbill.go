package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/pocketwise/pocketwise/ent/schema/mixin"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

const (
	Idx_credit_bill_card_closing_date_unique = "idx_credit_bill_card_closing_date_unique"
)

// CreditBill holds the schema definition for the CreditBill entity.
type CreditBill struct {
	ent.Schema
}

// Mixin of the CreditBill.
func (CreditBill) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the CreditBill.
func (CreditBill) Fields() []ent.Field {
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
		field.Time("closing_date").
			SchemaType(map[string]string{
				"postgres": "date",
			}).
			Immutable(),
		field.Time("due_date").
			SchemaType(map[string]string{
				"postgres": "date",
			}),
		field.Other("total_amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,2)",
			}).
			Default(decimal.Zero),
		field.Other("paid_amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,2)",
			}).
			Default(decimal.Zero),
		field.String("bill_status").
			GoType(types.CreditBillStatus("")).
			SchemaType(map[string]string{
				"postgres": "varchar(20)",
			}).
			Default(string(types.CreditBillStatusPending)),
		field.Time("paid_at").
			Optional().
			Nillable(),
	}
}

// Edges of the CreditBill.
func (CreditBill) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("credit_card", CreditCard.Type).
			Ref("credit_bills").
			Field("credit_card_id").
			Unique().
			Required().
			Immutable(),
		edge.To("credit_expenses", CreditExpense.Type),
		edge.To("credit_incomes", CreditIncome.Type),
	}
}

// Indexes of the CreditBill.
func (CreditBill) Indexes() []ent.Index {
	return []ent.Index{
		// one statement per card and closing date, GetOrCreate upserts on it
		index.Fields("credit_card_id", "closing_date").
			Unique().
			StorageKey(Idx_credit_bill_card_closing_date_unique),
		index.Fields("user_id", "bill_status"),
	}
}
