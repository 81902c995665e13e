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

const (
	Idx_refund_event_expense_sequence_unique = "idx_refund_event_expense_sequence_unique"
)

// RefundEvent holds the schema definition for the append-only refund ledger.
// Rows are never updated.
type RefundEvent struct {
	ent.Schema
}

// Mixin of the RefundEvent.
func (RefundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the RefundEvent.
func (RefundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("credit_expense_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty().
			Immutable(),
		field.String("credit_card_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty().
			Immutable(),
		field.String("refund_type").
			GoType(types.RefundType("")).
			SchemaType(map[string]string{
				"postgres": "varchar(20)",
			}).
			Immutable(),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,2)",
			}).
			Immutable(),
		field.Int("sequence").
			Positive().
			Immutable(),
		field.Other("installment_numbers", pq.Int64Array{}).
			SchemaType(map[string]string{
				"postgres": "bigint[]",
			}).
			Default(pq.Int64Array{}).
			Immutable(),
		field.Other("credit_bills", pq.StringArray{}).
			SchemaType(map[string]string{
				"postgres": "text[]",
			}).
			Default(pq.StringArray{}).
			Immutable(),
	}
}

// Edges of the RefundEvent.
func (RefundEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("credit_expense", CreditExpense.Type).
			Ref("refund_events").
			Field("credit_expense_id").
			Unique().
			Required().
			Immutable(),
		edge.From("credit_card", CreditCard.Type).
			Ref("refund_events").
			Field("credit_card_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RefundEvent.
func (RefundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("credit_expense_id", "sequence").
			Unique().
			StorageKey(Idx_refund_event_expense_sequence_unique),
	}
}
