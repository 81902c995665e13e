// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CreditBillsColumns holds the columns for the "credit_bills" table.
	CreditBillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "user_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "status", Type: field.TypeString, Default: "active", SchemaType: map[string]string{"postgres": "varchar(20)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "closing_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,2)"}},
		{Name: "paid_amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,2)"}},
		{Name: "bill_status", Type: field.TypeString, Default: "PENDING", SchemaType: map[string]string{"postgres": "varchar(20)"}},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "credit_card_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
	}
	// CreditBillsTable holds the schema information for the "credit_bills" table.
	CreditBillsTable = &schema.Table{
		Name:       "credit_bills",
		Columns:    CreditBillsColumns,
		PrimaryKey: []*schema.Column{CreditBillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credit_bills_credit_cards_credit_bills",
				Columns:    []*schema.Column{CreditBillsColumns[13]},
				RefColumns: []*schema.Column{CreditCardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_credit_bill_card_closing_date_unique",
				Unique:  true,
				Columns: []*schema.Column{CreditBillsColumns[13], CreditBillsColumns[7]},
			},
			{
				Name:    "creditbill_user_id_bill_status",
				Unique:  false,
				Columns: []*schema.Column{CreditBillsColumns[1], CreditBillsColumns[11]},
			},
		},
	}
	// CreditCardsColumns holds the columns for the "credit_cards" table.
	CreditCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "user_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "status", Type: field.TypeString, Default: "active", SchemaType: map[string]string{"postgres": "varchar(20)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(255)"}},
		{Name: "closing_day", Type: field.TypeInt, SchemaType: map[string]string{"postgres": "smallint"}},
		{Name: "due_day", Type: field.TypeInt, SchemaType: map[string]string{"postgres": "smallint"}},
		{Name: "credit_limit", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,2)"}},
	}
	// CreditCardsTable holds the schema information for the "credit_cards" table.
	CreditCardsTable = &schema.Table{
		Name:       "credit_cards",
		Columns:    CreditCardsColumns,
		PrimaryKey: []*schema.Column{CreditCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "creditcard_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{CreditCardsColumns[1], CreditCardsColumns[2]},
			},
		},
	}
	// CreditExpensesColumns holds the columns for the "credit_expenses" table.
	CreditExpensesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "user_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "status", Type: field.TypeString, Default: "active", SchemaType: map[string]string{"postgres": "varchar(20)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "varchar(255)"}},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,2)"}},
		{Name: "purchase_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "installments", Type: field.TypeInt, Default: 1, SchemaType: map[string]string{"postgres": "smallint"}},
		{Name: "installment_number", Type: field.TypeInt, Default: 0, SchemaType: map[string]string{"postgres": "smallint"}},
		{Name: "expense_type", Type: field.TypeString, Default: "EXPENSE", SchemaType: map[string]string{"postgres": "varchar(20)"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "tags", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "text[]"}},
		{Name: "credit_bill_id", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "credit_card_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "parent_expense_id", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
	}
	// CreditExpensesTable holds the schema information for the "credit_expenses" table.
	CreditExpensesTable = &schema.Table{
		Name:       "credit_expenses",
		Columns:    CreditExpensesColumns,
		PrimaryKey: []*schema.Column{CreditExpensesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credit_expenses_credit_bills_credit_expenses",
				Columns:    []*schema.Column{CreditExpensesColumns[15]},
				RefColumns: []*schema.Column{CreditBillsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "credit_expenses_credit_cards_credit_expenses",
				Columns:    []*schema.Column{CreditExpensesColumns[16]},
				RefColumns: []*schema.Column{CreditCardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "credit_expenses_credit_expenses_children",
				Columns:    []*schema.Column{CreditExpensesColumns[17]},
				RefColumns: []*schema.Column{CreditExpensesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "creditexpense_user_id_credit_card_id",
				Unique:  false,
				Columns: []*schema.Column{CreditExpensesColumns[1], CreditExpensesColumns[16]},
			},
			{
				Name:    "creditexpense_parent_expense_id",
				Unique:  false,
				Columns: []*schema.Column{CreditExpensesColumns[17]},
			},
			{
				Name:    "creditexpense_credit_bill_id",
				Unique:  false,
				Columns: []*schema.Column{CreditExpensesColumns[15]},
			},
		},
	}
	// CreditIncomesColumns holds the columns for the "credit_incomes" table.
	CreditIncomesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "user_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "status", Type: field.TypeString, Default: "active", SchemaType: map[string]string{"postgres": "varchar(20)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "varchar(255)"}},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,2)"}},
		{Name: "installment_number", Type: field.TypeInt, Default: 0, SchemaType: map[string]string{"postgres": "smallint"}},
		{Name: "date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "credit_bill_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "credit_card_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "credit_expense_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
	}
	// CreditIncomesTable holds the schema information for the "credit_incomes" table.
	CreditIncomesTable = &schema.Table{
		Name:       "credit_incomes",
		Columns:    CreditIncomesColumns,
		PrimaryKey: []*schema.Column{CreditIncomesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credit_incomes_credit_bills_credit_incomes",
				Columns:    []*schema.Column{CreditIncomesColumns[11]},
				RefColumns: []*schema.Column{CreditBillsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "credit_incomes_credit_cards_credit_incomes",
				Columns:    []*schema.Column{CreditIncomesColumns[12]},
				RefColumns: []*schema.Column{CreditCardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "credit_incomes_credit_expenses_credit_incomes",
				Columns:    []*schema.Column{CreditIncomesColumns[13]},
				RefColumns: []*schema.Column{CreditExpensesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "creditincome_credit_bill_id",
				Unique:  false,
				Columns: []*schema.Column{CreditIncomesColumns[11]},
			},
			{
				Name:    "creditincome_credit_expense_id",
				Unique:  false,
				Columns: []*schema.Column{CreditIncomesColumns[13]},
			},
		},
	}
	// RefundEventsColumns holds the columns for the "refund_events" table.
	RefundEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "user_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "status", Type: field.TypeString, Default: "active", SchemaType: map[string]string{"postgres": "varchar(20)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "refund_type", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(20)"}},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,2)"}},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "installment_numbers", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "bigint[]"}},
		{Name: "credit_bills", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "text[]"}},
		{Name: "credit_card_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "credit_expense_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
	}
	// RefundEventsTable holds the schema information for the "refund_events" table.
	RefundEventsTable = &schema.Table{
		Name:       "refund_events",
		Columns:    RefundEventsColumns,
		PrimaryKey: []*schema.Column{RefundEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "refund_events_credit_cards_refund_events",
				Columns:    []*schema.Column{RefundEventsColumns[12]},
				RefColumns: []*schema.Column{CreditCardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "refund_events_credit_expenses_refund_events",
				Columns:    []*schema.Column{RefundEventsColumns[13]},
				RefColumns: []*schema.Column{CreditExpensesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_refund_event_expense_sequence_unique",
				Unique:  true,
				Columns: []*schema.Column{RefundEventsColumns[13], RefundEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CreditBillsTable,
		CreditCardsTable,
		CreditExpensesTable,
		CreditIncomesTable,
		RefundEventsTable,
	}
)

func init() {
	CreditBillsTable.ForeignKeys[0].RefTable = CreditCardsTable
	CreditExpensesTable.ForeignKeys[0].RefTable = CreditBillsTable
	CreditExpensesTable.ForeignKeys[1].RefTable = CreditCardsTable
	CreditExpensesTable.ForeignKeys[2].RefTable = CreditExpensesTable
	CreditIncomesTable.ForeignKeys[0].RefTable = CreditBillsTable
	CreditIncomesTable.ForeignKeys[1].RefTable = CreditCardsTable
	CreditIncomesTable.ForeignKeys[2].RefTable = CreditExpensesTable
	RefundEventsTable.ForeignKeys[0].RefTable = CreditCardsTable
	RefundEventsTable.ForeignKeys[1].RefTable = CreditExpensesTable
}
