// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PixTransactionsColumns holds the columns for the "pix_transactions" table.
	PixTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_filename", Type: field.TypeString, Unique: true, Size: 500},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "payer_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "payee_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "pix_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "key_type", Type: field.TypeString, Nullable: true},
		{Name: "transfer_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "transfer_time", Type: field.TypeString, Nullable: true, Size: 16},
		{Name: "bank_name", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "payer_bank_name", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "transaction_id", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "status", Type: field.TypeString, Size: 100},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PixTransactionsTable holds the schema information for the "pix_transactions" table.
	PixTransactionsTable = &schema.Table{
		Name:       "pix_transactions",
		Columns:    PixTransactionsColumns,
		PrimaryKey: []*schema.Column{PixTransactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pixtransaction_transfer_date",
				Unique:  false,
				Columns: []*schema.Column{PixTransactionsColumns[7]},
			},
			{
				Name:    "pixtransaction_bank_name",
				Unique:  false,
				Columns: []*schema.Column{PixTransactionsColumns[9]},
			},
		},
	}
	// PixTransactionsReviewColumns holds the columns for the "pix_transactions_review" table.
	PixTransactionsReviewColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_filename", Type: field.TypeString, Unique: true, Size: 500},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "payer_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "payee_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "pix_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "key_type", Type: field.TypeString, Nullable: true},
		{Name: "transfer_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "transfer_time", Type: field.TypeString, Nullable: true, Size: 16},
		{Name: "bank_name", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "payer_bank_name", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "transaction_id", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "status", Type: field.TypeString, Size: 100},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PixTransactionsReviewTable holds the schema information for the "pix_transactions_review" table.
	PixTransactionsReviewTable = &schema.Table{
		Name:       "pix_transactions_review",
		Columns:    PixTransactionsReviewColumns,
		PrimaryKey: []*schema.Column{PixTransactionsReviewColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PixTransactionsTable,
		PixTransactionsReviewTable,
	}
)

func init() {
	PixTransactionsTable.Annotation = &entsql.Annotation{
		Table: "pix_transactions",
	}
	PixTransactionsReviewTable.Annotation = &entsql.Annotation{
		Table: "pix_transactions_review",
	}
}
