package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/pix-tracker/constants"
	"github.com/joseph-ayodele/pix-tracker/db/ent/schema/utils"
)

// ReviewTransaction holds incomplete or faulted extractions awaiting manual
// follow-up. Same shape as PixTransaction, plus the raw text that produced
// the partial record so an operator can finish the job by hand.
type ReviewTransaction struct{ ent.Schema }

func (ReviewTransaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pix_transactions_review"},
	}
}

func (ReviewTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("source_filename").NotEmpty().MaxLen(500).Unique(),
		field.Float("amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("payer_name").Optional().Nillable().MaxLen(255),
		field.String("payee_name").Optional().Nillable().MaxLen(255),
		field.String("pix_key").Optional().Nillable().MaxLen(500),
		field.String("key_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.KeyTypesAsStringSlice()...)),
		field.Time("transfer_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("transfer_time").Optional().Nillable().MaxLen(16),
		field.String("bank_name").Optional().Nillable().MaxLen(200),
		field.String("payer_bank_name").Optional().Nillable().MaxLen(200),
		field.String("transaction_id").Optional().Nillable().MaxLen(500),
		field.String("status").NotEmpty().MaxLen(100).
			Validate(utils.EnumValidator(
				string(constants.TxStatusManualReview),
				string(constants.TxStatusError),
			)),
		field.Text("notes").Optional().Nillable(),
		field.Text("raw_text").Optional().Nillable(),
		field.JSON("extracted_json", map[string]interface{}{}).Optional(),
		field.Time("processed_at").Default(time.Now),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
