package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/telbill/invoice-pipeline/db/ent/schema/utils"
)

type InvoiceImport struct{ ent.Schema }

func (InvoiceImport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_imports"},
	}
}

func (InvoiceImport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("file_path").NotEmpty(),
		// SHA-256 hex digest; the uniqueness constraint is the dedup gate.
		field.String("file_hash").
			NotEmpty().
			MaxLen(64).
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "char(64)"}),
		field.Int("year"),
		field.String("city"),
		field.String("carrier"),
		field.String("month"),
		field.String("invoice_number").Optional().Nillable(),
		field.Time("due_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Other("total_value", decimal.Decimal{}).
			Default(decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
				dialect.SQLite:   "numeric(12,2)",
			}),
		field.String("status").
			Default("PENDING").
			Validate(utils.EnumValidator(
				"INBOX", "PROCESSING", "OCR_RUNNING", "PENDING",
				"SUCCESS", "FAILED", "SKIPPED", "PENDING_REVIEW",
			)),
		field.String("error_code").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Int("confidence_score").Default(0),
		field.UUID("report_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (InvoiceImport) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY imports -> ONE report (FK: invoice_imports.report_id).
		// Deleting a report orphans the import rather than cascading.
		edge.From("report", Report.Type).
			Ref("imports").
			Field("report_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}
