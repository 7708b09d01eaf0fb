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

type Report struct{ ent.Schema }

func (Report) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reports"},
	}
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("title").NotEmpty(),
		field.Time("reference_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
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
				"PENDING", "REVIEW", "APPROVED", "CANCELED", "FAILED",
			)),
		field.UUID("category_id", uuid.UUID{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY reports -> ONE category (FK: reports.category_id)
		edge.From("category", Category.Type).
			Ref("reports").
			Field("category_id").
			Required().
			Unique(),
		// ONE report -> MANY imports
		edge.To("imports", InvoiceImport.Type),
	}
}
