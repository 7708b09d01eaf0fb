package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AuditLog rows are append-only; nothing edits or deletes them.
type AuditLog struct{ ent.Schema }

func (AuditLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_logs"},
	}
}

func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("actor").Optional(),
		field.String("action").NotEmpty(),
		field.String("entity").NotEmpty(),
		field.String("entity_id").Optional(),
		field.JSON("before_state", map[string]interface{}{}).Optional(),
		field.JSON("after_state", map[string]interface{}{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}
