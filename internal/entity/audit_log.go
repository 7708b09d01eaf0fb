package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/telbill/invoice-pipeline/constants"
)

// AuditLog is a before/after snapshot of a single mutation.
type AuditLog struct {
	ID          uuid.UUID             `json:"id"`
	Actor       string                `json:"actor,omitempty"`
	Action      constants.AuditAction `json:"action"`
	Entity      string                `json:"entity"`
	EntityID    string                `json:"entity_id"`
	BeforeState json.RawMessage       `json:"before_state,omitempty"`
	AfterState  json.RawMessage       `json:"after_state,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}
