// Package audit records before/after snapshots for every mutation the
// pipeline performs. Recording is fire-and-forget: a failure to write an
// audit row is logged locally and never fails the business transaction.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/entity"
)

// Store persists audit rows.
type Store interface {
	Create(ctx context.Context, log *entity.AuditLog) error
}

// CommentKey is the reserved after-state key carrying a workflow comment.
const CommentKey = "_workflow_comment"

type Recorder struct {
	store  Store
	logger *slog.Logger
}

func NewRecorder(store Store, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// Log writes one audit entry. before and after may be nil.
func (r *Recorder) Log(ctx context.Context, actor string, action constants.AuditAction, entityName, entityID string, before, after json.RawMessage) {
	err := r.store.Create(ctx, &entity.AuditLog{
		Actor:       actor,
		Action:      action,
		Entity:      entityName,
		EntityID:    entityID,
		BeforeState: before,
		AfterState:  after,
	})
	if err != nil {
		r.logger.Error("failed to write audit entry",
			"action", action, "entity", entityName, "entity_id", entityID, "error", err)
	}
}

// Snapshot serializes an entity state for an audit column. Decimals and
// dates marshal through the entity's own JSON tags. Unserializable input
// degrades to nil rather than blocking the mutation being audited.
func Snapshot(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

// SnapshotWith serializes v and merges extra top-level keys into the
// resulting object (used to attach workflow comments to after-states).
func SnapshotWith(v any, extra map[string]any) json.RawMessage {
	base := Snapshot(v)
	if len(extra) == 0 {
		return base
	}
	m := map[string]any{}
	if base != nil {
		if err := json.Unmarshal(base, &m); err != nil {
			m = map[string]any{}
		}
	}
	for k, val := range extra {
		m[k] = val
	}
	b, err := json.Marshal(m)
	if err != nil {
		return base
	}
	return b
}
