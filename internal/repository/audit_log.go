package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/telbill/invoice-pipeline/gen/ent"
	"github.com/telbill/invoice-pipeline/internal/entity"
)

type AuditLogRepository struct {
	entc   *ent.Client
	logger *slog.Logger
}

func NewAuditLogRepository(entc *ent.Client, logger *slog.Logger) *AuditLogRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogRepository{entc: entc, logger: logger}
}

func (r *AuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	b := clientFor(ctx, r.entc).AuditLog.Create().
		SetActor(log.Actor).
		SetAction(string(log.Action)).
		SetEntity(log.Entity).
		SetEntityID(log.EntityID)
	if m := toMap(log.BeforeState); m != nil {
		b.SetBeforeState(m)
	}
	if m := toMap(log.AfterState); m != nil {
		b.SetAfterState(m)
	}
	return b.Exec(ctx)
}

func toMap(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
