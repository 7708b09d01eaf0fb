package audit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/entity"
)

type memStore struct {
	rows []*entity.AuditLog
	err  error
}

func (s *memStore) Create(_ context.Context, row *entity.AuditLog) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, row)
	return nil
}

func TestRecorderLog(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the full entry", func(t *testing.T) {
		store := &memStore{}
		r := NewRecorder(store, slog.Default())

		r.Log(ctx, "tester", constants.AuditActionImport, "InvoiceImport", "abc", nil, json.RawMessage(`{"status":"SUCCESS"}`))
		if len(store.rows) != 1 {
			t.Fatalf("expected one row, got %d", len(store.rows))
		}
		row := store.rows[0]
		if row.Actor != "tester" || row.Action != constants.AuditActionImport || row.EntityID != "abc" {
			t.Fatalf("row fields wrong: %+v", row)
		}
		if row.BeforeState != nil {
			t.Fatal("fresh imports carry no before state")
		}
	})

	t.Run("store failure never propagates", func(t *testing.T) {
		r := NewRecorder(&memStore{err: errors.New("db down")}, slog.Default())
		// Must not panic or surface the error in any way.
		r.Log(ctx, "tester", constants.AuditActionUpdate, "Report", "abc", nil, nil)
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("nil input stays nil", func(t *testing.T) {
		if got := Snapshot(nil); got != nil {
			t.Fatalf("expected nil, got %s", got)
		}
	})

	t.Run("unserializable input degrades to nil", func(t *testing.T) {
		if got := Snapshot(func() {}); got != nil {
			t.Fatalf("expected nil, got %s", got)
		}
	})

	t.Run("round-trips through json", func(t *testing.T) {
		raw := Snapshot(map[string]any{"carrier": "VIVO"})
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if m["carrier"] != "VIVO" {
			t.Fatalf("lost field: %v", m)
		}
	})
}

func TestSnapshotWith(t *testing.T) {
	raw := SnapshotWith(map[string]any{"status": "CANCELED"}, map[string]any{CommentKey: "valor divergente"})

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["status"] != "CANCELED" {
		t.Fatalf("base fields lost: %v", m)
	}
	if m[CommentKey] != "valor divergente" {
		t.Fatalf("extra key missing: %v", m)
	}

	t.Run("no extras returns the plain snapshot", func(t *testing.T) {
		a := Snapshot(map[string]any{"x": 1})
		b := SnapshotWith(map[string]any{"x": 1}, nil)
		if string(a) != string(b) {
			t.Fatalf("snapshots differ: %s vs %s", a, b)
		}
	})
}
