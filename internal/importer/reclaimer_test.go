package importer

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/telbill/invoice-pipeline/constants"
)

func TestReclaimerSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("sweeps in-progress statuses past the cutoff", func(t *testing.T) {
		imports := newFakeImportStore()
		imports.reclaimN = 3
		r := NewReclaimer(imports, 0, slog.Default())

		before := time.Now()
		n, err := r.Sweep(ctx)
		if err != nil {
			t.Fatalf("sweep: %v", err)
		}
		if n != 3 {
			t.Fatalf("expected 3 reclaimed, got %d", n)
		}
		if len(imports.reclaimed) != 1 {
			t.Fatalf("expected one reclaim call, got %d", len(imports.reclaimed))
		}

		call := imports.reclaimed[0]
		if len(call.statuses) != len(constants.InProgressImportStatuses) {
			t.Fatalf("wrong status set: %v", call.statuses)
		}
		if call.code != constants.ErrCodeTimeout {
			t.Fatalf("expected TIMEOUT_ERROR, got %q", call.code)
		}
		// Zero timeout falls back to the default.
		expected := before.Add(-DefaultStaleTimeout)
		if call.before.Before(expected.Add(-time.Second)) || call.before.After(expected.Add(2*time.Second)) {
			t.Fatalf("cutoff not about %s ago: %s", DefaultStaleTimeout, call.before)
		}
	})

	t.Run("store errors surface", func(t *testing.T) {
		imports := newFakeImportStore()
		imports.reclaimErr = errors.New("db down")
		r := NewReclaimer(imports, time.Minute, slog.Default())

		if _, err := r.Sweep(ctx); err == nil {
			t.Fatal("expected error")
		}
	})
}
