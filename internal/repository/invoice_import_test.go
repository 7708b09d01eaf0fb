package repository

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/telbill/invoice-pipeline/constants"
)

func TestReclaimStale(t *testing.T) {
	ctx := context.Background()
	client, err := OpenSQLite(ctx, slog.Default())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer client.Close()

	repo := NewImportRepository(client, slog.Default())
	now := time.Now()

	seed := func(hashByte string, status constants.ImportStatus, age time.Duration) {
		t.Helper()
		err := client.InvoiceImport.Create().
			SetFilePath("/blobs/" + hashByte + ".pdf").
			SetFileHash(strings.Repeat(hashByte, 64)).
			SetYear(2025).
			SetCity("SP").
			SetCarrier(constants.CarrierVivo).
			SetMonth("Janeiro").
			SetStatus(string(status)).
			SetUpdatedAt(now.Add(-age)).
			Exec(ctx)
		if err != nil {
			t.Fatalf("seed %s: %v", status, err)
		}
	}

	seed("a", constants.ImportStatusProcessing, 6*time.Minute)
	seed("b", constants.ImportStatusOCRRunning, 6*time.Minute)
	seed("c", constants.ImportStatusProcessing, 4*time.Minute)
	seed("d", constants.ImportStatusSuccess, 6*time.Minute)

	n, err := repo.ReclaimStale(ctx, constants.InProgressImportStatuses, now.Add(-5*time.Minute),
		constants.ErrCodeTimeout, "Timeout: o processamento demorou muito e foi abortado.")
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 reclaimed rows, got %d", n)
	}

	rows, err := repo.ListByStatuses(ctx, []constants.ImportStatus{constants.ImportStatusFailed})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 FAILED rows, got %d", len(rows))
	}
	for _, rec := range rows {
		if rec.ErrorCode == nil || *rec.ErrorCode != constants.ErrCodeTimeout {
			t.Fatalf("expected TIMEOUT_ERROR on %s, got %v", rec.FilePath, rec.ErrorCode)
		}
	}

	// The 4-minute job and the finished one are untouched.
	fresh, err := repo.ListByStatuses(ctx, []constants.ImportStatus{constants.ImportStatusProcessing})
	if err != nil {
		t.Fatalf("list processing: %v", err)
	}
	if len(fresh) != 1 || fresh[0].FileHash != strings.Repeat("c", 64) {
		t.Fatalf("recently touched job should survive the sweep, got %+v", fresh)
	}
}
