package importer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/parser"
)

const (
	vivoFullText = "Total a pagar R$ 150,50\nVencimento 10/12/2025\nFatura número 123456789\n"
	vivoThinText = "Vencimento 10/12/2025\nFatura número 1234567\n"
)

type managerFixture struct {
	manager *Manager
	imports *fakeImportStore
	reports *fakeReportStore
	cats    *fakeCategoryStore
	blobs   *fakeBlobStore
	audit   *fakeAuditor
}

func newManagerFixture(text string) *managerFixture {
	f := &managerFixture{
		imports: newFakeImportStore(),
		reports: newFakeReportStore(),
		cats:    newFakeCategoryStore(),
		blobs:   &fakeBlobStore{},
		audit:   &fakeAuditor{},
	}
	ext := cannedExtractor{text: text}
	f.manager = NewManager(f.imports, f.reports, f.cats, f.blobs, f.audit,
		ext, parser.NewRegistry(ext, slog.Default()), nopTx{}, slog.Default())
	return f
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func TestProcessInvoice(t *testing.T) {
	ctx := context.Background()
	meta := &Metadata{Year: 2025, City: "SP", Carrier: "VIVO", Month: "Janeiro"}
	payload := []byte("%PDF-1.4 fatura vivo")

	t.Run("upload succeeds end to end", func(t *testing.T) {
		f := newManagerFixture(vivoFullText)
		src := BytesSource{Filename: "fatura.pdf", Data: payload}

		status, msg := f.manager.ProcessInvoice(ctx, src, meta, "tester", nil)
		if status != constants.ImportStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s (%s)", status, msg)
		}

		rec, err := f.imports.FindByHash(ctx, sha256Hex(payload))
		if err != nil || rec == nil {
			t.Fatalf("record not persisted: %v", err)
		}
		if rec.Carrier != constants.CarrierVivo || rec.Year != 2025 || rec.City != "SP" {
			t.Fatalf("metadata not applied: %+v", rec)
		}
		if rec.ConfidenceScore != parser.ConfidenceFull {
			t.Fatalf("expected confidence %d, got %d", parser.ConfidenceFull, rec.ConfidenceScore)
		}
		if rec.TotalValue.String() != "150.5" {
			t.Fatalf("wrong total: %s", rec.TotalValue)
		}
		if rec.FilePath != "/blobs/"+sha256Hex(payload)+".pdf" {
			t.Fatalf("uploaded payload not stored: %s", rec.FilePath)
		}

		if rec.Report == nil {
			t.Fatal("report not linked")
		}
		if rec.Report.Status != constants.ReportStatusPending {
			t.Fatalf("expected PENDING report, got %s", rec.Report.Status)
		}
		if rec.Report.Title != "FATURA VIVO - Janeiro/2025" {
			t.Fatalf("wrong report title: %q", rec.Report.Title)
		}
		if rec.Report.CategoryName != "Vivo" {
			t.Fatalf("wrong category: %q", rec.Report.CategoryName)
		}

		imports := f.audit.byAction(constants.AuditActionImport)
		if len(imports) != 1 {
			t.Fatalf("expected one IMPORT audit entry, got %d", len(imports))
		}
		if imports[0].before != nil {
			t.Fatal("fresh import should have no before snapshot")
		}
		if imports[0].actor != "tester" {
			t.Fatalf("wrong actor: %q", imports[0].actor)
		}
	})

	t.Run("carrier inferred from text when metadata is silent", func(t *testing.T) {
		f := newManagerFixture("VIVO Telefonica\n" + vivoFullText)
		src := BytesSource{Filename: "fatura.pdf", Data: payload}

		status, _ := f.manager.ProcessInvoice(ctx, src, &Metadata{}, "tester", nil)
		if status != constants.ImportStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", status)
		}
		rec, _ := f.imports.FindByHash(ctx, sha256Hex(payload))
		if rec.Carrier != constants.CarrierVivo {
			t.Fatalf("expected inferred VIVO, got %q", rec.Carrier)
		}
	})

	t.Run("unidentified carrier falls back to OUTROS", func(t *testing.T) {
		f := newManagerFixture(vivoFullText)
		src := BytesSource{Filename: "fatura.pdf", Data: payload}

		status, _ := f.manager.ProcessInvoice(ctx, src, &Metadata{}, "tester", nil)
		if status != constants.ImportStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", status)
		}
		rec, _ := f.imports.FindByHash(ctx, sha256Hex(payload))
		if rec.Carrier != constants.CarrierOther {
			t.Fatalf("expected OUTROS, got %q", rec.Carrier)
		}
	})

	t.Run("duplicate with active report is skipped", func(t *testing.T) {
		f := newManagerFixture(vivoFullText)
		f.imports.add(&entity.InvoiceImport{
			FileHash: sha256Hex(payload),
			Status:   constants.ImportStatusSuccess,
			Report:   &entity.Report{ID: uuid.New(), Status: constants.ReportStatusApproved},
		})

		status, msg := f.manager.ProcessInvoice(ctx, BytesSource{Filename: "again.pdf", Data: payload}, meta, "tester", nil)
		if status != constants.ImportStatusSkipped {
			t.Fatalf("expected SKIPPED, got %s", status)
		}
		if !containsUpper(msg, "já importada") {
			t.Fatalf("unexpected message: %q", msg)
		}
		if len(f.imports.byID) != 1 {
			t.Fatalf("duplicate created a record: %d", len(f.imports.byID))
		}
		// The stored record keeps its terminal status untouched.
		for _, rec := range f.imports.byID {
			if rec.Status != constants.ImportStatusSuccess {
				t.Fatalf("existing record mutated: %s", rec.Status)
			}
		}
	})

	t.Run("reprocess of a blocked record marks it skipped", func(t *testing.T) {
		f := newManagerFixture(vivoFullText)
		rec := f.imports.add(&entity.InvoiceImport{
			FileHash: sha256Hex(payload),
			Status:   constants.ImportStatusSuccess,
			Report:   &entity.Report{ID: uuid.New(), Status: constants.ReportStatusPending},
		})

		status, _ := f.manager.ProcessInvoice(ctx, BytesSource{Filename: "again.pdf", Data: payload}, meta, "tester", rec)
		if status != constants.ImportStatusSkipped {
			t.Fatalf("expected SKIPPED, got %s", status)
		}
		if rec.Status != constants.ImportStatusSkipped {
			t.Fatalf("explicit reprocess should mark the record, got %s", rec.Status)
		}
		if rec.ErrorCode == nil || *rec.ErrorCode != constants.ErrCodeDuplicateActive {
			t.Fatalf("expected DUPLICATE_ACTIVE, got %v", rec.ErrorCode)
		}
	})

	t.Run("missing required data parks the import for review", func(t *testing.T) {
		f := newManagerFixture(vivoThinText)

		status, _ := f.manager.ProcessInvoice(ctx, BytesSource{Filename: "fatura.pdf", Data: payload}, meta, "tester", nil)
		if status != constants.ImportStatusPendingReview {
			t.Fatalf("expected PENDING_REVIEW, got %s", status)
		}
		rec, _ := f.imports.FindByHash(ctx, sha256Hex(payload))
		if rec.ErrorCode == nil || *rec.ErrorCode != constants.ErrCodeMissingRequiredData {
			t.Fatalf("expected MISSING_REQUIRED_DATA, got %v", rec.ErrorCode)
		}
		if rec.Report != nil {
			t.Fatal("no report should exist before review confirms the data")
		}
	})

	t.Run("review outcome leaves a canceled report alone", func(t *testing.T) {
		f := newManagerFixture(vivoThinText)
		rep := &entity.Report{ID: uuid.New(), Status: constants.ReportStatusCanceled}
		f.reports.byID[rep.ID] = rep
		rec := f.imports.add(&entity.InvoiceImport{
			FileHash: sha256Hex(payload),
			Status:   constants.ImportStatusFailed,
			Report:   rep,
			ReportID: &rep.ID,
		})

		status, _ := f.manager.ProcessInvoice(ctx, BytesSource{Filename: "fatura.pdf", Data: payload}, meta, "tester", rec)
		if status != constants.ImportStatusPendingReview {
			t.Fatalf("expected PENDING_REVIEW, got %s", status)
		}
		if rep.Status != constants.ReportStatusCanceled {
			t.Fatalf("canceled report must stay canceled, got %s", rep.Status)
		}
	})

	t.Run("reprocess records a REPROCESS audit entry", func(t *testing.T) {
		f := newManagerFixture(vivoFullText)
		code := constants.ErrCodeExtractionFailed
		rec := f.imports.add(&entity.InvoiceImport{
			FilePath:  "/tmp/fatura.pdf",
			FileHash:  sha256Hex(payload),
			Status:    constants.ImportStatusFailed,
			ErrorCode: &code,
		})

		status, _ := f.manager.ProcessInvoice(ctx, BytesSource{Filename: "fatura.pdf", Data: payload}, meta, "tester", rec)
		if status != constants.ImportStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", status)
		}
		if rec.Status != constants.ImportStatusSuccess {
			t.Fatalf("existing record not refreshed: %s", rec.Status)
		}
		if rec.ErrorCode != nil {
			t.Fatalf("error code should be cleared, got %v", *rec.ErrorCode)
		}

		repro := f.audit.byAction(constants.AuditActionReprocess)
		if len(repro) != 1 {
			t.Fatalf("expected one REPROCESS entry, got %d", len(repro))
		}
		if repro[0].before == nil {
			t.Fatal("reprocess must carry a before snapshot")
		}
	})

	t.Run("unreadable fresh source fails with a hash error", func(t *testing.T) {
		f := newManagerFixture(vivoFullText)

		status, msg := f.manager.ProcessInvoice(ctx, brokenSource{}, meta, "tester", nil)
		if status != constants.ImportStatusFailed {
			t.Fatalf("expected FAILED, got %s", status)
		}
		if !containsUpper(msg, "hash") {
			t.Fatalf("unexpected message: %q", msg)
		}
		if len(f.imports.byID) != 0 {
			t.Fatal("no record should be created for an unreadable fresh file")
		}
	})

	t.Run("extraction failure cascades to the linked report", func(t *testing.T) {
		f := newManagerFixture(vivoFullText)
		rep := &entity.Report{ID: uuid.New(), Status: constants.ReportStatusReview}
		f.reports.byID[rep.ID] = rep
		rec := f.imports.add(&entity.InvoiceImport{
			FileHash: sha256Hex(payload),
			Status:   constants.ImportStatusPendingReview,
			Report:   rep,
		})

		status, _ := f.manager.ProcessInvoice(ctx, brokenSource{}, meta, "tester", rec)
		if status != constants.ImportStatusFailed {
			t.Fatalf("expected FAILED, got %s", status)
		}
		if len(f.imports.statusCalls) != 1 {
			t.Fatalf("expected one terminal status write, got %d", len(f.imports.statusCalls))
		}
		call := f.imports.statusCalls[0]
		if call.code == nil || *call.code != constants.ErrCodeExtractionFailed {
			t.Fatalf("expected EXTRACTION_FAILED, got %v", call.code)
		}
		if rep.Status != constants.ReportStatusFailed {
			t.Fatalf("report should cascade to FAILED, got %s", rep.Status)
		}
	})

	t.Run("lost create race falls back to the winner", func(t *testing.T) {
		f := newManagerFixture(vivoFullText)
		winner := f.imports.add(&entity.InvoiceImport{
			FileHash: sha256Hex(payload),
			Status:   constants.ImportStatusProcessing,
		})
		f.imports.missFirstFind = true
		f.imports.createErr = common.ErrConflict

		status, _ := f.manager.ProcessInvoice(ctx, BytesSource{Filename: "fatura.pdf", Data: payload}, meta, "tester", nil)
		if status != constants.ImportStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", status)
		}
		if len(f.imports.byID) != 1 {
			t.Fatalf("conflict should not add a record, have %d", len(f.imports.byID))
		}
		if winner.Status != constants.ImportStatusSuccess {
			t.Fatalf("winner record not updated: %s", winner.Status)
		}
		repro := f.audit.byAction(constants.AuditActionReprocess)
		if len(repro) != 1 {
			t.Fatalf("winner update should audit as REPROCESS, got %d entries", len(repro))
		}
	})

	t.Run("zero metadata gets dated defaults", func(t *testing.T) {
		f := newManagerFixture(vivoFullText)

		if status, _ := f.manager.ProcessInvoice(ctx, BytesSource{Filename: "fatura.pdf", Data: payload}, nil, "tester", nil); status != constants.ImportStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", status)
		}
		rec, _ := f.imports.FindByHash(ctx, sha256Hex(payload))
		now := time.Now()
		if rec.Year != now.Year() {
			t.Fatalf("expected current year, got %d", rec.Year)
		}
		if rec.City != "N/A" {
			t.Fatalf("expected placeholder city, got %q", rec.City)
		}
		if rec.Month != constants.MonthName(int(now.Month())) {
			t.Fatalf("expected current month name, got %q", rec.Month)
		}
	})
}

func TestReportTitle(t *testing.T) {
	if got := ReportTitle("vivo", "janeiro", 2025); got != "FATURA VIVO - Janeiro/2025" {
		t.Fatalf("unexpected title: %q", got)
	}
	if got := ReportTitle("OUTROS", "MARÇO", 2026); got != "FATURA OUTROS - Março/2026" {
		t.Fatalf("unexpected title: %q", got)
	}
}
