package importer

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/parser"
)

type reviewerFixture struct {
	reviewer *Reviewer
	imports  *fakeImportStore
	reports  *fakeReportStore
	audit    *fakeAuditor
}

func newReviewerFixture() *reviewerFixture {
	f := &reviewerFixture{
		imports: newFakeImportStore(),
		reports: newFakeReportStore(),
		audit:   &fakeAuditor{},
	}
	f.reviewer = NewReviewer(f.imports, f.reports, newFakeCategoryStore(), f.audit, nopTx{}, slog.Default())
	return f
}

func pendingReviewRecord() *entity.InvoiceImport {
	code := constants.ErrCodeMissingRequiredData
	due := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	num := "123456789"
	return &entity.InvoiceImport{
		FilePath:        "/blobs/x.pdf",
		FileHash:        "abc",
		Year:            2025,
		City:            "SP",
		Carrier:         constants.CarrierVivo,
		Month:           "Janeiro",
		InvoiceNumber:   &num,
		DueDate:         &due,
		TotalValue:      decimal.RequireFromString("150.50"),
		Status:          constants.ImportStatusPendingReview,
		ErrorCode:       &code,
		ConfidenceScore: parser.ConfidencePartial,
	}
}

func TestConfirmInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("manual correction drops confidence", func(t *testing.T) {
		f := newReviewerFixture()
		rec := f.imports.add(pendingReviewRecord())

		total := decimal.RequireFromString("199.90")
		out, err := f.reviewer.ConfirmInvoice(ctx, rec.ID, "reviewer", Correction{TotalValue: &total})
		if err != nil {
			t.Fatalf("confirm: %v", err)
		}
		if out.Status != constants.ImportStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", out.Status)
		}
		if out.ConfidenceScore != parser.ConfidenceManual {
			t.Fatalf("expected manual confidence, got %d", out.ConfidenceScore)
		}
		if !out.TotalValue.Equal(total) {
			t.Fatalf("total not applied: %s", out.TotalValue)
		}
		if out.ErrorCode != nil {
			t.Fatalf("error code should be cleared, got %v", *out.ErrorCode)
		}
		if out.Report == nil || out.Report.Status != constants.ReportStatusPending {
			t.Fatalf("expected a fresh PENDING report, got %+v", out.Report)
		}
		if !out.Report.TotalValue.Equal(total) {
			t.Fatalf("report total mismatch: %s", out.Report.TotalValue)
		}
		if len(f.audit.entries) != 2 {
			t.Fatalf("expected two audit entries, got %d", len(f.audit.entries))
		}
	})

	t.Run("confirming as-is keeps the extracted confidence", func(t *testing.T) {
		f := newReviewerFixture()
		rec := f.imports.add(pendingReviewRecord())

		same := rec.TotalValue
		due := *rec.DueDate
		out, err := f.reviewer.ConfirmInvoice(ctx, rec.ID, "reviewer", Correction{TotalValue: &same, DueDate: &due})
		if err != nil {
			t.Fatalf("confirm: %v", err)
		}
		if out.ConfidenceScore != parser.ConfidencePartial {
			t.Fatalf("confidence must not drop without a change, got %d", out.ConfidenceScore)
		}
		if out.Status != constants.ImportStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", out.Status)
		}
	})

	t.Run("report title follows the corrected due date", func(t *testing.T) {
		f := newReviewerFixture()
		rec := f.imports.add(pendingReviewRecord())

		// Filed under Janeiro/2025 but due in March 2026: the report
		// period comes from the due date, not the folder.
		due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		out, err := f.reviewer.ConfirmInvoice(ctx, rec.ID, "reviewer", Correction{DueDate: &due})
		if err != nil {
			t.Fatalf("confirm: %v", err)
		}
		if want := "FATURA VIVO - Março/2026"; out.Report == nil || out.Report.Title != want {
			t.Fatalf("expected title %q, got %+v", want, out.Report)
		}
	})

	t.Run("empty carrier correction lands in OUTROS", func(t *testing.T) {
		f := newReviewerFixture()
		rec := f.imports.add(pendingReviewRecord())

		empty := "  "
		out, err := f.reviewer.ConfirmInvoice(ctx, rec.ID, "reviewer", Correction{Carrier: &empty})
		if err != nil {
			t.Fatalf("confirm: %v", err)
		}
		if out.Carrier != constants.CarrierOther {
			t.Fatalf("expected OUTROS, got %q", out.Carrier)
		}
		if out.ConfidenceScore != parser.ConfidenceManual {
			t.Fatalf("carrier change should drop confidence, got %d", out.ConfidenceScore)
		}
	})

	t.Run("unknown import", func(t *testing.T) {
		f := newReviewerFixture()

		_, err := f.reviewer.ConfirmInvoice(ctx, uuid.New(), "reviewer", Correction{})
		if !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
