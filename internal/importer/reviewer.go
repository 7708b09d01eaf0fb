package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/audit"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/parser"
)

// Correction carries reviewer-supplied overrides. Nil fields keep the
// extracted value.
type Correction struct {
	TotalValue    *decimal.Decimal
	DueDate       *time.Time
	InvoiceNumber *string
	Carrier       *string
}

// Reviewer resolves imports parked in the manual review queue.
type Reviewer struct {
	imports    ImportStore
	reports    ReportStore
	categories CategoryStore
	auditor    Auditor
	tx         TxRunner
	logger     *slog.Logger
}

func NewReviewer(imports ImportStore, reports ReportStore, categories CategoryStore, auditor Auditor, tx TxRunner, logger *slog.Logger) *Reviewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reviewer{imports: imports, reports: reports, categories: categories, auditor: auditor, tx: tx, logger: logger}
}

// ConfirmInvoice applies the reviewer's corrections, promotes the import
// to SUCCESS and creates a fresh PENDING report for it. Confidence drops
// to the manual tier only when at least one field actually changed;
// confirming the extracted values as-is keeps the original score.
func (r *Reviewer) ConfirmInvoice(ctx context.Context, importID uuid.UUID, actor string, corr Correction) (*entity.InvoiceImport, error) {
	var out *entity.InvoiceImport
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := r.imports.Get(ctx, importID)
		if err != nil {
			return err
		}
		if rec == nil {
			return common.ErrNotFound
		}
		before := *rec

		changed := false
		if corr.TotalValue != nil && !corr.TotalValue.Equal(rec.TotalValue) {
			rec.TotalValue = *corr.TotalValue
			changed = true
		}
		if corr.DueDate != nil && !sameDate(corr.DueDate, rec.DueDate) {
			d := *corr.DueDate
			rec.DueDate = &d
			changed = true
		}
		if corr.InvoiceNumber != nil && !sameStr(corr.InvoiceNumber, rec.InvoiceNumber) {
			n := *corr.InvoiceNumber
			rec.InvoiceNumber = &n
			changed = true
		}
		if corr.Carrier != nil {
			c := constants.NormalizeCarrier(*corr.Carrier)
			if c == "" {
				c = constants.CarrierOther
			}
			if c != rec.Carrier {
				rec.Carrier = c
				changed = true
			}
		}

		if changed {
			rec.ConfidenceScore = parser.ConfidenceManual
		}
		rec.Status = constants.ImportStatusSuccess
		rec.ErrorCode = nil
		rec.ErrorMessage = nil

		cat, err := r.categories.GetOrCreate(ctx, capitalize(rec.Carrier))
		if err != nil {
			return fmt.Errorf("resolve category: %w", err)
		}
		refDate := time.Now()
		if rec.DueDate != nil {
			refDate = *rec.DueDate
		}
		// The corrected due date is the source of truth for the report
		// period, not whatever the directory layout claimed.
		rep := &entity.Report{
			Title:         ReportTitle(rec.Carrier, constants.MonthName(int(refDate.Month())), refDate.Year()),
			ReferenceDate: refDate,
			DueDate:       rec.DueDate,
			CategoryID:    cat.ID,
			CategoryName:  cat.Name,
			TotalValue:    rec.TotalValue,
			Status:        constants.ReportStatusPending,
		}
		created, err := r.reports.Create(ctx, rep)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		rec.Report = created
		rec.ReportID = &created.ID

		saved, err := r.imports.Update(ctx, rec)
		if err != nil {
			return err
		}
		out = saved

		r.auditor.Log(ctx, actor, constants.AuditActionUpdate, "InvoiceImport (Review)", saved.ID.String(), audit.Snapshot(&before), audit.Snapshot(saved))
		r.auditor.Log(ctx, actor, constants.AuditActionImport, "Report", created.ID.String(), nil, audit.Snapshot(created))
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.logger.Info("invoice confirmed", "import_id", importID, "actor", actor, "confidence", out.ConfidenceScore)
	return out, nil
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func sameStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
