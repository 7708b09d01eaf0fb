package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/entity"
)

// linkReport keeps the report edge consistent with a successful import:
// a PENDING report is created, or the linked one refreshed in place.
// Anything short of SUCCESS leaves the report untouched; report moves
// outside the import path go through the workflow state machine.
func (m *Manager) linkReport(ctx context.Context, rec *entity.InvoiceImport) error {
	cat, err := m.categories.GetOrCreate(ctx, capitalize(rec.Carrier))
	if err != nil {
		return fmt.Errorf("resolve category: %w", err)
	}

	refDate := time.Now()
	if rec.DueDate != nil {
		refDate = *rec.DueDate
	}
	title := ReportTitle(rec.Carrier, rec.Month, rec.Year)

	if rec.Report != nil {
		rep := rec.Report
		rep.Title = title
		rep.ReferenceDate = refDate
		rep.DueDate = rec.DueDate
		rep.CategoryID = cat.ID
		rep.CategoryName = cat.Name
		rep.TotalValue = rec.TotalValue
		rep.Status = constants.ReportStatusPending
		_, err := m.reports.Update(ctx, rep)
		return err
	}

	rep := &entity.Report{
		Title:         title,
		ReferenceDate: refDate,
		DueDate:       rec.DueDate,
		CategoryID:    cat.ID,
		CategoryName:  cat.Name,
		TotalValue:    rec.TotalValue,
		Status:        constants.ReportStatusPending,
	}
	created, err := m.reports.Create(ctx, rep)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	rec.Report = created
	rec.ReportID = &created.ID
	if _, err := m.imports.Update(ctx, rec); err != nil {
		return fmt.Errorf("link report: %w", err)
	}
	return nil
}

// ReportTitle builds the canonical report title, e.g.
// "FATURA VIVO - Janeiro/2025".
func ReportTitle(carrier, month string, year int) string {
	return fmt.Sprintf("FATURA %s - %s/%d", strings.ToUpper(carrier), capitalize(month), year)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
