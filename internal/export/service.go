package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/importer"
)

// ReportLister is the narrow repository slice exports need.
type ReportLister interface {
	ListReports(ctx context.Context, from, to *time.Time, statuses []constants.ReportStatus) ([]*entity.Report, error)
}

// Service produces XLSX bytes for report exports.
type Service struct {
	reports ReportLister
	auditor importer.Auditor
	logger  *slog.Logger
}

func NewService(reports ReportLister, auditor importer.Auditor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reports: reports, auditor: auditor, logger: logger}
}

// ExportReportsXLSX returns an XLSX workbook for the given reference-date
// window and statuses.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> everything matching the statuses.
func (s *Service) ExportReportsXLSX(ctx context.Context, actor string, from, to *time.Time, statuses []constants.ReportStatus) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	reps, err := s.reports.ListReports(ctx, fromDate, toDate, statuses)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Relatorios"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Título",
		"Referência",
		"Vencimento",
		"Categoria",
		"Valor (R$)",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range reps {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Title)
		if !r.ReferenceDate.IsZero() {
			write(2, r.ReferenceDate.Format("2006-01-02"))
		} else {
			write(2, "")
		}
		if r.DueDate != nil {
			write(3, r.DueDate.Format("2006-01-02"))
		} else {
			write(3, "")
		}
		write(4, r.CategoryName)
		write(5, r.TotalValue.StringFixed(2))
		write(6, string(r.Status))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 36) // title
	_ = f.SetColWidth(sheet, "B", "C", 14) // dates
	_ = f.SetColWidth(sheet, "D", "D", 22) // category
	_ = f.SetColWidth(sheet, "E", "E", 14) // amount
	_ = f.SetColWidth(sheet, "F", "F", 12) // status

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.auditor.Log(ctx, actor, constants.AuditActionExport, "Report", "", nil, nil)

	s.logger.Info("export.xlsx.ok",
		"rows", len(reps),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
