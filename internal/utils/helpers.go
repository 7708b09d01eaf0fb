package utils

import (
	"time"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/gen/ent"
	invoicespb "github.com/telbill/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/telbill/invoice-pipeline/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToInvoiceImport(e *ent.InvoiceImport) *entity.InvoiceImport {
	out := &entity.InvoiceImport{
		ID:              e.ID,
		FilePath:        e.FilePath,
		FileHash:        e.FileHash,
		Year:            e.Year,
		City:            e.City,
		Carrier:         e.Carrier,
		Month:           e.Month,
		InvoiceNumber:   e.InvoiceNumber,
		DueDate:         e.DueDate,
		TotalValue:      e.TotalValue,
		ReportID:        e.ReportID,
		Status:          constants.ImportStatus(e.Status),
		ErrorCode:       e.ErrorCode,
		ErrorMessage:    e.ErrorMessage,
		ConfidenceScore: e.ConfidenceScore,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if rep, err := e.Edges.ReportOrErr(); err == nil {
		out.Report = ToReport(rep)
	}
	return out
}

func ToReport(e *ent.Report) *entity.Report {
	out := &entity.Report{
		ID:            e.ID,
		Title:         e.Title,
		ReferenceDate: e.ReferenceDate,
		DueDate:       e.DueDate,
		CategoryID:    e.CategoryID,
		TotalValue:    e.TotalValue,
		Status:        constants.ReportStatus(e.Status),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if cat, err := e.Edges.CategoryOrErr(); err == nil {
		out.CategoryName = cat.Name
	}
	return out
}

func ToCategory(e *ent.Category) *entity.Category {
	return &entity.Category{
		ID:          e.ID,
		Name:        e.Name,
		Description: strOrEmpty(e.Description),
	}
}

func ToPBImport(r *entity.InvoiceImport) *invoicespb.InvoiceImport {
	pb := &invoicespb.InvoiceImport{
		Id:              r.ID.String(),
		FilePath:        r.FilePath,
		FileHash:        r.FileHash,
		Year:            int32(r.Year),
		City:            r.City,
		Carrier:         r.Carrier,
		Month:           r.Month,
		InvoiceNumber:   strOrEmpty(r.InvoiceNumber),
		TotalValue:      r.TotalValue.StringFixed(2),
		Status:          string(r.Status),
		ErrorCode:       strOrEmpty(r.ErrorCode),
		ErrorMessage:    strOrEmpty(r.ErrorMessage),
		ConfidenceScore: int32(r.ConfidenceScore),
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.DueDate != nil {
		pb.DueDate = r.DueDate.Format("2006-01-02")
	}
	if r.ReportID != nil {
		pb.ReportId = r.ReportID.String()
	}
	return pb
}

func ToPBReport(r *entity.Report) *invoicespb.Report {
	pb := &invoicespb.Report{
		Id:            r.ID.String(),
		Title:         r.Title,
		ReferenceDate: r.ReferenceDate.Format("2006-01-02"),
		CategoryId:    r.CategoryID.String(),
		CategoryName:  r.CategoryName,
		TotalValue:    r.TotalValue.StringFixed(2),
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.DueDate != nil {
		pb.DueDate = r.DueDate.Format("2006-01-02")
	}
	return pb
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
