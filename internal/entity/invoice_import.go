package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/telbill/invoice-pipeline/constants"
)

// InvoiceImport represents an invoice import record for data transfer
// between layers. One row exists per distinct file fingerprint.
type InvoiceImport struct {
	ID              uuid.UUID              `json:"id"`
	FilePath        string                 `json:"file_path"`
	FileHash        string                 `json:"file_hash"`
	Year            int                    `json:"year"`
	City            string                 `json:"city"`
	Carrier         string                 `json:"carrier"`
	Month           string                 `json:"month"`
	InvoiceNumber   *string                `json:"invoice_number,omitempty"`
	DueDate         *time.Time             `json:"due_date,omitempty"`
	TotalValue      decimal.Decimal        `json:"total_value"`
	ReportID        *uuid.UUID             `json:"report_id,omitempty"`
	Report          *Report                `json:"-"`
	Status          constants.ImportStatus `json:"status"`
	ErrorMessage    *string                `json:"error_message,omitempty"`
	ErrorCode       *string                `json:"error_code,omitempty"`
	ConfidenceScore int                    `json:"confidence_score"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// HasActiveReport reports whether the linked report blocks re-ingestion
// of identical content.
func (i *InvoiceImport) HasActiveReport() bool {
	return i.Report != nil && i.Report.Status.Active()
}
