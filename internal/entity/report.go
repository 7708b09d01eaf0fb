package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/telbill/invoice-pipeline/constants"
)

// Report is the financial artifact reviewers act on. Status moves only
// through the workflow state machine.
type Report struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	ReferenceDate time.Time              `json:"reference_date"`
	DueDate       *time.Time             `json:"due_date,omitempty"`
	CategoryID    uuid.UUID              `json:"category_id"`
	CategoryName  string                 `json:"category_name,omitempty"`
	TotalValue    decimal.Decimal        `json:"total_value"`
	Status        constants.ReportStatus `json:"status"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// Category groups reports; protected from deletion while referenced.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}
