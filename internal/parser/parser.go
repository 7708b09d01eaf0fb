// Package parser holds the per-carrier extraction strategies. Each
// variant layers carrier-specific regular expression rule sets on top of
// the text extractor: an ordered primary pass per field, then a looser
// fallback pass when required fields are still missing, with the
// confidence score downgraded accordingly.
package parser

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/telbill/invoice-pipeline/internal/ocr"
)

// Confidence tiers. Coarse quality signals, not probabilities.
const (
	ConfidenceFull     = 100 // primary patterns filled every required field
	ConfidenceFallback = 80  // fallback engaged but completed the fields
	ConfidencePartial  = 50  // required fields missing even after fallback
	ConfidenceManual   = 30  // a human corrected at least one field
	ConfidenceNone     = 0   // no text could be extracted at all
)

// Result carries the extracted financial facts. Absent fields are nil;
// parsing never fails for missing data, only for infrastructure faults.
type Result struct {
	InvoiceNumber string
	DueDate       *time.Time
	TotalValue    *decimal.Decimal
	Carrier       string
	Confidence    int
	OCREngaged    bool
}

// MissingRequired reports whether the result must be routed to human
// review: no total, a zero total, or no due date.
func (r Result) MissingRequired() bool {
	if r.TotalValue == nil || r.TotalValue.IsZero() {
		return true
	}
	return r.DueDate == nil
}

// TextExtractor is the slice of the ocr package the parsers need.
type TextExtractor interface {
	Extract(ctx context.Context, path string) ocr.ExtractionResult
}

// Parser is the per-carrier extraction capability.
type Parser interface {
	Carrier() string
	Parse(ctx context.Context, path string) (Result, error)
}

// base is embedded by every carrier variant.
type base struct {
	extractor TextExtractor
}

func (b base) extract(ctx context.Context, path string) ocr.ExtractionResult {
	return b.extractor.Extract(ctx, path)
}
