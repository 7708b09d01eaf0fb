package parser

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/telbill/invoice-pipeline/constants"
)

// Claro layouts are uniform enough that a single pattern per field has
// held up; no looser fallback tier exists yet for this carrier.
var (
	claroTotal = []*regexp.Regexp{
		regexp.MustCompile(`(?i)TOTAL A PAGAR.*?(\d+,\d{2})`),
	}
	claroDate = []*regexp.Regexp{
		regexp.MustCompile(`(?i)VENCIMENTO.*?(\d{2}/\d{2}/\d{4})`),
	}
	claroInvoice = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Nº da fatura|Fatura)\s*(\d+)`),
	}
)

type ClaroParser struct {
	base
	logger *slog.Logger
}

func NewClaroParser(tx TextExtractor, logger *slog.Logger) *ClaroParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClaroParser{base: base{extractor: tx}, logger: logger}
}

func (p *ClaroParser) Carrier() string { return constants.CarrierClaro }

func (p *ClaroParser) Parse(ctx context.Context, path string) (Result, error) {
	ext := p.extract(ctx, path)
	text := ext.Text

	res := Result{Carrier: constants.CarrierClaro, Confidence: ConfidenceFull, OCREngaged: ext.OCREngaged()}
	if text == "" {
		res.Confidence = ConfidenceNone
		return res, nil
	}

	res.TotalValue = maxMoney(text, claroTotal)
	res.DueDate = firstDate(text, claroDate)
	res.InvoiceNumber = firstGroup(text, claroInvoice)

	if res.TotalValue == nil || res.DueDate == nil {
		res.Confidence = ConfidencePartial
	}
	return res, nil
}
