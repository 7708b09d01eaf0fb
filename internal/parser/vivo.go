package parser

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/telbill/invoice-pipeline/constants"
)

// Vivo invoices come in several layouts (digital, fatura fixa, summary
// sidebars). The primary patterns cover the digital layout; the fallback
// set widens the context window and accepts any date as a last resort.
var (
	vivoTotalPrimary = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total a pagar\s*(?:R\$)?\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
		regexp.MustCompile(`(?i)VALOR TOTAL\s*(?:R\$)?\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
		regexp.MustCompile(`(?i)Total desta fatura\s*(?:R\$)?\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
		regexp.MustCompile(`(?i)Valor a pagar\s*(?:R\$)?\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
	}
	vivoDatePrimary = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Vencimento\s*(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`(?i)Data de vencimento\s*(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`(?i)Vence em\s*(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`(?i)Pague até\s*(\d{2}/\d{2}/\d{4})`),
	}
	vivoInvoicePrimary = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Fatura número|Nº da fatura|Conta No\.)\s*(\d+)`),
	}

	vivoTotalFallback = []*regexp.Regexp{
		regexp.MustCompile(`(?i)TOTAL GERAL A PAGAR[\s\S]{0,50}?(\d{1,3}(?:\.\d{3})*,\d{2})`),
		regexp.MustCompile(`(?i)TOTAL A PAGAR[\s\S]{0,50}?(\d{1,3}(?:\.\d{3})*,\d{2})`),
		regexp.MustCompile(`(?i)Total Geral[\s\S]{0,50}?(\d{1,3}(?:\.\d{3})*,\d{2})`),
		regexp.MustCompile(`(?i)(?:Resumo|VALOR \(R\$\))[\s\S]{0,50}?(\d{1,3}(?:\.\d{3})*,\d{2})`),
		regexp.MustCompile(`(?i)valor.*?(\d{1,3}(?:\.\d{3})*,\d{2})`),
	}
	vivoDateFallback = []*regexp.Regexp{
		regexp.MustCompile(`(?i)VENCIMENTO[\s\S]{0,50}?(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`(?i)Venc\.[\s\S]{0,50}?(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`(?i)(?:Pagamento até|Data limite|Pague até)[\s\S]{0,50}?(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`), // any date
	}
	vivoInvoiceFallback = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Fatura\D*(\d{7,15})`),
	}
)

type VivoParser struct {
	base
	logger *slog.Logger
}

func NewVivoParser(tx TextExtractor, logger *slog.Logger) *VivoParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &VivoParser{base: base{extractor: tx}, logger: logger}
}

func (p *VivoParser) Carrier() string { return constants.CarrierVivo }

func (p *VivoParser) Parse(ctx context.Context, path string) (Result, error) {
	ext := p.extract(ctx, path)
	text := ext.Text

	res := Result{Carrier: constants.CarrierVivo, Confidence: ConfidenceFull, OCREngaged: ext.OCREngaged()}
	if text == "" {
		res.Confidence = ConfidenceNone
		return res, nil
	}

	res.TotalValue = maxMoney(text, vivoTotalPrimary)
	res.DueDate = firstDate(text, vivoDatePrimary)
	res.InvoiceNumber = firstGroup(text, vivoInvoicePrimary)

	if res.TotalValue == nil || res.DueDate == nil || res.InvoiceNumber == "" {
		// Primary pass missed a field; downgrade and widen the net.
		res.Confidence = ConfidenceFallback
		p.fallback(text, &res)

		if res.TotalValue == nil || res.DueDate == nil {
			res.Confidence = ConfidencePartial
		}
	}
	return res, nil
}

// fallback handles the problematic layouts (cards, summary sidebars,
// fatura fixa). Only fields still empty after the primary pass are touched.
func (p *VivoParser) fallback(text string, res *Result) {
	p.logger.Debug("vivo fallback engaged", "sample", head(text, 50))

	if res.TotalValue == nil {
		res.TotalValue = maxMoney(text, vivoTotalFallback)
	}
	if res.DueDate == nil {
		res.DueDate = maxDate(text, vivoDateFallback)
	}
	if res.InvoiceNumber == "" {
		res.InvoiceNumber = firstGroup(text, vivoInvoiceFallback)
	}
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
