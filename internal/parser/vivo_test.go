package parser

import (
	"context"
	"log/slog"
	"testing"

	"github.com/telbill/invoice-pipeline/internal/ocr"
)

// fixedExtractor feeds canned text into a parser regardless of path.
type fixedExtractor struct {
	text   string
	method string
}

func (f fixedExtractor) Extract(_ context.Context, _ string) ocr.ExtractionResult {
	method := f.method
	if method == "" {
		method = "pdf-text"
	}
	return ocr.ExtractionResult{Text: f.text, Method: method, Pages: 1}
}

func TestVivoParser(t *testing.T) {
	ctx := context.Background()

	t.Run("digital layout hits every primary pattern", func(t *testing.T) {
		text := "VIVO Telefonica Brasil\n" +
			"Fatura número 1234567890\n" +
			"Total a pagar R$ 150,50\n" +
			"Vencimento 10/12/2025\n"
		p := NewVivoParser(fixedExtractor{text: text}, slog.Default())

		res, err := p.Parse(ctx, "invoice.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Confidence != ConfidenceFull {
			t.Fatalf("expected confidence %d, got %d", ConfidenceFull, res.Confidence)
		}
		if res.TotalValue == nil || res.TotalValue.String() != "150.5" {
			t.Fatalf("wrong total: %v", res.TotalValue)
		}
		if res.DueDate == nil || res.DueDate.Day() != 10 {
			t.Fatalf("wrong due date: %v", res.DueDate)
		}
		if res.InvoiceNumber != "1234567890" {
			t.Fatalf("wrong invoice number: %q", res.InvoiceNumber)
		}
	})

	t.Run("summary sidebar needs the fallback tier", func(t *testing.T) {
		text := "VIVO fatura fixa\n" +
			"Fatura 98765432101\n" +
			"TOTAL GERAL A PAGAR\nR$\n3.340,61\n" +
			"VENCIMENTO\n05/01/2026\n"
		p := NewVivoParser(fixedExtractor{text: text}, slog.Default())

		res, err := p.Parse(ctx, "invoice.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Confidence != ConfidenceFallback {
			t.Fatalf("expected confidence %d, got %d", ConfidenceFallback, res.Confidence)
		}
		if res.TotalValue == nil || res.TotalValue.String() != "3340.61" {
			t.Fatalf("wrong total: %v", res.TotalValue)
		}
		if res.DueDate == nil || res.DueDate.Year() != 2026 {
			t.Fatalf("wrong due date: %v", res.DueDate)
		}
	})

	t.Run("total still missing after fallback", func(t *testing.T) {
		text := "VIVO\nVencimento 10/12/2025\nFatura número 123\n"
		p := NewVivoParser(fixedExtractor{text: text}, slog.Default())

		res, err := p.Parse(ctx, "invoice.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Confidence != ConfidencePartial {
			t.Fatalf("expected confidence %d, got %d", ConfidencePartial, res.Confidence)
		}
		if !res.MissingRequired() {
			t.Fatal("expected result to need review")
		}
	})

	t.Run("no text at all", func(t *testing.T) {
		p := NewVivoParser(fixedExtractor{}, slog.Default())

		res, err := p.Parse(ctx, "invoice.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Confidence != ConfidenceNone {
			t.Fatalf("expected confidence %d, got %d", ConfidenceNone, res.Confidence)
		}
	})

	t.Run("ocr engagement is surfaced", func(t *testing.T) {
		text := "Total a pagar R$ 89,90\nVencimento 01/02/2026\nFatura número 42\n"
		p := NewVivoParser(fixedExtractor{text: text, method: "pdf-ocr"}, slog.Default())

		res, err := p.Parse(ctx, "invoice.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.OCREngaged {
			t.Fatal("expected OCREngaged to be set")
		}
	})
}
