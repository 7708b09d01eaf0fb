package parser

import (
	"context"
	"log/slog"
	"testing"
)

func TestClaroParser(t *testing.T) {
	ctx := context.Background()

	t.Run("uniform layout", func(t *testing.T) {
		text := "CLARO\nNº da fatura 555001\nTOTAL A PAGAR R$ 120,00\nVENCIMENTO: 15/03/2026\n"
		p := NewClaroParser(fixedExtractor{text: text}, slog.Default())

		res, err := p.Parse(ctx, "invoice.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Confidence != ConfidenceFull {
			t.Fatalf("expected confidence %d, got %d", ConfidenceFull, res.Confidence)
		}
		if res.TotalValue == nil || res.TotalValue.String() != "120" {
			t.Fatalf("wrong total: %v", res.TotalValue)
		}
		if res.InvoiceNumber != "555001" {
			t.Fatalf("wrong invoice number: %q", res.InvoiceNumber)
		}
	})

	t.Run("no fallback tier exists", func(t *testing.T) {
		text := "CLARO alguma coisa sem valores"
		p := NewClaroParser(fixedExtractor{text: text}, slog.Default())

		res, err := p.Parse(ctx, "invoice.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Confidence != ConfidencePartial {
			t.Fatalf("expected confidence %d, got %d", ConfidencePartial, res.Confidence)
		}
	})
}
