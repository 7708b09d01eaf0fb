package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "crlf", in: "linha um\r\nlinha dois\r", want: "linha um\nlinha dois"},
		{name: "tabs and runs of spaces", in: "Total\t\ta   pagar", want: "Total a pagar"},
		{name: "blank line runs collapse", in: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "trailing spaces stripped", in: "valor   \ndata  ", want: "valor\ndata"},
		{name: "digits untouched", in: "R$ 3.340,61  em 10/12/2025", want: "R$ 3.340,61 em 10/12/2025"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

// scriptRunner stands in for the external pdf and ocr binaries.
type scriptRunner struct {
	textOut string
	textErr error
	ppmErr  error
	tessOut string
	calls   []string
}

func (r *scriptRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, name)
	switch name {
	case "pdftotext":
		if r.textErr != nil {
			return nil, []byte("pdftotext stderr"), r.textErr
		}
		return []byte(r.textOut), nil, nil
	case "pdftoppm":
		if r.ppmErr != nil {
			return nil, []byte("pdftoppm stderr"), r.ppmErr
		}
		prefix := args[len(args)-1]
		if err := os.WriteFile(prefix+"-1.png", []byte("png"), 0o644); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	case "tesseract":
		return []byte(r.tessOut), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func (r *scriptRunner) ran(name string) bool {
	for _, c := range r.calls {
		if c == name {
			return true
		}
	}
	return false
}

func TestExtract(t *testing.T) {
	ctx := context.Background()
	richText := strings.Repeat("Fatura VIVO Total a pagar R$ 150,50 ", 3)

	t.Run("text layer wins when dense enough", func(t *testing.T) {
		r := &scriptRunner{textOut: richText + "\fsegunda página"}
		e := NewExtractor(Config{}, slog.Default()).WithRunner(r)

		res := e.Extract(ctx, "fatura.pdf")
		if res.Method != "pdf-text" {
			t.Fatalf("expected pdf-text, got %s", res.Method)
		}
		if res.OCREngaged() {
			t.Fatal("ocr must not engage for a dense text layer")
		}
		if res.Pages != 2 {
			t.Fatalf("expected 2 pages, got %d", res.Pages)
		}
		if r.ran("pdftoppm") || r.ran("tesseract") {
			t.Fatalf("ocr tools should not run, calls: %v", r.calls)
		}
	})

	t.Run("sparse text layer falls back to ocr", func(t *testing.T) {
		r := &scriptRunner{textOut: "   ", tessOut: richText}
		e := NewExtractor(Config{}, slog.Default()).WithRunner(r)

		engaged := false
		res := e.Extract(WithEngageNotify(ctx, func() { engaged = true }), "scan.pdf")
		if !engaged {
			t.Fatal("engage notification not fired")
		}
		if res.Method != "pdf-ocr" || !res.OCREngaged() {
			t.Fatalf("expected pdf-ocr, got %s", res.Method)
		}
		if !strings.Contains(res.Text, "Total a pagar") {
			t.Fatalf("ocr text lost: %q", res.Text)
		}
		if !r.ran("pdftoppm") || !r.ran("tesseract") {
			t.Fatalf("ocr tools should run, calls: %v", r.calls)
		}
	})

	t.Run("ocr tool failure degrades to warnings", func(t *testing.T) {
		r := &scriptRunner{textOut: "curto", ppmErr: fmt.Errorf("exit status 1")}
		e := NewExtractor(Config{}, slog.Default()).WithRunner(r)

		res := e.Extract(ctx, "scan.pdf")
		if res.Method != "pdf-text" {
			t.Fatalf("failed ocr must keep the text layer result, got %s", res.Method)
		}
		if res.Text != "curto" {
			t.Fatalf("original text lost: %q", res.Text)
		}
		if len(res.Warnings) == 0 {
			t.Fatal("expected warnings from the failed ocr attempt")
		}
	})

	t.Run("everything failing still returns a result", func(t *testing.T) {
		r := &scriptRunner{textErr: fmt.Errorf("exit status 1"), ppmErr: fmt.Errorf("exit status 1")}
		e := NewExtractor(Config{}, slog.Default()).WithRunner(r)

		res := e.Extract(ctx, "bad.pdf")
		if res.Text != "" {
			t.Fatalf("expected empty text, got %q", res.Text)
		}
		if len(res.Warnings) < 2 {
			t.Fatalf("expected warnings from both tools, got %v", res.Warnings)
		}
	})
}
