package ocr

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// MinTextLength is the cutoff below which direct text extraction is
// considered to have hit a scanned/image-only document and OCR kicks in.
const MinTextLength = 50

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "por" (telecom invoices are Brazilian)
	TessdataDir   string
	DPI           int // rasterization DPI for scanned PDFs, default 300
	MaxOCRPages   int // pages rasterized for OCR, default 2 (cost control)
}

// ExtractionResult is a best-effort outcome: Text may be empty and
// Warnings non-empty without the extraction counting as failed.
type ExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr"
	Language string
	Duration time.Duration
	Warnings []string
}

// OCREngaged reports whether the fallback OCR path produced the text.
func (r ExtractionResult) OCREngaged() bool { return r.Method == "pdf-ocr" }

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "por"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MaxOCRPages <= 0 {
		cfg.MaxOCRPages = 2
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract pulls plain text out of a PDF. The text layer is tried first;
// when it comes back shorter than MinTextLength the first MaxOCRPages
// pages are rasterized and run through tesseract. Per-tool failures are
// swallowed into Warnings so callers always get whatever was recovered.
func (e *Extractor) Extract(ctx context.Context, path string) ExtractionResult {
	start := time.Now()

	text, pages, warns, err := e.pdfToText(ctx, path)
	res := ExtractionResult{
		Text:     text,
		Pages:    pages,
		Method:   "pdf-text",
		Language: e.cfg.TesseractLang,
		Warnings: warns,
	}
	if err != nil {
		res.Warnings = append(res.Warnings, err.Error())
	}

	if len(strings.TrimSpace(res.Text)) < MinTextLength {
		e.logger.Info("text layer too sparse, engaging ocr", "path", path, "chars", len(strings.TrimSpace(res.Text)))
		notifyEngage(ctx)
		ocrText, ocrPages, ocrWarns, ocrErr := e.pdfToOCR(ctx, path)
		res.Warnings = append(res.Warnings, ocrWarns...)
		if ocrErr != nil {
			res.Warnings = append(res.Warnings, ocrErr.Error())
		}
		if ocrText != "" {
			res.Text = ocrText
			res.Pages = ocrPages
			res.Method = "pdf-ocr"
		}
	}

	res.Text = Normalize(res.Text)
	res.Duration = time.Since(start)
	return res
}
