package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/gen/ent"
	"github.com/telbill/invoice-pipeline/internal/audit"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/export"
	"github.com/telbill/invoice-pipeline/internal/importer"
	"github.com/telbill/invoice-pipeline/internal/ocr"
	"github.com/telbill/invoice-pipeline/internal/parser"
	repo "github.com/telbill/invoice-pipeline/internal/repository"
	"github.com/telbill/invoice-pipeline/internal/scan"
	"github.com/telbill/invoice-pipeline/internal/storage"
)

// repoClient pairs an ent client with its teardown, which differs
// between the sqlite and postgres paths.
type repoClient struct {
	client  *ent.Client
	cleanup func()
}

func (r *repoClient) Close() {
	if r.cleanup != nil {
		r.cleanup()
		return
	}
	_ = r.client.Close()
}

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "invoice tree to process (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr = flag.String("from", "", "from reference date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to reference date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "relatorios.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var entc *repoClient
	if *inmem {
		c, err := repo.OpenSQLite(ctx, logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		entc = &repoClient{client: c}
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required unless --inmem is set\n")
			os.Exit(1)
		}
		c, pool, err := repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		entc = &repoClient{client: c, cleanup: func() { repo.Close(c, pool, logger) }}
	}
	defer entc.Close()

	importsRepo := repo.NewImportRepository(entc.client, logger)
	reportsRepo := repo.NewReportRepository(entc.client, logger)
	categoriesRepo := repo.NewCategoryRepository(entc.client, logger)
	auditRepo := repo.NewAuditLogRepository(entc.client, logger)
	txRunner := repo.NewEntTxRunner(entc.client, logger)

	blobs, err := storage.NewFSStore(cfg.Storage.Root)
	if err != nil {
		logger.Error("failed to open blob storage", "error", err)
		os.Exit(1)
	}

	auditor := audit.NewRecorder(auditRepo, logger)
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxOCRPages:   cfg.OCR.MaxOCRPages,
	}, logger)
	registry := parser.NewRegistry(extractor, logger)

	manager := importer.NewManager(
		importsRepo, reportsRepo, categoriesRepo, blobs,
		auditor, extractor, registry, txRunner, logger,
	)

	logger.Info("scanning invoice tree", "dir", *dir)
	files, stats, err := scan.ScanDirectory(ctx, *dir)
	if err != nil {
		logger.Error("failed to scan directory", "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"skipped", stats.Skipped,
		"failed", stats.Failed)

	counts := map[constants.ImportStatus]int{}
	for _, f := range files {
		st, msg := manager.ProcessInvoice(ctx, importer.PathSource(f.Path), &importer.Metadata{
			Year:    f.Year,
			City:    f.City,
			Carrier: f.Carrier,
			Month:   f.Month,
		}, "batch", nil)
		counts[st]++
		if st == constants.ImportStatusFailed {
			logger.Error("invoice failed", "path", f.Path, "message", msg)
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(reportsRepo, auditor, logger)
	xlsxBytes, err := exportService.ExportReportsXLSX(ctx, "batch", from, to, nil)
	if err != nil {
		logger.Error("failed to export reports", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files", len(files),
		"success", counts[constants.ImportStatusSuccess],
		"pending_review", counts[constants.ImportStatusPendingReview],
		"skipped", counts[constants.ImportStatusSkipped],
		"failed", counts[constants.ImportStatusFailed],
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files found: %d\n", len(files))
	fmt.Printf("- Imported: %d\n", counts[constants.ImportStatusSuccess])
	fmt.Printf("- Pending review: %d\n", counts[constants.ImportStatusPendingReview])
	fmt.Printf("- Skipped: %d\n", counts[constants.ImportStatusSkipped])
	fmt.Printf("- Failures: %d\n", counts[constants.ImportStatusFailed])
	fmt.Printf("- Output: %s\n", *out)
}
