package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/telbill/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/telbill/invoice-pipeline/internal/async"
	"github.com/telbill/invoice-pipeline/internal/audit"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/export"
	"github.com/telbill/invoice-pipeline/internal/importer"
	"github.com/telbill/invoice-pipeline/internal/ocr"
	"github.com/telbill/invoice-pipeline/internal/parser"
	repo "github.com/telbill/invoice-pipeline/internal/repository"
	"github.com/telbill/invoice-pipeline/internal/scan"
	svc "github.com/telbill/invoice-pipeline/internal/server"
	"github.com/telbill/invoice-pipeline/internal/storage"
	"github.com/telbill/invoice-pipeline/internal/workflow"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
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
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	importsRepo := repo.NewImportRepository(entc, logger)
	reportsRepo := repo.NewReportRepository(entc, logger)
	categoriesRepo := repo.NewCategoryRepository(entc, logger)
	auditRepo := repo.NewAuditLogRepository(entc, logger)
	txRunner := repo.NewEntTxRunner(entc, logger)

	blobs, err := storage.NewFSStore(cfg.Storage.Root)
	if err != nil {
		logger.Error("failed to open blob storage", "root", cfg.Storage.Root, "error", err)
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
	reviewer := importer.NewReviewer(importsRepo, reportsRepo, categoriesRepo, auditor, txRunner, logger)
	reclaimer := importer.NewReclaimer(importsRepo, cfg.Queue.StaleTimeout, logger)
	flow := workflow.NewReportWorkflow(reportsRepo, auditor, txRunner, logger)
	exporter := export.NewService(reportsRepo, auditor, logger)

	processor := async.NewImportProcessor(importsRepo, manager, logger)
	queue := async.NewImportQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	importService := svc.NewImportService(manager, importsRepo, queue, logger)
	v1.RegisterImportServiceServer(grpcServer, importService)
	reviewService := svc.NewReviewService(importsRepo, reviewer, reclaimer, logger)
	v1.RegisterReviewServiceServer(grpcServer, reviewService)
	reportService := svc.NewReportService(reportsRepo, reportsRepo, flow, exporter, logger)
	v1.RegisterReportServiceServer(grpcServer, reportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Background sweep so imports orphaned by a dead worker are failed
	// out even when nobody is reading the review queue.
	go func() {
		ticker := time.NewTicker(cfg.Queue.StaleTimeout)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := reclaimer.Sweep(ctx); err != nil {
					logger.Error("stale import sweep failed", "error", err)
				}
			}
		}
	}()

	// Watch the invoice trees when configured: every new file runs through
	// the same decision tree the RPC import path uses.
	if cfg.Scan.WatchEnabled {
		for _, root := range cfg.Scan.Roots {
			events, errs, err := scan.StartWatcher(ctx, scan.WatchConfig{
				Root:        root,
				InitialScan: cfg.Scan.InitialScan,
				Debounce:    cfg.Scan.Debounce,
			})
			if err != nil {
				logger.Error("failed to start invoice watcher", "root", root, "error", err)
				os.Exit(1)
			}
			go func(root string, events <-chan string, errs <-chan error) {
				for {
					select {
					case <-ctx.Done():
						return
					case path, ok := <-events:
						if !ok {
							return
						}
						meta := scan.MetaFromPath(root, path)
						st, msg := manager.ProcessInvoice(ctx, importer.PathSource(meta.Path), &importer.Metadata{
							Year:    meta.Year,
							City:    meta.City,
							Carrier: meta.Carrier,
							Month:   meta.Month,
						}, "watcher", nil)
						logger.Info("watched file processed", "path", path, "status", st, "message", msg)
					case werr, ok := <-errs:
						if ok && werr != nil {
							logger.Error("watcher error", "error", werr)
						}
					}
				}
			}(root, events, errs)
			logger.Info("invoice watcher running", "root", root)
		}
	}

	logger.Info("invoicesd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
