package async

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/importer"
	"github.com/telbill/invoice-pipeline/internal/ocr"
)

// ImportProcessor runs queued imports through the manager. It owns the
// in-flight status bookkeeping: PROCESSING on pickup, OCR_RUNNING while
// the fallback engine grinds, and a forced CRITICAL_TASK_FAILURE if the
// pipeline panics so no record is left parked in an in-progress status.
type ImportProcessor struct {
	imports importer.ImportStore
	manager *importer.Manager
	logger  *slog.Logger
}

func NewImportProcessor(imports importer.ImportStore, manager *importer.Manager, logger *slog.Logger) *ImportProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportProcessor{imports: imports, manager: manager, logger: logger}
}

func (p *ImportProcessor) Process(ctx context.Context, job Job) (err error) {
	rec, err := p.imports.Get(ctx, job.ImportID)
	if err != nil {
		return fmt.Errorf("load import %s: %w", job.ImportID, err)
	}
	if rec == nil {
		return fmt.Errorf("import %s not found", job.ImportID)
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic while processing import", "import_id", job.ImportID, "panic", r)
			code := constants.ErrCodeCriticalTaskFailure
			msg := fmt.Sprintf("falha crítica no processamento: %v", r)
			if serr := p.imports.SetStatus(ctx, job.ImportID, constants.ImportStatusFailed, &code, &msg); serr != nil {
				p.logger.Error("failed to mark critical failure", "import_id", job.ImportID, "error", serr)
			}
			err = fmt.Errorf("critical failure: %v", r)
		}
	}()

	if err := p.imports.SetStatus(ctx, rec.ID, constants.ImportStatusProcessing, nil, nil); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}
	rec.Status = constants.ImportStatusProcessing

	ctx = ocr.WithEngageNotify(ctx, func() {
		if serr := p.imports.SetStatus(ctx, rec.ID, constants.ImportStatusOCRRunning, nil, nil); serr != nil {
			p.logger.Warn("failed to mark ocr running", "import_id", rec.ID, "error", serr)
		}
	})

	meta := metaFromRecord(rec)
	status, msg := p.manager.ProcessInvoice(ctx, importer.PathSource(rec.FilePath), meta, job.Actor, rec)
	p.logger.Info("import finished", "import_id", rec.ID, "status", status, "message", msg)
	return nil
}

func metaFromRecord(rec *entity.InvoiceImport) *importer.Metadata {
	return &importer.Metadata{
		Year:    rec.Year,
		City:    rec.City,
		Carrier: rec.Carrier,
		Month:   rec.Month,
	}
}
