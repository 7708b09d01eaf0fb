package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/audit"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/parser"
)

// Metadata carries the directory-derived attributes of an invoice file.
// Zero values fall back to the current date and placeholder city.
type Metadata struct {
	Year    int
	City    string
	Carrier string
	Month   string
}

// Manager runs the import decision tree: fingerprint, dedup, carrier
// identification, parsing and transactional persistence.
type Manager struct {
	imports    ImportStore
	reports    ReportStore
	categories CategoryStore
	blobs      BlobStore
	auditor    Auditor
	extractor  parser.TextExtractor
	registry   *parser.Registry
	tx         TxRunner
	logger     *slog.Logger
}

func NewManager(
	imports ImportStore,
	reports ReportStore,
	categories CategoryStore,
	blobs BlobStore,
	auditor Auditor,
	extractor parser.TextExtractor,
	registry *parser.Registry,
	tx TxRunner,
	logger *slog.Logger,
) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		imports:    imports,
		reports:    reports,
		categories: categories,
		blobs:      blobs,
		auditor:    auditor,
		extractor:  extractor,
		registry:   registry,
		tx:         tx,
		logger:     logger,
	}
}

// ProcessInvoice ingests one invoice file and returns the terminal import
// status plus a human-readable message. existing, when non-nil, is the
// record being reprocessed; a nil existing means a fresh file.
//
// The method never returns an error: every failure mode collapses into a
// terminal status so batch callers can keep going.
func (m *Manager) ProcessInvoice(ctx context.Context, src FileSource, meta *Metadata, actor string, existing *entity.InvoiceImport) (constants.ImportStatus, string) {
	if meta == nil {
		meta = &Metadata{}
	}

	hash, err := m.resolveHash(src, existing)
	if err != nil {
		m.logger.Error("content hash failed", "file", src.Name(), "error", err)
		msg := fmt.Sprintf("falha ao calcular o hash do arquivo: %v", err)
		m.markFailure(ctx, existing, constants.ErrCodeHash, msg)
		return constants.ImportStatusFailed, msg
	}

	rec := existing
	if rec == nil {
		found, err := m.imports.FindByHash(ctx, hash)
		if err != nil {
			m.logger.Error("hash lookup failed", "file", src.Name(), "error", err)
			return constants.ImportStatusFailed, "falha ao consultar faturas existentes"
		}
		rec = found
	}

	// Same content already backing an active report: nothing to do.
	if rec != nil && rec.HasActiveReport() {
		if rec == existing {
			rec.Status = constants.ImportStatusSkipped
			code := constants.ErrCodeDuplicateActive
			rec.ErrorCode = &code
			rec.ErrorMessage = strPtr("fatura já importada com relatório ativo")
			if _, err := m.imports.Update(ctx, rec); err != nil {
				m.logger.Error("skip mark failed", "import_id", rec.ID, "error", err)
			}
		}
		return constants.ImportStatusSkipped, "fatura já importada com relatório ativo"
	}

	path, cleanup, err := Materialize(src)
	if err != nil {
		m.logger.Error("materialize failed", "file", src.Name(), "error", err)
		msg := fmt.Sprintf("falha ao ler o conteúdo do arquivo: %v", err)
		m.markFailure(ctx, rec, constants.ErrCodeExtractionFailed, msg)
		m.cascadeReportFailure(ctx, rec)
		return constants.ImportStatusFailed, msg
	}
	defer cleanup()

	carrier := constants.NormalizeCarrier(meta.Carrier)
	if carrier == "" {
		// Best effort: sample the text layer and look for carrier tokens.
		// A failed sample just leaves the carrier unresolved.
		sample := m.extractor.Extract(ctx, path)
		carrier = parser.IdentifyCarrier(sample.Text)
	}

	p := m.registry.For(carrier)
	parsed, err := p.Parse(ctx, path)
	if err != nil {
		m.logger.Error("invoice parse failed", "file", src.Name(), "carrier", carrier, "error", err)
		msg := fmt.Sprintf("falha na extração de dados da fatura: %v", err)
		m.markFailure(ctx, rec, constants.ErrCodeExtractionFailed, msg)
		m.cascadeReportFailure(ctx, rec)
		return constants.ImportStatusFailed, msg
	}

	status := constants.ImportStatusSuccess
	msg := "fatura importada com sucesso"
	var errCode, errMsg *string
	if parsed.MissingRequired() {
		status = constants.ImportStatusPendingReview
		msg = "dados obrigatórios ausentes, revisão manual necessária"
		errCode = strPtr(constants.ErrCodeMissingRequiredData)
		errMsg = strPtr(msg)
	}

	finalCarrier := carrier
	if finalCarrier == "" {
		finalCarrier = constants.CarrierOther
	}

	saved, err := m.persist(ctx, src, meta, actor, rec, hash, finalCarrier, parsed, status, errCode, errMsg)
	if err != nil {
		m.logger.Error("invoice persist failed", "file", src.Name(), "error", err)
		failMsg := fmt.Sprintf("falha ao gravar a fatura: %v", err)
		m.markFailure(ctx, rec, constants.ErrCodeDBPersistence, failMsg)
		return constants.ImportStatusFailed, failMsg
	}
	if existing != nil {
		*existing = *saved
	}

	m.logger.Info("invoice processed",
		"file", src.Name(),
		"import_id", saved.ID,
		"carrier", finalCarrier,
		"status", status,
		"confidence", parsed.Confidence,
	)
	return status, msg
}

func (m *Manager) resolveHash(src FileSource, existing *entity.InvoiceImport) (string, error) {
	if existing != nil && existing.FileHash != "" {
		return existing.FileHash, nil
	}
	return ContentHash(src)
}

// persist writes the record, the payload blob and the report link inside
// a single transaction. A lost create race on file_hash falls back to
// updating the winner.
func (m *Manager) persist(
	ctx context.Context,
	src FileSource,
	meta *Metadata,
	actor string,
	rec *entity.InvoiceImport,
	hash, carrier string,
	parsed parser.Result,
	status constants.ImportStatus,
	errCode, errMsg *string,
) (*entity.InvoiceImport, error) {
	now := time.Now()
	year := meta.Year
	if year == 0 {
		year = now.Year()
	}
	city := meta.City
	if city == "" {
		city = "N/A"
	}
	month := meta.Month
	if month == "" {
		month = constants.MonthName(int(now.Month()))
	}
	total := decimal.Zero
	if parsed.TotalValue != nil {
		total = *parsed.TotalValue
	}

	apply := func(r *entity.InvoiceImport) {
		r.FilePath = src.Name()
		r.FileHash = hash
		r.Year = year
		r.City = city
		r.Carrier = carrier
		r.Month = month
		r.TotalValue = total
		r.DueDate = parsed.DueDate
		r.ConfidenceScore = parsed.Confidence
		r.Status = status
		r.ErrorCode = errCode
		r.ErrorMessage = errMsg
		if parsed.InvoiceNumber != "" {
			r.InvoiceNumber = strPtr(parsed.InvoiceNumber)
		}
	}

	var saved *entity.InvoiceImport
	err := m.tx.WithinTx(ctx, func(ctx context.Context) error {
		target := rec
		var before *entity.InvoiceImport
		if target == nil {
			fresh := &entity.InvoiceImport{}
			apply(fresh)
			created, err := m.imports.Create(ctx, fresh)
			if errors.Is(err, common.ErrConflict) {
				// Another worker imported the same content first.
				winner, lerr := m.imports.FindByHash(ctx, hash)
				if lerr != nil {
					return lerr
				}
				if winner == nil {
					return err
				}
				target = winner
			} else if err != nil {
				return err
			} else {
				saved = created
			}
		}
		if target != nil {
			snapshot := *target
			before = &snapshot
			apply(target)
			updated, err := m.imports.Update(ctx, target)
			if err != nil {
				return err
			}
			saved = updated
		}

		if src.Uploaded() {
			rc, err := src.Open()
			if err != nil {
				return err
			}
			stored, err := m.blobs.Write(ctx, hash+".pdf", rc)
			cerr := rc.Close()
			if err != nil {
				return err
			}
			if cerr != nil {
				return cerr
			}
			saved.FilePath = stored
			if saved, err = m.imports.Update(ctx, saved); err != nil {
				return err
			}
		}

		if status == constants.ImportStatusSuccess {
			if err := m.linkReport(ctx, saved); err != nil {
				return err
			}
		}

		action := constants.AuditActionImport
		var beforeSnap []byte
		if before != nil {
			action = constants.AuditActionReprocess
			beforeSnap = audit.Snapshot(before)
		}
		m.auditor.Log(ctx, actor, action, "InvoiceImport", saved.ID.String(), beforeSnap, audit.Snapshot(saved))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// markFailure records a terminal failure on rec when one exists. Lookups
// that never produced a record have nothing to mark.
func (m *Manager) markFailure(ctx context.Context, rec *entity.InvoiceImport, code, msg string) {
	if rec == nil {
		return
	}
	rec.Status = constants.ImportStatusFailed
	rec.ErrorCode = &code
	rec.ErrorMessage = &msg
	if err := m.imports.SetStatus(ctx, rec.ID, constants.ImportStatusFailed, &code, &msg); err != nil {
		m.logger.Error("failure mark failed", "import_id", rec.ID, "error", err)
	}
}

func (m *Manager) cascadeReportFailure(ctx context.Context, rec *entity.InvoiceImport) {
	if rec == nil || rec.Report == nil {
		return
	}
	rec.Report.Status = constants.ReportStatusFailed
	if _, err := m.reports.Update(ctx, rec.Report); err != nil {
		m.logger.Error("report failure cascade failed", "report_id", rec.Report.ID, "error", err)
	}
}

func strPtr(s string) *string { return &s }
