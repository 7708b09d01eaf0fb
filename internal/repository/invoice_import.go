package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/gen/ent"
	"github.com/telbill/invoice-pipeline/gen/ent/invoiceimport"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/utils"
)

type ImportRepository struct {
	entc   *ent.Client
	logger *slog.Logger
}

func NewImportRepository(entc *ent.Client, logger *slog.Logger) *ImportRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportRepository{entc: entc, logger: logger}
}

func (r *ImportRepository) Get(ctx context.Context, id uuid.UUID) (*entity.InvoiceImport, error) {
	row, err := clientFor(ctx, r.entc).InvoiceImport.Query().
		Where(invoiceimport.ID(id)).
		WithReport().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get import", "import_id", id, "error", err)
		return nil, err
	}
	return utils.ToInvoiceImport(row), nil
}

func (r *ImportRepository) FindByHash(ctx context.Context, hash string) (*entity.InvoiceImport, error) {
	row, err := clientFor(ctx, r.entc).InvoiceImport.Query().
		Where(invoiceimport.FileHash(hash)).
		WithReport().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to look up import by hash", "error", err)
		return nil, err
	}
	return utils.ToInvoiceImport(row), nil
}

func (r *ImportRepository) Create(ctx context.Context, rec *entity.InvoiceImport) (*entity.InvoiceImport, error) {
	b := clientFor(ctx, r.entc).InvoiceImport.Create().
		SetFilePath(rec.FilePath).
		SetFileHash(rec.FileHash).
		SetYear(rec.Year).
		SetCity(rec.City).
		SetCarrier(rec.Carrier).
		SetMonth(rec.Month).
		SetNillableInvoiceNumber(rec.InvoiceNumber).
		SetNillableDueDate(rec.DueDate).
		SetTotalValue(rec.TotalValue).
		SetStatus(string(rec.Status)).
		SetNillableErrorCode(rec.ErrorCode).
		SetNillableErrorMessage(rec.ErrorMessage).
		SetConfidenceScore(rec.ConfidenceScore).
		SetNillableReportID(rec.ReportID)

	row, err := b.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: file_hash %s", common.ErrConflict, rec.FileHash)
		}
		r.logger.Error("failed to create import", "file", rec.FilePath, "error", err)
		return nil, err
	}
	out := utils.ToInvoiceImport(row)
	out.Report = rec.Report
	return out, nil
}

func (r *ImportRepository) Update(ctx context.Context, rec *entity.InvoiceImport) (*entity.InvoiceImport, error) {
	b := clientFor(ctx, r.entc).InvoiceImport.UpdateOneID(rec.ID).
		SetFilePath(rec.FilePath).
		SetFileHash(rec.FileHash).
		SetYear(rec.Year).
		SetCity(rec.City).
		SetCarrier(rec.Carrier).
		SetMonth(rec.Month).
		SetTotalValue(rec.TotalValue).
		SetStatus(string(rec.Status)).
		SetConfidenceScore(rec.ConfidenceScore)

	if rec.InvoiceNumber != nil {
		b.SetInvoiceNumber(*rec.InvoiceNumber)
	} else {
		b.ClearInvoiceNumber()
	}
	if rec.DueDate != nil {
		b.SetDueDate(*rec.DueDate)
	} else {
		b.ClearDueDate()
	}
	if rec.ErrorCode != nil {
		b.SetErrorCode(*rec.ErrorCode)
	} else {
		b.ClearErrorCode()
	}
	if rec.ErrorMessage != nil {
		b.SetErrorMessage(*rec.ErrorMessage)
	} else {
		b.ClearErrorMessage()
	}
	if rec.ReportID != nil {
		b.SetReportID(*rec.ReportID)
	} else {
		b.ClearReportID()
	}

	row, err := b.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: file_hash %s", common.ErrConflict, rec.FileHash)
		}
		r.logger.Error("failed to update import", "import_id", rec.ID, "error", err)
		return nil, err
	}
	out := utils.ToInvoiceImport(row)
	out.Report = rec.Report
	return out, nil
}

func (r *ImportRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.ImportStatus, errCode, errMsg *string) error {
	b := clientFor(ctx, r.entc).InvoiceImport.UpdateOneID(id).
		SetStatus(string(status))
	if errCode != nil {
		b.SetErrorCode(*errCode)
	} else {
		b.ClearErrorCode()
	}
	if errMsg != nil {
		b.SetErrorMessage(*errMsg)
	} else {
		b.ClearErrorMessage()
	}
	if err := b.Exec(ctx); err != nil {
		r.logger.Error("failed to set import status", "import_id", id, "status", status, "error", err)
		return err
	}
	return nil
}

func (r *ImportRepository) ListByStatuses(ctx context.Context, statuses []constants.ImportStatus) ([]*entity.InvoiceImport, error) {
	rows, err := clientFor(ctx, r.entc).InvoiceImport.Query().
		Where(invoiceimport.StatusIn(constants.ImportStatusStrings(statuses)...)).
		WithReport().
		Order(ent.Desc(invoiceimport.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list imports", "error", err)
		return nil, err
	}
	out := make([]*entity.InvoiceImport, len(rows))
	for i, row := range rows {
		out[i] = utils.ToInvoiceImport(row)
	}
	return out, nil
}

func (r *ImportRepository) ReclaimStale(ctx context.Context, statuses []constants.ImportStatus, before time.Time, errCode, errMsg string) (int, error) {
	n, err := clientFor(ctx, r.entc).InvoiceImport.Update().
		Where(
			invoiceimport.StatusIn(constants.ImportStatusStrings(statuses)...),
			invoiceimport.UpdatedAtLT(before),
		).
		SetStatus(string(constants.ImportStatusFailed)).
		SetErrorCode(errCode).
		SetErrorMessage(errMsg).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to reclaim stale imports", "error", err)
		return 0, err
	}
	return n, nil
}
