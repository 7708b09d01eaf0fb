package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/gen/ent"
	"github.com/telbill/invoice-pipeline/gen/ent/report"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/utils"
)

type ReportRepository struct {
	entc   *ent.Client
	logger *slog.Logger
}

func NewReportRepository(entc *ent.Client, logger *slog.Logger) *ReportRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportRepository{entc: entc, logger: logger}
}

func (r *ReportRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	row, err := clientFor(ctx, r.entc).Report.Query().
		Where(report.ID(id)).
		WithCategory().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get report", "report_id", id, "error", err)
		return nil, err
	}
	return utils.ToReport(row), nil
}

func (r *ReportRepository) Create(ctx context.Context, rep *entity.Report) (*entity.Report, error) {
	row, err := clientFor(ctx, r.entc).Report.Create().
		SetTitle(rep.Title).
		SetReferenceDate(rep.ReferenceDate).
		SetNillableDueDate(rep.DueDate).
		SetTotalValue(rep.TotalValue).
		SetStatus(string(rep.Status)).
		SetCategoryID(rep.CategoryID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create report", "title", rep.Title, "error", err)
		return nil, err
	}
	out := utils.ToReport(row)
	out.CategoryName = rep.CategoryName
	return out, nil
}

func (r *ReportRepository) Update(ctx context.Context, rep *entity.Report) (*entity.Report, error) {
	b := clientFor(ctx, r.entc).Report.UpdateOneID(rep.ID).
		SetTitle(rep.Title).
		SetReferenceDate(rep.ReferenceDate).
		SetTotalValue(rep.TotalValue).
		SetStatus(string(rep.Status)).
		SetCategoryID(rep.CategoryID)
	if rep.DueDate != nil {
		b.SetDueDate(*rep.DueDate)
	} else {
		b.ClearDueDate()
	}
	row, err := b.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update report", "report_id", rep.ID, "error", err)
		return nil, err
	}
	out := utils.ToReport(row)
	out.CategoryName = rep.CategoryName
	return out, nil
}

func (r *ReportRepository) ListReports(ctx context.Context, from, to *time.Time, statuses []constants.ReportStatus) ([]*entity.Report, error) {
	q := clientFor(ctx, r.entc).Report.Query().WithCategory()
	if from != nil {
		q = q.Where(report.ReferenceDateGTE(*from))
	}
	if to != nil {
		q = q.Where(report.ReferenceDateLTE(*to))
	}
	if len(statuses) > 0 {
		ss := make([]string, len(statuses))
		for i, s := range statuses {
			ss[i] = string(s)
		}
		q = q.Where(report.StatusIn(ss...))
	}
	rows, err := q.Order(ent.Asc(report.FieldReferenceDate)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list reports", "error", err)
		return nil, err
	}
	out := make([]*entity.Report, len(rows))
	for i, row := range rows {
		out[i] = utils.ToReport(row)
	}
	return out, nil
}
