package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/telbill/invoice-pipeline/constants"
	v1 "github.com/telbill/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/export"
	"github.com/telbill/invoice-pipeline/internal/importer"
	"github.com/telbill/invoice-pipeline/internal/utils"
	"github.com/telbill/invoice-pipeline/internal/workflow"
)

type ReportService struct {
	v1.UnimplementedReportServiceServer
	reports  importer.ReportStore
	lister   export.ReportLister
	flow     *workflow.ReportWorkflow
	exporter *export.Service
	logger   *slog.Logger
}

func NewReportService(reports importer.ReportStore, lister export.ReportLister, flow *workflow.ReportWorkflow, exporter *export.Service, logger *slog.Logger) *ReportService {
	return &ReportService{reports: reports, lister: lister, flow: flow, exporter: exporter, logger: logger}
}

func (s *ReportService) GetReport(ctx context.Context, req *v1.GetReportRequest) (*v1.GetReportResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetReportId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "report_id must be a UUID")
	}
	rep, err := s.reports.Get(ctx, id)
	if err != nil {
		s.logger.Error("get report failed", "report_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get report failed")
	}
	if rep == nil {
		return nil, status.Error(codes.NotFound, "report not found")
	}
	return &v1.GetReportResponse{Report: utils.ToPBReport(rep)}, nil
}

func (s *ReportService) ListReports(ctx context.Context, req *v1.ListReportsRequest) (*v1.ListReportsResponse, error) {
	from, to, statuses, err := reportFilter(req.GetFromDate(), req.GetToDate(), req.GetStatuses())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	reps, err := s.lister.ListReports(ctx, from, to, statuses)
	if err != nil {
		s.logger.Error("list reports failed", "error", err)
		return nil, status.Error(codes.Internal, "list reports failed")
	}
	out := &v1.ListReportsResponse{Reports: make([]*v1.Report, 0, len(reps))}
	for _, rep := range reps {
		out.Reports = append(out.Reports, utils.ToPBReport(rep))
	}
	return out, nil
}

func (s *ReportService) TransitionReport(ctx context.Context, req *v1.TransitionReportRequest) (*v1.TransitionReportResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetReportId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "report_id must be a UUID")
	}
	target := constants.ReportStatus(strings.ToUpper(strings.TrimSpace(req.GetTargetStatus())))
	actor := actorOrDefault(ctx, req.GetActor())

	rep, err := s.flow.Transition(ctx, id, actor, target, strings.TrimSpace(req.GetComment()))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "report not found")
		}
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		s.logger.Error("report transition failed", "report_id", id, "target", target, "error", err)
		return nil, status.Error(codes.Internal, "report transition failed")
	}
	return &v1.TransitionReportResponse{Report: utils.ToPBReport(rep)}, nil
}

func (s *ReportService) ExportReports(ctx context.Context, req *v1.ExportReportsRequest) (*v1.ExportReportsResponse, error) {
	from, to, statuses, err := reportFilter(req.GetFromDate(), req.GetToDate(), req.GetStatuses())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	actor := actorOrDefault(ctx, req.GetActor())

	xlsx, err := s.exporter.ExportReportsXLSX(ctx, actor, from, to, statuses)
	if err != nil {
		s.logger.Error("export reports failed", "error", err)
		return nil, status.Error(codes.Internal, "export reports failed")
	}
	return &v1.ExportReportsResponse{Xlsx: xlsx}, nil
}

// reportFilter parses the shared date-window and status filter fields.
func reportFilter(fromStr, toStr string, rawStatuses []string) (from, to *time.Time, statuses []constants.ReportStatus, err error) {
	if v := strings.TrimSpace(fromStr); v != "" {
		t, perr := utils.ParseYMD(v)
		if perr != nil {
			return nil, nil, nil, fmt.Errorf("invalid from_date: %w", perr)
		}
		from = &t
	}
	if v := strings.TrimSpace(toStr); v != "" {
		t, perr := utils.ParseYMD(v)
		if perr != nil {
			return nil, nil, nil, fmt.Errorf("invalid to_date: %w", perr)
		}
		to = &t
	}
	statuses = make([]constants.ReportStatus, 0, len(rawStatuses))
	for _, st := range rawStatuses {
		statuses = append(statuses, constants.ReportStatus(strings.ToUpper(strings.TrimSpace(st))))
	}
	return from, to, statuses, nil
}
