package server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/telbill/invoice-pipeline/constants"
	v1 "github.com/telbill/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/importer"
	"github.com/telbill/invoice-pipeline/internal/utils"
)

type ReviewService struct {
	v1.UnimplementedReviewServiceServer
	imports   importer.ImportStore
	reviewer  *importer.Reviewer
	reclaimer *importer.Reclaimer
	logger    *slog.Logger
}

func NewReviewService(imports importer.ImportStore, reviewer *importer.Reviewer, reclaimer *importer.Reclaimer, logger *slog.Logger) *ReviewService {
	return &ReviewService{imports: imports, reviewer: reviewer, reclaimer: reclaimer, logger: logger}
}

// ListPending implements v1.ReviewServiceServer. Stale in-flight imports
// are reclaimed first so the inbox never shows phantom work.
func (s *ReviewService) ListPending(ctx context.Context, _ *v1.ListPendingRequest) (*v1.ListPendingResponse, error) {
	reclaimed, err := s.reclaimer.Sweep(ctx)
	if err != nil {
		s.logger.Error("stale sweep failed", "error", err)
	}

	recs, err := s.imports.ListByStatuses(ctx, constants.ReviewQueueStatuses)
	if err != nil {
		s.logger.Error("list pending failed", "error", err)
		return nil, status.Error(codes.Internal, "list pending imports failed")
	}

	out := &v1.ListPendingResponse{
		Imports:   make([]*v1.InvoiceImport, 0, len(recs)),
		Reclaimed: uint32(reclaimed),
	}
	for _, rec := range recs {
		out.Imports = append(out.Imports, utils.ToPBImport(rec))
	}
	return out, nil
}

func (s *ReviewService) ConfirmInvoice(ctx context.Context, req *v1.ConfirmInvoiceRequest) (*v1.ConfirmInvoiceResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetImportId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "import_id must be a UUID")
	}

	if err := validateCorrection(req); err != nil {
		s.logger.Error("invalid correction payload", "import_id", id, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "correction: %v", err)
	}

	corr, err := correctionFromRequest(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "correction: %v", err)
	}
	actor := actorOrDefault(ctx, req.GetActor())

	rec, err := s.reviewer.ConfirmInvoice(ctx, id, actor, corr)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "import not found")
		}
		s.logger.Error("confirm invoice failed", "import_id", id, "error", err)
		return nil, status.Error(codes.Internal, "confirm invoice failed")
	}
	return &v1.ConfirmInvoiceResponse{Import: utils.ToPBImport(rec)}, nil
}

func correctionFromRequest(req *v1.ConfirmInvoiceRequest) (importer.Correction, error) {
	var corr importer.Correction
	if v := strings.TrimSpace(req.GetTotalValue()); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return corr, err
		}
		corr.TotalValue = &d
	}
	if v := strings.TrimSpace(req.GetDueDate()); v != "" {
		t, err := utils.ParseYMD(v)
		if err != nil {
			return corr, err
		}
		corr.DueDate = &t
	}
	if v := strings.TrimSpace(req.GetInvoiceNumber()); v != "" {
		corr.InvoiceNumber = &v
	}
	if v := strings.TrimSpace(req.GetCarrier()); v != "" {
		corr.Carrier = &v
	}
	return corr, nil
}

// validateCorrection checks the wire format of the correction fields
// before any parsing happens.
func validateCorrection(req *v1.ConfirmInvoiceRequest) error {
	payload, err := json.Marshal(map[string]any{
		"total_value":    req.GetTotalValue(),
		"due_date":       req.GetDueDate(),
		"invoice_number": req.GetInvoiceNumber(),
		"carrier":        req.GetCarrier(),
	})
	if err != nil {
		return err
	}
	return ValidateJSONAgainstSchema(correctionSchema, payload)
}
