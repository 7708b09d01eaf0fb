package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/audit"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/importer"
)

// transitions is the full report state machine. APPROVED and CANCELED
// are terminal.
var transitions = map[constants.ReportStatus][]constants.ReportStatus{
	constants.ReportStatusPending: {constants.ReportStatusReview, constants.ReportStatusCanceled},
	constants.ReportStatusReview:  {constants.ReportStatusApproved, constants.ReportStatusCanceled, constants.ReportStatusPending},
	constants.ReportStatusFailed:  {constants.ReportStatusPending, constants.ReportStatusReview},
}

// CanTransition reports whether a report may move from one status to
// another.
func CanTransition(from, to constants.ReportStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ReportWorkflow advances reports through their lifecycle with audit
// snapshots on every change.
type ReportWorkflow struct {
	reports importer.ReportStore
	auditor importer.Auditor
	tx      importer.TxRunner
	logger  *slog.Logger
}

func NewReportWorkflow(reports importer.ReportStore, auditor importer.Auditor, tx importer.TxRunner, logger *slog.Logger) *ReportWorkflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWorkflow{reports: reports, auditor: auditor, tx: tx, logger: logger}
}

// Transition moves a report to the target status. Cancellation requires
// a non-empty comment, which is preserved in the audit trail rather than
// on the report itself.
func (w *ReportWorkflow) Transition(ctx context.Context, reportID uuid.UUID, actor string, target constants.ReportStatus, comment string) (*entity.Report, error) {
	if target == constants.ReportStatusCanceled && comment == "" {
		return nil, common.NewAppError("COMMENT_REQUIRED", "cancelamento exige um comentário", common.ErrInvalidInput)
	}

	var out *entity.Report
	err := w.tx.WithinTx(ctx, func(ctx context.Context) error {
		rep, err := w.reports.Get(ctx, reportID)
		if err != nil {
			return err
		}
		if rep == nil {
			return common.ErrNotFound
		}
		if !CanTransition(rep.Status, target) {
			return common.NewAppError("INVALID_TRANSITION",
				fmt.Sprintf("transição inválida: %s -> %s", rep.Status, target), common.ErrInvalidInput)
		}

		before := *rep
		rep.Status = target
		saved, err := w.reports.Update(ctx, rep)
		if err != nil {
			return err
		}
		out = saved

		after := audit.Snapshot(saved)
		if comment != "" {
			after = audit.SnapshotWith(saved, map[string]any{audit.CommentKey: comment})
		}
		w.auditor.Log(ctx, actor, actionFor(target), "Report", saved.ID.String(), audit.Snapshot(&before), after)
		return nil
	})
	if err != nil {
		return nil, err
	}
	w.logger.Info("report transitioned", "report_id", reportID, "to", target, "actor", actor)
	return out, nil
}

func actionFor(target constants.ReportStatus) constants.AuditAction {
	switch target {
	case constants.ReportStatusApproved:
		return constants.AuditActionApprove
	case constants.ReportStatusCanceled:
		return constants.AuditActionReject
	default:
		return constants.AuditActionUpdate
	}
}
