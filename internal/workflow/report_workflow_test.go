package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/audit"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/entity"
)

type fakeReportStore struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*entity.Report
}

func (s *fakeReportStore) Get(_ context.Context, id uuid.UUID) (*entity.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id], nil
}

func (s *fakeReportStore) Create(_ context.Context, rep *entity.Report) (*entity.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rep.ID = uuid.New()
	s.byID[rep.ID] = rep
	return rep, nil
}

func (s *fakeReportStore) Update(_ context.Context, rep *entity.Report) (*entity.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[rep.ID] = rep
	return rep, nil
}

type loggedEntry struct {
	actor  string
	action constants.AuditAction
	after  json.RawMessage
}

type fakeAuditor struct {
	mu      sync.Mutex
	entries []loggedEntry
}

func (a *fakeAuditor) Log(_ context.Context, actor string, action constants.AuditAction, _, _ string, _, after json.RawMessage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, loggedEntry{actor: actor, action: action, after: after})
}

type nopTx struct{}

func (nopTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newWorkflow() (*ReportWorkflow, *fakeReportStore, *fakeAuditor) {
	reports := &fakeReportStore{byID: map[uuid.UUID]*entity.Report{}}
	auditor := &fakeAuditor{}
	return NewReportWorkflow(reports, auditor, nopTx{}, slog.Default()), reports, auditor
}

func seedReport(t *testing.T, s *fakeReportStore, status constants.ReportStatus) *entity.Report {
	t.Helper()
	rep, err := s.Create(context.Background(), &entity.Report{Title: "FATURA VIVO - Janeiro/2025", Status: status})
	if err != nil {
		t.Fatalf("seed report: %v", err)
	}
	return rep
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from constants.ReportStatus
		to   constants.ReportStatus
		ok   bool
	}{
		{constants.ReportStatusPending, constants.ReportStatusReview, true},
		{constants.ReportStatusPending, constants.ReportStatusCanceled, true},
		{constants.ReportStatusPending, constants.ReportStatusApproved, false},
		{constants.ReportStatusReview, constants.ReportStatusApproved, true},
		{constants.ReportStatusReview, constants.ReportStatusPending, true},
		{constants.ReportStatusFailed, constants.ReportStatusPending, true},
		{constants.ReportStatusApproved, constants.ReportStatusPending, false},
		{constants.ReportStatusCanceled, constants.ReportStatusReview, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.ok {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestTransition(t *testing.T) {
	ctx := context.Background()

	t.Run("approval audits with the APPROVE action", func(t *testing.T) {
		w, reports, auditor := newWorkflow()
		rep := seedReport(t, reports, constants.ReportStatusReview)

		out, err := w.Transition(ctx, rep.ID, "approver", constants.ReportStatusApproved, "")
		if err != nil {
			t.Fatalf("transition: %v", err)
		}
		if out.Status != constants.ReportStatusApproved {
			t.Fatalf("expected APPROVED, got %s", out.Status)
		}
		if len(auditor.entries) != 1 || auditor.entries[0].action != constants.AuditActionApprove {
			t.Fatalf("expected one APPROVE entry, got %+v", auditor.entries)
		}
	})

	t.Run("cancel without comment is rejected", func(t *testing.T) {
		w, reports, auditor := newWorkflow()
		rep := seedReport(t, reports, constants.ReportStatusPending)

		_, err := w.Transition(ctx, rep.ID, "approver", constants.ReportStatusCanceled, "")
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
		if got, _ := reports.Get(ctx, rep.ID); got.Status != constants.ReportStatusPending {
			t.Fatalf("status must not move, got %s", got.Status)
		}
		if len(auditor.entries) != 0 {
			t.Fatal("rejected transition must not audit")
		}
	})

	t.Run("cancel comment lands in the audit after-state", func(t *testing.T) {
		w, reports, auditor := newWorkflow()
		rep := seedReport(t, reports, constants.ReportStatusPending)

		out, err := w.Transition(ctx, rep.ID, "approver", constants.ReportStatusCanceled, "valor divergente")
		if err != nil {
			t.Fatalf("transition: %v", err)
		}
		if out.Status != constants.ReportStatusCanceled {
			t.Fatalf("expected CANCELED, got %s", out.Status)
		}
		if len(auditor.entries) != 1 || auditor.entries[0].action != constants.AuditActionReject {
			t.Fatalf("expected one REJECT entry, got %+v", auditor.entries)
		}

		var after map[string]any
		if err := json.Unmarshal(auditor.entries[0].after, &after); err != nil {
			t.Fatalf("after-state not an object: %v", err)
		}
		if after[audit.CommentKey] != "valor divergente" {
			t.Fatalf("comment missing from after-state: %v", after)
		}
	})

	t.Run("terminal statuses reject further moves", func(t *testing.T) {
		w, reports, _ := newWorkflow()
		rep := seedReport(t, reports, constants.ReportStatusApproved)

		_, err := w.Transition(ctx, rep.ID, "approver", constants.ReportStatusReview, "")
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
		var appErr *common.AppError
		if !errors.As(err, &appErr) || appErr.Code != "INVALID_TRANSITION" {
			t.Fatalf("expected INVALID_TRANSITION, got %v", err)
		}
	})

	t.Run("unknown report", func(t *testing.T) {
		w, _, _ := newWorkflow()

		_, err := w.Transition(ctx, uuid.New(), "approver", constants.ReportStatusReview, "")
		if !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
