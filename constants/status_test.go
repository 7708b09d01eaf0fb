package constants

import "testing"

func TestReviewQueueStatuses(t *testing.T) {
	queued := map[ImportStatus]bool{}
	for _, s := range ReviewQueueStatuses {
		queued[s] = true
	}

	// A job the reclaimer just failed out must still show up on the
	// very listing that triggered the sweep.
	for _, s := range []ImportStatus{ImportStatusFailed, ImportStatusSkipped, ImportStatusPendingReview} {
		if !queued[s] {
			t.Errorf("%s missing from the review queue listing", s)
		}
	}
	if queued[ImportStatusSuccess] {
		t.Error("successful imports do not belong on the review queue")
	}
}

func TestReportStatusActive(t *testing.T) {
	for _, tc := range []struct {
		status ReportStatus
		want   bool
	}{
		{ReportStatusPending, true},
		{ReportStatusApproved, true},
		{ReportStatusReview, false},
		{ReportStatusCanceled, false},
		{ReportStatusFailed, false},
	} {
		if got := tc.status.Active(); got != tc.want {
			t.Errorf("%s.Active() = %v, want %v", tc.status, got, tc.want)
		}
	}
}
