package constants

// ImportStatus is the canonical lifecycle status for invoice_imports rows.
type ImportStatus string

// Stable values (store these exact strings in DB).
const (
	ImportStatusInbox         ImportStatus = "INBOX"          // awaiting a worker
	ImportStatusProcessing    ImportStatus = "PROCESSING"     // worker picked it up
	ImportStatusOCRRunning    ImportStatus = "OCR_RUNNING"    // extraction in progress
	ImportStatusPending       ImportStatus = "PENDING"        // created, not yet dispatched
	ImportStatusSuccess       ImportStatus = "SUCCESS"        // extraction complete, report linked
	ImportStatusFailed        ImportStatus = "FAILED"         // terminal failure
	ImportStatusSkipped       ImportStatus = "SKIPPED"        // duplicate of an active import
	ImportStatusPendingReview ImportStatus = "PENDING_REVIEW" // needs human correction
)

// InProgressImportStatuses are the statuses the stale-job reclaimer sweeps.
var InProgressImportStatuses = []ImportStatus{
	ImportStatusProcessing,
	ImportStatusOCRRunning,
}

// ReviewQueueStatuses are the statuses shown in the pending-review
// listing. Terminal failures and skips stay on the list so the viewer
// sees what happened to them instead of watching rows disappear.
var ReviewQueueStatuses = []ImportStatus{
	ImportStatusInbox,
	ImportStatusProcessing,
	ImportStatusOCRRunning,
	ImportStatusPendingReview,
	ImportStatusSkipped,
	ImportStatusFailed,
}

// ReportStatus is the canonical status for reports rows.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "PENDING"
	ReportStatusReview   ReportStatus = "REVIEW"
	ReportStatusApproved ReportStatus = "APPROVED"
	ReportStatusCanceled ReportStatus = "CANCELED"
	ReportStatusFailed   ReportStatus = "FAILED"
)

// Active reports block re-ingestion of identical content.
func (s ReportStatus) Active() bool {
	return s == ReportStatusPending || s == ReportStatusApproved
}

// AuditAction classifies audit log entries.
type AuditAction string

const (
	AuditActionImport    AuditAction = "IMPORT"
	AuditActionReprocess AuditAction = "REPROCESS"
	AuditActionUpdate    AuditAction = "UPDATE"
	AuditActionDelete    AuditAction = "DELETE"
	AuditActionApprove   AuditAction = "APPROVE"
	AuditActionReject    AuditAction = "REJECT"
	AuditActionExport    AuditAction = "EXPORT"
)

func ImportStatusStrings(in []ImportStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
