package constants

// Error codes recorded on invoice_imports.error_code. Data-quality codes
// (MISSING_REQUIRED_DATA) are advisory; the rest are terminal for the attempt.
const (
	ErrCodeHash                = "HASH_ERROR"
	ErrCodeExtractionFailed    = "EXTRACTION_FAILED"
	ErrCodeMissingRequiredData = "MISSING_REQUIRED_DATA"
	ErrCodeDuplicateActive     = "DUPLICATE_ACTIVE"
	ErrCodeDBPersistence       = "DB_PERSISTENCE_ERROR"
	ErrCodeTimeout             = "TIMEOUT_ERROR"
	ErrCodeCriticalTaskFailure = "CRITICAL_TASK_FAILURE"
)
