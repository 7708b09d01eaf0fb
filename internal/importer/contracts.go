package importer

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/entity"
)

// ImportStore persists invoice import records. Implementations map
// uniqueness violations on file_hash to common.ErrConflict.
type ImportStore interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.InvoiceImport, error)
	// FindByHash returns the record holding the given fingerprint with
	// its report edge loaded, or (nil, nil) when absent.
	FindByHash(ctx context.Context, hash string) (*entity.InvoiceImport, error)
	Create(ctx context.Context, rec *entity.InvoiceImport) (*entity.InvoiceImport, error)
	Update(ctx context.Context, rec *entity.InvoiceImport) (*entity.InvoiceImport, error)
	// SetStatus is a narrow terminal-state write used outside transactions.
	SetStatus(ctx context.Context, id uuid.UUID, status constants.ImportStatus, errCode, errMsg *string) error
	ListByStatuses(ctx context.Context, statuses []constants.ImportStatus) ([]*entity.InvoiceImport, error)
	// ReclaimStale marks records stuck in the given statuses since before
	// the cutoff as FAILED with the given error code and message,
	// returning how many were reclaimed.
	ReclaimStale(ctx context.Context, statuses []constants.ImportStatus, before time.Time, errCode, errMsg string) (int, error)
}

// ReportStore persists expense reports derived from imports.
type ReportStore interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	Create(ctx context.Context, rep *entity.Report) (*entity.Report, error)
	Update(ctx context.Context, rep *entity.Report) (*entity.Report, error)
}

// CategoryStore resolves expense categories by name.
type CategoryStore interface {
	GetOrCreate(ctx context.Context, name string) (*entity.Category, error)
}

// BlobStore keeps the original invoice payloads.
type BlobStore interface {
	// Write stores the content under the given name, returning the
	// storage path. Writing the same name twice is idempotent.
	Write(ctx context.Context, name string, r io.Reader) (string, error)
}

// Auditor records before/after snapshots. Implementations never fail the
// caller; errors are logged and swallowed.
type Auditor interface {
	Log(ctx context.Context, actor string, action constants.AuditAction, entityName, entityID string, before, after json.RawMessage)
}

// TxRunner executes fn inside a database transaction. Stores invoked with
// the derived context join the same transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
