package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/telbill/invoice-pipeline/constants"
)

// DefaultStaleTimeout is how long an import may sit in an in-progress
// status before it is presumed orphaned by a dead worker.
const DefaultStaleTimeout = 5 * time.Minute

// Reclaimer fails imports stuck in PROCESSING or OCR_RUNNING past the
// timeout so the review queue never shows phantom in-flight work.
type Reclaimer struct {
	imports ImportStore
	timeout time.Duration
	logger  *slog.Logger
}

func NewReclaimer(imports ImportStore, timeout time.Duration, logger *slog.Logger) *Reclaimer {
	if timeout <= 0 {
		timeout = DefaultStaleTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reclaimer{imports: imports, timeout: timeout, logger: logger}
}

// Sweep reclaims every stale in-progress import, returning how many were
// marked FAILED.
func (r *Reclaimer) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-r.timeout)
	n, err := r.imports.ReclaimStale(ctx, constants.InProgressImportStatuses, cutoff,
		constants.ErrCodeTimeout, "processamento excedeu o tempo limite")
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.logger.Warn("reclaimed stale imports", "count", n, "timeout", r.timeout)
	}
	return n, nil
}
