package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is one queued import. Actor travels with the job so audit entries
// name who triggered the work.
type Job struct {
	ImportID    uuid.UUID
	Actor       string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Processor handles one job end to end.
type Processor interface {
	Process(ctx context.Context, job Job) error
}

type ImportQueue struct {
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ImportQueue)

func WithWorkers(n int) Option {
	return func(q *ImportQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ImportQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ImportQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewImportQueue(proc Processor, logger *slog.Logger, opts ...Option) *ImportQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ImportQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ImportQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.proc.Process(ctx, job)
					cancel()

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "import_id", job.ImportID, "error", err)
					} else {
						q.logger.Info("processed import", "worker_id", workerID, "import_id", job.ImportID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ImportQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "import_id", job.ImportID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued import for processing", "import_id", job.ImportID)
	default:
		q.logger.Warn("queue full, applying backpressure", "import_id", job.ImportID)
		q.ch <- job
	}
	return nil
}

func (q *ImportQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
