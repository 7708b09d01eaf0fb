package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
	err  error
}

func (p *countingProcessor) Process(_ context.Context, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, job.ImportID)
	return p.err
}

func (p *countingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

func TestImportQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("drains every job before shutdown returns", func(t *testing.T) {
		proc := &countingProcessor{}
		q := NewImportQueue(proc, slog.Default(), WithWorkers(2), WithQueueSize(8))

		const jobs = 20
		for i := 0; i < jobs; i++ {
			if err := q.Enqueue(ctx, Job{ImportID: uuid.New(), Actor: "batch", SubmittedAt: time.Now()}); err != nil {
				t.Fatalf("enqueue: %v", err)
			}
		}

		sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		q.Shutdown(sctx)

		if got := proc.count(); got != jobs {
			t.Fatalf("expected %d processed jobs, got %d", jobs, got)
		}
	})

	t.Run("processor errors do not stop the workers", func(t *testing.T) {
		proc := &countingProcessor{err: errors.New("boom")}
		q := NewImportQueue(proc, slog.Default(), WithWorkers(1))

		for i := 0; i < 3; i++ {
			if err := q.Enqueue(ctx, Job{ImportID: uuid.New()}); err != nil {
				t.Fatalf("enqueue: %v", err)
			}
		}

		sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		q.Shutdown(sctx)

		if got := proc.count(); got != 3 {
			t.Fatalf("expected 3 attempts, got %d", got)
		}
	})

	t.Run("enqueue after shutdown is a logged no-op", func(t *testing.T) {
		proc := &countingProcessor{}
		q := NewImportQueue(proc, slog.Default(), WithWorkers(1))

		sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		q.Shutdown(sctx)

		if err := q.Enqueue(ctx, Job{ImportID: uuid.New()}); err != nil {
			t.Fatalf("enqueue after shutdown must not error: %v", err)
		}
		if got := proc.count(); got != 0 {
			t.Fatalf("no job should run after shutdown, got %d", got)
		}
	})

	t.Run("second shutdown is safe", func(t *testing.T) {
		q := NewImportQueue(&countingProcessor{}, slog.Default(), WithWorkers(1))
		sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		q.Shutdown(sctx)
		q.Shutdown(sctx)
	})
}
