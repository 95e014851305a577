package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/internal/entity"
)

// ClaimVerifier is the slice of the intake service the queue needs.
type ClaimVerifier interface {
	VerifyClaim(ctx context.Context, claimID uuid.UUID) (*entity.VerificationSummary, error)
}

// VerifyQueue fans claim-verification jobs out to a fixed worker pool.
type VerifyQueue struct {
	verifier ClaimVerifier
	logger   *slog.Logger
	workers  int
	timeout  time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*VerifyQueue)

func WithWorkers(n int) Option {
	return func(q *VerifyQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *VerifyQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(q *VerifyQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewVerifyQueue(verifier ClaimVerifier, logger *slog.Logger, opts ...Option) *VerifyQueue {
	q := &VerifyQueue{
		verifier: verifier,
		logger:   logger,
		workers:  4,
		timeout:  2 * time.Minute,
		ch:       make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *VerifyQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					summary, err := q.verifier.VerifyClaim(ctx, job.ClaimID)
					cancel()

					if err != nil {
						q.logger.Error("verification failed", "worker_id", workerID, "claim_id", job.ClaimID, "error", err)
					} else {
						q.logger.Info("verified claim", "worker_id", workerID, "claim_id", job.ClaimID, "verification_status", summary.Status)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *VerifyQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "claim_id", job.ClaimID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued claim for verification", "claim_id", job.ClaimID)
	default:
		q.logger.Warn("queue full, applying backpressure", "claim_id", job.ClaimID)
		q.ch <- job
	}
	return nil
}

func (q *VerifyQueue) Shutdown(ctx context.Context) {
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
