package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/invox/invox/internal/pipeline"
)

var ErrShuttingDown = errors.New("runner is shutting down")

type job struct {
	req   pipeline.Request
	ctx   context.Context
	reply chan outcome
}

type outcome struct {
	res pipeline.Result
	err error
}

// Runner bounds concurrent extraction runs with a worker pool. Callers submit
// a request and block until their run completes; the pool caps how many
// documents are in flight at once, which in practice caps concurrent LLM calls.
type Runner struct {
	pipe    *pipeline.Extraction
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Runner)

func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.ch = make(chan job, n)
		}
	}
}
func WithRunTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewRunner(pipe *pipeline.Extraction, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		pipe:    pipe,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan job, 64),
	}
	for _, o := range opts {
		o(r)
	}
	r.start()
	return r
}

func (r *Runner) start() {
	r.once.Do(func() {
		for i := 0; i < r.workers; i++ {
			r.wg.Add(1)
			go func(workerID int) {
				defer r.wg.Done()
				r.logger.Info("worker started", "worker_id", workerID)

				for j := range r.ch {
					ctx, cancel := context.WithTimeout(j.ctx, r.timeout)
					res, err := r.pipe.Run(ctx, j.req)
					cancel()

					if err != nil {
						r.logger.Error("extraction failed", "worker_id", workerID, "file_name", j.req.FileName, "error", err)
					} else {
						r.logger.Info("extraction completed", "worker_id", workerID, "file_name", j.req.FileName)
					}
					j.reply <- outcome{res: res, err: err}
				}

				r.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Submit queues one extraction and waits for its result. The caller's context
// covers both the queue wait and the run itself.
func (r *Runner) Submit(ctx context.Context, req pipeline.Request) (pipeline.Result, error) {
	j := job{req: req, ctx: ctx, reply: make(chan outcome, 1)}

	// Hold the lock across the send so Shutdown cannot close the channel
	// between the closed check and the enqueue.
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return pipeline.Result{}, ErrShuttingDown
	}
	select {
	case r.ch <- j:
		r.mu.Unlock()
	case <-ctx.Done():
		r.mu.Unlock()
		return pipeline.Result{}, ctx.Err()
	}

	select {
	case out := <-j.reply:
		return out.res, out.err
	case <-ctx.Done():
		// The worker will still finish the run and drop the buffered reply.
		return pipeline.Result{}, ctx.Err()
	}
}

func (r *Runner) Shutdown(ctx context.Context) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.ch)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); r.wg.Wait() }()

	select {
	case <-ctx.Done():
		r.logger.Warn("shutdown interrupted by context")
	case <-done:
		r.logger.Info("runner drained, shutdown complete")
	}
}
