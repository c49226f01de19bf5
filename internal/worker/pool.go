// Package worker runs background jobs, like world autosaves, on a fixed pool
// of goroutines so player sessions never wait on storage.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/placecraft/internal/logger"
)

// ErrPoolStopped is returned by Enqueue after Shutdown began.
var ErrPoolStopped = errors.New(ErrMsgPoolStopped)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobTimeout time.Duration
	jobQueue   chan Job
	wg         sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool. Each job runs with jobTimeout.
func NewPool(workers, queueSize int, jobTimeout time.Duration) *Pool {
	return &Pool{
		workers:    max(workers, 1),
		jobTimeout: jobTimeout,
		jobQueue:   make(chan Job, queueSize),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// worker drains the queue until it is closed
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		p.run(id, job)
	}
}

func (p *Pool) run(id int, job Job) {
	ctx := context.Background()
	if p.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.jobTimeout)
		defer cancel()
	}
	// A failing job must not take its worker down with it.
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked, "job", job.Name(), "worker", id, "panic", r)
		}
	}()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "job", job.Name(), "worker", id, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while it is full.
func (p *Pool) Enqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	p.jobQueue <- job
	return nil
}

// Shutdown stops accepting jobs, lets the workers finish what is queued and
// waits for them or for ctx.
func (p *Pool) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	pending := len(p.jobQueue)
	close(p.jobQueue)
	p.mu.Unlock()

	log.Info(LogMsgPoolShuttingDown, "pending_jobs", pending)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgPoolShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgPoolShutdownTimeout)
		return ctx.Err()
	}
}
