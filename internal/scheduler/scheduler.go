// Package scheduler enqueues recurring jobs on the worker pool.
package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/placecraft/internal/worker"
)

// Enqueuer accepts jobs for background execution
type Enqueuer interface {
	Enqueue(job worker.Job) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick that finds the
// queue full waits for room, so ticks never pile up behind each other.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.pool.Enqueue(job); err != nil {
					slog.Warn(LogMsgJobNotQueued, "job", job.Name(), "error", err)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
