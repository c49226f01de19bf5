package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/placecraft/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Name() string { return "mock" }

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10, time.Second)
	pool.Start()
	defer func() { _ = pool.Shutdown(context.Background()) }()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(2 * time.Second)
	runs := 0
	for runs < 2 {
		select {
		case <-job.Done:
			runs++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}
	assert.GreaterOrEqual(t, job.RunCount.Load(), int32(2))
}

func TestScheduler_StopHaltsTicks(t *testing.T) {
	pool := worker.NewPool(1, 10, time.Second)
	pool.Start()
	defer func() { _ = pool.Shutdown(context.Background()) }()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(5*time.Millisecond, job)

	select {
	case <-job.Done:
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for job execution")
	}

	sched.Stop()
	sched.Stop()
	// Let a job that was already queued finish before sampling.
	time.Sleep(20 * time.Millisecond)
	after := job.RunCount.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, job.RunCount.Load())
}

func TestScheduler_StoppedPoolDoesNotBlock(t *testing.T) {
	pool := worker.NewPool(1, 10, time.Second)
	require.NoError(t, pool.Shutdown(context.Background()))

	sched := New(pool)
	sched.Schedule(time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})
	time.Sleep(10 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		sched.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked on a stopped pool")
	}
}
