package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(30 * time.Millisecond)
		}()
	}

	// Still running when Check starts; it waits for them.
	checker.Check(0)
	wg.Wait()
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	defer close(done)

	checker.Check(2)
}

func TestSettle(t *testing.T) {
	done := make(chan struct{})
	go func() {
		<-done
	}()
	defer close(done)

	start := time.Now()
	n := settle(0, 30*time.Millisecond)
	assert.GreaterOrEqual(t, n, 2)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	// A reachable target returns at once.
	start = time.Now()
	assert.Positive(t, settle(runtime.NumGoroutine()+100, time.Second))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
		}()
		wg.Wait()
	})
}
