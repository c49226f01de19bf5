package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed      = "Worker job failed"
	LogMsgWorkerJobPanicked    = "Worker job panicked"
	LogMsgPoolShuttingDown     = "Shutting down worker pool"
	LogMsgPoolShutdownComplete = "Worker pool shutdown complete"
	LogMsgPoolShutdownTimeout  = "Worker pool shutdown timeout"
)

// ErrMsgPoolStopped is the message of ErrPoolStopped
const ErrMsgPoolStopped = "worker pool stopped"

// ============================================================================
// Autosave
// ============================================================================

// AutosaveJobName labels autosave jobs in logs
const AutosaveJobName = "autosave"

// Log messages for autosave jobs
const (
	LogMsgWorldSaved = "World saved"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
