package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the file count that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files kept by cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgStarting            = "Starting placecraft"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Autosave
// =============================================================================

const (
	// AutosaveQueueSize bounds queued autosave jobs. Saves are coalesced per
	// world, so this only needs to cover the number of busy worlds.
	AutosaveQueueSize = 1024

	// AutosaveJobTimeout bounds one snapshot write
	AutosaveJobTimeout = 30 * time.Second
)

// ErrMsgInvalidWorldSeed wraps a WORLD_SEED that fails to parse
const ErrMsgInvalidWorldSeed = "invalid WORLD_SEED"

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShutdownSignal           = "Shutdown signal received"
	LogMsgShuttingDownServer       = "Shutting down server..."
	LogMsgServerStopped            = "Server stopped"
	LogMsgServerForcedShutdown     = "Server forced to shutdown"
	LogMsgWorkerPoolShutdownFailed = "Worker pool shutdown failed"
	LogMsgFlushFailed              = "Failed to flush unsaved worlds"
	LogMsgStoreCloseFailed         = "Failed to close world store"

	ServerNameLine  = "line"
	ServerNameAdmin = "admin"
)
