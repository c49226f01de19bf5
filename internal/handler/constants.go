package handler

// URL parameters
const (
	ParamWorldName = "name"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// User-facing error messages
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgWorldNotFound      = "World not found"
	ErrMsgStoreUnavailable   = "world store unavailable"
)

// Log messages
const (
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgListWorldsFailed = "Failed to list worlds"
	LogMsgGetWorldFailed   = "Failed to load world"
)
