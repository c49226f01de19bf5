package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyRequestID = "request_id"
)

// LogMsgHandlerErrorFormat wraps the errors of failing handlers
const LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
