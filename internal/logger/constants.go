package logger

// Accepted LOG_LEVEL values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults for tools that run without configuration
const (
	DefaultServiceName = "placecraft"
	DefaultVersion     = "dev"
)

// EnvironmentDev enables source positions in the server logs
const EnvironmentDev = "dev"

// EnvironmentTest marks records written by tests
const EnvironmentTest = "test"

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyWorld       = "world"
)
