package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Line protocol error messages
const (
	ErrMsgServerClosed    = "server closed"
	ErrMsgLineTooLong     = "line too long"
	ErrMsgWorldAfterStart = "world can only be selected before the first command"
	ErrMsgWorldUsage      = "usage: world <name>"
	ErrMsgTooManySessions = "too many connections, try again later"
	ErrMsgShuttingDown    = "server shutting down"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting     = "Server starting"
	LogMsgLineServerStarting = "Line server starting"
	LogMsgRequestStarted     = "Request started"
	LogMsgRequestCompleted   = "Request completed"
	LogMsgRequestHeaders     = "Request headers"
	LogMsgAuthFailed         = "Authentication failed"
	LogMsgSessionOpened      = "Session opened"
	LogMsgSessionClosed      = "Session closed"
	LogMsgSessionRejected    = "Session rejected"
	LogMsgWorldSelected      = "World selected"
	LogMsgReplyFailed        = "Failed to write reply"
	LogMsgAcceptRetry        = "Accept failed, retrying"
)

// Session-only verbs handled by the line server itself
const (
	VerbWorld = "world"
	VerbQuit  = "quit"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Limits
const (
	MaxRequestBodyBytes      = 1 << 20
	DefaultMaxLineBytes      = 4096
	ReadHeaderTimeout        = 5 * time.Second
	WriteTimeout             = 10 * time.Second
	AcceptBackoff            = 50 * time.Millisecond
	RateWindow               = 5 * time.Minute
	MaxRequestsPerWindow     = 1000
	FailedAuthAlertThreshold = 5
	RateAlertEvery           = 100
)
