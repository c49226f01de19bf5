package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Session metric names
const (
	MetricNameConnectionsInFlight = "placecraft_connections_in_flight"
	MetricNameCommandsTotal       = "placecraft_commands_total"
	MetricNameCommandDuration     = "placecraft_command_duration_seconds"
)

// Game metric names
const (
	MetricNameMovesTotal       = "placecraft_moves_total"
	MetricNameModifiersRolled  = "placecraft_modifiers_rolled_total"
	MetricNamePlacesGenerated  = "placecraft_places_generated_total"
	MetricNameTreasureEarned   = "placecraft_treasure_earned_total"
	MetricNameWorldsLoaded     = "placecraft_worlds_loaded"
	MetricNameAutosavesTotal   = "placecraft_autosaves_total"
	MetricNameAutosaveDuration = "placecraft_autosave_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Session metric help text
const (
	HelpTextConnectionsInFlight = "Current number of open player connections"
	HelpTextCommandsTotal       = "Total number of player commands by verb and outcome"
	HelpTextCommandDuration     = "Player command latency in seconds"
)

// Game metric help text
const (
	HelpTextMovesTotal       = "Total number of moves by outcome"
	HelpTextModifiersRolled  = "Total number of modifiers rolled by crafting command"
	HelpTextPlacesGenerated  = "Total number of places generated by cause"
	HelpTextTreasureEarned   = "Total treasure paid out by won places"
	HelpTextWorldsLoaded     = "Current number of worlds held in memory"
	HelpTextAutosavesTotal   = "Total number of world autosaves by outcome"
	HelpTextAutosaveDuration = "World autosave latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelVerb     = "verb"
	LabelOutcome  = "outcome"
	LabelCommand  = "command"
	LabelCause    = "cause"
	LabelTreasure = "treasure"
)

// Label values
const (
	StatusOK    = "ok"
	StatusError = "error"

	OutcomeWon  = "won"
	OutcomeLost = "lost"

	CauseWin        = "win"
	CauseExpansion  = "expansion"
	CauseDifficulty = "difficulty"
	CauseGenesis    = "genesis"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CommandLatencyBuckets covers in-memory commands, from 10µs to 250ms.
var CommandLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .25}
