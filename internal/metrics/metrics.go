package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Session Metrics
var (
	ConnectionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameConnectionsInFlight,
			Help: HelpTextConnectionsInFlight,
		},
	)

	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelVerb, LabelStatus},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCommandDuration,
			Help:    HelpTextCommandDuration,
			Buckets: CommandLatencyBuckets,
		},
		[]string{LabelVerb},
	)
)

// Game Metrics
var (
	MovesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMovesTotal,
			Help: HelpTextMovesTotal,
		},
		[]string{LabelOutcome},
	)

	ModifiersRolled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameModifiersRolled,
			Help: HelpTextModifiersRolled,
		},
		[]string{LabelCommand},
	)

	PlacesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlacesGenerated,
			Help: HelpTextPlacesGenerated,
		},
		[]string{LabelCause},
	)

	TreasureEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreasureEarned,
			Help: HelpTextTreasureEarned,
		},
		[]string{LabelTreasure},
	)

	WorldsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWorldsLoaded,
			Help: HelpTextWorldsLoaded,
		},
	)

	AutosavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutosavesTotal,
			Help: HelpTextAutosavesTotal,
		},
		[]string{LabelStatus},
	)

	AutosaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAutosaveDuration,
			Help:    HelpTextAutosaveDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)
)
