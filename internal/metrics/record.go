package metrics

import (
	"time"

	"github.com/osse101/placecraft/internal/move"
)

// RecordCommand counts one player command and its latency.
func RecordCommand(verb string, err error, elapsed time.Duration) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	CommandsTotal.WithLabelValues(verb, status).Inc()
	CommandDuration.WithLabelValues(verb).Observe(elapsed.Seconds())
}

// RecordMove counts a resolved move and what it paid out.
func RecordMove(report move.Report) {
	if !report.Won {
		MovesTotal.WithLabelValues(OutcomeLost).Inc()
		return
	}
	MovesTotal.WithLabelValues(OutcomeWon).Inc()
	PlacesGenerated.WithLabelValues(CauseWin).Inc()
	for t, amount := range report.Rewards {
		TreasureEarned.WithLabelValues(string(t)).Add(float64(amount))
	}
}

// RecordAutosave counts one world save.
func RecordAutosave(err error, elapsed time.Duration) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	AutosavesTotal.WithLabelValues(status).Inc()
	AutosaveDuration.Observe(elapsed.Seconds())
}
