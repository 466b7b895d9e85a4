package game

import (
	"log/slog"

	"github.com/pthm-cable/downpour/telemetry"
)

// logWindowStats emits one structured log line per closed telemetry window.
func logWindowStats(ws telemetry.WindowStats) {
	slog.Info("window stats",
		"tick", ws.WindowEnd,
		"sim_time", ws.SimTimeSec,
		"kind", ws.Kind,
		"active_mean", ws.ActiveMean,
		"active_max", ws.ActiveMax,
		"emitted", ws.Emitted,
		"dropped", ws.Dropped,
		"step_ms_mean", ws.StepMsMean,
		"step_ms_p95", ws.StepMsP95,
		"step_ms_max", ws.StepMsMax,
	)
}

// logOutputError reports telemetry output failures without stopping the run.
func logOutputError(err error) {
	slog.Error("telemetry output", "error", err)
}
