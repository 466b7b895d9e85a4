package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one telemetry window.
type WindowStats struct {
	WindowEnd  int32   `csv:"window_end"`
	SimTimeSec float64 `csv:"sim_time"`
	Kind       string  `csv:"kind"`

	// Particle load over the window
	ActiveMean float64 `csv:"active_mean"`
	ActiveMax  int     `csv:"active_max"`
	Emitted    int     `csv:"emitted"`
	Dropped    int     `csv:"dropped"`

	// Step cost over the window, milliseconds
	StepMsMean float64 `csv:"step_ms_mean"`
	StepMsStd  float64 `csv:"step_ms_std"`
	StepMsP95  float64 `csv:"step_ms_p95"`
	StepMsMax  float64 `csv:"step_ms_max"`
}

// summarizeActive reduces the active-count samples.
func summarizeActive(samples []float64) (mean float64, max int) {
	if len(samples) == 0 {
		return 0, 0
	}
	mean = stat.Mean(samples, nil)
	m := samples[0]
	for _, v := range samples[1:] {
		if v > m {
			m = v
		}
	}
	return mean, int(m)
}

// summarizeStep reduces the step-duration samples. Quantile needs sorted
// input; sorting in place is fine because Flush discards the buffer after.
func summarizeStep(samples []float64) (mean, std, p95, max float64) {
	if len(samples) == 0 {
		return 0, 0, 0, 0
	}
	mean = stat.Mean(samples, nil)
	if len(samples) > 1 {
		std = stat.StdDev(samples, nil)
	}
	sort.Float64s(samples)
	p95 = stat.Quantile(0.95, stat.Empirical, samples, nil)
	max = samples[len(samples)-1]
	return mean, std, p95, max
}
