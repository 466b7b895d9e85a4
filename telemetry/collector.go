// Package telemetry aggregates per-frame simulation measurements into
// windowed statistics and writes them to structured CSV logs.
package telemetry

import "time"

// Collector accumulates per-tick samples for the current window.
type Collector struct {
	windowTicks int

	tick    int32
	simTime float64

	active  []float64
	stepMs  []float64
	emitted int
	dropped int
}

// NewCollector creates a collector that closes a window every windowTicks
// simulation ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 300
	}
	return &Collector{
		windowTicks: windowTicks,
		active:      make([]float64, 0, windowTicks),
		stepMs:      make([]float64, 0, windowTicks),
	}
}

// Record adds one tick's measurements.
func (c *Collector) Record(active, emitted, dropped int, step time.Duration, dt float64) {
	c.tick++
	c.simTime += dt
	c.active = append(c.active, float64(active))
	c.stepMs = append(c.stepMs, float64(step.Nanoseconds())/1e6)
	c.emitted += emitted
	c.dropped += dropped
}

// WindowReady reports whether a full window of samples is buffered.
func (c *Collector) WindowReady() bool {
	return len(c.active) >= c.windowTicks
}

// Flush computes the window statistics and resets the sample buffers.
// The tick counter and simulated time keep running across windows.
func (c *Collector) Flush(kind string) WindowStats {
	ws := WindowStats{
		WindowEnd:  c.tick,
		SimTimeSec: c.simTime,
		Kind:       kind,
		Emitted:    c.emitted,
		Dropped:    c.dropped,
	}
	ws.ActiveMean, ws.ActiveMax = summarizeActive(c.active)
	ws.StepMsMean, ws.StepMsStd, ws.StepMsP95, ws.StepMsMax = summarizeStep(c.stepMs)

	c.active = c.active[:0]
	c.stepMs = c.stepMs[:0]
	c.emitted = 0
	c.dropped = 0
	return ws
}

// Tick returns the total number of recorded ticks.
func (c *Collector) Tick() int32 {
	return c.tick
}
