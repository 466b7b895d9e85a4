package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestCollectorWindowLifecycle(t *testing.T) {
	c := NewCollector(3)

	for i := 0; i < 2; i++ {
		c.Record(100, 10, 0, time.Millisecond, 1.0/60.0)
	}
	if c.WindowReady() {
		t.Fatal("window ready after 2 of 3 ticks")
	}

	c.Record(200, 10, 5, 3*time.Millisecond, 1.0/60.0)
	if !c.WindowReady() {
		t.Fatal("window not ready after 3 ticks")
	}

	ws := c.Flush("rain")
	if ws.WindowEnd != 3 {
		t.Errorf("window end tick %d, want 3", ws.WindowEnd)
	}
	if ws.Emitted != 30 || ws.Dropped != 5 {
		t.Errorf("emitted/dropped = %d/%d, want 30/5", ws.Emitted, ws.Dropped)
	}
	if ws.ActiveMax != 200 {
		t.Errorf("active max %d, want 200", ws.ActiveMax)
	}
	if math.Abs(ws.ActiveMean-400.0/3.0) > 1e-9 {
		t.Errorf("active mean %f, want %f", ws.ActiveMean, 400.0/3.0)
	}
	if ws.Kind != "rain" {
		t.Errorf("kind %q, want rain", ws.Kind)
	}

	// Flush resets the buffers but not the tick counter.
	if c.WindowReady() {
		t.Error("window still ready after flush")
	}
	if c.Tick() != 3 {
		t.Errorf("tick counter reset to %d", c.Tick())
	}
}

func TestStepStatsSummary(t *testing.T) {
	c := NewCollector(4)
	for _, ms := range []time.Duration{
		2 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
		10 * time.Millisecond,
	} {
		c.Record(0, 0, 0, ms, 1.0/60.0)
	}

	ws := c.Flush("clear")
	if math.Abs(ws.StepMsMean-5) > 1e-9 {
		t.Errorf("step mean %f, want 5", ws.StepMsMean)
	}
	if ws.StepMsMax != 10 {
		t.Errorf("step max %f, want 10", ws.StepMsMax)
	}
	if ws.StepMsStd <= 0 {
		t.Errorf("step stddev %f, want > 0", ws.StepMsStd)
	}
	if ws.StepMsP95 < ws.StepMsMean || ws.StepMsP95 > ws.StepMsMax {
		t.Errorf("p95 %f outside [mean, max]", ws.StepMsP95)
	}
}

func TestEmptyWindowFlush(t *testing.T) {
	c := NewCollector(10)
	ws := c.Flush("clear")

	if ws.ActiveMean != 0 || ws.StepMsMean != 0 || ws.StepMsP95 != 0 {
		t.Errorf("empty window produced nonzero stats: %+v", ws)
	}
}
