// stormbench measures worst-case particle step cost: the pool saturated at
// full capacity, maximum emission pressure, windowed timing stats to CSV.
// It never touches the GPU, so it runs anywhere.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/downpour/telemetry"
	"github.com/pthm-cable/downpour/weather"
)

func main() {
	kindName := flag.String("kind", "rain", "Weather kind to bench (rain, snow)")
	rate := flag.Float64("rate", 50000, "Emission rate, set well above capacity turnover")
	capacity := flag.Int("capacity", weather.DefaultCapacity, "Particle pool capacity")
	ticks := flag.Int("ticks", 3600, "Simulation ticks to run")
	windowTicks := flag.Int("window", 300, "Ticks per stats window")
	outputDir := flag.String("output-dir", "bench-out", "Directory for telemetry.csv")
	seed := flag.Int64("seed", 1, "RNG seed")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	settings := weather.ClearPreset()
	settings.Kind = weather.ParseKind(*kindName)
	settings.EmissionRate = float32(*rate)
	settings.Lifetime = 6 // long-lived so the pool stays saturated

	volume := weather.Box{
		Min: mgl32.Vec3{-60, 35, -60},
		Max: mgl32.Vec3{60, 45, 60},
	}

	sim := weather.NewWithCapacity(settings, volume, *seed, *capacity)
	collector := telemetry.NewCollector(*windowTicks)

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("creating output manager", "error", err)
		os.Exit(1)
	}
	defer output.Close()

	slog.Info("starting bench",
		"kind", settings.Kind.String(),
		"rate", settings.EmissionRate,
		"capacity", *capacity,
		"ticks", *ticks,
	)

	const dt = 1.0 / 60.0
	rot := mgl32.QuatIdent()

	for i := 0; i < *ticks; i++ {
		start := time.Now()
		sim.Update(dt, rot)
		collector.Record(
			sim.ActiveParticleCount(),
			sim.LastEmitted(),
			sim.LastDropped(),
			time.Since(start),
			dt,
		)

		if collector.WindowReady() {
			ws := collector.Flush(settings.Kind.String())
			slog.Info("window",
				"tick", ws.WindowEnd,
				"active_mean", ws.ActiveMean,
				"dropped", ws.Dropped,
				"step_ms_mean", ws.StepMsMean,
				"step_ms_p95", ws.StepMsP95,
				"step_ms_max", ws.StepMsMax,
			)
			if err := output.WriteWindow(ws); err != nil {
				slog.Error("writing telemetry", "error", err)
				os.Exit(1)
			}
		}
	}

	slog.Info("bench complete", "ticks", *ticks, "active", sim.ActiveParticleCount())
}
