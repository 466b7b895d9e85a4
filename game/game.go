// Package game wires the simulation packages together and owns the per-frame
// loop: input, agents, weather, telemetry and rendering.
package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/downpour/camera"
	"github.com/pthm-cable/downpour/components"
	"github.com/pthm-cable/downpour/config"
	"github.com/pthm-cable/downpour/renderer"
	"github.com/pthm-cable/downpour/sky"
	"github.com/pthm-cable/downpour/telemetry"
	"github.com/pthm-cable/downpour/town"
	"github.com/pthm-cable/downpour/ui"
	"github.com/pthm-cable/downpour/weather"
)

// DT is the fixed headless step, matching the graphical target frame rate.
const DT float32 = 1.0 / 60.0

// Options configures game creation.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete application state.
type Game struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	sim   *weather.Simulation
	town  *town.Town
	cycle *sky.Cycle
	cam   *camera.Camera

	// Agent ECS
	world       *ecs.World
	agentMapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Agent,
		components.Route,
	]
	agentFilter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Agent,
		components.Route,
	]

	// Rendering and UI, nil in headless mode
	weatherR *renderer.WeatherRenderer
	panel    *ui.WeatherPanel
	hud      *ui.HUD

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	// Patches collected from the panel and hotkeys during the frame, applied
	// before the next simulation step.
	pending []weather.Patch

	paused bool
}

// NewGameWithOptions creates the full application state.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:   cfg,
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		world: world,
		agentMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Agent,
			components.Route,
		](world),
		agentFilter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Agent,
			components.Route,
		](world),
	}

	g.sim = weather.NewWithCapacity(
		startupSettings(cfg.Weather),
		emissionVolume(cfg.Weather),
		opts.Seed,
		cfg.Weather.Capacity,
	)

	g.town = town.Generate(cfg.Town, opts.Seed)
	g.cycle = sky.New(float32(cfg.Sky.StartTime), float32(cfg.Sky.DayLengthSec))

	g.cam = camera.New(
		mgl32.Vec3{},
		float32(cfg.Camera.Yaw),
		float32(cfg.Camera.Pitch),
		float32(cfg.Camera.Distance),
		float32(cfg.Camera.MinDistance),
		float32(cfg.Camera.MaxDistance),
		float32(cfg.Camera.FovY),
	)

	windowTicks := int(opts.StatsWindowSec * float64(cfg.Screen.TargetFPS))
	g.collector = telemetry.NewCollector(windowTicks)

	if om, err := telemetry.NewOutputManager(opts.OutputDir); err != nil {
		logOutputError(err)
	} else {
		g.output = om
		if err := g.output.WriteConfig(cfg); err != nil {
			logOutputError(err)
		}
	}

	if !opts.Headless {
		g.weatherR = renderer.NewWeatherRenderer(g.sim.Capacity(), g.sim.Settings().Kind)
		g.sim.SetTextureProvider(g.weatherR)
		g.panel = ui.NewWeatherPanel(cfg.Derived.ScreenW32-300, 20, 270)
		g.hud = ui.NewHUD()
	}

	g.spawnAgents()
	return g
}

// startupSettings converts the config preset into live weather settings.
func startupSettings(wc config.WeatherConfig) weather.Settings {
	return weather.Settings{
		EmissionRate: float32(wc.EmissionRate),
		Lifetime:     float32(wc.Lifetime),
		Size:         float32(wc.Size),
		Speed:        float32(wc.Speed),
		WindStrength: float32(wc.WindStrength),
		Gravity:      float32(wc.Gravity),
		Kind:         weather.ParseKind(wc.Kind),
	}
}

// emissionVolume builds the spawn box above the town from config.
func emissionVolume(wc config.WeatherConfig) weather.Box {
	e := float32(wc.VolumeExtent)
	floor := float32(wc.VolumeFloor)
	return weather.Box{
		Min: mgl32.Vec3{-e, floor, -e},
		Max: mgl32.Vec3{e, floor + float32(wc.VolumeHeight), e},
	}
}

// QueuePatch records a settings edit to apply before the next step.
func (g *Game) QueuePatch(p weather.Patch) {
	g.pending = append(g.pending, p)
}

// applyPending merges queued patches into the simulation, oldest first.
func (g *Game) applyPending() {
	for _, p := range g.pending {
		g.sim.ApplyPatch(p)
	}
	g.pending = g.pending[:0]
}

// Tick returns the number of simulation ticks completed.
func (g *Game) Tick() int32 {
	return g.collector.Tick()
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Simulation exposes the weather core, for benchmarks and tests.
func (g *Game) Simulation() *weather.Simulation {
	return g.sim
}

// overcast maps the active weather kind to sky damping.
func (g *Game) overcast() float32 {
	switch g.sim.Settings().Kind {
	case weather.KindRain:
		return 0.85
	case weather.KindSnow:
		return 0.55
	default:
		return 0
	}
}

// Unload flushes outputs and releases GPU resources.
func (g *Game) Unload() {
	if g.weatherR != nil {
		g.weatherR.Unload()
	}
	if err := g.output.Close(); err != nil {
		logOutputError(err)
	}
}
