// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Weather   WeatherConfig   `yaml:"weather"`
	Town      TownConfig      `yaml:"town"`
	Agents    AgentsConfig    `yaml:"agents"`
	Sky       SkyConfig       `yaml:"sky"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WeatherConfig holds the startup weather preset and pool sizing.
// Everything except capacity and the emission volume is live-tunable from
// the control panel afterwards.
type WeatherConfig struct {
	Kind         string  `yaml:"kind"` // clear, rain, snow
	EmissionRate float64 `yaml:"emission_rate"`
	Lifetime     float64 `yaml:"lifetime"`
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	WindStrength float64 `yaml:"wind_strength"`
	Gravity      float64 `yaml:"gravity"`

	Capacity     int     `yaml:"capacity"`      // fixed particle pool size
	VolumeExtent float64 `yaml:"volume_extent"` // half-width of the emission box
	VolumeFloor  float64 `yaml:"volume_floor"`  // bottom of the emission box
	VolumeHeight float64 `yaml:"volume_height"` // vertical thickness of the box
}

// TownConfig holds procedural town generation parameters.
type TownConfig struct {
	BlocksX        int     `yaml:"blocks_x"`
	BlocksZ        int     `yaml:"blocks_z"`
	BlockSize      float64 `yaml:"block_size"`
	RoadWidth      float64 `yaml:"road_width"`
	BuildingMinH   float64 `yaml:"building_min_height"`
	BuildingMaxH   float64 `yaml:"building_max_height"`
	NoiseScale     float64 `yaml:"noise_scale"`     // opensimplex frequency over block coords
	TreeChance     float64 `yaml:"tree_chance"`     // per-lot tree probability
	LampSpacing    int     `yaml:"lamp_spacing"`    // blocks between street lamps
	PlazaThreshold float64 `yaml:"plaza_threshold"` // noise below this leaves the lot open
}

// AgentsConfig holds traffic and pedestrian parameters.
type AgentsConfig struct {
	Pedestrians     int     `yaml:"pedestrians"`
	Vehicles        int     `yaml:"vehicles"`
	PedestrianSpeed float64 `yaml:"pedestrian_speed"`
	VehicleSpeed    float64 `yaml:"vehicle_speed"`
	ArriveRadius    float64 `yaml:"arrive_radius"`
}

// SkyConfig holds day/night cycle parameters.
type SkyConfig struct {
	DayLengthSec float64 `yaml:"day_length_sec"` // full cycle duration
	StartTime    float64 `yaml:"start_time"`     // 0..1, 0.5 = noon
}

// CameraConfig holds orbit camera defaults and constraints.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Pitch       float64 `yaml:"pitch"` // radians above the horizon
	Yaw         float64 `yaml:"yaw"`
	FovY        float64 `yaml:"fov_y"` // degrees
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per aggregation window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
	WorldW32  float32 // town footprint width in world units
	WorldD32  float32 // town footprint depth
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	cell := c.Town.BlockSize + c.Town.RoadWidth
	c.Derived.WorldW32 = float32(float64(c.Town.BlocksX) * cell)
	c.Derived.WorldD32 = float32(float64(c.Town.BlocksZ) * cell)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
