// Package config provides configuration loading and access for the swarm effect.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all effect configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Swarm     SwarmConfig     `yaml:"swarm"`
	Particle  ParticleConfig  `yaml:"particle"`
	Trail     TrailConfig     `yaml:"trail"`
	Flocking  FlockingConfig  `yaml:"flocking"`
	Tracker   TrackerConfig   `yaml:"tracker"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Debug     DebugConfig     `yaml:"debug"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SwarmConfig holds per-target particle pool parameters.
type SwarmConfig struct {
	PoolSize    int      `yaml:"pool_size"`    // Particles per tracked target
	SpawnJitter float64  `yaml:"spawn_jitter"` // Initial position jitter around the target
	Colors      []string `yaml:"colors"`       // "R,G,B" palette, assigned round-robin per identity
}

// ParticleConfig holds per-particle steering physics parameters.
type ParticleConfig struct {
	Radius           float64 `yaml:"radius"`
	Acceleration     float64 `yaml:"acceleration"`      // Desired speed = distance * this; also the speed blend factor
	MinSpeed         float64 `yaml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	Friction         float64 `yaml:"friction"`          // Multiplicative speed decay per tick, (0, 1]
	HeadingSmoothing float64 `yaml:"heading_smoothing"` // Fraction of angular error corrected per tick
	UseMinSpeed      bool    `yaml:"use_min_speed"`     // false = floor speed at 1 instead of clamping
	FrictionModel    string  `yaml:"friction_model"`    // "multiplicative" or "none"
}

// TrailConfig holds trail fade-out parameters.
type TrailConfig struct {
	InitialAlpha float64 `yaml:"initial_alpha"`
	AlphaDecay   float64 `yaml:"alpha_decay"`
	RadiusDecay  float64 `yaml:"radius_decay"`
	Shrink       bool    `yaml:"shrink"` // Also shrink dot radius while fading
}

// FlockingConfig holds boid force parameters.
type FlockingConfig struct {
	Enabled        bool    `yaml:"enabled"`
	NeighborRadius float64 `yaml:"neighbor_radius"`
	Cohesion       float64 `yaml:"cohesion"`
	Separation     float64 `yaml:"separation"`
	Alignment      float64 `yaml:"alignment"`
	Smoothing      float64 `yaml:"smoothing"`      // Heading blend factor toward the net force
	GridCellSize   float64 `yaml:"grid_cell_size"` // Spatial grid cell size for neighbor queries
}

// TrackerConfig holds point supplier parameters.
type TrackerConfig struct {
	IntervalMs   int      `yaml:"interval_ms"`   // Detection cadence, decoupled from render rate
	Points       []string `yaml:"points"`        // Names emitted by the synthetic source
	DropoutEvery int      `yaml:"dropout_every"` // A point vanishes every N ticks (0 = never)
	DropoutTicks int      `yaml:"dropout_ticks"` // How long a vanished point stays absent
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Window length in seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DebugConfig holds debug rendering flags.
type DebugConfig struct {
	TargetLines bool `yaml:"target_lines"` // Draw a line from each particle to its target
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT                float64 // Seconds per tick at target FPS
	ScreenW32         float32 // Screen.Width as float32
	ScreenH32         float32 // Screen.Height as float32
	PollIntervalTicks int     // Tracker.IntervalMs converted to ticks
	TrailSteadyState  int     // Expected live trail dots per particle
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.DT = 1.0 / float64(fps)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	ticks := c.Tracker.IntervalMs * fps / 1000
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.PollIntervalTicks = ticks

	if c.Trail.AlphaDecay > 0 {
		c.Derived.TrailSteadyState = int(c.Trail.InitialAlpha / c.Trail.AlphaDecay)
	}

	// Default point names if none specified
	if len(c.Tracker.Points) == 0 {
		c.Tracker.Points = []string{"thumb", "index", "middle", "ring", "pinky"}
	}

	// Default palette if none specified
	if len(c.Swarm.Colors) == 0 {
		c.Swarm.Colors = []string{
			"120,220,255",
			"255,120,180",
			"180,255,120",
			"255,200,90",
			"200,140,255",
		}
	}
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
