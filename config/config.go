// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Entity kind names accepted in the entities table.
const (
	KindCar      = "car"
	KindShip     = "ship"
	KindSailboat = "sailboat"
	KindBirds    = "birds"
)

// Config holds all scene configuration parameters.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Clock      ClockConfig      `yaml:"clock"`
	Projection ProjectionConfig `yaml:"projection"`
	Car        CarConfig        `yaml:"car"`
	Entities   []EntityConfig   `yaml:"entities"`
	Audio      AudioConfig      `yaml:"audio"`
	HUD        HUDConfig        `yaml:"hud"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	TargetFPS int    `yaml:"target_fps"`
}

// ClockConfig holds the animation clock period.
type ClockConfig struct {
	TickMS int `yaml:"tick_ms"` // Milliseconds between ticks
}

// ExtentConfig is one orthographic extent in world units.
type ExtentConfig struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
}

// ProjectionConfig holds the two switchable orthographic extents.
type ProjectionConfig struct {
	Primary  ExtentConfig `yaml:"primary"`
	Expanded ExtentConfig `yaml:"expanded"`
}

// CarConfig holds the car speed controls.
type CarConfig struct {
	MinSpeed         float32 `yaml:"min_speed"`
	MaxSpeed         float32 `yaml:"max_speed"`
	SpeedStep        float32 `yaml:"speed_step"`        // '+' / '-' increment
	BrakeDecrement   float32 `yaml:"brake_decrement"`   // Speed lost on brake press
	BrakeFloor       float32 `yaml:"brake_floor"`       // Braking never goes below this
	ReleaseIncrement float32 `yaml:"release_increment"` // Speed regained on brake release
	CruiseSpeed      float32 `yaml:"cruise_speed"`      // Release never goes above this
}

// OscillatorConfig describes a vertical sinusoid driven by elapsed time.
type OscillatorConfig struct {
	Amplitude float32 `yaml:"amplitude"`
	Frequency float32 `yaml:"frequency"` // Radians per second
}

// EntityConfig describes one moving entity.
type EntityConfig struct {
	Kind       string            `yaml:"kind"`
	StartX     float32           `yaml:"start_x"`
	Y          float32           `yaml:"y"`
	Velocity   float32           `yaml:"velocity"` // World units per tick
	WrapMin    float32           `yaml:"wrap_min"` // Offset after wrapping
	WrapMax    float32           `yaml:"wrap_max"` // Offset beyond this wraps
	Oscillator *OscillatorConfig `yaml:"oscillator,omitempty"`
}

// AudioConfig holds the audible alert parameters.
type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	BeepFrequency  float64 `yaml:"beep_frequency"`   // Hz
	BeepDurationMS int     `yaml:"beep_duration_ms"` // Tone length
	Volume         float64 `yaml:"volume"`
}

// HUDConfig holds overlay settings.
type HUDConfig struct {
	Visible bool `yaml:"visible"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TickDuration   time.Duration // Clock.TickMS as a duration
	TickSeconds    float64       // Clock.TickMS in seconds
	TicksPerSecond float64
	WindowW32      float32 // Window.Width as float32
	WindowH32      float32 // Window.Height as float32
	EntityIndex    map[string]int // kind -> index into Entities
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
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

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

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the scene cannot run with.
func (c *Config) validate() error {
	if c.Clock.TickMS <= 0 {
		return fmt.Errorf("clock.tick_ms must be positive, got %d", c.Clock.TickMS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Car.MinSpeed > c.Car.MaxSpeed {
		return fmt.Errorf("car.min_speed %.1f exceeds car.max_speed %.1f", c.Car.MinSpeed, c.Car.MaxSpeed)
	}
	for _, e := range []ExtentConfig{c.Projection.Primary, c.Projection.Expanded} {
		if e.Right <= e.Left || e.Top <= e.Bottom {
			return fmt.Errorf("degenerate projection extent %+v", e)
		}
	}

	seen := make(map[string]bool, len(c.Entities))
	for _, e := range c.Entities {
		switch e.Kind {
		case KindCar, KindShip, KindSailboat, KindBirds:
		default:
			return fmt.Errorf("unknown entity kind %q", e.Kind)
		}
		if seen[e.Kind] {
			return fmt.Errorf("entity kind %q listed twice", e.Kind)
		}
		seen[e.Kind] = true
		if e.WrapMin >= e.WrapMax {
			return fmt.Errorf("entity %q: wrap_min %.1f must be below wrap_max %.1f", e.Kind, e.WrapMin, e.WrapMax)
		}
	}
	if !seen[KindCar] {
		return fmt.Errorf("entities must include a %q", KindCar)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TickDuration = time.Duration(c.Clock.TickMS) * time.Millisecond
	c.Derived.TickSeconds = c.Derived.TickDuration.Seconds()
	c.Derived.TicksPerSecond = 1 / c.Derived.TickSeconds
	c.Derived.WindowW32 = float32(c.Window.Width)
	c.Derived.WindowH32 = float32(c.Window.Height)

	c.Derived.EntityIndex = make(map[string]int, len(c.Entities))
	for i, e := range c.Entities {
		c.Derived.EntityIndex[e.Kind] = i
	}
}

// Entity returns the entity config for a kind.
func (c *Config) Entity(kind string) (EntityConfig, bool) {
	i, ok := c.Derived.EntityIndex[kind]
	if !ok {
		return EntityConfig{}, false
	}
	return c.Entities[i], true
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
