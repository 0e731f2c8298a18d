// Package config loads dashboard settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "100ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Seconds returns the duration in fractional seconds, the unit used across
// sample timestamps.
func (d Duration) Seconds() float64 { return time.Duration(d).Seconds() }

// Config holds all dashboard settings.
type Config struct {
	// Window is the rolling retention horizon for every chart buffer.
	Window Duration `yaml:"window"`
	// TickInterval is the redraw cadence.
	TickInterval Duration `yaml:"tick_interval"`
	// QueueCapacity bounds the telemetry queue (drop-oldest on overflow).
	QueueCapacity int `yaml:"queue_capacity"`
	// ReferenceHz is the horizontal reference line on the frequency chart.
	ReferenceHz float64 `yaml:"reference_hz"`
	// FrequencyYMax fixes the top of the frequency chart's y-range.
	FrequencyYMax float64 `yaml:"frequency_y_max"`
	// ChartWidth and ChartHeight size rendered chart images when no window
	// geometry is available (headless rendering).
	ChartWidth  int    `yaml:"chart_width"`
	ChartHeight int    `yaml:"chart_height"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the stock configuration: 1 s window, 100 ms ticks, 50 Hz
// reference with a 0..60 Hz scale.
func Default() *Config {
	return &Config{
		Window:        Duration(time.Second),
		TickInterval:  Duration(100 * time.Millisecond),
		QueueCapacity: 1024,
		ReferenceHz:   50,
		FrequencyYMax: 60,
		ChartWidth:    1000,
		ChartHeight:   320,
		LogLevel:      "info",
	}
}

// Load reads a YAML config from path, layered over defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot run with.
func (c *Config) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("window must be positive, got %v", time.Duration(c.Window))
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %v", time.Duration(c.TickInterval))
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queue_capacity must be positive, got %d", c.QueueCapacity)
	}
	if c.ReferenceHz < 0 {
		return fmt.Errorf("reference_hz must not be negative, got %v", c.ReferenceHz)
	}
	if c.FrequencyYMax <= 0 {
		return fmt.Errorf("frequency_y_max must be positive, got %v", c.FrequencyYMax)
	}
	if c.ChartWidth < 100 || c.ChartHeight < 60 {
		return fmt.Errorf("chart size too small: %dx%d", c.ChartWidth, c.ChartHeight)
	}
	return nil
}
