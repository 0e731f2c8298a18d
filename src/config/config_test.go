package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if time.Duration(cfg.Window) != time.Second {
		t.Fatalf("default window = %v; want 1s", time.Duration(cfg.Window))
	}
	if time.Duration(cfg.TickInterval) != 100*time.Millisecond {
		t.Fatalf("default tick = %v; want 100ms", time.Duration(cfg.TickInterval))
	}
	if cfg.ReferenceHz != 50 || cfg.FrequencyYMax != 60 {
		t.Fatalf("default frequency scale = %v/%v; want 50/60", cfg.ReferenceHz, cfg.FrequencyYMax)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.QueueCapacity != Default().QueueCapacity {
		t.Fatalf("empty path did not return defaults")
	}
}

func TestLoad_OverridesAndKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
window: 2s
tick_interval: 50ms
queue_capacity: 256
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if time.Duration(cfg.Window) != 2*time.Second {
		t.Fatalf("window = %v; want 2s", time.Duration(cfg.Window))
	}
	if time.Duration(cfg.TickInterval) != 50*time.Millisecond {
		t.Fatalf("tick = %v; want 50ms", time.Duration(cfg.TickInterval))
	}
	if cfg.QueueCapacity != 256 {
		t.Fatalf("queue_capacity = %d; want 256", cfg.QueueCapacity)
	}
	// untouched keys keep defaults
	if cfg.ReferenceHz != 50 || cfg.ChartWidth != 1000 {
		t.Fatalf("defaults lost on partial config")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, "window: soon\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Fatalf("expected invalid duration error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window", func(c *Config) { c.Window = 0 }},
		{"negative tick", func(c *Config) { c.TickInterval = Duration(-time.Millisecond) }},
		{"zero queue capacity", func(c *Config) { c.QueueCapacity = 0 }},
		{"negative reference", func(c *Config) { c.ReferenceHz = -1 }},
		{"zero y max", func(c *Config) { c.FrequencyYMax = 0 }},
		{"tiny chart", func(c *Config) { c.ChartWidth = 10 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
