package config

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.World.Width != 1280 || cfg.World.Height != 720 {
		t.Errorf("Expected 1280x720 world, got %vx%v", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.Particles != 150 || cfg.World.Obstacles != 5 {
		t.Errorf("Expected 150 particles and 5 obstacles, got %d and %d", cfg.World.Particles, cfg.World.Obstacles)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twin-stick.toml")
	data := `
[world]
width = 800
height = 600
particles = 10

[sim]
seed = 42
fixed_step = 0.0166
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Errorf("Expected 800x600, got %vx%v", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.Particles != 10 {
		t.Errorf("Expected 10 particles, got %d", cfg.World.Particles)
	}
	// Untouched keys keep defaults
	if cfg.World.Obstacles != 5 {
		t.Errorf("Expected default obstacles 5, got %d", cfg.World.Obstacles)
	}
	if cfg.Sim.Seed != 42 || cfg.Sim.FixedStep != 0.0166 {
		t.Errorf("Expected seed 42 and fixed step 0.0166, got %d and %v", cfg.Sim.Seed, cfg.Sim.FixedStep)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg != Default() {
		t.Error("Expected defaults for empty path")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[world]\nwidht = 10\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown key, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TWINSTICK_WORLD_WIDTH": "1920",
		"TWINSTICK_PARTICLES":   "0",
		"TWINSTICK_SEED":        "7",
		"TWINSTICK_DEBUG":       "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := ApplyEnv(&cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.World.Width != 1920 {
		t.Errorf("Expected width 1920, got %v", cfg.World.Width)
	}
	if cfg.World.Particles != 0 {
		t.Errorf("Expected 0 particles, got %d", cfg.World.Particles)
	}
	if cfg.Sim.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Sim.Seed)
	}
	if lvl, _ := cfg.Log.SlogLevel(); lvl != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", lvl)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "TWINSTICK_OBSTACLES" {
			return "many", true
		}
		return "", false
	}
	cfg := Default()
	if err := ApplyEnv(&cfg, lookup); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestLoadEnvDotfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TWINSTICK_OBSTACLES=2\n"), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("TWINSTICK_OBSTACLES") })

	cfg := Default()
	if err := LoadEnv(&cfg, path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if cfg.World.Obstacles != 2 {
		t.Errorf("Expected 2 obstacles from dotenv, got %d", cfg.World.Obstacles)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.World.Width = 0 }},
		{"negative height", func(c *Config) { c.World.Height = -1 }},
		{"negative particles", func(c *Config) { c.World.Particles = -1 }},
		{"negative obstacles", func(c *Config) { c.World.Obstacles = -3 }},
		{"zero joystick radius", func(c *Config) { c.World.JoystickRadius = 0 }},
		{"negative fixed step", func(c *Config) { c.Sim.FixedStep = -0.01 }},
		{"zero frame clamp", func(c *Config) { c.Sim.MaxFrameDelta = 0 }},
		{"fixed step without substeps", func(c *Config) { c.Sim.FixedStep = 0.01; c.Sim.MaxSubsteps = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"NaN width", func(c *Config) { c.World.Width = math.NaN() }},
		{"infinite height", func(c *Config) { c.World.Height = math.Inf(1) }},
		{"NaN joystick radius", func(c *Config) { c.World.JoystickRadius = math.NaN() }},
		{"NaN fixed step", func(c *Config) { c.Sim.FixedStep = math.NaN() }},
		{"infinite frame clamp", func(c *Config) { c.Sim.MaxFrameDelta = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}
