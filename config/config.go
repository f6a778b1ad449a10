package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/twin-stick/parameter"
	"github.com/lixenwraith/twin-stick/vmath"
)

// ErrInvalid is returned, wrapped, for any configuration that fails validation
var ErrInvalid = errors.New("invalid config")

// EnvPrefix namespaces environment overrides
const EnvPrefix = "TWINSTICK_"

// Config is the full tunable surface of a session and its host
type Config struct {
	Window WindowConfig `toml:"window"`
	World  WorldConfig  `toml:"world"`
	Sim    SimConfig    `toml:"sim"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// WorldConfig sizes the playfield and its fixed populations
type WorldConfig struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	Particles      int     `toml:"particles"`
	Obstacles      int     `toml:"obstacles"`
	JoystickRadius float64 `toml:"joystick_radius"`
}

// SimConfig controls stepping and randomness
type SimConfig struct {
	// Seed for the session RNG; 0 picks one from the clock
	Seed uint64 `toml:"seed"`

	// FixedStep > 0 switches the loop to a fixed-timestep accumulator (seconds)
	FixedStep float64 `toml:"fixed_step"`

	// MaxFrameDelta clamps a single host frame (seconds)
	MaxFrameDelta float64 `toml:"max_frame_delta"`

	// MaxSubsteps caps fixed steps per host frame
	MaxSubsteps int `toml:"max_substeps"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Debug bool   `toml:"debug"`
}

// Default returns the stock 1280×720 configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Dual Joystick Game",
			Width:  1280,
			Height: 720,
		},
		World: WorldConfig{
			Width:          1280,
			Height:         720,
			Particles:      parameter.ParticleCount,
			Obstacles:      parameter.ObstacleCount,
			JoystickRadius: parameter.JoystickRadius,
		},
		Sim: SimConfig{
			MaxFrameDelta: 0.25,
			MaxSubsteps:   8,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file over the defaults; an empty path yields defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadEnv loads dotenv files into the process environment then applies TWINSTICK_* overrides
// Missing dotenv files are not an error
func LoadEnv(cfg *Config, files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return ApplyEnv(cfg, os.LookupEnv)
}

// ApplyEnv overlays environment values using lookup
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	floatVars := map[string]*float64{
		"WORLD_WIDTH":     &cfg.World.Width,
		"WORLD_HEIGHT":    &cfg.World.Height,
		"JOYSTICK_RADIUS": &cfg.World.JoystickRadius,
		"FIXED_STEP":      &cfg.Sim.FixedStep,
		"MAX_FRAME_DELTA": &cfg.Sim.MaxFrameDelta,
	}
	intVars := map[string]*int{
		"PARTICLES":    &cfg.World.Particles,
		"OBSTACLES":    &cfg.World.Obstacles,
		"MAX_SUBSTEPS": &cfg.Sim.MaxSubsteps,
	}

	for name, dst := range floatVars {
		if v, ok := lookup(EnvPrefix + name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err)
			}
			*dst = f
		}
	}
	for name, dst := range intVars {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err)
			}
			*dst = n
		}
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q: %v", ErrInvalid, EnvPrefix, v, err)
		}
		cfg.Sim.Seed = n
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sDEBUG=%q: %v", ErrInvalid, EnvPrefix, v, err)
		}
		cfg.Log.Debug = b
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case !finite(c.World.Width, c.World.Height, c.World.JoystickRadius, c.Sim.FixedStep, c.Sim.MaxFrameDelta):
		return fmt.Errorf("%w: sizes and timings must be finite", ErrInvalid)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v must be positive", ErrInvalid, c.World.Width, c.World.Height)
	case c.World.Particles < 0:
		return fmt.Errorf("%w: particles %d must not be negative", ErrInvalid, c.World.Particles)
	case c.World.Obstacles < 0:
		return fmt.Errorf("%w: obstacles %d must not be negative", ErrInvalid, c.World.Obstacles)
	case c.World.JoystickRadius <= 0:
		return fmt.Errorf("%w: joystick radius %v must be positive", ErrInvalid, c.World.JoystickRadius)
	case c.Sim.FixedStep < 0:
		return fmt.Errorf("%w: fixed step %v must not be negative", ErrInvalid, c.Sim.FixedStep)
	case c.Sim.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: max frame delta %v must be positive", ErrInvalid, c.Sim.MaxFrameDelta)
	case c.Sim.FixedStep > 0 && c.Sim.MaxSubsteps <= 0:
		return fmt.Errorf("%w: max substeps %d must be positive with a fixed step", ErrInvalid, c.Sim.MaxSubsteps)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if !vmath.IsFinite(v) {
			return false
		}
	}
	return true
}

// SlogLevel parses Level; Debug forces debug
func (l LogConfig) SlogLevel() (slog.Level, error) {
	if l.Debug {
		return slog.LevelDebug, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	return lvl, nil
}
