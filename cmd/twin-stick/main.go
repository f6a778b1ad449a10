package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/twin-stick/config"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	envFlag    = flag.String("env", ".env", "Optional dotenv file with TWINSTICK_* overrides")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "twin-stick: %v\n", err)
		os.Exit(2)
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	h, err := newHost(cfg, logger)
	if err != nil {
		logger.Error("start session", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", "error", err)
		os.Exit(1)
	}
	logger.Info("session ended", "session_id", h.game.SessionID(), "score", h.game.Session().Score)
}

// loadConfig layers defaults, the TOML file, dotenv/env and finally flags
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if err := config.LoadEnv(&cfg, *envFlag); err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "seed":
			cfg.Sim.Seed = *seedFlag
		}
	})
	return cfg, cfg.Validate()
}
