package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/twin-stick/config"
	"github.com/lixenwraith/twin-stick/engine"
	"github.com/lixenwraith/twin-stick/input"
	"github.com/lixenwraith/twin-stick/render"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	envFlag    = flag.String("env", ".env", "Optional dotenv file with TWINSTICK_* overrides")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/twin-stick.log")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
	fpsFlag    = flag.Int("fps", 60, "Frames per second")
)

// errQuit ends the run without being reported as a failure
var errQuit = errors.New("quit")

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "twin-stick: %v\n", err)
		os.Exit(2)
	}

	level, _ := cfg.Log.SlogLevel()
	logger, logFile := setupLogging(cfg.Log.Debug, level)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "twin-stick: %v\n", err)
		os.Exit(1)
	}
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
	if *fpsFlag <= 0 {
		return cfg, fmt.Errorf("%w: fps %d must be positive", config.ErrInvalid, *fpsFlag)
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	// Restore the terminal before the trace so it stays readable
	crashed := func(where string) {
		if r := recover(); r != nil {
			fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}
	defer crashed("TWIN-STICK")

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	queue := input.NewQueue()
	game, err := engine.New(cfg, engine.WithInput(queue), engine.WithLogger(logger))
	if err != nil {
		return err
	}
	loop := engine.NewLoop(game, cfg.Sim)
	v := newView(screen, cfg.World.Width, cfg.World.Height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	var restart atomic.Bool
	resized := make(chan struct{}, 1)

	// Unblocks PollEvent once anything ends the run
	g.Go(func() error {
		<-ctx.Done()
		fini()
		return nil
	})

	g.Go(func() error {
		defer crashed("EVENT POLLER")
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
					return errQuit
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					return errQuit
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
					restart.Store(true)
				}
			case *tcell.EventMouse:
				cols, rows := screen.Size()
				cx, cy := ev.Position()
				vp := newViewport(cols, rows, cfg.World.Width, cfg.World.Height)
				queue.PushMouse(vp.toWorld(cx, cy), ev.Buttons()&tcell.Button1 != 0)
			case *tcell.EventResize:
				select {
				case resized <- struct{}{}:
				default:
				}
			}
		}
	})

	g.Go(func() error {
		defer crashed("GAME LOOP")
		ticker := time.NewTicker(time.Second / time.Duration(*fpsFlag))
		defer ticker.Stop()

		var snap engine.Snapshot
		var events []engine.Event
		var feed render.Feed
		last := time.Now()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-resized:
				screen.Sync()
				v.resize(cfg.World.Width, cfg.World.Height)
			case now := <-ticker.C:
				if restart.Swap(false) && game.Phase() == engine.PhaseGameOver {
					game.Reset()
					loop.Reset()
				}

				frame := now.Sub(last).Seconds()
				loop.Advance(frame)
				last = now

				events = game.DrainEvents(events[:0])
				feed.Apply(events)
				feed.Tick(frame)

				game.Snapshot(&snap)
				v.draw(&snap, &feed)
				screen.Show()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	logger.Info("session ended", "session_id", game.SessionID(), "score", game.Session().Score)
	return nil
}
