package main

import (
	"log/slog"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/twin-stick/config"
	"github.com/lixenwraith/twin-stick/engine"
	"github.com/lixenwraith/twin-stick/input"
	"github.com/lixenwraith/twin-stick/render"
	"github.com/lixenwraith/twin-stick/vmath"
)

// host adapts the simulation to ebiten's Update/Draw/Layout cycle
type host struct {
	game  *engine.Game
	loop  *engine.Loop
	queue *input.Queue

	width, height int

	snap   engine.Snapshot
	events []engine.Event
	feed   render.Feed

	touches  []ebiten.TouchID
	pressed  []ebiten.TouchID
	released []ebiten.TouchID
}

func newHost(cfg config.Config, logger *slog.Logger) (*host, error) {
	queue := input.NewQueue()
	game, err := engine.New(cfg, engine.WithInput(queue), engine.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &host{
		game:   game,
		loop:   engine.NewLoop(game, cfg.Sim),
		queue:  queue,
		width:  int(cfg.World.Width),
		height: int(cfg.World.Height),
	}, nil
}

func (h *host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && h.game.Phase() == engine.PhaseGameOver {
		h.game.Reset()
		h.loop.Reset()
	}

	h.pollTouches()
	h.pollMouse()

	dt := 1 / float64(ebiten.TPS())
	h.loop.Advance(dt)
	h.events = h.game.DrainEvents(h.events[:0])
	h.feed.Apply(h.events)
	h.feed.Tick(dt)
	return nil
}

// pollTouches turns ebiten's per-tick touch sets into phase events
func (h *host) pollTouches() {
	h.pressed = inpututil.AppendJustPressedTouchIDs(h.pressed[:0])
	for _, id := range h.pressed {
		x, y := ebiten.TouchPosition(id)
		h.queue.PushTouch(input.TouchEvent{ID: uint64(id), Phase: input.TouchStarted, Pos: vmath.V2(float64(x), float64(y))})
	}

	h.touches = ebiten.AppendTouchIDs(h.touches[:0])
	for _, id := range h.touches {
		if slices.Contains(h.pressed, id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x != px || y != py {
			h.queue.PushTouch(input.TouchEvent{ID: uint64(id), Phase: input.TouchMoved, Pos: vmath.V2(float64(x), float64(y))})
		}
	}

	h.released = inpututil.AppendJustReleasedTouchIDs(h.released[:0])
	for _, id := range h.released {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		h.queue.PushTouch(input.TouchEvent{ID: uint64(id), Phase: input.TouchEnded, Pos: vmath.V2(float64(x), float64(y))})
	}
}

func (h *host) pollMouse() {
	x, y := ebiten.CursorPosition()
	h.queue.PushMouse(vmath.V2(float64(x), float64(y)), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (h *host) Draw(screen *ebiten.Image) {
	h.game.Snapshot(&h.snap)
	drawSnapshot(screen, &h.snap, &h.feed)
}

// Layout keeps the world at its configured logical size and lets ebiten scale it
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}
