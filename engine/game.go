package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/twin-stick/component"
	"github.com/lixenwraith/twin-stick/config"
	"github.com/lixenwraith/twin-stick/input"
	"github.com/lixenwraith/twin-stick/parameter"
	"github.com/lixenwraith/twin-stick/physics"
	"github.com/lixenwraith/twin-stick/vmath"
)

// Game owns one session: every entity pool, the joysticks and the session scalars
// Not safe for concurrent use; the host calls Update and Snapshot from one goroutine
type Game struct {
	world  config.WorldConfig
	rng    Rand
	source InputSource
	base   *slog.Logger
	log    *slog.Logger

	sessionID string
	session   Session
	router    *input.Router
	player    component.Player

	bullets    []component.Bullet
	enemies    []component.Enemy
	explosions []component.Explosion
	trail      []component.TrailSegment
	obstacles  []component.Obstacle
	particles  []component.Particle

	// Per-frame joystick deflections, sampled once during input ingestion
	movement vmath.Vec2
	aim      vmath.Vec2

	touching bool // Ship overlapped an obstacle last frame
	dead     []int
	events   []Event
}

// Option customises a Game at construction
type Option func(*Game)

// WithRand injects the random source; the default is a FastRand seeded from config or the clock
func WithRand(r Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithInput attaches an input source polled once per Update; without one the sticks stay idle
func WithInput(src InputSource) Option {
	return func(g *Game) { g.source = src }
}

// WithLogger sets the structured logger; the default discards
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.base = l }
}

// New validates cfg and starts a session
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{world: cfg.World}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		seed := cfg.Sim.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = vmath.NewFastRand(seed)
	}
	if g.base == nil {
		g.base = slog.New(slog.DiscardHandler)
	}

	g.Reset()
	return g, nil
}

// Reset discards the current session and starts a fresh one with the same configuration
func (g *Game) Reset() {
	g.sessionID = uuid.NewString()
	g.log = g.base.With("session_id", g.sessionID)

	g.session = NewSession()
	g.router = input.NewRouter(g.world.JoystickRadius)
	g.player = component.NewPlayer(vmath.V2(g.world.Width/2, g.world.Height/2))
	g.movement, g.aim = vmath.Zero, vmath.Zero
	g.touching = false

	g.bullets = g.bullets[:0]
	g.enemies = g.enemies[:0]
	g.explosions = g.explosions[:0]
	g.trail = g.trail[:0]
	g.events = g.events[:0]

	g.particles = g.spawnParticles(g.particles[:0], g.world.Particles)
	g.obstacles = g.spawnObstacles(g.obstacles[:0], g.world.Obstacles)

	g.emit(EventSessionStarted, g.player.Position)
}

// Update advances the session by dt seconds
// Negative or non-finite dt is dropped
func (g *Game) Update(dt float64) {
	if dt < 0 || !vmath.IsFinite(dt) {
		g.log.Warn("dropping invalid frame delta", "dt", dt)
		return
	}

	g.stepTimers(dt)
	g.ingestInput()
	g.stepPlayer(dt)
	g.stepFiring(dt)
	g.stepTrail(dt)
	g.wrapPlayer()
	g.stepBullets(dt)
	g.stepSpawner(dt)
	g.stepEnemies(dt)
	g.resolveBulletHits()
	g.resolvePlayerHit()
	g.stepExplosions(dt)
	g.stepParticles(dt)
	g.stepObstacles(dt)
	g.checkGameOver()
}

// SessionID identifies the current session in logs
func (g *Game) SessionID() string {
	return g.sessionID
}

// Session returns a copy of the session scalars
func (g *Game) Session() Session {
	return g.session
}

// Phase returns the current session phase
func (g *Game) Phase() Phase {
	return g.session.Phase()
}

// Player returns a copy of the ship state
func (g *Game) Player() component.Player {
	return g.player
}

// Joysticks returns copies of the movement and aim sticks
func (g *Game) Joysticks() (move, aim input.Joystick) {
	return g.router.Move, g.router.Aim
}

// Size returns the world dimensions
func (g *Game) Size() (width, height float64) {
	return g.world.Width, g.world.Height
}

// Pool accessors return the live slices; callers must not modify or retain them across Update

func (g *Game) Bullets() []component.Bullet { return g.bullets }
func (g *Game) Enemies() []component.Enemy { return g.enemies }
func (g *Game) Explosions() []component.Explosion { return g.explosions }
func (g *Game) Trail() []component.TrailSegment { return g.trail }
func (g *Game) Obstacles() []component.Obstacle { return g.obstacles }
func (g *Game) Particles() []component.Particle { return g.particles }

// ObstacleContact returns the index of the first obstacle the ship overlaps
// Obstacles are decorative: contact has no gameplay effect
func (g *Game) ObstacleContact() (int, bool) {
	for i, o := range g.obstacles {
		if physics.Overlap(g.player.Position, o.Position, parameter.PlayerCollisionRadius+o.Size) {
			return i, true
		}
	}
	return -1, false
}
