package engine

import (
	"github.com/lixenwraith/twin-stick/component"
	"github.com/lixenwraith/twin-stick/input"
	"github.com/lixenwraith/twin-stick/physics"
	"github.com/lixenwraith/twin-stick/vmath"
)

// Snapshot is a frame-consistent, renderer-owned copy of the simulation
// Reuse one Snapshot across frames; Game.Snapshot recycles its slices
type Snapshot struct {
	Width  float64
	Height float64

	Session Session
	Phase   Phase
	Player  component.Player
	Move    input.Joystick
	Aim     input.Joystick

	// Thrust is the movement deflection magnitude while outside the deadzone, else 0
	Thrust float64
	// Flashing is set inside the post-hit blink window
	Flashing bool

	Bullets    []component.Bullet
	Enemies    []component.Enemy
	Explosions []component.Explosion
	Trail      []component.TrailSegment
	Obstacles  []component.Obstacle
	Particles  []component.Particle
}

// Snapshot copies the current state into dst
func (g *Game) Snapshot(dst *Snapshot) {
	dst.Width, dst.Height = g.world.Width, g.world.Height
	dst.Session = g.session
	dst.Phase = g.session.Phase()
	dst.Player = g.player
	dst.Move, dst.Aim = g.router.Move, g.router.Aim

	dst.Thrust = 0
	if physics.Thrusting(g.movement) {
		dst.Thrust = vmath.V2Mag(g.movement)
	}
	dst.Flashing = g.session.Flashing()

	dst.Bullets = append(dst.Bullets[:0], g.bullets...)
	dst.Enemies = append(dst.Enemies[:0], g.enemies...)
	dst.Explosions = append(dst.Explosions[:0], g.explosions...)
	dst.Trail = append(dst.Trail[:0], g.trail...)
	dst.Obstacles = append(dst.Obstacles[:0], g.obstacles...)
	dst.Particles = append(dst.Particles[:0], g.particles...)
}
