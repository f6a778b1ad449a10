package component

import "github.com/lixenwraith/twin-stick/vmath"

// Particle is background dust; never removed, wraps at screen bounds
type Particle struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Size     float64
	Alpha    float64
}
