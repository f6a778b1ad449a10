package component

import "github.com/lixenwraith/twin-stick/vmath"

// Bullet is a straight-line projectile; it does not wrap
type Bullet struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Life     float64 // Seconds remaining; zero marks a spent bullet
}
