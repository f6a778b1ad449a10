package component

import "github.com/lixenwraith/twin-stick/vmath"

// Enemy is a pursuing rocket
type Enemy struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Rotation float64
	Health   int
	Size     float64 // Collision radius, fixed
}
