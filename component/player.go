package component

import "github.com/lixenwraith/twin-stick/vmath"

// Player is the single ship, created at screen center and kept for the session
type Player struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Rotation float64 // Facing in radians, persists while the aim stick is released
}

func NewPlayer(start vmath.Vec2) Player {
	return Player{Position: start}
}
