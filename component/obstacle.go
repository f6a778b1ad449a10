package component

import "github.com/lixenwraith/twin-stick/vmath"

// Obstacle is decorative; only sin(GlowPhase) is consumed
type Obstacle struct {
	Position  vmath.Vec2
	Size      float64
	GlowPhase float64
}
