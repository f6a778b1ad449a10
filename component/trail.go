package component

import "github.com/lixenwraith/twin-stick/vmath"

// TrailSegment is one thrust puff left behind the ship
type TrailSegment struct {
	Position vmath.Vec2
	Life     float64
	Size     float64 // Shrinks while Life decays
}
