package component

import "github.com/lixenwraith/twin-stick/vmath"

// Explosion is an expanding visual blast with no gameplay effect
type Explosion struct {
	Position vmath.Vec2
	Life     float64
	Size     float64 // Grows while Life decays
}
