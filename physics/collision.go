package physics

import "github.com/lixenwraith/twin-stick/vmath"

// Overlap reports whether a and b are closer than reach (strict)
func Overlap(a, b vmath.Vec2, reach float64) bool {
	return vmath.V2MagSq(vmath.V2Sub(a, b)) < reach*reach
}
