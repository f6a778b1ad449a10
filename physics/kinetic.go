package physics

import "github.com/lixenwraith/twin-stick/vmath"

// Integrate performs one explicit Euler step: p = p + v*dt
func Integrate(pos, vel vmath.Vec2, dt float64) vmath.Vec2 {
	return vmath.V2Add(pos, vmath.V2Scale(vel, dt))
}
