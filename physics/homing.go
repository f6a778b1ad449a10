package physics

import (
	"github.com/lixenwraith/twin-stick/component"
	"github.com/lixenwraith/twin-stick/vmath"
)

// Pursue steers an enemy straight at target and integrates its position
// Pure pursuit: no prediction, direction recomputed every call
// When already on the target the previous velocity and facing are kept
func Pursue(e *component.Enemy, target vmath.Vec2, speed, dt float64) {
	toTarget := vmath.V2Sub(target, e.Position)
	if dist := vmath.V2Mag(toTarget); dist > 0 {
		dir := vmath.V2Div(toTarget, dist)
		e.Velocity = vmath.V2Scale(dir, speed)
		e.Rotation = vmath.V2Angle(dir)
	}
	e.Position = Integrate(e.Position, e.Velocity, dt)
}
