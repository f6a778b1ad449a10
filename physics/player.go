package physics

import (
	"math"

	"github.com/lixenwraith/twin-stick/component"
	"github.com/lixenwraith/twin-stick/parameter"
	"github.com/lixenwraith/twin-stick/vmath"
)

// StepPlayer advances ship kinematics for one frame
// movement and aim are joystick deflections in [-1, 1]; screen wrap is the caller's job
func StepPlayer(p *component.Player, movement, aim vmath.Vec2, dt float64) {
	p.Velocity = vmath.V2Add(p.Velocity, vmath.V2Scale(movement, parameter.PlayerThrustAccel*dt))

	// Damping is per frame, not per second
	p.Velocity = vmath.V2Scale(p.Velocity, parameter.PlayerDamping)

	p.Position = Integrate(p.Position, p.Velocity, dt)

	if !vmath.V2IsZero(aim) {
		p.Rotation = vmath.V2Angle(aim)
	}
}

// StopPlayer kills all ship momentum
func StopPlayer(p *component.Player) {
	p.Velocity = vmath.Zero
}

// Thrusting reports whether movement exceeds the deadzone on either axis
func Thrusting(movement vmath.Vec2) bool {
	return math.Abs(movement.X) > parameter.ThrustDeadzone || math.Abs(movement.Y) > parameter.ThrustDeadzone
}
