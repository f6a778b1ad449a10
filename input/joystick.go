package input

import "github.com/lixenwraith/twin-stick/vmath"

// Joystick converts a drag into a direction vector clamped to a circle
// Idle is the initial state; Start activates, End returns to idle
type Joystick struct {
	Center  vmath.Vec2 // Drag origin
	Current vmath.Vec2 // Thumb position, within Radius of Center
	Active  bool
	Radius  float64 // Max thumb travel, fixed at construction
}

// NewJoystick creates an idle joystick; radius must be positive
func NewJoystick(radius float64) Joystick {
	return Joystick{Radius: radius}
}

// Start anchors the joystick at pos
func (j *Joystick) Start(pos vmath.Vec2) {
	j.Center = pos
	j.Current = pos
	j.Active = true
}

// Move drags the thumb toward pos, clamped to Radius; no-op when idle
func (j *Joystick) Move(pos vmath.Vec2) {
	if !j.Active {
		return
	}

	delta := vmath.V2Sub(pos, j.Center)
	if vmath.V2Mag(delta) > j.Radius {
		delta = vmath.V2Scale(vmath.V2Normalize(delta), j.Radius)
	}
	j.Current = vmath.V2Add(j.Center, delta)
}

// End releases the thumb and snaps it back to neutral
func (j *Joystick) End() {
	j.Active = false
	j.Current = j.Center
}

// Input returns the deflection in [-1, 1] per axis, magnitude ≤ 1, zero when idle
func (j *Joystick) Input() vmath.Vec2 {
	if !j.Active {
		return vmath.Zero
	}
	return vmath.V2Div(vmath.V2Sub(j.Current, j.Center), j.Radius)
}
