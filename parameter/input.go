package parameter

// Virtual Joysticks
const (
	// JoystickRadius is max thumb travel from the joystick center (px)
	JoystickRadius = 80.0

	// ThrustDeadzone is the per-axis movement magnitude below which the ship is coasting
	ThrustDeadzone = 0.1
)
