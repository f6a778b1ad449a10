package parameter

// Ship Kinematics
const (
	// PlayerThrustAccel is velocity gained per second at full stick deflection (px/s²)
	PlayerThrustAccel = 400.0

	// PlayerDamping is the per-frame velocity multiplier, applied regardless of input
	PlayerDamping = 0.98

	// PlayerCollisionRadius is the ship radius used against enemies
	PlayerCollisionRadius = 40.0

	// PlayerNoseOffset is the distance from ship center to the bullet spawn point
	PlayerNoseOffset = 45.0
)

// Ship Rendering
const (
	PlayerHullSize = 40.0

	// PlayerFlameLength is flame length at full thrust (px)
	PlayerFlameLength = 35.0
)
