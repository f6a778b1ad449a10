package parameter

// Bullets
const (
	// BulletSpeed is muzzle speed (px/s)
	BulletSpeed = 600.0

	// BulletLifetime is seconds before a bullet expires
	BulletLifetime = 2.0

	// BulletHitRadius is added to enemy size for bullet contact
	BulletHitRadius = 10.0

	// FireCooldown caps the fire rate at ~6.7 shots/s
	FireCooldown = 0.15
)
