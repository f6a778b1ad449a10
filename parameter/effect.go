package parameter

// Explosion
const (
	// ExplosionLifetime is seconds of life at spawn
	ExplosionLifetime = 0.5

	// ExplosionDecayRate multiplies dt when aging
	ExplosionDecayRate = 2.0

	// ExplosionGrowthRate is size gained per second (px/s)
	ExplosionGrowthRate = 100.0

	// ExplosionSizeFactor scales the dying enemy size into the initial blast size
	ExplosionSizeFactor = 2.0
)

// Thrust Trail
const (
	TrailLifetime = 1.0
	TrailSize     = 30.0

	// TrailDecayRate multiplies dt when aging
	TrailDecayRate = 2.0

	// TrailShrinkRate is size lost per second (px/s)
	TrailShrinkRate = 40.0

	// TrailMaxSegments caps the trail; oldest segments go first
	TrailMaxSegments = 20
)
