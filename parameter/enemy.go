package parameter

// Enemy Rockets
const (
	// EnemySpeed is pursuit speed (px/s)
	EnemySpeed = 150.0

	// EnemyInitialHealth is bullet hits needed to destroy an enemy
	EnemyInitialHealth = 2

	// EnemySize is the fixed enemy radius
	EnemySize = 25.0

	// EnemyEdgeMargin is spawn distance outside the screen, also the wrap margin
	EnemyEdgeMargin = 50.0

	// EnemyKillScore is awarded per destroyed enemy
	EnemyKillScore = 100
)

// Spawn Cadence
const (
	// EnemySpawnIntervalMin and EnemySpawnIntervalMax bound the re-rolled spawn timer [min, max)
	EnemySpawnIntervalMin = 1.0
	EnemySpawnIntervalMax = 2.5
)
