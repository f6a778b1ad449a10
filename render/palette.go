package render

import "image/color"

// Palette
var (
	Background = color.NRGBA{5, 5, 15, 255}

	ParticleColor = color.NRGBA{100, 120, 200, 255}

	ObstacleHalo = color.NRGBA{80, 40, 120, 255}
	ObstacleBody = color.NRGBA{140, 80, 200, 255}
	ObstacleCore = color.NRGBA{200, 150, 255, 255}

	TrailOuter = color.NRGBA{100, 200, 255, 255}
	TrailInner = color.NRGBA{150, 220, 255, 255}

	BulletGlow = color.NRGBA{100, 255, 200, 150}
	BulletBody = color.NRGBA{150, 255, 220, 255}
	BulletCore = color.NRGBA{255, 255, 255, 255}

	EnemyHaloOuter = color.NRGBA{255, 50, 50, 40}
	EnemyHaloInner = color.NRGBA{255, 80, 80, 80}
	EnemyBody      = color.NRGBA{255, 80, 80, 255}
	EnemyEdge      = color.NRGBA{255, 150, 150, 255}
	EnemyCore      = color.NRGBA{255, 200, 200, 255}

	ExplosionOuter = color.NRGBA{255, 150, 50, 255}
	ExplosionMid   = color.NRGBA{255, 200, 100, 255}
	ExplosionCore  = color.NRGBA{255, 255, 200, 255}

	ShipHalo      = [3]color.NRGBA{{80, 180, 255, 20}, {100, 200, 255, 40}, {120, 220, 255, 70}}
	ShipShadow    = color.NRGBA{60, 120, 180, 255}
	ShipBody      = color.NRGBA{140, 210, 255, 255}
	ShipTail      = color.NRGBA{120, 190, 240, 255}
	ShipCockpit   = color.NRGBA{100, 220, 255, 180}
	ShipHighlight = color.NRGBA{200, 240, 255, 255}

	FlameOuter = color.NRGBA{255, 100, 30, 255}
	FlameMid   = color.NRGBA{255, 180, 50, 255}
	FlameCore  = color.NRGBA{255, 255, 200, 255}

	MoveStick  = color.NRGBA{100, 200, 255, 60}
	AimStick   = color.NRGBA{255, 100, 100, 60}
	StickThumb = color.NRGBA{255, 255, 255, 100}

	Heart     = color.NRGBA{255, 100, 120, 255}
	ScoreText = color.NRGBA{100, 255, 150, 255}
	ClockText = color.NRGBA{200, 220, 255, 200}
	HintText  = color.NRGBA{255, 200, 100, 255}
	Banner    = color.NRGBA{255, 80, 80, 255}
)

// WithAlpha replaces the alpha channel
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Scale multiplies the alpha channel by f in [0, 1]
func Scale(c color.NRGBA, f float64) color.NRGBA {
	c.A = Alpha(float64(c.A) / 255 * f)
	return c
}
