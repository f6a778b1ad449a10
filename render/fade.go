package render

import (
	"fmt"
	"math"
)

// Alpha converts a [0, 1] opacity to a color channel, clamped
func Alpha(f float64) uint8 {
	switch {
	case !(f > 0):
		return 0
	case f >= 1:
		return 255
	default:
		return uint8(f * 255)
	}
}

// Pulse maps sin(x) onto [1, 255]
func Pulse(x float64) uint8 {
	return uint8(math.Sin(x)*127 + 128)
}

// ObstacleGlow is the obstacle brightness for a glow phase, never below 0.3
func ObstacleGlow(phase float64) float64 {
	return math.Max(0.3, math.Sin(phase)*0.3+0.7)
}

// TrailAlpha fades a segment with its remaining life
func TrailAlpha(life float64) uint8 {
	return uint8(math.Max(0, math.Min(life, 1)) * 100)
}

// TrailRadius shrinks with both size and life
func TrailRadius(size, life float64) float64 {
	return math.Max(0, size*life)
}

func ExplosionAlpha(life float64) uint8 {
	return Alpha(life)
}

// ShipAlpha blinks the hull while flashing, else fully opaque
func ShipAlpha(safeTimer float64, flashing bool) uint8 {
	if !flashing {
		return 255
	}
	return Pulse(safeTimer * 30)
}

// SafeLabelAlpha breathes the "Safe Zone" label
func SafeLabelAlpha(safeTimer float64) uint8 {
	return Pulse(safeTimer * 3)
}

// HintVisible reports whether the control hint is still shown
func HintVisible(elapsed float64) bool {
	return elapsed < 5
}

func HintAlpha(elapsed float64) uint8 {
	return Pulse(elapsed * 2)
}

// Clock formats elapsed seconds as MM:SS
func Clock(elapsed float64) string {
	if elapsed < 0 {
		elapsed = 0
	}
	return fmt.Sprintf("%02d:%02d", int(elapsed/60), int(math.Mod(elapsed, 60)))
}
