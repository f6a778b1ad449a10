package render

import (
	"math"

	"github.com/lixenwraith/twin-stick/engine"
	"github.com/lixenwraith/twin-stick/vmath"
)

const (
	// shakeDuration is how long the HUD shakes after a ship hit (s)
	shakeDuration = 0.3

	// shakeAmplitude is the peak HUD offset (px), decaying linearly
	shakeAmplitude = 6.0
)

// Feed folds drained gameplay events into HUD state
// A session start clears it, so hosts need no separate restart hook
type Feed struct {
	Kills int
	Hits  int

	shake float64 // Seconds of hit shake left
}

// Apply consumes one batch of drained events in order
func (f *Feed) Apply(events []engine.Event) {
	for _, ev := range events {
		switch ev.Type {
		case engine.EventSessionStarted:
			*f = Feed{}
		case engine.EventEnemyKilled:
			f.Kills++
		case engine.EventPlayerHit:
			f.Hits++
			f.shake = shakeDuration
		}
	}
}

// Tick decays the hit shake by dt seconds
func (f *Feed) Tick(dt float64) {
	if dt > 0 {
		f.shake = max(0, f.shake-dt)
	}
}

// Shaking reports whether a recent hit is still being shown
func (f *Feed) Shaking() bool {
	return f.shake > 0
}

// Shake returns the HUD offset at time t, zero once settled
func (f *Feed) Shake(t float64) vmath.Vec2 {
	if f.shake <= 0 {
		return vmath.Zero
	}
	a := shakeAmplitude * f.shake / shakeDuration
	return vmath.V2(math.Sin(t*90)*a, math.Cos(t*70)*a)
}
