package engine

import (
	"github.com/lixenwraith/twin-stick/config"
	"github.com/lixenwraith/twin-stick/vmath"
)

// Stepper is the simulation a Loop drives; *Game implements it
type Stepper interface {
	Update(dt float64)
}

// Loop converts host frame deltas into simulation steps
// With FixedStep == 0 each frame is one variable step; otherwise frames feed an accumulator
// drained in FixedStep slices, at most MaxSubsteps per frame
type Loop struct {
	sim Stepper

	fixedStep   float64
	maxDelta    float64
	maxSubsteps int

	acc float64
}

// NewLoop binds sim to the stepping policy in cfg
func NewLoop(sim Stepper, cfg config.SimConfig) *Loop {
	return &Loop{
		sim:         sim,
		fixedStep:   cfg.FixedStep,
		maxDelta:    cfg.MaxFrameDelta,
		maxSubsteps: cfg.MaxSubsteps,
	}
}

// Advance feeds one host frame and returns the number of simulation steps taken
func (l *Loop) Advance(frame float64) int {
	if frame < 0 || !vmath.IsFinite(frame) {
		return 0
	}
	if l.maxDelta > 0 && frame > l.maxDelta {
		frame = l.maxDelta
	}

	if l.fixedStep <= 0 {
		l.sim.Update(frame)
		return 1
	}

	l.acc += frame
	steps := 0
	for l.acc >= l.fixedStep && steps < l.maxSubsteps {
		l.sim.Update(l.fixedStep)
		l.acc -= l.fixedStep
		steps++
	}

	// Spiral guard: drop backlog the substep cap could not absorb
	if steps == l.maxSubsteps && l.acc >= l.fixedStep {
		l.acc = 0
	}
	return steps
}

// Alpha is the leftover fraction of a fixed step, for render interpolation
func (l *Loop) Alpha() float64 {
	if l.fixedStep <= 0 {
		return 0
	}
	return l.acc / l.fixedStep
}

// Reset clears the accumulator
func (l *Loop) Reset() {
	l.acc = 0
}
