package engine

import "github.com/lixenwraith/twin-stick/input"

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Rand,InputSource

// Rand is the session random source; vmath.FastRand satisfies it
type Rand interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}

// InputSource delivers everything captured since the previous poll
// input.Queue is the production implementation
type InputSource interface {
	Poll() input.Frame
}

// randRange returns a uniform value in [min, max)
func randRange(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
