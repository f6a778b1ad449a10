package engine

import "github.com/lixenwraith/twin-stick/parameter"

// Phase is the session-level state
type Phase uint8

const (
	// PhaseIntro runs while the intro fade is still visible
	PhaseIntro Phase = iota
	// PhaseActive is normal play, entered once the intro fade completes
	PhaseActive
	// PhaseGameOver is terminal; no transition leaves it
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseActive:
		return "Active"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session holds the scalar state of one game
// Owned by a single Game and mutated only inside Update
type Session struct {
	Health      int
	Score       int
	ElapsedTime float64 // Seconds since session start
	IntroAlpha  float64 // 1 → 0 over the intro fade
	GameStarted bool    // One-way latch set when IntroAlpha reaches 0
	SafeTimer   float64 // Player-enemy collisions are skipped while > 0
	GameOver    bool

	ShootCooldown   float64
	EnemySpawnTimer float64
}

// NewSession returns the state at session start
func NewSession() Session {
	return Session{
		Health:     parameter.InitialHealth,
		IntroAlpha: 1.0,
		SafeTimer:  parameter.SafePeriod,
	}
}

// Phase derives the session phase from the flags
func (s Session) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.GameStarted:
		return PhaseActive
	default:
		return PhaseIntro
	}
}

// Safe reports whether a safe window (initial grace or post-hit) is open
func (s Session) Safe() bool {
	return s.SafeTimer > 0
}

// Flashing reports whether the ship is inside its post-hit blink window
func (s Session) Flashing() bool {
	return s.SafeTimer > 0 && s.SafeTimer < parameter.HitInvulnerability
}
