package parameter

// Session
const (
	// InitialHealth is ship hits before game over
	InitialHealth = 3

	// IntroFadeRate is intro alpha lost per second
	IntroFadeRate = 0.5

	// SafePeriod is the grace window at session start (s)
	SafePeriod = 3.0

	// HitInvulnerability is the safe window after each ship hit (s)
	HitInvulnerability = 0.3

	// HitFlashFrequency drives the ship blink inside the hit window
	HitFlashFrequency = 30.0
)
