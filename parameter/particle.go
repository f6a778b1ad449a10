package parameter

// Ambient Particles
const (
	// ParticleCount is the default ambient particle population
	ParticleCount = 150

	// ParticleMaxSpeed bounds each velocity axis to [-max, max) (px/s)
	ParticleMaxSpeed = 15.0

	ParticleMinSize = 1.0
	ParticleMaxSize = 3.0

	ParticleMinAlpha = 0.1
	ParticleMaxAlpha = 0.4

	// Pulse: alpha = base + sin(freq*t + phase*x) * amplitude
	ParticlePulseBase      = 0.2
	ParticlePulseAmplitude = 0.1
	ParticlePulseFrequency = 2.0
	ParticlePulsePhase     = 0.01
)

// Obstacles
const (
	// ObstacleCount is the default number of decorative obstacles
	ObstacleCount = 5

	ObstacleSize = 40.0

	// ObstacleStartX is the fraction of screen width where the row starts
	ObstacleStartX = 0.3

	// ObstacleSpacing is horizontal distance between obstacles (px)
	ObstacleSpacing = 150.0

	// ObstacleWaveStep and ObstacleWaveHeight shape the vertical sine offset
	ObstacleWaveStep   = 50.0
	ObstacleWaveHeight = 100.0

	// ObstacleGlowRate is glow phase advance per second (rad/s)
	ObstacleGlowRate = 2.0

	// ObstacleGlowPhaseMax bounds the random initial glow phase
	ObstacleGlowPhaseMax = 6.28
)
