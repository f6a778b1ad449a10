package engine

import (
	"math"

	"github.com/lixenwraith/twin-stick/component"
	"github.com/lixenwraith/twin-stick/parameter"
	"github.com/lixenwraith/twin-stick/vmath"
)

// Screen edges an enemy can enter from
const (
	edgeTop = iota
	edgeBottom
	edgeLeft
	edgeRight
)

// spawnEnemy places one idle enemy just outside a uniformly chosen edge
func (g *Game) spawnEnemy() {
	w, h := g.world.Width, g.world.Height
	m := parameter.EnemyEdgeMargin

	edge := int(g.rng.Float64() * 4)
	if edge > edgeRight {
		edge = edgeRight
	}

	var pos vmath.Vec2
	switch edge {
	case edgeTop:
		pos = vmath.V2(randRange(g.rng, 0, w), -m)
	case edgeBottom:
		pos = vmath.V2(randRange(g.rng, 0, w), h+m)
	case edgeLeft:
		pos = vmath.V2(-m, randRange(g.rng, 0, h))
	default:
		pos = vmath.V2(w+m, randRange(g.rng, 0, h))
	}

	g.enemies = append(g.enemies, component.Enemy{
		Position: pos,
		Health:   parameter.EnemyInitialHealth,
		Size:     parameter.EnemySize,
	})
	g.emit(EventEnemySpawned, pos)
}

// spawnExplosion starts a blast twice the size of the destroyed enemy
func (g *Game) spawnExplosion(pos vmath.Vec2, enemySize float64) {
	g.explosions = append(g.explosions, component.Explosion{
		Position: pos,
		Life:     parameter.ExplosionLifetime,
		Size:     enemySize * parameter.ExplosionSizeFactor,
	})
}

// spawnParticles fills dst with n drifting background particles
func (g *Game) spawnParticles(dst []component.Particle, n int) []component.Particle {
	w, h := g.world.Width, g.world.Height
	v := parameter.ParticleMaxSpeed
	for range n {
		dst = append(dst, component.Particle{
			Position: vmath.V2(randRange(g.rng, 0, w), randRange(g.rng, 0, h)),
			Velocity: vmath.V2(randRange(g.rng, -v, v), randRange(g.rng, -v, v)),
			Size:     randRange(g.rng, parameter.ParticleMinSize, parameter.ParticleMaxSize),
			Alpha:    randRange(g.rng, parameter.ParticleMinAlpha, parameter.ParticleMaxAlpha),
		})
	}
	return dst
}

// spawnObstacles lays n obstacles along a sine wave across the middle of the screen
func (g *Game) spawnObstacles(dst []component.Obstacle, n int) []component.Obstacle {
	w, h := g.world.Width, g.world.Height
	for i := range n {
		fi := float64(i)
		dst = append(dst, component.Obstacle{
			Position: vmath.V2(
				w*parameter.ObstacleStartX+fi*parameter.ObstacleSpacing,
				h*0.5+math.Sin(fi*parameter.ObstacleWaveStep)*parameter.ObstacleWaveHeight,
			),
			Size:      parameter.ObstacleSize,
			GlowPhase: randRange(g.rng, 0, parameter.ObstacleGlowPhaseMax),
		})
	}
	return dst
}
