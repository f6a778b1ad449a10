package engine

import (
	"math"
	"slices"

	"github.com/lixenwraith/twin-stick/component"
	"github.com/lixenwraith/twin-stick/parameter"
	"github.com/lixenwraith/twin-stick/physics"
	"github.com/lixenwraith/twin-stick/vmath"
)

// ===== TIMERS & INPUT =====

func (g *Game) stepTimers(dt float64) {
	s := &g.session
	s.ElapsedTime += dt

	if !s.GameStarted {
		s.IntroAlpha -= parameter.IntroFadeRate * dt
		if s.IntroAlpha <= 0 {
			s.IntroAlpha = 0
			s.GameStarted = true
			g.emit(EventGameStarted, vmath.Zero)
		}
	}

	// May go negative; anything ≤ 0 is expired
	if s.SafeTimer > 0 {
		s.SafeTimer -= dt
	}
}

func (g *Game) ingestInput() {
	if g.source != nil {
		g.router.Apply(g.source.Poll(), g.world.Width)
	}
	g.movement, g.aim = g.router.Inputs()
}

// ===== SHIP =====

func (g *Game) stepPlayer(dt float64) {
	physics.StepPlayer(&g.player, g.movement, g.aim, dt)
}

func (g *Game) stepFiring(dt float64) {
	s := &g.session
	s.ShootCooldown -= dt
	if !g.router.Aim.Active || s.ShootCooldown > 0 {
		return
	}

	dir := vmath.V2FromAngle(g.player.Rotation)
	g.bullets = append(g.bullets, component.Bullet{
		Position: vmath.V2Add(g.player.Position, vmath.V2Scale(dir, parameter.PlayerNoseOffset)),
		Velocity: vmath.V2Scale(dir, parameter.BulletSpeed),
		Life:     parameter.BulletLifetime,
	})
	s.ShootCooldown = parameter.FireCooldown
}

func (g *Game) stepTrail(dt float64) {
	if physics.Thrusting(g.movement) {
		g.trail = append(g.trail, component.TrailSegment{
			Position: g.player.Position,
			Life:     parameter.TrailLifetime,
			Size:     parameter.TrailSize,
		})
	}

	for i := range g.trail {
		g.trail[i].Life -= parameter.TrailDecayRate * dt
		g.trail[i].Size -= parameter.TrailShrinkRate * dt
	}
	g.trail = slices.DeleteFunc(g.trail, func(t component.TrailSegment) bool {
		return t.Life <= 0
	})

	// Oldest first out; shift in place to keep the backing array
	if over := len(g.trail) - parameter.TrailMaxSegments; over > 0 {
		n := copy(g.trail, g.trail[over:])
		g.trail = g.trail[:n]
	}
}

func (g *Game) wrapPlayer() {
	g.player.Position = vmath.WrapRect(g.player.Position, g.world.Width, g.world.Height, 0)
}

// ===== PROJECTILES & ENEMIES =====

func (g *Game) stepBullets(dt float64) {
	for i := range g.bullets {
		b := &g.bullets[i]
		b.Position = physics.Integrate(b.Position, b.Velocity, dt)
		b.Life -= dt
	}
	g.bullets = slices.DeleteFunc(g.bullets, func(b component.Bullet) bool {
		return b.Life <= 0 || !vmath.InRect(b.Position, g.world.Width, g.world.Height)
	})
}

func (g *Game) stepSpawner(dt float64) {
	s := &g.session
	if s.SafeTimer > 0 {
		return
	}

	s.EnemySpawnTimer -= dt
	if s.EnemySpawnTimer <= 0 {
		g.spawnEnemy()
		s.EnemySpawnTimer = randRange(g.rng, parameter.EnemySpawnIntervalMin, parameter.EnemySpawnIntervalMax)
	}
}

func (g *Game) stepEnemies(dt float64) {
	for i := range g.enemies {
		e := &g.enemies[i]
		physics.Pursue(e, g.player.Position, parameter.EnemySpeed, dt)
		e.Position = vmath.WrapRect(e.Position, g.world.Width, g.world.Height, parameter.EnemyEdgeMargin)
	}
}

// ===== COLLISION =====

// resolveBulletHits scans every enemy-bullet pair
// Every overlapping pair resolves, so one bullet can damage several bunched enemies
// An enemy dies on the hit that takes its health from >0 to ≤0
// Dead enemies are removed after the scan in descending index order
func (g *Game) resolveBulletHits() {
	if len(g.bullets) == 0 || len(g.enemies) == 0 {
		return
	}

	g.dead = g.dead[:0]
	for i := range g.enemies {
		e := &g.enemies[i]
		for j := range g.bullets {
			b := &g.bullets[j]
			if !physics.Overlap(e.Position, b.Position, e.Size+parameter.BulletHitRadius) {
				continue
			}

			alive := e.Health > 0
			e.Health--
			b.Life = 0

			if alive && e.Health <= 0 {
				g.dead = append(g.dead, i)
				g.session.Score += parameter.EnemyKillScore
				g.spawnExplosion(e.Position, e.Size)
				g.emit(EventEnemyKilled, e.Position)
			}
		}
	}

	for k := len(g.dead) - 1; k >= 0; k-- {
		i := g.dead[k]
		g.enemies = slices.Delete(g.enemies, i, i+1)
	}
	g.bullets = slices.DeleteFunc(g.bullets, func(b component.Bullet) bool {
		return b.Life <= 0
	})
}

// resolvePlayerHit handles at most one ramming enemy per frame, the first in pool order
func (g *Game) resolvePlayerHit() {
	s := &g.session
	if s.SafeTimer > 0 {
		return
	}

	for i, e := range g.enemies {
		if !physics.Overlap(g.player.Position, e.Position, parameter.PlayerCollisionRadius+e.Size) {
			continue
		}

		g.enemies = slices.Delete(g.enemies, i, i+1)
		g.spawnExplosion(e.Position, e.Size)
		s.Health--
		s.SafeTimer = parameter.HitInvulnerability
		g.emit(EventPlayerHit, e.Position)
		return
	}
}

// ===== AMBIENT =====

func (g *Game) stepExplosions(dt float64) {
	for i := range g.explosions {
		x := &g.explosions[i]
		x.Life -= parameter.ExplosionDecayRate * dt
		x.Size += parameter.ExplosionGrowthRate * dt
	}
	g.explosions = slices.DeleteFunc(g.explosions, func(x component.Explosion) bool {
		return x.Life <= 0
	})
}

func (g *Game) stepParticles(dt float64) {
	t := g.session.ElapsedTime
	for i := range g.particles {
		p := &g.particles[i]
		p.Position = vmath.WrapRect(physics.Integrate(p.Position, p.Velocity, dt), g.world.Width, g.world.Height, 0)
		p.Alpha = parameter.ParticlePulseBase +
			math.Sin(parameter.ParticlePulseFrequency*t+parameter.ParticlePulsePhase*p.Position.X)*parameter.ParticlePulseAmplitude
	}
}

func (g *Game) stepObstacles(dt float64) {
	for i := range g.obstacles {
		g.obstacles[i].GlowPhase += parameter.ObstacleGlowRate * dt
	}

	// Contact is reported, never acted on
	idx, touching := g.ObstacleContact()
	if touching && !g.touching {
		g.emit(EventObstacleContact, g.obstacles[idx].Position)
	}
	g.touching = touching
}

func (g *Game) checkGameOver() {
	s := &g.session
	if s.Health <= 0 && !s.GameOver {
		s.GameOver = true
		physics.StopPlayer(&g.player)
		g.emit(EventGameOver, g.player.Position)
	}
}
