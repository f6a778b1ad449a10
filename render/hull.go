package render

import (
	"math"

	"github.com/lixenwraith/twin-stick/parameter"
	"github.com/lixenwraith/twin-stick/vmath"
)

// ShipHull is the ship outline for a position, facing and size
type ShipHull struct {
	Front      vmath.Vec2
	LeftWing   vmath.Vec2
	RightWing  vmath.Vec2
	BackLeft   vmath.Vec2
	BackRight  vmath.Vec2
	BackCenter vmath.Vec2
	Cockpit    vmath.Vec2
}

// Hull angles and radius factors relative to facing
const (
	wingAngle   = 2.3
	wingReach   = 0.7
	engineAngle = 2.8
	engineReach = 0.5
	tailReach   = 0.4
	cockpitPos  = 0.5

	enemyFinAngle = 2.5
	enemyFinReach = 0.6
)

// polar offsets p by r along angle a
func polar(p vmath.Vec2, a, r float64) vmath.Vec2 {
	return vmath.V2Add(p, vmath.V2Scale(vmath.V2FromAngle(a), r))
}

func Ship(pos vmath.Vec2, rot, size float64) ShipHull {
	return ShipHull{
		Front:      polar(pos, rot, size),
		LeftWing:   polar(pos, rot+wingAngle, size*wingReach),
		RightWing:  polar(pos, rot-wingAngle, size*wingReach),
		BackLeft:   polar(pos, rot+engineAngle, size*engineReach),
		BackRight:  polar(pos, rot-engineAngle, size*engineReach),
		BackCenter: polar(pos, rot+math.Pi, size*tailReach),
		Cockpit:    polar(pos, rot, size*cockpitPos),
	}
}

// Enemy returns the rocket triangle: nose, left fin, right fin
func Enemy(pos vmath.Vec2, rot, size float64) [3]vmath.Vec2 {
	return [3]vmath.Vec2{
		polar(pos, rot, size),
		polar(pos, rot+enemyFinAngle, size*enemyFinReach),
		polar(pos, rot-enemyFinAngle, size*enemyFinReach),
	}
}

// Flame is one engine exhaust cone from Base back to Tip
type Flame struct {
	Base   vmath.Vec2
	Tip    vmath.Vec2
	Length float64
}

// FlameLength is the pulsing exhaust length for a thrust magnitude at session time t
func FlameLength(thrust, t float64) float64 {
	pulse := math.Sin(t*15)*0.2 + 0.8
	return thrust * parameter.PlayerFlameLength * pulse
}

// Flames returns the left, right and center exhausts; length comes from FlameLength
func Flames(h ShipHull, rot, length float64) [3]Flame {
	back := vmath.V2FromAngle(rot + math.Pi)
	mk := func(port vmath.Vec2, setback, scale float64) Flame {
		base := vmath.V2Add(port, vmath.V2Scale(back, setback))
		l := length * scale
		return Flame{Base: base, Tip: vmath.V2Add(base, vmath.V2Scale(back, l)), Length: l}
	}
	return [3]Flame{
		mk(h.BackLeft, 10, 1),
		mk(h.BackRight, 10, 0.95),
		mk(h.BackCenter, 5, 1.2),
	}
}
