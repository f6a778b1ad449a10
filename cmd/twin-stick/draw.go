package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/twin-stick/component"
	"github.com/lixenwraith/twin-stick/engine"
	"github.com/lixenwraith/twin-stick/input"
	"github.com/lixenwraith/twin-stick/parameter"
	"github.com/lixenwraith/twin-stick/render"
	"github.com/lixenwraith/twin-stick/vmath"
)

// debugGlyphW is the advance of ebitenutil's debug font
const debugGlyphW = 6

var whitePixel *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func circle(dst *ebiten.Image, p vmath.Vec2, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(r), c, true)
}

func line(dst *ebiten.Image, a, b vmath.Vec2, width float64, c color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
}

// triangle fills a, b, c through a path, the way ebiten's vector package tessellates polygons
func triangle(dst *ebiten.Image, a, b, c vmath.Vec2, clr color.NRGBA) {
	var path vector.Path
	path.MoveTo(float32(a.X), float32(a.Y))
	path.LineTo(float32(b.X), float32(b.Y))
	path.LineTo(float32(c.X), float32(c.Y))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func centeredText(dst *ebiten.Image, s string, y int) {
	x := (dst.Bounds().Dx() - len(s)*debugGlyphW) / 2
	ebitenutil.DebugPrintAt(dst, s, x, y)
}

func drawSnapshot(dst *ebiten.Image, s *engine.Snapshot, feed *render.Feed) {
	dst.Fill(render.Background)

	for _, p := range s.Particles {
		circle(dst, p.Position, p.Size, render.WithAlpha(render.ParticleColor, render.Alpha(p.Alpha)))
	}
	for _, o := range s.Obstacles {
		drawObstacle(dst, o)
	}
	for _, seg := range s.Trail {
		a := render.TrailAlpha(seg.Life)
		r := render.TrailRadius(seg.Size, seg.Life)
		circle(dst, seg.Position, r, render.WithAlpha(render.TrailOuter, a/3))
		circle(dst, seg.Position, r*0.6, render.WithAlpha(render.TrailInner, a/2))
	}
	for _, b := range s.Bullets {
		circle(dst, b.Position, 8, render.BulletGlow)
		circle(dst, b.Position, 5, render.BulletBody)
		circle(dst, b.Position, 2, render.BulletCore)
	}
	for _, e := range s.Enemies {
		drawEnemy(dst, e)
	}
	for _, x := range s.Explosions {
		a := render.ExplosionAlpha(x.Life)
		circle(dst, x.Position, x.Size, render.WithAlpha(render.ExplosionOuter, a/2))
		circle(dst, x.Position, x.Size*0.7, render.WithAlpha(render.ExplosionMid, a))
		circle(dst, x.Position, x.Size*0.4, render.WithAlpha(render.ExplosionCore, a))
	}

	drawShip(dst, s)
	drawStick(dst, s.Move, render.MoveStick)
	drawStick(dst, s.Aim, render.AimStick)
	drawHUD(dst, s, feed)

	if s.Session.IntroAlpha > 0 {
		vector.DrawFilledRect(dst, 0, 0, float32(s.Width), float32(s.Height),
			render.WithAlpha(render.Background, render.Alpha(s.Session.IntroAlpha)), false)
	}
	if s.Phase == engine.PhaseGameOver {
		h := int(s.Height)
		vector.DrawFilledRect(dst, 0, 0, float32(s.Width), float32(s.Height), render.WithAlpha(render.Background, 160), false)
		centeredText(dst, "GAME OVER", h/2-20)
		centeredText(dst, fmt.Sprintf("SCORE: %d   TIME: %s", s.Session.Score, render.Clock(s.Session.ElapsedTime)), h/2)
		centeredText(dst, "R: restart   ESC: quit", h/2+20)
	}
}

func drawObstacle(dst *ebiten.Image, o component.Obstacle) {
	glow := render.ObstacleGlow(o.GlowPhase)
	circle(dst, o.Position, o.Size+15, render.Scale(render.ObstacleHalo, glow*40/255))
	circle(dst, o.Position, o.Size, render.Scale(render.ObstacleBody, glow*180/255))
	circle(dst, o.Position, o.Size*0.4, render.Scale(render.ObstacleCore, glow))
}

func drawEnemy(dst *ebiten.Image, e component.Enemy) {
	circle(dst, e.Position, e.Size+15, render.EnemyHaloOuter)
	circle(dst, e.Position, e.Size+8, render.EnemyHaloInner)

	tri := render.Enemy(e.Position, e.Rotation, e.Size)
	triangle(dst, tri[0], tri[1], tri[2], render.EnemyBody)
	for i := range tri {
		line(dst, tri[i], tri[(i+1)%3], 2, render.EnemyEdge)
	}
	circle(dst, e.Position, 4, render.EnemyCore)
}

func drawShip(dst *ebiten.Image, s *engine.Snapshot) {
	pos, rot := s.Player.Position, s.Player.Rotation
	size := parameter.PlayerHullSize
	alpha := render.ShipAlpha(s.Session.SafeTimer, s.Flashing)
	hull := render.Ship(pos, rot, size)

	for i, c := range render.ShipHalo {
		circle(dst, pos, size+30-float64(i)*10, c)
	}

	if s.Thrust > 0 {
		length := render.FlameLength(s.Thrust, s.Session.ElapsedTime)
		for _, f := range render.Flames(hull, rot, length) {
			drawFlame(dst, f, rot, s.Thrust)
		}
	}

	triangle(dst, hull.Front, hull.LeftWing, hull.BackLeft, render.WithAlpha(render.ShipShadow, alpha))
	triangle(dst, hull.Front, hull.RightWing, hull.BackRight, render.WithAlpha(render.ShipShadow, alpha))
	triangle(dst, hull.Front, hull.LeftWing, hull.RightWing, render.WithAlpha(render.ShipBody, alpha))
	triangle(dst, hull.LeftWing, hull.RightWing, hull.BackCenter, render.WithAlpha(render.ShipTail, alpha))

	circle(dst, hull.Cockpit, 6, render.ShipCockpit)
	circle(dst, hull.Cockpit, 4, render.WithAlpha(render.ShipHighlight, alpha))

	edge := render.WithAlpha(render.ShipHighlight, alpha)
	line(dst, hull.Front, hull.LeftWing, 3, edge)
	line(dst, hull.Front, hull.RightWing, 3, edge)
	line(dst, hull.LeftWing, hull.BackLeft, 2, edge)
	line(dst, hull.RightWing, hull.BackRight, 2, edge)

	circle(dst, hull.Front, 4, render.WithAlpha(render.BulletCore, alpha))
	circle(dst, pos, 5, render.WithAlpha(render.ShipHighlight, 200))
}

// drawFlame fans a cone of triangles behind the exhaust, then the hot core
func drawFlame(dst *ebiten.Image, f render.Flame, rot, power float64) {
	const fan = 8
	outer := render.Scale(render.FlameOuter, power*100/255)
	for i := range fan {
		a := rot + float64(i)/fan*math.Pi*0.5 - math.Pi*0.25
		tip := vmath.V2Add(f.Tip, vmath.V2Scale(vmath.V2FromAngle(a), f.Length*0.4))
		triangle(dst, f.Base, f.Tip, tip, outer)
	}
	line(dst, f.Base, f.Tip, f.Length*0.3, render.Scale(render.FlameMid, power*200/255))
	line(dst, f.Base, f.Tip, f.Length*0.15, render.Scale(render.FlameCore, power))
	circle(dst, f.Tip, f.Length*0.2, render.Scale(render.FlameOuter, power*80/255))
}

func drawStick(dst *ebiten.Image, j input.Joystick, c color.NRGBA) {
	if !j.Active {
		return
	}
	vector.StrokeCircle(dst, float32(j.Center.X), float32(j.Center.Y), float32(j.Radius), 1, c, true)
	circle(dst, j.Current, 20, c)
	circle(dst, j.Current, 15, render.StickThumb)
}

func drawHUD(dst *ebiten.Image, s *engine.Snapshot, feed *render.Feed) {
	// Hearts shake for a moment after each hit
	off := feed.Shake(s.Session.ElapsedTime)
	for i := range max(s.Session.Health, 0) {
		c := vmath.V2Add(vmath.V2(30+float64(i)*40, 30), off)
		circle(dst, vmath.V2(c.X-5, c.Y), 8, render.Heart)
		circle(dst, vmath.V2(c.X+5, c.Y), 8, render.Heart)
		circle(dst, vmath.V2(c.X, c.Y+8), 8, render.Heart)
	}

	centeredText(dst, fmt.Sprintf("SCORE: %d", s.Session.Score), 24)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("KILLS: %d", feed.Kills), 30, 52)
	clock := render.Clock(s.Session.ElapsedTime)
	ebitenutil.DebugPrintAt(dst, clock, int(s.Width)-len(clock)*debugGlyphW-30, 24)

	if s.Session.Safe() && s.Session.GameStarted && s.Phase != engine.PhaseGameOver {
		centeredText(dst, "Safe Zone", int(s.Height)/2-100)
	}
	if render.HintVisible(s.Session.ElapsedTime) {
		centeredText(dst, "Right joystick to AIM & SHOOT!", int(s.Height)-80)
	}
}
