package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twin-stick/engine"
	"github.com/lixenwraith/twin-stick/input"
	"github.com/lixenwraith/twin-stick/parameter"
	"github.com/lixenwraith/twin-stick/render"
	"github.com/lixenwraith/twin-stick/vmath"
)

// view draws snapshots onto a tcell screen
type view struct {
	screen tcell.Screen
	vp     viewport
	bg     tcell.Style
}

func newView(screen tcell.Screen, worldW, worldH float64) *view {
	v := &view{
		screen: screen,
		bg:     tcell.StyleDefault.Background(tcellColor(render.Background)),
	}
	v.resize(worldW, worldH)
	return v
}

func (v *view) resize(worldW, worldH float64) {
	cols, rows := v.screen.Size()
	v.vp = newViewport(cols, rows, worldW, worldH)
}

// tcellColor flattens c over the background by its alpha
func tcellColor(c color.NRGBA) tcell.Color {
	bg := render.Background
	a := float64(c.A) / 255
	mix := func(fg, bg uint8) int32 {
		return int32(float64(bg) + (float64(fg)-float64(bg))*a)
	}
	return tcell.NewRGBColor(mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B))
}

func (v *view) style(c color.NRGBA) tcell.Style {
	return v.bg.Foreground(tcellColor(c))
}

func (v *view) put(p vmath.Vec2, r rune, st tcell.Style) {
	if cx, cy, ok := v.vp.toCell(p); ok {
		v.screen.SetContent(cx, cy, r, nil, st)
	}
}

// disc fills every cell whose center lies within radius of center
func (v *view) disc(center vmath.Vec2, radius float64, r rune, st tcell.Style) {
	cw, ch := v.vp.cellSize()
	x0, y0, _ := v.vp.toCell(vmath.V2(max(center.X-radius, 0), max(center.Y-radius, 0)))
	x1, y1, _ := v.vp.toCell(vmath.V2(min(center.X+radius, v.vp.worldW-cw/2), min(center.Y+radius, v.vp.worldH-ch/2)))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if vmath.V2Dist(v.vp.toWorld(cx, cy), center) <= radius {
				v.screen.SetContent(cx, cy, r, nil, st)
			}
		}
	}
	// Small shapes still get one cell
	v.put(center, r, st)
}

func (v *view) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, st)
	}
}

func (v *view) centered(y int, s string, st tcell.Style) {
	v.text((v.vp.cols-len([]rune(s)))/2, y, s, st)
}

func (v *view) draw(s *engine.Snapshot, feed *render.Feed) {
	v.screen.Fill(' ', v.bg)

	for _, p := range s.Particles {
		v.put(p.Position, '·', v.style(render.WithAlpha(render.ParticleColor, render.Alpha(p.Alpha))))
	}

	for _, o := range s.Obstacles {
		glow := render.ObstacleGlow(o.GlowPhase)
		v.disc(o.Position, o.Size, '▒', v.style(render.Scale(render.ObstacleBody, glow*180/255)))
		v.disc(o.Position, o.Size*0.4, '█', v.style(render.Scale(render.ObstacleCore, glow)))
	}

	for _, seg := range s.Trail {
		v.put(seg.Position, '•', v.style(render.WithAlpha(render.TrailInner, render.TrailAlpha(seg.Life))))
	}

	for _, b := range s.Bullets {
		v.put(b.Position, '*', v.style(render.BulletBody).Bold(true))
	}

	for _, e := range s.Enemies {
		v.put(e.Position, render.DirectionGlyph(e.Rotation), v.style(render.EnemyBody).Bold(true))
	}

	for _, x := range s.Explosions {
		a := render.ExplosionAlpha(x.Life)
		v.disc(x.Position, x.Size*0.5, '░', v.style(render.WithAlpha(render.ExplosionOuter, a)))
		v.put(x.Position, '✶', v.style(render.WithAlpha(render.ExplosionCore, a)))
	}

	v.drawShip(s)
	v.drawStick(s.Move, render.MoveStick)
	v.drawStick(s.Aim, render.AimStick)
	v.drawHUD(s, feed)
}

func (v *view) drawShip(s *engine.Snapshot) {
	alpha := render.ShipAlpha(s.Session.SafeTimer, s.Flashing)
	st := v.style(render.WithAlpha(render.ShipBody, alpha)).Bold(true)

	if s.Thrust > 0 {
		length := render.FlameLength(s.Thrust, s.Session.ElapsedTime)
		hull := render.Ship(s.Player.Position, s.Player.Rotation, parameter.PlayerHullSize)
		for _, f := range render.Flames(hull, s.Player.Rotation, length) {
			v.put(f.Tip, '~', v.style(render.Scale(render.FlameMid, s.Thrust)))
		}
	}
	v.put(s.Player.Position, render.DirectionGlyph(s.Player.Rotation), st)
}

func (v *view) drawStick(j input.Joystick, c color.NRGBA) {
	if !j.Active {
		return
	}
	v.put(j.Center, '+', v.style(render.WithAlpha(c, 200)))
	v.put(j.Current, '◉', v.style(render.WithAlpha(render.StickThumb, 220)))
}

func (v *view) drawHUD(s *engine.Snapshot, feed *render.Feed) {
	hud := v.bg.Background(tcell.ColorBlack)
	for x := 0; x < v.vp.cols; x++ {
		v.screen.SetContent(x, 0, ' ', nil, hud)
	}

	hearts := strings.Repeat("♥ ", max(s.Session.Health, 0))
	heartStyle := hud.Foreground(tcellColor(render.Heart))
	if feed.Shaking() {
		heartStyle = heartStyle.Reverse(true)
	}
	v.text(1, 0, hearts, heartStyle)
	v.text(1+len([]rune(hearts))+1, 0, fmt.Sprintf("KILLS: %d", feed.Kills), hud.Foreground(tcellColor(render.ClockText)))

	score := fmt.Sprintf("SCORE: %d", s.Session.Score)
	v.text((v.vp.cols-len(score))/2, 0, score, hud.Foreground(tcellColor(render.ScoreText)).Bold(true))

	clock := render.Clock(s.Session.ElapsedTime)
	v.text(v.vp.cols-len(clock)-1, 0, clock, hud.Foreground(tcellColor(render.ClockText)))

	mid := v.vp.rows / 2
	switch s.Phase {
	case engine.PhaseIntro:
		v.centered(mid, "DUAL JOYSTICK", v.style(render.WithAlpha(render.ShipBody, render.Alpha(s.Session.IntroAlpha))).Bold(true))
	case engine.PhaseGameOver:
		v.centered(mid-1, "GAME OVER", v.style(render.Banner).Bold(true))
		v.centered(mid+1, fmt.Sprintf("score %d   r: restart   q: quit", s.Session.Score), v.style(render.ClockText))
		return
	}

	if s.Session.Safe() && s.Session.GameStarted {
		v.centered(mid-3, "Safe Zone", v.style(render.WithAlpha(render.ScoreText, render.SafeLabelAlpha(s.Session.SafeTimer))))
	}
	if render.HintVisible(s.Session.ElapsedTime) {
		v.centered(v.vp.rows-2, "Drag left half to MOVE, right half to AIM & SHOOT", v.style(render.WithAlpha(render.HintText, render.HintAlpha(s.Session.ElapsedTime))))
	}
}
