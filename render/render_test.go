package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/twin-stick/vmath"
)

func near(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestShipHullFacingRight(t *testing.T) {
	h := Ship(vmath.V2(100, 100), 0, 40)
	if !near(h.Front, vmath.V2(140, 100)) {
		t.Errorf("Expected nose at (140,100), got %+v", h.Front)
	}
	if !near(h.BackCenter, vmath.V2(84, 100)) {
		t.Errorf("Expected tail at (84,100), got %+v", h.BackCenter)
	}
	if !near(h.Cockpit, vmath.V2(120, 100)) {
		t.Errorf("Expected cockpit at (120,100), got %+v", h.Cockpit)
	}
	// Wings mirror across the facing axis
	if math.Abs(math.Abs(h.LeftWing.Y-100)-math.Abs(h.RightWing.Y-100)) > 1e-9 || math.Abs(h.LeftWing.X-h.RightWing.X) > 1e-9 {
		t.Errorf("Expected symmetric wings, got %+v %+v", h.LeftWing, h.RightWing)
	}
}

func TestEnemyTriangle(t *testing.T) {
	tri := Enemy(vmath.V2(0, 0), math.Pi/2, 25)
	if !near(tri[0], vmath.V2(0, 25)) {
		t.Errorf("Expected nose pointing down, got %+v", tri[0])
	}
	if tri[1].Y >= 0 || tri[2].Y >= 0 {
		t.Errorf("Expected fins behind the nose, got %+v %+v", tri[1], tri[2])
	}
}

func TestFlames(t *testing.T) {
	if FlameLength(0, 1) != 0 {
		t.Error("Expected no flame without thrust")
	}
	// sin(0) = 0 → pulse 0.8
	if got := FlameLength(1, 0); math.Abs(got-28) > 1e-9 {
		t.Errorf("Expected 28, got %v", got)
	}

	h := Ship(vmath.V2(0, 0), 0, 40)
	fl := Flames(h, 0, 10)
	if math.Abs(fl[1].Length-9.5) > 1e-9 || math.Abs(fl[2].Length-12) > 1e-9 {
		t.Errorf("Expected scaled side/center flames, got %v %v", fl[1].Length, fl[2].Length)
	}
	for i, f := range fl {
		if f.Tip.X >= f.Base.X {
			t.Errorf("Flame %d should point backward, got %+v", i, f)
		}
	}
}

func TestObstacleGlowFloor(t *testing.T) {
	for _, phase := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 100} {
		g := ObstacleGlow(phase)
		if g < 0.4-1e-9 || g > 1 {
			t.Errorf("Glow out of range at %v: %v", phase, g)
		}
	}
	if math.Abs(ObstacleGlow(math.Pi/2)-1) > 1e-9 {
		t.Error("Expected peak glow 1")
	}
}

func TestAlphaClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{math.NaN(), 0},
		{0.5, 127},
		{1, 255},
		{3, 255},
	}
	for _, tt := range tests {
		if got := Alpha(tt.in); got != tt.want {
			t.Errorf("Alpha(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if TrailAlpha(1) != 100 || TrailAlpha(-0.5) != 0 {
		t.Errorf("Expected trail alpha 100 at full life and 0 when spent")
	}
	if TrailRadius(30, -0.1) != 0 {
		t.Error("Expected non-negative trail radius")
	}
}

func TestShipAlpha(t *testing.T) {
	if ShipAlpha(0.2, false) != 255 {
		t.Error("Expected opaque ship when not flashing")
	}
	if ShipAlpha(0, true) != 128 {
		t.Errorf("Expected mid blink at zero phase, got %d", ShipAlpha(0, true))
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00"},
		{59.9, "00:59"},
		{61, "01:01"},
		{3600, "60:00"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := Clock(tt.in); got != tt.want {
			t.Errorf("Clock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirectionGlyph(t *testing.T) {
	tests := []struct {
		rot  float64
		want rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{-math.Pi / 2, '↑'},
		{math.Pi, '←'},
		{-math.Pi, '←'},
		{math.Pi / 4, '↘'},
		{-3 * math.Pi / 4, '↖'},
		{0.3, '→'},
	}
	for _, tt := range tests {
		if got := DirectionGlyph(tt.rot); got != tt.want {
			t.Errorf("DirectionGlyph(%v) = %q, want %q", tt.rot, got, tt.want)
		}
	}
}

func TestPaletteHelpers(t *testing.T) {
	c := WithAlpha(ShipBody, 10)
	if c.A != 10 || c.R != ShipBody.R {
		t.Errorf("Expected alpha replaced, got %+v", c)
	}
	if Scale(ShipBody, 0.5).A != 127 {
		t.Errorf("Expected half alpha, got %d", Scale(ShipBody, 0.5).A)
	}
}
