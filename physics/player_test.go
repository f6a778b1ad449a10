package physics

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/lixenwraith/twin-stick/component"
	"github.com/lixenwraith/twin-stick/vmath"
)

func TestStepPlayerThrust(t *testing.T) {
	p := component.NewPlayer(vmath.V2(640, 360))
	StepPlayer(&p, vmath.V2(1, 0), vmath.Zero, 0.1)

	// v = (0 + 1*400*0.1) * 0.98 = 39.2; x += 39.2*0.1
	if math.Abs(p.Velocity.X-39.2) > 1e-9 {
		t.Errorf("Expected velocity 39.2, got %f", p.Velocity.X)
	}
	if math.Abs(p.Position.X-643.92) > 1e-9 {
		t.Errorf("Expected x 643.92, got %f", p.Position.X)
	}
	if p.Velocity.Y != 0 || p.Position.Y != 360 {
		t.Errorf("Expected no vertical motion, got v=%f y=%f", p.Velocity.Y, p.Position.Y)
	}
}

func TestStepPlayerFacing(t *testing.T) {
	p := component.NewPlayer(vmath.Zero)

	StepPlayer(&p, vmath.Zero, vmath.V2(0, 1), 0.016)
	if math.Abs(p.Rotation-math.Pi/2) > 1e-12 {
		t.Errorf("Expected rotation pi/2, got %f", p.Rotation)
	}

	// Released aim keeps the last facing
	StepPlayer(&p, vmath.Zero, vmath.Zero, 0.016)
	if math.Abs(p.Rotation-math.Pi/2) > 1e-12 {
		t.Errorf("Expected rotation to persist, got %f", p.Rotation)
	}
}

func TestStepPlayerDampingConverges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := component.NewPlayer(vmath.Zero)
		p.Velocity = vmath.V2(
			rapid.Float64Range(-1000, 1000).Draw(t, "vx"),
			rapid.Float64Range(-1000, 1000).Draw(t, "vy"),
		)
		dt := rapid.Float64Range(0.001, 0.1).Draw(t, "dt")

		prev := vmath.V2Mag(p.Velocity)
		for i := 0; i < 2000 && prev > 1e-3; i++ {
			StepPlayer(&p, vmath.Zero, vmath.Zero, dt)
			speed := vmath.V2Mag(p.Velocity)
			if speed >= prev {
				t.Fatalf("frame %d: speed %f did not drop below %f", i, speed, prev)
			}
			prev = speed
		}
		if prev > 1e-3 {
			t.Fatalf("speed %f did not converge", prev)
		}
	})
}

func TestStopPlayer(t *testing.T) {
	p := component.Player{Velocity: vmath.V2(10, -4)}
	StopPlayer(&p)
	if p.Velocity != vmath.Zero {
		t.Errorf("Expected zero velocity, got %+v", p.Velocity)
	}
}

func TestThrusting(t *testing.T) {
	tests := []struct {
		in   vmath.Vec2
		want bool
	}{
		{vmath.Zero, false},
		{vmath.V2(0.1, 0.1), false},
		{vmath.V2(0.11, 0), true},
		{vmath.V2(0, -0.5), true},
		{vmath.V2(-0.1, -0.1), false},
		{vmath.V2(-0.11, 0.05), true},
	}
	for _, tt := range tests {
		if got := Thrusting(tt.in); got != tt.want {
			t.Errorf("Thrusting(%+v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
