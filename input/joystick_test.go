package input

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/lixenwraith/twin-stick/vmath"
)

const eps = 1e-9

func TestJoystickLifecycle(t *testing.T) {
	j := NewJoystick(80)

	if j.Active {
		t.Fatal("Expected new joystick to be idle")
	}
	if in := j.Input(); in != vmath.Zero {
		t.Errorf("Expected zero input when idle, got %+v", in)
	}

	j.Start(vmath.V2(100, 100))
	j.Move(vmath.V2(140, 100))
	in := j.Input()
	if math.Abs(in.X-0.5) > eps || in.Y != 0 {
		t.Errorf("Expected (0.5, 0), got %+v", in)
	}

	j.End()
	if j.Active {
		t.Error("Expected joystick idle after End")
	}
	if j.Current != j.Center {
		t.Errorf("Expected Current to snap to Center, got %+v vs %+v", j.Current, j.Center)
	}
	if in := j.Input(); in != vmath.Zero {
		t.Errorf("Expected zero input after End, got %+v", in)
	}
}

func TestJoystickMoveWhileIdle(t *testing.T) {
	j := NewJoystick(80)
	j.Move(vmath.V2(500, 500))
	if j.Current != vmath.Zero {
		t.Errorf("Expected Move to be ignored while idle, got %+v", j.Current)
	}
}

func TestJoystickClampProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		radius := rapid.Float64Range(1, 200).Draw(t, "radius")
		start := vmath.V2(
			rapid.Float64Range(-2000, 2000).Draw(t, "sx"),
			rapid.Float64Range(-2000, 2000).Draw(t, "sy"),
		)
		angle := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "angle")
		dist := rapid.Float64Range(radius*1.0001, radius*50).Draw(t, "dist")
		d := vmath.V2Scale(vmath.V2FromAngle(angle), dist)

		j := NewJoystick(radius)
		j.Start(start)
		j.Move(vmath.V2Add(start, d))

		offset := vmath.V2Sub(j.Current, j.Center)
		if math.Abs(vmath.V2Mag(offset)-radius) > 1e-6 {
			t.Fatalf("clamped offset %f, expected radius %f", vmath.V2Mag(offset), radius)
		}
		got := vmath.V2Normalize(offset)
		want := vmath.V2Normalize(d)
		if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
			t.Fatalf("direction changed: got %+v want %+v", got, want)
		}
	})
}

func TestJoystickInputBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		j := NewJoystick(rapid.Float64Range(1, 200).Draw(t, "radius"))
		j.Start(vmath.V2(
			rapid.Float64Range(0, 1280).Draw(t, "cx"),
			rapid.Float64Range(0, 720).Draw(t, "cy"),
		))
		moves := rapid.IntRange(0, 10).Draw(t, "moves")
		for i := 0; i < moves; i++ {
			j.Move(vmath.V2(
				rapid.Float64Range(-5000, 5000).Draw(t, "mx"),
				rapid.Float64Range(-5000, 5000).Draw(t, "my"),
			))
		}
		in := j.Input()
		if vmath.V2Mag(in) > 1+1e-9 {
			t.Fatalf("input magnitude %f exceeds 1", vmath.V2Mag(in))
		}
		if math.Abs(in.X) > 1+1e-9 || math.Abs(in.Y) > 1+1e-9 {
			t.Fatalf("input axis out of [-1,1]: %+v", in)
		}

		if rapid.Bool().Draw(t, "end") {
			j.End()
			if in := j.Input(); in != vmath.Zero {
				t.Fatalf("idle input %+v, expected zero", in)
			}
		}
	})
}
