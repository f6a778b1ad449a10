package input

import "github.com/lixenwraith/twin-stick/vmath"

// Router splits the screen at width/2: left half drives movement, right half drives aim
// Each side binds to the first touch that lands on it until that touch ends
type Router struct {
	Move Joystick
	Aim  Joystick

	moveTouch, aimTouch uint64
	moveBound, aimBound bool
}

// NewRouter creates a router with two idle joysticks of the given radius
func NewRouter(radius float64) *Router {
	return &Router{
		Move: NewJoystick(radius),
		Aim:  NewJoystick(radius),
	}
}

// Apply routes one frame of input; width is the current screen width
// Unknown touch ids are ignored
func (r *Router) Apply(f Frame, width float64) {
	split := width / 2

	for _, t := range f.Touches {
		switch t.Phase {
		case TouchStarted:
			if t.Pos.X < split && !r.moveBound {
				r.Move.Start(t.Pos)
				r.moveTouch, r.moveBound = t.ID, true
			} else if t.Pos.X >= split && !r.aimBound {
				r.Aim.Start(t.Pos)
				r.aimTouch, r.aimBound = t.ID, true
			}

		case TouchMoved:
			if r.moveBound && t.ID == r.moveTouch {
				r.Move.Move(t.Pos)
			} else if r.aimBound && t.ID == r.aimTouch {
				r.Aim.Move(t.Pos)
			}

		case TouchEnded, TouchCancelled:
			if r.moveBound && t.ID == r.moveTouch {
				r.Move.End()
				r.moveBound = false
			} else if r.aimBound && t.ID == r.aimTouch {
				r.Aim.End()
				r.aimBound = false
			}
		}
	}

	if len(f.Touches) == 0 {
		r.applyMouse(f.Mouse, split)
	}
}

// applyMouse is the desktop fallback; a single pointer drives whichever side it is on
func (r *Router) applyMouse(m MouseState, split float64) {
	left := m.Pos.X < split

	switch {
	case m.Pressed:
		if left {
			r.Move.Start(m.Pos)
		} else {
			r.Aim.Start(m.Pos)
		}
	case m.Down:
		if left && r.Move.Active {
			r.Move.Move(m.Pos)
		} else if !left && r.Aim.Active {
			r.Aim.Move(m.Pos)
		}
	}

	// Click inside one poll: Pressed and Released both set, button already up
	if m.Released && !m.Down {
		r.Move.End()
		r.Aim.End()
	}
}

// Bound reports whether each side currently holds a touch binding
func (r *Router) Bound() (move, aim bool) {
	return r.moveBound, r.aimBound
}

// Inputs returns both joystick deflections
func (r *Router) Inputs() (move, aim vmath.Vec2) {
	return r.Move.Input(), r.Aim.Input()
}
