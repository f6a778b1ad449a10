package input

import "github.com/lixenwraith/twin-stick/vmath"

// TouchPhase is the lifecycle stage of a touch in the current frame
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchEnded
	TouchCancelled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "started"
	case TouchMoved:
		return "moved"
	case TouchStationary:
		return "stationary"
	case TouchEnded:
		return "ended"
	case TouchCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TouchEvent is one pointer's state for a frame; ids are stable for the touch lifetime
type TouchEvent struct {
	ID    uint64
	Phase TouchPhase
	Pos   vmath.Vec2
}

// MouseState is the left button state for a frame
// Pressed and Released are edges; Down is the level
type MouseState struct {
	Pos      vmath.Vec2
	Pressed  bool
	Down     bool
	Released bool
}

// Frame is everything the host captured since the previous poll
// Hosts include every live touch (stationary too) so the mouse fallback can tell touch is in use
type Frame struct {
	Touches []TouchEvent
	Mouse   MouseState
}
