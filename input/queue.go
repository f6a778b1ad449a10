package input

import (
	"sync"

	"github.com/lixenwraith/twin-stick/vmath"
)

// Queue buffers host input between polls; safe for one producer and one consumer goroutine
type Queue struct {
	mu      sync.Mutex
	touches []TouchEvent
	live    map[uint64]vmath.Vec2

	mousePos      vmath.Vec2
	mouseDown     bool
	mousePressed  bool
	mouseReleased bool
}

func NewQueue() *Queue {
	return &Queue{live: make(map[uint64]vmath.Vec2)}
}

// PushTouch records a touch transition
func (q *Queue) PushTouch(ev TouchEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch ev.Phase {
	case TouchEnded, TouchCancelled:
		delete(q.live, ev.ID)
	default:
		q.live[ev.ID] = ev.Pos
	}
	q.touches = append(q.touches, ev)
}

// PushMouse records the pointer position and button level, deriving press/release edges
func (q *Queue) PushMouse(pos vmath.Vec2, down bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if down && !q.mouseDown {
		q.mousePressed = true
	}
	if !down && q.mouseDown {
		q.mouseReleased = true
	}
	q.mouseDown = down
	q.mousePos = pos
}

// Poll drains buffered input into a Frame
// Live touches with no event since the last poll are reported as stationary
func (q *Queue) Poll() Frame {
	q.mu.Lock()
	defer q.mu.Unlock()

	f := Frame{
		Mouse: MouseState{
			Pos:      q.mousePos,
			Down:     q.mouseDown,
			Pressed:  q.mousePressed,
			Released: q.mouseReleased,
		},
	}
	q.mousePressed = false
	q.mouseReleased = false

	seen := make(map[uint64]bool, len(q.touches))
	if len(q.touches) > 0 {
		f.Touches = append(f.Touches, q.touches...)
		for _, t := range q.touches {
			seen[t.ID] = true
		}
		q.touches = q.touches[:0]
	}
	for id, pos := range q.live {
		if !seen[id] {
			f.Touches = append(f.Touches, TouchEvent{ID: id, Phase: TouchStationary, Pos: pos})
		}
	}
	return f
}
