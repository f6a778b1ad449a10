package engine

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/twin-stick/vmath"
)

// EventType identifies a gameplay transition raised during Update
type EventType uint8

const (
	// EventSessionStarted is raised by New and Reset
	EventSessionStarted EventType = iota
	// EventGameStarted is raised once, when the intro fade completes
	EventGameStarted
	// EventEnemySpawned is raised for each enemy entering at a screen edge
	EventEnemySpawned
	// EventEnemyKilled is raised when a bullet exhausts an enemy's health
	EventEnemyKilled
	// EventPlayerHit is raised when an enemy rams the ship
	EventPlayerHit
	// EventObstacleContact is raised when the ship starts overlapping an obstacle
	EventObstacleContact
	// EventGameOver is raised once, when health runs out
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventSessionStarted:
		return "SessionStarted"
	case EventGameStarted:
		return "GameStarted"
	case EventEnemySpawned:
		return "EnemySpawned"
	case EventEnemyKilled:
		return "EnemyKilled"
	case EventPlayerHit:
		return "PlayerHit"
	case EventObstacleContact:
		return "ObstacleContact"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a single gameplay transition with the session scalars at the moment it fired
type Event struct {
	Type   EventType
	Pos    vmath.Vec2 // Where it happened, zero for session-wide events
	Time   float64    // Session elapsed time
	Score  int
	Health int
}

// maxPendingEvents bounds the undrained backlog; oldest events are dropped first
const maxPendingEvents = 256

// emit records ev and logs it
func (g *Game) emit(typ EventType, pos vmath.Vec2) {
	ev := Event{
		Type:   typ,
		Pos:    pos,
		Time:   g.session.ElapsedTime,
		Score:  g.session.Score,
		Health: g.session.Health,
	}

	if len(g.events) >= maxPendingEvents {
		n := copy(g.events, g.events[1:])
		g.events = g.events[:n]
	}
	g.events = append(g.events, ev)

	level := slog.LevelDebug
	switch typ {
	case EventSessionStarted, EventGameStarted, EventPlayerHit, EventGameOver:
		level = slog.LevelInfo
	}
	g.log.Log(context.Background(), level, "game event",
		"event", typ.String(),
		"t", ev.Time,
		"score", ev.Score,
		"health", ev.Health,
		"x", pos.X,
		"y", pos.Y,
	)
}

// DrainEvents appends pending events to dst and clears the backlog
func (g *Game) DrainEvents(dst []Event) []Event {
	dst = append(dst, g.events...)
	g.events = g.events[:0]
	return dst
}
