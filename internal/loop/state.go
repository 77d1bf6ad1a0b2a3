package loop

import (
	"errors"

	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// ErrSessionOver is returned when a host tries to run a session that has ended.
var ErrSessionOver = errors.New("loop: session is over")

// Phase is the lifecycle state of a session. It only moves forward.
type Phase int

const (
	PhaseRunning  Phase = iota // Frames and spawns are live
	PhaseGameOver              // Terminal, nothing changes anymore
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// EventType identifies a gameplay event.
type EventType int

const (
	EventFired EventType = iota
	EventAsteroidDestroyed
	EventGameOver
)

// Event is something that happened during a session that a host may react to.
type Event struct {
	Type     EventType
	Position physics.Vec2
}
