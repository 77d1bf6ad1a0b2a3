// Package input maps host key events onto the game's logical keys.
package input

import "time"

// Key is a logical game key.
type Key int

const (
	KeyForward Key = iota
	KeyLeft
	KeyRight
	KeyFire
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the logical game keys.
func (k Key) Valid() bool {
	return k >= 0 && k < keyCount
}

// Event is a single key-down or key-up transition.
type Event struct {
	Key  Key
	Down bool
}

// Batch is everything a host collected since its last poll.
type Batch struct {
	Events  []Event
	Quit    bool // Quit requested (q, Esc, Ctrl-C)
	Restart bool // Enter or r
	Any     bool // Any byte/key arrived, used for idle tracking
	Closed  bool // Input source is gone (EOF, idle disconnect)
}

// Source is polled once per frame by the game loop.
type Source interface {
	Poll(now time.Time) Batch
}

// Latch holds the pressed state of the logical keys.
type Latch struct {
	pressed [keyCount]bool
}

// Press marks k as held. Unknown keys are ignored.
func (l *Latch) Press(k Key) {
	if k.Valid() {
		l.pressed[k] = true
	}
}

// Release marks k as no longer held.
func (l *Latch) Release(k Key) {
	if k.Valid() {
		l.pressed[k] = false
	}
}

// Apply updates the latch from an event.
func (l *Latch) Apply(ev Event) {
	if ev.Down {
		l.Press(ev.Key)
	} else {
		l.Release(ev.Key)
	}
}

// Pressed reports whether k is currently held.
func (l *Latch) Pressed(k Key) bool {
	return k.Valid() && l.pressed[k]
}

// Reset releases every key.
func (l *Latch) Reset() {
	l.pressed = [keyCount]bool{}
}
