package input

import "time"

// DefaultHoldDuration is how long a key is considered held after its last press.
// Terminals never report key releases, so a release is inferred once auto-repeat stops.
const DefaultHoldDuration = 150 * time.Millisecond

// Holder turns repeated key-down reports into down/up transitions.
type Holder struct {
	hold time.Duration
	last [keyCount]time.Time
	down [keyCount]bool
}

// NewHolder creates a Holder with the given hold duration.
func NewHolder(hold time.Duration) *Holder {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Holder{hold: hold}
}

// Down records a press of k and returns the matching key-down event.
// Every report produces an event, so auto-repeat re-fires like a browser keydown.
func (h *Holder) Down(k Key, now time.Time) Event {
	h.last[k] = now
	h.down[k] = true
	return Event{Key: k, Down: true}
}

// Expire appends a key-up event to dst for each held key whose last press
// is older than the hold duration.
func (h *Holder) Expire(now time.Time, dst []Event) []Event {
	for k := Key(0); k < keyCount; k++ {
		if h.down[k] && now.Sub(h.last[k]) >= h.hold {
			h.down[k] = false
			dst = append(dst, Event{Key: k, Down: false})
		}
	}
	return dst
}

// Held reports whether k is considered held.
func (h *Holder) Held(k Key) bool {
	return k.Valid() && h.down[k]
}

// Reset forgets every held key without emitting events.
func (h *Holder) Reset() {
	h.down = [keyCount]bool{}
}
