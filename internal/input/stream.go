package input

import (
	"io"
	"time"
)

// Stream delivers terminal input via a channel and tracks held keys.
// Each read is delivered as one chunk so escape sequences arrive whole.
type Stream struct {
	ch     chan []byte
	holder *Holder
	closed bool

	// Escape sequence carried over from the previous poll.
	pending      []byte
	pendingPolls int

	// IdleTimeout closes the stream after this long without any input (0 disables).
	IdleTimeout time.Duration
	lastInput   time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader, hold time.Duration) *Stream {
	s := &Stream{
		ch:        make(chan []byte, 32),
		holder:    NewHolder(hold),
		lastInput: time.Now(),
	}
	go func() {
		for {
			buf := make([]byte, 64)
			n, err := r.Read(buf)
			if n > 0 {
				s.ch <- buf[:n]
			}
			if err != nil {
				close(s.ch)
				return
			}
		}
	}()
	return s
}

// Poll drains all available bytes from the stream (non-blocking) and returns
// the resulting key events. Handles escape sequences for arrow keys.
func (s *Stream) Poll(now time.Time) Batch {
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case chunk, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, chunk...)
		default:
			break drain
		}
	}

	var batch Batch
	if len(buf) > 0 {
		batch.Any = true
		s.lastInput = now
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			// CSI sequence: ESC [ <code>
			if i+2 < len(buf) && buf[i+1] == '[' {
				if k, ok := arrowKey(buf[i+2]); ok {
					batch.Events = append(batch.Events, s.holder.Down(k, now))
				}
				i += 2
				continue
			}
			// Possibly split across reads; give it one more poll.
			if i+1 == len(buf) || (i+2 == len(buf) && buf[i+1] == '[') {
				if s.pendingPolls == 0 && !s.closed {
					s.pending = append([]byte(nil), buf[i:]...)
					s.pendingPolls++
					break
				}
			}
			s.pendingPolls = 0
			batch.Quit = true
			continue
		}
		s.pendingPolls = 0
		applyByte(&batch, s.holder, b, now)
	}
	if s.pending == nil {
		s.pendingPolls = 0
	}

	batch.Events = s.holder.Expire(now, batch.Events)

	if s.closed && len(s.pending) == 0 {
		batch.Closed = true
	}
	if s.IdleTimeout > 0 && now.Sub(s.lastInput) > s.IdleTimeout {
		batch.Closed = true
	}
	return batch
}

// Reset releases every held key, e.g. when a new game starts.
func (s *Stream) Reset() {
	s.holder.Reset()
}

// arrowKey maps the final byte of an arrow-key CSI sequence.
func arrowKey(b byte) (Key, bool) {
	switch b {
	case 'A': // Up arrow
		return KeyForward, true
	case 'C': // Right arrow
		return KeyRight, true
	case 'D': // Left arrow
		return KeyLeft, true
	}
	return 0, false
}

// applyByte updates the batch based on a single pressed byte.
func applyByte(batch *Batch, h *Holder, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		batch.Quit = true
	case 'w', 'W':
		batch.Events = append(batch.Events, h.Down(KeyForward, now))
	case 'a', 'A':
		batch.Events = append(batch.Events, h.Down(KeyLeft, now))
	case 'd', 'D':
		batch.Events = append(batch.Events, h.Down(KeyRight, now))
	case ' ':
		batch.Events = append(batch.Events, h.Down(KeyFire, now))
	case '\n', '\r', 'r', 'R':
		batch.Restart = true
	}
}
