package client

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
)

// TCellHost plays on a tcell screen. tcell reports key presses with
// auto-repeat but no releases, so releases come from an input.Holder.
type TCellHost struct {
	screen  tcell.Screen
	surface *draw.TCellSurface
	events  chan tcell.Event
	holder  *input.Holder
	closed  bool
}

// NewTCellHost takes over an initialized screen and starts reading its events.
func NewTCellHost(screen tcell.Screen, width, height float64) *TCellHost {
	h := &TCellHost{
		screen:  screen,
		surface: draw.NewTCellSurface(screen, width, height, config.MaxTermWidth, config.MaxTermHeight),
		events:  make(chan tcell.Event, 100),
		holder:  input.NewHolder(config.KeyHold),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			h.events <- ev
			if ev == nil {
				// Screen finalized
				return
			}
		}
	}()
	return h
}

// Poll drains pending tcell events without blocking.
func (h *TCellHost) Poll(now time.Time) input.Batch {
	var batch input.Batch
drain:
	for !h.closed {
		select {
		case ev := <-h.events:
			switch ev := ev.(type) {
			case nil:
				h.closed = true
			case *tcell.EventKey:
				batch.Any = true
				tcellKey(&batch, h.holder, ev.Key(), ev.Rune(), now)
			case *tcell.EventResize:
				h.surface.Sync(config.MaxTermWidth, config.MaxTermHeight)
			}
		default:
			break drain
		}
	}
	batch.Events = h.holder.Expire(now, batch.Events)
	batch.Closed = h.closed
	return batch
}

// tcellKey maps one tcell key report onto the batch.
func tcellKey(batch *input.Batch, holder *input.Holder, key tcell.Key, r rune, now time.Time) {
	switch key {
	case tcell.KeyUp:
		batch.Events = append(batch.Events, holder.Down(input.KeyForward, now))
	case tcell.KeyLeft:
		batch.Events = append(batch.Events, holder.Down(input.KeyLeft, now))
	case tcell.KeyRight:
		batch.Events = append(batch.Events, holder.Down(input.KeyRight, now))
	case tcell.KeyEscape, tcell.KeyCtrlC:
		batch.Quit = true
	case tcell.KeyEnter:
		batch.Restart = true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			batch.Events = append(batch.Events, holder.Down(input.KeyForward, now))
		case 'a', 'A':
			batch.Events = append(batch.Events, holder.Down(input.KeyLeft, now))
		case 'd', 'D':
			batch.Events = append(batch.Events, holder.Down(input.KeyRight, now))
		case ' ':
			batch.Events = append(batch.Events, holder.Down(input.KeyFire, now))
		case 'q', 'Q':
			batch.Quit = true
		case 'r', 'R':
			batch.Restart = true
		}
	}
}

func (h *TCellHost) Surface() draw.Surface { return h.surface }

func (h *TCellHost) Present() error {
	h.surface.Show()
	return nil
}

// Reset releases every held key.
func (h *TCellHost) Reset() { h.holder.Reset() }

var _ Host = (*TCellHost)(nil)
