package client

import (
	"io"
	"time"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
)

// ANSIHost renders to a plain ANSI terminal stream, such as an SSH channel or
// stdout in raw mode, and reads keys from the matching input stream.
type ANSIHost struct {
	canvas   *draw.Canvas
	out      *draw.ChunkWriter
	stream   *input.Stream
	termSize draw.TermSizeFunc
}

// NewANSIHost creates a host reading keys from r and writing frames to w.
// A nil size func uses the size of stdout.
func NewANSIHost(r io.Reader, w io.Writer, size draw.TermSizeFunc, width, height float64) *ANSIHost {
	if size == nil {
		size = draw.DefaultTermSizeFunc
	}
	h := &ANSIHost{
		canvas:   draw.NewCanvas(1, 1, width, height),
		out:      draw.NewChunkWriter(w),
		stream:   input.StartStream(r, config.KeyHold),
		termSize: size,
	}
	h.resize()
	return h
}

// SetIdleTimeout closes input after d without any key (0 disables).
func (h *ANSIHost) SetIdleTimeout(d time.Duration) {
	h.stream.IdleTimeout = d
}

// Open hides the cursor and clears the terminal.
func (h *ANSIHost) Open() error {
	draw.HideCursor(h.out)
	draw.ClearScreen(h.out)
	return h.out.Flush()
}

// Close clears the terminal and restores the cursor.
func (h *ANSIHost) Close() error {
	draw.ClearScreen(h.out)
	draw.ShowCursor(h.out)
	return h.out.Flush()
}

// Poll collects keys and follows terminal resizes.
func (h *ANSIHost) Poll(now time.Time) input.Batch {
	h.resize()
	return h.stream.Poll(now)
}

// resize fits the canvas to the terminal. On an actual change the terminal is
// cleared so old borders and offset content do not linger.
func (h *ANSIHost) resize() {
	tw, th, err := h.termSize()
	if err != nil {
		return
	}
	w, ht, col, row := draw.Fit(tw, th, config.MaxTermWidth, config.MaxTermHeight)
	c := h.canvas
	if w != c.TerminalWidth() || ht != c.TerminalHeight() || col != c.OffsetCol() || row != c.OffsetRow() {
		draw.ClearScreen(h.out)
	}
	c.Resize(w, ht)
	c.SetOffset(col, row)
}

func (h *ANSIHost) Surface() draw.Surface { return h.canvas }

// Present writes the frame, and the border when the terminal is larger than
// the render area.
func (h *ANSIHost) Present() error {
	if err := h.canvas.Render(h.out); err != nil {
		return err
	}
	if err := h.canvas.RenderBorder(h.out); err != nil {
		return err
	}
	return h.out.Flush()
}

// Reset releases every held key.
func (h *ANSIHost) Reset() { h.stream.Reset() }

var _ Host = (*ANSIHost)(nil)
