package object

import (
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Text is a static label drawn in logical coordinates.
type Text struct {
	Position physics.Vec2
	Value    string
	Align    draw.Align
}

func (t Text) Draw(s draw.Surface) {
	if t.Value == "" {
		return
	}
	s.Text(t.Position, t.Value, t.Align)
}

// Update is a no-op for static text.
func (t Text) Update(_ UpdateContext) bool {
	return false
}
