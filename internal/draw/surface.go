// Package draw provides the render surfaces the game draws onto.
package draw

import "github.com/tomz197/asteroids-arcade/internal/physics"

// Point represents a 2D coordinate in logical (game) space.
type Point = physics.Vec2

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the drawing contract the game loop renders through.
// Coordinates are logical; implementations scale to their device.
type Surface interface {
	// Size returns the logical width and height.
	Size() (width, height float64)
	// Clear paints the background.
	Clear()
	FillCircle(center Point, radius float64)
	StrokeCircle(center Point, radius float64)
	// Polygon draws a closed path through points.
	Polygon(points []Point, filled bool)
	Text(at Point, s string, align Align)
}
