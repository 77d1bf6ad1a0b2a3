package object

import (
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Asteroid is a drifting rock. Its radius never changes.
type Asteroid struct {
	Position  physics.Vec2
	Velocity  physics.Vec2
	Radius    float64
	destroyed bool
}

// NewAsteroid creates an asteroid. A non-positive radius is raised to
// AsteroidMinRadius.
func NewAsteroid(pos, vel physics.Vec2, radius float64) *Asteroid {
	if radius <= 0 {
		radius = AsteroidMinRadius
	}
	return &Asteroid{Position: pos, Velocity: vel, Radius: radius}
}

func (a *Asteroid) MarkDestroyed()    { a.destroyed = true }
func (a *Asteroid) IsDestroyed() bool { return a.destroyed }

// Update moves the asteroid and reports whether it has left the screen.
// Asteroids spawn just outside an edge touching it, so they are kept
// until they drift fully past the opposite side.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	a.Position = a.Position.Add(a.Velocity)
	return ctx.Screen.Outside(a.Position, a.Radius)
}

func (a *Asteroid) Draw(s draw.Surface) {
	s.StrokeCircle(a.Position, a.Radius)
}
