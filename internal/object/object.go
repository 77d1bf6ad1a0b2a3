// Package object defines the game entities and their per-frame behavior.
package object

import (
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Spawner allows objects to spawn new objects during a frame.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Screen Screen
}

// Screen is the logical play area. The origin is the top-left corner.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the screen.
func (s Screen) Center() physics.Vec2 {
	return physics.V(s.Width/2, s.Height/2)
}

// Outside reports whether a circle at p with radius r lies entirely outside
// the screen. A circle touching the edge is still inside.
func (s Screen) Outside(p physics.Vec2, r float64) bool {
	return p.X+r < 0 || p.X-r > s.Width || p.Y+r < 0 || p.Y-r > s.Height
}

// Object is a drawable and updatable game entity.
// Frames always call Draw before Update.
type Object interface {
	// Update advances the object one frame. Returns true if it should be removed.
	Update(ctx UpdateContext) (remove bool)
	Draw(s draw.Surface)
}

// Destructible is implemented by objects that can be marked for removal.
type Destructible interface {
	MarkDestroyed()
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}
