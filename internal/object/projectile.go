package object

import (
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

const (
	ProjectileSpeed  = 3.0
	ProjectileRadius = 5.0
)

// Projectile is a bullet fired by the player.
type Projectile struct {
	Position  physics.Vec2
	Velocity  physics.Vec2
	destroyed bool
}

// NewProjectile creates a projectile at pos travelling along rotation.
// The shooter's velocity is not inherited.
func NewProjectile(pos physics.Vec2, rotation float64) *Projectile {
	return &Projectile{
		Position: pos,
		Velocity: physics.FromAngle(rotation, ProjectileSpeed),
	}
}

func (p *Projectile) Radius() float64 { return ProjectileRadius }

func (p *Projectile) MarkDestroyed()    { p.destroyed = true }
func (p *Projectile) IsDestroyed() bool { return p.destroyed }

// Update moves the projectile and reports whether it has left the screen.
func (p *Projectile) Update(ctx UpdateContext) bool {
	p.Position = p.Position.Add(p.Velocity)
	return ctx.Screen.Outside(p.Position, ProjectileRadius)
}

func (p *Projectile) Draw(s draw.Surface) {
	s.FillCircle(p.Position, ProjectileRadius)
}
