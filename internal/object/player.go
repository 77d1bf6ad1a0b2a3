package object

import (
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

const (
	PlayerSpeed     = 3.0  // Velocity magnitude while thrusting
	RotationalSpeed = 0.05 // Radians per frame
	Friction        = 0.97 // Velocity multiplier per frame without thrust
)

// shipShape is the ship triangle in local space, nose first, pointing along +X.
var shipShape = [3]physics.Vec2{
	{X: 30, Y: 0},
	{X: -10, Y: -10},
	{X: -10, Y: 10},
}

// Player is the player-controlled ship.
type Player struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Rotation float64 // Radians, 0 points right; never normalized
}

// NewPlayer creates a ship at rest.
func NewPlayer(at physics.Vec2) *Player {
	return &Player{Position: at}
}

// Vertices returns the ship triangle in screen space: nose, left rear, right rear.
// The same triangle is drawn and used for collision.
func (p *Player) Vertices() [3]physics.Vec2 {
	var out [3]physics.Vec2
	for i, v := range shipShape {
		out[i] = v.Rotate(p.Rotation).Add(p.Position)
	}
	return out
}

// Nose returns the tip of the ship.
func (p *Player) Nose() physics.Vec2 {
	return shipShape[0].Rotate(p.Rotation).Add(p.Position)
}

// Steer applies held keys. Right wins over left. Thrust sets the velocity
// outright; without thrust the ship coasts and slows by Friction.
func (p *Player) Steer(keys *input.Latch) {
	if keys.Pressed(input.KeyRight) {
		p.Rotation += RotationalSpeed
	} else if keys.Pressed(input.KeyLeft) {
		p.Rotation -= RotationalSpeed
	}

	if keys.Pressed(input.KeyForward) {
		p.Velocity = physics.FromAngle(p.Rotation, PlayerSpeed)
	} else {
		p.Velocity = p.Velocity.Scale(Friction)
	}
}

// Update moves the ship. The ship is never removed and does not wrap.
func (p *Player) Update(_ UpdateContext) bool {
	p.Position = p.Position.Add(p.Velocity)
	return false
}

func (p *Player) Draw(s draw.Surface) {
	v := p.Vertices()
	s.Polygon(v[:], true)
}
