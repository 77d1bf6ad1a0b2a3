package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

const (
	particleRadius = 1.5
	particleDrag   = 0.95
)

// Particle is short-lived debris. It never collides with anything.
type Particle struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Life     int // Frames remaining
	MaxLife  int
	Drag     float64 // Velocity multiplier per frame (1.0 = no drag)
}

// NewParticle takes a particle from the pool.
func NewParticle(pos, vel physics.Vec2, life int) *Particle {
	p := particlePool.Get().(*Particle)
	p.Position = pos
	p.Velocity = vel
	p.Life = life
	p.MaxLife = life
	p.Drag = particleDrag
	return p
}

// Release returns the particle to the pool. Call it once the particle is removed.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnDebris emits count particles bursting out of at in random directions.
func SpawnDebris(at physics.Vec2, count int, speed float64, life int, rng *rand.Rand, spawner Spawner) {
	if spawner == nil {
		return
	}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// 50% to 150% of the base speed
		spd := speed * (0.5 + rng.Float64())
		// 50% to 100% of the base lifetime
		l := max(1, int(float64(life)*(0.5+rng.Float64()*0.5)))
		spawner.Spawn(NewParticle(at, physics.FromAngle(angle, spd), l))
	}
}

// Update moves the particle and ages it by one frame.
func (p *Particle) Update(ctx UpdateContext) bool {
	p.Life--
	if p.Life <= 0 {
		return true
	}
	p.Velocity = p.Velocity.Scale(p.Drag)
	p.Position = p.Position.Add(p.Velocity)
	return ctx.Screen.Outside(p.Position, particleRadius)
}

// Draw renders the particle. It disappears for the last quarter of its life.
func (p *Particle) Draw(s draw.Surface) {
	if p.MaxLife > 0 && p.Life*4 < p.MaxLife {
		return
	}
	s.FillCircle(p.Position, particleRadius)
}
