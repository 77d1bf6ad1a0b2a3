package object

import (
	"math/rand"

	"github.com/tomz197/asteroids-arcade/internal/physics"
)

const (
	AsteroidMinRadius   = 10.0
	AsteroidRadiusRange = 50.0 // Radii fall in [min, min+range)
	AsteroidSpeed       = 1.0
)

// Edge identifies the side of the screen an asteroid enters from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeBottom
	EdgeRight
	EdgeTop
)

// AsteroidSpawner creates asteroids at the screen edges, each moving inward.
// Once cancelled it never produces another asteroid.
type AsteroidSpawner struct {
	rng       *rand.Rand
	cancelled bool
}

// NewAsteroidSpawner creates a spawner drawing from rng.
// The same seed yields the same sequence of asteroids.
func NewAsteroidSpawner(rng *rand.Rand) *AsteroidSpawner {
	return &AsteroidSpawner{rng: rng}
}

// Next creates one asteroid just outside a random edge of screen.
// Returns nil after Cancel.
func (s *AsteroidSpawner) Next(screen Screen) *Asteroid {
	if s.cancelled {
		return nil
	}
	edge := Edge(s.rng.Intn(4))
	radius := AsteroidMinRadius + s.rng.Float64()*AsteroidRadiusRange
	return AsteroidAtEdge(screen, edge, radius, s.rng.Float64())
}

// AsteroidAtEdge places an asteroid of the given radius just outside edge,
// touching it, at fraction t along the edge. Its velocity points inward.
func AsteroidAtEdge(screen Screen, edge Edge, radius, t float64) *Asteroid {
	var pos, dir physics.Vec2
	switch edge {
	case EdgeLeft:
		pos = physics.V(-radius, t*screen.Height)
		dir = physics.V(1, 0)
	case EdgeBottom:
		pos = physics.V(t*screen.Width, screen.Height+radius)
		dir = physics.V(0, -1)
	case EdgeRight:
		pos = physics.V(screen.Width+radius, t*screen.Height)
		dir = physics.V(-1, 0)
	default:
		pos = physics.V(t*screen.Width, -radius)
		dir = physics.V(0, 1)
	}
	return NewAsteroid(pos, dir.Scale(AsteroidSpeed), radius)
}

func (s *AsteroidSpawner) Cancel()         { s.cancelled = true }
func (s *AsteroidSpawner) Cancelled() bool { return s.cancelled }
