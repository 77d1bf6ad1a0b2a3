package loop

import (
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// gridCellSize covers the largest projectile-asteroid contact distance, so a
// 3x3 neighborhood query finds every overlapping projectile.
const gridCellSize = object.ProjectileRadius + object.AsteroidMinRadius + object.AsteroidRadiusRange

// indexProjectiles rebuilds the broad-phase grid from the live projectiles.
func (s *Session) indexProjectiles() {
	s.grid.Clear()
	for i, p := range s.projectiles {
		if !p.IsDestroyed() {
			s.grid.Insert(p.Position, i)
		}
	}
}

// hitProjectile returns the index of the highest-index live projectile
// touching a, or -1. Asteroids larger than the grid supports fall back to a
// full scan.
func (s *Session) hitProjectile(a *object.Asteroid) int {
	if a.Radius+object.ProjectileRadius > s.grid.CellSize() {
		return scanProjectiles(s.projectiles, a)
	}
	hit := -1
	s.grid.QueryAround(a.Position, func(i int) bool {
		if i > hit && touches(s.projectiles[i], a) {
			hit = i
		}
		return false
	})
	return hit
}

// scanProjectiles is the brute-force form of hitProjectile: projectiles are
// visited in reverse order and the first live one touching a wins.
func scanProjectiles(projectiles []*object.Projectile, a *object.Asteroid) int {
	for i := len(projectiles) - 1; i >= 0; i-- {
		if touches(projectiles[i], a) {
			return i
		}
	}
	return -1
}

func touches(p *object.Projectile, a *object.Asteroid) bool {
	return !p.IsDestroyed() && physics.CirclesCollide(p.Position, p.Radius(), a.Position, a.Radius)
}

// retain drops destroyed items in place, preserving order.
func retain[T object.Destructible](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.IsDestroyed() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// compact removes tombstoned projectiles and asteroids.
func (s *Session) compact() {
	s.projectiles = retain(s.projectiles)
	s.asteroids = retain(s.asteroids)
}
