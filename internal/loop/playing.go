package loop

import (
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Step runs one frame: every entity is drawn at its current position and then
// moved. An asteroid touching the ship ends the game on the spot and the rest
// of the frame is skipped. Step is a no-op once the game is over.
func (s *Session) Step(surface draw.Surface) {
	if s.Over() {
		return
	}
	s.frame++
	ctx := object.UpdateContext{Screen: s.screen}

	surface.Clear()

	s.player.Draw(surface)
	s.player.Update(ctx)

	for i := len(s.projectiles) - 1; i >= 0; i-- {
		p := s.projectiles[i]
		p.Draw(surface)
		if p.Update(ctx) {
			p.MarkDestroyed()
		}
	}

	s.indexProjectiles()
	ship := s.player.Vertices()
	for i := len(s.asteroids) - 1; i >= 0; i-- {
		a := s.asteroids[i]
		a.Draw(surface)
		outside := a.Update(ctx)

		if physics.CircleTriangleCollide(a.Position, a.Radius, ship) {
			s.compact()
			s.end(surface)
			return
		}
		if outside {
			a.MarkDestroyed()
			continue
		}
		if j := s.hitProjectile(a); j >= 0 {
			s.destroy(a, s.projectiles[j])
		}
	}

	s.player.Steer(&s.keys)

	s.updateParticles(surface, ctx)
	drawHUD(surface, s.score)

	s.compact()
}

// destroy removes an asteroid together with the projectile that hit it.
func (s *Session) destroy(a *object.Asteroid, p *object.Projectile) {
	a.MarkDestroyed()
	p.MarkDestroyed()
	s.score++
	s.emit(Event{Type: EventAsteroidDestroyed, Position: a.Position})
	object.SpawnDebris(a.Position, config.DebrisCount, config.DebrisSpeed, config.DebrisLife, s.rng, s)
}

func (s *Session) updateParticles(surface draw.Surface, ctx object.UpdateContext) {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.Draw(surface)
		if p.Update(ctx) {
			object.ReleaseObject(p)
			continue
		}
		kept = append(kept, p)
	}
	clear(s.particles[len(kept):])
	s.particles = kept
	s.flushSpawned()
}

// end moves the session to GameOver. It runs at most once: the spawner is
// cancelled, held keys are dropped and the GAME OVER message is drawn.
func (s *Session) end(surface draw.Surface) {
	if s.Over() {
		return
	}
	s.phase = PhaseGameOver
	s.spawner.Cancel()
	s.keys.Reset()
	drawGameOver(surface, s.score)
	s.emit(Event{Type: EventGameOver, Position: s.player.Position})
}
