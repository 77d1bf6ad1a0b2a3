package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Options configures a new Session.
type Options struct {
	Width  float64 // Logical surface width; config.DefaultWidth when zero
	Height float64
	Rand   *rand.Rand // Source for spawns and debris; time-seeded when nil
}

// Session owns all state of one game: the player, projectiles and asteroids in
// insertion order, cosmetic particles, held keys, the asteroid spawner and the
// phase. A restart creates a new Session.
type Session struct {
	screen object.Screen
	rng    *rand.Rand

	player      *object.Player
	projectiles []*object.Projectile
	asteroids   []*object.Asteroid
	particles   []object.Object
	toSpawn     []object.Object

	keys    input.Latch
	spawner *object.AsteroidSpawner
	grid    *physics.SpatialGrid

	phase  Phase
	score  int
	frame  int
	events []Event
}

// NewSession creates a running session with the player at rest in the center.
func NewSession(opts Options) *Session {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = config.DefaultWidth
	}
	if h <= 0 {
		h = config.DefaultHeight
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	screen := object.Screen{Width: w, Height: h}
	return &Session{
		screen:  screen,
		rng:     rng,
		player:  object.NewPlayer(screen.Center()),
		spawner: object.NewAsteroidSpawner(rng),
		grid:    physics.NewSpatialGrid(w, h, gridCellSize),
		phase:   PhaseRunning,
	}
}

func (s *Session) Screen() object.Screen { return s.screen }
func (s *Session) Phase() Phase          { return s.phase }
func (s *Session) Over() bool            { return s.phase == PhaseGameOver }

// Score is the number of asteroids destroyed.
func (s *Session) Score() int { return s.score }

// Frame is the number of frames stepped so far.
func (s *Session) Frame() int { return s.frame }

func (s *Session) Player() *object.Player            { return s.player }
func (s *Session) Projectiles() []*object.Projectile { return s.projectiles }
func (s *Session) Asteroids() []*object.Asteroid     { return s.asteroids }
func (s *Session) Keys() *input.Latch                { return &s.keys }
func (s *Session) Spawner() *object.AsteroidSpawner  { return s.spawner }
func (s *Session) ParticleCount() int                { return len(s.particles) }

// AddAsteroid appends an asteroid as if it had just been spawned.
func (s *Session) AddAsteroid(a *object.Asteroid) {
	s.asteroids = append(s.asteroids, a)
}

// AddProjectile appends a projectile as if it had just been fired.
func (s *Session) AddProjectile(p *object.Projectile) {
	s.projectiles = append(s.projectiles, p)
}

// SpawnAsteroid adds one asteroid at a random edge. It does nothing once the
// game is over. Returns whether an asteroid was added.
func (s *Session) SpawnAsteroid() bool {
	if s.Over() {
		return false
	}
	a := s.spawner.Next(s.screen)
	if a == nil {
		return false
	}
	s.asteroids = append(s.asteroids, a)
	return true
}

// KeyDown marks k as held. Fire shoots immediately, once per key-down.
func (s *Session) KeyDown(k input.Key) {
	if s.Over() || !k.Valid() {
		return
	}
	s.keys.Press(k)
	if k == input.KeyFire {
		s.fire()
	}
}

// KeyUp releases k.
func (s *Session) KeyUp(k input.Key) {
	if s.Over() {
		return
	}
	s.keys.Release(k)
}

// Apply feeds a key transition into the session.
func (s *Session) Apply(ev input.Event) {
	if ev.Down {
		s.KeyDown(ev.Key)
	} else {
		s.KeyUp(ev.Key)
	}
}

func (s *Session) fire() {
	p := object.NewProjectile(s.player.Nose(), s.player.Rotation)
	s.projectiles = append(s.projectiles, p)
	s.emit(Event{Type: EventFired, Position: p.Position})
}

// Spawn queues a cosmetic object to join the session after the current frame.
func (s *Session) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

func (s *Session) flushSpawned() {
	s.particles = append(s.particles, s.toSpawn...)
	clear(s.toSpawn)
	s.toSpawn = s.toSpawn[:0]
}

func (s *Session) emit(ev Event) {
	s.events = append(s.events, ev)
}

// Events returns and clears the events queued since the last call.
func (s *Session) Events() []Event {
	evs := s.events
	s.events = nil
	return evs
}

var _ object.Spawner = (*Session)(nil)
