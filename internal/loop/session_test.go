package loop

import (
	"math/rand"
	"testing"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// newTestSession creates an 800x600 session with the ship at (400,300)
// pointing right, so its nose is at (430,300).
func newTestSession() *Session {
	return NewSession(Options{Width: 800, Height: 600, Rand: rand.New(rand.NewSource(1))})
}

func still(x, y float64) *object.Projectile {
	return &object.Projectile{Position: physics.V(x, y)}
}

func rock(x, y, r float64) *object.Asteroid {
	return object.NewAsteroid(physics.V(x, y), physics.Vec2{}, r)
}

func hasEvent(events []Event, typ EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(Options{})
	if s.Screen().Width != 1024 || s.Screen().Height != 768 {
		t.Errorf("screen = %+v, want 1024x768", s.Screen())
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", s.Phase())
	}
	if s.Player().Position != physics.V(512, 384) {
		t.Errorf("player at %v, want screen center", s.Player().Position)
	}
}

func TestProjectileDestroysAsteroid(t *testing.T) {
	s := newTestSession()
	s.AddAsteroid(rock(400, 100, 20))
	s.AddProjectile(still(400, 125))

	s.Step(draw.NewRecorder(800, 600))

	if len(s.Asteroids()) != 0 || len(s.Projectiles()) != 0 {
		t.Fatalf("asteroids=%d projectiles=%d, want both removed", len(s.Asteroids()), len(s.Projectiles()))
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if !hasEvent(s.Events(), EventAsteroidDestroyed) {
		t.Error("missing asteroid destroyed event")
	}
	if s.ParticleCount() == 0 {
		t.Error("expected debris particles")
	}
}

func TestTouchingCirclesCollide(t *testing.T) {
	s := newTestSession()
	// Centers 25 apart, radii 20 + 5.
	s.AddAsteroid(rock(400, 100, 20))
	s.AddProjectile(still(425, 100))

	s.Step(draw.NewRecorder(800, 600))

	if len(s.Asteroids()) != 0 {
		t.Error("touching projectile did not destroy the asteroid")
	}
}

func TestOneProjectilePerAsteroid(t *testing.T) {
	s := newTestSession()
	s.AddAsteroid(rock(400, 100, 20))
	low := still(400, 110)
	high := still(400, 90)
	s.AddProjectile(low)
	s.AddProjectile(high)

	s.Step(draw.NewRecorder(800, 600))

	if len(s.Asteroids()) != 0 {
		t.Fatal("asteroid survived")
	}
	if got := s.Projectiles(); len(got) != 1 || got[0] != low {
		t.Fatalf("projectiles = %v, want only the lower index one", got)
	}
}

func TestHighestIndexAsteroidTakesSharedProjectile(t *testing.T) {
	s := newTestSession()
	first := rock(380, 100, 20)
	second := rock(420, 100, 20)
	s.AddAsteroid(first)
	s.AddAsteroid(second)
	s.AddProjectile(still(400, 100))

	s.Step(draw.NewRecorder(800, 600))

	if got := s.Asteroids(); len(got) != 1 || got[0] != first {
		t.Fatalf("asteroids = %v, want the first one to survive", got)
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestOffscreenEntitiesRemoved(t *testing.T) {
	s := newTestSession()
	p := object.NewProjectile(physics.V(-4, 300), 3.141592653589793)
	s.AddProjectile(p)
	s.AddAsteroid(object.NewAsteroid(physics.V(820, 50), physics.V(1, 0), 20))
	kept := object.NewAsteroid(physics.V(-20, 500), physics.V(1, 0), 20)
	s.AddAsteroid(kept)

	s.Step(draw.NewRecorder(800, 600))

	if len(s.Projectiles()) != 0 {
		t.Error("projectile outside the screen was kept")
	}
	if got := s.Asteroids(); len(got) != 1 || got[0] != kept {
		t.Errorf("asteroids = %v, want only the one entering", got)
	}
}

func TestRemovalPreservesOrder(t *testing.T) {
	s := newTestSession()
	a := rock(100, 100, 10)
	b := rock(200, 100, 10)
	c := rock(300, 100, 10)
	d := rock(700, 100, 10)
	for _, r := range []*object.Asteroid{a, b, c, d} {
		s.AddAsteroid(r)
	}
	s.AddProjectile(still(200, 100))

	s.Step(draw.NewRecorder(800, 600))

	got := s.Asteroids()
	want := []*object.Asteroid{a, c, d}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("asteroid %d out of order", i)
		}
	}
}

func TestGameOver(t *testing.T) {
	s := newTestSession()
	// Not processed: the frame stops at the collision below.
	ignored := rock(-1000, -1000, 10)
	s.AddAsteroid(ignored)
	// Closest point of the ship to (440,300) is the nose at (430,300).
	s.AddAsteroid(rock(440, 300, 10))
	s.KeyDown(input.KeyForward)

	rec := draw.NewRecorder(800, 600)
	s.Step(rec)

	if !s.Over() {
		t.Fatal("expected game over")
	}
	if !s.Spawner().Cancelled() {
		t.Error("spawner still active")
	}
	if len(s.Asteroids()) != 2 {
		t.Errorf("asteroids = %d, want both kept since processing stopped", len(s.Asteroids()))
	}
	if s.Player().Velocity != (physics.Vec2{}) {
		t.Errorf("ship was steered after the collision: %v", s.Player().Velocity)
	}
	texts := rec.Texts()
	if len(texts) == 0 || texts[0] != GameOverText {
		t.Errorf("texts = %v, want %q first", texts, GameOverText)
	}
	if !hasEvent(s.Events(), EventGameOver) {
		t.Error("missing game over event")
	}
}

func TestGameOverIsFinal(t *testing.T) {
	s := newTestSession()
	s.AddAsteroid(rock(440, 300, 10))
	s.Step(draw.NewRecorder(800, 600))
	if !s.Over() {
		t.Fatal("expected game over")
	}
	s.Events()

	frame := s.Frame()
	rec := draw.NewRecorder(800, 600)
	s.Step(rec)
	if s.Frame() != frame || len(rec.Ops) != 0 {
		t.Error("Step ran after game over")
	}

	s.KeyDown(input.KeyFire)
	s.KeyDown(input.KeyLeft)
	if len(s.Projectiles()) != 0 || s.Keys().Pressed(input.KeyLeft) {
		t.Error("input handled after game over")
	}
	if s.SpawnAsteroid() {
		t.Error("asteroid spawned after game over")
	}
	if len(s.Events()) != 0 {
		t.Error("events emitted after game over")
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("phase = %v", s.Phase())
	}
}

func TestSafeAsteroidDoesNotEndGame(t *testing.T) {
	s := newTestSession()
	// 11 units past the nose with radius 10.
	s.AddAsteroid(rock(441, 300, 10))
	s.Step(draw.NewRecorder(800, 600))
	if s.Over() {
		t.Fatal("game ended without contact")
	}
}

func TestFireOnKeyDown(t *testing.T) {
	s := newTestSession()
	s.KeyDown(input.KeyFire)
	s.KeyDown(input.KeyFire)

	ps := s.Projectiles()
	if len(ps) != 2 {
		t.Fatalf("projectiles = %d, want 2", len(ps))
	}
	if ps[0].Position != s.Player().Nose() {
		t.Errorf("projectile at %v, want nose %v", ps[0].Position, s.Player().Nose())
	}
	if ps[0].Velocity != physics.V(object.ProjectileSpeed, 0) {
		t.Errorf("velocity = %v", ps[0].Velocity)
	}
	fired := 0
	for _, ev := range s.Events() {
		if ev.Type == EventFired {
			fired++
		}
	}
	if fired != 2 {
		t.Errorf("fired events = %d, want 2", fired)
	}

	s.KeyUp(input.KeyFire)
	if s.Keys().Pressed(input.KeyFire) {
		t.Error("fire still held after KeyUp")
	}
}

func TestSteerAppliedAfterIntegration(t *testing.T) {
	s := newTestSession()
	s.Apply(input.Event{Key: input.KeyForward, Down: true})

	s.Step(draw.NewRecorder(800, 600))
	if s.Player().Position != physics.V(400, 300) {
		t.Errorf("ship moved on the thrust frame: %v", s.Player().Position)
	}
	if s.Player().Velocity != physics.V(3, 0) {
		t.Errorf("velocity = %v, want (3,0)", s.Player().Velocity)
	}

	s.Step(draw.NewRecorder(800, 600))
	if s.Player().Position != physics.V(403, 300) {
		t.Errorf("position = %v, want (403,300)", s.Player().Position)
	}
}

func TestSpawnAsteroid(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 3; i++ {
		if !s.SpawnAsteroid() {
			t.Fatal("SpawnAsteroid returned false")
		}
	}
	if len(s.Asteroids()) != 3 {
		t.Fatalf("asteroids = %d, want 3", len(s.Asteroids()))
	}
}

func TestSessionsWithSameSeedMatch(t *testing.T) {
	a := newTestSession()
	b := newTestSession()
	for i := 0; i < 5; i++ {
		a.SpawnAsteroid()
		b.SpawnAsteroid()
	}
	for i := range a.Asteroids() {
		x, y := a.Asteroids()[i], b.Asteroids()[i]
		if x.Position != y.Position || x.Radius != y.Radius {
			t.Fatalf("asteroid %d differs", i)
		}
	}
}

func TestStepDrawsHUD(t *testing.T) {
	s := newTestSession()
	rec := draw.NewRecorder(800, 600)
	s.Step(rec)
	if rec.Ops[0].Kind != draw.OpClear {
		t.Error("frame does not start with Clear")
	}
	texts := rec.Texts()
	if len(texts) != 1 || texts[0] != "SCORE 0" {
		t.Errorf("texts = %v", texts)
	}
}

func TestParticlesExpire(t *testing.T) {
	s := newTestSession()
	s.AddAsteroid(rock(400, 100, 20))
	s.AddProjectile(still(400, 100))
	rec := draw.NewRecorder(800, 600)
	s.Step(rec)
	if s.ParticleCount() == 0 {
		t.Fatal("no particles")
	}
	for i := 0; i < 100; i++ {
		s.Step(rec)
	}
	if s.ParticleCount() != 0 {
		t.Errorf("%d particles left", s.ParticleCount())
	}
}

func TestGridMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 50; round++ {
		s := newTestSession()
		for i := 0; i < 40; i++ {
			p := still(rng.Float64()*900-50, rng.Float64()*700-50)
			if rng.Intn(5) == 0 {
				p.MarkDestroyed()
			}
			s.AddProjectile(p)
		}
		s.indexProjectiles()
		for i := 0; i < 30; i++ {
			a := rock(rng.Float64()*900-50, rng.Float64()*700-50, 10+rng.Float64()*50)
			if got, want := s.hitProjectile(a), scanProjectiles(s.Projectiles(), a); got != want {
				t.Fatalf("round %d: grid found %d, scan found %d", round, got, want)
			}
		}
	}
}

func TestOversizedAsteroidFallsBackToScan(t *testing.T) {
	s := newTestSession()
	s.AddProjectile(still(100, 100))
	s.indexProjectiles()
	a := rock(400, 300, 400)
	if got := s.hitProjectile(a); got != 0 {
		t.Errorf("hitProjectile = %d, want 0", got)
	}
}
