// Package loop runs a game session: the per-frame step, collisions and the
// scheduler that drives frames and asteroid spawns.
package loop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/sound"
)

// Ticker delivers ticks on a channel until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Host is the platform a session is played on.
type Host interface {
	input.Source
	Surface() draw.Surface
	// Present shows the frame drawn onto Surface.
	Present() error
}

// Outcome is why Run returned.
type Outcome int

const (
	OutcomeGameOver Outcome = iota // The ship was hit
	OutcomeQuit                    // The player asked to quit
	OutcomeClosed                  // The context was cancelled or input went away
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGameOver:
		return "game over"
	case OutcomeQuit:
		return "quit"
	case OutcomeClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Runner schedules frames and spawns for one session. Frames and spawns are
// handled on a single goroutine, so they never overlap.
type Runner struct {
	FrameInterval time.Duration
	SpawnInterval time.Duration
	NewTicker     func(time.Duration) Ticker
	Sound         sound.Player
	Now           func() time.Time
}

// NewRunner creates a runner with the standard frame rate and spawn interval.
func NewRunner(player sound.Player) *Runner {
	return &Runner{
		FrameInterval: config.FrameInterval,
		SpawnInterval: config.SpawnInterval,
		NewTicker:     NewTimeTicker,
		Sound:         player,
		Now:           time.Now,
	}
}

// Run drives s on h until the game ends, the player quits or ctx is done.
// On game over both tickers are stopped and the run is cancelled exactly once,
// after the GAME OVER frame has been presented.
func (r *Runner) Run(ctx context.Context, s *Session, h Host) (Outcome, error) {
	if s.Over() {
		return OutcomeGameOver, ErrSessionOver
	}

	newTicker := r.NewTicker
	if newTicker == nil {
		newTicker = NewTimeTicker
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	ctx, cancel := context.WithCancel(ctx)
	frames := newTicker(r.FrameInterval)
	spawns := newTicker(r.SpawnInterval)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			frames.Stop()
			spawns.Stop()
			cancel()
		})
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return OutcomeClosed, nil

		case <-spawns.C():
			s.SpawnAsteroid()

		case <-frames.C():
			batch := h.Poll(now())
			if batch.Closed {
				return OutcomeClosed, nil
			}
			if batch.Quit {
				return OutcomeQuit, nil
			}
			for _, ev := range batch.Events {
				s.Apply(ev)
			}

			s.Step(h.Surface())
			PlayEvents(r.Sound, s.Events())

			if err := h.Present(); err != nil {
				return OutcomeClosed, fmt.Errorf("present frame: %w", err)
			}
			if s.Over() {
				stop()
				return OutcomeGameOver, nil
			}
		}
	}
}

// PlayEvents plays the sound effect of each session event. A nil player is silent.
func PlayEvents(p sound.Player, events []Event) {
	if p == nil {
		return
	}
	for _, ev := range events {
		switch ev.Type {
		case EventFired:
			p.Play(sound.EffectFire)
		case EventAsteroidDestroyed:
			p.Play(sound.EffectExplosion)
		case EventGameOver:
			p.Play(sound.EffectGameOver)
		}
	}
}
