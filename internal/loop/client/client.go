// Package client drives one player's screens: the title screen, the game
// sessions, the GAME OVER prompt and the shutdown notice.
package client

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/loop"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/loop/server"
	"github.com/tomz197/asteroids-arcade/internal/sound"
)

// Host is a loop.Host that can also forget held keys between games.
type Host interface {
	loop.Host
	Reset()
}

// Options configures a Client.
type Options struct {
	Width    float64 // Logical surface size; config defaults when zero
	Height   float64
	Seed     int64 // Seed for spawns; time-seeded when zero
	Username string

	Lobby  server.Lobby // Shared scoreboard; nil plays offline
	Sound  sound.Player
	Logger *log.Logger

	// Runner schedules sessions; loop.NewRunner(Sound) when nil.
	Runner *loop.Runner
}

// Client handles screens and sessions for a single player.
type Client struct {
	host   Host
	lobby  server.Lobby
	handle *server.ClientHandle
	runner *loop.Runner
	logger *log.Logger
	rng    *rand.Rand

	width, height float64
	username      string

	state GameState
	best  int
	games int

	mu     sync.Mutex
	notice string // Latest lobby announcement

	shutdown     chan struct{}
	shutdownOnce sync.Once
	shutdownAt   time.Time
}

// New creates a client that plays on host.
func New(host Host, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	runner := opts.Runner
	if runner == nil {
		runner = loop.NewRunner(opts.Sound)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = config.DefaultWidth, config.DefaultHeight
	}
	return &Client{
		host:     host,
		lobby:    opts.Lobby,
		runner:   runner,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
		width:    w,
		height:   h,
		username: opts.Username,
		state:    GameStateStart,
		shutdown: make(chan struct{}),
	}
}

// State returns the current screen.
func (c *Client) State() GameState { return c.state }

// Best is the highest score of this client's games.
func (c *Client) Best() int { return c.best }

// Games is the number of finished games.
func (c *Client) Games() int { return c.games }

// Run shows screens and plays games until the player quits, input closes,
// the server shuts down or ctx is done.
func (c *Client) Run(ctx context.Context) error {
	if c.lobby != nil {
		c.handle = c.lobby.Register(c.username)
		defer c.lobby.Unregister(c.handle.ID)
		go c.watch(c.handle.Events)
	}

	for {
		var err error
		switch c.state {
		case GameStateStart:
			err = c.updateStartState(ctx)
		case GameStatePlaying:
			err = c.updatePlayingState(ctx)
		case GameStateOver:
			err = c.updateOverState(ctx)
		case GameStateShutdown:
			err = c.updateShutdownState(ctx)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// watch forwards lobby events until the handle is unregistered.
func (c *Client) watch(events <-chan server.ClientEvent) {
	for ev := range events {
		switch ev.Type {
		case server.EventServerShutdown:
			c.shutdownOnce.Do(func() { close(c.shutdown) })
		case server.EventHighScore:
			c.mu.Lock()
			c.notice = fmt.Sprintf("%s took first place with %d", ev.Username, ev.Score)
			c.mu.Unlock()
		}
	}
}

func (c *Client) currentNotice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// updateStartState shows the title screen until the player starts or quits.
func (c *Client) updateStartState(ctx context.Context) error {
	return c.menu(ctx, c.drawStartScreen, func(b input.Batch) (GameState, bool) {
		switch {
		case b.Quit:
			return GameStateDone, true
		case b.Restart || fired(b):
			return GameStatePlaying, true
		}
		return 0, false
	})
}

// updatePlayingState plays one game in a fresh session.
func (c *Client) updatePlayingState(ctx context.Context) error {
	s := loop.NewSession(loop.Options{Width: c.width, Height: c.height, Rand: c.rng})
	c.host.Reset()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.shutdown:
			cancel()
		case <-runCtx.Done():
		}
	}()

	outcome, err := c.runner.Run(runCtx, s, c.host)
	if err != nil {
		return err
	}
	c.logger.Debug("game finished", "user", c.username, "outcome", outcome, "score", s.Score(), "frames", s.Frame())

	switch {
	case outcome == loop.OutcomeGameOver:
		c.finish(s.Score())
		c.state = GameStateOver
	case outcome == loop.OutcomeQuit || ctx.Err() != nil:
		c.state = GameStateDone
	case c.shuttingDown():
		c.state = GameStateShutdown
	default:
		c.state = GameStateDone
	}
	return nil
}

func (c *Client) finish(score int) {
	c.best = max(c.best, score)
	c.games++
	if c.lobby != nil {
		c.lobby.RecordScore(c.handle.ID, score)
	}
	c.logger.Info("game over", "user", c.username, "score", score)
}

func (c *Client) shuttingDown() bool {
	select {
	case <-c.shutdown:
		return true
	default:
		return false
	}
}

// updateOverState adds the restart prompt to the GAME OVER frame, which stays
// on screen as drawn, and waits for the player.
func (c *Client) updateOverState(ctx context.Context) error {
	drawRestartPrompt(c.host.Surface())
	if err := c.host.Present(); err != nil {
		return fmt.Errorf("present prompt: %w", err)
	}
	return c.menu(ctx, nil, func(b input.Batch) (GameState, bool) {
		switch {
		case b.Quit:
			return GameStateDone, true
		case b.Restart:
			return GameStatePlaying, true
		}
		return 0, false
	})
}

// updateShutdownState counts down before disconnecting.
func (c *Client) updateShutdownState(ctx context.Context) error {
	now := c.runner.Now
	if now == nil {
		now = time.Now
	}
	c.shutdownAt = now().Add(config.ShutdownDisplay)
	return c.menu(ctx, c.drawShutdownScreen, func(b input.Batch) (GameState, bool) {
		if b.Quit || !now().Before(c.shutdownAt) {
			return GameStateDone, true
		}
		return 0, false
	})
}

// menu runs a non-game screen at the frame rate. paint (when set) redraws the
// screen each tick; next decides whether to leave it.
func (c *Client) menu(ctx context.Context, paint func(draw.Surface, time.Time), next func(input.Batch) (GameState, bool)) error {
	newTicker := c.runner.NewTicker
	if newTicker == nil {
		newTicker = loop.NewTimeTicker
	}
	t := newTicker(c.runner.FrameInterval)
	defer t.Stop()

	shutdown := c.shutdown
	if c.state == GameStateShutdown {
		shutdown = nil
	}

	for {
		select {
		case <-ctx.Done():
			c.state = GameStateDone
			return nil

		case <-shutdown:
			c.state = GameStateShutdown
			return nil

		case now := <-t.C():
			batch := c.host.Poll(now)
			if batch.Closed {
				c.state = GameStateDone
				return nil
			}
			if paint != nil {
				paint(c.host.Surface(), now)
				if err := c.host.Present(); err != nil {
					return fmt.Errorf("present %s screen: %w", c.state, err)
				}
			}
			if s, ok := next(batch); ok {
				c.state = s
				return nil
			}
		}
	}
}

// fired reports whether the batch holds a fire key-down.
func fired(b input.Batch) bool {
	for _, ev := range b.Events {
		if ev.Key == input.KeyFire && ev.Down {
			return true
		}
	}
	return false
}
