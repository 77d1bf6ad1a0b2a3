// Package desktop plays the game in a window through ebiten. ebiten calls
// Update at the frame rate; asteroid spawns follow the wall clock.
package desktop

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/loop"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
	"github.com/tomz197/asteroids-arcade/internal/sound"
)

// RestartPrompt is added under GAME OVER.
const RestartPrompt = "Press ENTER to play again, ESC to quit"

// Options configures a Game.
type Options struct {
	Width  float64
	Height float64
	Seed   int64 // Time-seeded when zero
	Sound  sound.Player
	Logger *log.Logger

	SpawnInterval time.Duration // config.SpawnInterval when zero
	Now           func() time.Time
}

// Game implements ebiten.Game. Each frame is drawn into a recorder by the
// session and replayed onto the window, so after GAME OVER the final frame
// stays on screen without stepping the session again.
type Game struct {
	session *loop.Session
	frame   *draw.Recorder
	rng     *rand.Rand
	opts    Options

	lastSpawn time.Time
	prompted  bool
	keys      []ebiten.Key
	target    surface
}

// New creates a game with a running session.
func New(opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.DefaultWidth, config.DefaultHeight
	}
	if opts.SpawnInterval <= 0 {
		opts.SpawnInterval = config.SpawnInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		frame: draw.NewRecorder(opts.Width, opts.Height),
		rng:   rand.New(rand.NewSource(seed)),
		opts:  opts,
	}
	g.restart()
	return g
}

// Session returns the session currently played.
func (g *Game) Session() *loop.Session { return g.session }

// Frame returns the recorded draw calls of the latest frame.
func (g *Game) Frame() *draw.Recorder { return g.frame }

func (g *Game) restart() {
	g.session = loop.NewSession(loop.Options{Width: g.opts.Width, Height: g.opts.Height, Rand: g.rng})
	g.lastSpawn = g.opts.Now()
	g.prompted = false
}

// Update reads the keyboard and advances one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.session.Over() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.restart()
		}
		return nil
	}

	var events []input.Event
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	events = appendKeyEvents(events, g.keys, true)
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	events = appendKeyEvents(events, g.keys, false)

	g.tick(events, g.opts.Now())
	return nil
}

// tick applies input, spawns when due and steps the session once.
func (g *Game) tick(events []input.Event, now time.Time) {
	if g.session.Over() {
		return
	}
	for _, ev := range events {
		g.session.Apply(ev)
	}
	if now.Sub(g.lastSpawn) >= g.opts.SpawnInterval {
		g.lastSpawn = now
		g.session.SpawnAsteroid()
	}

	g.session.Step(g.frame)
	loop.PlayEvents(g.opts.Sound, g.session.Events())

	if g.session.Over() && !g.prompted {
		g.prompted = true
		w, h := g.frame.Size()
		object.Text{Position: physics.V(w/2, h/2+100), Value: RestartPrompt, Align: draw.AlignCenter}.Draw(g.frame)
		g.opts.Logger.Info("game over", "score", g.session.Score(), "frames", g.session.Frame())
	}
}

// Draw replays the latest frame onto the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.target.img = screen
	g.target.width, g.target.height = g.opts.Width, g.opts.Height
	screen.Fill(background)
	g.frame.Replay(&g.target)
}

// Layout keeps the logical size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.opts.Width), int(g.opts.Height)
}

var _ ebiten.Game = (*Game)(nil)

// keyFor maps an ebiten key to a game key.
func keyFor(k ebiten.Key) (input.Key, bool) {
	switch k {
	case ebiten.KeyW, ebiten.KeyArrowUp:
		return input.KeyForward, true
	case ebiten.KeyA, ebiten.KeyArrowLeft:
		return input.KeyLeft, true
	case ebiten.KeyD, ebiten.KeyArrowRight:
		return input.KeyRight, true
	case ebiten.KeySpace:
		return input.KeyFire, true
	}
	return 0, false
}

func appendKeyEvents(dst []input.Event, keys []ebiten.Key, down bool) []input.Event {
	for _, k := range keys {
		if key, ok := keyFor(k); ok {
			dst = append(dst, input.Event{Key: key, Down: down})
		}
	}
	return dst
}
