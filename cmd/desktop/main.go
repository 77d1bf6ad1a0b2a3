package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/desktop"
	gameconfig "github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/sound"
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")
	if err := config.Load(); err != nil {
		logger.Warn("ignoring .env", "err", err)
	}

	seed := flag.Int64("seed", int64(config.GetEnvInt("ASTEROIDS_SEED", 0)), "random seed, 0 for time-seeded")
	withSound := flag.Bool("sound", config.GetEnvBool("ASTEROIDS_SOUND", true), "play sound effects")
	flag.Parse()

	player, err := sound.Open(*withSound, 0.5)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	if sp, ok := player.(*sound.Speaker); ok {
		defer sp.Close()
	}

	width := config.GetEnvFloat("ASTEROIDS_WIDTH", gameconfig.DefaultWidth)
	height := config.GetEnvFloat("ASTEROIDS_HEIGHT", gameconfig.DefaultHeight)
	game := desktop.New(desktop.Options{
		Width:  width,
		Height: height,
		Seed:   *seed,
		Sound:  player,
		Logger: logger,
	})

	ebiten.SetWindowSize(int(width), int(height))
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetTPS(gameconfig.TargetFPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "err", err)
	}
}
