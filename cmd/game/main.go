package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/loop/client"
	gameconfig "github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/sound"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}

	useTCell := flag.Bool("tcell", false, "render through tcell instead of raw ANSI output")
	seed := flag.Int64("seed", int64(config.GetEnvInt("ASTEROIDS_SEED", 0)), "random seed, 0 for time-seeded")
	withSound := flag.Bool("sound", config.GetEnvBool("ASTEROIDS_SOUND", false), "play sound effects")
	flag.Parse()

	// Never log to the terminal the game renders into.
	logger, closeLog, err := config.OpenLogFile(config.GetEnv("ASTEROIDS_LOG", ""), "game")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	player, err := sound.Open(*withSound, 0.5)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	if sp, ok := player.(*sound.Speaker); ok {
		defer sp.Close()
	}

	opts := client.Options{
		Width:    config.GetEnvFloat("ASTEROIDS_WIDTH", gameconfig.DefaultWidth),
		Height:   config.GetEnvFloat("ASTEROIDS_HEIGHT", gameconfig.DefaultHeight),
		Seed:     *seed,
		Username: os.Getenv("USER"),
		Sound:    player,
		Logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := runANSI
	if *useTCell {
		run = runTCell
	}
	if err := run(ctx, opts, logger); err != nil {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// runANSI plays on stdin/stdout with the terminal in raw mode.
func runANSI(ctx context.Context, opts client.Options, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	host := client.NewANSIHost(os.Stdin, os.Stdout, nil, opts.Width, opts.Height)
	if err := host.Open(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer host.Close()

	c := client.New(host, opts)
	err = c.Run(ctx)
	logger.Info("session ended", "games", c.Games(), "best", c.Best())
	return err
}

// runTCell plays on a tcell screen.
func runTCell(ctx context.Context, opts client.Options, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	c := client.New(client.NewTCellHost(screen, opts.Width, opts.Height), opts)
	err = c.Run(ctx)
	logger.Info("session ended", "games", c.Games(), "best", c.Best())
	return err
}
