package client

import (
	"fmt"
	"time"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// lineHeight separates stacked text lines, in logical units.
const lineHeight = 36

// Prompts
const (
	StartPrompt   = ">>  Press SPACE to Start  <<"
	RestartPrompt = "Press ENTER to play again, Q to quit"
	ShutdownTitle = "SERVER SHUTTING DOWN"
)

var controlLines = []string{
	"W / Up  . . . . Thrust",
	"A D / < >  . .  Rotate",
	"SPACE  . . . . . Shoot",
	"Q  . . . . . . .  Quit",
}

// centered draws lines centered horizontally, the first one at y.
func centered(s draw.Surface, y float64, lines ...string) float64 {
	w, _ := s.Size()
	for _, line := range lines {
		if line != "" {
			object.Text{Position: physics.V(w/2, y), Value: line, Align: draw.AlignCenter}.Draw(s)
		}
		y += lineHeight
	}
	return y
}

// blink is on for 600ms, then off for 600ms.
func blink(now time.Time) bool {
	return now.UnixMilli()/600%2 == 0
}

// drawStartScreen draws the title, controls, the high scores and the latest
// lobby notice.
func (c *Client) drawStartScreen(s draw.Surface, now time.Time) {
	s.Clear()
	_, h := s.Size()

	y := centered(s, h/2-7*lineHeight, "A S T E R O I D S", "~ Arcade Asteroids ~", "")
	y = centered(s, y, "Controls")
	y = centered(s, y, controlLines...)
	y += lineHeight

	if blink(now) {
		centered(s, y, StartPrompt)
	}
	y += 2 * lineHeight

	if c.lobby != nil {
		scores := c.lobby.TopScores(config.TopScores)
		if len(scores) > 0 {
			y = centered(s, y, "High Scores")
			for i, e := range scores {
				y = centered(s, y, fmt.Sprintf("%d. %-*s %6d", i+1, config.MaxUsernameLength, e.Username, e.Score))
			}
		}
	}
	if notice := c.currentNotice(); notice != "" {
		centered(s, y+lineHeight, notice)
	}
}

// drawRestartPrompt adds the restart hint below the GAME OVER text without
// clearing what is already drawn.
func drawRestartPrompt(s draw.Surface) {
	_, h := s.Size()
	centered(s, h/2+3*lineHeight, RestartPrompt)
}

// drawShutdownScreen draws the shutdown notice and the remaining seconds.
func (c *Client) drawShutdownScreen(s draw.Surface, now time.Time) {
	s.Clear()
	_, h := s.Size()

	remaining := int(c.shutdownAt.Sub(now)/time.Second) + 1
	remaining = max(remaining, 0)
	centered(s, h/2-3*lineHeight,
		ShutdownTitle,
		"",
		"The server is restarting for maintenance.",
		"Please reconnect in a moment.",
		"",
		fmt.Sprintf("Disconnecting in %d seconds...", remaining),
		"",
		"Press Q to disconnect now",
	)
}
