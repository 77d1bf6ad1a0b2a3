package loop

import (
	"fmt"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// GameOverText is the message shown when the ship is hit.
const GameOverText = "GAME OVER"

// hudMargin keeps HUD text off the surface edge, in logical units.
const hudMargin = 16

// drawHUD draws the score in the top-left corner.
func drawHUD(s draw.Surface, score int) {
	object.Text{
		Position: physics.V(hudMargin, hudMargin),
		Value:    fmt.Sprintf("SCORE %d", score),
		Align:    draw.AlignLeft,
	}.Draw(s)
}

// drawGameOver draws the centered GAME OVER message with the final score below it.
func drawGameOver(s draw.Surface, score int) {
	w, h := s.Size()
	object.Text{Position: physics.V(w/2, h/2), Value: GameOverText, Align: draw.AlignCenter}.Draw(s)
	object.Text{
		Position: physics.V(w/2, h/2+2*hudMargin),
		Value:    fmt.Sprintf("SCORE %d", score),
		Align:    draw.AlignCenter,
	}.Draw(s)
}
