package draw

import "github.com/gdamore/tcell/v2"

// TCellSurface draws through a Canvas and presents it on a tcell screen.
type TCellSurface struct {
	*Canvas
	screen tcell.Screen
	style  tcell.Style
	row    []rune
}

// NewTCellSurface creates a surface sized to the screen, clamped to
// maxWidth x maxHeight cells.
func NewTCellSurface(screen tcell.Screen, logicalWidth, logicalHeight float64, maxWidth, maxHeight int) *TCellSurface {
	s := &TCellSurface{
		screen: screen,
		style:  tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
	s.Canvas = NewCanvas(1, 1, logicalWidth, logicalHeight)
	s.Sync(maxWidth, maxHeight)
	return s
}

// Sync fits the canvas to the current screen size.
func (s *TCellSurface) Sync(maxWidth, maxHeight int) {
	w, h := s.screen.Size()
	width, height, col, row := Fit(w, h, maxWidth, maxHeight)
	if width != s.TerminalWidth() || height != s.TerminalHeight() ||
		col != s.OffsetCol() || row != s.OffsetRow() {
		s.screen.Clear()
	}
	s.Resize(width, height)
	s.SetOffset(col, row)
}

// Show copies the canvas cells to the screen and shows it.
func (s *TCellSurface) Show() {
	for row := 0; row < s.TerminalHeight(); row++ {
		s.row = s.Row(row, s.row)
		for col, r := range s.row {
			s.screen.SetContent(s.OffsetCol()+col, s.OffsetRow()+row, r, nil, s.style)
		}
	}
	s.screen.Show()
}
