package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Half-block characters used to pack two vertical pixels into one cell.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// label is a text overlay placed on whole terminal cells.
type label struct {
	col, row int // 0-based, relative to the canvas origin
	text     string
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game objects draw in logical coordinates which are scaled to terminal pixels.
type Canvas struct {
	termWidth      int    // Terminal columns used by the canvas
	termHeight     int    // Terminal rows used by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the canvas in a larger terminal.
	offsetCol int
	offsetRow int

	labels []label

	renderBuf       strings.Builder
	rowBuf          []rune
	scaledBuf       []Point
	intersectionBuf []float64
	numBuf          [20]byte
}

// NewCanvas creates a canvas that maps a logicalWidth x logicalHeight space onto
// termWidth x termHeight terminal cells.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int { return c.offsetCol }
func (c *Canvas) OffsetRow() int { return c.offsetRow }

func (c *Canvas) TerminalWidth() int  { return c.termWidth }
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Size returns the logical dimensions.
func (c *Canvas) Size() (float64, float64) {
	return c.logicalWidth, c.logicalHeight
}

// Clear resets all pixels and text overlays.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.labels = c.labels[:0]
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the pixel at terminal sub-pixel coordinates is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

func (c *Canvas) toPixel(p Point) (float64, float64) {
	return p.X * c.scaleX, p.Y * c.scaleY
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	fx1, fy1 := c.toPixel(p1)
	fx2, fy2 := c.toPixel(p2)
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))
	x2, y2 := int(math.Round(fx2)), int(math.Round(fy2))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed polygon, filling the interior when filled is set.
func (c *Canvas) Polygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon using a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		x, y := c.toPixel(p)
		scaled[i] = Point{X: x, Y: y}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections
		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// FillCircle fills a circle. Non-uniform scaling turns it into an ellipse in
// pixel space; the center pixel is always set so tiny circles stay visible.
func (c *Canvas) FillCircle(center Point, radius float64) {
	cx, cy := c.toPixel(center)
	rx, ry := radius*c.scaleX, radius*c.scaleY
	c.setPixel(int(math.Round(cx)), int(math.Round(cy)))
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		for x := int(math.Ceil(cx - half - 0.5)); x <= int(math.Floor(cx+half-0.5)); x++ {
			c.setPixel(x, y)
		}
	}
}

// StrokeCircle draws a circle outline.
func (c *Canvas) StrokeCircle(center Point, radius float64) {
	cx, cy := c.toPixel(center)
	rx, ry := radius*c.scaleX, radius*c.scaleY
	steps := max(8, int(math.Ceil(2*math.Pi*math.Max(rx, ry)))*2)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.setPixel(int(math.Round(cx+rx*math.Cos(a))), int(math.Round(cy+ry*math.Sin(a))))
	}
}

// Text places s on the terminal row containing at. Text always occupies whole
// cells and is drawn over pixels.
func (c *Canvas) Text(at Point, s string, align Align) {
	px, py := c.toPixel(at)
	col := int(math.Round(px))
	switch align {
	case AlignCenter:
		col -= utf8.RuneCountInString(s) / 2
	case AlignRight:
		col -= utf8.RuneCountInString(s)
	}
	row := int(math.Floor(py)) / 2
	c.labels = append(c.labels, label{col: col, row: row, text: s})
}

// Row fills dst with the characters of one terminal row, text overlays included.
func (c *Canvas) Row(row int, dst []rune) []rune {
	dst = dst[:0]
	top := row * 2 * c.termWidth
	bottom := top + c.termWidth
	for col := 0; col < c.termWidth; col++ {
		t := c.pixels[top+col]
		b := c.pixels[bottom+col]
		switch {
		case t && b:
			dst = append(dst, BlockFull)
		case t:
			dst = append(dst, BlockUpperHalf)
		case b:
			dst = append(dst, BlockLowerHalf)
		default:
			dst = append(dst, ' ')
		}
	}
	for _, l := range c.labels {
		if l.row != row {
			continue
		}
		col := l.col
		for _, r := range l.text {
			if col >= 0 && col < len(dst) {
				dst[col] = r
			}
			col++
		}
	}
	return dst
}

// Render writes the whole frame to w. Every cell is rewritten, so no
// terminal clear is needed between frames.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 3)
	for row := 0; row < c.termHeight; row++ {
		c.moveCursor(c.offsetCol+1, c.offsetRow+row+1)
		c.rowBuf = c.Row(row, c.rowBuf)
		for _, r := range c.rowBuf {
			c.renderBuf.WriteRune(r)
		}
	}
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box around the canvas when it is offset inside a larger
// terminal. Horizontal bars need a row offset, vertical bars a column offset.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	bar := strings.Repeat("─", c.termWidth)

	c.renderBuf.Reset()
	if hasV {
		if hasH {
			c.moveCursor(left, top)
			c.renderBuf.WriteString("┌" + bar + "┐")
			c.moveCursor(left, bottom)
			c.renderBuf.WriteString("└" + bar + "┘")
		} else {
			c.moveCursor(c.offsetCol+1, top)
			c.renderBuf.WriteString(bar)
			c.moveCursor(c.offsetCol+1, bottom)
			c.renderBuf.WriteString(bar)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row < c.offsetRow+c.termHeight+1; row++ {
			c.moveCursor(left, row)
			c.renderBuf.WriteString("│")
			c.moveCursor(right, row)
			c.renderBuf.WriteString("│")
		}
	}
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// Fit clamps a terminal size to the maximum render area and returns the
// render size plus the offsets that center it.
func Fit(termWidth, termHeight, maxWidth, maxHeight int) (width, height, offsetCol, offsetRow int) {
	width = min(termWidth, maxWidth)
	height = min(termHeight, maxHeight)
	offsetCol = (termWidth - width) / 2
	offsetRow = (termHeight - height) / 2
	return
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var _ Surface = (*Canvas)(nil)
