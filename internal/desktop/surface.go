package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/asteroids-arcade/internal/draw"
)

const strokeWidth = 1.5

var (
	background = color.Black
	foreground = color.White
)

// whitePixel is the source texture for filled polygons.
var whitePixel *ebiten.Image

func fillSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// surface draws onto an ebiten image in logical coordinates, which Layout
// makes identical to image pixels.
type surface struct {
	img           *ebiten.Image
	width, height float64

	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *surface) Size() (float64, float64) { return s.width, s.height }

func (s *surface) Clear() { s.img.Fill(background) }

func (s *surface) FillCircle(c draw.Point, r float64) {
	vector.DrawFilledCircle(s.img, float32(c.X), float32(c.Y), float32(r), foreground, true)
}

func (s *surface) StrokeCircle(c draw.Point, r float64) {
	vector.StrokeCircle(s.img, float32(c.X), float32(c.Y), float32(r), strokeWidth, foreground, true)
}

// Polygon fills with a triangle fan, which is exact for convex shapes.
func (s *surface) Polygon(points []draw.Point, filled bool) {
	if len(points) < 2 {
		return
	}
	if !filled || len(points) < 3 {
		for i := range points {
			a, b := points[i], points[(i+1)%len(points)]
			vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, foreground, true)
		}
		return
	}

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, p := range points {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
	for i := 1; i+1 < len(points); i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}
	s.img.DrawTriangles(s.vertices, s.indices, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Text draws s with its baseline centered on at.Y.
func (s *surface) Text(at draw.Point, str string, align draw.Align) {
	face := basicfont.Face7x13
	x := int(at.X)
	switch align {
	case draw.AlignCenter:
		x -= font.MeasureString(face, str).Ceil() / 2
	case draw.AlignRight:
		x -= font.MeasureString(face, str).Ceil()
	}
	y := int(at.Y) + face.Ascent/2
	text.Draw(s.img, str, face, x, y, foreground)
}

var _ draw.Surface = (*surface)(nil)
