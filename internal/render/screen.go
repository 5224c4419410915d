// internal/render/screen.go
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-survivor/internal/component"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Screen реализует component.Surface поверх кадра ebiten.
type Screen struct {
	Image *ebiten.Image
	Face  font.Face

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ component.Surface = (*Screen)(nil)

// NewScreen создаёт поверхность со встроенным растровым шрифтом.
func NewScreen() *Screen {
	return &Screen{Face: basicfont.Face7x13}
}

// Target переключает поверхность на новый кадр.
func (s *Screen) Target(img *ebiten.Image) *Screen {
	s.Image = img
	return s
}

func (s *Screen) Circle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.Image, float32(x), float32(y), float32(r), c, true)
}

func (s *Screen) Ring(x, y, r, width float64, c color.Color) {
	vector.StrokeCircle(s.Image, float32(x), float32(y), float32(r), float32(width), c, true)
}

func (s *Screen) Rect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Screen) Line(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.Image, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

// Polygon заливает многоугольник веером из центра масс вершин.
// Все фигуры сущностей звёздны относительно центра, поэтому веер точен.
func (s *Screen) Polygon(points []component.Vec2, c color.Color) {
	if len(points) < 3 {
		return
	}
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(points))
	cx, cy = cx/n, cy/n

	r, g, b, a := c.RGBA()
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}

	s.vertices = append(s.vertices[:0], vertex(cx, cy))
	s.indices = s.indices[:0]
	for i, p := range points {
		s.vertices = append(s.vertices, vertex(p.X, p.Y))
		next := (i+1)%len(points) + 1
		s.indices = append(s.indices, 0, uint16(i+1), uint16(next))
	}

	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	op.AntiAlias = true
	s.Image.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

// Text рисует строку с центром по x и базовой линией по y.
func (s *Screen) Text(x, y float64, str string, c color.Color) {
	bounds := text.BoundString(s.Face, str)
	text.Draw(s.Image, str, s.Face, int(x)-bounds.Dx()/2, int(y), c)
}
