// internal/component/render.go
package component

import (
	"image/color"
	"math"
)

// Shape — форма, которой рисуется сущность.
type Shape string

const (
	ShapeCircle   Shape = "circle"
	ShapeSquare   Shape = "square"
	ShapeDiamond  Shape = "diamond"
	ShapeTriangle Shape = "triangle"
	ShapePentagon Shape = "pentagon"
	ShapeStar     Shape = "star"
	ShapeCross    Shape = "cross"
	ShapePyramid  Shape = "pyramid"
	ShapeHexagon  Shape = "hexagon"
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Shape  Shape
	Color  color.RGBA
	Radius float64
}

// Surface — всё, что симуляция просит у отрисовщика. Координаты экранные.
type Surface interface {
	Circle(x, y, r float64, c color.Color)
	Ring(x, y, r, width float64, c color.Color)
	Polygon(points []Vec2, c color.Color)
	Rect(x, y, w, h float64, c color.Color)
	Line(x1, y1, x2, y2, width float64, c color.Color)
	Text(x, y float64, s string, c color.Color)
}

// Camera переводит мировые координаты в экранные.
type Camera struct {
	X, Y          float64
	Width, Height float64
	// Смещение от тряски экрана.
	OffsetX, OffsetY float64
}

func (c Camera) ToScreen(x, y float64) (float64, float64) {
	return x - c.X + c.OffsetX, y - c.Y + c.OffsetY
}

// Visible отсекает объекты, целиком лежащие за краем экрана.
func (c Camera) Visible(x, y, extent float64) bool {
	return x+extent >= c.X && x-extent <= c.X+c.Width &&
		y+extent >= c.Y && y-extent <= c.Y+c.Height
}

// DrawShape рисует фигуру r в мировой точке (x, y).
func DrawShape(s Surface, cam Camera, x, y float64, r Renderable, c color.Color, facing float64) {
	sx, sy := cam.ToScreen(x, y)
	switch r.Shape {
	case ShapeSquare:
		s.Rect(sx-r.Radius, sy-r.Radius, r.Radius*2, r.Radius*2, c)
	case ShapeDiamond:
		s.Polygon(regular(sx, sy, r.Radius, 4, -math.Pi/2), c)
	case ShapeTriangle:
		s.Polygon(regular(sx, sy, r.Radius, 3, facing), c)
	case ShapePentagon:
		s.Polygon(regular(sx, sy, r.Radius, 5, -math.Pi/2), c)
	case ShapeHexagon:
		s.Polygon(regular(sx, sy, r.Radius, 6, 0), c)
	case ShapeStar:
		s.Polygon(star(sx, sy, r.Radius, r.Radius/2, 5), c)
	case ShapeCross:
		w := r.Radius / 3
		s.Rect(sx-w, sy-r.Radius, w*2, r.Radius*2, c)
		s.Rect(sx-r.Radius, sy-w, r.Radius*2, w*2, c)
	case ShapePyramid:
		s.Polygon([]Vec2{{sx, sy - r.Radius}, {sx + r.Radius, sy + r.Radius}, {sx - r.Radius, sy + r.Radius}}, c)
	default:
		s.Circle(sx, sy, r.Radius, c)
	}
}

func regular(cx, cy, r float64, n int, start float64) []Vec2 {
	pts := make([]Vec2, n)
	for i := range pts {
		a := start + float64(i)*2*math.Pi/float64(n)
		pts[i] = Vec2{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return pts
}

func star(cx, cy, outer, inner float64, points int) []Vec2 {
	pts := make([]Vec2, points*2)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/float64(points)*float64(i) - math.Pi/2
		pts[i] = Vec2{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return pts
}
