// internal/spatial/rect.go
package spatial

// Rect — осевой прямоугольник: левый верхний угол и размеры.
type Rect struct {
	X, Y, W, H float64
}

// Around строит квадрат со стороной 2r вокруг точки.
func Around(x, y, r float64) Rect {
	return Rect{X: x - r, Y: y - r, W: r * 2, H: r * 2}
}

// Contains проверяет попадание точки; правая и нижняя границы не включаются.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Intersects — касание краями считается пересечением.
func (r Rect) Intersects(o Rect) bool {
	return !(o.X > r.X+r.W ||
		o.X+o.W < r.X ||
		o.Y > r.Y+r.H ||
		o.Y+o.H < r.Y)
}

// IntersectsCircle проверяет пересечение с окружностью по ближайшей точке прямоугольника.
func (r Rect) IntersectsCircle(cx, cy, radius float64) bool {
	nx := clamp(cx, r.X, r.X+r.W)
	ny := clamp(cy, r.Y, r.Y+r.H)
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
