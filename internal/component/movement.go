// internal/component/movement.go
package component

import "math"

// Vec2 — двумерный вектор в мировых координатах.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2  { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64          { return math.Hypot(v.X, v.Y) }
func (v Vec2) LenSq() float64        { return v.X*v.X + v.Y*v.Y }
func (v Vec2) IsZero() bool          { return v.X == 0 && v.Y == 0 }
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }
func (v Vec2) Angle() float64        { return math.Atan2(v.Y, v.X) }

// Normalize возвращает единичный вектор; нулевой вектор остаётся нулевым.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// FromAngle строит вектор длины length под углом angle.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// Overlaps — общий предикат столкновения двух окружностей.
// Касание ровно по сумме радиусов считается столкновением.
func Overlaps(ax, ay, ar, bx, by, br float64) bool {
	dx, dy := ax-bx, ay-by
	sum := ar + br
	return dx*dx+dy*dy <= sum*sum
}
