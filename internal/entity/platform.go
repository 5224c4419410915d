package entity

import "go-survivor/internal/spatial"

// Platform — прямоугольная опора. Нулевая платформа мира — земля.
type Platform struct {
	X, Y float64
	W, H float64
}

func (p Platform) Rect() spatial.Rect {
	return spatial.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
