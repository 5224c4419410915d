package entity

import "go-survivor/internal/component"

// Input — намерение игрока на один тик.
// Jump и Dash — нажатия в этом тике, а не удержание.
type Input struct {
	Move component.Vec2
	Jump bool
	Dash bool
}
