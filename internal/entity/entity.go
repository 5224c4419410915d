// internal/entity/entity.go
package entity

import "go-survivor/internal/component"

// Base — общие поля всех сущностей мира. Реализует pool.Poolable.
type Base struct {
	X, Y   float64
	Radius float64
	// Dead ставится в момент смерти; из списков сущность убирает только очистка.
	Dead   bool
	active bool
}

func (b *Base) Active() bool            { return b.active }
func (b *Base) SetActive(v bool)        { b.active = v }
func (b *Base) Pos() (float64, float64) { return b.X, b.Y }

// Position — координаты в виде вектора.
func (b *Base) Position() component.Vec2 { return component.Vec2{X: b.X, Y: b.Y} }

func (b *Base) IsDead() bool { return b.Dead }

// Alive — активна и не помечена мёртвой.
func (b *Base) Alive() bool { return b.active && !b.Dead }

// place сбрасывает общие поля при выдаче из пула.
func (b *Base) place(x, y, radius float64) {
	b.X, b.Y, b.Radius = x, y, radius
	b.Dead = false
}

func (b *Base) resetBase() {
	b.X, b.Y, b.Radius = 0, 0, 0
	b.Dead = false
}

// enemyRef — попадание по конкретному появлению врага. Слот пула после
// смерти достаётся новому врагу, поэтому одного указателя мало.
type enemyRef struct {
	enemy  *Enemy
	serial uint64
}

func refOf(e *Enemy) enemyRef {
	return enemyRef{enemy: e, serial: e.serial}
}
