// internal/system/movement.go
package system

import (
	"go-survivor/internal/entity"
	"go-survivor/internal/spatial"
)

// shotMargin — насколько вражеский снаряд может уйти за край экрана.
const shotMargin = 100.0

// MovementContext определяет методы, которые MovementSystem требует от Game.
// Это помогает избежать циклических зависимостей.
type MovementContext interface {
	entity.EnemyContext
	entity.PickupContext
	entity.AreaContext
	View() spatial.Rect
}

// MovementSystem продвигает на тик всё, кроме игрока.
// Появившееся во время прохода ждёт Flush и здесь не обходится.
type MovementSystem struct {
	world *entity.World
	game  MovementContext
}

func NewMovementSystem(world *entity.World, game MovementContext) *MovementSystem {
	return &MovementSystem{world: world, game: game}
}

func (s *MovementSystem) Update() {
	w := s.world
	for _, e := range w.Enemies {
		e.Update(s.game)
	}

	edge := s.game.WorldEdge()
	for _, p := range w.Projectiles {
		p.Update(edge)
	}
	v := s.game.View()
	keep := spatial.Rect{X: v.X - shotMargin, Y: v.Y - shotMargin, W: v.W + 2*shotMargin, H: v.H + 2*shotMargin}
	for _, p := range w.EnemyShots {
		p.Update(keep)
	}

	attract := s.game.Combat().OrbAttractSpeed
	for _, o := range w.Orbs {
		o.Update(s.game, attract)
	}
	for _, u := range w.PowerUps {
		u.Update(s.game)
	}
	for _, a := range w.Areas {
		a.Update(s.game)
	}
	for _, n := range w.DamageNumbers {
		n.Update()
	}
}
