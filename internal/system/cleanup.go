package system

import "go-survivor/internal/entity"

// CleanupSystem — последний проход тика: вливает отложенные появления
// и возвращает мёртвых в пулы.
type CleanupSystem struct {
	world *entity.World
}

func NewCleanupSystem(world *entity.World) *CleanupSystem {
	return &CleanupSystem{world: world}
}

func (s *CleanupSystem) Update() {
	s.world.Flush()
	s.world.Sweep()
}
