package system

import (
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
)

// CombatContext — то, что боевые системы просят у игры.
type CombatContext interface {
	entity.DeathSink
	Tick() int
	Combat() config.CombatConfig
}
