package entity

import (
	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// Узкие интерфейсы того, что сущности просят у мира. Каждая сущность
// видит только свой срез, а мир реализует их все.

// Feedback — звуковые сигналы и события.
type Feedback interface {
	Cue(name string, params ...string)
	Dispatch(e event.Event)
}

// DeathSink принимает последствия урона по врагам.
// Всё, что здесь создаётся, попадает в отложенные списки.
type DeathSink interface {
	Feedback
	DamageNumber(x, y, amount float64)
	EnemyDied(e *Enemy)
}

// EnemyContext — окружение поведения врага.
type EnemyContext interface {
	DeathSink
	Player() *Player
	Enemies() []*Enemy
	Tick() int
	Rand() *utils.PRNGService
	Combat() config.CombatConfig
	// SpeedFactor — множитель скорости от замедляющих полей в точке.
	SpeedFactor(x, y float64) float64
	// WorldEdge — |x|, за которым враг считается потерянным.
	WorldEdge() float64
	Summon(kind string, x, y float64, elite bool)
	EnemyShot(x, y, angle, speed, damage float64)
}

// PlayerContext — окружение игрока.
type PlayerContext interface {
	Feedback
	Platforms() []Platform
	// Dashed вызывается в момент начала рывка.
	Dashed(p *Player)
}

// PickupContext — окружение подбираемых предметов.
type PickupContext interface {
	Feedback
	Player() *Player
	ApplyPowerUp(kind string, x, y float64)
}

// AreaContext — окружение областей урона и замедления.
type AreaContext interface {
	DeathSink
	Player() *Player
	Enemies() []*Enemy
	Tick() int
	Combat() config.CombatConfig
}
