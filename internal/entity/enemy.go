package entity

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
)

const enemyFlashTicks = 5

// EnemySpawn — параметры появления врага.
type EnemySpawn struct {
	X, Y    float64
	Elite   bool
	Wave    int
	Elapsed float64 // секунды с начала забега
}

// Enemy — враг любого типа, включая босса.
type Enemy struct {
	Base

	Type  string
	Elite bool
	Boss  bool
	Wave  int

	Health component.Health
	Speed  float64
	Damage float64
	XP     float64
	Look   component.Renderable

	Knockback      component.Knockback
	Flash          component.HitFlash
	OrbHitCooldown int
	// Despawned — ушёл за край мира, награды не даёт.
	Despawned bool

	// serial различает появления в одном и том же слоте пула.
	serial uint64

	def      defs.EnemyDefinition
	behavior Behavior

	attackTimer int
	healTimer   int
	healAmount  float64
	summonTimer int

	boss bossState
}

// Init готовит врага из таблицы. Вызывается только из пула.
func (e *Enemy) Init(def defs.EnemyDefinition, s EnemySpawn, combat config.CombatConfig) {
	e.Reset()
	e.Type = def.ID
	e.Elite = s.Elite
	e.Wave = s.Wave
	e.def = def
	e.behavior = behaviorFor(def.Behavior)

	radius := def.Radius
	health := def.Health.At(s.Elapsed, s.Wave)
	e.Speed = def.Speed.At(s.Elapsed, s.Wave)
	e.Damage = def.Damage
	e.XP = def.XP
	e.Look = component.Renderable{Shape: def.Shape, Color: def.Color.RGBA()}
	if s.Elite {
		radius *= combat.EliteRadius
		health *= combat.EliteHealth
		e.Damage *= combat.EliteDamage
		e.XP *= combat.EliteReward
		e.Look.Color = config.EliteColor
	}
	e.place(s.X, s.Y, radius)
	e.Look.Radius = radius
	e.Health = component.NewHealth(health)
	e.Knockback = component.Knockback{Decay: combat.KnockbackDecay, Stop: combat.KnockbackStop}

	if def.Ranged != nil {
		e.attackTimer = def.Ranged.Cooldown
	}
	if def.Heal != nil {
		e.healTimer = def.Heal.Cooldown
		e.healAmount = def.Heal.Amount.At(s.Elapsed, s.Wave)
	}
	if def.Summon != nil {
		e.summonTimer = def.Summon.Cooldown
	}
}

// Reset очищает состояние при возврате в пул.
func (e *Enemy) Reset() {
	active := e.Active()
	*e = Enemy{}
	e.SetActive(active)
}

// Serial — номер появления, выданный миром; 0 у врагов вне мира.
func (e *Enemy) Serial() uint64 { return e.serial }

// Definition — табличные данные типа.
func (e *Enemy) Definition() defs.EnemyDefinition { return e.def }

// Update — один тик врага.
func (e *Enemy) Update(ctx EnemyContext) {
	if e.Dead {
		return
	}
	e.Flash.Tick()
	d := e.Knockback.Step()
	e.X += d.X
	e.Y += d.Y
	if e.OrbHitCooldown > 0 {
		e.OrbHitCooldown--
	}

	e.behavior.Update(e, ctx)

	if !e.Dead && !e.Boss && math.Abs(e.X) > ctx.WorldEdge() {
		e.Dead = true
		e.Despawned = true
		ctx.Dispatch(event.Event{Type: event.EnemyDespawned, Data: e.eventData()})
	}
}

// steer ведёт врага к игроку, пока отбрасывание слабое.
func (e *Enemy) steer(ctx EnemyContext) {
	if e.Knockback.Magnitude() >= ctx.Combat().SteerThreshold {
		return
	}
	speed := e.Speed * ctx.SpeedFactor(e.X, e.Y)
	v := component.FromAngle(e.angleTo(ctx.Player().Position()), speed)
	e.X += v.X
	e.Y += v.Y
}

func (e *Enemy) angleTo(target component.Vec2) float64 {
	return target.Sub(e.Position()).Angle()
}

// TakeDamage — единственный путь урона по врагу. Смерть срабатывает один раз.
func (e *Enemy) TakeDamage(amount float64, sink DeathSink) {
	if e.Dead || amount <= 0 {
		return
	}
	applied := e.Health.Damage(amount)
	e.Flash.Trigger(enemyFlashTicks)
	sink.DamageNumber(e.X, e.Y, applied)
	if e.Health.Depleted() {
		e.Dead = true
		sink.EnemyDied(e)
	}
}

// Kill добивает врага независимо от оставшегося здоровья.
func (e *Enemy) Kill(sink DeathSink) {
	if e.Dead {
		return
	}
	e.Health.Value = 0
	e.Dead = true
	sink.EnemyDied(e)
}

// ApplyKnockback отбрасывает врага от точки source.
func (e *Enemy) ApplyKnockback(source component.Vec2, force float64) {
	e.Knockback.Apply(source, e.Position(), force)
}

// ExplosionRadius — радиус взрыва при смерти, 0 если враг не взрывается.
func (e *Enemy) ExplosionRadius() float64 {
	if !e.def.ExplodesOnDeath {
		return 0
	}
	return e.def.ExplosionRadius
}

// EventData — полезная нагрузка событий о враге.
func (e *Enemy) EventData() event.EnemyData { return e.eventData() }

func (e *Enemy) eventData() event.EnemyData {
	return event.EnemyData{Type: e.Type, Wave: e.Wave, Elite: e.Elite, Boss: e.Boss, X: e.X, Y: e.Y}
}
