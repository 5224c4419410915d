package entity

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
)

// Паттерны атак босса.
const (
	PatternChase     = "chase"
	PatternShootRing = "shoot_ring"
	PatternBarrage   = "barrage"
	PatternSummon    = "summon"
)

type bossState struct {
	def     *defs.BossDefinition
	phase   int
	pattern string
	timer   int
}

// InitBoss готовит босса волны s.Wave.
func (e *Enemy) InitBoss(def *defs.BossDefinition, s EnemySpawn, combat config.CombatConfig) {
	e.Reset()
	e.Type = def.ID
	e.Boss = true
	e.Wave = s.Wave
	e.behavior = bossBehavior{}
	e.place(s.X, s.Y, def.Radius)
	e.Health = component.NewHealth(def.Health.At(0, s.Wave))
	e.Speed = def.Speed.At(0, s.Wave)
	e.Damage = def.Damage
	e.XP = def.XP
	e.Look = component.Renderable{Shape: def.Shape, Color: def.Color.RGBA(), Radius: def.Radius}
	e.Knockback = component.Knockback{Decay: def.KnockbackDecay, Stop: combat.KnockbackStop}
	e.boss = bossState{def: def, pattern: PatternChase}
}

// BossPhase — номер фазы с единицы; 0 для обычных врагов.
func (e *Enemy) BossPhase() int {
	if !e.Boss {
		return 0
	}
	return e.boss.phase + 1
}

// BossPattern — текущий паттерн атаки босса.
func (e *Enemy) BossPattern() string { return e.boss.pattern }

type bossBehavior struct{}

func (bossBehavior) Update(e *Enemy, ctx EnemyContext) {
	b := &e.boss
	b.timer--

	if next := b.phase + 1; next < len(b.def.Phases) && e.Health.Ratio() < b.def.Phases[next].HealthBelow {
		b.phase = next
		phase := b.def.Phases[next]
		if phase.SpeedMultiplier > 0 {
			e.Speed *= phase.SpeedMultiplier
		}
		b.timer = 0
		if phase.Opening != "" {
			b.pattern = phase.Opening
			b.timer = b.def.PatternDuration
		}
		ctx.Dispatch(event.Event{Type: event.BossPhaseChanged, Data: event.PhaseData{Phase: b.phase + 1}})
	}

	if b.timer <= 0 {
		patterns := b.def.Phases[b.phase].Patterns
		if len(patterns) > 0 {
			b.pattern = patterns[ctx.Rand().Intn(len(patterns))]
		}
		b.timer = b.def.PatternDuration
	}

	angle := e.angleTo(ctx.Player().Position())
	switch b.pattern {
	case PatternChase:
		v := component.FromAngle(angle, e.Speed)
		e.X += v.X
		e.Y += v.Y
	case PatternShootRing:
		ring := b.def.Ring
		if every(ctx.Tick(), ring.Every) && ring.Count > 0 {
			for i := range ring.Count {
				a := float64(i) * 2 * math.Pi / float64(ring.Count)
				ctx.EnemyShot(e.X, e.Y, a, ring.Speed, ring.Damage)
			}
		}
	case PatternBarrage:
		shot := b.def.Barrage
		if every(ctx.Tick(), shot.Every) {
			for range max(1, shot.Count) {
				ctx.EnemyShot(e.X, e.Y, angle+ctx.Rand().Spread(shot.Spread), shot.Speed, shot.Damage)
			}
		}
	case PatternSummon:
		sm := b.def.Summon
		if b.timer == sm.At {
			for _, kind := range sm.Types {
				ctx.Summon(kind, e.X+ctx.Rand().Spread(sm.Scatter), e.Y+ctx.Rand().Spread(sm.Scatter), sm.Elite)
			}
		}
	}
}

func every(tick, n int) bool {
	return n > 0 && tick%n == 0
}
