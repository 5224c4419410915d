package entity

import (
	"log/slog"
	"sync"

	"go-survivor/internal/defs"
	"go-survivor/internal/event"
)

// Behavior — поведение врага. Реализации не хранят состояния:
// таймеры живут в самом враге.
type Behavior interface {
	Update(e *Enemy, ctx EnemyContext)
}

var behaviors = map[defs.Behavior]Behavior{
	defs.BehaviorChase:    chaseBehavior{},
	defs.BehaviorShooter:  shooterBehavior{},
	defs.BehaviorHealer:   healerBehavior{},
	defs.BehaviorSummoner: summonerBehavior{},
	defs.BehaviorKamikaze: kamikazeBehavior{},
}

var unknownBehaviors sync.Map

// behaviorFor выбирает поведение; неизвестное превращается в преследование.
// Босс сюда не попадает: его готовит InitBoss.
func behaviorFor(b defs.Behavior) Behavior {
	if impl, ok := behaviors[b]; ok {
		return impl
	}
	if _, seen := unknownBehaviors.LoadOrStore(b, struct{}{}); !seen {
		slog.Warn("unknown enemy behavior, falling back to chase", "behavior", b)
	}
	return chaseBehavior{}
}

type chaseBehavior struct{}

func (chaseBehavior) Update(e *Enemy, ctx EnemyContext) {
	e.steer(ctx)
}

type shooterBehavior struct{}

func (shooterBehavior) Update(e *Enemy, ctx EnemyContext) {
	e.steer(ctx)
	r := e.def.Ranged
	if r == nil {
		return
	}
	e.attackTimer--
	if e.attackTimer > 0 {
		return
	}
	ctx.EnemyShot(e.X, e.Y, e.angleTo(ctx.Player().Position()), r.ProjectileSpeed, r.ProjectileDamage)
	ctx.Cue(event.CueEnemyShot, "D4")
	e.attackTimer = r.Cooldown
}

type healerBehavior struct{}

func (healerBehavior) Update(e *Enemy, ctx EnemyContext) {
	e.steer(ctx)
	h := e.def.Heal
	if h == nil {
		return
	}
	e.healTimer--
	if e.healTimer > 0 {
		return
	}
	r2 := h.Radius * h.Radius
	for _, other := range ctx.Enemies() {
		if other == e || other.Dead {
			continue
		}
		if e.Position().DistSq(other.Position()) < r2 {
			other.Health.Heal(e.healAmount)
		}
	}
	e.healTimer = h.Cooldown
}

type summonerBehavior struct{}

func (summonerBehavior) Update(e *Enemy, ctx EnemyContext) {
	e.steer(ctx)
	s := e.def.Summon
	if s == nil || len(s.Types) == 0 {
		return
	}
	e.summonTimer--
	if e.summonTimer > 0 {
		return
	}
	kind := s.Types[ctx.Rand().Intn(len(s.Types))]
	ctx.Summon(kind, e.X+ctx.Rand().Spread(s.Scatter), e.Y+ctx.Rand().Spread(s.Scatter), s.Elite)
	e.summonTimer = s.Cooldown
}

// kamikazeBehavior взрывается рядом с игроком; сам взрыв делает DeathSink.
type kamikazeBehavior struct{}

func (kamikazeBehavior) Update(e *Enemy, ctx EnemyContext) {
	trigger := e.Radius + e.def.TriggerRange
	if e.Position().DistSq(ctx.Player().Position()) < trigger*trigger {
		e.Kill(ctx)
		return
	}
	e.steer(ctx)
}
