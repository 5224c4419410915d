// internal/system/skill.go
package system

import (
	"log/slog"
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/spatial"
)

// Идентификаторы навыков из skills.yaml.
const (
	SkillDivineLance    = "divine_lance"
	SkillChainLightning = "chain_lightning"
	SkillCelestialRay   = "celestial_ray"
	SkillOrbitalShield  = "orbital_shield"
	SkillVortex         = "vortex"
	SkillParticleBurst  = "particle_burst"
	SkillStaticField    = "static_field"
	SkillMagnet         = "magnet"
	SkillHealthRegen    = "health_regen"
	SkillDoubleJump     = "double_jump"
	SkillScorchedEarth  = "scorched_earth"
	SkillDash           = "dash"
	SkillAegisShield    = "aegis_shield"
	SkillBlackHole      = "black_hole"
	SkillHeal           = "heal"
)

const (
	targetSearchRadius = 2000.0
	// retryTicks — пауза перед новой попыткой, если цели нет.
	retryTicks = 10
	healRatio  = 0.25
	spreadStep = 0.1
)

// SkillSystem срабатывает навыки игрока по их перезарядке.
type SkillSystem struct {
	world *entity.World
	lib   *defs.Library
	ctx   CombatContext
	// baseCollect — радиус сбора без бонуса магнита.
	baseCollect float64
	tps         int
	found       []*entity.Enemy
}

func NewSkillSystem(world *entity.World, lib *defs.Library, ctx CombatContext, baseCollect float64, tps int) *SkillSystem {
	return &SkillSystem{
		world:       world,
		lib:         lib,
		ctx:         ctx,
		baseCollect: baseCollect,
		tps:         max(tps, 1),
	}
}

// Acquire добавляет навык игроку или повышает его уровень.
// Мгновенные навыки срабатывают сразу и в список не попадают.
func (s *SkillSystem) Acquire(id string) bool {
	def, ok := s.lib.Skill(id)
	if !ok {
		return false
	}
	p := s.world.Player
	if p == nil || p.Dead {
		return false
	}
	if def.Instant {
		s.instant(id, def)
		return true
	}

	level := p.LearnSkill(id, def.MaxLevel())
	data := def.Level(level)
	switch id {
	case SkillMagnet:
		p.CollectRadius = s.baseCollect * (1 + data.CollectRadiusBonus)
	case SkillDoubleJump:
		p.MaxJumps = max(data.Jumps, 1)
		p.JumpsLeft = p.MaxJumps
	}
	slog.Debug("skill acquired", "skill", id, "level", level)
	return true
}

func (s *SkillSystem) instant(id string, def defs.SkillDefinition) {
	p := s.world.Player
	switch id {
	case SkillHeal:
		p.Heal(p.Health.Max * healRatio)
	case SkillBlackHole:
		data := def.Level(1)
		s.ctx.Cue(event.CueNuke, "8n")
		s.ctx.Dispatch(event.Event{Type: event.ScreenShake, Data: event.ShakeData{Intensity: 15, Duration: 30}})
		force := s.ctx.Combat().KnockbackForce * data.Force
		for _, e := range s.world.Enemies {
			if e.Dead {
				continue
			}
			e.TakeDamage(p.ScaleDamage(data.Damage), s.ctx)
			e.ApplyKnockback(p.Position(), force)
		}
	}
}

// Update — один тик навыков. Пассивные действуют постоянно, орбитальные
// вращаются без перезарядки, остальные срабатывают, когда таймер истёк.
func (s *SkillSystem) Update() {
	p := s.world.Player
	if p == nil || p.Dead {
		return
	}
	for _, id := range p.SkillOrder {
		st := p.Skills[id]
		def, ok := s.lib.Skill(id)
		if !ok {
			continue
		}
		data := def.Level(st.Level)
		switch def.Type {
		case defs.SkillPassive:
			if id == SkillHealthRegen {
				p.Heal(data.RegenPerSecond / float64(s.tps))
			}
		case defs.SkillOrbital:
			s.orbit(p, st, data)
		default:
			st.Cooldown--
			if st.Cooldown > 0 {
				continue
			}
			st.Cooldown = s.activate(id, def, data)
		}
	}
}

// activate срабатывает навык и возвращает следующую перезарядку.
func (s *SkillSystem) activate(id string, def defs.SkillDefinition, data defs.SkillLevel) int {
	p := s.world.Player
	switch id {
	case SkillDivineLance:
		target := s.nearestEnemy(p.X, p.Y)
		if target == nil {
			return retryTicks
		}
		angle := target.Position().Sub(p.Position()).Angle()
		for i := range data.Count {
			spread := (float64(i) - float64(data.Count-1)/2) * spreadStep
			s.world.Fire(entity.Shot{
				Kind:   entity.KindLance,
				X:      p.X,
				Y:      p.Y,
				Angle:  angle + spread,
				Speed:  data.Speed,
				Damage: p.ScaleDamage(data.Damage),
				Pierce: data.Pierce,
			})
		}
		s.ctx.Cue(event.CueLance, "C4")
	case SkillCelestialRay:
		s.world.Fire(entity.Shot{
			Kind:   entity.KindRay,
			X:      p.X,
			Y:      p.Y,
			Angle:  p.LastMove.Angle(),
			Speed:  data.Speed,
			Damage: p.ScaleDamage(data.Damage),
			Pierce: data.Pierce,
			Width:  data.Width,
			Length: data.Length,
		})
		s.ctx.Cue(event.CueLance, "E5")
	case SkillChainLightning:
		target := s.nearestEnemy(p.X, p.Y)
		if target == nil {
			return retryTicks
		}
		s.ctx.Cue(event.CueLance, "A5")
		s.chain(target, data)
	case SkillVortex:
		s.world.SpawnArea(entity.Area{
			Mode:     entity.AreaPull,
			X:        p.X,
			Y:        p.Y,
			Radius:   data.Radius,
			Duration: data.Duration,
			Force:    data.Force,
			Damage:   p.ScaleDamage(data.Damage),
		})
	case SkillParticleBurst:
		s.ctx.Cue(event.CueParticleBurst, "8n")
		force := s.ctx.Combat().KnockbackForce * 1.5
		for _, e := range s.world.Enemies {
			if e.Dead || e.Position().DistSq(p.Position()) >= data.Radius*data.Radius {
				continue
			}
			e.TakeDamage(p.ScaleDamage(data.Damage), s.ctx)
			e.ApplyKnockback(p.Position(), force)
		}
	case SkillStaticField:
		s.world.SpawnArea(entity.Area{
			Mode:     entity.AreaSlow,
			X:        p.X,
			Y:        p.Y,
			Radius:   data.Radius,
			Duration: data.Duration,
			Slow:     data.SlowFactor,
		})
	case SkillAegisShield:
		p.RaiseShield(data.Duration)
	}
	return def.Cooldown
}

// chain бьёт цель и перескакивает на ближайшего ещё не задетого врага
// в радиусе ChainRadius, всего до Chains+1 попаданий.
func (s *SkillSystem) chain(target *entity.Enemy, data defs.SkillLevel) {
	p := s.world.Player
	hit := map[*entity.Enemy]struct{}{target: {}}
	for i := 0; i <= data.Chains && target != nil; i++ {
		target.TakeDamage(p.ScaleDamage(data.Damage), s.ctx)

		from := target.Position()
		var next *entity.Enemy
		best := data.ChainRadius * data.ChainRadius
		for _, e := range s.world.Enemies {
			if _, done := hit[e]; done || e.Dead {
				continue
			}
			if d := e.Position().DistSq(from); d < best {
				best = d
				next = e
			}
		}
		if next != nil {
			hit[next] = struct{}{}
		}
		target = next
	}
}

// orbit пересобирает шары при смене их числа и поворачивает их вокруг игрока.
func (s *SkillSystem) orbit(p *entity.Player, st *entity.SkillState, data defs.SkillLevel) {
	if len(st.Orbs) != data.Count {
		cooldown := s.ctx.Combat().OrbHitCooldown
		st.Orbs = make([]entity.Orbital, data.Count)
		for i := range st.Orbs {
			st.Orbs[i] = entity.Orbital{
				Angle:   2 * math.Pi / float64(data.Count) * float64(i),
				LastHit: s.ctx.Tick() - cooldown - 1,
			}
		}
	}
	st.OrbDamage = p.ScaleDamage(data.Damage)
	for i := range st.Orbs {
		orb := &st.Orbs[i]
		orb.Angle += data.Speed
		at := p.Position().Add(component.FromAngle(orb.Angle, data.Radius))
		orb.X, orb.Y = at.X, at.Y
	}
}

// Dashed оставляет горящий след, если изучен соответствующий навык.
func (s *SkillSystem) Dashed(p *entity.Player) {
	st := p.Skill(SkillScorchedEarth)
	if st == nil {
		return
	}
	def, ok := s.lib.Skill(SkillScorchedEarth)
	if !ok {
		return
	}
	data := def.Level(st.Level)
	s.world.SpawnArea(entity.Area{
		Mode:     entity.AreaExplosion,
		X:        p.X,
		Y:        p.Y,
		Radius:   data.Radius,
		Duration: data.Duration,
		Damage:   p.ScaleDamage(data.DamagePerTick),
	})
}

// nearestEnemy ищет ближайшего живого врага через квадродерево.
func (s *SkillSystem) nearestEnemy(x, y float64) *entity.Enemy {
	s.found = s.world.Index.Query(spatial.Around(x, y, targetSearchRadius), s.found[:0])
	var nearest *entity.Enemy
	best := math.Inf(1)
	from := component.Vec2{X: x, Y: y}
	for _, e := range s.found {
		if e.Dead {
			continue
		}
		if d := e.Position().DistSq(from); d < best {
			best = d
			nearest = e
		}
	}
	return nearest
}
