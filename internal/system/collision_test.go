package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivor/internal/component"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
)

func TestCollision_PierceStopsAfterBudget(t *testing.T) {
	w, c := newTestWorld()
	at := component.Vec2{X: 500, Y: 500}
	enemies := place(w, c, testEnemy(10), at, at, at)
	p := w.Fire(entity.Shot{Kind: entity.KindLance, X: at.X, Y: at.Y, Damage: 4, Pierce: 1})
	w.Flush()

	NewCollisionSystem(w, c).Update()

	damaged := 0
	for _, e := range enemies {
		if e.Health.Value < e.Health.Max {
			damaged++
		}
	}
	assert.Equal(t, 2, damaged)
	assert.True(t, p.Dead)
	assert.Equal(t, 2, p.HitCount())
	assert.Equal(t, 2, c.numbers)
}

func TestCollision_ProjectileHitsEnemyOnlyOnce(t *testing.T) {
	w, c := newTestWorld()
	e := place(w, c, testEnemy(100), component.Vec2{X: 500, Y: 500})[0]
	w.Fire(entity.Shot{Kind: entity.KindLance, X: 500, Y: 500, Damage: 4, Pierce: 5})
	w.Flush()
	s := NewCollisionSystem(w, c)

	s.Update()
	s.Update()

	assert.Equal(t, 96.0, e.Health.Value)
	assert.Greater(t, e.Knockback.Magnitude(), 0.0)
}

func TestCollision_RecycledSlotIsANewTarget(t *testing.T) {
	w, c := newTestWorld()
	at := component.Vec2{X: 500, Y: 500}
	first := place(w, c, testEnemy(4), at)[0]
	p := w.Fire(entity.Shot{Kind: entity.KindLance, X: at.X, Y: at.Y, Damage: 4, Pierce: 5})
	w.Flush()
	s := NewCollisionSystem(w, c)

	s.Update()
	require.True(t, first.Dead)
	w.Sweep()

	second := place(w, c, testEnemy(100), at)[0]
	require.Same(t, first, second, "pool should hand out the released slot")
	require.False(t, p.Dead)

	s.Update()

	assert.Equal(t, 96.0, second.Health.Value)
	assert.Equal(t, 2, p.HitCount())
}

func TestCollision_MissOutsideRadius(t *testing.T) {
	w, c := newTestWorld()
	e := place(w, c, testEnemy(10), component.Vec2{X: 500, Y: 500})[0]
	// 12 + 5 = 17, а расстояние 20
	p := w.Fire(entity.Shot{Kind: entity.KindLance, X: 520, Y: 500, Damage: 4})
	w.Flush()

	NewCollisionSystem(w, c).Update()

	assert.Equal(t, 10.0, e.Health.Value)
	assert.False(t, p.Dead)
}

func TestCollision_ContactDamagesPlayerAndSeparates(t *testing.T) {
	w, c := newTestWorld()
	e := place(w, c, testEnemy(10), component.Vec2{X: 10, Y: 0})[0]

	NewCollisionSystem(w, c).Update()

	assert.Equal(t, 112.0, w.Player.Health.Value)
	assert.InDelta(t, 25.0, e.X, 1e-9)
	assert.InDelta(t, 0.0, e.Y, 1e-9)
	assert.Equal(t, 1, c.events.Count(event.PlayerDamaged))
}

func TestCollision_HarmlessContactOnlySeparates(t *testing.T) {
	w, c := newTestWorld()
	def := testEnemy(10)
	def.Damage = 0
	e := place(w, c, def, component.Vec2{X: -10, Y: 0})[0]

	NewCollisionSystem(w, c).Update()

	assert.Equal(t, 120.0, w.Player.Health.Value)
	assert.InDelta(t, -25.0, e.X, 1e-9)
}

func TestCollision_EnemyShotHitsPlayer(t *testing.T) {
	w, c := newTestWorld()
	near := w.FireEnemyShot(5, 0, 0, 0, 9)
	far := w.FireEnemyShot(300, 0, 0, 0, 9)
	w.Flush()

	NewCollisionSystem(w, c).Update()

	assert.Equal(t, 111.0, w.Player.Health.Value)
	assert.True(t, near.Dead)
	assert.False(t, far.Dead)
}

func TestCollision_OrbitalRespectsCooldowns(t *testing.T) {
	w, c := newTestWorld()
	e := place(w, c, testEnemy(10), component.Vec2{X: 200, Y: 0})[0]
	w.Player.Skills[SkillOrbitalShield] = &entity.SkillState{
		Level:     1,
		Orbs:      []entity.Orbital{{X: 200, Y: 0}},
		OrbDamage: 5,
	}
	w.Player.SkillOrder = append(w.Player.SkillOrder, SkillOrbitalShield)
	c.tick = 100
	s := NewCollisionSystem(w, c)

	s.Update()
	require.Equal(t, 5.0, e.Health.Value)
	assert.Equal(t, c.combat.OrbHitCooldown, e.OrbHitCooldown)
	assert.Equal(t, 100, w.Player.Skills[SkillOrbitalShield].Orbs[0].LastHit)

	// тот же шар в тот же тик
	s.Update()
	assert.Equal(t, 5.0, e.Health.Value)

	// шар готов, но враг ещё на перезарядке
	w.Player.Skills[SkillOrbitalShield].Orbs[0].LastHit = 0
	s.Update()
	assert.Equal(t, 5.0, e.Health.Value)
}

func TestCollision_DeadPlayerTakesNothing(t *testing.T) {
	w, c := newTestWorld()
	place(w, c, testEnemy(10), component.Vec2{X: 10, Y: 0})
	w.Player.TakeDamage(1000, c)
	require.True(t, w.Player.Dead)

	NewCollisionSystem(w, c).Update()

	assert.Equal(t, 1, c.events.Count(event.PlayerDied))
	assert.Zero(t, w.Player.Health.Value)
}
