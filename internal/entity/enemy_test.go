package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
)

func TestEnemy_DamageClampsAndRewardsOnce(t *testing.T) {
	w := newFakeWorld()
	e := w.spawn(chaserDef(), 100, 705)

	e.TakeDamage(25, w)

	assert.Zero(t, e.Health.Value)
	assert.True(t, e.Dead)
	require.Len(t, w.died, 1)
	assert.Same(t, e, w.died[0])

	e.TakeDamage(5, w)
	e.Kill(w)
	assert.Len(t, w.died, 1)
	assert.Equal(t, 1, w.numbers)
	// Число урона показывает снятое здоровье, а не весь удар.
	assert.Equal(t, []float64{10}, w.amounts)
}

func TestEnemy_EliteScaling(t *testing.T) {
	w := newFakeWorld()
	e := &Enemy{}
	e.Init(chaserDef(), EnemySpawn{Elite: true}, w.combat)

	assert.Equal(t, 18.0, e.Radius)
	assert.Equal(t, 25.0, e.Health.Max)
	assert.Equal(t, 12.0, e.Damage)
	assert.Equal(t, 40.0, e.XP)
}

func TestEnemy_StatsGrowWithTimeAndWave(t *testing.T) {
	lib, err := defs.LoadDefault()
	require.NoError(t, err)
	w := newFakeWorld()

	e := &Enemy{}
	e.Init(lib.Enemies["chaser"], EnemySpawn{Wave: 2, Elapsed: 25}, w.combat)

	// 25 + floor(25/10)*3 + 2*1.5
	assert.InDelta(t, 34.0, e.Health.Max, 1e-9)
	// 1.3 + 25/150 + 2*0.01
	assert.InDelta(t, 1.3+25.0/150+0.02, e.Speed, 1e-9)
}

func TestEnemy_SteersTowardPlayer(t *testing.T) {
	w := newFakeWorld()
	e := w.spawn(chaserDef(), 100, w.player.Y)

	e.Update(w)
	assert.InDelta(t, 99.0, e.X, 1e-9)

	w.speed = 0.5
	e.Update(w)
	assert.InDelta(t, 98.5, e.X, 1e-9)
}

func TestEnemy_StrongKnockbackSuppressesSteering(t *testing.T) {
	w := newFakeWorld()
	e := w.spawn(chaserDef(), 100, w.player.Y)
	e.ApplyKnockback(w.player.Position(), 20)

	e.Update(w)

	assert.InDelta(t, 120.0, e.X, 1e-9)
	assert.InDelta(t, 18.0, e.Knockback.Magnitude(), 1e-9)
}

func TestEnemy_DespawnsOffWorldWithoutReward(t *testing.T) {
	w := newFakeWorld()
	e := w.spawn(chaserDef(), w.edge+100, w.player.Y)

	e.Update(w)

	assert.True(t, e.Dead)
	assert.True(t, e.Despawned)
	assert.Empty(t, w.died)
	assert.Equal(t, 1, w.events.Count(event.EnemyDespawned))
}

func TestEnemy_KamikazeDetonatesNearPlayer(t *testing.T) {
	w := newFakeWorld()
	def := chaserDef()
	def.ID = "reaper"
	def.Behavior = defs.BehaviorKamikaze
	def.Radius = 10
	def.TriggerRange = 40
	def.ExplodesOnDeath = true
	def.ExplosionRadius = 70

	far := w.spawn(def, 200, w.player.Y)
	near := w.spawn(def, 30, w.player.Y)
	far.Update(w)
	near.Update(w)

	assert.False(t, far.Dead)
	assert.True(t, near.Dead)
	require.Len(t, w.died, 1)
	assert.Equal(t, 70.0, near.ExplosionRadius())
}

func TestEnemy_ShooterFiresOnCooldown(t *testing.T) {
	w := newFakeWorld()
	def := chaserDef()
	def.Behavior = defs.BehaviorShooter
	def.Ranged = &defs.RangedAttack{Cooldown: 3, ProjectileSpeed: 3.5, ProjectileDamage: 8}
	e := w.spawn(def, 300, w.player.Y)

	for range 7 {
		e.Update(w)
	}

	assert.Equal(t, 2, w.shots)
	assert.True(t, w.hasCue(event.CueEnemyShot))
}

func TestEnemy_HealerRestoresNearbyAllies(t *testing.T) {
	w := newFakeWorld()
	def := chaserDef()
	def.Behavior = defs.BehaviorHealer
	def.Heal = &defs.HealAura{Cooldown: 1, Radius: 100, Amount: defs.LinearStat{Base: 5}}

	healer := w.spawn(def, 500, 0)
	near := w.spawn(chaserDef(), 550, 0)
	far := w.spawn(chaserDef(), 800, 0)
	near.Health.Value = 2
	far.Health.Value = 2
	healer.Health.Value = 2

	healer.Update(w)

	assert.Equal(t, 7.0, near.Health.Value)
	assert.Equal(t, 2.0, far.Health.Value)
	assert.Equal(t, 2.0, healer.Health.Value)
}

func TestEnemy_SummonerCallsMinions(t *testing.T) {
	w := newFakeWorld()
	def := chaserDef()
	def.Behavior = defs.BehaviorSummoner
	def.Summon = &defs.SummonDef{Cooldown: 2, Types: []string{"speeder"}, Scatter: 50}
	e := w.spawn(def, 500, 0)

	e.Update(w)
	assert.Empty(t, w.summoned)
	e.Update(w)
	assert.Equal(t, []string{"speeder"}, w.summoned)
}

func TestEnemy_UnknownBehaviorFallsBackToChase(t *testing.T) {
	w := newFakeWorld()
	def := chaserDef()
	def.Behavior = "teleporter"
	e := w.spawn(def, 100, w.player.Y)

	e.Update(w)
	assert.InDelta(t, 99.0, e.X, 1e-9)
}

func TestBoss_EntersSecondPhase(t *testing.T) {
	lib, err := defs.LoadDefault()
	require.NoError(t, err)
	w := newFakeWorld()

	b := &Enemy{}
	b.InitBoss(&lib.Boss, EnemySpawn{X: 700, Y: 600, Wave: 1}, w.combat)
	require.Equal(t, 1150.0, b.Health.Max)
	require.Equal(t, 1, b.BossPhase())

	b.Update(w)
	assert.Contains(t, []string{PatternChase, PatternShootRing}, b.BossPattern())

	b.Health.Value = 500
	b.Update(w)

	assert.Equal(t, 2, b.BossPhase())
	assert.Equal(t, PatternBarrage, b.BossPattern())
	assert.InDelta(t, 0.52*1.5, b.Speed, 1e-9)
	assert.Equal(t, 1, w.events.Count(event.BossPhaseChanged))

	b.Update(w)
	assert.Equal(t, PatternBarrage, b.BossPattern())
	assert.Equal(t, 1, w.events.Count(event.BossPhaseChanged))
}

func TestBoss_RingVolley(t *testing.T) {
	lib, err := defs.LoadDefault()
	require.NoError(t, err)
	w := newFakeWorld()

	b := &Enemy{}
	b.InitBoss(&lib.Boss, EnemySpawn{X: 700, Y: 600, Wave: 1}, w.combat)
	b.boss.pattern = PatternShootRing
	b.boss.timer = 100
	w.tick = 30

	b.Update(w)
	assert.Equal(t, 8, w.shots)

	w.tick = 31
	b.Update(w)
	assert.Equal(t, 8, w.shots)
}

func TestBoss_IgnoresWorldEdge(t *testing.T) {
	lib, err := defs.LoadDefault()
	require.NoError(t, err)
	w := newFakeWorld()

	b := &Enemy{}
	b.InitBoss(&lib.Boss, EnemySpawn{X: w.edge + 500, Y: 600, Wave: 1}, w.combat)
	b.Update(w)

	assert.False(t, b.Dead)
}

func TestEnemy_ResetClearsState(t *testing.T) {
	w := newFakeWorld()
	e := w.spawn(chaserDef(), 10, 10)
	e.ApplyKnockback(component.Vec2{}, 20)
	e.TakeDamage(100, w)

	e.SetActive(false)
	e.Reset()

	assert.False(t, e.Active())
	assert.False(t, e.Dead)
	assert.Zero(t, e.Knockback.Magnitude())
	assert.Empty(t, e.Type)
}
