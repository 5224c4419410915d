// internal/entity/world.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/pool"
	"go-survivor/internal/spatial"
)

// World хранит все сущности забега.
//
// Активные списки обходятся проходами симуляции. Всё, что появляется во
// время прохода, попадает в отложенные списки и вливается в активные
// только в Flush, поэтому ни один проход не меняет длину своего списка.
// Sweep вычищает мёртвых и возвращает их в пулы.
type World struct {
	Player    *Player
	Platforms []Platform

	Enemies       []*Enemy
	Projectiles   []*Projectile
	EnemyShots    []*EnemyProjectile
	Orbs          []*XPOrb
	PowerUps      []*PowerUp
	Areas         []*AreaEffect
	DamageNumbers []*DamageNumber

	// Index — квадродерево живых врагов, перестраивается каждый тик.
	Index *spatial.Quadtree[*Enemy]

	pendingEnemies     []*Enemy
	pendingProjectiles []*Projectile
	pendingShots       []*EnemyProjectile
	pendingOrbs        []*XPOrb
	pendingPowerUps    []*PowerUp
	pendingAreas       []*AreaEffect
	pendingNumbers     []*DamageNumber

	enemyPool   *pool.Pool[*Enemy]
	projPool    *pool.Pool[*Projectile]
	shotPool    *pool.Pool[*EnemyProjectile]
	orbPool     *pool.Pool[*XPOrb]
	powerUpPool *pool.Pool[*PowerUp]
	areaPool    *pool.Pool[*AreaEffect]
	numberPool  *pool.Pool[*DamageNumber]

	// serial — номер последнего появившегося врага.
	serial uint64
}

// NewWorld создаёт пустой мир с заранее выделенными пулами.
// Квадродерево покрывает bounds.
func NewWorld(pools config.PoolConfig, bounds spatial.Rect, capacity int) *World {
	return &World{
		Index:       spatial.NewQuadtree[*Enemy](bounds, capacity),
		enemyPool:   pool.New(func() *Enemy { return &Enemy{} }, pools.Enemies),
		projPool:    pool.New(func() *Projectile { return &Projectile{} }, pools.Projectiles),
		shotPool:    pool.New(func() *EnemyProjectile { return &EnemyProjectile{} }, pools.EnemyProjectiles),
		orbPool:     pool.New(func() *XPOrb { return &XPOrb{} }, pools.XPOrbs),
		powerUpPool: pool.New(func() *PowerUp { return &PowerUp{} }, 4),
		areaPool:    pool.New(func() *AreaEffect { return &AreaEffect{} }, pools.AreaEffects),
		numberPool:  pool.New(func() *DamageNumber { return &DamageNumber{} }, pools.DamageNumbers),
	}
}

func (w *World) SpawnEnemy(def defs.EnemyDefinition, s EnemySpawn, combat config.CombatConfig) *Enemy {
	e := w.enemyPool.Get(func(e *Enemy) { e.Init(def, s, combat) })
	w.stamp(e)
	return e
}

func (w *World) SpawnBoss(def *defs.BossDefinition, s EnemySpawn, combat config.CombatConfig) *Enemy {
	e := w.enemyPool.Get(func(e *Enemy) { e.InitBoss(def, s, combat) })
	w.stamp(e)
	return e
}

func (w *World) Fire(s Shot) *Projectile {
	p := w.projPool.Get(func(p *Projectile) { p.Init(s) })
	w.pendingProjectiles = append(w.pendingProjectiles, p)
	return p
}

func (w *World) FireEnemyShot(x, y, angle, speed, damage float64) *EnemyProjectile {
	p := w.shotPool.Get(func(p *EnemyProjectile) { p.Init(x, y, angle, speed, damage) })
	w.pendingShots = append(w.pendingShots, p)
	return p
}

func (w *World) DropOrb(x, y, value float64) *XPOrb {
	o := w.orbPool.Get(func(o *XPOrb) { o.Init(x, y, value) })
	w.pendingOrbs = append(w.pendingOrbs, o)
	return o
}

func (w *World) DropPowerUp(kind string, x, y float64, look component.Renderable) *PowerUp {
	u := w.powerUpPool.Get(func(u *PowerUp) { u.Init(kind, x, y, look) })
	w.pendingPowerUps = append(w.pendingPowerUps, u)
	return u
}

func (w *World) SpawnArea(a Area) *AreaEffect {
	e := w.areaPool.Get(func(e *AreaEffect) { e.Init(a) })
	w.pendingAreas = append(w.pendingAreas, e)
	return e
}

func (w *World) SpawnDamageNumber(x, y, amount float64) *DamageNumber {
	n := w.numberPool.Get(func(n *DamageNumber) { n.Init(x, y, amount) })
	w.pendingNumbers = append(w.pendingNumbers, n)
	return n
}

// stamp выдаёт врагу новый номер появления и ставит его в очередь.
func (w *World) stamp(e *Enemy) {
	w.serial++
	e.serial = w.serial
	w.pendingEnemies = append(w.pendingEnemies, e)
}

// Flush вливает отложенные появления в активные списки.
func (w *World) Flush() {
	w.Enemies, w.pendingEnemies = merge(w.Enemies, w.pendingEnemies)
	w.Projectiles, w.pendingProjectiles = merge(w.Projectiles, w.pendingProjectiles)
	w.EnemyShots, w.pendingShots = merge(w.EnemyShots, w.pendingShots)
	w.Orbs, w.pendingOrbs = merge(w.Orbs, w.pendingOrbs)
	w.PowerUps, w.pendingPowerUps = merge(w.PowerUps, w.pendingPowerUps)
	w.Areas, w.pendingAreas = merge(w.Areas, w.pendingAreas)
	w.DamageNumbers, w.pendingNumbers = merge(w.DamageNumbers, w.pendingNumbers)
}

// Sweep убирает мёртвых из активных списков с сохранением порядка
// и возвращает их в пулы.
func (w *World) Sweep() {
	w.Enemies = sweep(w.Enemies, w.enemyPool)
	w.Projectiles = sweep(w.Projectiles, w.projPool)
	w.EnemyShots = sweep(w.EnemyShots, w.shotPool)
	w.Orbs = sweep(w.Orbs, w.orbPool)
	w.PowerUps = sweep(w.PowerUps, w.powerUpPool)
	w.Areas = sweep(w.Areas, w.areaPool)
	w.DamageNumbers = sweep(w.DamageNumbers, w.numberPool)
}

// RebuildIndex заново заполняет квадродерево живыми врагами.
func (w *World) RebuildIndex() {
	w.Index.Clear()
	for _, e := range w.Enemies {
		if !e.Dead {
			w.Index.Insert(e)
		}
	}
}

// PendingCount — сколько появлений ждёт Flush.
func (w *World) PendingCount() int {
	return len(w.pendingEnemies) + len(w.pendingProjectiles) + len(w.pendingShots) +
		len(w.pendingOrbs) + len(w.pendingPowerUps) + len(w.pendingAreas) + len(w.pendingNumbers)
}

// PoolStats — выделено и занято экземпляров врагов и снарядов.
type PoolStats struct {
	Enemies, EnemiesActive         int
	Projectiles, ProjectilesActive int
}

func (w *World) PoolStats() PoolStats {
	return PoolStats{
		Enemies:           w.enemyPool.Len(),
		EnemiesActive:     w.enemyPool.ActiveCount(),
		Projectiles:       w.projPool.Len(),
		ProjectilesActive: w.projPool.ActiveCount(),
	}
}

// Reset возвращает в пулы всё, что было выдано, и очищает списки.
func (w *World) Reset() {
	w.Flush()
	releaseAll(w.Enemies, w.enemyPool)
	releaseAll(w.Projectiles, w.projPool)
	releaseAll(w.EnemyShots, w.shotPool)
	releaseAll(w.Orbs, w.orbPool)
	releaseAll(w.PowerUps, w.powerUpPool)
	releaseAll(w.Areas, w.areaPool)
	releaseAll(w.DamageNumbers, w.numberPool)
	w.Enemies, w.Projectiles, w.EnemyShots = w.Enemies[:0], w.Projectiles[:0], w.EnemyShots[:0]
	w.Orbs, w.PowerUps, w.Areas, w.DamageNumbers = w.Orbs[:0], w.PowerUps[:0], w.Areas[:0], w.DamageNumbers[:0]
	w.Index.Clear()
}

func merge[T any](active, pending []T) ([]T, []T) {
	active = append(active, pending...)
	clear(pending)
	return active, pending[:0]
}

type mortal interface {
	pool.Poolable
	IsDead() bool
}

func sweep[T mortal](list []T, p *pool.Pool[T]) []T {
	kept := list[:0]
	for _, v := range list {
		if v.IsDead() {
			p.Release(v)
			continue
		}
		kept = append(kept, v)
	}
	clear(list[len(kept):])
	return kept
}

func releaseAll[T pool.Poolable](list []T, p *pool.Pool[T]) {
	for _, v := range list {
		p.Release(v)
	}
}
