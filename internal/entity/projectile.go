package entity

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/spatial"
)

// ProjectileKind различает снаряды игрока.
type ProjectileKind int

const (
	KindLance ProjectileKind = iota
	KindRay
)

const (
	lanceRadius     = 5.0
	enemyShotRadius = 7.0
)

// Shot — параметры выстрела игрока.
type Shot struct {
	Kind   ProjectileKind
	X, Y   float64
	Angle  float64
	Speed  float64
	Damage float64
	Pierce int
	// Width и Length задают размер луча; у копья радиус фиксирован.
	Width  float64
	Length float64
}

// Projectile — снаряд игрока. Проходит сквозь Pierce врагов
// и погибает на Pierce+1-м попадании.
type Projectile struct {
	Base

	Kind   ProjectileKind
	Vel    component.Vec2
	Angle  float64
	Damage float64
	Pierce int
	Length float64

	hits map[enemyRef]struct{}
}

// Init готовит снаряд из пула.
func (p *Projectile) Init(s Shot) {
	p.Reset()
	radius := lanceRadius
	if s.Kind == KindRay {
		radius = s.Width / 2
		p.Length = s.Length
	}
	p.place(s.X, s.Y, radius)
	p.Kind = s.Kind
	p.Angle = s.Angle
	p.Vel = component.FromAngle(s.Angle, s.Speed)
	p.Damage = s.Damage
	p.Pierce = s.Pierce
}

// Reset очищает снаряд, включая множество поражённых врагов.
func (p *Projectile) Reset() {
	p.resetBase()
	p.Kind = KindLance
	p.Vel = component.Vec2{}
	p.Angle, p.Damage, p.Length = 0, 0, 0
	p.Pierce = 0
	clear(p.hits)
}

// HasHit — этот враг уже был поражён этим снарядом.
func (p *Projectile) HasHit(e *Enemy) bool {
	_, ok := p.hits[refOf(e)]
	return ok
}

// RecordHit запоминает попадание и гасит снаряд, когда пробитие исчерпано.
func (p *Projectile) RecordHit(e *Enemy) {
	if p.hits == nil {
		p.hits = make(map[enemyRef]struct{})
	}
	p.hits[refOf(e)] = struct{}{}
	if len(p.hits) >= p.Pierce+1 {
		p.Dead = true
	}
}

// HitCount — сколько разных врагов поражено.
func (p *Projectile) HitCount() int { return len(p.hits) }

// Update двигает снаряд и гасит его за краем мира.
func (p *Projectile) Update(edge float64) {
	if p.Dead {
		return
	}
	p.X += p.Vel.X
	p.Y += p.Vel.Y
	if math.Abs(p.X) > edge || math.Abs(p.Y) > edge {
		p.Dead = true
	}
}

// EnemyProjectile — снаряд врага, бьёт только игрока.
type EnemyProjectile struct {
	Base
	Vel    component.Vec2
	Damage float64
}

func (p *EnemyProjectile) Init(x, y, angle, speed, damage float64) {
	p.Reset()
	p.place(x, y, enemyShotRadius)
	p.Vel = component.FromAngle(angle, speed)
	p.Damage = damage
}

func (p *EnemyProjectile) Reset() {
	p.resetBase()
	p.Vel = component.Vec2{}
	p.Damage = 0
}

// Update двигает снаряд и гасит его, когда он покинул область keep.
func (p *EnemyProjectile) Update(keep spatial.Rect) {
	if p.Dead {
		return
	}
	p.X += p.Vel.X
	p.Y += p.Vel.Y
	if !keep.Contains(p.X, p.Y) {
		p.Dead = true
	}
}
