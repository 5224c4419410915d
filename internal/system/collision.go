// internal/system/collision.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/entity"
	"go-survivor/internal/spatial"
)

// orbRadius — радиус шара орбитального щита.
const orbRadius = 10.0

// CollisionSystem разрешает столкновения после движения.
// Кандидатов даёт квадродерево мира, точную проверку — Overlaps.
type CollisionSystem struct {
	world *entity.World
	ctx   CombatContext
	found []*entity.Enemy
}

func NewCollisionSystem(world *entity.World, ctx CombatContext) *CollisionSystem {
	return &CollisionSystem{world: world, ctx: ctx}
}

func (s *CollisionSystem) Update() {
	s.playerProjectiles()
	s.playerContacts()
	s.enemyProjectiles()
	s.orbitals()
}

func (s *CollisionSystem) query(x, y, r float64) []*entity.Enemy {
	s.found = s.world.Index.Query(spatial.Around(x, y, r), s.found[:0])
	return s.found
}

func (s *CollisionSystem) playerProjectiles() {
	combat := s.ctx.Combat()
	for _, p := range s.world.Projectiles {
		if p.Dead {
			continue
		}
		for _, e := range s.query(p.X, p.Y, p.Radius+combat.ProjectileMargin) {
			if p.Dead {
				break
			}
			if e.Dead || p.HasHit(e) || !component.Overlaps(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
				continue
			}
			e.TakeDamage(p.Damage, s.ctx)
			e.ApplyKnockback(p.Position(), combat.KnockbackForce)
			p.RecordHit(e)
		}
	}
}

// playerContacts наносит контактный урон и расталкивает врага от игрока.
func (s *CollisionSystem) playerContacts() {
	player := s.world.Player
	if player == nil || player.Dead {
		return
	}
	combat := s.ctx.Combat()
	for _, e := range s.query(player.X, player.Y, player.Radius+combat.PlayerMargin) {
		if e.Dead || !component.Overlaps(player.X, player.Y, player.Radius, e.X, e.Y, e.Radius) {
			continue
		}
		if e.Damage > 0 {
			player.TakeDamage(e.Damage, s.ctx)
		}
		push := component.FromAngle(e.Position().Sub(player.Position()).Angle(), combat.ContactSeparation)
		e.X += push.X
		e.Y += push.Y
	}
}

func (s *CollisionSystem) enemyProjectiles() {
	player := s.world.Player
	if player == nil || player.Dead {
		return
	}
	for _, shot := range s.world.EnemyShots {
		if shot.Dead || !component.Overlaps(player.X, player.Y, player.Radius, shot.X, shot.Y, shot.Radius) {
			continue
		}
		player.TakeDamage(shot.Damage, s.ctx)
		shot.Dead = true
	}
}

// orbitals — шары щита бьют врага не чаще раза в OrbHitCooldown тиков,
// причём ограничение действует и на шар, и на врага.
func (s *CollisionSystem) orbitals() {
	player := s.world.Player
	if player == nil || player.Dead {
		return
	}
	st := player.Skill(SkillOrbitalShield)
	if st == nil {
		return
	}
	combat := s.ctx.Combat()
	tick := s.ctx.Tick()
	for i := range st.Orbs {
		orb := &st.Orbs[i]
		for _, e := range s.query(orb.X, orb.Y, orbRadius+20) {
			if e.Dead || !component.Overlaps(orb.X, orb.Y, orbRadius, e.X, e.Y, e.Radius) {
				continue
			}
			if tick-orb.LastHit <= combat.OrbHitCooldown || e.OrbHitCooldown > 0 {
				continue
			}
			e.TakeDamage(st.OrbDamage, s.ctx)
			e.ApplyKnockback(component.Vec2{X: orb.X, Y: orb.Y}, combat.KnockbackForce*0.5)
			orb.LastHit = tick
			e.OrbHitCooldown = combat.OrbHitCooldown
		}
	}
}
