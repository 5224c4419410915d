package entity

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/event"
)

const (
	hurtFlashTicks  = 30
	landSquashTicks = 10
)

// Orbital — один шар орбитального щита.
type Orbital struct {
	Angle   float64
	X, Y    float64
	LastHit int // тик последнего попадания
}

// SkillState — изученный навык игрока.
type SkillState struct {
	Level    int
	Cooldown int
	Orbs     []Orbital
	// OrbDamage — урон шара с учётом модификатора, выставляется системой навыков.
	OrbDamage float64
}

// Player — управляемый персонаж.
type Player struct {
	Base

	Health component.Health
	Speed  float64

	XP       float64
	XPToNext float64
	Level    int

	Skills     map[string]*SkillState
	SkillOrder []string

	CollectRadius  float64
	DamageModifier float64
	XPModifier     float64

	Facing   float64 // 1 вправо, -1 влево
	LastMove component.Vec2
	VelY     float64

	MaxJumps     int
	JumpsLeft    int
	DashCooldown int

	Motion Motion
	Guard  Guard

	Knockback component.Knockback
	Flash     component.HitFlash
	Squash    int

	cfg config.PlayerConfig
	// gravity берётся из мира, а не из конфигурации игрока.
	gravity float64
}

// NewPlayer ставит игрока в (x, y) стоящим на земле.
func NewPlayer(cfg config.PlayerConfig, gravity, x, y float64) *Player {
	p := &Player{
		Health:         component.NewHealth(cfg.Health),
		Speed:          cfg.Speed,
		XPToNext:       cfg.XPBase,
		Level:          1,
		Skills:         make(map[string]*SkillState),
		CollectRadius:  cfg.CollectRadius,
		DamageModifier: 1,
		XPModifier:     1,
		Facing:         1,
		LastMove:       component.Vec2{X: 1},
		MaxJumps:       1,
		JumpsLeft:      1,
		Motion:         Grounded{},
		Guard:          Exposed{},
		Knockback:      component.Knockback{Decay: 0.9, Stop: 0.1},
		cfg:            cfg,
		gravity:        gravity,
	}
	p.place(x, y, cfg.Radius)
	p.SetActive(true)
	return p
}

// ApplyUpgrades добавляет бонусы постоянных улучшений.
func (p *Player) ApplyUpgrades(maxHealth, damageBoost, xpGain float64) {
	p.Health.Max += maxHealth
	p.Health.Value = p.Health.Max
	p.DamageModifier += damageBoost
	p.XPModifier += xpGain
}

// Skill возвращает состояние навыка или nil.
func (p *Player) Skill(id string) *SkillState {
	return p.Skills[id]
}

// LearnSkill добавляет навык или повышает его уровень до maxLevel.
// Возвращает уровень после изменения.
func (p *Player) LearnSkill(id string, maxLevel int) int {
	if s, ok := p.Skills[id]; ok {
		if s.Level < maxLevel {
			s.Level++
		}
		return s.Level
	}
	p.Skills[id] = &SkillState{Level: 1}
	p.SkillOrder = append(p.SkillOrder, id)
	return 1
}

// RaiseShield включает щит на ticks тиков.
func (p *Player) RaiseShield(ticks int) {
	p.Guard = Shielded{Timer: ticks}
}

func (p *Player) Shielded() bool {
	_, ok := p.Guard.(Shielded)
	return ok
}

func (p *Player) Dashing() bool {
	_, ok := p.Motion.(Dashing)
	return ok
}

func (p *Player) Grounded() bool {
	_, ok := p.Motion.(Grounded)
	return ok
}

// ApplyKnockback толкает игрока от точки source.
func (p *Player) ApplyKnockback(source component.Vec2, force float64) {
	p.Knockback.Apply(source, p.Position(), force)
}

// Update — один тик игрока: защита, рывок, прыжок, гравитация и платформы.
func (p *Player) Update(in Input, ctx PlayerContext) {
	if p.Dead {
		return
	}
	p.Guard = tickGuard(p.Guard)
	p.Flash.Tick()
	if p.Squash > 0 {
		p.Squash--
	}
	if p.DashCooldown > 0 {
		p.DashCooldown--
	}

	if !in.Move.IsZero() {
		p.LastMove = in.Move.Normalize()
	}
	if in.Move.X != 0 {
		p.Facing = math.Copysign(1, in.Move.X)
	}
	if in.Dash {
		p.startDash(ctx)
	}

	var d component.Vec2
	if m, ok := p.Motion.(Dashing); ok {
		d = m.Dir.Scale(p.cfg.DashForce)
		p.VelY = 0
		m.Timer--
		if m.Timer > 0 {
			p.Motion = m
		} else {
			p.Motion = Airborne{}
		}
	} else {
		if in.Jump {
			p.jump()
		}
		p.VelY += p.gravity
		d = component.Vec2{X: in.Move.X * p.Speed, Y: p.VelY}
	}
	d = d.Add(p.Knockback.Step())

	platforms := ctx.Platforms()
	landed := p.sweep(d, platforms)
	switch {
	case p.Dashing():
	case landed:
		if !p.Grounded() {
			p.land(ctx)
		}
		p.Motion = Grounded{}
	default:
		p.Motion = Airborne{}
	}

	if len(platforms) > 0 && p.Y > platforms[0].Y+p.cfg.FallDeathDepth {
		p.die(ctx)
	}
}

func (p *Player) startDash(ctx PlayerContext) {
	if p.DashCooldown > 0 || p.Dashing() {
		return
	}
	dir := p.LastMove
	if dir.IsZero() {
		dir = component.Vec2{X: p.Facing}
	}
	p.Motion = Dashing{Timer: p.cfg.DashDuration, Dir: dir}
	p.DashCooldown = p.cfg.DashCooldown
	ctx.Cue(event.CueDash, "F5")
	ctx.Dashed(p)
}

func (p *Player) jump() {
	if p.JumpsLeft <= 0 {
		return
	}
	if p.Grounded() || p.JumpsLeft == p.MaxJumps {
		p.VelY = p.cfg.JumpForce
	} else {
		p.VelY = p.cfg.DoubleJumpForce
	}
	p.JumpsLeft--
	p.Motion = Airborne{}
}

func (p *Player) land(fb Feedback) {
	p.JumpsLeft = p.MaxJumps
	p.Squash = landSquashTicks
	fb.Cue(event.CueLand, "16n")
}

// sweep перемещает игрока на d, дробя шаг так, чтобы за подшаг
// смещение по каждой оси не превышало единицы. Так быстрое падение
// не проскакивает сквозь тонкую платформу. Возвращает true при приземлении.
func (p *Player) sweep(d component.Vec2, platforms []Platform) bool {
	steps := max(1, int(math.Ceil(max(math.Abs(d.X), math.Abs(d.Y)))))
	sx, sy := d.X/float64(steps), d.Y/float64(steps)
	landed := false
	for range steps {
		p.X += sx
		if sy == 0 {
			continue
		}
		prevY := p.Y
		p.Y += sy
		if sy < 0 {
			continue
		}
		if top, ok := p.landingTop(platforms, prevY); ok {
			p.Y = top
			p.VelY = 0
			sy = 0
			landed = true
		}
	}
	return landed
}

func (p *Player) landingTop(platforms []Platform, prevY float64) (float64, bool) {
	for _, pl := range platforms {
		top := pl.Y - p.Radius
		if p.X > pl.X && p.X < pl.X+pl.W && prevY <= top && p.Y >= top {
			return top, true
		}
	}
	return 0, false
}

// TakeDamage — единственный путь урона по игроку.
func (p *Player) TakeDamage(amount float64, fb Feedback) DamageOutcome {
	if p.Dead || amount <= 0 {
		return DamageIgnored
	}
	if p.Dashing() {
		return DamageAbsorbed
	}
	switch p.Guard.(type) {
	case Invulnerable:
		return DamageAbsorbed
	case Shielded:
		p.Guard = Exposed{}
		fb.Cue(event.CueShieldBreak)
		fb.Dispatch(event.Event{Type: event.ShieldBroken})
		return DamageShielded
	}

	applied := p.Health.Damage(amount)
	p.Flash.Trigger(hurtFlashTicks)
	fb.Cue(event.CueHit, "8n")
	fb.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamageData{Amount: applied, Health: p.Health.Value}})
	fb.Dispatch(event.Event{Type: event.ScreenShake, Data: event.ShakeData{Intensity: 5, Duration: 15}})

	if p.Health.Depleted() {
		p.die(fb)
		return DamageFatal
	}
	if p.cfg.HurtInvulnerability > 0 {
		p.Guard = Invulnerable{Timer: p.cfg.HurtInvulnerability}
	}
	return DamageTaken
}

func (p *Player) die(fb Feedback) {
	if p.Dead {
		return
	}
	p.Dead = true
	p.Health.Value = 0
	fb.Dispatch(event.Event{Type: event.PlayerDied})
}

// Heal восстанавливает здоровье, не выше максимума.
func (p *Player) Heal(amount float64) {
	if p.Dead {
		return
	}
	p.Health.Heal(amount)
}

// AddXP начисляет опыт с учётом модификатора и возвращает число новых уровней.
func (p *Player) AddXP(amount float64, fb Feedback) int {
	if p.Dead || amount <= 0 {
		return 0
	}
	p.XP += amount * p.XPModifier
	fb.Cue(event.CueXP, "C5")

	levels := 0
	for p.XPToNext > 0 && p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.XPToNext = math.Floor(p.XPToNext * p.cfg.XPMultiplier)
		levels++
		fb.Cue(event.CueLevelUp)
		fb.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelData{Level: p.Level}})
	}
	return levels
}

// ScaleDamage применяет модификатор урона игрока.
func (p *Player) ScaleDamage(base float64) float64 {
	return base * p.DamageModifier
}
