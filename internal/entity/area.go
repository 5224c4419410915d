package entity

// AreaMode — вид области.
type AreaMode int

const (
	// AreaPull притягивает врагов и периодически ранит их (вихрь).
	AreaPull AreaMode = iota
	// AreaExplosion бьёт каждую цель один раз за время жизни.
	AreaExplosion
	// AreaSlow замедляет врагов внутри (статическое поле).
	AreaSlow
)

// Area — параметры создаваемой области.
type Area struct {
	Mode     AreaMode
	X, Y     float64
	Radius   float64
	Duration int
	Force    float64
	Damage   float64
	Slow     float64
	// Hostile — взрыв врага: ранит игрока, а не врагов.
	Hostile bool
}

// AreaEffect — временная область: вихрь, взрыв или замедляющее поле.
type AreaEffect struct {
	Base

	Mode       AreaMode
	Hostile    bool
	Duration   int
	Initial    int
	Force      float64
	Damage     float64
	SlowFactor float64

	hits      map[enemyRef]struct{}
	hitPlayer bool
}

func (a *AreaEffect) Init(s Area) {
	a.Reset()
	a.place(s.X, s.Y, s.Radius)
	a.Mode = s.Mode
	a.Hostile = s.Hostile
	a.Duration = s.Duration
	a.Initial = s.Duration
	a.Force = s.Force
	a.Damage = s.Damage
	a.SlowFactor = s.Slow
}

func (a *AreaEffect) Reset() {
	a.resetBase()
	a.Mode = AreaPull
	a.Hostile = false
	a.Duration, a.Initial = 0, 0
	a.Force, a.Damage, a.SlowFactor = 0, 0, 0
	a.hitPlayer = false
	clear(a.hits)
}

// Life — доля оставшегося времени жизни.
func (a *AreaEffect) Life() float64 {
	if a.Initial <= 0 {
		return 0
	}
	return float64(a.Duration) / float64(a.Initial)
}

// Covers — точка внутри области.
func (a *AreaEffect) Covers(x, y float64) bool {
	dx, dy := a.X-x, a.Y-y
	return dx*dx+dy*dy < a.Radius*a.Radius
}

// Update — один тик области.
func (a *AreaEffect) Update(ctx AreaContext) {
	if a.Dead {
		return
	}
	a.Duration--
	if a.Duration <= 0 {
		a.Dead = true
		return
	}

	switch a.Mode {
	case AreaPull:
		a.pull(ctx)
	case AreaExplosion:
		if a.Hostile {
			a.blastPlayer(ctx)
		} else {
			a.blastEnemies(ctx)
		}
	}
}

func (a *AreaEffect) pull(ctx AreaContext) {
	damageTick := every(ctx.Tick(), ctx.Combat().PullDamageInterval)
	center := a.Position()
	for _, e := range ctx.Enemies() {
		if e.Dead || !a.Covers(e.X, e.Y) {
			continue
		}
		step := center.Sub(e.Position()).Normalize().Scale(a.Force)
		e.X += step.X
		e.Y += step.Y
		if damageTick {
			e.TakeDamage(a.Damage, ctx)
		}
	}
}

func (a *AreaEffect) blastEnemies(ctx AreaContext) {
	if a.hits == nil {
		a.hits = make(map[enemyRef]struct{})
	}
	force := ctx.Combat().KnockbackForce * 2
	for _, e := range ctx.Enemies() {
		if e.Dead || !a.Covers(e.X, e.Y) {
			continue
		}
		ref := refOf(e)
		if _, done := a.hits[ref]; done {
			continue
		}
		a.hits[ref] = struct{}{}
		e.TakeDamage(a.Damage, ctx)
		e.ApplyKnockback(a.Position(), force)
	}
}

func (a *AreaEffect) blastPlayer(ctx AreaContext) {
	p := ctx.Player()
	if a.hitPlayer || p == nil || p.Dead || !a.Covers(p.X, p.Y) {
		return
	}
	a.hitPlayer = true
	if p.TakeDamage(a.Damage, ctx) == DamageTaken {
		p.ApplyKnockback(a.Position(), ctx.Combat().KnockbackForce/2)
	}
}
