package entity

import "go-survivor/internal/component"

const (
	xpOrbRadius   = 5.0
	powerUpRadius = 10.0
)

// XPOrb — сфера опыта, выпадающая из врага.
type XPOrb struct {
	Base
	Value float64
}

func (o *XPOrb) Init(x, y, value float64) {
	o.Reset()
	o.place(x, y, xpOrbRadius)
	o.Value = value
}

func (o *XPOrb) Reset() {
	o.resetBase()
	o.Value = 0
}

// Update притягивает сферу к игроку внутри радиуса сбора
// и отдаёт опыт при касании.
func (o *XPOrb) Update(ctx PickupContext, attractSpeed float64) {
	p := ctx.Player()
	if o.Dead || p == nil || p.Dead {
		return
	}
	to := p.Position().Sub(o.Position())
	if to.LenSq() < p.CollectRadius*p.CollectRadius {
		step := component.FromAngle(to.Angle(), attractSpeed)
		o.X += step.X
		o.Y += step.Y
	}
	if component.Overlaps(o.X, o.Y, o.Radius, p.X, p.Y, p.Radius) {
		p.AddXP(o.Value, ctx)
		o.Dead = true
	}
}

// PowerUp — подбираемое усиление.
type PowerUp struct {
	Base
	Kind string
	Look component.Renderable
}

func (u *PowerUp) Init(kind string, x, y float64, look component.Renderable) {
	u.Reset()
	u.place(x, y, powerUpRadius)
	u.Kind = kind
	u.Look = look
	u.Look.Radius = powerUpRadius
}

func (u *PowerUp) Reset() {
	u.resetBase()
	u.Kind = ""
	u.Look = component.Renderable{}
}

// Update применяет эффект при касании игрока.
func (u *PowerUp) Update(ctx PickupContext) {
	p := ctx.Player()
	if u.Dead || p == nil || p.Dead {
		return
	}
	if component.Overlaps(u.X, u.Y, u.Radius, p.X, p.Y, p.Radius) {
		u.Dead = true
		ctx.ApplyPowerUp(u.Kind, u.X, u.Y)
	}
}
