package entity

import (
	"image/color"
	"math"
	"strconv"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
)

func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = max(0, min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func (p Platform) Draw(s component.Surface, cam component.Camera) {
	if !cam.Visible(p.X+p.W/2, p.Y+p.H/2, max(p.W, p.H)) {
		return
	}
	x, y := cam.ToScreen(p.X, p.Y)
	s.Rect(x, y, p.W, p.H, config.GroundColor)
	s.Line(x, y, x+p.W, y, config.StrokeWidth, config.GroundEdgeColor)
}

func (p *Player) Draw(s component.Surface, cam component.Camera) {
	if p.Dead {
		return
	}
	c := config.PlayerColor
	if p.Flash.Active() && p.Flash.Timer%4 < 2 {
		c = config.HitColor
		c.A = 120
	}
	x, y := cam.ToScreen(p.X, p.Y)
	r := p.Radius
	if p.Squash > 0 {
		r *= 1 + 0.02*float64(p.Squash)
	}
	s.Circle(x, y, r, c)
	// Глаз показывает направление взгляда.
	s.Circle(x+p.Facing*r*0.4, y-r*0.2, r*0.2, config.TextDarkColor)
	if p.Shielded() {
		s.Ring(x, y, p.Radius*1.5, 3, config.ShieldColor)
	}
	for _, id := range p.SkillOrder {
		for _, orb := range p.Skills[id].Orbs {
			ox, oy := cam.ToScreen(orb.X, orb.Y)
			s.Circle(ox, oy, 10, config.OrbitalColor)
		}
	}
}

func (e *Enemy) Draw(s component.Surface, cam component.Camera, target component.Vec2) {
	if e.Dead || !cam.Visible(e.X, e.Y, e.Radius*1.5) {
		return
	}
	look := e.Look
	c := color.Color(look.Color)
	if e.Flash.Active() {
		c = config.HitColor
	}
	component.DrawShape(s, cam, e.X, e.Y, look, c, e.angleTo(target))

	x, y := cam.ToScreen(e.X, e.Y)
	if e.Elite {
		s.Ring(x, y, e.Radius*1.2, 2, config.EliteColor)
	}
	if e.Health.Ratio() < 1 || e.Boss {
		w := e.Radius * 2
		if e.Boss {
			w = e.Radius * 3
		}
		s.Rect(x-w/2, y+e.Radius+10, w, 5, fade(config.HealthBarColor, 0.4))
		s.Rect(x-w/2, y+e.Radius+10, w*e.Health.Ratio(), 5, config.HealthBarColor)
	}
}

func (p *Projectile) Draw(s component.Surface, cam component.Camera) {
	extent := p.Radius
	if p.Kind == KindRay {
		extent = p.Length
	}
	if p.Dead || !cam.Visible(p.X, p.Y, extent) {
		return
	}
	x, y := cam.ToScreen(p.X, p.Y)
	if p.Kind == KindRay {
		tail := component.FromAngle(p.Angle, -p.Length)
		s.Line(x+tail.X, y+tail.Y, x, y, p.Radius*2, config.RayColor)
		return
	}
	s.Circle(x, y, p.Radius, config.ProjectileColor)
}

func (p *EnemyProjectile) Draw(s component.Surface, cam component.Camera) {
	if p.Dead || !cam.Visible(p.X, p.Y, p.Radius) {
		return
	}
	x, y := cam.ToScreen(p.X, p.Y)
	s.Circle(x, y, p.Radius, config.EnemyShotColor)
}

func (o *XPOrb) Draw(s component.Surface, cam component.Camera) {
	if o.Dead || !cam.Visible(o.X, o.Y, o.Radius) {
		return
	}
	x, y := cam.ToScreen(o.X, o.Y)
	s.Circle(x, y, o.Radius, config.XPOrbColor)
}

func (u *PowerUp) Draw(s component.Surface, cam component.Camera) {
	if u.Dead || !cam.Visible(u.X, u.Y, u.Radius) {
		return
	}
	look := u.Look
	look.Shape = component.ShapeStar
	component.DrawShape(s, cam, u.X, u.Y, look, look.Color, 0)
}

func (a *AreaEffect) Draw(s component.Surface, cam component.Camera) {
	if a.Dead || !cam.Visible(a.X, a.Y, a.Radius) {
		return
	}
	x, y := cam.ToScreen(a.X, a.Y)
	switch a.Mode {
	case AreaExplosion:
		r := a.Radius * (1 - a.Life())
		s.Circle(x, y, r, fade(config.ExplosionColor, a.Life()))
	case AreaSlow:
		s.Circle(x, y, a.Radius, config.FieldColor)
	default:
		s.Circle(x, y, a.Radius, fade(config.VortexColor, 0.5+0.5*a.Life()))
		spin := float64(a.Duration) * 0.1
		for i := range 3 {
			d := component.FromAngle(spin+float64(i)*2*math.Pi/3, a.Radius*0.6)
			s.Line(x, y, x+d.X, y+d.Y, config.StrokeWidth, config.VortexColor)
		}
	}
}

func (n *DamageNumber) Draw(s component.Surface, cam component.Camera) {
	if n.Dead || !cam.Visible(n.X, n.Y, 20) {
		return
	}
	x, y := cam.ToScreen(n.X, n.Y)
	s.Text(x, y, strconv.Itoa(n.Amount), fade(config.TextLightColor, n.Alpha))
}
