package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivor/internal/component"
	"go-survivor/internal/event"
)

func TestPlayer_ShieldAbsorbsExactlyOneHit(t *testing.T) {
	w := newFakeWorld()
	p := w.player
	p.RaiseShield(300)

	out := p.TakeDamage(50, w)

	assert.Equal(t, DamageShielded, out)
	assert.Equal(t, 120.0, p.Health.Value)
	assert.IsType(t, Exposed{}, p.Guard)
	assert.Equal(t, 1, w.events.Count(event.ShieldBroken))
	assert.Zero(t, w.events.Count(event.PlayerDamaged))
	assert.Zero(t, w.events.Count(event.ScreenShake))
	assert.True(t, w.hasCue(event.CueShieldBreak))

	out = p.TakeDamage(50, w)
	assert.Equal(t, DamageTaken, out)
	assert.Equal(t, 70.0, p.Health.Value)
	assert.IsType(t, Invulnerable{}, p.Guard)
}

func TestPlayer_InvulnerabilityWindowAbsorbs(t *testing.T) {
	w := newFakeWorld()
	p := w.player

	require.Equal(t, DamageTaken, p.TakeDamage(10, w))
	assert.Equal(t, DamageAbsorbed, p.TakeDamage(10, w))
	assert.Equal(t, 110.0, p.Health.Value)

	for range 30 {
		p.Update(Input{}, w)
	}
	assert.IsType(t, Exposed{}, p.Guard)
	assert.Equal(t, DamageTaken, p.TakeDamage(10, w))
}

func TestPlayer_DashAbsorbsAndKeepsShield(t *testing.T) {
	w := newFakeWorld()
	p := w.player
	p.RaiseShield(300)

	p.Update(Input{Dash: true}, w)
	require.True(t, p.Dashing())
	assert.Equal(t, 1, w.dashes)

	assert.Equal(t, DamageAbsorbed, p.TakeDamage(40, w))
	assert.True(t, p.Shielded())
	assert.Equal(t, 120.0, p.Health.Value)
	assert.InDelta(t, 15.0, p.X, 1e-9)
}

func TestPlayer_DashCooldown(t *testing.T) {
	w := newFakeWorld()
	p := w.player

	p.Update(Input{Dash: true}, w)
	for range 10 {
		p.Update(Input{}, w)
	}
	require.False(t, p.Dashing())

	p.Update(Input{Dash: true}, w)
	assert.False(t, p.Dashing())
	assert.Equal(t, 1, w.dashes)
}

func TestPlayer_DashFallsBackToFacing(t *testing.T) {
	w := newFakeWorld()
	p := w.player
	p.Facing = -1
	p.LastMove = component.Vec2{}

	p.Update(Input{Dash: true}, w)

	d, ok := p.Motion.(Dashing)
	require.True(t, ok)
	assert.Equal(t, component.Vec2{X: -1}, d.Dir)
}

func TestPlayer_DeathFiresOnce(t *testing.T) {
	w := newFakeWorld()
	p := w.player

	assert.Equal(t, DamageFatal, p.TakeDamage(500, w))
	assert.Zero(t, p.Health.Value)
	assert.True(t, p.Dead)
	assert.Equal(t, DamageIgnored, p.TakeDamage(500, w))
	assert.Equal(t, 1, w.events.Count(event.PlayerDied))
}

func TestPlayer_AddXPLevelsUpRepeatedly(t *testing.T) {
	w := newFakeWorld()
	p := w.player

	levels := p.AddXP(200, w)

	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, p.Level)
	assert.InDelta(t, 28.0, p.XP, 1e-9)
	assert.Equal(t, 105.0, p.XPToNext)
	assert.Equal(t, 2, w.events.Count(event.LevelUp))
}

func TestPlayer_XPModifier(t *testing.T) {
	w := newFakeWorld()
	p := w.player
	p.ApplyUpgrades(0, 0, 0.5)

	p.AddXP(20, w)
	assert.InDelta(t, 30.0, p.XP, 1e-9)
}

func TestPlayer_JumpAndDoubleJump(t *testing.T) {
	w := newFakeWorld()
	p := w.player
	p.MaxJumps = 2
	p.JumpsLeft = 2

	p.Update(Input{Jump: true}, w)
	assert.InDelta(t, -9.5, p.VelY, 1e-9)
	assert.IsType(t, Airborne{}, p.Motion)
	assert.Equal(t, 1, p.JumpsLeft)

	p.Update(Input{Jump: true}, w)
	assert.InDelta(t, -7.5, p.VelY, 1e-9)
	assert.Zero(t, p.JumpsLeft)

	p.Update(Input{Jump: true}, w)
	assert.InDelta(t, -7.0, p.VelY, 1e-9)
}

func TestPlayer_LandsOnGround(t *testing.T) {
	w := newFakeWorld()
	p := w.player
	p.Y = 600
	p.Motion = Airborne{}
	p.JumpsLeft = 0

	for i := 0; i < 120 && !p.Grounded(); i++ {
		p.Update(Input{}, w)
	}

	require.True(t, p.Grounded())
	assert.Equal(t, 705.0, p.Y)
	assert.Zero(t, p.VelY)
	assert.Equal(t, p.MaxJumps, p.JumpsLeft)
	assert.True(t, w.hasCue(event.CueLand))
}

func TestPlayer_FastFallDoesNotTunnel(t *testing.T) {
	w := newFakeWorld()
	w.platforms = []Platform{{X: -100, Y: 500, W: 200, H: 1}}
	p := w.player
	p.X, p.Y = 0, 480
	p.VelY = 40
	p.Motion = Airborne{}

	p.Update(Input{}, w)

	assert.True(t, p.Grounded())
	assert.Equal(t, 485.0, p.Y)
}

func TestPlayer_WalksOffLedge(t *testing.T) {
	w := newFakeWorld()
	w.platforms = []Platform{{X: -100, Y: 720, W: 200, H: 100}}
	p := w.player
	p.X = 98

	p.Update(Input{Move: component.Vec2{X: 1}}, w)
	p.Update(Input{Move: component.Vec2{X: 1}}, w)

	assert.IsType(t, Airborne{}, p.Motion)
	assert.Equal(t, 1.0, p.Facing)
}

func TestPlayer_FallingOutOfWorldKills(t *testing.T) {
	w := newFakeWorld()
	w.platforms = []Platform{{X: -100, Y: 720, W: 200, H: 100}}
	p := w.player
	p.X, p.Y = 1000, 930
	p.Motion = Airborne{}
	p.RaiseShield(100)

	p.Update(Input{}, w)
	p.Update(Input{}, w)

	assert.True(t, p.Dead)
	assert.Equal(t, 1, w.events.Count(event.PlayerDied))
}

func TestPlayer_LearnSkillCapsAtMaxLevel(t *testing.T) {
	p := newFakeWorld().player

	assert.Equal(t, 1, p.LearnSkill("magnet", 2))
	assert.Equal(t, 2, p.LearnSkill("magnet", 2))
	assert.Equal(t, 2, p.LearnSkill("magnet", 2))
	assert.Equal(t, []string{"magnet"}, p.SkillOrder)
}
