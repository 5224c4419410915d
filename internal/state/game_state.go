// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/input"
	"go-survivor/internal/system"
	"go-survivor/internal/ui"
)

// GameState — идущий забег. Симуляция шагает фиксированными тиками
// независимо от частоты кадров.
type GameState struct {
	sm   *StateMachine
	env  *Env
	game *app.Game

	step        float64
	accumulator float64
}

var _ State = (*GameState)(nil)

func NewGameState(sm *StateMachine, env *Env) *GameState {
	return &GameState{
		sm:   sm,
		env:  env,
		game: app.NewGame(env.Config, env.Library, env.Cues),
		step: 1 / float64(env.Config.TPS),
	}
}

func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Enter() {
	g.accumulator = 0
}

func (g *GameState) Update(deltaTime float64) {
	if input.Pause() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	in := input.Read()
	g.accumulator += deltaTime
	for g.accumulator >= g.step {
		g.accumulator -= g.step
		g.game.Step(in)
		// Нажатия срабатывают один раз за кадр, даже если тиков несколько.
		in.Jump, in.Dash = false, false

		if g.game.Over() {
			g.sm.SetState(NewGameOverState(g.sm, g.env, g.game))
			return
		}
		if g.game.PendingLevelUps() > 0 {
			g.sm.SetState(NewLevelUpState(g.sm, g.env, g))
			return
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.Draw(g.env.Screen.Target(screen))
	g.env.HUD.Draw(screen, g.hudData())
}

func (g *GameState) hudData() ui.HUDData {
	p := g.game.Player()
	d := ui.HUDData{
		Health:    p.Health.Value,
		MaxHealth: p.Health.Max,
		Shielded:  p.Shielded(),
		Level:     p.Level,
		XP:        p.XP,
		XPToNext:  p.XPToNext,
		Wave:      g.game.WaveSystem.Number(),
		Kills:     g.game.Summary().Kills,
		Elapsed:   g.game.Elapsed(),
	}
	if w := g.game.WaveSystem.Wave(); w != nil {
		d.Boss = w.Boss
	}
	if g.game.WaveSystem.Phase() == system.WaveCooldown {
		d.Cooldown = float64(g.game.WaveSystem.CooldownLeft()) / float64(g.env.Config.TPS)
	}
	for _, id := range p.SkillOrder {
		name := id
		if def, ok := g.env.Library.Skill(id); ok {
			name = def.Name
		}
		d.Skills = append(d.Skills, skillLabel(name, p.Skills[id].Level))
	}
	return d
}

func (g *GameState) Exit() {}
