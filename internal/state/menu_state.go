// internal/state/menu_state.go
package state

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"go-survivor/internal/config"
	"go-survivor/internal/input"
	"go-survivor/internal/store"
	"go-survivor/internal/ui"
)

// MenuState — стартовый экран с рекордами.
type MenuState struct {
	sm      *StateMachine
	env     *Env
	records store.Records
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	return &MenuState{sm: sm, env: env}
}

func (m *MenuState) Enter() {
	if m.env.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	r, err := m.env.Store.Best(ctx)
	if err != nil {
		slog.Warn("loading records", "error", err)
		return
	}
	m.records = r
}

func (m *MenuState) Update(deltaTime float64) {
	if input.Confirm() {
		m.sm.SetState(NewGameState(m.sm, m.env))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	sub := "press Enter to start"
	if m.records.Runs > 0 {
		sub = fmt.Sprintf("best %s  wave %d  runs %d  kills %d  -  %s",
			formatTime(m.records.BestTime), m.records.BestWave, m.records.Runs, m.records.TotalKills, sub)
	}
	ui.Banner(screen, m.env.Face, "SURVIVOR", sub)
}

func (m *MenuState) Exit() {}
