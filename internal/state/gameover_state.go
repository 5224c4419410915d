package state

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"go-survivor/internal/input"
	"go-survivor/internal/ui"
)

const recordTimeout = 3 * time.Second

var _ State = (*GameOverState)(nil)

// GameOverState сохраняет итог забега и предлагает начать заново.
type GameOverState struct {
	sm      *StateMachine
	env     *Env
	game    *app.Game
	summary event.RunSummary
}

func NewGameOverState(sm *StateMachine, env *Env, g *app.Game) *GameOverState {
	return &GameOverState{sm: sm, env: env, game: g}
}

func (s *GameOverState) Enter() {
	s.summary = s.game.Summary()
	if s.env.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := s.env.Store.Record(ctx, s.summary); err != nil {
		slog.Error("recording run", "seed", s.summary.Seed, "error", err)
	}
}

func (s *GameOverState) Update(deltaTime float64) {
	if input.Confirm() {
		s.sm.SetState(NewGameState(s.sm, s.env))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.game.Draw(s.env.Screen.Target(screen))
	sub := fmt.Sprintf("%s  wave %d  level %d  kills %d  gems %d  -  Enter to retry",
		formatTime(s.summary.ElapsedTime), s.summary.Wave, s.summary.Level, s.summary.Kills, s.summary.Gems)
	ui.Banner(screen, s.env.Face, "GAME OVER", sub)
}

func (s *GameOverState) Exit() {}
