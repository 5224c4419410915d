// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-survivor/internal/input"
	"go-survivor/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает забег поверх последнего кадра.
type PauseState struct {
	sm            *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, previousState: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if input.Pause() {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	ui.Banner(screen, s.previousState.env.Face, "PAUSED", "press P or Esc to resume")
}

func (s *PauseState) Exit() {}
