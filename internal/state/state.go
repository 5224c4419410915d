// internal/state/state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — экран приложения: меню, забег, пауза, выбор навыка, итог.
// Update получает реальное время кадра, симуляция сама решает, сколько тиков сделать.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны. Переход из Update вступает в силу сразу,
// следующий Draw рисует уже новое состояние.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState вызывает Exit у старого состояния и Enter у нового.
// Возврат в ранее покинутое состояние (например, из паузы) снова вызывает его Enter.
func (sm *StateMachine) SetState(next State) {
	prev := sm.current
	if prev != nil {
		prev.Exit()
	}
	sm.current = next
	slog.Debug("state changed", "from", stateName(prev), "to", stateName(next))
	if next != nil {
		next.Enter()
	}
}

func (sm *StateMachine) Current() State { return sm.current }

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func stateName(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
