// internal/input/keyboard.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survivor/internal/entity"
)

// Раскладка: WASD или стрелки, прыжок — W, стрелка вверх или пробел, рывок — Shift.
var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	upKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	jumpKeys  = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace}
	dashKeys  = []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}

	choiceKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
)

// Read собирает намерение игрока на текущий тик.
func Read() entity.Input {
	var in entity.Input
	switch {
	case anyPressed(rightKeys):
		in.Move.X = 1
	case anyPressed(leftKeys):
		in.Move.X = -1
	}
	// Вертикаль нужна только для направления рывка.
	switch {
	case anyPressed(downKeys):
		in.Move.Y = 1
	case anyPressed(upKeys):
		in.Move.Y = -1
	}
	in.Jump = anyJustPressed(jumpKeys)
	in.Dash = anyJustPressed(dashKeys)
	return in
}

// Pause — нажат ли Escape или P в этом тике.
func Pause() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// Confirm — Enter или пробел.
func Confirm() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// Choice возвращает номер выбранной цифровой клавиши с нуля или -1.
func Choice(n int) int {
	for i, k := range choiceKeys[:min(n, len(choiceKeys))] {
		if inpututil.IsKeyJustPressed(k) {
			return i
		}
	}
	return -1
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
