// internal/ui/player_level_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y     float32
	fontFace font.Face
}

const (
	xpBarWidth  = 220
	xpBarHeight = 8
	borderWidth = 1
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, fontFace font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level int, currentXP, xpToNext float64) {
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, config.IndicatorStroke, true)

	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * utils.Ratio(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarColor, true)
	}

	label := "LV " + strconv.Itoa(level)
	text.Draw(screen, label, i.fontFace, int(i.X)+xpBarWidth+8, int(i.Y)+xpBarHeight, config.TextLightColor)
}
