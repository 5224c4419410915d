// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

const (
	healthBarWidth  = 220
	healthBarHeight = 14
)

// PlayerHealthIndicator отображает здоровье игрока полосой с числом.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, fontFace font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw рисует полосу здоровья. Щит обводит её цветом щита.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float64, shielded bool) {
	ratio := utils.Ratio(health, maxHealth)
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.TextDarkColor, false)
	if fill := float32(float64(healthBarWidth-borderWidth*2) * ratio); fill > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fill, healthBarHeight-borderWidth*2, config.HealthBarColor, false)
	}

	stroke := config.IndicatorStroke
	width := float32(borderWidth)
	if shielded {
		stroke = config.ShieldColor
		width = 2
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, width, stroke, true)

	label := fmt.Sprintf("%.0f/%.0f", health, maxHealth)
	text.Draw(screen, label, i.fontFace, int(i.X)+healthBarWidth+8, int(i.Y)+healthBarHeight-2, config.TextLightColor)
}
