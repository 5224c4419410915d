package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-survivor/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float64
	Color        color.Color
	OutlineColor color.Color
	fontFace     font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextLightColor,
		OutlineColor: config.TextDarkColor,
		fontFace:     fontFace,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Между волнами под номером идёт отсчёт.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int, boss bool, cooldownSeconds float64) {
	if wave <= 0 {
		return
	}
	label := toRoman(wave)
	textColor := i.Color
	if boss {
		textColor = config.BossWaveColor
	}
	drawOutlined(screen, i.fontFace, label, i.X, i.Y, textColor, i.OutlineColor)

	if cooldownSeconds > 0 {
		next := fmt.Sprintf("next wave in %.0f", cooldownSeconds)
		y := i.Y + float64(i.fontFace.Metrics().Height.Ceil()) + 4
		drawOutlined(screen, i.fontFace, next, i.X, y, i.Color, i.OutlineColor)
	}
}

// drawOutlined рисует строку с центром по x и обводкой в один пиксель.
func drawOutlined(screen *ebiten.Image, face font.Face, s string, x, y float64, fill, outline color.Color) {
	w := text.BoundString(face, s).Dx()
	left := int(x) - w/2
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, left+dx, int(y)+dy, outline)
		}
	}
	text.Draw(screen, s, face, left, int(y), fill)
}
