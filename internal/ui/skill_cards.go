// internal/ui/skill_cards.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survivor/internal/config"
)

const (
	cardWidth   = 260
	cardHeight  = 150
	cardGap     = 30
	cardPadding = 14
)

var (
	cardBgColor     = color.RGBA{R: 20, G: 20, B: 30, A: 230}
	cardBorderColor = color.RGBA{R: 70, G: 100, B: 120, A: 255}
	overlayColor    = color.RGBA{A: 150}
)

// SkillCard — один вариант выбора при повышении уровня.
type SkillCard struct {
	Name  string
	Level int // уровень, который получит навык
	Desc  string
}

// SkillCards рисует карточки выбора навыка по центру экрана.
type SkillCards struct {
	fontFace font.Face
}

func NewSkillCards(fontFace font.Face) *SkillCards {
	return &SkillCards{fontFace: fontFace}
}

// Draw затемняет экран и рисует карточки с подсказкой клавиш.
func (sc *SkillCards) Draw(screen *ebiten.Image, title string, cards []SkillCard) {
	Overlay(screen)

	total := float32(len(cards)*cardWidth + max(len(cards)-1, 0)*cardGap)
	startX := (float32(config.ScreenWidth) - total) / 2
	y := float32(config.ScreenHeight-cardHeight) / 2

	drawOutlined(screen, sc.fontFace, title, config.ScreenWidth/2, float64(y)-40, config.TextLightColor, config.TextDarkColor)

	lineHeight := sc.fontFace.Metrics().Height.Ceil()
	for i, card := range cards {
		x := startX + float32(i)*(cardWidth+cardGap)
		vector.DrawFilledRect(screen, x, y, cardWidth, cardHeight, cardBgColor, false)
		vector.StrokeRect(screen, x, y, cardWidth, cardHeight, 2, cardBorderColor, false)

		header := fmt.Sprintf("%d. %s", i+1, card.Name)
		if card.Level > 0 {
			header += fmt.Sprintf(" (lv %d)", card.Level)
		}
		tx, ty := int(x)+cardPadding, int(y)+cardPadding+lineHeight
		text.Draw(screen, header, sc.fontFace, tx, ty, config.TextLightColor)

		for j, line := range wrap(sc.fontFace, card.Desc, cardWidth-cardPadding*2) {
			text.Draw(screen, line, sc.fontFace, tx, ty+(j+2)*lineHeight, config.TextLightColor)
		}
	}
}

// Overlay затемняет весь экран.
func Overlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)
}

// Banner рисует крупную надпись по центру и подпись под ней.
func Banner(screen *ebiten.Image, face font.Face, title, subtitle string) {
	Overlay(screen)
	y := float64(config.ScreenHeight) / 2
	drawOutlined(screen, face, title, config.ScreenWidth/2, y, config.TextLightColor, config.TextDarkColor)
	if subtitle != "" {
		drawOutlined(screen, face, subtitle, config.ScreenWidth/2, y+float64(face.Metrics().Height.Ceil())*2, config.TextLightColor, config.TextDarkColor)
	}
}

// wrap разбивает текст по словам под ширину width.
func wrap(face font.Face, s string, width int) []string {
	var lines []string
	line := ""
	word := ""
	flush := func() {
		if word == "" {
			return
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && text.BoundString(face, candidate).Dx() > width {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
		word = ""
	}
	for _, r := range s {
		if r == ' ' {
			flush()
			continue
		}
		word += string(r)
	}
	flush()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
