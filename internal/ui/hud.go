package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-survivor/internal/config"
)

const hudMargin = 20

// HUDData — снимок состояния забега для HUD.
type HUDData struct {
	Health, MaxHealth float64
	Shielded          bool
	Level             int
	XP, XPToNext      float64
	Wave              int
	Boss              bool
	// Cooldown — секунды до следующей волны, 0 во время волны.
	Cooldown float64
	Kills    int
	Elapsed  float64
	Skills   []string
}

// HUD собирает индикаторы поверх игрового поля.
type HUD struct {
	health   *PlayerHealthIndicator
	level    *PlayerLevelIndicator
	wave     *WaveIndicator
	fontFace font.Face
}

func NewHUD(fontFace font.Face) *HUD {
	return &HUD{
		health:   NewPlayerHealthIndicator(hudMargin, hudMargin, fontFace),
		level:    NewPlayerLevelIndicator(hudMargin, hudMargin+healthBarHeight+8, fontFace),
		wave:     NewWaveIndicator(config.ScreenWidth/2, hudMargin+10, fontFace),
		fontFace: fontFace,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	h.health.Draw(screen, d.Health, d.MaxHealth, d.Shielded)
	h.level.Draw(screen, d.Level, d.XP, d.XPToNext)
	h.wave.Draw(screen, d.Wave, d.Boss, d.Cooldown)

	secs := int(d.Elapsed)
	stats := fmt.Sprintf("%02d:%02d  kills %d", secs/60, secs%60, d.Kills)
	w := text.BoundString(h.fontFace, stats).Dx()
	text.Draw(screen, stats, h.fontFace, config.ScreenWidth-hudMargin-w, hudMargin+10, config.TextLightColor)

	lineHeight := h.fontFace.Metrics().Height.Ceil()
	top := hudMargin + healthBarHeight + xpBarHeight + 30
	for i, s := range d.Skills {
		text.Draw(screen, s, h.fontFace, hudMargin, top+i*lineHeight, config.TextLightColor)
	}
}
