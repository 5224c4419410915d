package state

import (
	"golang.org/x/image/font"

	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
	"go-survivor/internal/render"
	"go-survivor/internal/store"
	"go-survivor/internal/ui"
)

// Env — общие зависимости всех состояний окна.
type Env struct {
	Config  config.Sim
	Library *defs.Library
	Store   store.Recorder
	Cues    event.CueSink

	Screen *render.Screen
	Face   font.Face
	HUD    *ui.HUD
	Cards  *ui.SkillCards
}

// NewEnv собирает окружение с растровым шрифтом поверхности.
func NewEnv(cfg config.Sim, lib *defs.Library, rec store.Recorder, cues event.CueSink) *Env {
	screen := render.NewScreen()
	return &Env{
		Config:  cfg,
		Library: lib,
		Store:   rec,
		Cues:    cues,
		Screen:  screen,
		Face:    screen.Face,
		HUD:     ui.NewHUD(screen.Face),
		Cards:   ui.NewSkillCards(screen.Face),
	}
}
