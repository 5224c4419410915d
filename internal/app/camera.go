package app

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"go-survivor/internal/spatial"
	"go-survivor/internal/utils"
)

// Camera плавно догоняет игрока и трясётся по событию ScreenShake.
// X, Y — левый верхний угол видимой области в мировых координатах.
type Camera struct {
	X, Y          float64
	Width, Height float64

	lerp             float64
	shake            event.ShakeData
	offsetX, offsetY float64
}

// NewCamera центрирует камеру на target.
func NewCamera(cfg config.CameraConfig, target component.Vec2) *Camera {
	c := &Camera{Width: cfg.Width, Height: cfg.Height, lerp: cfg.Lerp}
	c.X = target.X - c.Width/2
	c.Y = target.Y - c.Height/2
	return c
}

// Follow сдвигает камеру к центру на target на долю lerp.
func (c *Camera) Follow(target component.Vec2) {
	c.X = utils.Lerp(c.X, target.X-c.Width/2, c.lerp)
	c.Y = utils.Lerp(c.Y, target.Y-c.Height/2, c.lerp)
}

// Update выбирает смещение тряски на этот тик и гасит её по таймеру.
func (c *Camera) Update(rng *utils.PRNGService) {
	if c.shake.Duration <= 0 {
		c.offsetX, c.offsetY = 0, 0
		return
	}
	c.offsetX = rng.Spread(c.shake.Intensity)
	c.offsetY = rng.Spread(c.shake.Intensity)
	c.shake.Duration--
	if c.shake.Duration == 0 {
		c.shake.Intensity = 0
	}
}

// Shaking — идёт ли тряска.
func (c *Camera) Shaking() bool { return c.shake.Duration > 0 }

// OnEvent заменяет текущую тряску новой.
func (c *Camera) OnEvent(e event.Event) {
	if e.Type != event.ScreenShake {
		return
	}
	if data, ok := e.Data.(event.ShakeData); ok {
		c.shake = data
	}
}

// View — видимая область без учёта тряски.
func (c *Camera) View() spatial.Rect {
	return spatial.Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

func (c *Camera) Component() component.Camera {
	return component.Camera{
		X:       c.X,
		Y:       c.Y,
		Width:   c.Width,
		Height:  c.Height,
		OffsetX: c.offsetX,
		OffsetY: c.offsetY,
	}
}
