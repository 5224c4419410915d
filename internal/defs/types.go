// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Behavior — поведение врага, выбирается один раз при появлении.
type Behavior string

const (
	BehaviorChase    Behavior = "chase"
	BehaviorShooter  Behavior = "shooter"
	BehaviorHealer   Behavior = "healer"
	BehaviorSummoner Behavior = "summoner"
	BehaviorKamikaze Behavior = "kamikaze"
	BehaviorBoss     Behavior = "boss"
)

// SkillType группирует навыки по способу срабатывания.
type SkillType string

const (
	SkillProjectile SkillType = "projectile"
	SkillOrbital    SkillType = "orbital"
	SkillAura       SkillType = "aura"
	SkillPassive    SkillType = "passive"
	SkillUtility    SkillType = "utility"
)

// Color — цвет в таблицах, записывается как "#RRGGBB" или "#RRGGBBAA".
type Color color.RGBA

// UnmarshalYAML разбирает шестнадцатеричную запись цвета.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) RGBA() color.RGBA { return color.RGBA(c) }

// ParseColor принимает "#RRGGBB" или "#RRGGBBAA".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// LinearStat — характеристика, растущая со временем забега и номером волны:
//
//	Base + t/TimeDivisor + floor(t/Step)*PerStep + wave*PerWave
//
// Нулевые делители отключают соответствующее слагаемое.
type LinearStat struct {
	Base        float64 `yaml:"base"`
	TimeDivisor float64 `yaml:"time_divisor"`
	Step        float64 `yaml:"step"`
	PerStep     float64 `yaml:"per_step"`
	PerWave     float64 `yaml:"per_wave"`
}

// At вычисляет значение для elapsed секунд и волны wave.
func (s LinearStat) At(elapsed float64, wave int) float64 {
	v := s.Base + float64(wave)*s.PerWave
	if s.TimeDivisor > 0 {
		v += elapsed / s.TimeDivisor
	}
	if s.Step > 0 {
		v += math.Floor(elapsed/s.Step) * s.PerStep
	}
	return v
}

// IntRange — включительный диапазон целых.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}
