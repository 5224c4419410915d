package entity

import "go-survivor/internal/component"

// Motion — как игрок сейчас перемещается. Ровно один вариант активен.
type Motion interface{ isMotion() }

// Grounded — стоит на платформе.
type Grounded struct{}

// Airborne — в прыжке или падении.
type Airborne struct{}

// Dashing — рывок: Timer тиков в направлении Dir, гравитация не действует.
type Dashing struct {
	Timer int
	Dir   component.Vec2
}

func (Grounded) isMotion() {}
func (Airborne) isMotion() {}
func (Dashing) isMotion()  {}

// Guard — защитное состояние игрока.
type Guard interface{ isGuard() }

// Exposed — урон проходит.
type Exposed struct{}

// Shielded — щит поглощает ровно одно попадание.
type Shielded struct{ Timer int }

// Invulnerable — окно неуязвимости после полученного урона.
type Invulnerable struct{ Timer int }

func (Exposed) isGuard()      {}
func (Shielded) isGuard()     {}
func (Invulnerable) isGuard() {}

// DamageOutcome — чем закончилась попытка нанести урон игроку.
type DamageOutcome int

const (
	DamageIgnored  DamageOutcome = iota // игрок уже мёртв или урон нулевой
	DamageAbsorbed                      // рывок или неуязвимость
	DamageShielded                      // щит поглотил удар и исчез
	DamageTaken
	DamageFatal
)

func (o DamageOutcome) String() string {
	switch o {
	case DamageAbsorbed:
		return "absorbed"
	case DamageShielded:
		return "shielded"
	case DamageTaken:
		return "taken"
	case DamageFatal:
		return "fatal"
	default:
		return "ignored"
	}
}

// tickGuard отсчитывает таймер защиты и возвращает её в Exposed.
func tickGuard(g Guard) Guard {
	switch s := g.(type) {
	case Shielded:
		s.Timer--
		if s.Timer <= 0 {
			return Exposed{}
		}
		return s
	case Invulnerable:
		s.Timer--
		if s.Timer <= 0 {
			return Exposed{}
		}
		return s
	}
	return g
}
