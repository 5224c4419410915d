package entity

import "math"

const (
	damageNumberLife = 60
	damageNumberRise = -2.0
	damageNumberFade = 0.015
)

// DamageNumber — всплывающая цифра урона.
type DamageNumber struct {
	Base
	Amount int
	Alpha  float64
	Life   int
}

func (n *DamageNumber) Init(x, y, amount float64) {
	n.Reset()
	n.place(x, y, 0)
	n.Amount = int(math.Round(amount))
	n.Alpha = 1
	n.Life = damageNumberLife
}

func (n *DamageNumber) Reset() {
	n.resetBase()
	n.Amount, n.Life = 0, 0
	n.Alpha = 0
}

func (n *DamageNumber) Update() {
	if n.Dead {
		return
	}
	n.Y += damageNumberRise
	n.Alpha = max(0, n.Alpha-damageNumberFade)
	n.Life--
	if n.Life <= 0 {
		n.Dead = true
	}
}
