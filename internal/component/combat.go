// internal/component/combat.go
package component

// Health — здоровье с ограничением снизу нулём и сверху максимумом.
type Health struct {
	Value float64
	Max   float64
}

// NewHealth создаёт полное здоровье.
func NewHealth(max float64) Health {
	return Health{Value: max, Max: max}
}

// Damage уменьшает здоровье, не опуская его ниже нуля.
// Возвращает фактически снятое количество.
func (h *Health) Damage(amount float64) float64 {
	if amount <= 0 || h.Value <= 0 {
		return 0
	}
	if amount > h.Value {
		amount = h.Value
	}
	h.Value -= amount
	return amount
}

// Heal восстанавливает здоровье, не превышая Max.
func (h *Health) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	h.Value = min(h.Max, h.Value+amount)
}

func (h Health) Depleted() bool { return h.Value <= 0 }

// Ratio — доля оставшегося здоровья в [0, 1].
func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// Knockback — импульс отбрасывания с затуханием.
type Knockback struct {
	Vel   Vec2
	Decay float64
	// Stop — порог, ниже которого импульс обнуляется.
	Stop float64
}

// Apply задаёт импульс силой force в направлении от источника к цели.
func (k *Knockback) Apply(source, target Vec2, force float64) {
	angle := target.Sub(source).Angle()
	k.Vel = FromAngle(angle, force)
}

// Step возвращает смещение за тик и затухает.
func (k *Knockback) Step() Vec2 {
	d := k.Vel
	k.Vel = k.Vel.Scale(k.Decay)
	if k.Vel.Len() < k.Stop {
		k.Vel = Vec2{}
	}
	return d
}

func (k Knockback) Magnitude() float64 { return k.Vel.Len() }
