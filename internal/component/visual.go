// internal/component/visual.go
package component

// HitFlash — сколько тиков сущность рисуется цветом урона.
type HitFlash struct {
	Timer int
}

func (f *HitFlash) Trigger(ticks int) { f.Timer = ticks }

// Tick уменьшает таймер и сообщает, активна ли вспышка.
func (f *HitFlash) Tick() bool {
	if f.Timer <= 0 {
		return false
	}
	f.Timer--
	return true
}

func (f HitFlash) Active() bool { return f.Timer > 0 }
