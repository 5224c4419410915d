// internal/utils/math.go
package utils

// Lerp сдвигает from к to на долю t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Ratio — доля v от total в [0, 1]; при total <= 0 возвращает 0.
// Так заполняются полосы здоровья и опыта.
func Ratio(v, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return min(max(v/total, 0), 1)
}
