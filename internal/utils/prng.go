// internal/utils/prng.go
package utils

import (
	"math/rand/v2"
	"time"

	"go-survivor/internal/defs"
)

// PRNGService — обёртка над генератором случайных чисел,
// чтобы весь забег воспроизводился по одному сиду.
type PRNGService struct {
	rng  *rand.Rand
	seed uint64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed uint64) *PRNGService {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PRNGService{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() uint64 { return s.seed }

// Intn возвращает случайное целое число в диапазоне [0, n). При n <= 0 возвращает 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.IntN(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance — true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Spread возвращает число в [-width/2, width/2).
func (s *PRNGService) Spread(width float64) float64 {
	return (s.rng.Float64() - 0.5) * width
}

// IntRange — случайное целое в [r.Min, r.Max].
func (s *PRNGService) IntRange(r defs.IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + s.rng.IntN(r.Max-r.Min+1)
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы выпадения.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += max(entry.Weight, 0)
	}

	if totalWeight <= 0 {
		return entries[0].ID
	}

	r := s.rng.IntN(totalWeight)
	upto := 0
	for _, entry := range entries {
		w := max(entry.Weight, 0)
		if upto+w > r {
			return entry.ID
		}
		upto += w
	}

	return entries[len(entries)-1].ID
}
