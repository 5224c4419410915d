package pool

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	active bool
	value  int
	seen   map[int]struct{}
}

func newSlot() *slot { return &slot{seen: make(map[int]struct{})} }

func (s *slot) Active() bool     { return s.active }
func (s *slot) SetActive(v bool) { s.active = v }

func (s *slot) Reset() {
	s.value = 0
	clear(s.seen)
}

func TestNew_AllocatesInactive(t *testing.T) {
	p := New(newSlot, 5)

	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 0, p.ActiveCount())
	p.Each(func(s *slot) {
		assert.False(t, s.Active())
	})
}

func TestGet_GrowsWhenExhausted(t *testing.T) {
	p := New(newSlot, 2)

	a := p.Get(nil)
	b := p.Get(nil)
	c := p.Get(nil)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 3, p.ActiveCount())
	assert.True(t, a.Active())
	assert.True(t, b.Active())
	assert.True(t, c.Active())
	assert.NotSame(t, a, c)
}

func TestGet_ReusesReleased(t *testing.T) {
	p := New(newSlot, 1)

	first := p.Get(func(s *slot) { s.value = 7; s.seen[1] = struct{}{} })
	p.Release(first)

	second := p.Get(nil)
	require.Same(t, first, second)
	assert.Equal(t, 0, second.value)
	assert.Empty(t, second.seen, "набор попаданий должен быть пуст после Release")
	assert.Equal(t, 1, p.Len())
}

func TestRelease_Idempotent(t *testing.T) {
	p := New(newSlot, 1)
	s := p.Get(func(s *slot) { s.value = 3 })

	p.Release(s)
	s.value = 42 // чужая запись после освобождения
	p.Release(s)

	assert.False(t, s.Active())
	assert.Equal(t, 42, s.value, "повторный Release не должен вызывать Reset")
}

func TestReleaseAll(t *testing.T) {
	p := New(newSlot, 0)
	for i := 0; i < 4; i++ {
		p.Get(nil)
	}
	p.ReleaseAll()
	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 4, p.Len())
}

func TestPool_RandomSequenceKeepsInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	p := New(newSlot, 3)
	var live []*slot

	for step := 0; step < 500; step++ {
		if len(live) == 0 || rng.IntN(2) == 0 {
			v := step
			s := p.Get(func(s *slot) { s.value = v })
			for _, other := range live {
				require.NotSame(t, other, s, "активный экземпляр выдан повторно")
			}
			live = append(live, s)
		} else {
			i := rng.IntN(len(live))
			p.Release(live[i])
			live = append(live[:i], live[i+1:]...)
		}
		require.Equal(t, len(live), p.ActiveCount())
	}
}
