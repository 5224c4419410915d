package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
	assert.InDelta(t, -595.0, Lerp(-600, -500, 0.05), 1e-9)
	assert.InDelta(t, 3.0, Lerp(3, 7, 0), 1e-9)
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		v, total float64
		want     float64
	}{
		{"half", 40, 80, 0.5},
		{"over", 120, 100, 1},
		{"negative", -5, 100, 0},
		{"no total", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.v, tt.total), 1e-9)
		})
	}
}
