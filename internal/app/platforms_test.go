package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

func TestGeneratePlatforms(t *testing.T) {
	cfg := config.DefaultSim().World

	platforms := GeneratePlatforms(cfg, utils.NewPRNGService(1))

	require.Len(t, platforms, cfg.Platforms+1)
	ground := platforms[0]
	assert.Equal(t, -cfg.Width, ground.X)
	assert.Equal(t, cfg.GroundY, ground.Y)
	assert.Equal(t, cfg.Width*2, ground.W)

	floating := platforms[1:]
	for i, p := range floating {
		assert.GreaterOrEqual(t, p.X, -cfg.Width/2)
		assert.LessOrEqual(t, p.X, cfg.Width/2)
		assert.LessOrEqual(t, p.Y, cfg.GroundY-platformMinRise)
		assert.Greater(t, p.Y, cfg.GroundY-platformMinRise-platformRiseSpread)
		assert.False(t, crowded(p, floating[:i]), "платформа %d слишком близко к соседям", i)
	}
}

func TestGeneratePlatforms_SameSeedSameLayout(t *testing.T) {
	cfg := config.DefaultSim().World

	a := GeneratePlatforms(cfg, utils.NewPRNGService(9))
	b := GeneratePlatforms(cfg, utils.NewPRNGService(9))

	assert.Equal(t, a, b)
}

func TestGeneratePlatforms_GivesUpWhenWorldIsFull(t *testing.T) {
	cfg := config.DefaultSim().World
	cfg.Width = 400
	cfg.Platforms = 100

	platforms := GeneratePlatforms(cfg, utils.NewPRNGService(1))

	assert.Less(t, len(platforms), cfg.Platforms+1)
	assert.NotEmpty(t, platforms)
}
