package defs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	lib, err := LoadDefault()
	require.NoError(t, err)

	assert.Len(t, lib.Waves.Waves, 7)
	assert.Len(t, lib.Enemies, 8)
	assert.Contains(t, lib.Skills, "divine_lance")
	assert.Equal(t, "divine_lance", lib.SkillOrder[0])
	assert.Len(t, lib.Loot, 3)

	chaser, ok := lib.Enemy("chaser")
	require.True(t, ok)
	assert.Equal(t, BehaviorChase, chaser.Behavior)
	assert.Equal(t, Color{R: 0xFF, G: 0x4D, B: 0x4D, A: 0xFF}, chaser.Color)

	reaper := lib.Enemies["reaper"]
	assert.True(t, reaper.ExplodesOnDeath)
	assert.Equal(t, 70.0, reaper.ExplosionRadius)
	assert.Equal(t, BehaviorKamikaze, reaper.Behavior)

	for _, w := range lib.Waves.Waves {
		for _, e := range w.Enemies {
			assert.Contains(t, lib.Enemies, e.Type, "волна ссылается на неизвестный тип")
		}
	}
	for _, id := range lib.Waves.Procedural.Types {
		assert.Contains(t, lib.Enemies, id)
	}

	require.Len(t, lib.Boss.Phases, 2)
	assert.Equal(t, "barrage", lib.Boss.Phases[1].Opening)
}

func TestLinearStat_ChaserFormula(t *testing.T) {
	lib, err := LoadDefault()
	require.NoError(t, err)
	chaser := lib.Enemies["chaser"]

	// 25 + floor(35/10)*3 + 4*1.5
	assert.InDelta(t, 40.0, chaser.Health.At(35, 4), 1e-9)
	// 1.3 + 30/150 + 2*0.01
	assert.InDelta(t, 1.52, chaser.Speed.At(30, 2), 1e-9)
}

func TestLinearStat_ZeroDivisorsIgnored(t *testing.T) {
	s := LinearStat{Base: 3, PerWave: 2}
	assert.Equal(t, 3.0, s.At(1000, 0))
	assert.Equal(t, 9.0, s.At(1000, 3))
}

func TestSkillLevel_Clamps(t *testing.T) {
	def := SkillDefinition{Levels: []SkillLevel{{Damage: 1}, {Damage: 2}}}
	assert.Equal(t, 1.0, def.Level(0).Damage)
	assert.Equal(t, 2.0, def.Level(2).Damage)
	assert.Equal(t, 2.0, def.Level(9).Damage)
	assert.Equal(t, SkillLevel{}, SkillDefinition{}.Level(1))
	assert.Equal(t, 1, SkillDefinition{}.MaxLevel())
}

func TestProceduralWaves(t *testing.T) {
	lib, err := LoadDefault()
	require.NoError(t, err)
	p := lib.Waves.Procedural

	assert.Equal(t, 3, p.TypeCount(8))
	assert.Equal(t, 5, p.TypeCount(100))
	assert.Equal(t, 5+6, p.Count(8))
	assert.Equal(t, 84, p.Interval(8))
	assert.Equal(t, 20, p.Interval(60))
	assert.InDelta(t, 0.06, p.EliteChance(8, 7), 1e-9)
	assert.InDelta(t, 0.25, p.EliteChance(200, 7), 1e-9)
}

func TestLibrary_MissingLookupWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	lib, err := LoadDefault()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, ok := lib.Enemy("ghost")
		assert.False(t, ok)
		_, ok = lib.Skill("ghost")
		assert.False(t, ok)
	}

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "definition not found"))
	assert.Contains(t, out, "kind=enemy")
	assert.Contains(t, out, "kind=skill")
}

func TestLoad_Errors(t *testing.T) {
	base := func() fstest.MapFS {
		return fstest.MapFS{
			enemiesFile:  {Data: []byte("enemies: [{id: a}]\nboss: {phases: [{patterns: [chase]}]}\n")},
			wavesFile:    {Data: []byte("waves: []\n")},
			skillsFile:   {Data: []byte("skills: []\n")},
			powerupsFile: {Data: []byte("powerups: []\n")},
		}
	}

	lib, err := Load(base())
	require.NoError(t, err)
	assert.Equal(t, BehaviorChase, lib.Enemies["a"].Behavior, "поведение по умолчанию")

	missing := base()
	delete(missing, skillsFile)
	_, err = Load(missing)
	assert.ErrorContains(t, err, "reading skills.yaml")

	dup := base()
	dup[enemiesFile] = &fstest.MapFile{Data: []byte("enemies: [{id: a}, {id: a}]\nboss: {phases: [{}]}\n")}
	_, err = Load(dup)
	assert.ErrorContains(t, err, "duplicate enemy")

	badColor := base()
	badColor[enemiesFile] = &fstest.MapFile{Data: []byte("enemies: [{id: a, color: \"#12\"}]\n")}
	_, err = Load(badColor)
	assert.ErrorContains(t, err, "invalid color")

	noBoss := base()
	noBoss[enemiesFile] = &fstest.MapFile{Data: []byte("enemies: []\n")}
	_, err = Load(noBoss)
	assert.ErrorContains(t, err, "boss needs at least one phase")
}

func TestUpgradeEffect(t *testing.T) {
	lib, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, 0.0, lib.UpgradeEffect("max_health", 0))
	assert.Equal(t, 20.0, lib.UpgradeEffect("max_health", 2))
	assert.Equal(t, 30.0, lib.UpgradeEffect("max_health", 7))
	assert.InDelta(t, 0.05, lib.UpgradeEffect("damage_boost", 1), 1e-9)
}
