// internal/defs/skills.go
package defs

// SkillLevel — параметры одного уровня навыка. Каждый навык читает только свои поля.
type SkillLevel struct {
	Desc               string  `yaml:"desc"`
	Count              int     `yaml:"count"`
	Damage             float64 `yaml:"damage"`
	Pierce             int     `yaml:"pierce"`
	Speed              float64 `yaml:"speed"`
	Chains             int     `yaml:"chains"`
	ChainRadius        float64 `yaml:"chain_radius"`
	Radius             float64 `yaml:"radius"`
	Duration           int     `yaml:"duration"`
	Force              float64 `yaml:"force"`
	CollectRadiusBonus float64 `yaml:"collect_radius_bonus"`
	RegenPerSecond     float64 `yaml:"regen_per_second"`
	ParticleCount      int     `yaml:"particle_count"`
	Width              float64 `yaml:"width"`
	Length             float64 `yaml:"length"`
	SlowFactor         float64 `yaml:"slow_factor"`
	Jumps              int     `yaml:"jumps"`
	DamagePerTick      float64 `yaml:"damage_per_tick"`
}

// SkillDefinition — запись из базы навыков.
type SkillDefinition struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Icon     string    `yaml:"icon"`
	Type     SkillType `yaml:"type"`
	Cooldown int       `yaml:"cooldown"`
	// Instant-навыки срабатывают при выборе и не попадают в список навыков игрока.
	Instant bool         `yaml:"instant"`
	Desc    string       `yaml:"desc"`
	Levels  []SkillLevel `yaml:"levels"`
}

// Level возвращает параметры уровня n (с единицы), зажимая n в допустимый диапазон.
func (d SkillDefinition) Level(n int) SkillLevel {
	if len(d.Levels) == 0 {
		return SkillLevel{}
	}
	n = max(1, min(n, len(d.Levels)))
	return d.Levels[n-1]
}

// MaxLevel — 1 для навыков без уровней.
func (d SkillDefinition) MaxLevel() int {
	return max(1, len(d.Levels))
}
