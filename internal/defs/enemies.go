// internal/defs/enemies.go
package defs

import "go-survivor/internal/component"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID       string          `yaml:"id"`
	Behavior Behavior        `yaml:"behavior"`
	Shape    component.Shape `yaml:"shape"`
	Color    Color           `yaml:"color"`
	Radius   float64         `yaml:"radius"`
	Damage   float64         `yaml:"damage"`
	XP       float64         `yaml:"xp"`
	Speed    LinearStat      `yaml:"speed"`
	Health   LinearStat      `yaml:"health"`

	ExplodesOnDeath bool    `yaml:"explodes_on_death"`
	ExplosionRadius float64 `yaml:"explosion_radius"`
	// TriggerRange — дистанция сверх радиуса, на которой камикадзе взрывается.
	TriggerRange float64 `yaml:"trigger_range"`

	Ranged *RangedAttack `yaml:"ranged,omitempty"`
	Heal   *HealAura     `yaml:"heal,omitempty"`
	Summon *SummonDef    `yaml:"summon,omitempty"`
}

// RangedAttack — стрельба по игроку раз в Cooldown тиков.
type RangedAttack struct {
	Cooldown         int     `yaml:"cooldown"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileDamage float64 `yaml:"projectile_damage"`
}

// HealAura лечит союзников в радиусе на Amount.At(t, wave).
type HealAura struct {
	Cooldown int        `yaml:"cooldown"`
	Radius   float64    `yaml:"radius"`
	Amount   LinearStat `yaml:"amount"`
}

type SummonDef struct {
	Cooldown int      `yaml:"cooldown"`
	Types    []string `yaml:"types"`
	Scatter  float64  `yaml:"scatter"`
	Elite    bool     `yaml:"elite"`
}

// BossDefinition описывает босса и его фазовый автомат атак.
type BossDefinition struct {
	ID             string          `yaml:"id"`
	Shape          component.Shape `yaml:"shape"`
	Color          Color           `yaml:"color"`
	Radius         float64         `yaml:"radius"`
	Damage         float64         `yaml:"damage"`
	XP             float64         `yaml:"xp"`
	Health         LinearStat      `yaml:"health"`
	Speed          LinearStat      `yaml:"speed"`
	KnockbackDecay float64         `yaml:"knockback_decay"`
	Gems           IntRange        `yaml:"gems"`
	SpawnOffsetX   float64         `yaml:"spawn_offset_x"`
	SpawnOffsetY   float64         `yaml:"spawn_offset_y"`

	PatternDuration int           `yaml:"pattern_duration"`
	Phases          []BossPhase   `yaml:"phases"`
	Ring            BossShot      `yaml:"ring"`
	Barrage         BossShot      `yaml:"barrage"`
	Summon          BossSummonDef `yaml:"summon"`
}

// BossPhase включается, когда доля здоровья опускается ниже HealthBelow.
type BossPhase struct {
	HealthBelow     float64 `yaml:"health_below"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	// Opening — паттерн, принудительно выбираемый при входе в фазу.
	Opening  string   `yaml:"opening"`
	Patterns []string `yaml:"patterns"`
}

type BossShot struct {
	Every  int     `yaml:"every"`
	Count  int     `yaml:"count"`
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
	Spread float64 `yaml:"spread"`
}

type BossSummonDef struct {
	// At — значение таймера паттерна, на котором происходит призыв.
	At      int      `yaml:"at"`
	Types   []string `yaml:"types"`
	Elite   bool     `yaml:"elite"`
	Scatter float64  `yaml:"scatter"`
}

// EnemyTable — содержимое enemies.yaml.
type EnemyTable struct {
	EliteGems IntRange          `yaml:"elite_gems"`
	Enemies   []EnemyDefinition `yaml:"enemies"`
	Boss      BossDefinition    `yaml:"boss"`
}
