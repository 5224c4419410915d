// internal/defs/loot_tables.go
package defs

// LootEntry — одна запись в таблице выпадения.
// ID — идентификатор усиления, Weight — его относительный шанс.
type LootEntry struct {
	ID     string `yaml:"id"`
	Weight int    `yaml:"weight"`
}

// PowerUpDefinition описывает эффект подбираемого усиления.
type PowerUpDefinition struct {
	ID        string  `yaml:"id"`
	Weight    int     `yaml:"weight"`
	Color     Color   `yaml:"color"`
	Message   string  `yaml:"message"`
	Damage    float64 `yaml:"damage"`
	Knockback float64 `yaml:"knockback"` // множитель базовой силы отбрасывания
	HealRatio float64 `yaml:"heal_ratio"`
	Duration  int     `yaml:"duration"`
}

// UpgradeDefinition — постоянное улучшение, покупаемое между забегами.
type UpgradeDefinition struct {
	ID     string         `yaml:"id"`
	Name   string         `yaml:"name"`
	Levels []UpgradeLevel `yaml:"levels"`
}

type UpgradeLevel struct {
	Cost   int     `yaml:"cost"`
	Effect float64 `yaml:"effect"`
}

// Effect возвращает эффект купленного уровня; 0 — не куплено.
func (d UpgradeDefinition) Effect(level int) float64 {
	if level <= 0 || len(d.Levels) == 0 {
		return 0
	}
	return d.Levels[min(level, len(d.Levels))-1].Effect
}

// LootTable — содержимое powerups.yaml.
type LootTable struct {
	PowerUps []PowerUpDefinition `yaml:"powerups"`
	Upgrades []UpgradeDefinition `yaml:"upgrades"`
}

// Entries строит веса для взвешенного выбора.
func (t LootTable) Entries() []LootEntry {
	entries := make([]LootEntry, 0, len(t.PowerUps))
	for _, p := range t.PowerUps {
		entries = append(entries, LootEntry{ID: p.ID, Weight: p.Weight})
	}
	return entries
}
