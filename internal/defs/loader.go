// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	enemiesFile  = "enemies.yaml"
	wavesFile    = "waves.yaml"
	skillsFile   = "skills.yaml"
	powerupsFile = "powerups.yaml"
)

// Library — все статические таблицы игры, загруженные один раз и только читаемые.
// Одну библиотеку могут разделять несколько параллельных симуляций.
type Library struct {
	Enemies   map[string]EnemyDefinition
	Boss      BossDefinition
	EliteGems IntRange
	Waves     WaveTable
	Skills    map[string]SkillDefinition
	// SkillOrder — порядок навыков как в файле; нужен для детерминированного выбора.
	SkillOrder []string
	PowerUps   map[string]PowerUpDefinition
	Loot       []LootEntry
	Upgrades   map[string]UpgradeDefinition

	mu     sync.Mutex
	warned map[string]struct{}
}

// LoadDefault загружает встроенные таблицы.
func LoadDefault() (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded definitions: %w", err)
	}
	return Load(sub)
}

// LoadLibrary загружает таблицы из каталога на диске.
func LoadLibrary(dir string) (*Library, error) {
	return Load(os.DirFS(dir))
}

// Load читает все четыре таблицы из fsys.
func Load(fsys fs.FS) (*Library, error) {
	var enemies EnemyTable
	if err := decode(fsys, enemiesFile, &enemies); err != nil {
		return nil, err
	}
	var waves WaveTable
	if err := decode(fsys, wavesFile, &waves); err != nil {
		return nil, err
	}
	var skills struct {
		Skills []SkillDefinition `yaml:"skills"`
	}
	if err := decode(fsys, skillsFile, &skills); err != nil {
		return nil, err
	}
	var loot LootTable
	if err := decode(fsys, powerupsFile, &loot); err != nil {
		return nil, err
	}

	lib := &Library{
		Enemies:   make(map[string]EnemyDefinition, len(enemies.Enemies)),
		Boss:      enemies.Boss,
		EliteGems: enemies.EliteGems,
		Waves:     waves,
		Skills:    make(map[string]SkillDefinition, len(skills.Skills)),
		PowerUps:  make(map[string]PowerUpDefinition, len(loot.PowerUps)),
		Loot:      loot.Entries(),
		Upgrades:  make(map[string]UpgradeDefinition, len(loot.Upgrades)),
		warned:    make(map[string]struct{}),
	}

	for _, def := range enemies.Enemies {
		if def.ID == "" {
			return nil, fmt.Errorf("%s: enemy without id", enemiesFile)
		}
		if _, dup := lib.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate enemy %q", enemiesFile, def.ID)
		}
		if def.Behavior == "" {
			def.Behavior = BehaviorChase
		}
		lib.Enemies[def.ID] = def
	}
	for _, def := range skills.Skills {
		if def.ID == "" {
			return nil, fmt.Errorf("%s: skill without id", skillsFile)
		}
		if _, dup := lib.Skills[def.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate skill %q", skillsFile, def.ID)
		}
		lib.Skills[def.ID] = def
		lib.SkillOrder = append(lib.SkillOrder, def.ID)
	}
	for _, def := range loot.PowerUps {
		lib.PowerUps[def.ID] = def
	}
	for _, def := range loot.Upgrades {
		lib.Upgrades[def.ID] = def
	}
	if len(lib.Boss.Phases) == 0 {
		return nil, fmt.Errorf("%s: boss needs at least one phase", enemiesFile)
	}

	slog.Debug("definitions loaded",
		"enemies", len(lib.Enemies),
		"waves", len(lib.Waves.Waves),
		"skills", len(lib.Skills),
		"powerups", len(lib.PowerUps))
	return lib, nil
}

func decode(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Enemy ищет тип врага. Отсутствующий тип логируется один раз.
func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := l.Enemies[id]
	if !ok {
		l.warnOnce("enemy", id)
	}
	return def, ok
}

// Skill ищет навык. Отсутствующий навык логируется один раз.
func (l *Library) Skill(id string) (SkillDefinition, bool) {
	def, ok := l.Skills[id]
	if !ok {
		l.warnOnce("skill", id)
	}
	return def, ok
}

func (l *Library) PowerUp(id string) (PowerUpDefinition, bool) {
	def, ok := l.PowerUps[id]
	if !ok {
		l.warnOnce("powerup", id)
	}
	return def, ok
}

// UpgradeEffect — эффект постоянного улучшения на купленном уровне.
func (l *Library) UpgradeEffect(id string, level int) float64 {
	def, ok := l.Upgrades[id]
	if !ok {
		if level > 0 {
			l.warnOnce("upgrade", id)
		}
		return 0
	}
	return def.Effect(level)
}

func (l *Library) warnOnce(kind, id string) {
	key := kind + ":" + id
	l.mu.Lock()
	if l.warned == nil {
		l.warned = make(map[string]struct{})
	}
	_, seen := l.warned[key]
	l.warned[key] = struct{}{}
	l.mu.Unlock()

	if !seen {
		slog.Warn("definition not found", "kind", kind, "id", id)
	}
}
