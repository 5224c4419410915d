// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	TextCharWidth = 7
	TextOffsetY   = 4
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{46, 139, 87, 255}
	GroundEdgeColor = color.RGBA{0, 255, 0, 204}
	PlayerColor     = color.RGBA{255, 255, 255, 255}
	ShieldColor     = color.RGBA{0, 255, 255, 160}
	EliteColor      = color.RGBA{255, 215, 0, 255}
	HitColor        = color.RGBA{255, 255, 255, 255}
	ProjectileColor = color.RGBA{255, 255, 150, 255}
	RayColor        = color.RGBA{173, 216, 230, 255}
	EnemyShotColor  = color.RGBA{255, 0, 0, 255}
	XPOrbColor      = color.RGBA{0, 255, 255, 255}
	PowerUpColor    = color.RGBA{255, 255, 0, 255}
	VortexColor     = color.RGBA{148, 0, 211, 120}
	ExplosionColor  = color.RGBA{255, 140, 0, 160}
	FieldColor      = color.RGBA{100, 149, 237, 90}
	OrbitalColor    = color.RGBA{255, 255, 224, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	HealthBarColor  = color.RGBA{220, 60, 60, 220}
	XPBarColor      = color.RGBA{70, 100, 120, 220}
	BossWaveColor   = color.RGBA{220, 60, 60, 220}
	StrokeWidth     = 2.0
)

// Sim — все настраиваемые параметры симуляции.
type Sim struct {
	// TPS — тиков симуляции в секунду. Все таймеры считаются в тиках.
	TPS         int    `yaml:"tps"`
	Seed        uint64 `yaml:"seed"`
	LogLevel    string `yaml:"log_level"`
	DatabaseDSN string `yaml:"database_dsn"`
	// DefsDir — каталог с таблицами; пустой означает встроенные.
	DefsDir string `yaml:"defs_dir"`

	QuadtreeCapacity int `yaml:"quadtree_capacity"`

	World    WorldConfig   `yaml:"world"`
	Player   PlayerConfig  `yaml:"player"`
	Waves    WaveConfig    `yaml:"waves"`
	Combat   CombatConfig  `yaml:"combat"`
	Pools    PoolConfig    `yaml:"pools"`
	Upgrades UpgradeLevels `yaml:"upgrades"`
	Camera   CameraConfig  `yaml:"camera"`
}

// WorldConfig — геометрия мира. X отсчитывается от центра, земля на GroundY.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundY       float64 `yaml:"ground_y"`
	Gravity       float64 `yaml:"gravity"`
	Platforms     int     `yaml:"platforms"`
	DespawnMargin float64 `yaml:"despawn_margin"`
}

type PlayerConfig struct {
	Health          float64 `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	Radius          float64 `yaml:"radius"`
	JumpForce       float64 `yaml:"jump_force"`
	DoubleJumpForce float64 `yaml:"double_jump_force"`
	DashForce       float64 `yaml:"dash_force"`
	DashDuration    int     `yaml:"dash_duration"`
	DashCooldown    int     `yaml:"dash_cooldown"`
	// HurtInvulnerability — окно неуязвимости после попадания, в тиках.
	HurtInvulnerability int     `yaml:"hurt_invulnerability"`
	FallDeathDepth      float64 `yaml:"fall_death_depth"`
	XPBase              float64 `yaml:"xp_base"`
	XPMultiplier        float64 `yaml:"xp_multiplier"`
	CollectRadius       float64 `yaml:"collect_radius"`
	StartingSkill       string  `yaml:"starting_skill"`
}

type WaveConfig struct {
	Cooldown     int     `yaml:"cooldown"`
	BossInterval int     `yaml:"boss_interval"`
	SpawnMargin  float64 `yaml:"spawn_margin"`
}

type CombatConfig struct {
	KnockbackForce     float64 `yaml:"knockback_force"`
	KnockbackDecay     float64 `yaml:"knockback_decay"`
	KnockbackStop      float64 `yaml:"knockback_stop"`
	SteerThreshold     float64 `yaml:"steer_threshold"`
	ContactSeparation  float64 `yaml:"contact_separation"`
	ProjectileMargin   float64 `yaml:"projectile_margin"`
	PlayerMargin       float64 `yaml:"player_margin"`
	OrbHitCooldown     int     `yaml:"orb_hit_cooldown"`
	PullDamageInterval int     `yaml:"pull_damage_interval"`
	PowerUpDropChance  float64 `yaml:"powerup_drop_chance"`
	OrbAttractSpeed    float64 `yaml:"orb_attract_speed"`

	EliteRadius float64 `yaml:"elite_radius"`
	EliteHealth float64 `yaml:"elite_health"`
	EliteDamage float64 `yaml:"elite_damage"`
	EliteReward float64 `yaml:"elite_reward"`
}

// PoolConfig — начальные размеры пулов.
type PoolConfig struct {
	Enemies          int `yaml:"enemies"`
	Projectiles      int `yaml:"projectiles"`
	EnemyProjectiles int `yaml:"enemy_projectiles"`
	XPOrbs           int `yaml:"xp_orbs"`
	DamageNumbers    int `yaml:"damage_numbers"`
	AreaEffects      int `yaml:"area_effects"`
}

// UpgradeLevels — купленные уровни постоянных улучшений (0 — нет).
type UpgradeLevels struct {
	MaxHealth   int `yaml:"max_health"`
	DamageBoost int `yaml:"damage_boost"`
	XPGain      int `yaml:"xp_gain"`
}

type CameraConfig struct {
	Lerp   float64 `yaml:"lerp"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultSim returns Sim config with the stock game balance.
func DefaultSim() Sim {
	return Sim{
		TPS:              60,
		LogLevel:         "info",
		QuadtreeCapacity: 4,
		World: WorldConfig{
			Width:         8000,
			Height:        2000,
			GroundY:       ScreenHeight * 0.8,
			Gravity:       0.5,
			Platforms:     35,
			DespawnMargin: 200,
		},
		Player: PlayerConfig{
			Health:              120,
			Speed:               3,
			Radius:              15,
			JumpForce:           -10,
			DoubleJumpForce:     -8,
			DashForce:           15,
			DashDuration:        10,
			DashCooldown:        60,
			HurtInvulnerability: 30,
			FallDeathDepth:      200,
			XPBase:              80,
			XPMultiplier:        1.15,
			CollectRadius:       120,
			StartingSkill:       "divine_lance",
		},
		Waves: WaveConfig{
			Cooldown:     180,
			BossInterval: 5,
			SpawnMargin:  50,
		},
		Combat: CombatConfig{
			KnockbackForce:     20,
			KnockbackDecay:     0.9,
			KnockbackStop:      0.1,
			SteerThreshold:     5,
			ContactSeparation:  15,
			ProjectileMargin:   30,
			PlayerMargin:       50,
			OrbHitCooldown:     12,
			PullDamageInterval: 60,
			PowerUpDropChance:  0.02,
			OrbAttractSpeed:    8,
			EliteRadius:        1.5,
			EliteHealth:        2.5,
			EliteDamage:        1.5,
			EliteReward:        2,
		},
		Pools: PoolConfig{
			Enemies:          64,
			Projectiles:      50,
			EnemyProjectiles: 50,
			XPOrbs:           100,
			DamageNumbers:    50,
			AreaEffects:      16,
		},
		Camera: CameraConfig{
			Lerp:   0.05,
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
	}
}

// LoadSim loads simulation config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSim(path string) (Sim, error) {
	cfg := DefaultSim()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate отсекает значения, с которыми симуляция не может работать.
func (c Sim) Validate() error {
	switch {
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.QuadtreeCapacity <= 0:
		return fmt.Errorf("quadtree_capacity must be positive, got %d", c.QuadtreeCapacity)
	case c.Waves.BossInterval < 0:
		return fmt.Errorf("boss_interval must not be negative, got %d", c.Waves.BossInterval)
	case c.Player.XPMultiplier < 1:
		return fmt.Errorf("xp_multiplier must be at least 1, got %v", c.Player.XPMultiplier)
	}
	return nil
}

// SlogLevel переводит строковый уровень в slog.Level; неизвестный даёт Info.
func (c Sim) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
