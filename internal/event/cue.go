// internal/event/cue.go
package event

import "log/slog"

// Имена звуковых сигналов.
const (
	CueHit           = "damage"
	CueXP            = "xp"
	CueLevelUp       = "levelUp"
	CueLance         = "lance"
	CueNuke          = "nuke"
	CueEnemyShot     = "enemyShot"
	CueParticleBurst = "particleBurst"
	CueDash          = "uiClick"
	CueLand          = "land"
	CueShieldBreak   = "shieldBreak"
)

// CueSink — звуковой коллаборатор. Ядро только называет сигнал.
type CueSink interface {
	Play(name string, params ...string)
}

// LogCues пишет сигналы в лог на уровне debug.
type LogCues struct{}

func (LogCues) Play(name string, params ...string) {
	slog.Debug("cue", "name", name, "params", params)
}

// NopCues глушит все сигналы.
type NopCues struct{}

func (NopCues) Play(string, ...string) {}
