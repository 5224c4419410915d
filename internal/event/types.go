// internal/event/types.go
package event

const (
	EnemySpawned     EventType = "EnemySpawned"
	EnemyKilled      EventType = "EnemyKilled"    // Враг убит игроком
	EnemyDespawned   EventType = "EnemyDespawned" // Враг ушёл за край мира
	PlayerDamaged    EventType = "PlayerDamaged"
	ShieldBroken     EventType = "ShieldBroken"
	PlayerDied       EventType = "PlayerDied"
	LevelUp          EventType = "LevelUp"
	WaveStarted      EventType = "WaveStarted"
	WaveCleared      EventType = "WaveCleared"
	BossSpawned      EventType = "BossSpawned"
	BossPhaseChanged EventType = "BossPhaseChanged"
	PowerUpCollected EventType = "PowerUpCollected"
	GemsAwarded      EventType = "GemsAwarded"
	ScreenShake      EventType = "ScreenShake"
	RunEnded         EventType = "RunEnded"
)

// EnemyData сопровождает EnemySpawned, EnemyKilled и EnemyDespawned.
type EnemyData struct {
	Type  string
	Wave  int
	Elite bool
	Boss  bool
	X, Y  float64
}

type DamageData struct {
	Amount float64
	Health float64
}

type WaveData struct {
	Number int
	Boss   bool
	Quota  int
}

type LevelData struct {
	Level int
}

type PhaseData struct {
	Phase int
}

type PowerUpData struct {
	Kind    string
	Message string
}

type GemsData struct {
	Amount int
}

// ShakeData — тряска экрана: сила в пикселях и длительность в тиках.
type ShakeData struct {
	Intensity float64
	Duration  int
}

// RunSummary — итог забега, который передаётся хранилищу.
type RunSummary struct {
	Seed        uint64
	ElapsedTime float64 // секунды
	Ticks       int
	Kills       int
	Wave        int
	Level       int
	Gems        int
}
