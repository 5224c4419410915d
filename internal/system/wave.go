// internal/system/wave.go
package system

import (
	"log/slog"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
	"go-survivor/internal/spatial"
	"go-survivor/internal/utils"
)

// WavePhase — состояние планировщика волн.
type WavePhase int

const (
	WaveSpawning WavePhase = iota
	WaveCleared
	WaveCooldown
)

func (p WavePhase) String() string {
	switch p {
	case WaveSpawning:
		return "spawning"
	case WaveCleared:
		return "cleared"
	case WaveCooldown:
		return "cooldown"
	}
	return "unknown"
}

// Wave — текущая волна и её невыпущенная квота.
type Wave struct {
	Number      int
	Boss        bool
	Quota       []defs.WaveEntry
	EliteChance float64
	SpawnTimer  int
}

// Remaining — сколько врагов волны ещё не появилось.
func (w *Wave) Remaining() int {
	n := 0
	for _, e := range w.Quota {
		n += e.Count
	}
	return n
}

// Spawner создаёт врагов по просьбе планировщика.
// Успешное появление должно сопровождаться событием EnemySpawned.
type Spawner interface {
	SpawnEnemy(kind string, x, y float64, elite bool) bool
	SpawnBoss(x, y float64) bool
	PlayerPosition() component.Vec2
	// View — видимая область мира; враги появляются сразу за её краем.
	View() spatial.Rect
}

// WaveSystem ведёт волны: выпуск квоты, ожидание зачистки, пауза, следующая волна.
type WaveSystem struct {
	lib             *defs.Library
	cfg             config.WaveConfig
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	spawner         Spawner

	wave     *Wave
	phase    WavePhase
	cooldown int
	// alive — живые враги на поле, включая призванных.
	alive int
}

func NewWaveSystem(lib *defs.Library, cfg config.WaveConfig, rng *utils.PRNGService,
	eventDispatcher *event.Dispatcher, spawner Spawner) *WaveSystem {
	ws := &WaveSystem{
		lib:             lib,
		cfg:             cfg,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		spawner:         spawner,
	}
	eventDispatcher.SubscribeAll(ws, event.EnemySpawned, event.EnemyKilled, event.EnemyDespawned)
	return ws
}

func (s *WaveSystem) Update() {
	if s.wave == nil {
		return
	}
	switch s.phase {
	case WaveSpawning:
		if s.wave.Remaining() > 0 {
			s.wave.SpawnTimer--
			if s.wave.SpawnTimer <= 0 {
				s.spawnNext()
			}
			return
		}
		if s.alive > 0 {
			return
		}
		s.phase = WaveCleared
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Number: s.wave.Number, Boss: s.wave.Boss}})
		slog.Debug("wave cleared", "wave", s.wave.Number)
	case WaveCleared:
		s.phase = WaveCooldown
		s.cooldown = s.cfg.Cooldown
	case WaveCooldown:
		s.cooldown--
		if s.cooldown <= 0 {
			s.StartWave(s.wave.Number + 1)
		}
	}
}

// StartWave собирает квоту волны n и переводит планировщик в выпуск.
// Каждая BossInterval-я волна — одиночный босс; затем идут волны из
// таблицы, а после них — процедурные.
func (s *WaveSystem) StartWave(n int) *Wave {
	n = max(n, 1)
	w := &Wave{Number: n}
	predefined := s.lib.Waves.Waves
	switch {
	case s.cfg.BossInterval > 0 && n%s.cfg.BossInterval == 0:
		w.Boss = true
		w.Quota = []defs.WaveEntry{{Type: s.lib.Boss.ID, Count: 1}}
	case n <= len(predefined):
		def := predefined[n-1]
		w.Quota = append([]defs.WaveEntry(nil), def.Enemies...)
		w.EliteChance = def.EliteChance
	default:
		w.Quota = s.proceduralQuota(n)
		w.EliteChance = s.lib.Waves.Procedural.EliteChance(n, len(predefined))
	}

	s.wave = w
	s.phase = WaveSpawning
	s.cooldown = 0
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: n, Boss: w.Boss, Quota: w.Remaining()}})
	slog.Debug("wave started", "wave", n, "boss", w.Boss, "quota", w.Remaining())
	return w
}

// proceduralQuota выбирает несколько разных типов и даёт каждому одинаковую квоту.
func (s *WaveSystem) proceduralQuota(n int) []defs.WaveEntry {
	p := s.lib.Waves.Procedural
	types := append([]string(nil), p.Types...)
	for i := len(types) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		types[i], types[j] = types[j], types[i]
	}
	types = types[:p.TypeCount(n)]

	quota := make([]defs.WaveEntry, 0, len(types))
	for _, t := range types {
		quota = append(quota, defs.WaveEntry{Type: t, Count: p.Count(n), Interval: p.Interval(n)})
	}
	return quota
}

func (s *WaveSystem) spawnNext() {
	if s.wave.Boss {
		s.spawnBoss()
		return
	}

	var available []int
	for i, e := range s.wave.Quota {
		if e.Count > 0 {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return
	}
	entry := &s.wave.Quota[available[s.rng.Intn(len(available))]]
	entry.Count--
	s.wave.SpawnTimer = entry.Interval

	x, y := s.edgePoint()
	elite := s.rng.Chance(s.wave.EliteChance)
	if !s.spawner.SpawnEnemy(entry.Type, x, y, elite) {
		slog.Debug("wave spawn skipped", "wave", s.wave.Number, "type", entry.Type)
	}
}

func (s *WaveSystem) spawnBoss() {
	for i := range s.wave.Quota {
		s.wave.Quota[i].Count = 0
	}
	p := s.spawner.PlayerPosition()
	x, y := p.X+s.lib.Boss.SpawnOffsetX, p.Y+s.lib.Boss.SpawnOffsetY
	if !s.spawner.SpawnBoss(x, y) {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: event.WaveData{Number: s.wave.Number, Boss: true}})
}

// edgePoint — случайная точка за одним из четырёх краёв видимой области.
func (s *WaveSystem) edgePoint() (float64, float64) {
	v := s.spawner.View()
	m := s.cfg.SpawnMargin
	switch s.rng.Intn(4) {
	case 0:
		return v.X - m, v.Y + s.rng.Float64()*v.H
	case 1:
		return v.X + v.W + m, v.Y + s.rng.Float64()*v.H
	case 2:
		return v.X + s.rng.Float64()*v.W, v.Y - m
	default:
		return v.X + s.rng.Float64()*v.W, v.Y + v.H + m
	}
}

func (s *WaveSystem) Wave() *Wave       { return s.wave }
func (s *WaveSystem) Phase() WavePhase  { return s.phase }
func (s *WaveSystem) Alive() int        { return s.alive }
func (s *WaveSystem) CooldownLeft() int { return s.cooldown }

// Number — номер текущей волны, 0 до первой.
func (s *WaveSystem) Number() int {
	if s.wave == nil {
		return 0
	}
	return s.wave.Number
}

// ResetActiveEnemies обнуляет счётчик живых врагов для нового забега.
func (s *WaveSystem) ResetActiveEnemies() {
	s.alive = 0
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		s.alive++
	case event.EnemyKilled, event.EnemyDespawned:
		if s.alive > 0 {
			s.alive--
		}
	}
}
