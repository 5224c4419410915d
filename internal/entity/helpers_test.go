package entity

import (
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// fakeWorld реализует все контексты сущностей и записывает побочные эффекты.
type fakeWorld struct {
	player    *Player
	enemies   []*Enemy
	platforms []Platform
	tick      int
	rng       *utils.PRNGService
	combat    config.CombatConfig
	edge      float64
	speed     float64

	events   event.Recorder
	cues     []string
	died     []*Enemy
	numbers  int
	amounts  []float64
	summoned []string
	shots    int
	dashes   int
	powerUps []string
}

func newFakeWorld() *fakeWorld {
	cfg := config.DefaultSim()
	w := &fakeWorld{
		rng:       utils.NewPRNGService(7),
		combat:    cfg.Combat,
		edge:      cfg.World.Width/2 + cfg.World.DespawnMargin,
		speed:     1,
		platforms: []Platform{{X: -cfg.World.Width, Y: cfg.World.GroundY, W: 2 * cfg.World.Width, H: cfg.World.Height}},
	}
	w.player = NewPlayer(cfg.Player, cfg.World.Gravity, 0, cfg.World.GroundY-cfg.Player.Radius)
	return w
}

func (w *fakeWorld) Cue(name string, _ ...string)     { w.cues = append(w.cues, name) }
func (w *fakeWorld) Dispatch(e event.Event)           { w.events.OnEvent(e) }
func (w *fakeWorld) EnemyDied(e *Enemy)               { w.died = append(w.died, e) }
func (w *fakeWorld) Player() *Player                  { return w.player }
func (w *fakeWorld) Enemies() []*Enemy                { return w.enemies }
func (w *fakeWorld) Tick() int                        { return w.tick }
func (w *fakeWorld) Rand() *utils.PRNGService         { return w.rng }
func (w *fakeWorld) Combat() config.CombatConfig      { return w.combat }
func (w *fakeWorld) SpeedFactor(_, _ float64) float64 { return w.speed }
func (w *fakeWorld) WorldEdge() float64               { return w.edge }
func (w *fakeWorld) Platforms() []Platform            { return w.platforms }
func (w *fakeWorld) Dashed(*Player)                   { w.dashes++ }
func (w *fakeWorld) EnemyShot(_, _, _, _, _ float64)  { w.shots++ }

func (w *fakeWorld) Summon(kind string, _, _ float64, _ bool) {
	w.summoned = append(w.summoned, kind)
}

func (w *fakeWorld) DamageNumber(_, _, amount float64) {
	w.numbers++
	w.amounts = append(w.amounts, amount)
}

func (w *fakeWorld) ApplyPowerUp(kind string, _, _ float64) {
	w.powerUps = append(w.powerUps, kind)
}

func (w *fakeWorld) hasCue(name string) bool {
	for _, c := range w.cues {
		if c == name {
			return true
		}
	}
	return false
}

func chaserDef() defs.EnemyDefinition {
	return defs.EnemyDefinition{
		ID:       "chaser",
		Behavior: defs.BehaviorChase,
		Radius:   12,
		Damage:   8,
		XP:       20,
		Speed:    defs.LinearStat{Base: 1},
		Health:   defs.LinearStat{Base: 10},
	}
}

func (w *fakeWorld) spawn(def defs.EnemyDefinition, x, y float64) *Enemy {
	e := &Enemy{}
	e.SetActive(true)
	e.Init(def, EnemySpawn{X: x, Y: y, Wave: 1}, w.combat)
	w.enemies = append(w.enemies, e)
	return e
}
