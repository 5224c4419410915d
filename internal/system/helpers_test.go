package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/spatial"
)

// fakeCombat реализует CombatContext и запоминает побочные эффекты.
type fakeCombat struct {
	tick    int
	combat  config.CombatConfig
	events  event.Recorder
	cues    []string
	died    []*entity.Enemy
	numbers int
}

func (c *fakeCombat) Cue(name string, _ ...string) { c.cues = append(c.cues, name) }
func (c *fakeCombat) Dispatch(e event.Event)       { c.events.OnEvent(e) }
func (c *fakeCombat) DamageNumber(_, _, _ float64) { c.numbers++ }
func (c *fakeCombat) EnemyDied(e *entity.Enemy)    { c.died = append(c.died, e) }
func (c *fakeCombat) Tick() int                    { return c.tick }
func (c *fakeCombat) Combat() config.CombatConfig  { return c.combat }

func newTestWorld() (*entity.World, *fakeCombat) {
	cfg := config.DefaultSim()
	bounds := spatial.Rect{X: -cfg.World.Width, Y: -cfg.World.Height, W: 2 * cfg.World.Width, H: 2 * cfg.World.Height}
	w := entity.NewWorld(cfg.Pools, bounds, cfg.QuadtreeCapacity)
	w.Player = entity.NewPlayer(cfg.Player, cfg.World.Gravity, 0, 0)
	return w, &fakeCombat{combat: cfg.Combat}
}

func testEnemy(health float64) defs.EnemyDefinition {
	return defs.EnemyDefinition{
		ID:       "chaser",
		Behavior: defs.BehaviorChase,
		Radius:   12,
		Damage:   8,
		XP:       20,
		Speed:    defs.LinearStat{Base: 1},
		Health:   defs.LinearStat{Base: health},
	}
}

// place ставит врагов в мир сразу активными и проиндексированными.
func place(w *entity.World, c *fakeCombat, def defs.EnemyDefinition, at ...component.Vec2) []*entity.Enemy {
	out := make([]*entity.Enemy, 0, len(at))
	for _, p := range at {
		out = append(out, w.SpawnEnemy(def, entity.EnemySpawn{X: p.X, Y: p.Y, Wave: 1}, c.combat))
	}
	w.Flush()
	w.RebuildIndex()
	return out
}

// fakeSpawner выпускает врагов в никуда, но честно сообщает о появлении.
type fakeSpawner struct {
	lib        *defs.Library
	dispatcher *event.Dispatcher
	player     component.Vec2
	view       spatial.Rect

	spawned []string
	elites  int
	points  []component.Vec2
	bosses  []component.Vec2
}

func (s *fakeSpawner) SpawnEnemy(kind string, x, y float64, elite bool) bool {
	if _, ok := s.lib.Enemy(kind); !ok {
		return false
	}
	s.spawned = append(s.spawned, kind)
	s.points = append(s.points, component.Vec2{X: x, Y: y})
	if elite {
		s.elites++
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{Type: kind}})
	return true
}

func (s *fakeSpawner) SpawnBoss(x, y float64) bool {
	s.bosses = append(s.bosses, component.Vec2{X: x, Y: y})
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{Type: "boss", Boss: true}})
	return true
}

func (s *fakeSpawner) PlayerPosition() component.Vec2 { return s.player }
func (s *fakeSpawner) View() spatial.Rect             { return s.view }
