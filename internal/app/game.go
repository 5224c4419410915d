// internal/app/game.go
package app

import (
	"log/slog"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/spatial"
	"go-survivor/internal/system"
	"go-survivor/internal/utils"
)

const (
	// explosionTicks — время жизни взрыва при смерти врага.
	explosionTicks = 30
	levelUpChoices = 3
)

// Game holds the main game state and logic.
type Game struct {
	Config          config.Sim
	Library         *defs.Library
	World           *entity.World
	Camera          *Camera
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Cues            event.CueSink

	WaveSystem      *system.WaveSystem
	SkillSystem     *system.SkillSystem
	MovementSystem  *system.MovementSystem
	CollisionSystem *system.CollisionSystem
	CleanupSystem   *system.CleanupSystem

	// Game state
	tick            int
	kills           int
	gems            int
	over            bool
	pendingLevelUps int
}

// NewGame initializes a new run: world, player, systems and the first wave.
func NewGame(cfg config.Sim, lib *defs.Library, cues event.CueSink) *Game {
	if lib == nil {
		panic("definitions library cannot be nil")
	}
	if cues == nil {
		cues = event.NopCues{}
	}

	rng := utils.NewPRNGService(cfg.Seed)
	bounds := spatial.Rect{
		X: -cfg.World.Width,
		Y: -cfg.World.Height,
		W: cfg.World.Width * 2,
		H: cfg.World.Height * 2,
	}
	world := entity.NewWorld(cfg.Pools, bounds, cfg.QuadtreeCapacity)
	world.Platforms = GeneratePlatforms(cfg.World, rng)
	world.Player = entity.NewPlayer(cfg.Player, cfg.World.Gravity, 0, cfg.World.GroundY-cfg.Player.Radius)
	world.Player.ApplyUpgrades(
		lib.UpgradeEffect("max_health", cfg.Upgrades.MaxHealth),
		lib.UpgradeEffect("damage_boost", cfg.Upgrades.DamageBoost),
		lib.UpgradeEffect("xp_gain", cfg.Upgrades.XPGain),
	)

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Config:          cfg,
		Library:         lib,
		World:           world,
		Camera:          NewCamera(cfg.Camera, world.Player.Position()),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Cues:            cues,
	}
	g.WaveSystem = system.NewWaveSystem(lib, cfg.Waves, rng, eventDispatcher, g)
	g.SkillSystem = system.NewSkillSystem(world, lib, g, cfg.Player.CollectRadius, cfg.TPS)
	g.MovementSystem = system.NewMovementSystem(world, g)
	g.CollisionSystem = system.NewCollisionSystem(world, g)
	g.CleanupSystem = system.NewCleanupSystem(world)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.LevelUp, event.WaveCleared, event.BossPhaseChanged)
	eventDispatcher.Subscribe(event.ScreenShake, g.Camera)

	if cfg.Player.StartingSkill != "" {
		g.SkillSystem.Acquire(cfg.Player.StartingSkill)
	}
	g.WaveSystem.StartWave(1)

	slog.Debug("run started", "seed", rng.Seed(), "platforms", len(world.Platforms))
	return g
}

// Step продвигает симуляцию ровно на один тик.
func (g *Game) Step(in entity.Input) {
	if g.over {
		return
	}
	g.tick++

	g.WaveSystem.Update()
	g.World.RebuildIndex()

	p := g.World.Player
	p.Update(in, g)
	g.SkillSystem.Update()
	g.Camera.Follow(p.Position())

	g.MovementSystem.Update()
	g.World.RebuildIndex()
	g.CollisionSystem.Update()
	g.CleanupSystem.Update()
	g.Camera.Update(g.Rng)

	if p.Dead {
		g.endRun()
	}
}

func (g *Game) endRun() {
	if g.over {
		return
	}
	g.over = true
	s := g.Summary()
	slog.Info("run ended",
		"seed", s.Seed,
		"time", s.ElapsedTime,
		"wave", s.Wave,
		"kills", s.Kills,
		"level", s.Level)
	g.Dispatch(event.Event{Type: event.RunEnded, Data: s})
}

// Elapsed — секунды забега по счётчику тиков.
func (g *Game) Elapsed() float64 {
	return float64(g.tick) / float64(max(g.Config.TPS, 1))
}

func (g *Game) Over() bool { return g.over }

func (g *Game) Summary() event.RunSummary {
	return event.RunSummary{
		Seed:        g.Rng.Seed(),
		ElapsedTime: g.Elapsed(),
		Ticks:       g.tick,
		Kills:       g.kills,
		Wave:        g.WaveSystem.Number(),
		Level:       g.World.Player.Level,
		Gems:        g.gems,
	}
}

// PendingLevelUps — сколько выборов навыка ещё не сделано.
func (g *Game) PendingLevelUps() int { return g.pendingLevelUps }

// LevelUpChoices предлагает до n навыков: изученные, которые можно
// улучшить, и новые не служебные. Если вариантов мало, добавляется лечение.
func (g *Game) LevelUpChoices(n int) []defs.SkillDefinition {
	if n <= 0 {
		n = levelUpChoices
	}
	p := g.World.Player
	var options []defs.SkillDefinition
	for _, id := range p.SkillOrder {
		def, ok := g.Library.Skill(id)
		if ok && p.Skills[id].Level < def.MaxLevel() {
			options = append(options, def)
		}
	}
	for _, id := range g.Library.SkillOrder {
		def := g.Library.Skills[id]
		if _, owned := p.Skills[id]; owned || def.Type == defs.SkillUtility {
			continue
		}
		options = append(options, def)
	}

	for i := len(options) - 1; i > 0; i-- {
		j := g.Rng.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}
	if len(options) > 0 && len(options) < n && !hasSkill(options, system.SkillHeal) {
		if heal, ok := g.Library.Skill(system.SkillHeal); ok {
			options = append(options, heal)
		}
	}
	return options[:min(n, len(options))]
}

func hasSkill(list []defs.SkillDefinition, id string) bool {
	for _, d := range list {
		if d.ID == id {
			return true
		}
	}
	return false
}

// ChooseSkill тратит один отложенный уровень на навык id.
func (g *Game) ChooseSkill(id string) bool {
	if g.pendingLevelUps <= 0 {
		return false
	}
	if !g.SkillSystem.Acquire(id) {
		return false
	}
	g.pendingLevelUps--
	return true
}

// SkipLevelUp сбрасывает уровень, когда выбирать нечего.
func (g *Game) SkipLevelUp() {
	if g.pendingLevelUps > 0 {
		g.pendingLevelUps--
	}
}

// Draw рисует мир через камеру.
func (g *Game) Draw(s component.Surface) {
	cam := g.Camera.Component()
	w := g.World
	for _, p := range w.Platforms {
		p.Draw(s, cam)
	}
	for _, a := range w.Areas {
		a.Draw(s, cam)
	}
	for _, o := range w.Orbs {
		o.Draw(s, cam)
	}
	for _, u := range w.PowerUps {
		u.Draw(s, cam)
	}
	target := w.Player.Position()
	for _, e := range w.Enemies {
		e.Draw(s, cam, target)
	}
	for _, p := range w.Projectiles {
		p.Draw(s, cam)
	}
	for _, p := range w.EnemyShots {
		p.Draw(s, cam)
	}
	w.Player.Draw(s, cam)
	for _, n := range w.DamageNumbers {
		n.Draw(s, cam)
	}
}

// Методы ниже реализуют контексты сущностей и систем.

func (g *Game) Cue(name string, params ...string) { g.Cues.Play(name, params...) }
func (g *Game) Dispatch(e event.Event)            { g.EventDispatcher.Dispatch(e) }
func (g *Game) Player() *entity.Player            { return g.World.Player }
func (g *Game) Enemies() []*entity.Enemy          { return g.World.Enemies }
func (g *Game) Tick() int                         { return g.tick }
func (g *Game) Rand() *utils.PRNGService          { return g.Rng }
func (g *Game) Combat() config.CombatConfig       { return g.Config.Combat }
func (g *Game) Platforms() []entity.Platform      { return g.World.Platforms }
func (g *Game) Dashed(p *entity.Player)           { g.SkillSystem.Dashed(p) }
func (g *Game) View() spatial.Rect                { return g.Camera.View() }
func (g *Game) PlayerPosition() component.Vec2    { return g.World.Player.Position() }

func (g *Game) DamageNumber(x, y, amount float64) {
	g.World.SpawnDamageNumber(x, y, amount)
}

// WorldEdge — |x|, за которым снаряды и враги пропадают.
func (g *Game) WorldEdge() float64 {
	return g.Config.World.Width/2 + g.Config.World.DespawnMargin
}

// SpeedFactor берёт самое сильное замедление среди полей, накрывающих точку.
func (g *Game) SpeedFactor(x, y float64) float64 {
	f := 1.0
	for _, a := range g.World.Areas {
		if a.Mode == entity.AreaSlow && !a.Dead && a.Covers(x, y) {
			f = min(f, a.SlowFactor)
		}
	}
	return f
}

func (g *Game) Summon(kind string, x, y float64, elite bool) {
	g.SpawnEnemy(kind, x, y, elite)
}

func (g *Game) EnemyShot(x, y, angle, speed, damage float64) {
	g.World.FireEnemyShot(x, y, angle, speed, damage)
}

// SpawnEnemy выпускает врага из таблицы. Неизвестный тип пропускается.
func (g *Game) SpawnEnemy(kind string, x, y float64, elite bool) bool {
	def, ok := g.Library.Enemy(kind)
	if !ok {
		return false
	}
	e := g.World.SpawnEnemy(def, g.spawnAt(x, y, elite), g.Config.Combat)
	g.Dispatch(event.Event{Type: event.EnemySpawned, Data: e.EventData()})
	return true
}

func (g *Game) SpawnBoss(x, y float64) bool {
	e := g.World.SpawnBoss(&g.Library.Boss, g.spawnAt(x, y, false), g.Config.Combat)
	g.Dispatch(event.Event{Type: event.EnemySpawned, Data: e.EventData()})
	return true
}

func (g *Game) spawnAt(x, y float64, elite bool) entity.EnemySpawn {
	return entity.EnemySpawn{X: x, Y: y, Elite: elite, Wave: g.WaveSystem.Number(), Elapsed: g.Elapsed()}
}

// EnemyDied раздаёт награды за убитого врага. Вызывается один раз на смерть.
func (g *Game) EnemyDied(e *entity.Enemy) {
	g.kills++
	g.World.DropOrb(e.X, e.Y, e.XP)

	if r := e.ExplosionRadius(); r > 0 {
		g.World.SpawnArea(entity.Area{
			Mode:     entity.AreaExplosion,
			X:        e.X,
			Y:        e.Y,
			Radius:   r,
			Duration: explosionTicks,
			Damage:   e.Damage,
			Hostile:  true,
		})
	}
	if !e.Boss && g.Rng.Chance(g.Config.Combat.PowerUpDropChance) {
		g.dropPowerUp(e.X, e.Y)
	}

	gems := 0
	switch {
	case e.Boss:
		gems = g.Rng.IntRange(g.Library.Boss.Gems)
		g.Dispatch(event.Event{Type: event.ScreenShake, Data: event.ShakeData{Intensity: 20, Duration: 60}})
	case e.Elite:
		gems = g.Rng.IntRange(g.Library.EliteGems)
	}
	if gems > 0 {
		g.gems += gems
		g.Dispatch(event.Event{Type: event.GemsAwarded, Data: event.GemsData{Amount: gems}})
	}

	g.Dispatch(event.Event{Type: event.EnemyKilled, Data: e.EventData()})
}

func (g *Game) dropPowerUp(x, y float64) {
	kind := g.Rng.ChooseWeighted(g.Library.Loot)
	def, ok := g.Library.PowerUp(kind)
	if !ok {
		return
	}
	g.World.DropPowerUp(kind, x, y, component.Renderable{Shape: component.ShapeStar, Color: def.Color.RGBA()})
}

// ApplyPowerUp применяет подобранное усиление.
func (g *Game) ApplyPowerUp(kind string, x, y float64) {
	def, ok := g.Library.PowerUp(kind)
	if !ok {
		return
	}
	p := g.World.Player

	if def.Damage > 0 {
		g.Cue(event.CueNuke, "8n")
		g.Dispatch(event.Event{Type: event.ScreenShake, Data: event.ShakeData{Intensity: 15, Duration: 30}})
		force := g.Config.Combat.KnockbackForce * def.Knockback
		for _, e := range g.World.Enemies {
			if e.Dead {
				continue
			}
			e.TakeDamage(def.Damage, g)
			e.ApplyKnockback(p.Position(), force)
		}
	}
	if def.HealRatio > 0 {
		p.Heal(p.Health.Max * def.HealRatio)
	}
	if def.Duration > 0 {
		p.Guard = entity.Invulnerable{Timer: def.Duration}
	}

	slog.Debug("power-up collected", "kind", kind, "x", x, "y", y)
	g.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpData{Kind: kind, Message: def.Message}})
}

// GameEventListener handles game events.
type GameEventListener struct {
	game *Game
}

// OnEvent processes game events.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelUp:
		l.game.pendingLevelUps++
	case event.WaveCleared:
		slog.Info("wave cleared", "wave", l.game.WaveSystem.Number(), "kills", l.game.kills)
	case event.BossPhaseChanged:
		if data, ok := e.Data.(event.PhaseData); ok {
			slog.Info("boss phase changed", "phase", data.Phase)
		}
	}
}
