package app

import (
	"context"
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
)

const (
	dodgeJumpDistance = 120.0
	dodgeDashDistance = 60.0
	// edgeTurn — на каком расстоянии от края мира автопилот разворачивается.
	edgeTurn = 400.0
	// ctxCheckTicks — как часто прогон проверяет отмену контекста.
	ctxCheckTicks = 600
)

// Autopilot управляет игроком без человека: уходит от ближайшего врага,
// прыгает и делает рывок, когда тот подходит вплотную.
type Autopilot struct {
	dir float64
}

// Input решает, что нажать в этом тике.
func (a *Autopilot) Input(g *Game) entity.Input {
	if a.dir == 0 {
		a.dir = 1
	}
	p := g.World.Player
	half := g.Config.World.Width / 2

	var in entity.Input
	if e, dist := nearest(p.Position(), g.World.Enemies); e != nil {
		a.dir = math.Copysign(1, p.X-e.X)
		in.Jump = dist < dodgeJumpDistance && p.Grounded()
		in.Dash = dist < dodgeDashDistance
	}
	if math.Abs(p.X) > half-edgeTurn {
		a.dir = -math.Copysign(1, p.X)
	}
	in.Move = component.Vec2{X: a.dir}
	return in
}

func nearest(from component.Vec2, enemies []*entity.Enemy) (*entity.Enemy, float64) {
	var best *entity.Enemy
	bestSq := math.Inf(1)
	for _, e := range enemies {
		if e.Dead {
			continue
		}
		if d := e.Position().DistSq(from); d < bestSq {
			best, bestSq = e, d
		}
	}
	return best, math.Sqrt(bestSq)
}

// Simulate прогоняет забег под автопилотом до смерти игрока или maxTicks.
// Уровни тратятся на первый предложенный навык.
func Simulate(ctx context.Context, g *Game, maxTicks int) (event.RunSummary, error) {
	var pilot Autopilot
	for !g.Over() && g.Tick() < maxTicks {
		if g.Tick()%ctxCheckTicks == 0 {
			if err := ctx.Err(); err != nil {
				return g.Summary(), err
			}
		}
		g.Step(pilot.Input(g))
		for g.PendingLevelUps() > 0 && !g.Over() {
			choices := g.LevelUpChoices(levelUpChoices)
			if len(choices) == 0 || !g.ChooseSkill(choices[0].ID) {
				g.SkipLevelUp()
			}
		}
	}
	return g.Summary(), nil
}
