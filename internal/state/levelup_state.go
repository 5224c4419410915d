package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-survivor/internal/defs"
	"go-survivor/internal/input"
	"go-survivor/internal/ui"
)

const levelUpChoices = 3

var _ State = (*LevelUpState)(nil)

// LevelUpState показывает карточки навыков и ждёт выбора цифрой.
type LevelUpState struct {
	sm      *StateMachine
	env     *Env
	running *GameState

	choices []defs.SkillDefinition
	cards   []ui.SkillCard
}

func NewLevelUpState(sm *StateMachine, env *Env, running *GameState) *LevelUpState {
	return &LevelUpState{sm: sm, env: env, running: running}
}

func (s *LevelUpState) Enter() {
	g := s.running.Game()
	s.choices = g.LevelUpChoices(levelUpChoices)
	s.cards = s.cards[:0]
	p := g.Player()
	for _, def := range s.choices {
		level := 1
		if st := p.Skill(def.ID); st != nil {
			level = st.Level + 1
		}
		desc := def.Level(level).Desc
		if desc == "" {
			desc = def.Desc
		}
		s.cards = append(s.cards, ui.SkillCard{Name: def.Name, Level: level, Desc: desc})
	}
}

func (s *LevelUpState) Update(deltaTime float64) {
	g := s.running.Game()
	if len(s.choices) == 0 {
		g.SkipLevelUp()
		s.resume()
		return
	}
	i := input.Choice(len(s.choices))
	if i < 0 {
		return
	}
	g.ChooseSkill(s.choices[i].ID)
	s.resume()
}

// resume возвращает в забег или показывает следующий выбор.
func (s *LevelUpState) resume() {
	if s.running.Game().PendingLevelUps() > 0 {
		s.Enter()
		return
	}
	s.sm.SetState(s.running)
}

func (s *LevelUpState) Draw(screen *ebiten.Image) {
	s.running.Draw(screen)
	title := fmt.Sprintf("LEVEL %d", s.running.Game().Player().Level)
	s.env.Cards.Draw(screen, title, s.cards)
}

func (s *LevelUpState) Exit() {}
