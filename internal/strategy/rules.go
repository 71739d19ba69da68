package strategy

import (
	"context"
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/qninhdt/datadeck/server/internal/cards"
)

// Default rules of the aggressive strategy
const (
	AggressivePlayRule   = "cost <= 3"
	AggressiveTargetRule = "health <= 3"
)

// cardEnv is the variable set visible to rule expressions
type cardEnv struct {
	Name   string `expr:"name"`
	Cost   int    `expr:"cost"`
	Rarity string `expr:"rarity"`
	Kind   string `expr:"kind"`
	Attack int    `expr:"attack"`
	Health int    `expr:"health"`
}

func newCardEnv(card cards.Card) cardEnv {
	env := cardEnv{
		Name:   card.GetName(),
		Cost:   card.GetCost(),
		Rarity: card.GetRarity(),
		Kind:   card.Kind().String(),
	}
	switch c := card.(type) {
	case *cards.CreatureCard:
		env.Attack, env.Health = c.Attack, c.Health
	case *cards.EliteCard:
		env.Attack, env.Health = c.Damage, c.Health
	case *cards.TournamentCard:
		env.Attack, env.Health = c.Damage, c.Health
	}
	return env
}

// RuleStrategy plays the hand cards matching playRule and prefers targets matching targetRule.
// When no card matches, the whole hand is played. When no target matches, every target is kept.
type RuleStrategy struct {
	name       string
	playRule   string
	targetRule string
	play       *vm.Program
	target     *vm.Program
}

var _ Strategy = (*RuleStrategy)(nil)

// NewRuleStrategy compiles both rules up front
func NewRuleStrategy(name, playRule, targetRule string) (*RuleStrategy, error) {
	play, err := expr.Compile(playRule, expr.Env(cardEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid play rule %q: %w", playRule, err)
	}
	target, err := expr.Compile(targetRule, expr.Env(cardEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid target rule %q: %w", targetRule, err)
	}
	return &RuleStrategy{
		name:       name,
		playRule:   playRule,
		targetRule: targetRule,
		play:       play,
		target:     target,
	}, nil
}

// NewAggressiveStrategy plays cheap cards first and goes for weak targets
func NewAggressiveStrategy() *RuleStrategy {
	s, err := NewRuleStrategy("Aggressive Strategy", AggressivePlayRule, AggressiveTargetRule)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *RuleStrategy) GetStrategyName() string { return s.name }

// Rules returns the play and target expressions
func (s *RuleStrategy) Rules() (string, string) { return s.playRule, s.targetRule }

// ExecuteTurn plays the selected cards against a scratch pool sized to their total cost
func (s *RuleStrategy) ExecuteTurn(hand, battlefield []cards.Card) (TurnSummary, error) {
	selected := make([]cards.Card, 0, len(hand))
	for _, card := range hand {
		ok, err := eval(s.play, card)
		if err != nil {
			return TurnSummary{}, fmt.Errorf("play rule on %s: %w", card.GetName(), err)
		}
		if ok {
			selected = append(selected, card)
		}
	}
	if len(selected) == 0 {
		selected = append(selected, hand...)
	}

	scratch := &cards.GameState{}
	for _, card := range selected {
		scratch.Mana += card.GetCost()
	}

	summary := TurnSummary{
		CardsPlayed: make([]string, 0, len(selected)),
		Plays:       make([]cards.PlaySummary, 0, len(selected)),
		Played:      selected,
	}
	for _, card := range selected {
		play, err := card.Play(scratch)
		if err != nil {
			return TurnSummary{}, err
		}
		summary.Plays = append(summary.Plays, play)
		summary.CardsPlayed = append(summary.CardsPlayed, card.GetName())
		summary.ManaUsed += card.GetCost()
		if creature, ok := card.(*cards.CreatureCard); ok {
			summary.DamageDealt += creature.Attack
		}
	}

	targets, err := s.PrioritizeTargets(battlefield)
	if err != nil {
		return TurnSummary{}, err
	}
	summary.TargetsAttacked = targets
	return summary, nil
}

// PrioritizeTargets keeps targets matching the target rule, falling back to all of them.
// Cards without health never match.
func (s *RuleStrategy) PrioritizeTargets(targets []cards.Card) ([]Target, error) {
	if len(targets) == 0 {
		return []Target{EnemyPlayer()}, nil
	}

	preferred := make([]Target, 0, len(targets))
	for _, card := range targets {
		if _, ok := card.(cards.Targetable); !ok {
			continue
		}
		ok, err := eval(s.target, card)
		if err != nil {
			return nil, fmt.Errorf("target rule on %s: %w", card.GetName(), err)
		}
		if ok {
			preferred = append(preferred, Target{Name: card.GetName(), Card: card})
		}
	}
	if len(preferred) > 0 {
		return preferred, nil
	}

	all := make([]Target, 0, len(targets))
	for _, card := range targets {
		all = append(all, Target{Name: card.GetName(), Card: card})
	}
	return all, nil
}

// evalTimeout bounds a single rule evaluation
const evalTimeout = 100 * time.Millisecond

func eval(program *vm.Program, card cards.Card) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()

	env := newCardEnv(card)
	resultChan := make(chan interface{}, 1)
	errChan := make(chan error, 1)

	go func() {
		out, err := vm.Run(program, env)
		if err != nil {
			errChan <- err
		} else {
			resultChan <- out
		}
	}()

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("rule evaluation timeout")
	case err := <-errChan:
		return false, fmt.Errorf("rule evaluation error: %w", err)
	case out := <-resultChan:
		result, ok := out.(bool)
		if !ok {
			return false, fmt.Errorf("rule did not evaluate to boolean")
		}
		return result, nil
	}
}
