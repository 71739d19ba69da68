package strategy

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qninhdt/datadeck/server/internal/cards"
)

// EnemyPlayerName is the target reported when the opposing battlefield is empty
const EnemyPlayerName = "Enemy Player"

// Strategy decides which cards to play and what to attack
type Strategy interface {
	ExecuteTurn(hand, battlefield []cards.Card) (TurnSummary, error)
	GetStrategyName() string
	PrioritizeTargets(targets []cards.Card) ([]Target, error)
}

// Target is a card on the opposing battlefield, or the enemy player when Card is nil
type Target struct {
	Name string
	Card cards.Card
}

// EnemyPlayer returns the sentinel target
func EnemyPlayer() Target {
	return Target{Name: EnemyPlayerName}
}

// IsPlayer reports whether this is the enemy player sentinel
func (t Target) IsPlayer() bool { return t.Card == nil }

// MarshalJSON encodes the target as its name
func (t Target) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name)
}

// TurnSummary is the result of one executed turn
type TurnSummary struct {
	CardsPlayed     []string            `json:"cards_played"`
	ManaUsed        int                 `json:"mana_used"`
	TargetsAttacked []Target            `json:"targets_attacked"`
	DamageDealt     int                 `json:"damage_dealt"`
	Plays           []cards.PlaySummary `json:"plays"`

	// Played holds the card values in play order
	Played []cards.Card `json:"-"`
}

// TargetNames returns the names of the attacked targets
func (s TurnSummary) TargetNames() []string {
	names := make([]string, 0, len(s.TargetsAttacked))
	for _, t := range s.TargetsAttacked {
		names = append(names, t.Name)
	}
	return names
}

// Lookup returns a builtin strategy by key
func Lookup(key string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", "aggressive":
		return NewAggressiveStrategy(), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", key)
}
