package cards

import (
	"fmt"
)

// Kind identifies the concrete card variant
type Kind int

const (
	KindCreature Kind = iota
	KindSpell
	KindArtifact
	KindElite
	KindTournament
)

var kindLabels = map[Kind]string{
	KindCreature:   "Creature",
	KindSpell:      "Spell",
	KindArtifact:   "Artifact",
	KindElite:      "Elite Card",
	KindTournament: "Tournament Card",
}

// String returns the display label of the kind
func (k Kind) String() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind as its display label
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Card is the base interface for all cards.
// Only types declared in this package implement it.
type Card interface {
	GetName() string
	GetCost() int
	GetRarity() string
	Kind() Kind
	Play(state *GameState) (PlaySummary, error)
	IsPlayable(availableMana int) bool
	GetCardInfo() map[string]interface{}
	GetValue() string
	sealed()
}

// Targetable is a card with health that can be chosen as a target
type Targetable interface {
	GetName() string
	GetHealth() int
}

// EffectTarget is a card whose health and attack spells can change
type EffectTarget interface {
	Targetable
	AdjustHealth(delta int)
	AdjustAttack(delta int)
}

// GameState is the resource pool a card is paid from when played
type GameState struct {
	Mana int `json:"mana"`
}

// PlaySummary describes a single play action
type PlaySummary struct {
	CardPlayed string `json:"card_played"`
	ManaUsed   int    `json:"mana_used"`
	Effect     string `json:"effect"`
}

// BaseCard holds the identity shared by every variant
type BaseCard struct {
	Name   string `json:"name"`
	Cost   int    `json:"cost"`
	Rarity string `json:"rarity"`
}

func newBaseCard(name string, cost int, rarity string) (BaseCard, error) {
	if cost < 0 {
		return BaseCard{}, fmt.Errorf("%w: %s costs %d", ErrNegativeCost, name, cost)
	}
	return BaseCard{Name: name, Cost: cost, Rarity: rarity}, nil
}

func (c *BaseCard) GetName() string   { return c.Name }
func (c *BaseCard) GetCost() int      { return c.Cost }
func (c *BaseCard) GetRarity() string { return c.Rarity }
func (c *BaseCard) sealed()           {}

// IsPlayable reports whether the card fits in the available mana
func (c *BaseCard) IsPlayable(availableMana int) bool {
	return c.Cost <= availableMana
}

// GetValue returns the hand label, e.g. "Fire Dragon (5)"
func (c *BaseCard) GetValue() string {
	return fmt.Sprintf("%s (%d)", c.Name, c.Cost)
}

// play deducts the cost from state. The deduction is never rolled back.
func (c *BaseCard) play(state *GameState, effect string) (PlaySummary, error) {
	if state == nil {
		return PlaySummary{}, fmt.Errorf("play %s: %w", c.Name, ErrNilGameState)
	}
	state.Mana -= c.Cost
	return PlaySummary{
		CardPlayed: c.Name,
		ManaUsed:   c.Cost,
		Effect:     effect,
	}, nil
}

func (c *BaseCard) info() map[string]interface{} {
	return map[string]interface{}{
		"name":   c.Name,
		"cost":   c.Cost,
		"rarity": c.Rarity,
	}
}

// isNilCard reports whether card is nil or a nil pointer to a concrete card
func isNilCard(card Card) bool {
	switch c := card.(type) {
	case nil:
		return true
	case *CreatureCard:
		return c == nil
	case *SpellCard:
		return c == nil
	case *ArtifactCard:
		return c == nil
	case *EliteCard:
		return c == nil
	case *TournamentCard:
		return c == nil
	}
	return false
}

// IsCreatureLike reports whether the card fights on the battlefield
func IsCreatureLike(card Card) bool {
	switch card.Kind() {
	case KindCreature, KindElite, KindTournament:
		return true
	case KindSpell, KindArtifact:
		return false
	}
	return false
}
