package game

import (
	"time"

	"github.com/qninhdt/datadeck/server/internal/cards"
)

// Starting resources of a player board
const (
	DefaultMana   = 10
	DefaultHealth = 20
)

// Board is the single source of truth for a session's cards in play
type Board struct {
	Hand             []cards.Card `json:"-"`
	Battlefield      []cards.Card `json:"-"`
	EnemyBattlefield []cards.Card `json:"-"`

	Mana   int `json:"mana"`
	Health int `json:"health"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBoard creates an empty board with default resources
func NewBoard() *Board {
	now := time.Now()
	return &Board{
		Hand:             make([]cards.Card, 0),
		Battlefield:      make([]cards.Card, 0),
		EnemyBattlefield: make([]cards.Card, 0),
		Mana:             DefaultMana,
		Health:           DefaultHealth,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// AddToHand appends cards to the hand
func (b *Board) AddToHand(cs ...cards.Card) {
	b.Hand = append(b.Hand, cs...)
	b.UpdatedAt = time.Now()
}

// RemoveFromHand removes each played card once, matching by identity
func (b *Board) RemoveFromHand(played []cards.Card) {
	for _, p := range played {
		for i, c := range b.Hand {
			if c == p {
				b.Hand = append(b.Hand[:i], b.Hand[i+1:]...)
				break
			}
		}
	}
	b.UpdatedAt = time.Now()
}

// Deploy puts a card onto the player's battlefield
func (b *Board) Deploy(card cards.Card) {
	b.Battlefield = append(b.Battlefield, card)
	b.UpdatedAt = time.Now()
}

// SetEnemyBattlefield replaces the opposing battlefield
func (b *Board) SetEnemyBattlefield(cs []cards.Card) {
	b.EnemyBattlefield = append(make([]cards.Card, 0, len(cs)), cs...)
	b.UpdatedAt = time.Now()
}

// HandValues returns the display value of each card in hand
func (b *Board) HandValues() []string {
	return values(b.Hand)
}

// Snapshot returns a display view of the board
func (b *Board) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"hand":              values(b.Hand),
		"battlefield":       names(b.Battlefield),
		"enemy_battlefield": names(b.EnemyBattlefield),
		"mana":              b.Mana,
		"health":            b.Health,
		"updated_at":        b.UpdatedAt,
	}
}

func values(cs []cards.Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.GetValue())
	}
	return out
}

func names(cs []cards.Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.GetName())
	}
	return out
}
