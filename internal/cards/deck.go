package cards

import (
	"fmt"
	"math/rand/v2"
)

// Deck is an ordered pile of cards. Cards are drawn from the front.
type Deck struct {
	cards []Card
}

// DeckStats summarizes a deck's composition
type DeckStats struct {
	TotalCards int     `json:"total_cards"`
	Creatures  int     `json:"creatures"`
	Spells     int     `json:"spells"`
	Artifacts  int     `json:"artifacts"`
	AvgCost    float64 `json:"avg_cost"`
}

// NewDeck creates an empty deck
func NewDeck() *Deck {
	return &Deck{cards: make([]Card, 0)}
}

// AddCard appends a card to the bottom of the deck
func (d *Deck) AddCard(card Card) error {
	if isNilCard(card) {
		return fmt.Errorf("add card: %w", ErrNilCard)
	}
	d.cards = append(d.cards, card)
	return nil
}

// RemoveCard removes the first card with the given name
func (d *Deck) RemoveCard(name string) bool {
	for i, card := range d.cards {
		if card.GetName() == name {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Shuffle randomizes the order using the global source
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// ShuffleWith randomizes the order using r
func (d *Deck) ShuffleWith(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// DrawCard removes and returns the front card
func (d *Deck) DrawCard() (Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]
	return card, nil
}

// DrawN draws up to n cards, stopping early when the deck runs out
func (d *Deck) DrawN(n int) []Card {
	result := make([]Card, 0, n)
	for i := 0; i < n && len(d.cards) > 0; i++ {
		card, _ := d.DrawCard()
		result = append(result, card)
	}
	return result
}

// Peek returns the next card without removing it
func (d *Deck) Peek() Card {
	if len(d.cards) == 0 {
		return nil
	}
	return d.cards[0]
}

// Size returns the number of cards in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}

// Clear removes all cards
func (d *Deck) Clear() {
	d.cards = make([]Card, 0)
}

// GetAll returns a copy of the cards in draw order
func (d *Deck) GetAll() []Card {
	result := make([]Card, len(d.cards))
	copy(result, d.cards)
	return result
}

// GetDeckStats counts cards per variant. Elite and tournament cards count as creatures.
func (d *Deck) GetDeckStats() DeckStats {
	stats := DeckStats{TotalCards: len(d.cards)}
	totalCost := 0
	for _, card := range d.cards {
		totalCost += card.GetCost()
		switch card.Kind() {
		case KindCreature, KindElite, KindTournament:
			stats.Creatures++
		case KindSpell:
			stats.Spells++
		case KindArtifact:
			stats.Artifacts++
		}
	}
	if stats.TotalCards > 0 {
		stats.AvgCost = float64(totalCost) / float64(stats.TotalCards)
	}
	return stats
}
