package cards

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDeck(t *testing.T) *Deck {
	t.Helper()
	deck := NewDeck()
	require.NoError(t, deck.AddCard(mustSpell(t, "Lightning Bolt", 3, "Deal 3 damage to target")))
	require.NoError(t, deck.AddCard(mustArtifact(t, "Mana Crystal", 2, "Permanent: +1 mana per turn")))
	require.NoError(t, deck.AddCard(mustCreature(t, "Fire Dragon", 5, 7, 5)))
	return deck
}

// TestDeckAddRejectsNil tests that only real cards are accepted
func TestDeckAddRejectsNil(t *testing.T) {
	deck := NewDeck()
	assert.ErrorIs(t, deck.AddCard(nil), ErrNilCard)
	assert.ErrorIs(t, deck.AddCard((*CreatureCard)(nil)), ErrNilCard)
	assert.ErrorIs(t, deck.AddCard((*SpellCard)(nil)), ErrNilCard)
	assert.ErrorIs(t, deck.AddCard((*ArtifactCard)(nil)), ErrNilCard)
	assert.ErrorIs(t, deck.AddCard((*EliteCard)(nil)), ErrNilCard)
	assert.ErrorIs(t, deck.AddCard((*TournamentCard)(nil)), ErrNilCard)
	assert.Equal(t, 0, deck.Size())
	assert.Equal(t, 0, deck.GetDeckStats().TotalCards)
}

// TestDeckShuffleKeepsCards tests that the unseeded shuffle only reorders
func TestDeckShuffleKeepsCards(t *testing.T) {
	deck := buildDeck(t)
	before := names(deck.GetAll())

	deck.Shuffle()

	assert.ElementsMatch(t, before, names(deck.GetAll()))
	assert.Equal(t, len(before), deck.Size())
	stats := deck.GetDeckStats()
	assert.Equal(t, 3, stats.TotalCards)
	assert.Equal(t, stats.TotalCards, stats.Creatures+stats.Spells+stats.Artifacts)
}

func names(cs []Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.GetName())
	}
	return out
}

// TestDeckDrawOrder tests that cards come off the front in insertion order
func TestDeckDrawOrder(t *testing.T) {
	deck := buildDeck(t)

	first, err := deck.DrawCard()
	require.NoError(t, err)
	assert.Equal(t, "Lightning Bolt", first.GetName())
	assert.Equal(t, "Mana Crystal", deck.Peek().GetName())
	assert.Equal(t, 2, deck.Size())

	for _, remaining := range deck.GetAll() {
		assert.NotSame(t, first, remaining)
	}
}

// TestDeckDrawEmpty tests the empty deck error
func TestDeckDrawEmpty(t *testing.T) {
	deck := NewDeck()
	_, err := deck.DrawCard()
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Nil(t, deck.Peek())
}

// TestDeckDrawNeverDuplicates tests that drawn cards leave the deck
func TestDeckDrawNeverDuplicates(t *testing.T) {
	deck := buildDeck(t)
	deck.ShuffleWith(rand.New(rand.NewPCG(1, 2)))

	seen := make(map[Card]bool)
	for deck.Size() > 0 {
		card, err := deck.DrawCard()
		require.NoError(t, err)
		assert.False(t, seen[card], "card drawn twice")
		for _, remaining := range deck.GetAll() {
			assert.NotEqual(t, card, remaining)
		}
		seen[card] = true
	}
	assert.Len(t, seen, 3)
}

// TestDeckRemoveCard tests removal by name
func TestDeckRemoveCard(t *testing.T) {
	deck := buildDeck(t)

	assert.True(t, deck.RemoveCard("Mana Crystal"))
	assert.False(t, deck.RemoveCard("Mana Crystal"))
	assert.Equal(t, 2, deck.Size())
}

// TestDeckDrawN tests partial draws
func TestDeckDrawN(t *testing.T) {
	deck := buildDeck(t)
	drawn := deck.DrawN(5)
	assert.Len(t, drawn, 3)
	assert.Equal(t, 0, deck.Size())
}

// TestDeckStats tests per-variant counts and average cost
func TestDeckStats(t *testing.T) {
	empty := NewDeck().GetDeckStats()
	assert.Equal(t, DeckStats{}, empty)

	deck := buildDeck(t)
	elite, err := NewEliteCard("Arcane Warrior", 2, "Legendary", "melee", 10, 6, 2, 2)
	require.NoError(t, err)
	require.NoError(t, deck.AddCard(elite))

	stats := deck.GetDeckStats()
	assert.Equal(t, 4, stats.TotalCards)
	assert.Equal(t, 2, stats.Creatures)
	assert.Equal(t, 1, stats.Spells)
	assert.Equal(t, 1, stats.Artifacts)
	assert.Equal(t, stats.TotalCards, stats.Creatures+stats.Spells+stats.Artifacts)
	assert.InDelta(t, 3.0, stats.AvgCost, 0.0001)
}

// TestDeckClear tests emptying the deck
func TestDeckClear(t *testing.T) {
	deck := buildDeck(t)
	deck.Clear()
	assert.Equal(t, 0, deck.Size())
	assert.Equal(t, 0.0, deck.GetDeckStats().AvgCost)
}
