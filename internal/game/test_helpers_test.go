package game

import (
	"testing"

	"github.com/qninhdt/datadeck/server/internal/cards"
	"github.com/qninhdt/datadeck/server/internal/factory"
	"github.com/qninhdt/datadeck/server/internal/strategy"
)

// newTestEngine creates a configured engine with a seeded factory
func newTestEngine(t *testing.T) *GameEngine {
	t.Helper()
	engine := NewGameEngine(WithID("test-session"), WithSeed(7))
	if err := engine.ConfigureEngine(factory.NewFantasyCardFactory(factory.WithSeed(7)), strategy.NewAggressiveStrategy()); err != nil {
		t.Fatalf("Failed to configure engine: %v", err)
	}
	return engine
}

// testCreature creates a common creature or fails the test
func testCreature(t *testing.T, name string, cost, attack, health int) *cards.CreatureCard {
	t.Helper()
	c, err := cards.NewCreatureCard(name, cost, "Common", attack, health)
	if err != nil {
		t.Fatalf("Failed to create creature %s: %v", name, err)
	}
	return c
}

// testSpell creates a damage spell or fails the test
func testSpell(t *testing.T, name string, cost int) *cards.SpellCard {
	t.Helper()
	s, err := cards.NewSpellCard(name, cost, "Common", "Deal 3 damage to target")
	if err != nil {
		t.Fatalf("Failed to create spell %s: %v", name, err)
	}
	return s
}
