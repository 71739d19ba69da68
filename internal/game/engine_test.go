package game

import (
	"errors"
	"testing"

	"github.com/qninhdt/datadeck/server/internal/cards"
	"github.com/qninhdt/datadeck/server/internal/factory"
)

// TestNewGameEngine tests engine creation
func TestNewGameEngine(t *testing.T) {
	engine := NewGameEngine()

	if engine.ID == "" {
		t.Error("Expected generated session ID")
	}

	if engine.IsConfigured() {
		t.Error("New engine should not be configured")
	}

	status := engine.GetEngineStatus()
	if status.TurnsSimulated != 0 || status.TotalDamage != 0 || status.CardsPlayed != 0 {
		t.Errorf("Expected zero status, got %+v", status)
	}
}

// TestSimulateTurnUnconfigured tests that turns require configuration
func TestSimulateTurnUnconfigured(t *testing.T) {
	engine := NewGameEngine()

	if _, err := engine.SimulateTurn(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}

	if err := engine.BuildDeck(1); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured from BuildDeck, got %v", err)
	}

	if err := engine.ConfigureEngine(nil, nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured for nil collaborators, got %v", err)
	}
}

// TestSimulateTurn tests a single aggressive turn
func TestSimulateTurn(t *testing.T) {
	engine := newTestEngine(t)
	goblin := testCreature(t, "Goblin Warrior", 2, 2, 1)
	dragon := testCreature(t, "Fire Dragon", 5, 7, 5)
	bolt := testSpell(t, "Lightning Bolt", 3)
	engine.AddToHand(goblin, dragon, bolt)

	summary, err := engine.SimulateTurn()
	if err != nil {
		t.Fatalf("SimulateTurn failed: %v", err)
	}

	if len(summary.CardsPlayed) != 2 {
		t.Fatalf("Expected 2 cards played, got %v", summary.CardsPlayed)
	}
	if summary.ManaUsed != 5 {
		t.Errorf("Expected 5 mana used, got %d", summary.ManaUsed)
	}
	if summary.DamageDealt != 2 {
		t.Errorf("Expected 2 damage, got %d", summary.DamageDealt)
	}
	if names := summary.TargetNames(); len(names) != 1 || names[0] != "Enemy Player" {
		t.Errorf("Expected Enemy Player target, got %v", names)
	}

	hand := engine.Hand()
	if len(hand) != 1 || hand[0] != cards.Card(dragon) {
		t.Errorf("Expected only the dragon left in hand, got %v", hand)
	}

	board := engine.GetBoard()
	battlefield := board["battlefield"].([]string)
	if len(battlefield) != 1 || battlefield[0] != "Goblin Warrior" {
		t.Errorf("Expected goblin on battlefield, got %v", battlefield)
	}
}

// TestSimulateTurnAccumulates tests run-level totals across turns
func TestSimulateTurnAccumulates(t *testing.T) {
	engine := newTestEngine(t)
	engine.AddToHand(testCreature(t, "A", 1, 3, 3), testCreature(t, "B", 6, 4, 4))

	if _, err := engine.SimulateTurn(); err != nil {
		t.Fatalf("First turn failed: %v", err)
	}
	// Only B remains, so the whole hand is played
	if _, err := engine.SimulateTurn(); err != nil {
		t.Fatalf("Second turn failed: %v", err)
	}
	// Empty hand
	if _, err := engine.SimulateTurn(); err != nil {
		t.Fatalf("Third turn failed: %v", err)
	}

	status := engine.GetEngineStatus()
	if status.TurnsSimulated != 3 {
		t.Errorf("Expected 3 turns, got %d", status.TurnsSimulated)
	}
	if status.TotalDamage != 7 {
		t.Errorf("Expected total damage 7, got %d", status.TotalDamage)
	}
	if status.CardsPlayed != 2 {
		t.Errorf("Expected 2 cards played, got %d", status.CardsPlayed)
	}
	if status.StrategyUsed != "Aggressive Strategy" {
		t.Errorf("Unexpected strategy %q", status.StrategyUsed)
	}
	if status.Factory != "Fantasy Factory" {
		t.Errorf("Unexpected factory %q", status.Factory)
	}
}

// TestSessionsAreIndependent tests that counters are not shared between engines
func TestSessionsAreIndependent(t *testing.T) {
	first := newTestEngine(t)
	second := newTestEngine(t)

	first.AddToHand(testCreature(t, "A", 1, 1, 1))
	if _, err := first.SimulateTurn(); err != nil {
		t.Fatalf("SimulateTurn failed: %v", err)
	}

	if got := second.GetEngineStatus().TurnsSimulated; got != 0 {
		t.Errorf("Expected second engine untouched, got %d turns", got)
	}
}

// TestEnemyBattlefieldTargets tests that weak enemies are targeted
func TestEnemyBattlefieldTargets(t *testing.T) {
	engine := newTestEngine(t)
	engine.AddToHand(testCreature(t, "A", 1, 1, 1))
	engine.SetEnemyBattlefield([]cards.Card{
		testCreature(t, "Weak", 1, 1, 2),
		testCreature(t, "Tough", 5, 5, 9),
	})

	summary, err := engine.SimulateTurn()
	if err != nil {
		t.Fatalf("SimulateTurn failed: %v", err)
	}

	names := summary.TargetNames()
	if len(names) != 1 || names[0] != "Weak" {
		t.Errorf("Expected [Weak], got %v", names)
	}
}

// TestBuildDeckAndDraw tests deck building and drawing into the hand
func TestBuildDeckAndDraw(t *testing.T) {
	engine := newTestEngine(t)

	if err := engine.BuildDeck(2); err != nil {
		t.Fatalf("BuildDeck failed: %v", err)
	}
	if got := engine.GetEngineStatus().DeckSize; got != 6 {
		t.Fatalf("Expected 6 cards in deck, got %d", got)
	}

	drawn, err := engine.DrawCards(4)
	if err != nil {
		t.Fatalf("DrawCards failed: %v", err)
	}
	if len(drawn) != 4 {
		t.Errorf("Expected 4 drawn cards, got %d", len(drawn))
	}

	status := engine.GetEngineStatus()
	if status.DeckSize != 2 || status.HandSize != 4 {
		t.Errorf("Expected deck 2 / hand 4, got %d / %d", status.DeckSize, status.HandSize)
	}

	if _, err := engine.DrawCards(3); !errors.Is(err, ErrNotEnoughCards) {
		t.Errorf("Expected ErrNotEnoughCards, got %v", err)
	}
	if got := engine.GetEngineStatus().HandSize; got != 4 {
		t.Errorf("Failed draw should not change the hand, got %d", got)
	}
}

// TestBuildDeckInvalidSize tests factory errors surface from BuildDeck
func TestBuildDeckInvalidSize(t *testing.T) {
	engine := newTestEngine(t)

	if err := engine.BuildDeck(-1); !errors.Is(err, factory.ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}

// TestDrainHistory tests that turn records are drained once
func TestDrainHistory(t *testing.T) {
	engine := newTestEngine(t)
	engine.AddToHand(testCreature(t, "A", 1, 2, 1), testSpell(t, "Zap", 1))

	if _, err := engine.SimulateTurn(); err != nil {
		t.Fatalf("SimulateTurn failed: %v", err)
	}

	records := engine.DrainHistory()
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.SessionID != "test-session" || rec.Turn != 1 {
		t.Errorf("Unexpected record identity %+v", rec)
	}
	if rec.ManaUsed != 2 || rec.DamageDealt != 2 || len(rec.CardsPlayed) != 2 {
		t.Errorf("Unexpected record totals %+v", rec)
	}

	if again := engine.DrainHistory(); len(again) != 0 {
		t.Errorf("Expected empty history after drain, got %d", len(again))
	}
}
