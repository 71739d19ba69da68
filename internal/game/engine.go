package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qninhdt/datadeck/server/internal/cards"
	"github.com/qninhdt/datadeck/server/internal/factory"
	"github.com/qninhdt/datadeck/server/internal/strategy"
)

var (
	ErrNotConfigured  = errors.New("engine has no factory or strategy configured")
	ErrNotEnoughCards = errors.New("not enough cards in deck")
)

// GameEngine runs turns for one simulation session
type GameEngine struct {
	ID       string
	strategy strategy.Strategy
	factory  factory.CardFactory
	deck     *cards.Deck
	board    *Board
	history  *TurnHistory
	rng      *rand.Rand
	logger   *zap.Logger

	turnsSimulated int
	totalDamage    int
	cardsPlayed    int

	mu sync.RWMutex
}

// Option configures a GameEngine
type Option func(*GameEngine)

// WithID sets the session id
func WithID(id string) Option {
	return func(e *GameEngine) { e.ID = id }
}

// WithLogger sets the engine logger
func WithLogger(l *zap.Logger) Option {
	return func(e *GameEngine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed makes deck shuffles reproducible
func WithSeed(seed uint64) Option {
	return func(e *GameEngine) { e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// NewGameEngine creates an unconfigured engine
func NewGameEngine(opts ...Option) *GameEngine {
	e := &GameEngine{
		ID:      uuid.NewString(),
		deck:    cards.NewDeck(),
		board:   NewBoard(),
		history: NewTurnHistory(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("session_id", e.ID))
	return e
}

// ConfigureEngine wires the card factory and the turn strategy
func (e *GameEngine) ConfigureEngine(f factory.CardFactory, s strategy.Strategy) error {
	if f == nil || s == nil {
		return ErrNotConfigured
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.factory = f
	e.strategy = s
	e.logger.Info("engine configured",
		zap.String("factory", f.GetInfo()),
		zap.String("strategy", s.GetStrategyName()),
	)
	return nil
}

// IsConfigured reports whether both collaborators are set
func (e *GameEngine) IsConfigured() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.factory != nil && e.strategy != nil
}

// BuildDeck fills the deck with a themed deck of size cards per category and shuffles it
func (e *GameEngine) BuildDeck(size int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.factory == nil {
		return ErrNotConfigured
	}
	themed, err := e.factory.CreateThemedDeck(size)
	if err != nil {
		return fmt.Errorf("build deck: %w", err)
	}
	for _, card := range themed.All() {
		if err := e.deck.AddCard(card); err != nil {
			return err
		}
	}
	if e.rng != nil {
		e.deck.ShuffleWith(e.rng)
	} else {
		e.deck.Shuffle()
	}
	return nil
}

// AddToDeck appends cards to the bottom of the deck
func (e *GameEngine) AddToDeck(cs ...cards.Card) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, card := range cs {
		if err := e.deck.AddCard(card); err != nil {
			return err
		}
	}
	return nil
}

// DrawCards moves n cards from the top of the deck into the hand.
// Nothing is drawn when the deck holds fewer than n cards.
func (e *GameEngine) DrawCards(n int) ([]cards.Card, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if n < 0 {
		return nil, fmt.Errorf("draw %d cards: negative count", n)
	}
	if e.deck.Size() < n {
		return nil, fmt.Errorf("draw %d cards from %d: %w", n, e.deck.Size(), ErrNotEnoughCards)
	}
	drawn := e.deck.DrawN(n)
	e.board.AddToHand(drawn...)
	return drawn, nil
}

// AddToHand puts cards straight into the hand
func (e *GameEngine) AddToHand(cs ...cards.Card) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.board.AddToHand(cs...)
}

// SetEnemyBattlefield replaces the targets the strategy attacks
func (e *GameEngine) SetEnemyBattlefield(cs []cards.Card) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.board.SetEnemyBattlefield(cs)
}

// Hand returns a copy of the current hand
func (e *GameEngine) Hand() []cards.Card {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]cards.Card(nil), e.board.Hand...)
}

// SimulateTurn lets the strategy act on the hand against the enemy battlefield.
// Played cards leave the hand; creature-like cards stay on the battlefield.
func (e *GameEngine) SimulateTurn() (strategy.TurnSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.factory == nil || e.strategy == nil {
		return strategy.TurnSummary{}, ErrNotConfigured
	}

	summary, err := e.strategy.ExecuteTurn(e.board.Hand, e.board.EnemyBattlefield)
	if err != nil {
		return strategy.TurnSummary{}, fmt.Errorf("turn %d: %w", e.turnsSimulated+1, err)
	}

	e.board.RemoveFromHand(summary.Played)
	for _, card := range summary.Played {
		if cards.IsCreatureLike(card) {
			e.board.Deploy(card)
		}
	}

	e.turnsSimulated++
	e.totalDamage += summary.DamageDealt
	e.cardsPlayed += len(summary.CardsPlayed)

	e.history.Record(&TurnRecord{
		SessionID:   e.ID,
		Turn:        e.turnsSimulated,
		Strategy:    e.strategy.GetStrategyName(),
		CardsPlayed: summary.CardsPlayed,
		ManaUsed:    summary.ManaUsed,
		Targets:     summary.TargetNames(),
		DamageDealt: summary.DamageDealt,
		PlayedAt:    time.Now(),
	})

	e.logger.Info("turn simulated",
		zap.Int("turn", e.turnsSimulated),
		zap.Strings("cards_played", summary.CardsPlayed),
		zap.Int("damage_dealt", summary.DamageDealt),
	)
	return summary, nil
}

// EngineStatus is the cumulative state of a session
type EngineStatus struct {
	TurnsSimulated int    `json:"turns_simulated"`
	StrategyUsed   string `json:"strategy_used"`
	Factory        string `json:"factory"`
	TotalDamage    int    `json:"total_damage"`
	CardsPlayed    int    `json:"cards_played"`
	DeckSize       int    `json:"deck_size"`
	HandSize       int    `json:"hand_size"`
}

// GetEngineStatus reports run-level totals
func (e *GameEngine) GetEngineStatus() EngineStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()

	status := EngineStatus{
		TurnsSimulated: e.turnsSimulated,
		TotalDamage:    e.totalDamage,
		CardsPlayed:    e.cardsPlayed,
		DeckSize:       e.deck.Size(),
		HandSize:       len(e.board.Hand),
	}
	if e.strategy != nil {
		status.StrategyUsed = e.strategy.GetStrategyName()
	}
	if e.factory != nil {
		status.Factory = e.factory.GetInfo()
	}
	return status
}

// GetBoard returns a display snapshot of the board
func (e *GameEngine) GetBoard() map[string]interface{} {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.board.Snapshot()
}

// DrainHistory returns turn records not yet persisted
func (e *GameEngine) DrainHistory() []*TurnRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Drain()
}
