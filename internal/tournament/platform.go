package tournament

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qninhdt/datadeck/server/internal/cards"
)

// PlatformStatus is reported by every tournament report
const PlatformStatus = "Active"

// ErrCardsNotFound is the match error message for unknown card ids
const ErrCardsNotFound = "One or both cards not found"

// ErrSelfMatch is the match error message when both ids resolve to the same card
const ErrSelfMatch = "A card cannot fight itself"

// Platform registers tournament cards, runs matches and ranks the field
type Platform struct {
	registry      []*cards.TournamentCard
	matchesPlayed int
	logger        *zap.Logger
	mu            sync.Mutex
}

// MatchResult is the outcome of one match. A failed lookup or a self-match only sets Error.
type MatchResult struct {
	MatchID      string    `json:"match_id,omitempty"`
	Number       int       `json:"match_number"`
	Winner       string    `json:"winner,omitempty"`
	Loser        string    `json:"loser,omitempty"`
	WinnerRating int       `json:"winner_rating"`
	LoserRating  int       `json:"loser_rating"`
	Draw         bool      `json:"draw,omitempty"`
	Error        string    `json:"error,omitempty"`
	PlayedAt     time.Time `json:"played_at"`

	WinnerID string `json:"winner_id,omitempty"`
	LoserID  string `json:"loser_id,omitempty"`

	// Attacks in resolution order, card1 first
	Attacks []cards.AttackResult `json:"attacks,omitempty"`
}

// LeaderboardEntry is one ranked line of the leaderboard
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	ID     string `json:"id"`
	Rating int    `json:"rating"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Record string `json:"record"`
}

// Report summarizes the platform
type Report struct {
	TotalCards     int     `json:"total_cards"`
	MatchesPlayed  int     `json:"matches_played"`
	AverageRating  float64 `json:"average_rating"`
	PlatformStatus string  `json:"platform_status"`
}

// NewPlatform creates an empty platform
func NewPlatform(logger *zap.Logger) *Platform {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Platform{
		registry: make([]*cards.TournamentCard, 0),
		logger:   logger,
	}
}

// RegisterCard appends a card to the registry. Duplicate ids are not rejected.
func (p *Platform) RegisterCard(card *cards.TournamentCard) (string, error) {
	if card == nil {
		return "", cards.ErrNilCard
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.registry = append(p.registry, card)
	p.logger.Info("card registered",
		zap.String("card_id", card.ID),
		zap.String("name", card.Name),
		zap.Int("rating", card.Rating),
	)
	return fmt.Sprintf("Card %s with ID %s registered.", card.Name, card.ID), nil
}

// GetCard returns the first registered card with the given id
func (p *Platform) GetCard(id string) (*cards.TournamentCard, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.find(id)
	return c, c != nil
}

func (p *Platform) find(id string) *cards.TournamentCard {
	for _, c := range p.registry {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CreateMatch has card1 attack card2, then card2 attack card1, and scores the result.
// A card matched against itself gets an ErrSelfMatch result and no combat.
// The sole survivor wins. If both survive the one with more health left wins, equal
// health is a draw. If neither survives the match is a draw. Draws leave records and
// ratings untouched.
func (p *Platform) CreateMatch(id1, id2 string) (MatchResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.matchesPlayed++
	result := MatchResult{Number: p.matchesPlayed, PlayedAt: time.Now()}

	card1, card2 := p.find(id1), p.find(id2)
	if card1 == nil || card2 == nil {
		result.Error = ErrCardsNotFound
		p.logger.Warn("match lookup failed", zap.String("card1_id", id1), zap.String("card2_id", id2))
		return result, nil
	}
	if card1 == card2 {
		result.Error = ErrSelfMatch
		p.logger.Warn("self match rejected", zap.String("card_id", id1))
		return result, nil
	}
	result.MatchID = uuid.NewString()

	first, err := card1.Attack(card2)
	if err != nil {
		return MatchResult{}, fmt.Errorf("match %d: %w", result.Number, err)
	}
	second, err := card2.Attack(card1)
	if err != nil {
		return MatchResult{}, fmt.Errorf("match %d: %w", result.Number, err)
	}
	result.Attacks = []cards.AttackResult{first, second}

	winner, loser := decide(card1, card2, second.Defense.StillAlive, first.Defense.StillAlive)
	if winner == nil {
		result.Draw = true
		p.logger.Info("match drawn",
			zap.Int("match", result.Number),
			zap.String("card1", card1.Name),
			zap.String("card2", card2.Name),
		)
		return result, nil
	}

	winner.UpdateWins(1)
	loser.UpdateLosses(1)
	result.Winner = winner.Name
	result.WinnerID = winner.ID
	result.WinnerRating = winner.CalculateRating()
	result.Loser = loser.Name
	result.LoserID = loser.ID
	result.LoserRating = loser.CalculateRating()

	p.logger.Info("match played",
		zap.Int("match", result.Number),
		zap.String("winner", winner.Name),
		zap.String("loser", loser.Name),
		zap.Int("winner_rating", result.WinnerRating),
		zap.Int("loser_rating", result.LoserRating),
	)
	return result, nil
}

// decide returns nil, nil for a draw
func decide(card1, card2 *cards.TournamentCard, alive1, alive2 bool) (winner, loser *cards.TournamentCard) {
	switch {
	case alive1 && !alive2:
		return card1, card2
	case alive2 && !alive1:
		return card2, card1
	case !alive1 && !alive2:
		return nil, nil
	case card1.Health > card2.Health:
		return card1, card2
	case card2.Health > card1.Health:
		return card2, card1
	}
	return nil, nil
}

// GetLeaderboard ranks cards by rating, keeping registration order on ties
func (p *Platform) GetLeaderboard() []LeaderboardEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	ranked := append([]*cards.TournamentCard(nil), p.registry...)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})

	board := make([]LeaderboardEntry, 0, len(ranked))
	for i, c := range ranked {
		board = append(board, LeaderboardEntry{
			Rank:   i + 1,
			Name:   c.Name,
			ID:     c.ID,
			Rating: c.Rating,
			Wins:   c.Wins,
			Losses: c.Losses,
			Record: c.Record(),
		})
	}
	return board
}

// GenerateTournamentReport summarizes the registry
func (p *Platform) GenerateTournamentReport() Report {
	p.mu.Lock()
	defer p.mu.Unlock()

	report := Report{
		TotalCards:     len(p.registry),
		MatchesPlayed:  p.matchesPlayed,
		PlatformStatus: PlatformStatus,
	}
	if len(p.registry) == 0 {
		return report
	}
	total := 0
	for _, c := range p.registry {
		total += c.Rating
	}
	report.AverageRating = float64(total) / float64(len(p.registry))
	return report
}
