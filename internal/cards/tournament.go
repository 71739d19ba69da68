package cards

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// DefaultCombatType is used by tournament cards
const DefaultCombatType = "melee"

// TournamentCard is a ranked combatant registered with a tournament platform
type TournamentCard struct {
	BaseCard
	ID         string `json:"id"`
	CombatType string `json:"combat_type"`
	Damage     int    `json:"damage"`
	Defense    int    `json:"defense"`
	Health     int    `json:"health"`
	Rating     int    `json:"rating"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
}

var (
	_ Combatable = (*TournamentCard)(nil)
	_ Rankable   = (*TournamentCard)(nil)
)

// TournamentStats is the reporting view of a tournament card
type TournamentStats struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Wins       int      `json:"wins"`
	Losses     int      `json:"losses"`
	Rating     int      `json:"rating"`
	Interfaces []string `json:"interfaces"`
}

// NewTournamentCard creates a tournament card. An empty id is replaced by a random UUID.
// Ids containing whitespace are rejected.
func NewTournamentCard(name string, cost int, rarity string, damage, defense, health int, id string, rating int) (*TournamentCard, error) {
	base, err := newBaseCard(name, cost, rarity)
	if err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}
	if strings.ContainsFunc(id, unicode.IsSpace) {
		return nil, fmt.Errorf("tournament card %q: %w", id, ErrInvalidID)
	}
	return &TournamentCard{
		BaseCard:   base,
		ID:         id,
		CombatType: DefaultCombatType,
		Damage:     damage,
		Defense:    defense,
		Health:     health,
		Rating:     rating,
	}, nil
}

func (t *TournamentCard) Kind() Kind    { return KindTournament }
func (t *TournamentCard) GetID() string { return t.ID }

func (t *TournamentCard) Play(state *GameState) (PlaySummary, error) {
	return t.play(state, "Tournament card entered the arena")
}

// Attack hits a combatable target, which defends immediately
func (t *TournamentCard) Attack(target Card) (AttackResult, error) {
	return strike(t.Name, t.Damage, t.CombatType, target)
}

func (t *TournamentCard) Defend(incomingDamage int) DefendResult {
	return absorb(t.Name, t.Defense, &t.Health, incomingDamage)
}

func (t *TournamentCard) GetCombatStats() CombatStats {
	return CombatStats{
		Name:       t.Name,
		CombatType: t.CombatType,
		Defense:    t.Defense,
		Attack:     t.Damage,
		Health:     t.Health,
	}
}

// CalculateRating adds wins*5 - losses*2 to the rating.
// The whole record is re-added on every call, not only the latest result.
func (t *TournamentCard) CalculateRating() int {
	t.Rating += t.Wins*5 - t.Losses*2
	return t.Rating
}

func (t *TournamentCard) UpdateWins(wins int)     { t.Wins += wins }
func (t *TournamentCard) UpdateLosses(losses int) { t.Losses += losses }

func (t *TournamentCard) GetRankInfo() RankInfo {
	return RankInfo{Rank: t.Rating, Wins: t.Wins, Losses: t.Losses}
}

func (t *TournamentCard) GetTournamentStats() TournamentStats {
	return TournamentStats{
		ID:         t.ID,
		Name:       t.Name,
		Wins:       t.Wins,
		Losses:     t.Losses,
		Rating:     t.Rating,
		Interfaces: []string{"Card", "Combatable", "Rankable"},
	}
}

// IsAlive reports whether health is above zero
func (t *TournamentCard) IsAlive() bool { return t.Health > 0 }

// Record returns the "wins-losses" display string
func (t *TournamentCard) Record() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

func (t *TournamentCard) GetHealth() int         { return t.Health }
func (t *TournamentCard) AdjustHealth(delta int) { t.Health += delta }
func (t *TournamentCard) AdjustAttack(delta int) { t.Damage += delta }

func (t *TournamentCard) GetCardInfo() map[string]interface{} {
	info := t.info()
	info["type"] = t.Kind().String()
	info["id"] = t.ID
	info["combat_type"] = t.CombatType
	info["damage"] = t.Damage
	info["defense"] = t.Defense
	info["health"] = t.Health
	info["rating"] = t.Rating
	info["wins"] = t.Wins
	info["losses"] = t.Losses
	return info
}
