package cards

import "fmt"

// Combatable is a card that can attack and defend
type Combatable interface {
	Card
	Targetable
	Attack(target Card) (AttackResult, error)
	Defend(incomingDamage int) DefendResult
	GetCombatStats() CombatStats
}

// Magical is a card with a mana pool that can cast spells
type Magical interface {
	CastSpell(spellName string, targets []Combatable) SpellCast
	ChannelMana(amount int) ManaChannel
	GetMagicStats() MagicStats
}

// Rankable tracks an ELO-like rating and a win/loss record
type Rankable interface {
	CalculateRating() int
	UpdateWins(wins int)
	UpdateLosses(losses int)
	GetRankInfo() RankInfo
}

// AttackResult is the outcome of an attack including the target's defense
type AttackResult struct {
	Attacker   string       `json:"attacker"`
	Target     string       `json:"target"`
	Damage     int          `json:"damage"`
	CombatType string       `json:"combat_type,omitempty"`
	Defense    DefendResult `json:"defense"`
}

// DefendResult is the outcome of absorbing an attack
type DefendResult struct {
	Defender      string `json:"defender"`
	DamageTaken   int    `json:"damage_taken"`
	DamageBlocked int    `json:"damage_blocked"`
	StillAlive    bool   `json:"still_alive"`
}

type CombatStats struct {
	Name       string `json:"name"`
	CombatType string `json:"combat_type"`
	Defense    int    `json:"defense"`
	Attack     int    `json:"attack"`
	Health     int    `json:"health"`
}

type SpellCast struct {
	Caster   string   `json:"caster"`
	Spell    string   `json:"spell"`
	Targets  []string `json:"targets"`
	ManaUsed int      `json:"mana_used"`
}

type ManaChannel struct {
	Channeled int `json:"channeled"`
	TotalMana int `json:"total_mana"`
}

type MagicStats struct {
	Name string `json:"name"`
	Mana int    `json:"mana"`
}

// RankInfo is a rating snapshot. The rating is reported under "rank".
type RankInfo struct {
	Rank   int `json:"rank"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// SpellManaCost is the fixed price of CastSpell
const SpellManaCost = 4

// strike resolves attacker hitting target: the target defends immediately
func strike(attacker string, damage int, combatType string, target Card) (AttackResult, error) {
	defender, ok := target.(Combatable)
	if !ok {
		return AttackResult{}, fmt.Errorf("%s attacks %s: %w", attacker, target.GetName(), ErrNotCombatable)
	}
	return AttackResult{
		Attacker:   attacker,
		Target:     defender.GetName(),
		Damage:     damage,
		CombatType: combatType,
		Defense:    defender.Defend(damage),
	}, nil
}

// absorb applies max(0, incoming-defense) to health
func absorb(name string, defense int, health *int, incomingDamage int) DefendResult {
	taken := incomingDamage - defense
	if taken < 0 {
		taken = 0
	}
	result := DefendResult{
		Defender:      name,
		DamageTaken:   taken,
		DamageBlocked: defense,
		StillAlive:    *health > taken,
	}
	*health -= taken
	return result
}
