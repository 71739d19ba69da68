package cards

import "fmt"

// CreatureCard is a summonable unit with attack and health
type CreatureCard struct {
	BaseCard
	Attack int `json:"attack"`
	Health int `json:"health"`
}

// AttackSummary reports what an attack would do. It applies no damage.
type AttackSummary struct {
	Attacker       string `json:"attacker"`
	Target         string `json:"target"`
	DamageDealt    int    `json:"damage_dealt"`
	CombatResolved bool   `json:"combat_resolved"`
}

// NewCreatureCard creates a creature, rejecting negative cost, attack or health
func NewCreatureCard(name string, cost int, rarity string, attack, health int) (*CreatureCard, error) {
	base, err := newBaseCard(name, cost, rarity)
	if err != nil {
		return nil, err
	}
	if attack < 0 || health < 0 {
		return nil, fmt.Errorf("%w: %s has attack %d, health %d", ErrNegativeStats, name, attack, health)
	}
	return &CreatureCard{BaseCard: base, Attack: attack, Health: health}, nil
}

func (c *CreatureCard) Kind() Kind { return KindCreature }

// Play summons the creature
func (c *CreatureCard) Play(state *GameState) (PlaySummary, error) {
	return c.play(state, "Creature summoned to battlefield")
}

// AttackTarget describes an attack on target. Damage is applied by the caller.
func (c *CreatureCard) AttackTarget(target Targetable) AttackSummary {
	return AttackSummary{
		Attacker:       c.Name,
		Target:         target.GetName(),
		DamageDealt:    c.Attack,
		CombatResolved: c.IsDamageToKill(target),
	}
}

// IsDamageToKill reports whether one hit from this creature is lethal
func (c *CreatureCard) IsDamageToKill(target Targetable) bool {
	return c.Attack >= target.GetHealth()
}

func (c *CreatureCard) GetHealth() int         { return c.Health }
func (c *CreatureCard) AdjustHealth(delta int) { c.Health += delta }
func (c *CreatureCard) AdjustAttack(delta int) { c.Attack += delta }

// GetCardInfo returns a snapshot of the public fields
func (c *CreatureCard) GetCardInfo() map[string]interface{} {
	info := c.info()
	info["type"] = c.Kind().String()
	info["attack"] = c.Attack
	info["health"] = c.Health
	return info
}
