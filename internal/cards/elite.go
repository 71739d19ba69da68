package cards

// EliteCard fights and casts spells
type EliteCard struct {
	BaseCard
	CombatType string `json:"combat_type"`
	Health     int    `json:"health"`
	Damage     int    `json:"damage"`
	Defense    int    `json:"defense"`
	Mana       int    `json:"mana"`
}

var (
	_ Combatable = (*EliteCard)(nil)
	_ Magical    = (*EliteCard)(nil)
)

// NewEliteCard creates an elite card
func NewEliteCard(name string, cost int, rarity, combatType string, health, damage, defense, mana int) (*EliteCard, error) {
	base, err := newBaseCard(name, cost, rarity)
	if err != nil {
		return nil, err
	}
	return &EliteCard{
		BaseCard:   base,
		CombatType: combatType,
		Health:     health,
		Damage:     damage,
		Defense:    defense,
		Mana:       mana,
	}, nil
}

func (e *EliteCard) Kind() Kind { return KindElite }

func (e *EliteCard) Play(state *GameState) (PlaySummary, error) {
	return e.play(state, "Elite card played on terrain")
}

// Attack hits a combatable target, which defends immediately
func (e *EliteCard) Attack(target Card) (AttackResult, error) {
	return strike(e.Name, e.Damage, e.CombatType, target)
}

func (e *EliteCard) Defend(incomingDamage int) DefendResult {
	return absorb(e.Name, e.Defense, &e.Health, incomingDamage)
}

func (e *EliteCard) GetCombatStats() CombatStats {
	return CombatStats{
		Name:       e.Name,
		CombatType: e.CombatType,
		Defense:    e.Defense,
		Attack:     e.Damage,
		Health:     e.Health,
	}
}

// CastSpell spends SpellManaCost. The pool is allowed to go negative.
func (e *EliteCard) CastSpell(spellName string, targets []Combatable) SpellCast {
	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.GetName())
	}
	e.Mana -= SpellManaCost
	return SpellCast{
		Caster:   e.Name,
		Spell:    spellName,
		Targets:  names,
		ManaUsed: SpellManaCost,
	}
}

func (e *EliteCard) ChannelMana(amount int) ManaChannel {
	e.Mana += amount
	return ManaChannel{Channeled: amount, TotalMana: e.Mana}
}

func (e *EliteCard) GetMagicStats() MagicStats {
	return MagicStats{Name: e.Name, Mana: e.Mana}
}

func (e *EliteCard) GetHealth() int         { return e.Health }
func (e *EliteCard) AdjustHealth(delta int) { e.Health += delta }
func (e *EliteCard) AdjustAttack(delta int) { e.Damage += delta }

func (e *EliteCard) GetCardInfo() map[string]interface{} {
	info := e.info()
	info["type"] = e.Kind().String()
	info["combat_type"] = e.CombatType
	info["health"] = e.Health
	info["damage"] = e.Damage
	info["defense"] = e.Defense
	info["mana"] = e.Mana
	return info
}
