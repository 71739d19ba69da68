package cards

// SpellCard is a one-shot effect described by free text such as "Deal 3 damage to target"
type SpellCard struct {
	BaseCard
	EffectType string `json:"effect_type"`
}

// SpellResolution summarizes a resolved spell
type SpellResolution struct {
	CardPlayed string     `json:"card_played"`
	Targets    []string   `json:"targets"`
	Value      int        `json:"value"`
	Effect     EffectKind `json:"effect,omitempty"`
}

// NewSpellCard creates a spell
func NewSpellCard(name string, cost int, rarity, effectType string) (*SpellCard, error) {
	base, err := newBaseCard(name, cost, rarity)
	if err != nil {
		return nil, err
	}
	return &SpellCard{BaseCard: base, EffectType: effectType}, nil
}

func (s *SpellCard) Kind() Kind { return KindSpell }

// Play casts the spell
func (s *SpellCard) Play(state *GameState) (PlaySummary, error) {
	return s.play(state, s.EffectType)
}

// ResolveEffect applies the spell to every target.
// Fails before touching any target when the descriptor has no number.
func (s *SpellCard) ResolveEffect(targets []EffectTarget) (SpellResolution, error) {
	executor, err := NewEffectExecutor(s.EffectType)
	if err != nil {
		return SpellResolution{}, err
	}

	resolution := SpellResolution{
		CardPlayed: s.Name,
		Targets:    make([]string, 0, len(targets)),
		Value:      executor.Value(),
	}
	for _, target := range targets {
		resolution.Targets = append(resolution.Targets, target.GetName())
	}
	for _, target := range targets {
		if kind, applied := executor.Apply(target); applied {
			resolution.Effect = kind
		}
	}
	return resolution, nil
}

// GetCardInfo returns a snapshot of the public fields
func (s *SpellCard) GetCardInfo() map[string]interface{} {
	info := s.info()
	info["type"] = s.Kind().String()
	info["effect_type"] = s.EffectType
	return info
}
