package cards

import (
	"fmt"
	"strings"
)

// ArtifactCard is a persistent card whose effect is formatted "<duration>:<effect text>"
type ArtifactCard struct {
	BaseCard
	Durability int    `json:"durability"`
	Effect     string `json:"effect"`
}

// ArtifactActivation is the parsed effect of an activated artifact
type ArtifactActivation struct {
	CardActivated string `json:"card_activated"`
	Effect        string `json:"effect"`
	Duration      string `json:"duration"`
}

// NewArtifactCard creates an artifact
func NewArtifactCard(name string, cost int, rarity string, durability int, effect string) (*ArtifactCard, error) {
	base, err := newBaseCard(name, cost, rarity)
	if err != nil {
		return nil, err
	}
	return &ArtifactCard{BaseCard: base, Durability: durability, Effect: effect}, nil
}

func (a *ArtifactCard) Kind() Kind { return KindArtifact }

// Play puts the artifact into play
func (a *ArtifactCard) Play(state *GameState) (PlaySummary, error) {
	return a.play(state, a.Effect)
}

// ActivateAbility splits the effect on its first ':'
func (a *ArtifactCard) ActivateAbility() (ArtifactActivation, error) {
	duration, effect, found := strings.Cut(a.Effect, ":")
	if !found {
		return ArtifactActivation{}, fmt.Errorf("activate %s: %w", a.Name, ErrMalformedArtifactEffect)
	}
	return ArtifactActivation{
		CardActivated: a.Name,
		Effect:        strings.TrimSpace(effect),
		Duration:      strings.TrimSpace(duration),
	}, nil
}

// GetCardInfo returns a snapshot of the public fields
func (a *ArtifactCard) GetCardInfo() map[string]interface{} {
	info := a.info()
	info["type"] = a.Kind().String()
	info["durability"] = a.Durability
	info["effect"] = a.Effect
	return info
}
