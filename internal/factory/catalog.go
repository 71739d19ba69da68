package factory

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qninhdt/datadeck/server/internal/cards"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// CreatureTemplate describes a producible creature
type CreatureTemplate struct {
	Name   string `yaml:"name" json:"name"`
	Cost   int    `yaml:"cost" json:"cost"`
	Rarity string `yaml:"rarity" json:"rarity"`
	Attack int    `yaml:"attack" json:"attack"`
	Health int    `yaml:"health" json:"health"`
}

// SpellTemplate describes a producible spell
type SpellTemplate struct {
	Name       string `yaml:"name" json:"name"`
	Cost       int    `yaml:"cost" json:"cost"`
	Rarity     string `yaml:"rarity" json:"rarity"`
	EffectType string `yaml:"effect_type" json:"effect_type"`
}

// ArtifactTemplate describes a producible artifact
type ArtifactTemplate struct {
	Name       string `yaml:"name" json:"name"`
	Cost       int    `yaml:"cost" json:"cost"`
	Rarity     string `yaml:"rarity" json:"rarity"`
	Durability int    `yaml:"durability" json:"durability"`
	Effect     string `yaml:"effect" json:"effect"`
}

// Catalog is the fixed set of templates a factory draws from
type Catalog struct {
	Creatures []CreatureTemplate `yaml:"creatures"`
	Spells    []SpellTemplate    `yaml:"spells"`
	Artifacts []ArtifactTemplate `yaml:"artifacts"`
}

// ParseCatalog decodes and validates a YAML catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	if err := catalog.validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// LoadCatalog reads a YAML catalog from disk
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// BuiltinCatalog returns the embedded Fantasy catalog
func BuiltinCatalog() *Catalog {
	catalog, err := ParseCatalog(builtinCatalog)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return catalog
}

// validate instantiates every template once so bad entries fail at load time
func (c *Catalog) validate() error {
	if len(c.Creatures) == 0 || len(c.Spells) == 0 || len(c.Artifacts) == 0 {
		return fmt.Errorf("catalog needs at least one creature, spell and artifact")
	}
	for _, t := range c.Creatures {
		if _, err := t.build(); err != nil {
			return fmt.Errorf("creature %q: %w", t.Name, err)
		}
	}
	for _, t := range c.Spells {
		if _, err := t.build(); err != nil {
			return fmt.Errorf("spell %q: %w", t.Name, err)
		}
		if _, err := cards.ParseEffectValue(t.EffectType); err != nil {
			return fmt.Errorf("spell %q: %w", t.Name, err)
		}
	}
	for _, t := range c.Artifacts {
		if _, err := t.build(); err != nil {
			return fmt.Errorf("artifact %q: %w", t.Name, err)
		}
	}
	return nil
}

func (t CreatureTemplate) build() (*cards.CreatureCard, error) {
	return cards.NewCreatureCard(t.Name, t.Cost, t.Rarity, t.Attack, t.Health)
}

func (t SpellTemplate) build() (*cards.SpellCard, error) {
	return cards.NewSpellCard(t.Name, t.Cost, t.Rarity, t.EffectType)
}

func (t ArtifactTemplate) build() (*cards.ArtifactCard, error) {
	return cards.NewArtifactCard(t.Name, t.Cost, t.Rarity, t.Durability, t.Effect)
}
