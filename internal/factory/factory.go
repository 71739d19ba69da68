package factory

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/qninhdt/datadeck/server/internal/cards"
)

var (
	ErrUnsupportedSelector = errors.New("unsupported selector")
	ErrTemplateNotFound    = errors.New("no template matches selector")
	ErrInvalidSize         = errors.New("deck size must not be negative")
)

// Category names used by GetSupportedTypes and ThemedDeck
const (
	CategoryCreatures = "creatures"
	CategorySpells    = "spells"
	CategoryArtifacts = "artifacts"
)

// CardFactory produces cards from a template catalog
type CardFactory interface {
	CreateCreature(sel Selector) (cards.Card, error)
	CreateSpell(sel Selector) (cards.Card, error)
	CreateArtifact(sel Selector) (cards.Card, error)
	CreateThemedDeck(size int) (*ThemedDeck, error)
	GetSupportedTypes() map[string][]string
	GetInfo() string
}

// ThemedDeck holds random picks per category
type ThemedDeck struct {
	Creatures []cards.Card `json:"creatures"`
	Spells    []cards.Card `json:"spells"`
	Artifacts []cards.Card `json:"artifacts"`
}

// All returns every card, creatures first
func (t *ThemedDeck) All() []cards.Card {
	all := make([]cards.Card, 0, len(t.Creatures)+len(t.Spells)+len(t.Artifacts))
	all = append(all, t.Creatures...)
	all = append(all, t.Spells...)
	return append(all, t.Artifacts...)
}

// Deck puts every card into a new deck
func (t *ThemedDeck) Deck() (*cards.Deck, error) {
	deck := cards.NewDeck()
	for _, card := range t.All() {
		if err := deck.AddCard(card); err != nil {
			return nil, err
		}
	}
	return deck, nil
}

// FantasyCardFactory draws from a fixed catalog.
// The random source is the only mutable state and is guarded by mu.
type FantasyCardFactory struct {
	catalog *Catalog
	rng     *rand.Rand
	mu      sync.Mutex
}

var _ CardFactory = (*FantasyCardFactory)(nil)

// Option configures a FantasyCardFactory
type Option func(*FantasyCardFactory)

// WithCatalog replaces the builtin catalog
func WithCatalog(catalog *Catalog) Option {
	return func(f *FantasyCardFactory) { f.catalog = catalog }
}

// WithSeed makes random selection deterministic
func WithSeed(seed uint64) Option {
	return func(f *FantasyCardFactory) { f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// NewFantasyCardFactory creates a factory over the builtin catalog
func NewFantasyCardFactory(opts ...Option) *FantasyCardFactory {
	f := &FantasyCardFactory{}
	for _, opt := range opts {
		opt(f)
	}
	if f.catalog == nil {
		f.catalog = BuiltinCatalog()
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return f
}

// CreateCreature selects randomly, by name or by attack
func (f *FantasyCardFactory) CreateCreature(sel Selector) (cards.Card, error) {
	var matches []CreatureTemplate
	for _, t := range f.catalog.Creatures {
		switch sel.kind {
		case selectAny:
			matches = append(matches, t)
		case selectName:
			if t.Name == sel.name {
				matches = append(matches, t)
			}
		case selectAttack:
			if t.Attack == sel.attack {
				matches = append(matches, t)
			}
		default:
			return nil, fmt.Errorf("create creature: %w: %s", ErrUnsupportedSelector, sel)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("create creature: %w: %s", ErrTemplateNotFound, sel)
	}
	card, err := matches[f.intN(len(matches))].build()
	if err != nil {
		return nil, err
	}
	return card, nil
}

// CreateSpell selects randomly or by name
func (f *FantasyCardFactory) CreateSpell(sel Selector) (cards.Card, error) {
	if sel.kind == selectAttack {
		return nil, fmt.Errorf("create spell: %w: %s", ErrUnsupportedSelector, sel)
	}
	var matches []SpellTemplate
	for _, t := range f.catalog.Spells {
		switch sel.kind {
		case selectAny:
			matches = append(matches, t)
		case selectName:
			if t.Name == sel.name {
				matches = append(matches, t)
			}
		default:
			return nil, fmt.Errorf("create spell: %w: %s", ErrUnsupportedSelector, sel)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("create spell: %w: %s", ErrTemplateNotFound, sel)
	}
	card, err := matches[f.intN(len(matches))].build()
	if err != nil {
		return nil, err
	}
	return card, nil
}

// CreateArtifact selects randomly or by name
func (f *FantasyCardFactory) CreateArtifact(sel Selector) (cards.Card, error) {
	if sel.kind == selectAttack {
		return nil, fmt.Errorf("create artifact: %w: %s", ErrUnsupportedSelector, sel)
	}
	var matches []ArtifactTemplate
	for _, t := range f.catalog.Artifacts {
		switch sel.kind {
		case selectAny:
			matches = append(matches, t)
		case selectName:
			if t.Name == sel.name {
				matches = append(matches, t)
			}
		default:
			return nil, fmt.Errorf("create artifact: %w: %s", ErrUnsupportedSelector, sel)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("create artifact: %w: %s", ErrTemplateNotFound, sel)
	}
	card, err := matches[f.intN(len(matches))].build()
	if err != nil {
		return nil, err
	}
	return card, nil
}

// CreateThemedDeck returns size random picks per category
func (f *FantasyCardFactory) CreateThemedDeck(size int) (*ThemedDeck, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	deck := &ThemedDeck{
		Creatures: make([]cards.Card, 0, size),
		Spells:    make([]cards.Card, 0, size),
		Artifacts: make([]cards.Card, 0, size),
	}
	for i := 0; i < size; i++ {
		creature, err := f.CreateCreature(Any())
		if err != nil {
			return nil, err
		}
		spell, err := f.CreateSpell(Any())
		if err != nil {
			return nil, err
		}
		artifact, err := f.CreateArtifact(Any())
		if err != nil {
			return nil, err
		}
		deck.Creatures = append(deck.Creatures, creature)
		deck.Spells = append(deck.Spells, spell)
		deck.Artifacts = append(deck.Artifacts, artifact)
	}
	return deck, nil
}

// GetSupportedTypes returns catalog names grouped by category
func (f *FantasyCardFactory) GetSupportedTypes() map[string][]string {
	types := map[string][]string{
		CategoryCreatures: make([]string, 0, len(f.catalog.Creatures)),
		CategorySpells:    make([]string, 0, len(f.catalog.Spells)),
		CategoryArtifacts: make([]string, 0, len(f.catalog.Artifacts)),
	}
	for _, t := range f.catalog.Creatures {
		types[CategoryCreatures] = append(types[CategoryCreatures], t.Name)
	}
	for _, t := range f.catalog.Spells {
		types[CategorySpells] = append(types[CategorySpells], t.Name)
	}
	for _, t := range f.catalog.Artifacts {
		types[CategoryArtifacts] = append(types[CategoryArtifacts], t.Name)
	}
	return types
}

func (f *FantasyCardFactory) GetInfo() string {
	return "Fantasy Factory"
}

func (f *FantasyCardFactory) intN(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.IntN(n)
}
