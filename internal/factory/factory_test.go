package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qninhdt/datadeck/server/internal/cards"
)

func newTestFactory() *FantasyCardFactory {
	return NewFantasyCardFactory(WithSeed(42))
}

// TestCreateCreatureByName tests exact name lookup
func TestCreateCreatureByName(t *testing.T) {
	f := newTestFactory()

	card, err := f.CreateCreature(ByName("Fire Dragon"))
	require.NoError(t, err)

	creature, ok := card.(*cards.CreatureCard)
	require.True(t, ok)
	assert.Equal(t, 7, creature.Attack)
	assert.Equal(t, 5, creature.Health)
	assert.Equal(t, "Legendary", creature.Rarity)
}

// TestCreateCreatureByAttack tests attack lookup
func TestCreateCreatureByAttack(t *testing.T) {
	f := newTestFactory()

	card, err := f.CreateCreature(ByAttack(3))
	require.NoError(t, err)
	assert.Equal(t, "Ice Wizard", card.GetName())

	_, err = f.CreateCreature(ByAttack(99))
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

// TestCreateRandom tests that random picks come from the catalog
func TestCreateRandom(t *testing.T) {
	f := newTestFactory()
	supported := f.GetSupportedTypes()

	for i := 0; i < 20; i++ {
		creature, err := f.CreateCreature(Any())
		require.NoError(t, err)
		assert.Contains(t, supported[CategoryCreatures], creature.GetName())

		spell, err := f.CreateSpell(Selector{})
		require.NoError(t, err)
		assert.Contains(t, supported[CategorySpells], spell.GetName())
		assert.Equal(t, cards.KindSpell, spell.Kind())

		artifact, err := f.CreateArtifact(Any())
		require.NoError(t, err)
		assert.Contains(t, supported[CategoryArtifacts], artifact.GetName())
	}
}

// TestUnsupportedSelector tests that attack selectors only work for creatures
func TestUnsupportedSelector(t *testing.T) {
	f := newTestFactory()

	_, err := f.CreateSpell(ByAttack(3))
	assert.ErrorIs(t, err, ErrUnsupportedSelector)

	_, err = f.CreateArtifact(ByAttack(3))
	assert.ErrorIs(t, err, ErrUnsupportedSelector)
}

// TestUnknownName tests a name that matches nothing
func TestUnknownName(t *testing.T) {
	f := newTestFactory()

	_, err := f.CreateSpell(ByName("Meteor"))
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = f.CreateArtifact(ByName(""))
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

// TestCreateThemedDeck tests per-category sizes
func TestCreateThemedDeck(t *testing.T) {
	f := newTestFactory()

	themed, err := f.CreateThemedDeck(4)
	require.NoError(t, err)
	assert.Len(t, themed.Creatures, 4)
	assert.Len(t, themed.Spells, 4)
	assert.Len(t, themed.Artifacts, 4)

	deck, err := themed.Deck()
	require.NoError(t, err)
	stats := deck.GetDeckStats()
	assert.Equal(t, 12, stats.TotalCards)
	assert.Equal(t, 4, stats.Creatures)

	_, err = f.CreateThemedDeck(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	empty, err := f.CreateThemedDeck(0)
	require.NoError(t, err)
	assert.Empty(t, empty.All())
}

// TestSeededFactoryIsDeterministic tests that equal seeds give equal picks
func TestSeededFactoryIsDeterministic(t *testing.T) {
	a := NewFantasyCardFactory(WithSeed(7))
	b := NewFantasyCardFactory(WithSeed(7))

	for i := 0; i < 10; i++ {
		ca, err := a.CreateCreature(Any())
		require.NoError(t, err)
		cb, err := b.CreateCreature(Any())
		require.NoError(t, err)
		assert.Equal(t, ca.GetName(), cb.GetName())
	}
}

// TestGetSupportedTypes tests the catalog listing
func TestGetSupportedTypes(t *testing.T) {
	f := newTestFactory()
	types := f.GetSupportedTypes()

	assert.Equal(t, []string{"Fire Dragon", "Goblin Warrior", "Ice Wizard"}, types[CategoryCreatures])
	assert.Equal(t, []string{"Lightning Bolt", "Healing Potion", "Fireball"}, types[CategorySpells])
	assert.Equal(t, []string{"Mana Crystal", "Sword of Power", "Ring of Wisdom"}, types[CategoryArtifacts])
	assert.Equal(t, "Fantasy Factory", f.GetInfo())
}

// TestBuiltinSpellsResolve tests that every catalog spell carries a usable value
func TestBuiltinSpellsResolve(t *testing.T) {
	f := newTestFactory()
	for _, name := range f.GetSupportedTypes()[CategorySpells] {
		card, err := f.CreateSpell(ByName(name))
		require.NoError(t, err)

		target, err := cards.NewCreatureCard("Dummy", 0, "Common", 1, 10)
		require.NoError(t, err)

		_, err = card.(*cards.SpellCard).ResolveEffect([]cards.EffectTarget{target})
		assert.NoError(t, err, name)
	}
}

// TestLoadCatalog tests reading and validating a custom catalog file
func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := `
creatures:
  - {name: Slime, cost: 1, rarity: Common, attack: 1, health: 1}
spells:
  - {name: Zap, cost: 1, rarity: Common, effect_type: "Deal 1 damage"}
artifacts:
  - {name: Pebble, cost: 0, rarity: Common, durability: 1, effect: "1:Nothing"}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	f := NewFantasyCardFactory(WithCatalog(catalog), WithSeed(1))
	card, err := f.CreateCreature(Any())
	require.NoError(t, err)
	assert.Equal(t, "Slime", card.GetName())
}

// TestParseCatalogRejectsBadEntries tests load-time validation
func TestParseCatalogRejectsBadEntries(t *testing.T) {
	_, err := ParseCatalog([]byte(`creatures: []`))
	assert.Error(t, err)

	bad := `
creatures:
  - {name: Broken, cost: 1, rarity: Common, attack: -1, health: 1}
spells:
  - {name: Zap, cost: 1, rarity: Common, effect_type: "Deal 1 damage"}
artifacts:
  - {name: Pebble, cost: 0, rarity: Common, durability: 1, effect: "1:Nothing"}
`
	_, err = ParseCatalog([]byte(bad))
	assert.ErrorIs(t, err, cards.ErrNegativeStats)

	noValue := `
creatures:
  - {name: Slime, cost: 1, rarity: Common, attack: 1, health: 1}
spells:
  - {name: Zap, cost: 1, rarity: Common, effect_type: "damage"}
artifacts:
  - {name: Pebble, cost: 0, rarity: Common, durability: 1, effect: "1:Nothing"}
`
	_, err = ParseCatalog([]byte(noValue))
	assert.ErrorIs(t, err, cards.ErrNoEffectValue)
}
