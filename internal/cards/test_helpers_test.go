package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustCreature creates a creature or fails the test
func mustCreature(t *testing.T, name string, cost, attack, health int) *CreatureCard {
	t.Helper()
	c, err := NewCreatureCard(name, cost, "Common", attack, health)
	require.NoError(t, err)
	return c
}

func mustSpell(t *testing.T, name string, cost int, effect string) *SpellCard {
	t.Helper()
	s, err := NewSpellCard(name, cost, "Rare", effect)
	require.NoError(t, err)
	return s
}

func mustArtifact(t *testing.T, name string, cost int, effect string) *ArtifactCard {
	t.Helper()
	a, err := NewArtifactCard(name, cost, "Common", 5, effect)
	require.NoError(t, err)
	return a
}
