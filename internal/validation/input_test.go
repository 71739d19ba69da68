package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateSessionID tests session id format checks
func TestValidateSessionID(t *testing.T) {
	assert.NoError(t, ValidateSessionID("0b9d6c1e-2f4a-4b7e-9d1a-5c3e8f7a6b21"))
	assert.Error(t, ValidateSessionID(""))
	assert.Error(t, ValidateSessionID("../etc/passwd"))
	assert.Error(t, ValidateSessionID(strings.Repeat("a", 65)))
}

// TestValidateCardID tests card id format checks
func TestValidateCardID(t *testing.T) {
	assert.NoError(t, ValidateCardID("dragon_001", false))
	assert.NoError(t, ValidateCardID("", true))
	assert.Error(t, ValidateCardID("", false))
	assert.Error(t, ValidateCardID("drop table", false))
}

// TestValidateCardName tests name length checks
func TestValidateCardName(t *testing.T) {
	assert.NoError(t, ValidateCardName("Fire Dragon"))
	assert.Error(t, ValidateCardName("   "))
	assert.Error(t, ValidateCardName(strings.Repeat("x", MaxNameLen+1)))
}

// TestValidateNumbers tests numeric bounds
func TestValidateNumbers(t *testing.T) {
	assert.NoError(t, ValidateDrawCount(1))
	assert.Error(t, ValidateDrawCount(0))
	assert.Error(t, ValidateDrawCount(MaxDrawCount+1))

	assert.NoError(t, ValidateStat("damage", 0))
	assert.Error(t, ValidateStat("damage", -1))

	assert.NoError(t, ValidateRating(1200))
	assert.Error(t, ValidateRating(-5))
}

// TestValidateRule tests rule length checks
func TestValidateRule(t *testing.T) {
	assert.NoError(t, ValidateRule("cost <= 3"))
	assert.Error(t, ValidateRule(""))
	assert.Error(t, ValidateRule(strings.Repeat("1", MaxRuleLen+1)))
}
