package cards

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EffectKind is the action a spell performs on each target
type EffectKind string

const (
	EffectDamage EffectKind = "damage"
	EffectHeal   EffectKind = "heal"
	EffectDebuff EffectKind = "debuff"
	EffectBuff   EffectKind = "buff"
)

// effectPriority is the keyword order; "debuff" must be tested before "buff"
var effectPriority = []EffectKind{EffectDamage, EffectHeal, EffectDebuff, EffectBuff}

// MaxEffectValue caps parsed effect magnitudes so health and attack arithmetic cannot overflow
const MaxEffectValue = math.MaxInt32

// ParseEffectValue returns the first whitespace-separated token made only of digits.
// Values above MaxEffectValue are clamped.
func ParseEffectValue(descriptor string) (int, error) {
	for _, token := range strings.Fields(descriptor) {
		if !isDigits(token) {
			continue
		}
		value, err := strconv.Atoi(token)
		if errors.Is(err, strconv.ErrRange) || value > MaxEffectValue {
			return MaxEffectValue, nil
		}
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", token, err)
		}
		return value, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNoEffectValue, descriptor)
}

// ClassifyEffect returns the first keyword present in the descriptor, or "" if none
func ClassifyEffect(descriptor string) EffectKind {
	for _, kind := range effectPriority {
		if strings.Contains(descriptor, string(kind)) {
			return kind
		}
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// EffectExecutor applies a parsed spell effect to targets
type EffectExecutor struct {
	kind  EffectKind
	value int
}

// NewEffectExecutor parses a descriptor into an executor
func NewEffectExecutor(descriptor string) (*EffectExecutor, error) {
	value, err := ParseEffectValue(descriptor)
	if err != nil {
		return nil, err
	}
	return &EffectExecutor{kind: ClassifyEffect(descriptor), value: value}, nil
}

// Kind returns the effect kind, "" when no keyword matched
func (e *EffectExecutor) Kind() EffectKind { return e.kind }

// Value returns the effect magnitude
func (e *EffectExecutor) Value() int { return e.value }

// Apply mutates target and reports the effect applied
func (e *EffectExecutor) Apply(target EffectTarget) (EffectKind, bool) {
	switch e.kind {
	case EffectDamage:
		target.AdjustHealth(-e.value)
	case EffectHeal:
		target.AdjustHealth(e.value)
	case EffectDebuff:
		target.AdjustAttack(-e.value)
	case EffectBuff:
		target.AdjustAttack(e.value)
	default:
		return "", false
	}
	return e.kind, true
}
