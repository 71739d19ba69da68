package cards

import "errors"

var (
	ErrNegativeCost  = errors.New("cost must not be negative")
	ErrNegativeStats = errors.New("attack and health must not be negative")
	ErrNilGameState  = errors.New("game state is nil")
	ErrNilCard       = errors.New("not a card")
	ErrNotCombatable = errors.New("target is not combatable")
	ErrEmptyDeck     = errors.New("deck is empty")
	ErrInvalidID     = errors.New("id must not contain whitespace")

	// ErrNoEffectValue is returned when a spell descriptor carries no number
	ErrNoEffectValue = errors.New("no numeric value in spell effect")

	// ErrMalformedArtifactEffect is returned when an artifact descriptor has no "duration:effect" separator
	ErrMalformedArtifactEffect = errors.New("artifact effect must be formatted as duration:effect")
)
