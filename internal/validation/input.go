package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Limits for API input
const (
	MaxDrawCount = 30
	MaxNameLen   = 64
	MaxRuleLen   = 200
	MaxStat      = 1000
	MaxRating    = 10000
)

// ValidateSessionID validates session ID format
func ValidateSessionID(id string) error {
	if len(id) == 0 || len(id) > 64 {
		return fmt.Errorf("session ID must be 1-64 characters")
	}

	// Allow alphanumeric, hyphens, underscores
	if !idPattern.MatchString(id) {
		return fmt.Errorf("session ID can only contain alphanumeric characters, hyphens, and underscores")
	}

	return nil
}

// ValidateCardID validates card ID format. An empty ID is allowed when allowEmpty is set.
func ValidateCardID(id string, allowEmpty bool) error {
	if id == "" && allowEmpty {
		return nil
	}
	if len(id) == 0 || len(id) > 128 {
		return fmt.Errorf("card ID must be 1-128 characters")
	}

	if !idPattern.MatchString(id) {
		return fmt.Errorf("card ID can only contain alphanumeric characters, hyphens, and underscores")
	}

	return nil
}

// ValidateCardName validates a display name
func ValidateCardName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > MaxNameLen {
		return fmt.Errorf("card name must be 1-%d characters", MaxNameLen)
	}
	return nil
}

// ValidateDrawCount validates the number of cards to draw
func ValidateDrawCount(n int) error {
	if n < 1 || n > MaxDrawCount {
		return fmt.Errorf("count must be between 1 and %d", MaxDrawCount)
	}
	return nil
}

// ValidateStat validates a combat stat or cost
func ValidateStat(field string, v int) error {
	if v < 0 || v > MaxStat {
		return fmt.Errorf("%s must be between 0 and %d", field, MaxStat)
	}
	return nil
}

// ValidateRating validates an initial rating
func ValidateRating(v int) error {
	if v < 0 || v > MaxRating {
		return fmt.Errorf("rating must be between 0 and %d", MaxRating)
	}
	return nil
}

// ValidateRule validates a strategy rule expression before compiling it
func ValidateRule(rule string) error {
	if strings.TrimSpace(rule) == "" || len(rule) > MaxRuleLen {
		return fmt.Errorf("rule must be 1-%d characters", MaxRuleLen)
	}
	return nil
}
