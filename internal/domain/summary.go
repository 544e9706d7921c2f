package domain

import "fmt"

// SummaryChoice is the player's decision on the level summary screen.
type SummaryChoice string

// Possible summary choices
const (
	ChoiceNextLevel SummaryChoice = "next_level"
	ChoiceRetry     SummaryChoice = "retry"
	ChoiceFinish    SummaryChoice = "finish"
)

// Valid reports whether c is a known choice.
func (c SummaryChoice) Valid() bool {
	switch c {
	case ChoiceNextLevel, ChoiceRetry, ChoiceFinish:
		return true
	}
	return false
}

// ParseSummaryChoice converts a string into a SummaryChoice.
func ParseSummaryChoice(s string) (SummaryChoice, error) {
	c := SummaryChoice(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSummaryChoice, s)
	}
	return c, nil
}

// LevelSummary is the snapshot shown once every card of a deal is paired.
type LevelSummary struct {
	CompletedLevel Level      `json:"completed_level"`
	Difficulty     Difficulty `json:"difficulty"`
	Mode           Mode       `json:"mode"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
	// Duration is the formatted elapsed time; nil in practice mode.
	Duration *string `json:"duration,omitempty"`
	// HasNextLevel is false when the catalog has no successor for this level and difficulty.
	HasNextLevel bool `json:"has_next_level"`
}
