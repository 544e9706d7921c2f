package domain

import (
	"fmt"
	"strconv"
)

// LevelType is the ordinal tier of a level, one through ten.
type LevelType int

// Level tiers
const (
	LevelOne LevelType = iota + 1
	LevelTwo
	LevelThree
	LevelFour
	LevelFive
	LevelSix
	LevelSeven
	LevelEight
	LevelNine
	LevelTen
)

var levelNames = [...]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

// Valid reports whether t is within one..ten.
func (t LevelType) Valid() bool {
	return t >= LevelOne && t <= LevelTen
}

// String returns the tier name ("one".."ten").
func (t LevelType) String() string {
	if !t.Valid() {
		return "LevelType(" + strconv.Itoa(int(t)) + ")"
	}
	return levelNames[t]
}

// ParseLevelType accepts either a tier name ("three") or its ordinal ("3").
func ParseLevelType(s string) (LevelType, error) {
	for i := LevelOne; i <= LevelTen; i++ {
		if levelNames[i] == s {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && LevelType(n).Valid() {
		return LevelType(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Level is an immutable description of one tier of the game.
// Advancing never mutates a Level; it produces a new value.
type Level struct {
	Type    LevelType `json:"type"`
	Message string    `json:"message"`
	// ColorTheme is cosmetic and has no effect on game logic.
	ColorTheme string `json:"color_theme"`
}

// NewLevel builds the canonical Level for a tier.
// Tiers five and above reuse the first colour theme.
func NewLevel(t LevelType) Level {
	theme := "level1"
	if t >= LevelOne && t <= LevelFour {
		theme = "level" + strconv.Itoa(int(t))
	}
	return Level{
		Type:       t,
		Message:    "Level " + strconv.Itoa(int(t)),
		ColorTheme: theme,
	}
}
