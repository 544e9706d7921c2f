package domain

import "fmt"

// Mode selects whether a session keeps time.
type Mode string

// Possible game modes
const (
	// ModePractice plays without a clock.
	ModePractice Mode = "practice"
	// ModeTimed accumulates elapsed seconds and reports them in the level summary.
	ModeTimed Mode = "timed"
)

// Style selects the family of faces printed on the cards.
type Style string

// Possible card styles
const (
	StyleNumbers Style = "numbers"
	StyleLetters Style = "letters"
	// StyleAnimals is reserved; no faces are defined for it yet.
	StyleAnimals Style = "animals"
)

// Difficulty decides where a game starts and how far it can progress.
type Difficulty string

// Possible difficulties
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllModes returns the selectable modes in display order.
func AllModes() []Mode {
	return []Mode{ModePractice, ModeTimed}
}

// AllStyles returns the selectable styles in display order.
func AllStyles() []Style {
	return []Style{StyleNumbers, StyleLetters, StyleAnimals}
}

// AllDifficulties returns the selectable difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModePractice || m == ModeTimed
}

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	switch s {
	case StyleNumbers, StyleLetters, StyleAnimals:
		return true
	}
	return false
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// ParseStyle converts a string into a Style.
func ParseStyle(s string) (Style, error) {
	st := Style(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStyle, s)
	}
	return st, nil
}

// ParseDifficulty converts a string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

// GameOptions is the player's current selection on the options screen.
type GameOptions struct {
	Mode       Mode       `json:"mode"`
	Style      Style      `json:"style"`
	Difficulty Difficulty `json:"difficulty"`
}

// DefaultGameOptions returns the selection shown before the player changes anything.
func DefaultGameOptions() GameOptions {
	return GameOptions{
		Mode:       ModePractice,
		Style:      StyleNumbers,
		Difficulty: DifficultyEasy,
	}
}

// Validate checks every field of the selection.
func (o GameOptions) Validate() error {
	if !o.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, o.Mode)
	}
	if !o.Style.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, o.Style)
	}
	if !o.Difficulty.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, o.Difficulty)
	}
	return nil
}
