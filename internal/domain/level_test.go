package domain

import (
	"errors"
	"testing"
)

func TestNewLevel(t *testing.T) {
	t.Parallel() // Enable parallel execution

	one := NewLevel(LevelOne)
	if one.Message != "Level 1" || one.ColorTheme != "level1" {
		t.Errorf("Unexpected level one: %+v", one)
	}

	four := NewLevel(LevelFour)
	if four.ColorTheme != "level4" {
		t.Errorf("Expected level4 theme, got %s", four.ColorTheme)
	}

	seven := NewLevel(LevelSeven)
	if seven.Message != "Level 7" || seven.ColorTheme != "level1" {
		t.Errorf("Unexpected level seven: %+v", seven)
	}

	if NewLevel(LevelTwo) != NewLevel(LevelTwo) {
		t.Error("Expected levels to compare by value")
	}
}

func TestParseLevelType(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		input    string
		expected LevelType
	}{
		{"one", LevelOne},
		{"ten", LevelTen},
		{"3", LevelThree},
	}
	for _, tc := range testCases {
		got, err := ParseLevelType(tc.input)
		if err != nil || got != tc.expected {
			t.Errorf("ParseLevelType(%q) = %v, %v; want %v", tc.input, got, err, tc.expected)
		}
	}

	for _, bad := range []string{"", "eleven", "0", "11"} {
		if _, err := ParseLevelType(bad); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("ParseLevelType(%q): expected ErrInvalidLevel, got %v", bad, err)
		}
	}

	if LevelFive.String() != "five" {
		t.Errorf("Expected five, got %s", LevelFive.String())
	}
}
