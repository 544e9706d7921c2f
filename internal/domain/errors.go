// Package domain defines the core game entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidMode is returned when a game mode is not recognised.
	ErrInvalidMode = errors.New("invalid game mode")

	// ErrInvalidStyle is returned when a card style is not recognised.
	ErrInvalidStyle = errors.New("invalid game style")

	// ErrInvalidDifficulty is returned when a difficulty is not recognised.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrInvalidLevel is returned when a level ordinal is outside one..ten.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrInvalidSummaryChoice is returned when a summary choice is not recognised.
	ErrInvalidSummaryChoice = errors.New("invalid summary choice")
)
