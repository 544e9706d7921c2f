package session

import "errors"

// Common errors
var (
	// ErrSessionClosed is returned when dispatching to a runner that has been closed
	ErrSessionClosed = errors.New("game session is closed")

	// ErrGameNotFound is returned when a game id is not registered
	ErrGameNotFound = errors.New("game not found")

	// ErrRegistryFull is returned when the registry already hosts its maximum number of games
	ErrRegistryFull = errors.New("too many active games")
)
