package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Claims is what a validated game token tells the caller.
type Claims struct {
	// GameID is the game the bearer may drive.
	GameID    uuid.UUID
	Subject   string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and checks the bearer tokens that bind a client to one game.
type TokenService interface {
	// GenerateToken creates a signed token scoped to gameID.
	GenerateToken(ctx context.Context, gameID uuid.UUID) (string, error)

	// ValidateToken verifies the signature and time claims of tokenString.
	// It returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
