package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/memory-cards/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, gameID uuid.UUID) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims

	mu        sync.Mutex
	generated []uuid.UUID
}

var _ auth.TokenService = (*MockTokenService)(nil)

// GenerateToken implements the auth.TokenService interface
func (m *MockTokenService) GenerateToken(ctx context.Context, gameID uuid.UUID) (string, error) {
	m.mu.Lock()
	m.generated = append(m.generated, gameID)
	m.mu.Unlock()

	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, gameID)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.TokenService interface
func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// Generated returns the game ids tokens were requested for, in call order
func (m *MockTokenService) Generated() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uuid.UUID(nil), m.generated...)
}
