package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/memory-cards/internal/api/shared"
	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/service/auth"
	"github.com/phrazzld/memory-cards/internal/session"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	validationErr := shared.ValidateRequest(SummaryRequest{Choice: "again"})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", fmt.Errorf("check: %w", auth.ErrExpiredToken), http.StatusUnauthorized},
		{"token not yet valid", auth.ErrTokenNotYetValid, http.StatusUnauthorized},
		{"wrong game", ErrWrongGame, http.StatusForbidden},
		{"unknown game", session.ErrGameNotFound, http.StatusNotFound},
		{"closed game", session.ErrSessionClosed, http.StatusGone},
		{"registry full", session.ErrRegistryFull, http.StatusServiceUnavailable},
		{"invalid mode", domain.ErrInvalidMode, http.StatusBadRequest},
		{"invalid choice", domain.ErrInvalidSummaryChoice, http.StatusBadRequest},
		{"decode failure", errors.Join(ErrInvalidRequest, errors.New("unexpected EOF")), http.StatusBadRequest},
		{"validation failure", validationErr, http.StatusBadRequest},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Game not found", GetSafeErrorMessage(session.ErrGameNotFound))
	assert.Equal(t, "Token expired", GetSafeErrorMessage(auth.ErrExpiredToken))
	assert.Equal(t, "Game has ended", GetSafeErrorMessage(fmt.Errorf("dispatch: %w", session.ErrSessionClosed)))

	leaky := errors.New("open /var/lib/memorycards/secret.key: permission denied")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(leaky))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := shared.ValidateRequest(OptionsRequest{Style: "emoji"})
	assert.Equal(t, "Invalid style: must be numbers, letters or animals", SanitizeValidationError(err))

	err = shared.ValidateRequest(SummaryRequest{})
	assert.Equal(t, "Invalid choice: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("plain")))
}
