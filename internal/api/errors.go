package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/memory-cards/internal/api/shared"
	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/service/auth"
	"github.com/phrazzld/memory-cards/internal/session"
)

// Errors raised by the handlers themselves
var (
	// ErrInvalidRequest indicates a body that could not be decoded
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidID indicates a malformed id in the URL
	ErrInvalidID = errors.New("invalid id")

	// ErrWrongGame indicates a token used for a game it was not issued for
	ErrWrongGame = errors.New("token does not grant access to this game")
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, ErrWrongGame):
		return http.StatusForbidden

	case errors.Is(err, session.ErrGameNotFound):
		return http.StatusNotFound

	case errors.Is(err, session.ErrSessionClosed):
		return http.StatusGone

	case errors.Is(err, session.ErrRegistryFull):
		return http.StatusServiceUnavailable

	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, domain.ErrInvalidMode),
		errors.Is(err, domain.ErrInvalidStyle),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrInvalidLevel),
		errors.Is(err, domain.ErrInvalidSummaryChoice),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"
	case errors.Is(err, ErrWrongGame):
		return "Token does not grant access to this game"
	case errors.Is(err, session.ErrGameNotFound):
		return "Game not found"
	case errors.Is(err, session.ErrSessionClosed):
		return "Game has ended"
	case errors.Is(err, session.ErrRegistryFull):
		return "Too many active games, try again later"
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.Is(err, ErrInvalidID):
		return "Invalid id"
	case errors.Is(err, domain.ErrInvalidMode):
		return "Invalid mode"
	case errors.Is(err, domain.ErrInvalidStyle):
		return "Invalid style"
	case errors.Is(err, domain.ErrInvalidDifficulty):
		return "Invalid difficulty"
	case errors.Is(err, domain.ErrInvalidLevel):
		return "Invalid level"
	case errors.Is(err, domain.ErrInvalidSummaryChoice):
		return "Invalid summary choice"
	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request format"
	case errors.Is(err, context.DeadlineExceeded):
		return "The game did not respond in time"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "game_mode":
		return "must be practice or timed"
	case "game_style":
		return "must be numbers, letters or animals"
	case "game_difficulty":
		return "must be easy, medium or hard"
	case "summary_choice":
		return "must be next_level, retry or finish"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError maps err to a status code and writes a sanitized error
// response. The full error is only logged. A non-empty message overrides
// the default client message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), message, err)
}
