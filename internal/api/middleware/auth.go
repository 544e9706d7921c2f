package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/memory-cards/internal/api/shared"
	"github.com/phrazzld/memory-cards/internal/platform/logger"
	"github.com/phrazzld/memory-cards/internal/service/auth"
)

// GameIDParam is the URL parameter naming the game a request addresses
const GameIDParam = "id"

// AuthMiddleware checks that a request carries a valid token for the game it addresses.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the bearer token and adds its game id to the
// request context. When the route has an {id} parameter it must name the
// same game, otherwise the request is forbidden.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.tokens.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Token expired", err)
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid token", err)
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Authentication error", err)
			}
			return
		}

		if param := chi.URLParam(r, GameIDParam); param != "" {
			pathID, err := uuid.Parse(param)
			if err != nil {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid game id")
				return
			}
			if pathID != claims.GameID {
				logger.FromContextOrDefault(r.Context(), nil).Warn("token used for another game",
					"token_game_id", claims.GameID,
					"path_game_id", pathID)
				shared.RespondWithError(w, r, http.StatusForbidden, "Token does not grant access to this game")
				return
			}
		}

		ctx := shared.WithGameID(r.Context(), claims.GameID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetGameID extracts the authenticated game id from the request context.
func GetGameID(r *http.Request) (uuid.UUID, bool) {
	return shared.GameIDFromContext(r.Context())
}
