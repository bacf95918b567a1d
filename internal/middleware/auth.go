package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sanctuary-tracker/api/internal/database"
	logpkg "github.com/sanctuary-tracker/api/internal/logger"
	"github.com/sanctuary-tracker/api/internal/request"
	"github.com/sanctuary-tracker/api/internal/services/auth"
)

// Auth creates middleware that requires a valid Bearer token and attaches the
// resolved user to the request context.
func Auth(authService *auth.Service, users database.UserRepositoryInterface, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondErrorJSON(w, r, http.StatusUnauthorized, "Unauthorized", "Missing Authorization header", logger)
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				respondErrorJSON(w, r, http.StatusUnauthorized, "Unauthorized", "Authorization header must be a Bearer token", logger)
				return
			}

			userID, err := authService.VerifyToken(tokenString)
			if err != nil {
				respondErrorJSON(w, r, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token", logger)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				// Valid token for a deleted account
				logger.Warn("token_user_missing",
					zap.String("user_id", logpkg.SanitizeUserID(userID.String())),
				)
				respondErrorJSON(w, r, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token", logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(request.WithUser(r.Context(), user)))
		})
	}
}
