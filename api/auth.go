package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/raushankrgupta/trymeup/utils"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware puts the bearer token's user ID in the request context.
// With no JWT secret configured every caller is the anonymous user.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || h.JWTSecret == "" {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			utils.RespondError(w, nil, "Missing bearer token", http.StatusUnauthorized)
			return
		}

		userID, err := utils.ValidateToken(h.JWTSecret, tokenString)
		if err != nil {
			utils.RespondError(w, nil, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// GetUserIDFromContext returns the authenticated user, or "" when anonymous.
func GetUserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
