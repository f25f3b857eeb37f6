package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kelvinjuma/airtime-recharge-service/internal/auth"
	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
)

type contextKey string

const authUserKey contextKey = "auth_user"

// Auth enforces a Bearer token, re-reads the user so revoked accounts lose
// access immediately, and injects the caller identity into the context.
func Auth(tokens *auth.TokenManager, users domain.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, `{"error":"please authenticate"}`, http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				http.Error(w, `{"error":"invalid authorization header"}`, http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				http.Error(w, `{"error":"please authenticate"}`, http.StatusUnauthorized)
				return
			}

			user, err := users.GetUserByID(claims.ID)
			if err != nil {
				http.Error(w, `{"error":"please authenticate"}`, http.StatusUnauthorized)
				return
			}

			authUser := domain.AuthUser{ID: user.ID, Phone: user.Phone, Role: claims.Role}
			ctx := context.WithValue(r.Context(), authUserKey, authUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext returns the authenticated caller injected by Auth.
func CallerFromContext(ctx context.Context) (domain.AuthUser, bool) {
	user, ok := ctx.Value(authUserKey).(domain.AuthUser)
	return user, ok
}
