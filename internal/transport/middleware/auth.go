package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Auth validates a Bearer token and stores the user and role in the
// context. Requests without a token pass through anonymously; protected
// handlers enforce presence themselves.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
