package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"blognest/app/models"
	"blognest/app/repositories"
)

type contextKey int

const principalKey contextKey = iota

// Authenticate resolves the bearer token into a principal and stores it in
// the request context. Requests without an Authorization header pass through
// anonymously; whether that is acceptable is decided per operation by the
// access policy. A malformed or invalid token is rejected outright.
func Authenticate(tokens *TokenService, users repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				unauthorized(w, "invalid authorization header format")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}

			user, err := users.GetByID(claims.Subject)
			if err != nil {
				unauthorized(w, "unknown principal")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Principal returns the authenticated user for the request, or nil for
// anonymous requests.
func Principal(r *http.Request) *models.User {
	user, _ := r.Context().Value(principalKey).(*models.User)
	return user
}

// WithPrincipal returns a copy of the request carrying the given principal.
// Used by tests to exercise handlers without the middleware.
func WithPrincipal(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), principalKey, user))
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
