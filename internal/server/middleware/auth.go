// Package middleware provides HTTP middleware for bearer-token authentication.
package middleware

import (
	"net/http"
	"strings"
)

// TokenValidator checks an API bearer token. The middleware only needs a
// yes/no answer; claims stay inside the token service.
type TokenValidator interface {
	ValidateToken(tokenString string) error
}

// AuthMiddleware creates middleware that rejects requests lacking a valid
// bearer token.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if err := validator.ValidateToken(token); err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from the Authorization header. The Bearer
// prefix is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
