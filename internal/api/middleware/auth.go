package middleware

import (
	"net/http"
	"strings"

	"github.com/salonbelleza/turnos-service/internal/api/handlers"
)

const (
	msgMissingToken = "falta el token de sesión"
	msgInvalidToken = "sesión inválida o expirada, iniciá sesión nuevamente"
)

// TokenValidator verifies admin session tokens.
type TokenValidator interface {
	ValidateToken(token string) error
}

// AdminAuth guards the admin routes with a Bearer session token.
func AdminAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if err := validator.ValidateToken(parts[1]); err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
