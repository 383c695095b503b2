package admin_login

import (
	"time"

	"github.com/salonbelleza/turnos-service/internal/service/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// FromSession converts an issued session into the HTTP model.
func FromSession(session *auth.Session) *LoginResponse {
	return &LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	}
}
