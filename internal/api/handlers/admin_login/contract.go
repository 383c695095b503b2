package admin_login

import (
	"github.com/salonbelleza/turnos-service/internal/service/auth"
)

type AuthService interface {
	Login(user, password string) (*auth.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
