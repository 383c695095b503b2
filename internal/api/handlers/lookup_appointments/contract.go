package lookup_appointments

import (
	"context"

	"github.com/salonbelleza/turnos-service/internal/service/appointments/models"
)

type AppointmentService interface {
	FindByEmail(ctx context.Context, email string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
