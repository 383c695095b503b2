package confirm_appointment

import (
	"context"

	"github.com/salonbelleza/turnos-service/internal/service/appointments/models"
)

type AppointmentService interface {
	Confirm(ctx context.Context, id string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
