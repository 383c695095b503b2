package list_appointments

import (
	"context"

	"github.com/salonbelleza/turnos-service/internal/service/appointments/models"
)

type AppointmentService interface {
	ListUpcoming(ctx context.Context) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
