package get_available_slots

import (
	"context"
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
)

// AppointmentRepository is the slice of the repository this use case needs.
type AppointmentRepository interface {
	FindWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled logger interface used across the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
