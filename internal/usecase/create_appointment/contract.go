package create_appointment

import (
	"context"
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
	"github.com/salonbelleza/turnos-service/pkg/types"
)

// AppointmentRepository is the slice of the repository this use case needs.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ExistsActiveAt(ctx context.Context, date time.Time, slot types.TimeString) (bool, error)
}

// TransactionManager runs a function inside a storage transaction carried
// through the context.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
