package sweep_expired

import (
	"context"
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
)

// AppointmentRepository is the slice of the repository the sweeper needs.
type AppointmentRepository interface {
	FindExpiredPending(ctx context.Context, cutoff time.Time) ([]*domain.Appointment, error)
	CancelPendingByIDs(ctx context.Context, ids []string) (int64, error)
}

// TransactionManager runs a function inside a storage transaction carried
// through the context.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
