package sweep_expired

import (
	"time"

	"github.com/salonbelleza/turnos-service/pkg/types"
)

// Summary reports one sweeper run for operational logging.
type Summary struct {
	Cutoff    time.Time
	Cancelled int64
	// Appointments that were eligible at selection time (id and contact
	// info, so operators can follow up from the logs).
	Expired []ExpiredAppointment
}

// ExpiredAppointment identifies one auto-cancelled hold.
type ExpiredAppointment struct {
	ID        string
	Email     string
	Date      time.Time
	TimeSlot  types.TimeString
	CreatedAt time.Time
}
