package get_available_slots

import (
	"time"

	"github.com/salonbelleza/turnos-service/pkg/types"
)

// Request asks for the bookable slots on one calendar date.
type Request struct {
	Date time.Time
}

// Response lists the slots a customer may pick on the requested date.
type Response struct {
	Date time.Time

	// Available slots, ascending by time.
	Available []types.TimeString

	// Occupied slots on that date, so the caller can render them as
	// visibly disabled instead of silently missing.
	Occupied []types.TimeString

	// Degraded is set when occupancy could not be read from storage:
	// the shown availability may be stale and the caller should warn the
	// user, but slot selection is not blocked.
	Degraded bool
}
