package domain

import "github.com/salonbelleza/turnos-service/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Validation constants
const (
	MinCustomerNameLength = 2
	MinPhoneDigits        = 8
	MaxPhoneDigits        = 15
)

// DefaultFreeText is the placeholder stored when the booking form leaves
// service or notes empty.
const DefaultFreeText = "Predeterminado"

// SlotCatalog is the fixed ordered half-hour catalog: business hours with
// a midday break between 12:30 and 14:00.
var SlotCatalog = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00", "18:30",
}

// MondayCarveOuts are catalog slots not offered on Mondays.
var MondayCarveOuts = []types.TimeString{"10:00", "14:30", "16:00"}

// Weekend restriction: only the first WeekendMaxSlots catalog slots whose
// hour falls inside [WeekendOpenHour, WeekendCloseHour].
const (
	WeekendOpenHour  = 10
	WeekendCloseHour = 16
	WeekendMaxSlots  = 6
)

// OccupyingStatuses are the statuses that keep a slot taken.
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
