package get_available_slots

import (
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
	"github.com/salonbelleza/turnos-service/pkg/types"
)

// candidateSlots is the catalog offered on the date's weekday, before
// occupancy is applied.
func candidateSlots(date time.Time) []types.TimeString {
	return domain.SlotsForDate(date)
}

// occupiedTimes collects the deduplicated slot times held by the given
// appointments. Storage normally returns unique times per date, but the
// resolver does not assume it.
func occupiedTimes(appointments []*domain.Appointment) []types.TimeString {
	seen := make(map[types.TimeString]struct{}, len(appointments))
	occupied := make([]types.TimeString, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.OccupiesSlot() {
			continue
		}
		if _, ok := seen[appt.TimeSlot]; ok {
			continue
		}
		seen[appt.TimeSlot] = struct{}{}
		occupied = append(occupied, appt.TimeSlot)
	}
	return occupied
}

// subtractSlots removes occupied slots from candidates, preserving order.
func subtractSlots(candidates, occupied []types.TimeString) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(occupied))
	for _, slot := range occupied {
		taken[slot] = struct{}{}
	}
	available := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}

// isDateInPast reports whether date falls before today.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
