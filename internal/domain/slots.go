package domain

import (
	"time"

	"github.com/salonbelleza/turnos-service/pkg/types"
)

// SlotsForDate returns the catalog slots offered on the given date's
// weekday, before occupancy is applied. Order follows the catalog.
func SlotsForDate(date time.Time) []types.TimeString {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return weekendSlots()
	case time.Monday:
		return withoutSlots(SlotCatalog, MondayCarveOuts)
	default:
		return append([]types.TimeString(nil), SlotCatalog...)
	}
}

// SlotOfferedOn reports whether the slot is part of the catalog offered on
// the given date.
func SlotOfferedOn(slot types.TimeString, date time.Time) bool {
	for _, s := range SlotsForDate(date) {
		if s == slot {
			return true
		}
	}
	return false
}

// weekendSlots restricts the catalog to a shortened subset: the first
// WeekendMaxSlots slots inside the weekend hour range.
func weekendSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, WeekendMaxSlots)
	for _, slot := range SlotCatalog {
		hour := slot.Hour()
		if hour < WeekendOpenHour || hour > WeekendCloseHour {
			continue
		}
		slots = append(slots, slot)
		if len(slots) == WeekendMaxSlots {
			break
		}
	}
	return slots
}

func withoutSlots(catalog, exclude []types.TimeString) []types.TimeString {
	excluded := make(map[types.TimeString]struct{}, len(exclude))
	for _, slot := range exclude {
		excluded[slot] = struct{}{}
	}
	result := make([]types.TimeString, 0, len(catalog))
	for _, slot := range catalog {
		if _, ok := excluded[slot]; !ok {
			result = append(result, slot)
		}
	}
	return result
}
