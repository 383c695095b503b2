package domain

import "time"

// AppointmentFilter selects appointments in the repository.
//
// Examples:
//
//  1. Active appointments on a date (availability check):
//     filter := domain.AppointmentFilter{Date: &date, OnlyOccupying: true}
//
//  2. Admin dashboard, today onward, oldest first:
//     filter := domain.AppointmentFilter{StartDate: &today}
//
//  3. Customer lookup by email, newest first:
//     filter := domain.AppointmentFilter{Email: &email, OrderDesc: true}
type AppointmentFilter struct {
	Date      *time.Time // exact calendar date
	StartDate *time.Time // inclusive range start
	EndDate   *time.Time // inclusive range end
	Email     *string
	Statuses  []AppointmentStatus // explicit status set
	// OnlyOccupying restricts to statuses that hold a slot
	// (PENDING, CONFIRMED, COMPLETED). Ignored when Statuses is set.
	OnlyOccupying bool
	// OrderDesc sorts by date/time descending; default is ascending.
	OrderDesc bool
}
