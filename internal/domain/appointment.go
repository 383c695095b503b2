package domain

import (
	"time"

	"github.com/salonbelleza/turnos-service/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCanceled  AppointmentStatus = "CANCELED"
)

// Appointment is the sole persisted entity: one customer holding one
// (date, time) slot.
type Appointment struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Date          time.Time // calendar date, no time component
	TimeSlot      types.TimeString
	Service       string
	Notes         string
	Status        AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot reports whether the appointment counts toward the
// (date, time) uniqueness invariant. Canceled appointments free their slot.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCanceled
}

// IsTerminal reports whether the status is absorbing.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCanceled || a.Status == StatusCompleted
}

// CanTransitionTo reports whether the state machine permits moving to
// target. Same-state transitions are allowed so admin actions stay
// idempotent; callers treat them as no-op successes.
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	if a.Status == target {
		return true
	}
	switch a.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCanceled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCanceled
	default:
		return false
	}
}

// ParseStatus converts a stored/user value into an AppointmentStatus.
func ParseStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}
