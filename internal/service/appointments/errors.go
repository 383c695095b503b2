package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the targeted appointment id
	// does not exist. Surfaced distinctly so the admin view can refresh
	// its list instead of retrying blindly.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition is returned when the state machine forbids the
	// requested transition (terminal states are absorbing).
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed inputs.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for storage or other infrastructure faults.
	ErrInternal = errors.New("service: internal error")
)
