package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or
	// malformed. No storage access happens in that case.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrSlotTaken is returned when the chosen (date, time) slot is held by
	// another non-canceled appointment, whether caught by the advisory
	// pre-check or by the storage uniqueness constraint. The caller should
	// send the user back to slot selection.
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrDateInPast is returned when the chosen date is before today.
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrSlotNotInCatalog is returned when the chosen time is not offered
	// on the chosen date.
	ErrSlotNotInCatalog = errors.New("create_appointment: time slot not offered on this date")

	// ErrInternal is returned for storage or other infrastructure faults.
	ErrInternal = errors.New("create_appointment: internal error")
)
