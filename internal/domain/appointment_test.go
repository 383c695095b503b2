package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to canceled", StatusPending, StatusCanceled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to canceled", StatusConfirmed, StatusCanceled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"completed is absorbing", StatusCompleted, StatusCanceled, false},
		{"canceled is absorbing", StatusCanceled, StatusConfirmed, false},
		{"same state is a no-op", StatusConfirmed, StatusConfirmed, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appt := &Appointment{Status: tc.from}
			assert.Equal(t, tc.allowed, appt.CanTransitionTo(tc.to))
		})
	}
}

func TestAppointment_OccupiesSlot(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		appt := &Appointment{Status: status}
		assert.True(t, appt.OccupiesSlot(), "%s must keep its slot taken", status)
	}

	canceled := &Appointment{Status: StatusCanceled}
	assert.False(t, canceled.OccupiesSlot(), "canceled appointments free their slot")
}

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("CONFIRMED")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ParseStatus("pending")
	assert.False(t, ok, "statuses are stored uppercase")

	_, ok = ParseStatus("UNKNOWN")
	assert.False(t, ok)
}
