package create_appointment

import (
	"time"

	"github.com/salonbelleza/turnos-service/pkg/types"
)

// Request is the appointment draft collected by the booking form.
type Request struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Date          time.Time
	TimeSlot      types.TimeString
	Service       string
	Notes         string
}

// Response is the created appointment.
type Response struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Date          time.Time
	TimeSlot      types.TimeString
	Service       string
	Notes         string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
