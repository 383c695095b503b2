package models

import (
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
)

// AppointmentResponse is the service-level view of one appointment.
type AppointmentResponse struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Date          time.Time
	TimeSlot      string
	Service       string
	Notes         string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppointmentListResponse is a list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse
	Total        int
}

// FromDomainAppointment converts a domain entity into the service view.
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            appt.ID,
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		CustomerEmail: appt.CustomerEmail,
		Date:          appt.Date,
		TimeSlot:      appt.TimeSlot.String(),
		Service:       appt.Service,
		Notes:         appt.Notes,
		Status:        string(appt.Status),
		CreatedAt:     appt.CreatedAt,
		UpdatedAt:     appt.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a slice of domain entities.
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	list := make([]AppointmentResponse, len(appts))
	for i, appt := range appts {
		list[i] = *FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: list,
		Total:        len(list),
	}
}
