package handlers

import (
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
	"github.com/salonbelleza/turnos-service/internal/service/appointments/models"
)

// AppointmentJSON is the HTTP shape of one appointment, shared by the
// admin and lookup routes.
type AppointmentJSON struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Service       string `json:"service"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// AppointmentListJSON is the HTTP shape of an appointment list.
type AppointmentListJSON struct {
	Appointments []AppointmentJSON `json:"appointments"`
	Total        int               `json:"total"`
}

// FromServiceAppointment converts the service view into the HTTP model.
func FromServiceAppointment(resp *models.AppointmentResponse) *AppointmentJSON {
	return &AppointmentJSON{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		CustomerEmail: resp.CustomerEmail,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.TimeSlot,
		Service:       resp.Service,
		Notes:         resp.Notes,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromServiceAppointmentList converts a service list into the HTTP model.
func FromServiceAppointmentList(resp *models.AppointmentListResponse) *AppointmentListJSON {
	list := make([]AppointmentJSON, len(resp.Appointments))
	for i := range resp.Appointments {
		list[i] = *FromServiceAppointment(&resp.Appointments[i])
	}
	return &AppointmentListJSON{
		Appointments: list,
		Total:        resp.Total,
	}
}
