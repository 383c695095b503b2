package get_available_slots

import (
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
	getAvailableSlots "github.com/salonbelleza/turnos-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string   `json:"date"`
	Available []string `json:"available"`
	Occupied  []string `json:"occupied"`
	// Degraded signals that occupancy could not be read and the shown
	// availability may be stale.
	Degraded bool `json:"degraded,omitempty"`
}

// ToUseCaseRequest builds the use case request from the date query param.
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	available := make([]string, len(resp.Available))
	for i, slot := range resp.Available {
		available[i] = slot.String()
	}
	occupied := make([]string, len(resp.Occupied))
	for i, slot := range resp.Occupied {
		occupied[i] = slot.String()
	}
	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Available: available,
		Occupied:  occupied,
		Degraded:  resp.Degraded,
	}
}
