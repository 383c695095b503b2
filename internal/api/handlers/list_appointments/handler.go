package list_appointments

import (
	"net/http"

	"github.com/salonbelleza/turnos-service/internal/api/handlers"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Returns appointments from today onward, date/time ascending.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Listed %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceAppointmentList(result))
}
