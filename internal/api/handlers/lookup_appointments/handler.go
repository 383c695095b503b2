package lookup_appointments

import (
	"errors"
	"net/http"

	"github.com/salonbelleza/turnos-service/internal/api/handlers"
	"github.com/salonbelleza/turnos-service/internal/service/appointments"
)

const msgMissingEmail = "el email es obligatorio"

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

// Handle GET /api/v1/appointments/lookup?email=...
// Lets a customer review the appointments booked with their email.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		h.logger.Warn("GET /appointments/lookup - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	result, err := h.service.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments/lookup - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgMissingEmail)
			return
		}
		h.logger.Error("GET /appointments/lookup - Failed: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/lookup - Found %d appointments for %s", result.Total, email)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceAppointmentList(result))
}
