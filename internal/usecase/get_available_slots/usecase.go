package get_available_slots

import (
	"context"
	"fmt"

	"github.com/salonbelleza/turnos-service/internal/domain"
	"github.com/salonbelleza/turnos-service/pkg/ptr"
	"github.com/salonbelleza/turnos-service/pkg/types"
)

// UseCase resolves the bookable time slots for a calendar date: fixed slot
// catalog, minus day-of-week reductions, minus already-occupied slots.
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute is read-only. A storage failure while reading occupancy degrades
// to "no occupancy data" with Response.Degraded set, it never blocks slot
// selection.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// Past dates expose nothing to book.
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past, no slots", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:      req.Date,
			Available: []types.TimeString{},
			Occupied:  []types.TimeString{},
		}, nil
	}

	candidates := candidateSlots(req.Date)

	filter := domain.AppointmentFilter{
		Date:          ptr.Ptr(req.Date),
		OnlyOccupying: true,
	}

	appointments, err := uc.appointmentRepo.FindWithFilter(ctx, filter)
	if err != nil {
		// Availability-check failure is non-fatal to booking: fall back
		// to the raw candidate list and flag the result as degraded.
		uc.logger.Error("GetAvailableSlots: failed to read occupancy for %s, degrading: %v",
			req.Date.Format(domain.DateFormat), err)
		return &Response{
			Date:      req.Date,
			Available: candidates,
			Occupied:  []types.TimeString{},
			Degraded:  true,
		}, nil
	}

	occupied := occupiedTimes(appointments)
	available := subtractSlots(candidates, occupied)

	uc.logger.Info("GetAvailableSlots: date=%s available=%d occupied=%d",
		req.Date.Format(domain.DateFormat), len(available), len(occupied))

	return &Response{
		Date:      req.Date,
		Available: available,
		Occupied:  occupied,
	}, nil
}

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
