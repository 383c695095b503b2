package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
	appointmentRepo "github.com/salonbelleza/turnos-service/internal/infra/storage/appointment"
)

// UseCase performs the check-then-insert sequence that claims a
// (date, time) slot. The pre-check gives a fast, friendly failure path;
// the storage-level unique index over non-canceled (date, time) rows is
// the authoritative guarantee under concurrency.
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	initialStatus   domain.AppointmentStatus
	logger          Logger
}

// NewUseCase builds the committer. initialStatusPolicy is the configured
// "pending" or "confirmed" policy; unrecognized values fall back to pending.
func NewUseCase(appointmentRepo AppointmentRepository, txManager TransactionManager, initialStatusPolicy string, logger Logger) *UseCase {
	initial := domain.StatusPending
	if strings.EqualFold(initialStatusPolicy, string(domain.StatusConfirmed)) ||
		strings.EqualFold(initialStatusPolicy, "confirmed") {
		initial = domain.StatusConfirmed
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		initialStatus:   initial,
		logger:          logger,
	}
}

// Execute validates the draft, re-checks availability and attempts the
// insert. A failed submission leaves no partial record: the insert is a
// single atomic write.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: email=%s, date=%s, time=%s",
		req.CustomerEmail, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Field validation. Fails fast, no storage access.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. The chosen slot must exist in the catalog for that weekday and
	// the date must not be in the past.
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}
	if !domain.SlotOfferedOn(req.TimeSlot, req.Date) {
		uc.logger.Warn("CreateAppointment: slot %s not offered on %s",
			req.TimeSlot, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotInCatalog
	}

	var created *domain.Appointment

	// Serializable isolation narrows the window between the pre-check and
	// the insert; the unique index still backstops whatever slips through.
	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 3. Advisory availability re-check. Gives the common conflict a
		// friendly failure before we touch the index.
		taken, err := uc.appointmentRepo.ExistsActiveAt(ctx, req.Date, req.TimeSlot)
		if err != nil {
			uc.logger.Error("CreateAppointment: availability re-check failed: %v", err)
			return fmt.Errorf("%w: availability re-check: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateAppointment: slot %s on %s already taken (pre-check)",
				req.TimeSlot, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		appt := &domain.Appointment{
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerPhone: stripWhitespace(req.CustomerPhone),
			CustomerEmail: strings.TrimSpace(req.CustomerEmail),
			Date:          req.Date,
			TimeSlot:      req.TimeSlot,
			Service:       defaultIfEmpty(req.Service),
			Notes:         defaultIfEmpty(req.Notes),
			Status:        uc.initialStatus,
		}

		// 4. The insert itself. A unique violation here means the slot was
		// claimed between the pre-check and the insert; that race is the
		// expected outcome, not a fault.
		created, err = uc.appointmentRepo.Create(ctx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s on %s lost to a concurrent booking",
					req.TimeSlot, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s status=%s", created.ID, created.Status)

	return &Response{
		ID:            created.ID,
		CustomerName:  created.CustomerName,
		CustomerPhone: created.CustomerPhone,
		CustomerEmail: created.CustomerEmail,
		Date:          created.Date,
		TimeSlot:      created.TimeSlot,
		Service:       created.Service,
		Notes:         created.Notes,
		Status:        string(created.Status),
		CreatedAt:     created.CreatedAt,
		UpdatedAt:     created.UpdatedAt,
	}, nil
}

func defaultIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return domain.DefaultFreeText
	}
	return strings.TrimSpace(s)
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
