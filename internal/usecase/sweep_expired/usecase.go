package sweep_expired

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
)

// ErrInternal is returned when a storage error aborts the run. Partial
// progress is fine: leftover rows still match the selection predicate and
// are picked up on the next scheduled run.
var ErrInternal = errors.New("sweep_expired: internal error")

// DefaultHoldDuration is how long a PENDING appointment keeps its slot
// before it is auto-cancelled.
const DefaultHoldDuration = 24 * time.Hour

// UseCase is the batch job that expires stale holds. It does not schedule
// itself; an external scheduler invokes Execute.
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	holdDuration    time.Duration
	logger          Logger
}

func NewUseCase(appointmentRepo AppointmentRepository, txManager TransactionManager, holdDuration time.Duration, logger Logger) *UseCase {
	if holdDuration <= 0 {
		holdDuration = DefaultHoldDuration
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		holdDuration:    holdDuration,
		logger:          logger,
	}
}

// Execute cancels every PENDING appointment created before now minus the
// hold duration, in one batch update. Re-running immediately finds zero
// eligible rows and succeeds with a zero count.
func (uc *UseCase) Execute(ctx context.Context) (*Summary, error) {
	now := uc.timeProvider.Now()
	cutoff := now.Add(-uc.holdDuration)

	uc.logger.Info("SweepExpired: starting run, cutoff=%s", cutoff.Format(time.RFC3339))

	summary := &Summary{Cutoff: cutoff}

	// Select and cancel share one transaction, so the logged rows are
	// exactly the rows the batch update touched.
	txErr := uc.txManager.Do(ctx, func(ctx context.Context) error {
		expired, err := uc.appointmentRepo.FindExpiredPending(ctx, cutoff)
		if err != nil {
			uc.logger.Error("SweepExpired: failed to select expired appointments: %v", err)
			return fmt.Errorf("%w: select expired appointments: %v", ErrInternal, err)
		}

		if len(expired) == 0 {
			return nil
		}

		ids := make([]string, len(expired))
		summary.Expired = make([]ExpiredAppointment, 0, len(expired))
		for i, appt := range expired {
			ids[i] = appt.ID
			summary.Expired = append(summary.Expired, ExpiredAppointment{
				ID:        appt.ID,
				Email:     appt.CustomerEmail,
				Date:      appt.Date,
				TimeSlot:  appt.TimeSlot,
				CreatedAt: appt.CreatedAt,
			})
		}

		cancelled, err := uc.appointmentRepo.CancelPendingByIDs(ctx, ids)
		if err != nil {
			uc.logger.Error("SweepExpired: failed to cancel %d appointments: %v", len(ids), err)
			return fmt.Errorf("%w: cancel expired appointments: %v", ErrInternal, err)
		}
		summary.Cancelled = cancelled
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if len(summary.Expired) == 0 {
		uc.logger.Info("SweepExpired: no expired appointments found")
		return summary, nil
	}

	for _, appt := range summary.Expired {
		uc.logger.Info("SweepExpired: cancelled appointment id=%s email=%s date=%s time=%s",
			appt.ID, appt.Email, appt.Date.Format(domain.DateFormat), appt.TimeSlot)
	}
	uc.logger.Info("SweepExpired: run finished, cancelled=%d", summary.Cancelled)

	return summary, nil
}
