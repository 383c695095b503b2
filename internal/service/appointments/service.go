package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/salonbelleza/turnos-service/internal/domain"
	appointmentRepo "github.com/salonbelleza/turnos-service/internal/infra/storage/appointment"
	"github.com/salonbelleza/turnos-service/internal/service/appointments/models"
	"github.com/salonbelleza/turnos-service/pkg/ptr"
)

// Service exposes the admin-side appointment operations: status
// transitions and listings.
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Confirm transitions a PENDING appointment to CONFIRMED.
func (s *Service) Confirm(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	return s.transition(ctx, id, domain.StatusConfirmed)
}

// Cancel transitions a PENDING or CONFIRMED appointment to CANCELED,
// freeing its slot.
func (s *Service) Cancel(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	return s.transition(ctx, id, domain.StatusCanceled)
}

// Complete transitions a CONFIRMED appointment to COMPLETED.
func (s *Service) Complete(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	return s.transition(ctx, id, domain.StatusCompleted)
}

// transition performs one conditional status update. Repeating a
// transition the appointment already made is a no-op success, which keeps
// every admin action independently retryable.
func (s *Service) transition(ctx context.Context, id string, target domain.AppointmentStatus) (*models.AppointmentResponse, error) {
	s.logger.Info("Transition: appointment id=%s -> %s", id, target)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Transition: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Transition: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: get appointment: %v", ErrInternal, err)
	}

	if appt.Status == target {
		s.logger.Info("Transition: appointment id=%s already %s, no-op", id, target)
		return models.FromDomainAppointment(appt), nil
	}

	if !appt.CanTransitionTo(target) {
		s.logger.Warn("Transition: %s -> %s not allowed for id=%s", appt.Status, target, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, target)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Transition: failed to update id=%s to %s: %v", id, target, err)
		return nil, fmt.Errorf("%w: update status: %v", ErrInternal, err)
	}

	appt.Status = target
	appt.UpdatedAt = s.timeProvider.Now()

	s.logger.Info("Transition: appointment id=%s is now %s", id, target)
	return models.FromDomainAppointment(appt), nil
}

// ListUpcoming returns appointments from today onward, ordered by date and
// time ascending. This backs the admin dashboard, which polls on load.
func (s *Service) ListUpcoming(ctx context.Context) (*models.AppointmentListResponse, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	appts, err := s.appointmentRepo.FindWithFilter(ctx, domain.AppointmentFilter{
		StartDate: ptr.Ptr(today),
	})
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: list upcoming appointments: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// FindByEmail returns every appointment booked with the given email,
// newest first. Backs the customer "consultar turno" lookup.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.AppointmentListResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.FindWithFilter(ctx, domain.AppointmentFilter{
		Email:     ptr.Ptr(email),
		OrderDesc: true,
	})
	if err != nil {
		s.logger.Error("FindByEmail: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: find appointments by email: %v", ErrInternal, err)
	}

	s.logger.Info("FindByEmail: fetched %d appointments for %s", len(appts), email)
	return models.FromDomainAppointmentList(appts), nil
}
