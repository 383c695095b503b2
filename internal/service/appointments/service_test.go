package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbelleza/turnos-service/internal/domain"
	appointmentRepo "github.com/salonbelleza/turnos-service/internal/infra/storage/appointment"
)

type fakeRepo struct {
	byID map[string]*domain.Appointment
	list []*domain.Appointment

	getErr    error
	findErr   error
	updateErr error

	lastFilter  domain.AppointmentFilter
	updateCalls int
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	found := *appt
	return &found, nil
}

func (f *fakeRepo) FindWithFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	appt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo, noopLogger{})
	svc.timeProvider = fixedTime{now: now}
	return svc
}

func TestService_Transitions(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	makeRepo := func(status domain.AppointmentStatus) *fakeRepo {
		return &fakeRepo{byID: map[string]*domain.Appointment{
			"appt-1": {
				ID:       "appt-1",
				Date:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				TimeSlot: "10:00",
				Status:   status,
			},
		}}
	}

	t.Run("confirm pending", func(t *testing.T) {
		repo := makeRepo(domain.StatusPending)
		svc := newTestService(repo, now)

		resp, err := svc.Confirm(context.Background(), "appt-1")
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Equal(t, domain.StatusConfirmed, repo.byID["appt-1"].Status)
	})

	t.Run("double confirm is a no-op success", func(t *testing.T) {
		repo := makeRepo(domain.StatusConfirmed)
		svc := newTestService(repo, now)

		resp, err := svc.Confirm(context.Background(), "appt-1")
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Zero(t, repo.updateCalls, "no-op must not write")
	})

	t.Run("complete requires confirmed", func(t *testing.T) {
		repo := makeRepo(domain.StatusPending)
		svc := newTestService(repo, now)

		_, err := svc.Complete(context.Background(), "appt-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("cancel confirmed frees the slot", func(t *testing.T) {
		repo := makeRepo(domain.StatusConfirmed)
		svc := newTestService(repo, now)

		resp, err := svc.Cancel(context.Background(), "appt-1")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCanceled), resp.Status)
	})

	t.Run("terminal states are absorbing", func(t *testing.T) {
		repo := makeRepo(domain.StatusCompleted)
		svc := newTestService(repo, now)

		_, err := svc.Cancel(context.Background(), "appt-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := newTestService(makeRepo(domain.StatusPending), now)

		_, err := svc.Confirm(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("repository fault is internal", func(t *testing.T) {
		repo := makeRepo(domain.StatusPending)
		repo.getErr = errors.New("connection refused")
		svc := newTestService(repo, now)

		_, err := svc.Confirm(context.Background(), "appt-1")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_ListUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 30, 0, 0, time.UTC)

	repo := &fakeRepo{list: []*domain.Appointment{
		{ID: "a", Date: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), TimeSlot: "10:00", Status: domain.StatusPending},
		{ID: "b", Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), TimeSlot: "09:00", Status: domain.StatusConfirmed},
	}}
	svc := newTestService(repo, now)

	resp, err := svc.ListUpcoming(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 2)
	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), *repo.lastFilter.StartDate,
		"listing starts from today, not from now")
	assert.False(t, repo.lastFilter.OrderDesc)
}

func TestService_FindByEmail(t *testing.T) {
	t.Run("filters by trimmed email, newest first", func(t *testing.T) {
		repo := &fakeRepo{list: []*domain.Appointment{
			{ID: "a", CustomerEmail: "ana@example.com", Status: domain.StatusPending},
		}}
		svc := newTestService(repo, time.Now())

		resp, err := svc.FindByEmail(context.Background(), "  ana@example.com ")
		require.NoError(t, err)

		assert.Len(t, resp.Appointments, 1)
		require.NotNil(t, repo.lastFilter.Email)
		assert.Equal(t, "ana@example.com", *repo.lastFilter.Email)
		assert.True(t, repo.lastFilter.OrderDesc)
	})

	t.Run("empty email is invalid", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, time.Now())

		_, err := svc.FindByEmail(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
