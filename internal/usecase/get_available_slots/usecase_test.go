package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbelleza/turnos-service/internal/domain"
	"github.com/salonbelleza/turnos-service/pkg/types"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.AppointmentFilter
}

func (f *fakeRepo) FindWithFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	// Honor OnlyOccupying the way the real repository does.
	if !filter.OnlyOccupying {
		return f.appointments, nil
	}
	var out []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.OccupiesSlot() {
			out = append(out, appt)
		}
	}
	return out, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, noopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestGetAvailableSlots(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	appt := func(slot types.TimeString, status domain.AppointmentStatus, date time.Time) *domain.Appointment {
		return &domain.Appointment{
			ID:       "appt-" + string(slot),
			Date:     date,
			TimeSlot: slot,
			Status:   status,
		}
	}

	t.Run("weekday with no bookings offers the full catalog", func(t *testing.T) {
		wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeRepo{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
		require.NoError(t, err)

		assert.Equal(t, domain.SlotCatalog, resp.Available)
		assert.Empty(t, resp.Occupied)
		assert.False(t, resp.Degraded)
	})

	t.Run("pending hold excludes its slot, canceled frees it", func(t *testing.T) {
		wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		repo := &fakeRepo{appointments: []*domain.Appointment{
			appt("10:00", domain.StatusPending, wednesday),
			appt("14:30", domain.StatusCanceled, wednesday),
		}}
		uc := newTestUseCase(repo, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
		require.NoError(t, err)

		assert.NotContains(t, resp.Available, types.TimeString("10:00"))
		assert.Contains(t, resp.Occupied, types.TimeString("10:00"))
		assert.Contains(t, resp.Available, types.TimeString("14:30"))
		assert.NotContains(t, resp.Occupied, types.TimeString("14:30"))
		assert.True(t, repo.lastFilter.OnlyOccupying)
	})

	t.Run("confirmed and completed both occupy", func(t *testing.T) {
		wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		repo := &fakeRepo{appointments: []*domain.Appointment{
			appt("09:00", domain.StatusConfirmed, wednesday),
			appt("18:30", domain.StatusCompleted, wednesday),
		}}
		uc := newTestUseCase(repo, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
		require.NoError(t, err)

		assert.Len(t, resp.Available, len(domain.SlotCatalog)-2)
		assert.ElementsMatch(t, []types.TimeString{"09:00", "18:30"}, resp.Occupied)
	})

	t.Run("weekend offers the reduced catalog", func(t *testing.T) {
		saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeRepo{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: saturday})
		require.NoError(t, err)

		expected := []types.TimeString{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30"}
		assert.Equal(t, expected, resp.Available)
	})

	t.Run("monday drops its carve-outs", func(t *testing.T) {
		monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeRepo{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: monday})
		require.NoError(t, err)

		for _, carved := range domain.MondayCarveOuts {
			assert.NotContains(t, resp.Available, carved)
		}
	})

	t.Run("past date has no bookable slots", func(t *testing.T) {
		yesterday := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		repo := &fakeRepo{}
		uc := newTestUseCase(repo, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: yesterday})
		require.NoError(t, err)

		assert.Empty(t, resp.Available)
		assert.Empty(t, resp.Occupied)
		assert.Zero(t, repo.lastFilter, "past dates never reach storage")
	})

	t.Run("today is still bookable", func(t *testing.T) {
		today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeRepo{}, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: today})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Available)
	})

	t.Run("storage failure degrades instead of blocking", func(t *testing.T) {
		wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		repo := &fakeRepo{err: errors.New("connection refused")}
		uc := newTestUseCase(repo, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
		require.NoError(t, err)

		assert.True(t, resp.Degraded)
		assert.Equal(t, domain.SlotCatalog, resp.Available)
		assert.Empty(t, resp.Occupied)
	})

	t.Run("duplicate occupancy rows are deduplicated", func(t *testing.T) {
		wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		repo := &fakeRepo{appointments: []*domain.Appointment{
			appt("11:00", domain.StatusPending, wednesday),
			appt("11:00", domain.StatusConfirmed, wednesday),
		}}
		uc := newTestUseCase(repo, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
		require.NoError(t, err)

		assert.Equal(t, []types.TimeString{"11:00"}, resp.Occupied)
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, now)

		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
