package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/salonbelleza/turnos-service/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error

	gotReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() CreateAppointmentRequest {
	return CreateAppointmentRequest{
		CustomerName:  "Ana Pérez",
		CustomerPhone: "12345678",
		CustomerEmail: "ana@example.com",
		Date:          "2026-03-04",
		Time:          "10:00",
		Service:       "Corte",
	}
}

func TestHandler_Handle(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createAppointment.Response{
			ID:       "appt-1",
			Status:   "PENDING",
			TimeSlot: "10:00",
		}}
		h := NewHandler(uc, noopLogger{})

		rec := doRequest(t, h, validBody())
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "appt-1", resp.ID)
		assert.Equal(t, "PENDING", resp.Status)

		require.NotNil(t, uc.gotReq)
		assert.Equal(t, "2026-03-04", uc.gotReq.Date.Format("2006-01-02"))
	})

	t.Run("malformed json", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, noopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unparseable date", func(t *testing.T) {
		uc := &fakeUseCase{}
		h := NewHandler(uc, noopLogger{})

		body := validBody()
		body.Date = "04/03/2026"

		rec := doRequest(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.gotReq, "use case must not run on parse failure")
	})

	t.Run("slot taken maps to conflict", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: createAppointment.ErrSlotTaken}, noopLogger{})

		rec := doRequest(t, h, validBody())
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation error maps to bad request", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: createAppointment.ErrInvalidInput}, noopLogger{})

		rec := doRequest(t, h, validBody())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("past date maps to bad request", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: createAppointment.ErrDateInPast}, noopLogger{})

		rec := doRequest(t, h, validBody())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: createAppointment.ErrInternal}, noopLogger{})

		rec := doRequest(t, h, validBody())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
