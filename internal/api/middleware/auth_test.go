package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeValidator struct {
	err      error
	gotToken string
}

func (f *fakeValidator) ValidateToken(token string) error {
	f.gotToken = token
	return f.err
}

func TestAdminAuth(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	do := func(validator *fakeValidator, authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		AdminAuth(validator)(okHandler).ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid bearer token passes through", func(t *testing.T) {
		validator := &fakeValidator{}
		rec := do(validator, "Bearer some-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "some-token", validator.gotToken)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		rec := do(&fakeValidator{}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer scheme is unauthorized", func(t *testing.T) {
		rec := do(&fakeValidator{}, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token is unauthorized", func(t *testing.T) {
		rec := do(&fakeValidator{err: errors.New("expired")}, "Bearer stale-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
