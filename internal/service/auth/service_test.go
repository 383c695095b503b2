package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(now time.Time, ttl time.Duration) *Service {
	svc := NewService("admin", "secret-password", "test-signing-key", ttl, noopLogger{})
	svc.timeProvider = fixedTime{now: now}
	return svc
}

func TestService_Login(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	t.Run("valid credentials issue a session", func(t *testing.T) {
		svc := newTestService(now, time.Hour)

		session, err := svc.Login("admin", "secret-password")
		require.NoError(t, err)

		assert.NotEmpty(t, session.Token)
		assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc := newTestService(now, time.Hour)

		_, err := svc.Login("admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong user is rejected", func(t *testing.T) {
		svc := newTestService(now, time.Hour)

		_, err := svc.Login("root", "secret-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ValidateToken(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	t.Run("accepts a freshly issued token", func(t *testing.T) {
		svc := newTestService(now, time.Hour)

		session, err := svc.Login("admin", "secret-password")
		require.NoError(t, err)

		assert.NoError(t, svc.ValidateToken(session.Token))
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		svc := newTestService(now, time.Hour)

		session, err := svc.Login("admin", "secret-password")
		require.NoError(t, err)

		svc.timeProvider = fixedTime{now: now.Add(2 * time.Hour)}
		assert.ErrorIs(t, svc.ValidateToken(session.Token), ErrInvalidToken)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		issuer := newTestService(now, time.Hour)
		session, err := issuer.Login("admin", "secret-password")
		require.NoError(t, err)

		verifier := NewService("admin", "secret-password", "different-key", time.Hour, noopLogger{})
		assert.ErrorIs(t, verifier.ValidateToken(session.Token), ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		svc := newTestService(now, time.Hour)
		assert.ErrorIs(t, svc.ValidateToken("not-a-token"), ErrInvalidToken)
	})
}
