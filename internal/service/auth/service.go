package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Logger is the leveled logger interface used across the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// Service authenticates the salon admin and issues short-lived HMAC-signed
// session tokens. The shared credential comes from config; access is
// granted through a signed token, never a client-side flag.
type Service struct {
	adminUser     string
	adminPassword string
	secret        []byte
	tokenTTL      time.Duration
	timeProvider  TimeProvider
	logger        Logger
}

func NewService(adminUser, adminPassword, jwtSecret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		adminUser:     adminUser,
		adminPassword: adminPassword,
		secret:        []byte(jwtSecret),
		tokenTTL:      tokenTTL,
		timeProvider:  realTimeProvider{},
		logger:        logger,
	}
}

// Session is an issued admin session.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Login checks the credential in constant time and returns a signed
// session token.
func (s *Service) Login(user, password string) (*Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		s.logger.Warn("Login: invalid credentials for user=%s", user)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   s.adminUser,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("auth: sign session token: %w", err)
	}

	s.logger.Info("Login: admin session issued, expires=%s", expiresAt.Format(time.RFC3339))
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// ValidateToken parses and verifies a session token.
func (s *Service) ValidateToken(tokenStr string) error {
	_, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithLeeway(5*time.Second), jwt.WithTimeFunc(func() time.Time {
		return s.timeProvider.Now()
	}))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}
