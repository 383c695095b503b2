package create_appointment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/salonbelleza/turnos-service/internal/domain"
)

var (
	phoneDigitsRe = regexp.MustCompile(`^\d{8,15}$`)
	emailRe       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validateRequest checks the draft fields. It runs before any storage
// access, so a malformed submission never reaches the database.
func validateRequest(req *Request) error {
	if utf8.RuneCountInString(strings.TrimSpace(req.CustomerName)) < domain.MinCustomerNameLength {
		return fmt.Errorf("%w: customer name must have at least %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength)
	}

	phone := stripWhitespace(req.CustomerPhone)
	if phone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if !phoneDigitsRe.MatchString(phone) {
		return fmt.Errorf("%w: customer phone must be %d-%d digits",
			ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if !emailRe.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: customer email is not valid", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: time slot is required", ErrInvalidInput)
	}
	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time slot format: %v", ErrInvalidInput, err)
	}

	return nil
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
