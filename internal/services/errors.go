package services

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/staffhub-dev/staffhub/internal/repositories"
)

// Error variables shared across resource services
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrValidation         = errors.New("validation failed")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validationError wraps ErrValidation with field-level detail so handlers can
// match with errors.Is and still show a useful message.
func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// mapUniqueViolation hides the persistence-level constraint error behind the
// service-level duplicate-email sentinel.
func mapUniqueViolation(err error) error {
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return ErrEmailAlreadyExists
	}
	return err
}
