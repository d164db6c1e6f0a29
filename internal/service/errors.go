package service

import (
	"errors"
	"fmt"

	"github.com/syrineTissaoui/recalammation/internal/models"
)

// Workflow failure modes. Store-level sentinels (not found, conflict,
// duplicate email, unavailable) pass through from the repository package;
// these cover what the workflow itself decides.
var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InvalidTransitionError names both states so the response can say what
// was attempted and where the ticket actually is.
type InvalidTransitionError struct {
	From, To models.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
