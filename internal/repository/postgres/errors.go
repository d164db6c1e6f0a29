package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/syrineTissaoui/recalammation/internal/repository"
)

// wrap maps driver-level failures onto the repository sentinels. Timeouts
// and cancellations become ErrUnavailable (retryable); anything else is
// passed through wrapped.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return err
}
