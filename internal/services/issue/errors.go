package issue

import (
	"errors"

	"github.com/thenoetrevino/issuetracker/internal/models"
)

// Issue-related errors
var (
	// Validation errors
	ErrEmptyTitle       = models.ErrEmptyTitle
	ErrEmptyDescription = models.ErrEmptyDescription
	ErrInvalidStatus    = models.ErrInvalidStatus
)

// IsValidationError reports whether err was caused by bad client input
// rather than by the store.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidStatus)
}
