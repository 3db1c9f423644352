package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfiguration means the opening-hours configuration cannot be
	// parsed or is missing. Availability is reported as unavailable, never
	// defaulted to "open".
	ErrInvalidConfiguration = errors.New("invalid opening hours configuration")

	// ErrItemNotFound is a cart mutation on a line that is not there. Callers
	// treat it as a no-op after logging.
	ErrItemNotFound = errors.New("item not in cart")

	// ErrReorderPersistFailed means the new category arrangement was not
	// durably recorded; the stored order is unchanged and a retry is safe.
	ErrReorderPersistFailed = errors.New("reorder could not be persisted")

	// ErrSubmissionNetwork means the order intake call failed. The cart is
	// kept so the customer can retry.
	ErrSubmissionNetwork = errors.New("order submission failed")

	// ErrCooldownActive means the contact form was used too recently.
	ErrCooldownActive = errors.New("contact cooldown active")

	ErrUnknownUser   = errors.New("unknown user")
	ErrWrongPassword = errors.New("wrong password")
)

// ValidationError lists the fields that block an operation, so the UI can
// point at them.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
