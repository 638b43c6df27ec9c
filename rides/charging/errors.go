package charging

import (
	"errors"
	"fmt"
)

// Temporal application error types used to classify charging failures.
// These names appear in retry policies as non-retryable error types.
const (
	CustomerNotFoundType = "CustomerNotFound"
	TransientBackendType = "TransientBackendError"
	PermanentBackendType = "PermanentBackendError"
)

// ErrCustomerNotFound means the contact identifier resolved to no backend
// customer. Never retried.
var ErrCustomerNotFound = errors.New("customer not found")

// BackendError wraps a payment backend failure with its retry classification.
// Transient covers network errors, 5xx responses and rate limits; everything
// else (invalid customer, expired payment method) is permanent.
type BackendError struct {
	Transient bool
	Status    int
	Err       error
}

func (e *BackendError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s backend error (status %d): %v", kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s backend error: %v", kind, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err should be retried per the backoff policy.
func IsTransient(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.Transient
}
