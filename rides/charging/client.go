// Package charging wraps the payment backend: customer resolution and
// posting metered charges keyed by a deterministic idempotency key.
package charging

import (
	"context"
	"time"

	"encore.app/rides/model"
)

// MeterEvent is one billable charge. The idempotency key deduplicates
// server-side; delivering the same event twice results in one charge.
type MeterEvent struct {
	CustomerID     string               `json:"customer_id"`
	Category       model.ChargeCategory `json:"category"`
	Tokens         int64                `json:"tokens"`
	IdempotencyKey string               `json:"idempotency_key"`
}

// Receipt confirms a posted meter event.
type Receipt struct {
	Identifier string    `json:"identifier"`
	Tokens     int64     `json:"tokens"`
	PostedAt   time.Time `json:"posted_at"`
}

// Client is the payment backend interface. Implementations must never
// substitute a fresh idempotency key when a call is retried.
type Client interface {
	// ResolveCustomer looks up the backend customer reference for a contact
	// email. Returns ErrCustomerNotFound when no customer matches; that
	// failure is permanent, the input will never resolve by waiting.
	ResolveCustomer(ctx context.Context, email string) (string, error)

	// PostMeterEvent posts one metered charge. Failures are classified as
	// transient (retryable) or permanent via BackendError.
	PostMeterEvent(ctx context.Context, event MeterEvent) (*Receipt, error)
}
