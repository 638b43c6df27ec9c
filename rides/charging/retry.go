package charging

import (
	"time"

	"go.temporal.io/sdk/temporal"
)

// Retry policies for charging calls. The delay sequence is exponential,
// delay(n) = min(initialInterval * backoffCoefficient^n, maximumInterval),
// evaluated by the Temporal server; the policy itself is stateless.
// Non-retryable error types short-circuit to immediate failure.

// ChargeRetryPolicy governs PostMeterEvent calls.
func ChargeRetryPolicy() *temporal.RetryPolicy {
	return &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    100 * time.Second,
		MaximumAttempts:    5,
		NonRetryableErrorTypes: []string{
			CustomerNotFoundType,
			PermanentBackendType,
		},
	}
}

// ResolveRetryPolicy governs customer resolution. A missing customer is
// permanent, so only transient lookup failures are retried.
func ResolveRetryPolicy() *temporal.RetryPolicy {
	return &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    100 * time.Second,
		MaximumAttempts:    5,
		NonRetryableErrorTypes: []string{
			CustomerNotFoundType,
			PermanentBackendType,
		},
	}
}
