package workflow

import (
	"context"
	"errors"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/rides/business/ride"
	"encore.app/rides/charging"
	"encore.app/rides/domain"
	"encore.app/rides/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Charging charging.Client
	Rides    ride.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(chargingClient charging.Client, rides ride.Business) {
	activityDeps = &ActivityDependencies{
		Charging: chargingClient,
		Rides:    rides,
	}
}

func deps() (*ActivityDependencies, error) {
	if activityDeps == nil || activityDeps.Charging == nil || activityDeps.Rides == nil {
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}
	return activityDeps, nil
}

// ResolveCustomerActivity resolves the billing customer for a contact email.
// A missing customer is non-retryable: the input will never resolve by waiting.
func ResolveCustomerActivity(ctx context.Context, email string) (string, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Resolving billing customer", "email", email)

	d, err := deps()
	if err != nil {
		return "", err
	}

	customerID, err := d.Charging.ResolveCustomer(ctx, email)
	if err != nil {
		logger.Error("Failed to resolve customer", "email", email, "error", err)
		return "", classifyChargingError(err)
	}

	logger.Info("Resolved billing customer", "email", email, "customerID", customerID)
	return customerID, nil
}

// PostChargeParams describes one metered charge. The idempotency key is a
// deterministic function of ride id, category and sequence number, so a
// retried post lands on the same backend record.
type PostChargeParams struct {
	CustomerID     string               `json:"customer_id"`
	Category       model.ChargeCategory `json:"category"`
	Tokens         int64                `json:"tokens"`
	IdempotencyKey string               `json:"idempotency_key"`
}

// PostChargeActivity posts one metered charge and returns the tokens charged.
func PostChargeActivity(ctx context.Context, params PostChargeParams) (int64, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Posting metered charge", "category", params.Category, "tokens", params.Tokens, "idempotencyKey", params.IdempotencyKey)

	d, err := deps()
	if err != nil {
		return 0, err
	}

	receipt, err := d.Charging.PostMeterEvent(ctx, charging.MeterEvent{
		CustomerID:     params.CustomerID,
		Category:       params.Category,
		Tokens:         params.Tokens,
		IdempotencyKey: params.IdempotencyKey,
	})
	if err != nil {
		logger.Error("Failed to post charge", "category", params.Category, "idempotencyKey", params.IdempotencyKey, "error", err)
		return 0, classifyChargingError(err)
	}

	logger.Info("Posted metered charge", "category", params.Category, "tokens", receipt.Tokens, "identifier", receipt.Identifier)
	return receipt.Tokens, nil
}

// ActivateRideParams records activation of the archive record.
type ActivateRideParams struct {
	RideID     int64  `json:"ride_id"`
	CustomerID string `json:"customer_id"`
}

// ActivateRideActivity transitions the ride record to active after the
// unlock charge has been posted.
func ActivateRideActivity(ctx context.Context, params ActivateRideParams) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Activating ride record", "rideID", params.RideID)

	d, err := deps()
	if err != nil {
		return err
	}

	if err := d.Rides.ActivateRide(ctx, params.RideID, params.CustomerID); err != nil {
		logger.Error("Failed to activate ride record", "rideID", params.RideID, "error", err)
		return err
	}

	logger.Info("Activated ride record", "rideID", params.RideID)
	return nil
}

// FinalizeRideParams carries the committed totals into the archive when the
// session reaches a terminal phase.
type FinalizeRideParams struct {
	RideID             int64           `json:"ride_id"`
	Phase              model.RidePhase `json:"phase"`
	Tokens             model.Tokens    `json:"tokens"`
	TotalDistanceUnits int64           `json:"total_distance_units"`
	DistanceFeet       int64           `json:"distance_feet"`
	EndReason          string          `json:"end_reason,omitempty"`
	LastError          string          `json:"last_error,omitempty"`
	EndedAt            time.Time       `json:"ended_at"`
}

// FinalizeRideActivity archives the settlement of an ended or failed ride.
func FinalizeRideActivity(ctx context.Context, params FinalizeRideParams) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Finalizing ride record", "rideID", params.RideID, "phase", params.Phase, "tokensTotal", params.Tokens.Total)

	d, err := deps()
	if err != nil {
		return err
	}

	settle := domain.Settlement{
		Tokens:             params.Tokens,
		TotalDistanceUnits: params.TotalDistanceUnits,
		DistanceFeet:       params.DistanceFeet,
		EndReason:          params.EndReason,
		EndedAt:            params.EndedAt,
	}

	switch params.Phase {
	case model.RidePhaseEnded:
		err = d.Rides.FinalizeRide(ctx, params.RideID, settle)
	case model.RidePhaseFailed:
		err = d.Rides.FailRide(ctx, params.RideID, params.LastError, settle)
	default:
		return temporal.NewNonRetryableApplicationError("finalize requires a terminal phase", "InvalidFinalizePhase", nil)
	}
	if err != nil {
		logger.Error("Failed to finalize ride record", "rideID", params.RideID, "phase", params.Phase, "error", err)
		return err
	}

	logger.Info("Finalized ride record", "rideID", params.RideID, "phase", params.Phase)
	return nil
}

// classifyChargingError translates charging package errors into Temporal
// application errors so the retry policy can tell transient from permanent.
func classifyChargingError(err error) error {
	if errors.Is(err, charging.ErrCustomerNotFound) {
		return temporal.NewNonRetryableApplicationError(err.Error(), charging.CustomerNotFoundType, err)
	}

	var be *charging.BackendError
	if errors.As(err, &be) {
		if be.Transient {
			return temporal.NewApplicationError(be.Error(), charging.TransientBackendType, err)
		}
		return temporal.NewNonRetryableApplicationError(be.Error(), charging.PermanentBackendType, err)
	}

	return err
}
