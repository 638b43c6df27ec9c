package rides

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/rides/domain"
	"encore.app/rides/model"
	"encore.app/rides/workflow"
)

type StartRideRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	ScooterID    string `json:"scooter_id" validate:"required,max=64"`
	EmailAddress string `json:"email_address" validate:"required,email"`

	// Optional pricing overrides; defaults apply when zero.
	UnlockTokens          int64  `json:"unlock_tokens,omitempty" validate:"omitempty,min=1"`
	TokensPerTimeUnit     int64  `json:"tokens_per_time_unit,omitempty" validate:"omitempty,min=1"`
	TokensPerDistanceUnit int64  `json:"tokens_per_distance_unit,omitempty" validate:"omitempty,min=1"`
	Currency              string `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`

	RideTimeoutSecs int64 `json:"ride_timeout_secs,omitempty" validate:"omitempty,min=1"`
}

type RideResponse struct {
	Ride model.Ride `json:"ride"`
}

//encore:api public path=/v1/rides method=POST tag:idempotency
func (s *Service) StartRide(ctx context.Context, req *StartRideRequest) (*RideResponse, error) {
	pricing := model.DefaultPricing()
	if req.UnlockTokens > 0 {
		pricing.UnlockTokens = req.UnlockTokens
	}
	if req.TokensPerTimeUnit > 0 {
		pricing.TokensPerTimeUnit = req.TokensPerTimeUnit
	}
	if req.TokensPerDistanceUnit > 0 {
		pricing.TokensPerDistanceUnit = req.TokensPerDistanceUnit
	}
	if req.Currency != "" {
		pricing.Currency = req.Currency
	}

	result, err := s.rides.CreateRide(ctx, &model.Ride{
		ScooterID:    req.ScooterID,
		EmailAddress: req.EmailAddress,
		Pricing:      pricing,
		StartedAt:    time.Now(),
	})
	if err != nil {
		rlog.Error("failed to create ride", "error", err, "scooter_id", req.ScooterID)
		return nil, err
	}

	if wfErr := s.startSessionWorkflow(ctx, result, req.RideTimeoutSecs); wfErr != nil {
		rlog.Error("failed to start session workflow", "ride_id", result.ID, "workflow_id", result.WorkflowID, "error", wfErr)
		// Release the scooter: an initializing row with no workflow behind it
		// would hold the open-session index forever and block every future
		// start for this scooter.
		failMsg := fmt.Sprintf("session workflow did not start: %v", wfErr)
		if failErr := s.rides.FailRide(ctx, result.ID, failMsg, domain.Settlement{EndedAt: time.Now()}); failErr != nil {
			rlog.Error("failed to release ride after workflow start failure", "ride_id", result.ID, "error", failErr)
		}
		return nil, wfErr
	}

	return &RideResponse{
		Ride: *result,
	}, nil
}

// Validate implements validation for StartRideRequest using go-playground/validator
func (r *StartRideRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// startSessionWorkflow starts the Temporal workflow coordinating the session.
// Exactly one workflow runs per scooter session id; a duplicate start is
// rejected without touching the running session.
func (s *Service) startSessionWorkflow(ctx context.Context, ride *model.Ride, timeoutSecs int64) error {
	options := client.StartWorkflowOptions{
		ID:        ride.WorkflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.SessionInput{
		RideID:       ride.ID,
		ScooterID:    ride.ScooterID,
		EmailAddress: ride.EmailAddress,
		Pricing:      ride.Pricing,
	}
	if timeoutSecs > 0 {
		params.RideTimeout = time.Duration(timeoutSecs) * time.Second
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ScooterSession, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			return &errs.Error{Code: errs.AlreadyExists, Message: "ride session already active"}
		}
		return fmt.Errorf("execute workflow %s: %w", ride.WorkflowID, err)
	}
	return nil
}
