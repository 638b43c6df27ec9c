package workflow

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/rides/charging"
	"encore.app/rides/model"
)

// DefaultTickInterval is how often an active session posts a time charge.
const DefaultTickInterval = 15 * time.Second

// SessionFailedType tags the application error a failed session returns.
const SessionFailedType = "ScooterSessionFailed"

// SessionInput contains parameters for starting the scooter session workflow
type SessionInput struct {
	RideID       int64               `json:"ride_id"`
	ScooterID    string              `json:"scooter_id"`
	EmailAddress string              `json:"email_address"`
	Pricing      model.PricingConfig `json:"pricing"`
	TickInterval time.Duration       `json:"tick_interval,omitempty"`
	// RideTimeout is an optional hard deadline, measured from activation.
	// When it fires the session settles as if the rider had ended it.
	RideTimeout time.Duration `json:"ride_timeout,omitempty"`
}

// SessionResult is the settlement of a completed session.
type SessionResult struct {
	RideID             int64           `json:"ride_id"`
	TokensConsumed     int64           `json:"tokens_consumed"`
	Tokens             model.Tokens    `json:"tokens"`
	TotalDistanceUnits int64           `json:"total_distance_units"`
	DistanceFeet       int64           `json:"distance_feet"`
	Phase              model.RidePhase `json:"phase"`
	EndReason          string          `json:"end_reason"`
	StartedAt          time.Time       `json:"started_at"`
	EndedAt            time.Time       `json:"ended_at"`
}

// session is the workflow-local state. All mutations happen on the single
// workflow goroutine; counters advance only after a charge confirms, so
// queries never observe a partially applied tick.
type session struct {
	input      SessionInput
	status     model.RideStatus
	customerID string

	// pending counts distance increments received but not yet billed.
	pending int64

	// Per-category sequence numbers seed the idempotency keys. They are
	// replayed deterministically, which is what makes retried charges reuse
	// their original key.
	timeSeq int64
	distSeq int64

	rideEnded bool
	endReason string
}

// ScooterSession coordinates one scooter rental from unlock to settlement:
// resolve the billing customer, post the unlock charge, then bill time on a
// fixed tick and distance as signals arrive, until the ride ends.
func ScooterSession(ctx workflow.Context, input SessionInput) (*SessionResult, error) {
	logger := workflow.GetLogger(ctx)

	if input.Pricing == (model.PricingConfig{}) {
		input.Pricing = model.DefaultPricing()
	}
	tickInterval := input.TickInterval
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}

	now := workflow.Now(ctx)
	s := &session{
		input: input,
		status: model.RideStatus{
			Phase:        model.RidePhaseInitializing,
			StartedAt:    now,
			LastBilledAt: now,
			Pricing:      input.Pricing,
		},
	}

	logger.Info("Starting scooter session", "rideID", input.RideID, "scooterID", input.ScooterID)

	if err := workflow.SetQueryHandler(ctx, TokensConsumedQuery, func() (int64, error) {
		return s.status.Tokens.Total, nil
	}); err != nil {
		return nil, err
	}
	if err := workflow.SetQueryHandler(ctx, RideDetailsQuery, func() (model.RideDetails, error) {
		status := s.status
		status.PendingDistanceUnits = s.pending
		return model.RideDetails{
			RideID:       input.RideID,
			ScooterID:    input.ScooterID,
			EmailAddress: input.EmailAddress,
			CustomerID:   s.customerID,
			Status:       status,
		}, nil
	}); err != nil {
		return nil, err
	}

	distanceCh := workflow.GetSignalChannel(ctx, AddDistanceSignalName)
	endCh := workflow.GetSignalChannel(ctx, EndRideSignalName)

	// collectSignals empties both signal channels without blocking, so
	// signals delivered while a charge was in flight are not missed.
	collectSignals := func() {
		for {
			var sig AddDistanceSignal
			if !distanceCh.ReceiveAsync(&sig) {
				break
			}
			s.pending++
		}
		for {
			var sig EndRideSignal
			if !endCh.ReceiveAsync(&sig) {
				break
			}
			s.noteEnd(sig.Reason)
		}
	}

	if err := workflow.ExecuteActivity(withResolveOptions(ctx), ResolveCustomerActivity, input.EmailAddress).Get(ctx, &s.customerID); err != nil {
		return s.fail(ctx, "customer resolution", err)
	}

	unlockTokens, err := s.postCharge(ctx, model.ChargeCategoryUnlock, 0)
	if err != nil {
		return s.fail(ctx, "unlock charge", err)
	}
	s.status.Tokens.Unlock += unlockTokens
	s.status.Tokens.Total += unlockTokens
	s.status.Phase = model.RidePhaseActive

	if err := workflow.ExecuteActivity(withArchiveOptions(ctx), ActivateRideActivity, ActivateRideParams{
		RideID:     input.RideID,
		CustomerID: s.customerID,
	}).Get(ctx, nil); err != nil {
		return s.fail(ctx, "ride activation", err)
	}

	logger.Info("Session active", "rideID", input.RideID, "unlockTokens", unlockTokens)

	var deadline workflow.Future
	if input.RideTimeout > 0 {
		deadline = workflow.NewTimer(ctx, input.RideTimeout)
	}

	for {
		s.waitForTickOrEnd(ctx, tickInterval, distanceCh, endCh, deadline)
		collectSignals()
		if s.rideEnded {
			break
		}

		// Tick boundary: one time charge for the elapsed interval. The
		// counters advance only once the charge confirms.
		s.timeSeq++
		timeTokens, err := s.postCharge(ctx, model.ChargeCategoryTime, s.timeSeq)
		if err != nil {
			return s.fail(ctx, "time charge", err)
		}
		s.status.Tokens.Time += timeTokens
		s.status.Tokens.Total += timeTokens
		s.status.LastBilledAt = workflow.Now(ctx)

		if err := s.drainPendingDistance(ctx); err != nil {
			return s.fail(ctx, "distance charge", err)
		}

		collectSignals()
		if s.rideEnded {
			break
		}
	}

	// Settlement: bill whatever distance is still pending, then finalize.
	// No increment received before the end request may go unbilled.
	collectSignals()
	if err := s.drainPendingDistance(ctx); err != nil {
		return s.fail(ctx, "settlement distance charge", err)
	}

	endedAt := workflow.Now(ctx)
	if err := workflow.ExecuteActivity(withArchiveOptions(ctx), FinalizeRideActivity, FinalizeRideParams{
		RideID:             input.RideID,
		Phase:              model.RidePhaseEnded,
		Tokens:             s.status.Tokens,
		TotalDistanceUnits: s.status.TotalDistanceUnits,
		DistanceFeet:       s.status.DistanceFeet,
		EndReason:          s.endReason,
		EndedAt:            endedAt,
	}).Get(ctx, nil); err != nil {
		return s.fail(ctx, "settlement", err)
	}
	s.status.Phase = model.RidePhaseEnded

	logger.Info("Ride ended", "rideID", input.RideID, "reason", s.endReason, "tokensConsumed", s.status.Tokens.Total)

	return &SessionResult{
		RideID:             input.RideID,
		TokensConsumed:     s.status.Tokens.Total,
		Tokens:             s.status.Tokens,
		TotalDistanceUnits: s.status.TotalDistanceUnits,
		DistanceFeet:       s.status.DistanceFeet,
		Phase:              model.RidePhaseEnded,
		EndReason:          s.endReason,
		StartedAt:          s.status.StartedAt,
		EndedAt:            endedAt,
	}, nil
}

// waitForTickOrEnd blocks until the tick interval elapses, an end request
// arrives, or the session deadline fires, whichever happens first. Distance
// signals received during the wait are queued without ending it. The pending
// tick timer is cancelled when an end request wins the race, so no spurious
// extra tick fires afterwards.
func (s *session) waitForTickOrEnd(ctx workflow.Context, tickInterval time.Duration, distanceCh, endCh workflow.ReceiveChannel, deadline workflow.Future) {
	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	defer cancelTimer()
	timer := workflow.NewTimer(timerCtx, tickInterval)

	tickElapsed := false
	for !tickElapsed && !s.rideEnded {
		selector := workflow.NewSelector(ctx)
		selector.AddFuture(timer, func(f workflow.Future) {
			tickElapsed = true
		})
		selector.AddReceive(endCh, func(c workflow.ReceiveChannel, more bool) {
			var sig EndRideSignal
			c.Receive(ctx, &sig)
			s.noteEnd(sig.Reason)
		})
		selector.AddReceive(distanceCh, func(c workflow.ReceiveChannel, more bool) {
			var sig AddDistanceSignal
			c.Receive(ctx, &sig)
			s.pending++
		})
		if deadline != nil {
			selector.AddFuture(deadline, func(f workflow.Future) {
				s.noteEnd(EndReasonTimeout)
			})
		}
		selector.Select(ctx)
	}
}

// drainPendingDistance posts one distance charge per increment queued at
// entry. Increments arriving while the drain runs stay queued for the next
// pass; every received increment is billed exactly once.
func (s *session) drainPendingDistance(ctx workflow.Context) error {
	for s.pending > 0 {
		s.distSeq++
		tokens, err := s.postCharge(ctx, model.ChargeCategoryDistance, s.distSeq)
		if err != nil {
			return err
		}
		s.pending--
		s.status.Tokens.Distance += tokens
		s.status.Tokens.Total += tokens
		s.status.TotalDistanceUnits++
		s.status.DistanceFeet += model.FeetPerDistanceUnit
		s.status.LastBilledAt = workflow.Now(ctx)
	}
	return nil
}

func (s *session) postCharge(ctx workflow.Context, category model.ChargeCategory, seq int64) (int64, error) {
	params := PostChargeParams{
		CustomerID:     s.customerID,
		Category:       category,
		Tokens:         s.status.Pricing.TokensFor(category),
		IdempotencyKey: chargeKey(s.input.RideID, category, seq),
	}

	var charged int64
	if err := workflow.ExecuteActivity(withChargeOptions(ctx), PostChargeActivity, params).Get(ctx, &charged); err != nil {
		return 0, err
	}
	return charged, nil
}

func (s *session) noteEnd(reason string) {
	if s.rideEnded {
		return
	}
	s.rideEnded = true
	if reason == "" {
		reason = EndReasonRiderRequest
	}
	s.endReason = reason
}

// fail records the failure, archives what was committed, and fails the
// workflow. The failing charge's increment is never applied, so the counters
// stay on the last fully committed tick.
func (s *session) fail(ctx workflow.Context, during string, cause error) (*SessionResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Error("Session failed", "rideID", s.input.RideID, "during", during, "error", cause)

	s.status.Phase = model.RidePhaseFailed
	s.status.LastError = cause.Error()

	if err := workflow.ExecuteActivity(withArchiveOptions(ctx), FinalizeRideActivity, FinalizeRideParams{
		RideID:             s.input.RideID,
		Phase:              model.RidePhaseFailed,
		Tokens:             s.status.Tokens,
		TotalDistanceUnits: s.status.TotalDistanceUnits,
		DistanceFeet:       s.status.DistanceFeet,
		LastError:          s.status.LastError,
		EndedAt:            workflow.Now(ctx),
	}).Get(ctx, nil); err != nil {
		logger.Error("Failed to archive failed session", "rideID", s.input.RideID, "error", err)
	}

	return nil, temporal.NewApplicationError(
		fmt.Sprintf("scooter session failed during %s: %v", during, cause),
		SessionFailedType,
	)
}

// chargeKey builds the deterministic idempotency key for one billable event.
// It derives from the ride id, category and a per-category sequence number,
// never from wall-clock time: a retried charge must reuse the key of the
// attempt it retries.
func chargeKey(rideID int64, category model.ChargeCategory, seq int64) string {
	return fmt.Sprintf("ride-%d-%s-%d", rideID, category, seq)
}

// withResolveOptions configures the customer resolution activity
func withResolveOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy:         charging.ResolveRetryPolicy(),
	})
}

// withChargeOptions configures metered charge activities
func withChargeOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy:         charging.ChargeRetryPolicy(),
	})
}

// withArchiveOptions configures archive bookkeeping activities
func withArchiveOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	})
}
