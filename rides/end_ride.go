package rides

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/rides/workflow"
)

// EndRide asks a running session to settle and finish. The end request races
// the billing tick inside the workflow; the session drains any unbilled
// distance before settling.
//
//encore:api public path=/v1/rides/:id/end method=POST
func (s *Service) EndRide(ctx context.Context, id int64) (*SignalAck, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid ride ID"}
	}

	r, err := s.rides.GetRide(ctx, id)
	if err != nil {
		rlog.Error("failed to get ride for end signal", "error", err, "ride_id", id)
		return nil, err
	}
	if r.Phase.Terminal() {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "ride is no longer active"}
	}

	workflowID := r.WorkflowID
	runAsync("end-ride-signal", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.EndRideSignalName, workflow.EndRideSignal{
			Reason: workflow.EndReasonRiderRequest,
		})
	})

	return &SignalAck{RideID: id, Accepted: true}, nil
}
