package rides

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/rides/workflow"
)

type SignalAck struct {
	RideID   int64 `json:"ride_id"`
	Accepted bool  `json:"accepted"`
}

// AddDistance reports one distance increment for a running ride. The signal
// is delivered asynchronously so the sender never blocks on the coordinator.
//
//encore:api public path=/v1/rides/:id/distance method=POST
func (s *Service) AddDistance(ctx context.Context, id int64) (*SignalAck, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid ride ID"}
	}

	r, err := s.rides.GetRide(ctx, id)
	if err != nil {
		rlog.Error("failed to get ride for distance signal", "error", err, "ride_id", id)
		return nil, err
	}
	if r.Phase.Terminal() {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "ride is no longer active"}
	}

	workflowID := r.WorkflowID
	runAsync("add-distance-signal", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.AddDistanceSignalName, workflow.AddDistanceSignal{})
	})

	return &SignalAck{RideID: id, Accepted: true}, nil
}
