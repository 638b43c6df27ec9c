package rides

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/rides/model"
	"encore.app/rides/workflow"
)

type RideDetailsResponse struct {
	Ride model.Ride `json:"ride"`
	// Live is the session's current snapshot while the workflow runs. Nil
	// once the ride is terminal; the archived record is then authoritative.
	Live *model.RideStatus `json:"live,omitempty"`
}

// GetRide returns the ride's input parameters plus its current status. While
// the session runs the status comes from the live workflow snapshot; after
// settlement or failure the archived record keeps queries answerable.
//
//encore:api public path=/v1/rides/:id method=GET
func (s *Service) GetRide(ctx context.Context, id int64) (*RideDetailsResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid ride ID"}
	}

	r, err := s.rides.GetRide(ctx, id)
	if err != nil {
		rlog.Error("failed to get ride", "error", err, "ride_id", id)
		return nil, err
	}

	resp := &RideDetailsResponse{Ride: *r}
	if r.Phase.Terminal() {
		return resp, nil
	}

	val, err := s.temporal.QueryWorkflow(ctx, r.WorkflowID, "", workflow.RideDetailsQuery)
	if err != nil {
		// The archive row still answers; live detail is best effort.
		rlog.Warn("failed to query session workflow", "error", err, "ride_id", id, "workflow_id", r.WorkflowID)
		return resp, nil
	}

	var details model.RideDetails
	if err := val.Get(&details); err != nil {
		rlog.Error("failed to decode query result", "error", err, "ride_id", id)
		return resp, nil
	}

	resp.Live = &details.Status
	return resp, nil
}
