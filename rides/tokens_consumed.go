package rides

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/rides/workflow"
)

type TokensConsumedResponse struct {
	RideID         int64 `json:"ride_id"`
	TokensConsumed int64 `json:"tokens_consumed"`
	// Live is true when the total came from the running session; false when
	// it came from the archived settlement.
	Live bool `json:"live"`
}

// TokensConsumed returns the tokens consumed so far during a ride, as
// observed at the instant of the call.
//
//encore:api public path=/v1/rides/:id/tokens method=GET
func (s *Service) TokensConsumed(ctx context.Context, id int64) (*TokensConsumedResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid ride ID"}
	}

	r, err := s.rides.GetRide(ctx, id)
	if err != nil {
		rlog.Error("failed to get ride", "error", err, "ride_id", id)
		return nil, err
	}

	// Terminal rides answer from the archived settlement; the workflow may
	// already be gone.
	if r.Phase.Terminal() {
		return &TokensConsumedResponse{RideID: id, TokensConsumed: r.Tokens.Total, Live: false}, nil
	}

	val, err := s.temporal.QueryWorkflow(ctx, r.WorkflowID, "", workflow.TokensConsumedQuery)
	if err != nil {
		rlog.Error("failed to query session workflow", "error", err, "ride_id", id, "workflow_id", r.WorkflowID)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "ride session is not answering queries"}
	}

	var total int64
	if err := val.Get(&total); err != nil {
		rlog.Error("failed to decode query result", "error", err, "ride_id", id)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode tokens consumed"}
	}

	return &TokensConsumedResponse{RideID: id, TokensConsumed: total, Live: true}, nil
}
