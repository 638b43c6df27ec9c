package ride

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/rides/domain"
)

// FinalizeRide archives the settlement of a completed session. The totals
// are the workflow's committed counters; the archive never recomputes them.
func (b *business) FinalizeRide(ctx context.Context, id int64, settle domain.Settlement) error {
	if settle.Tokens.Total != settle.Tokens.Sum() {
		return &errs.Error{Code: errs.Internal, Message: "settlement totals do not add up"}
	}
	return b.stateMachine.TransitionToEnded(ctx, id, settle)
}

// FailRide archives a session that terminated in failure, keeping whatever
// was successfully billed before the failing charge.
func (b *business) FailRide(ctx context.Context, id int64, lastError string, settle domain.Settlement) error {
	if lastError == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "failed ride requires an error description"}
	}
	return b.stateMachine.TransitionToFailed(ctx, id, lastError, settle)
}
