package ride

import (
	"context"
)

// ActivateRide moves the archive record from initializing to active once the
// customer is resolved and the unlock charge has been posted.
func (b *business) ActivateRide(ctx context.Context, id int64, customerID string) error {
	return b.stateMachine.TransitionToActive(ctx, id, customerID)
}
