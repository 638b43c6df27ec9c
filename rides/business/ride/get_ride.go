package ride

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/rides/model"
)

// GetRide returns the archived ride record.
func (b *business) GetRide(ctx context.Context, id int64) (*model.Ride, error) {
	dbRide, err := b.rideRepo.GetRide(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "ride not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get ride"}
	}

	return convertDBRideToModel(dbRide), nil
}
