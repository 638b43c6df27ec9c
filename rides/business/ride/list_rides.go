package ride

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/rides/model"
	"encore.app/rides/repository/riderecords"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListRides returns a page of archived rides plus the total count.
func (b *business) ListRides(ctx context.Context, limit, offset int32) ([]*model.Ride, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	dbRides, err := b.rideRepo.ListRides(ctx, riderecords.ListRidesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list rides"}
	}

	total, err := b.rideRepo.CountRides(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count rides"}
	}

	rides := make([]*model.Ride, 0, len(dbRides))
	for _, dbRide := range dbRides {
		rides = append(rides, convertDBRideToModel(dbRide))
	}

	return rides, total, nil
}
