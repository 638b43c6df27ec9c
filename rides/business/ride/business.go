package ride

import (
	"context"

	"encore.app/rides/domain"
	"encore.app/rides/model"
	"encore.app/rides/repository/riderecords"
)

type Business interface {
	CreateRide(ctx context.Context, ride *model.Ride) (*model.Ride, error)
	GetRide(ctx context.Context, id int64) (*model.Ride, error)
	ListRides(ctx context.Context, limit, offset int32) ([]*model.Ride, int64, error)
	ActivateRide(ctx context.Context, id int64, customerID string) error
	FinalizeRide(ctx context.Context, id int64, settle domain.Settlement) error
	FailRide(ctx context.Context, id int64, lastError string, settle domain.Settlement) error
}

// business handles archive logic for ride sessions.
type business struct {
	rideRepo     riderecords.Querier
	stateMachine domain.StateMachine
}

// NewRideBusiness creates the ride business layer.
func NewRideBusiness(rideRepo riderecords.Querier, stateMachine domain.StateMachine) Business {
	return &business{
		rideRepo:     rideRepo,
		stateMachine: stateMachine,
	}
}
