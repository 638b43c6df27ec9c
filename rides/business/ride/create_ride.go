package ride

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/rides/model"
	"encore.app/rides/repository/riderecords"
)

// CreateRide creates the archive record for a new session. A partial unique
// index on open rides per scooter makes a duplicate start surface as a
// unique violation, which maps to the session-already-active error.
func (b *business) CreateRide(ctx context.Context, ride *model.Ride) (*model.Ride, error) {
	workflowID := fmt.Sprintf("scooter-session-%s", ride.ScooterID)

	dbRide, err := b.rideRepo.CreateRide(ctx, riderecords.CreateRideParams{
		ScooterID:           ride.ScooterID,
		EmailAddress:        ride.EmailAddress,
		Phase:               string(model.RidePhaseInitializing),
		Currency:            ride.Pricing.Currency,
		PriceUnlockTokens:   ride.Pricing.UnlockTokens,
		PriceTimeTokens:     ride.Pricing.TokensPerTimeUnit,
		PriceDistanceTokens: ride.Pricing.TokensPerDistanceUnit,
		WorkflowID:          workflowID,
		StartedAt:           pgtype.Timestamptz{Time: ride.StartedAt, Valid: !ride.StartedAt.IsZero()},
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "ride session already active for scooter"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create ride"}
	}

	return convertDBRideToModel(dbRide), nil
}
