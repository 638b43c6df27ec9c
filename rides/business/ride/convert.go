package ride

import (
	"encore.app/rides/model"
	"encore.app/rides/repository/riderecords"
)

// convertDBRideToModel converts a database ride row to the domain model.
func convertDBRideToModel(dbRide riderecords.Ride) *model.Ride {
	ride := &model.Ride{
		ID:           dbRide.ID,
		ScooterID:    dbRide.ScooterID,
		EmailAddress: dbRide.EmailAddress,
		Phase:        model.RidePhase(dbRide.Phase),
		Pricing: model.PricingConfig{
			UnlockTokens:          dbRide.PriceUnlockTokens,
			TokensPerTimeUnit:     dbRide.PriceTimeTokens,
			TokensPerDistanceUnit: dbRide.PriceDistanceTokens,
			Currency:              dbRide.Currency,
		},
		Tokens: model.Tokens{
			Unlock:   dbRide.TokensUnlock,
			Time:     dbRide.TokensTime,
			Distance: dbRide.TokensDistance,
			Total:    dbRide.TokensTotal,
		},
		TotalDistanceUnits: dbRide.TotalDistanceUnits,
		DistanceFeet:       dbRide.DistanceFeet,
		WorkflowID:         dbRide.WorkflowID,
		StartedAt:          dbRide.StartedAt.Time,
		CreatedAt:          dbRide.CreatedAt.Time,
		UpdatedAt:          dbRide.UpdatedAt.Time,
	}

	if dbRide.CustomerID.Valid {
		ride.CustomerID = &dbRide.CustomerID.String
	}

	if dbRide.EndReason.Valid {
		ride.EndReason = &dbRide.EndReason.String
	}

	if dbRide.LastError.Valid {
		ride.LastError = &dbRide.LastError.String
	}

	if dbRide.EndedAt.Valid {
		ride.EndedAt = &dbRide.EndedAt.Time
	}

	return ride
}
