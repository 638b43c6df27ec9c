package ride

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	statemock "encore.app/rides/mocks/domain/state_machine"
	repomock "encore.app/rides/mocks/repository/ride_records"
	"encore.app/rides/model"
	"encore.app/rides/repository/riderecords"
)

func newTestBusiness(t *testing.T) (Business, *repomock.MockQuerier, *statemock.MockStateMachine) {
	ctrl := gomock.NewController(t)
	mockRepo := repomock.NewMockQuerier(ctrl)
	mockSM := statemock.NewMockStateMachine(ctrl)
	return NewRideBusiness(mockRepo, mockSM), mockRepo, mockSM
}

func TestCreateRide(t *testing.T) {
	biz, mockRepo, _ := newTestBusiness(t)

	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mockRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg riderecords.CreateRideParams) (riderecords.Ride, error) {
			assert.Equal(t, "SCTR-42", arg.ScooterID)
			assert.Equal(t, "jenny@example.com", arg.EmailAddress)
			assert.Equal(t, string(model.RidePhaseInitializing), arg.Phase)
			assert.Equal(t, "scooter-session-SCTR-42", arg.WorkflowID)
			assert.Equal(t, int64(10), arg.PriceUnlockTokens)
			return riderecords.Ride{
				ID:                  17,
				ScooterID:           arg.ScooterID,
				EmailAddress:        arg.EmailAddress,
				Phase:               arg.Phase,
				Currency:            arg.Currency,
				PriceUnlockTokens:   arg.PriceUnlockTokens,
				PriceTimeTokens:     arg.PriceTimeTokens,
				PriceDistanceTokens: arg.PriceDistanceTokens,
				WorkflowID:          arg.WorkflowID,
				StartedAt:           arg.StartedAt,
			}, nil
		})

	ride, err := biz.CreateRide(context.Background(), &model.Ride{
		ScooterID:    "SCTR-42",
		EmailAddress: "jenny@example.com",
		Pricing:      model.DefaultPricing(),
		StartedAt:    started,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(17), ride.ID)
	assert.Equal(t, model.RidePhaseInitializing, ride.Phase)
	assert.Equal(t, "scooter-session-SCTR-42", ride.WorkflowID)
	assert.Equal(t, started, ride.StartedAt)
}

func TestCreateRide_DuplicateOpenScooter(t *testing.T) {
	biz, mockRepo, _ := newTestBusiness(t)

	mockRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		Return(riderecords.Ride{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := biz.CreateRide(context.Background(), &model.Ride{
		ScooterID:    "SCTR-42",
		EmailAddress: "jenny@example.com",
		Pricing:      model.DefaultPricing(),
	})
	require.Error(t, err)

	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.AlreadyExists, e.Code)
}
