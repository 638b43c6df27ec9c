package rides

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/rides/domain"
	ridemock "encore.app/rides/mocks/business/ride_business"
	"encore.app/rides/model"
)

func TestStartRide(t *testing.T) {
	testCases := []struct {
		name               string
		request            *StartRideRequest
		mockBusinessReturn *model.Ride
		mockBusinessError  error
		mockTemporalError  error
		expectedError      string
		expectWorkflow     bool
		expectRideReleased bool
	}{
		{
			name: "successful_ride_start",
			request: &StartRideRequest{
				ScooterID:    "SCTR-42",
				EmailAddress: "jenny@example.com",
			},
			mockBusinessReturn: &model.Ride{
				ID:           1,
				ScooterID:    "SCTR-42",
				EmailAddress: "jenny@example.com",
				Phase:        model.RidePhaseInitializing,
				Pricing:      model.DefaultPricing(),
				WorkflowID:   "scooter-session-SCTR-42",
			},
			expectWorkflow: true,
		},
		{
			name: "duplicate_scooter_session",
			request: &StartRideRequest{
				ScooterID:    "SCTR-42",
				EmailAddress: "jenny@example.com",
			},
			mockBusinessError: &errs.Error{Code: errs.AlreadyExists, Message: "ride session already active for scooter"},
			expectedError:     "ride session already active for scooter",
		},
		{
			name: "workflow_already_started",
			request: &StartRideRequest{
				ScooterID:    "SCTR-43",
				EmailAddress: "jenny@example.com",
			},
			mockBusinessReturn: &model.Ride{
				ID:         2,
				ScooterID:  "SCTR-43",
				Phase:      model.RidePhaseInitializing,
				WorkflowID: "scooter-session-SCTR-43",
			},
			mockTemporalError:  serviceerror.NewWorkflowExecutionAlreadyStarted("workflow execution already started", "", ""),
			expectedError:      "ride session already active",
			expectWorkflow:     true,
			expectRideReleased: true,
		},
		{
			name: "workflow_start_fails",
			request: &StartRideRequest{
				ScooterID:    "SCTR-44",
				EmailAddress: "jenny@example.com",
			},
			mockBusinessReturn: &model.Ride{
				ID:         3,
				ScooterID:  "SCTR-44",
				Phase:      model.RidePhaseInitializing,
				WorkflowID: "scooter-session-SCTR-44",
			},
			mockTemporalError:  errors.New("temporal unavailable"),
			expectedError:      "temporal unavailable",
			expectWorkflow:     true,
			expectRideReleased: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := ridemock.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{
				rides:    mockBusiness,
				temporal: mockTemporal,
			}

			mockBusiness.EXPECT().
				CreateRide(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ride *model.Ride) (*model.Ride, error) {
					if tc.mockBusinessError != nil {
						return nil, tc.mockBusinessError
					}
					assert.Equal(t, tc.request.ScooterID, ride.ScooterID)
					assert.Equal(t, tc.request.EmailAddress, ride.EmailAddress)
					assert.Equal(t, model.DefaultPricing(), ride.Pricing)
					assert.False(t, ride.StartedAt.IsZero())
					return tc.mockBusinessReturn, nil
				}).
				Times(1)

			if tc.expectWorkflow {
				mockTemporal.On("ExecuteWorkflow",
					mock.Anything, // context
					mock.Anything, // StartWorkflowOptions
					mock.Anything, // workflow function
					mock.Anything, // workflow input
				).Return(nil, tc.mockTemporalError)
			}

			// A ride whose workflow never started must be moved out of the
			// open set, or the scooter's open-session index would block
			// every future start.
			if tc.expectRideReleased {
				mockBusiness.EXPECT().
					FailRide(gomock.Any(), tc.mockBusinessReturn.ID, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, lastError string, settle domain.Settlement) error {
						assert.Contains(t, lastError, "session workflow did not start")
						assert.False(t, settle.EndedAt.IsZero())
						return nil
					}).
					Times(1)
			}

			response, err := service.StartRide(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockBusinessReturn.ID, response.Ride.ID)
				assert.Equal(t, tc.mockBusinessReturn.WorkflowID, response.Ride.WorkflowID)
			}
		})
	}
}

func TestStartRide_PricingOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := ridemock.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{rides: mockBusiness, temporal: mockTemporal}

	mockBusiness.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *model.Ride) (*model.Ride, error) {
			assert.Equal(t, int64(20), ride.Pricing.UnlockTokens)
			assert.Equal(t, int64(3), ride.Pricing.TokensPerTimeUnit)
			// Unspecified fields keep their defaults.
			assert.Equal(t, int64(5), ride.Pricing.TokensPerDistanceUnit)
			assert.Equal(t, "EUR", ride.Pricing.Currency)
			out := *ride
			out.ID = 9
			out.WorkflowID = "scooter-session-SCTR-9"
			return &out, nil
		}).
		Times(1)
	mockTemporal.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	_, err := service.StartRide(context.Background(), &StartRideRequest{
		ScooterID:         "SCTR-9",
		EmailAddress:      "jenny@example.com",
		UnlockTokens:      20,
		TokensPerTimeUnit: 3,
		Currency:          "EUR",
	})
	assert.NoError(t, err)
}

// TestStartRideRequest_Validation tests the validation logic
func TestStartRideRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *StartRideRequest
		expectedError string
	}{
		{
			name: "valid_request",
			request: &StartRideRequest{
				ScooterID:    "SCTR-42",
				EmailAddress: "jenny@example.com",
			},
		},
		{
			name: "valid_request_with_overrides",
			request: &StartRideRequest{
				ScooterID:       "SCTR-42",
				EmailAddress:    "jenny@example.com",
				UnlockTokens:    15,
				Currency:        "EUR",
				RideTimeoutSecs: 3600,
			},
		},
		{
			name: "missing_scooter_id",
			request: &StartRideRequest{
				EmailAddress: "jenny@example.com",
			},
			expectedError: "required",
		},
		{
			name: "missing_email",
			request: &StartRideRequest{
				ScooterID: "SCTR-42",
			},
			expectedError: "required",
		},
		{
			name: "invalid_email",
			request: &StartRideRequest{
				ScooterID:    "SCTR-42",
				EmailAddress: "not-an-email",
			},
			expectedError: "email",
		},
		{
			name: "invalid_currency_numeric",
			request: &StartRideRequest{
				ScooterID:    "SCTR-42",
				EmailAddress: "jenny@example.com",
				Currency:     "123",
			},
			expectedError: "alpha",
		},
		{
			name: "negative_unlock_tokens",
			request: &StartRideRequest{
				ScooterID:    "SCTR-42",
				EmailAddress: "jenny@example.com",
				UnlockTokens: -1,
			},
			expectedError: "min",
		},
		{
			name: "negative_ride_timeout",
			request: &StartRideRequest{
				ScooterID:       "SCTR-42",
				EmailAddress:    "jenny@example.com",
				RideTimeoutSecs: -10,
			},
			expectedError: "min",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
