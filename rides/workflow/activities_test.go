package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"encore.app/rides/charging"
	"encore.app/rides/domain"
	ridemock "encore.app/rides/mocks/business/ride_business"
	"encore.app/rides/model"
)

func newActivityEnv() *testsuite.TestActivityEnvironment {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(ResolveCustomerActivity)
	env.RegisterActivity(PostChargeActivity)
	env.RegisterActivity(ActivateRideActivity)
	env.RegisterActivity(FinalizeRideActivity)
	return env
}

func TestResolveCustomerActivity(t *testing.T) {
	mockCharging, _ := setupSessionMocks(t)
	env := newActivityEnv()

	mockCharging.EXPECT().ResolveCustomer(gomock.Any(), "jenny@example.com").Return("cus_123", nil)

	val, err := env.ExecuteActivity(ResolveCustomerActivity, "jenny@example.com")
	require.NoError(t, err)

	var customerID string
	require.NoError(t, val.Get(&customerID))
	assert.Equal(t, "cus_123", customerID)
}

func TestResolveCustomerActivity_NotFound(t *testing.T) {
	mockCharging, _ := setupSessionMocks(t)
	env := newActivityEnv()

	mockCharging.EXPECT().ResolveCustomer(gomock.Any(), "ghost@example.com").
		Return("", charging.ErrCustomerNotFound)

	_, err := env.ExecuteActivity(ResolveCustomerActivity, "ghost@example.com")
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, charging.CustomerNotFoundType, appErr.Type())
	assert.True(t, appErr.NonRetryable())
}

func TestPostChargeActivity(t *testing.T) {
	mockCharging, _ := setupSessionMocks(t)
	env := newActivityEnv()

	params := PostChargeParams{
		CustomerID:     "cus_123",
		Category:       model.ChargeCategoryUnlock,
		Tokens:         10,
		IdempotencyKey: "ride-1-unlock-0",
	}
	mockCharging.EXPECT().PostMeterEvent(gomock.Any(), charging.MeterEvent{
		CustomerID:     "cus_123",
		Category:       model.ChargeCategoryUnlock,
		Tokens:         10,
		IdempotencyKey: "ride-1-unlock-0",
	}).Return(&charging.Receipt{Identifier: "ride-1-unlock-0", Tokens: 10}, nil)

	val, err := env.ExecuteActivity(PostChargeActivity, params)
	require.NoError(t, err)

	var charged int64
	require.NoError(t, val.Get(&charged))
	assert.Equal(t, int64(10), charged)
}

func TestFinalizeRideActivity_RoutesByPhase(t *testing.T) {
	tests := []struct {
		name   string
		params FinalizeRideParams
		expect func(*ridemock.MockBusiness)
		errMsg string
	}{
		{
			name: "ended ride settles",
			params: FinalizeRideParams{
				RideID:    1,
				Phase:     model.RidePhaseEnded,
				Tokens:    model.Tokens{Unlock: 10, Time: 2, Distance: 15, Total: 27},
				EndReason: EndReasonRiderRequest,
				EndedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			},
			expect: func(m *ridemock.MockBusiness) {
				m.EXPECT().FinalizeRide(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int64, settle domain.Settlement) error {
						assert.Equal(t, int64(27), settle.Tokens.Total)
						assert.Equal(t, EndReasonRiderRequest, settle.EndReason)
						return nil
					})
			},
		},
		{
			name: "failed ride records error",
			params: FinalizeRideParams{
				RideID:    2,
				Phase:     model.RidePhaseFailed,
				Tokens:    model.Tokens{Unlock: 10, Total: 10},
				LastError: "billing customer not found",
				EndedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			},
			expect: func(m *ridemock.MockBusiness) {
				m.EXPECT().FailRide(gomock.Any(), int64(2), "billing customer not found", gomock.Any()).Return(nil)
			},
		},
		{
			name: "non-terminal phase rejected",
			params: FinalizeRideParams{
				RideID: 3,
				Phase:  model.RidePhaseActive,
			},
			expect: func(m *ridemock.MockBusiness) {},
			errMsg: "finalize requires a terminal phase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockRides := setupSessionMocks(t)
			env := newActivityEnv()
			tt.expect(mockRides)

			_, err := env.ExecuteActivity(FinalizeRideActivity, tt.params)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClassifyChargingError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantType      string
		wantRetryable bool
	}{
		{
			name:     "customer not found is permanent",
			err:      charging.ErrCustomerNotFound,
			wantType: charging.CustomerNotFoundType,
		},
		{
			name:          "transient backend error is retryable",
			err:           &charging.BackendError{Transient: true, Status: 503, Err: errors.New("unavailable")},
			wantType:      charging.TransientBackendType,
			wantRetryable: true,
		},
		{
			name:     "permanent backend error is not retried",
			err:      &charging.BackendError{Transient: false, Status: 402, Err: errors.New("declined")},
			wantType: charging.PermanentBackendType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyChargingError(tt.err)

			var appErr *temporal.ApplicationError
			require.True(t, errors.As(classified, &appErr))
			assert.Equal(t, tt.wantType, appErr.Type())
			assert.Equal(t, !tt.wantRetryable, appErr.NonRetryable())
		})
	}
}

func TestChargeKey(t *testing.T) {
	assert.Equal(t, "ride-42-unlock-0", chargeKey(42, model.ChargeCategoryUnlock, 0))
	assert.Equal(t, "ride-42-time-3", chargeKey(42, model.ChargeCategoryTime, 3))
	assert.Equal(t, "ride-42-distance-7", chargeKey(42, model.ChargeCategoryDistance, 7))
	// Same inputs always produce the same key.
	assert.Equal(t, chargeKey(42, model.ChargeCategoryTime, 3), chargeKey(42, model.ChargeCategoryTime, 3))
}
