package ride

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/rides/domain"
	"encore.app/rides/model"
)

func TestFinalizeRide(t *testing.T) {
	biz, _, mockSM := newTestBusiness(t)

	settle := domain.Settlement{
		Tokens:             model.Tokens{Unlock: 10, Time: 2, Distance: 15, Total: 27},
		TotalDistanceUnits: 3,
		DistanceFeet:       300,
		EndReason:          "rider_request",
		EndedAt:            time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC),
	}
	mockSM.EXPECT().TransitionToEnded(gomock.Any(), int64(17), settle).Return(nil)

	require.NoError(t, biz.FinalizeRide(context.Background(), 17, settle))
}

func TestFinalizeRide_TotalsMustAddUp(t *testing.T) {
	biz, _, _ := newTestBusiness(t)

	err := biz.FinalizeRide(context.Background(), 17, domain.Settlement{
		Tokens: model.Tokens{Unlock: 10, Time: 2, Distance: 15, Total: 30},
	})
	require.Error(t, err)

	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.Internal, e.Code)
}

func TestFailRide(t *testing.T) {
	biz, _, mockSM := newTestBusiness(t)

	settle := domain.Settlement{
		Tokens:  model.Tokens{Unlock: 10, Total: 10},
		EndedAt: time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC),
	}
	mockSM.EXPECT().TransitionToFailed(gomock.Any(), int64(17), "payment backend rejected charge", settle).Return(nil)

	require.NoError(t, biz.FailRide(context.Background(), 17, "payment backend rejected charge", settle))
}

func TestFailRide_RequiresError(t *testing.T) {
	biz, _, _ := newTestBusiness(t)

	err := biz.FailRide(context.Background(), 17, "", domain.Settlement{})
	require.Error(t, err)

	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.InvalidArgument, e.Code)
}

func TestActivateRide(t *testing.T) {
	biz, _, mockSM := newTestBusiness(t)

	mockSM.EXPECT().TransitionToActive(gomock.Any(), int64(17), "cus_123").Return(nil)

	require.NoError(t, biz.ActivateRide(context.Background(), 17, "cus_123"))
}
