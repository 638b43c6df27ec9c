package domain

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/rides/model"
	"encore.app/rides/repository/riderecords"
)

// Settlement carries the final per-category totals recorded when a ride
// reaches a terminal phase.
type Settlement struct {
	Tokens             model.Tokens
	TotalDistanceUnits int64
	DistanceFeet       int64
	EndReason          string
	EndedAt            time.Time
}

// StateMachine owns ride phase transitions against the archive. Transitions
// are row-locked so a settlement and a concurrent read cannot interleave.
type StateMachine interface {
	TransitionToActive(ctx context.Context, id int64, customerID string) error
	TransitionToEnded(ctx context.Context, id int64, settle Settlement) error
	TransitionToFailed(ctx context.Context, id int64, lastError string, settle Settlement) error
}

// RideStateMachine handles all ride phase transitions. It owns the
// transaction boundary and uses SELECT FOR UPDATE to serialize transitions
// on one ride row.
type RideStateMachine struct {
	db       *pgxpool.Pool
	rideRepo *riderecords.Queries
}

func NewRideStateMachine(db *pgxpool.Pool, rideRepo *riderecords.Queries) *RideStateMachine {
	return &RideStateMachine{
		db:       db,
		rideRepo: rideRepo,
	}
}

// transitionWithLock locks the ride row, validates the phase edge, and runs
// the transition inside one transaction.
func (sm *RideStateMachine) transitionWithLock(ctx context.Context, id int64, next model.RidePhase, apply func(tx *riderecords.Queries, current riderecords.Ride) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	txRepo := sm.rideRepo.WithTx(tx)

	current, err := txRepo.GetRideForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "ride not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock ride for phase transition"}
	}

	if !model.RidePhase(current.Phase).CanTransitionTo(next) {
		return &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: "ride cannot transition from " + current.Phase + " to " + string(next),
		}
	}

	if err := apply(txRepo, current); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit phase transition"}
	}

	return nil
}

// TransitionToActive records the resolved customer and the posted unlock
// charge, moving the ride from initializing to active.
func (sm *RideStateMachine) TransitionToActive(ctx context.Context, id int64, customerID string) error {
	return sm.transitionWithLock(ctx, id, model.RidePhaseActive, func(tx *riderecords.Queries, current riderecords.Ride) error {
		_, err := tx.UpdateRideActivation(ctx, riderecords.UpdateRideActivationParams{
			ID:         id,
			Phase:      string(model.RidePhaseActive),
			CustomerID: pgtype.Text{String: customerID, Valid: true},
		})
		return err
	})
}

// TransitionToEnded archives the settlement, moving the ride from active to
// ended.
func (sm *RideStateMachine) TransitionToEnded(ctx context.Context, id int64, settle Settlement) error {
	return sm.transitionWithLock(ctx, id, model.RidePhaseEnded, func(tx *riderecords.Queries, current riderecords.Ride) error {
		_, err := tx.UpdateRideSettlement(ctx, settlementParams(id, model.RidePhaseEnded, settle, ""))
		return err
	})
}

// TransitionToFailed archives whatever was billed before the failure together
// with the failure cause. Valid from initializing and active.
func (sm *RideStateMachine) TransitionToFailed(ctx context.Context, id int64, lastError string, settle Settlement) error {
	return sm.transitionWithLock(ctx, id, model.RidePhaseFailed, func(tx *riderecords.Queries, current riderecords.Ride) error {
		_, err := tx.UpdateRideSettlement(ctx, settlementParams(id, model.RidePhaseFailed, settle, lastError))
		return err
	})
}

func settlementParams(id int64, phase model.RidePhase, settle Settlement, lastError string) riderecords.UpdateRideSettlementParams {
	return riderecords.UpdateRideSettlementParams{
		ID:                 id,
		Phase:              string(phase),
		TokensUnlock:       settle.Tokens.Unlock,
		TokensTime:         settle.Tokens.Time,
		TokensDistance:     settle.Tokens.Distance,
		TokensTotal:        settle.Tokens.Total,
		TotalDistanceUnits: settle.TotalDistanceUnits,
		DistanceFeet:       settle.DistanceFeet,
		EndReason:          pgtype.Text{String: settle.EndReason, Valid: settle.EndReason != ""},
		LastError:          pgtype.Text{String: lastError, Valid: lastError != ""},
		EndedAt:            pgtype.Timestamptz{Time: settle.EndedAt, Valid: !settle.EndedAt.IsZero()},
	}
}
