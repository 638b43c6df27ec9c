// Package riderecords is the Postgres repository for archived ride records.
package riderecords

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Querier is the query interface for ride records.
type Querier interface {
	CreateRide(ctx context.Context, arg CreateRideParams) (Ride, error)
	GetRide(ctx context.Context, id int64) (Ride, error)
	GetRideForUpdate(ctx context.Context, id int64) (Ride, error)
	ListRides(ctx context.Context, arg ListRidesParams) ([]Ride, error)
	CountRides(ctx context.Context) (int64, error)
	UpdateRideActivation(ctx context.Context, arg UpdateRideActivationParams) (Ride, error)
	UpdateRideSettlement(ctx context.Context, arg UpdateRideSettlementParams) (Ride, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns Queries bound to a transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// Ride is the database row for one ride session.
type Ride struct {
	ID                  int64
	ScooterID           string
	EmailAddress        string
	CustomerID          pgtype.Text
	Phase               string
	Currency            string
	PriceUnlockTokens   int64
	PriceTimeTokens     int64
	PriceDistanceTokens int64
	TokensUnlock        int64
	TokensTime          int64
	TokensDistance      int64
	TokensTotal         int64
	TotalDistanceUnits  int64
	DistanceFeet        int64
	EndReason           pgtype.Text
	LastError           pgtype.Text
	WorkflowID          string
	StartedAt           pgtype.Timestamptz
	EndedAt             pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

const rideColumns = `id, scooter_id, email_address, customer_id, phase,
	currency, price_unlock_tokens, price_time_tokens, price_distance_tokens,
	tokens_unlock, tokens_time, tokens_distance, tokens_total,
	total_distance_units, distance_feet, end_reason, last_error,
	workflow_id, started_at, ended_at, created_at, updated_at`

func scanRide(row pgx.Row) (Ride, error) {
	var r Ride
	err := row.Scan(
		&r.ID, &r.ScooterID, &r.EmailAddress, &r.CustomerID, &r.Phase,
		&r.Currency, &r.PriceUnlockTokens, &r.PriceTimeTokens, &r.PriceDistanceTokens,
		&r.TokensUnlock, &r.TokensTime, &r.TokensDistance, &r.TokensTotal,
		&r.TotalDistanceUnits, &r.DistanceFeet, &r.EndReason, &r.LastError,
		&r.WorkflowID, &r.StartedAt, &r.EndedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

type CreateRideParams struct {
	ScooterID           string
	EmailAddress        string
	Phase               string
	Currency            string
	PriceUnlockTokens   int64
	PriceTimeTokens     int64
	PriceDistanceTokens int64
	WorkflowID          string
	StartedAt           pgtype.Timestamptz
}

const createRide = `INSERT INTO rides (
	scooter_id, email_address, phase, currency,
	price_unlock_tokens, price_time_tokens, price_distance_tokens,
	workflow_id, started_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + rideColumns

func (q *Queries) CreateRide(ctx context.Context, arg CreateRideParams) (Ride, error) {
	row := q.db.QueryRow(ctx, createRide,
		arg.ScooterID, arg.EmailAddress, arg.Phase, arg.Currency,
		arg.PriceUnlockTokens, arg.PriceTimeTokens, arg.PriceDistanceTokens,
		arg.WorkflowID, arg.StartedAt,
	)
	return scanRide(row)
}

const getRide = `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

func (q *Queries) GetRide(ctx context.Context, id int64) (Ride, error) {
	return scanRide(q.db.QueryRow(ctx, getRide, id))
}

const getRideForUpdate = `SELECT ` + rideColumns + ` FROM rides WHERE id = $1 FOR UPDATE`

func (q *Queries) GetRideForUpdate(ctx context.Context, id int64) (Ride, error) {
	return scanRide(q.db.QueryRow(ctx, getRideForUpdate, id))
}

type ListRidesParams struct {
	Limit  int32
	Offset int32
}

const listRides = `SELECT ` + rideColumns + ` FROM rides ORDER BY created_at DESC LIMIT $1 OFFSET $2`

func (q *Queries) ListRides(ctx context.Context, arg ListRidesParams) ([]Ride, error) {
	rows, err := q.db.Query(ctx, listRides, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []Ride
	for rows.Next() {
		r, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, r)
	}
	return rides, rows.Err()
}

const countRides = `SELECT COUNT(*) FROM rides`

func (q *Queries) CountRides(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countRides).Scan(&count)
	return count, err
}

type UpdateRideActivationParams struct {
	ID         int64
	Phase      string
	CustomerID pgtype.Text
}

const updateRideActivation = `UPDATE rides
SET phase = $2, customer_id = $3, tokens_unlock = price_unlock_tokens,
	tokens_total = price_unlock_tokens, updated_at = now()
WHERE id = $1
RETURNING ` + rideColumns

func (q *Queries) UpdateRideActivation(ctx context.Context, arg UpdateRideActivationParams) (Ride, error) {
	row := q.db.QueryRow(ctx, updateRideActivation, arg.ID, arg.Phase, arg.CustomerID)
	return scanRide(row)
}

type UpdateRideSettlementParams struct {
	ID                 int64
	Phase              string
	TokensUnlock       int64
	TokensTime         int64
	TokensDistance     int64
	TokensTotal        int64
	TotalDistanceUnits int64
	DistanceFeet       int64
	EndReason          pgtype.Text
	LastError          pgtype.Text
	EndedAt            pgtype.Timestamptz
}

const updateRideSettlement = `UPDATE rides
SET phase = $2, tokens_unlock = $3, tokens_time = $4, tokens_distance = $5,
	tokens_total = $6, total_distance_units = $7, distance_feet = $8,
	end_reason = $9, last_error = $10, ended_at = $11, updated_at = now()
WHERE id = $1
RETURNING ` + rideColumns

func (q *Queries) UpdateRideSettlement(ctx context.Context, arg UpdateRideSettlementParams) (Ride, error) {
	row := q.db.QueryRow(ctx, updateRideSettlement,
		arg.ID, arg.Phase, arg.TokensUnlock, arg.TokensTime, arg.TokensDistance,
		arg.TokensTotal, arg.TotalDistanceUnits, arg.DistanceFeet,
		arg.EndReason, arg.LastError, arg.EndedAt,
	)
	return scanRide(row)
}
