package model

import (
	"time"
)

// RideStatus is the live session snapshot owned by the workflow. Queries
// return it as observed at the instant of the call; it never exposes a
// partially applied billing tick.
type RideStatus struct {
	Phase                RidePhase     `json:"phase"`
	StartedAt            time.Time     `json:"started_at"`
	LastBilledAt         time.Time     `json:"last_billed_at"`
	Tokens               Tokens        `json:"tokens"`
	TotalDistanceUnits   int64         `json:"total_distance_units"`
	PendingDistanceUnits int64         `json:"pending_distance_units"`
	DistanceFeet         int64         `json:"distance_feet"`
	Pricing              PricingConfig `json:"pricing"`
	LastError            string        `json:"last_error,omitempty"`
}

// RideDetails pairs the session's input parameters with its current status.
type RideDetails struct {
	RideID       int64      `json:"ride_id"`
	ScooterID    string     `json:"scooter_id"`
	EmailAddress string     `json:"email_address"`
	CustomerID   string     `json:"customer_id,omitempty"`
	Status       RideStatus `json:"status"`
}
