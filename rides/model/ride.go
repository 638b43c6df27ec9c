package model

import (
	"time"
)

type Ride struct {
	ID                 int64         `json:"id"`
	ScooterID          string        `json:"scooter_id"`
	EmailAddress       string        `json:"email_address"`
	CustomerID         *string       `json:"customer_id,omitempty"`
	Phase              RidePhase     `json:"phase"`
	Pricing            PricingConfig `json:"pricing"`
	Tokens             Tokens        `json:"tokens"`
	TotalDistanceUnits int64         `json:"total_distance_units"`
	DistanceFeet       int64         `json:"distance_feet"`
	EndReason          *string       `json:"end_reason,omitempty"`
	LastError          *string       `json:"last_error,omitempty"`
	WorkflowID         string        `json:"workflow_id"`
	StartedAt          time.Time     `json:"started_at"`
	EndedAt            *time.Time    `json:"ended_at,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

type RidePhase string

const (
	RidePhaseInitializing RidePhase = "initializing"
	RidePhaseActive       RidePhase = "active"
	RidePhaseEnded        RidePhase = "ended"
	RidePhaseFailed       RidePhase = "failed"
)

// Terminal reports whether no further transitions may leave the phase.
func (p RidePhase) Terminal() bool {
	return p == RidePhaseEnded || p == RidePhaseFailed
}

// CanTransitionTo validates the forward-only phase edges:
// initializing -> active, initializing -> failed, active -> ended, active -> failed.
func (p RidePhase) CanTransitionTo(next RidePhase) bool {
	switch p {
	case RidePhaseInitializing:
		return next == RidePhaseActive || next == RidePhaseFailed
	case RidePhaseActive:
		return next == RidePhaseEnded || next == RidePhaseFailed
	default:
		return false
	}
}

// Tokens tracks the per-category charge counters for a ride. Counters only
// ever increase, and Total always equals the sum of the other three.
type Tokens struct {
	Unlock   int64 `json:"unlock"`
	Time     int64 `json:"time"`
	Distance int64 `json:"distance"`
	Total    int64 `json:"total"`
}

// Sum returns the per-category sum, which must match Total at every
// observation point.
func (t Tokens) Sum() int64 {
	return t.Unlock + t.Time + t.Distance
}

type ChargeCategory string

const (
	ChargeCategoryUnlock   ChargeCategory = "unlock"
	ChargeCategoryTime     ChargeCategory = "time"
	ChargeCategoryDistance ChargeCategory = "distance"
)
