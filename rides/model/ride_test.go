package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRidePhaseTerminal(t *testing.T) {
	assert.False(t, RidePhaseInitializing.Terminal())
	assert.False(t, RidePhaseActive.Terminal())
	assert.True(t, RidePhaseEnded.Terminal())
	assert.True(t, RidePhaseFailed.Terminal())
}

func TestRidePhaseCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    RidePhase
		to      RidePhase
		allowed bool
	}{
		{RidePhaseInitializing, RidePhaseActive, true},
		{RidePhaseInitializing, RidePhaseFailed, true},
		{RidePhaseInitializing, RidePhaseEnded, false},
		{RidePhaseActive, RidePhaseEnded, true},
		{RidePhaseActive, RidePhaseFailed, true},
		{RidePhaseActive, RidePhaseInitializing, false},
		{RidePhaseEnded, RidePhaseActive, false},
		{RidePhaseEnded, RidePhaseFailed, false},
		{RidePhaseFailed, RidePhaseEnded, false},
		{RidePhaseFailed, RidePhaseActive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTokensSum(t *testing.T) {
	tokens := Tokens{Unlock: 10, Time: 4, Distance: 15, Total: 29}
	assert.Equal(t, tokens.Total, tokens.Sum())

	assert.Equal(t, int64(0), Tokens{}.Sum())
}

func TestPricingTokensFor(t *testing.T) {
	pricing := DefaultPricing()
	assert.Equal(t, int64(10), pricing.TokensFor(ChargeCategoryUnlock))
	assert.Equal(t, int64(2), pricing.TokensFor(ChargeCategoryTime))
	assert.Equal(t, int64(5), pricing.TokensFor(ChargeCategoryDistance))
	assert.Equal(t, int64(0), pricing.TokensFor(ChargeCategory("fuel")))
}
