package model

// FeetPerDistanceUnit is the fixed size of one distance increment. Each
// add-distance signal reports exactly one increment of travel.
const FeetPerDistanceUnit = 100

// PricingConfig fixes the token rates for a ride at start time. Rates are
// immutable for the lifetime of the session.
type PricingConfig struct {
	UnlockTokens          int64  `json:"unlock_tokens"`
	TokensPerTimeUnit     int64  `json:"tokens_per_time_unit"`
	TokensPerDistanceUnit int64  `json:"tokens_per_distance_unit"`
	Currency              string `json:"currency"`
}

// DefaultPricing returns the standard scooter rates.
func DefaultPricing() PricingConfig {
	return PricingConfig{
		UnlockTokens:          10,
		TokensPerTimeUnit:     2,
		TokensPerDistanceUnit: 5,
		Currency:              "USD",
	}
}

// TokensFor maps a charge category to its configured rate.
func (p PricingConfig) TokensFor(category ChargeCategory) int64 {
	switch category {
	case ChargeCategoryUnlock:
		return p.UnlockTokens
	case ChargeCategoryTime:
		return p.TokensPerTimeUnit
	case ChargeCategoryDistance:
		return p.TokensPerDistanceUnit
	}
	return 0
}
