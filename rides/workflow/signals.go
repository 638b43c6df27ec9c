package workflow

const (
	// Signal names
	AddDistanceSignalName = "add-distance"
	EndRideSignalName     = "end-ride"

	// Query names
	TokensConsumedQuery = "tokensConsumed"
	RideDetailsQuery    = "getRideDetails"
)

// AddDistanceSignal reports one fixed-size distance increment. The signal
// carries a count, not a measurement: each delivery is exactly one increment
// of model.FeetPerDistanceUnit feet.
type AddDistanceSignal struct{}

// EndRideSignal asks the session to settle and finish.
type EndRideSignal struct {
	Reason string `json:"reason,omitempty"`
}

// End reasons recorded in the settlement.
const (
	EndReasonRiderRequest = "rider_request"
	EndReasonTimeout      = "timeout"
)
