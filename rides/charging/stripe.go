package charging

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"
)

// meterEventName is the Stripe billing meter the charges are reported to.
const meterEventName = "tokens_consumed"

// StripeClient implements Client against the Stripe API using billing meter
// events for metered charges.
type StripeClient struct {
	api *stripeclient.API
}

func NewStripeClient(apiKey string) *StripeClient {
	return &StripeClient{
		api: stripeclient.New(apiKey, nil),
	}
}

func (c *StripeClient) ResolveCustomer(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerSearchParams{
		SearchParams: stripe.SearchParams{
			Context: ctx,
			Query:   fmt.Sprintf("email:'%s'", email),
		},
	}

	iter := c.api.Customers.Search(params)
	for iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", classifyStripeErr(err)
	}

	return "", ErrCustomerNotFound
}

func (c *StripeClient) PostMeterEvent(ctx context.Context, event MeterEvent) (*Receipt, error) {
	params := &stripe.BillingMeterEventParams{
		Params: stripe.Params{
			Context: ctx,
		},
		EventName: stripe.String(meterEventName),
		// The caller's deterministic key; Stripe deduplicates on it, which is
		// what makes at-least-once delivery safe.
		Identifier: stripe.String(event.IdempotencyKey),
		Payload: map[string]string{
			"value":              strconv.FormatInt(event.Tokens, 10),
			"stripe_customer_id": event.CustomerID,
		},
	}

	if _, err := c.api.BillingMeterEvents.New(params); err != nil {
		return nil, classifyStripeErr(err)
	}

	return &Receipt{
		Identifier: event.IdempotencyKey,
		Tokens:     event.Tokens,
		PostedAt:   time.Now(),
	}, nil
}

// classifyStripeErr maps a Stripe API failure to its retry classification.
// Rate limits and server errors are transient; other API errors (unknown
// customer, expired card) are permanent. Errors that never reached the API,
// e.g. connection resets, are transient.
func classifyStripeErr(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		transient := sErr.HTTPStatusCode == http.StatusTooManyRequests || sErr.HTTPStatusCode >= 500
		return &BackendError{Transient: transient, Status: sErr.HTTPStatusCode, Err: err}
	}
	return &BackendError{Transient: true, Err: err}
}
