package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies one retryable request. Resource is the endpoint
// path (e.g. /v1/rides), so a key reused against a different ride endpoint
// is a distinct entry; Key is the caller's X-Idempotency-Key header value.
type IdempotencyKey struct {
	Resource string
	Key      string
}

// IdempotencyCacheEntry is the cached outcome of a keyed request. While the
// first delivery runs the entry is "processing"; once the handler succeeds
// it flips to "completed" with the serialized response, which replays to
// retries instead of starting a second session.
type IdempotencyCacheEntry struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
