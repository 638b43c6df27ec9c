// Package idempotency makes mutating ride endpoints safe to retry: a request
// replayed with the same X-Idempotency-Key returns the cached response
// instead of starting a second session.
package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/rides/model"
)

var IDEMPOTENCY_HEADER = "X-Idempotency-Key"

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			// First time this key is seen: claim it, run the handler, and
			// record the outcome. A failed handler releases the claim so the
			// caller can retry.
			if err := markAsProcessing(req.Context(), cacheKey); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			if response.Err != nil {
				deleteCacheEntry(req.Context(), cacheKey)
			} else {
				markAsCompleted(req.Context(), cacheKey, bodyHash, idempotencyKey, response)
			}

			return response
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)
}

// extractIdempotencyKey extracts and validates the idempotency key from headers
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = headers.Get(IDEMPOTENCY_HEADER)
	}

	if strings.TrimSpace(idempotencyKey) == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}

	return idempotencyKey, nil
}

// generateBodyHash creates a hash of the request body for conflict detection
func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(bodyBytes)
}

// handleExistingEntry handles replays of an already-seen idempotency key.
func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) middleware.Response {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{Err: &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "idempotency key conflict: request body does not match previous request",
		}}
	}

	switch entry.Status {
	case "processing":
		rlog.Info("concurrent request detected", "key", idempotencyKey)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case "completed":
		return replayCompletedEntry(req, next, entry, idempotencyKey)
	default:
		rlog.Warn("unknown cache entry status, processing as new request", "key", idempotencyKey, "status", entry.Status)
		return next(req)
	}
}

// replayCompletedEntry returns the cached response for a completed request.
func replayCompletedEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, idempotencyKey string) middleware.Response {
	if len(entry.Response) > 0 {
		rlog.Info("returning cached response", "key", idempotencyKey)

		if responseType := req.Data().API.ResponseType; responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, responseValue); err == nil {
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "key", idempotencyKey)
		}
	}

	// Corrupted cache entry: treat as a new request.
	return next(req)
}

// markAsProcessing marks a request as currently being processed
func markAsProcessing(ctx context.Context, cacheKey model.IdempotencyKey) *errs.Error {
	if err := IdempotencyCache.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:    "processing",
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

// deleteCacheEntry removes a processing entry to allow retry
func deleteCacheEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := IdempotencyCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

// markAsCompleted caches the successful response
func markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string, response middleware.Response) {
	completedEntry := model.IdempotencyCacheEntry{
		Status:          "completed",
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		completedEntry.Response = payloadBytes
	}

	if err := IdempotencyCache.Set(ctx, cacheKey, completedEntry); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
	}

	rlog.Debug("request completed and response cached", "key", idempotencyKey)
}

// hashing creates a stable hash of the JSON request body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	hash := md5.New()
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}
