package linear

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports an invalid or missing argument. It is returned
// before any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthenticationError is returned when the API rejects the key (HTTP 401
// or 403).
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed (HTTP %d): invalid API key", e.StatusCode)
}

// RateLimitError is returned on HTTP 429.
type RateLimitError struct {
	// RetryAfter is the server-suggested wait, zero when the response
	// carried no Retry-After header.
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("API rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "API rate limit exceeded"
}

// GraphQLError carries the messages of a non-empty GraphQL errors array.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return "graphql query failed: " + strings.Join(e.Messages, "; ")
}

// NotFoundError is returned when a by-identifier query resolves to null.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// OperationError is returned when a mutation's response envelope reports
// success: false without a GraphQL-level error.
type OperationError struct {
	Resource string
	Op       string
	ID       string
}

func (e *OperationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s", e.Op, e.Resource, e.ID)
	}
	return fmt.Sprintf("failed to %s %s", e.Op, e.Resource)
}

// NetworkError wraps transport-level failures: connection errors, timeouts,
// unexpected HTTP statuses and malformed response bodies.
type NetworkError struct {
	// StatusCode is set when a response arrived with an unexpected status,
	// zero when the request never completed.
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("request failed with status %d: %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	default:
		return "network error: " + e.Err.Error()
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }
