package apierror

import "time"

// Kind is the stable machine-readable classification of an API failure.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindRateLimited  Kind = "rate_limited"
	KindInternal     Kind = "internal"
)

// Error is a typed API failure carrying the HTTP status and a best-effort
// message extracted from the response body.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string

	// Fields holds field-level validation messages for 400 responses.
	Fields map[string][]string

	// RetryAfter is the server's retry hint for 429 responses, zero if absent.
	RetryAfter time.Duration
}
