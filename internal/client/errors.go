package client

import "errors"

var (
	// ErrNoData marks a 2xx response whose body lacks the collection
	// envelope (count/results) — typically an unauthenticated or error
	// response that slipped through. Views render their empty/error
	// affordance for it instead of crashing.
	ErrNoData = errors.New("response has no collection envelope")

	// ErrMissingCSRF means no CSRF token could be obtained before a
	// mutation.
	ErrMissingCSRF = errors.New("csrf token unavailable")
)
