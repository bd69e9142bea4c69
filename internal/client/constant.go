package client

import "time"

const (
	// DefaultTimeout bounds each HTTP round trip.
	DefaultTimeout = 30 * time.Second

	// UserAgent identifies this client to the backend.
	UserAgent = "printduka-admin/1.0"

	// APIPrefix is the collection endpoint root.
	APIPrefix = "/api/v1"

	// CSRFCookieName is the cookie the backend stores its CSRF token in.
	CSRFCookieName = "csrftoken"
	// CSRFHeaderName is the header mutations must echo the token in.
	CSRFHeaderName = "X-CSRFToken"

	// SessionCheckPath validates the current session and, as a side
	// effect, primes the CSRF cookie.
	SessionCheckPath = "/api/auth/session/check/"
)
