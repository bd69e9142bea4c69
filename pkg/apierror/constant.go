package apierror

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Authentication required"
	// MessageForbidden is the default message for 403.
	MessageForbidden = "Access denied"
	// MessageInternal is the generic message for internal failures. Stack
	// traces and transport details never reach the UI.
	MessageInternal = "Something went wrong, please try again later"
)
