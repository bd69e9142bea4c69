package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// New creates a new Error with the given kind, status and message.
func New(kind Kind, statusCode int, message string) *Error {
	return &Error{Kind: kind, StatusCode: statusCode, Message: message}
}

// NewValidationError creates a 400 error carrying field-level messages.
func NewValidationError(message string, fields map[string][]string) *Error {
	return &Error{
		Kind:       KindValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Fields:     fields,
	}
}

// NewUnauthorizedError returns a 401 error.
func NewUnauthorizedError() *Error {
	return New(KindUnauthorized, http.StatusUnauthorized, MessageUnauthorized)
}

// NewForbiddenError returns a 403 error.
func NewForbiddenError() *Error {
	return New(KindForbidden, http.StatusForbidden, MessageForbidden)
}

// NewInternalError returns an internal error. The cause stays server-side;
// the message shown upstream is always the generic one.
func NewInternalError() *Error {
	return New(KindInternal, http.StatusInternalServerError, MessageInternal)
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

// KindOf returns the kind of err if it is (or wraps) an *Error,
// KindInternal otherwise. A nil err has no kind and returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// kindForStatus maps an HTTP status code to an error kind.
func kindForStatus(statusCode int) Kind {
	switch statusCode {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusTooManyRequests:
		return KindRateLimited
	}
	return KindInternal
}
