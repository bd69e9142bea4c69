package apierror

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxRawMessageLen bounds how much of a non-JSON body is kept as a message.
const maxRawMessageLen = 512

// FromResponse builds a typed Error from a non-2xx HTTP response.
//
// Message extraction order: JSON "detail" field, then "non_field_errors",
// then the raw body text. For 400 responses, any remaining top-level
// string-list fields are kept as field-level validation messages. Internal
// kinds never expose the body upstream.
func FromResponse(statusCode int, header http.Header, body []byte) *Error {
	kind := kindForStatus(statusCode)
	e := &Error{Kind: kind, StatusCode: statusCode}

	if kind == KindInternal {
		e.Message = MessageInternal
		return e
	}

	e.Message, e.Fields = extractMessage(body)
	if e.Message == "" {
		e.Message = http.StatusText(statusCode)
	}
	if kind != KindValidation {
		e.Fields = nil
	}
	if kind == KindRateLimited {
		e.RetryAfter = parseRetryAfter(header.Get("Retry-After"))
	}
	return e
}

// extractMessage pulls a human-readable message and any field-level
// messages out of an error body.
func extractMessage(body []byte) (string, map[string][]string) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", nil
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(body, &parsed); err != nil {
		return truncate(trimmed, maxRawMessageLen), nil
	}

	message := ""
	if raw, ok := parsed["detail"]; ok {
		var detail string
		if err := json.Unmarshal(raw, &detail); err == nil {
			message = detail
		}
		delete(parsed, "detail")
	}

	fields := make(map[string][]string)
	for name, raw := range parsed {
		var messages []string
		if err := json.Unmarshal(raw, &messages); err == nil {
			fields[name] = messages
			continue
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			fields[name] = []string{single}
		}
	}

	// DRF puts object-level validation under non_field_errors.
	if message == "" {
		if messages, ok := fields["non_field_errors"]; ok && len(messages) > 0 {
			message = strings.Join(messages, ", ")
			delete(fields, "non_field_errors")
		}
	}
	if message == "" && len(fields) == 0 {
		message = truncate(trimmed, maxRawMessageLen)
	}
	if len(fields) == 0 {
		fields = nil
	}
	return message, fields
}

// parseRetryAfter handles both delta-seconds and HTTP-date forms.
func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
