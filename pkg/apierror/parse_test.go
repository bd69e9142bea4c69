package apierror

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestFromResponseKinds(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       Kind
	}{
		{"400 is validation", 400, KindValidation},
		{"401 is unauthorized", 401, KindUnauthorized},
		{"403 is forbidden", 403, KindForbidden},
		{"404 is not found", 404, KindNotFound},
		{"409 is conflict", 409, KindConflict},
		{"429 is rate limited", 429, KindRateLimited},
		{"500 is internal", 500, KindInternal},
		{"502 is internal", 502, KindInternal},
		{"503 is internal", 503, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FromResponse(tt.statusCode, http.Header{}, []byte(`{"detail": "x"}`))
			if e.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.want)
			}
			if e.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", e.StatusCode, tt.statusCode)
			}
		})
	}
}

func TestFromResponseMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantMessage string
		wantFields  map[string][]string
	}{
		{
			name:        "detail field",
			statusCode:  404,
			body:        `{"detail": "Not found."}`,
			wantMessage: "Not found.",
		},
		{
			name:        "field-level validation",
			statusCode:  400,
			body:        `{"username": ["This field is required."], "email": ["Enter a valid email."]}`,
			wantMessage: "Bad Request",
			wantFields: map[string][]string{
				"username": {"This field is required."},
				"email":    {"Enter a valid email."},
			},
		},
		{
			name:        "non_field_errors becomes the message",
			statusCode:  400,
			body:        `{"non_field_errors": ["Quote already approved."]}`,
			wantMessage: "Quote already approved.",
		},
		{
			name:        "plain text body",
			statusCode:  409,
			body:        `conflict on write`,
			wantMessage: "conflict on write",
		},
		{
			name:        "empty body falls back to status text",
			statusCode:  404,
			body:        ``,
			wantMessage: "Not Found",
		},
		{
			name:        "fields only kept for validation kind",
			statusCode:  409,
			body:        `{"state": ["already published"]}`,
			wantMessage: "Conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FromResponse(tt.statusCode, http.Header{}, []byte(tt.body))
			if e.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", e.Message, tt.wantMessage)
			}
			if tt.wantFields == nil && e.Fields != nil {
				t.Errorf("Fields = %v, want nil", e.Fields)
			}
			for field, want := range tt.wantFields {
				got := e.Fields[field]
				if len(got) != len(want) || (len(got) > 0 && got[0] != want[0]) {
					t.Errorf("Fields[%q] = %v, want %v", field, got, want)
				}
			}
		})
	}
}

func TestFromResponseInternalHidesBody(t *testing.T) {
	e := FromResponse(500, http.Header{}, []byte(`goroutine 17 [running]: panic at db.go:42`))
	if e.Message != MessageInternal {
		t.Errorf("Message = %q, internal responses must use the generic message", e.Message)
	}
}

func TestFromResponseTruncatesRawBody(t *testing.T) {
	long := strings.Repeat("x", 2000)
	e := FromResponse(409, http.Header{}, []byte(long))
	if len(e.Message) > maxRawMessageLen {
		t.Errorf("Message length = %d, want <= %d", len(e.Message), maxRawMessageLen)
	}
	if !strings.HasSuffix(e.Message, "...") {
		t.Error("truncated message should end with ellipsis")
	}
}

func TestFromResponseRetryAfter(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", "30")
	e := FromResponse(429, header, []byte(`{"detail": "Throttled."}`))
	if e.RetryAfter != 30*time.Second {
		t.Errorf("RetryAfter = %v, want 30s", e.RetryAfter)
	}

	// HTTP-date form.
	header.Set("Retry-After", time.Now().Add(90*time.Second).UTC().Format(http.TimeFormat))
	e = FromResponse(429, header, nil)
	if e.RetryAfter < 60*time.Second || e.RetryAfter > 91*time.Second {
		t.Errorf("RetryAfter = %v, want ~90s", e.RetryAfter)
	}

	// Absent header.
	e = FromResponse(429, http.Header{}, nil)
	if e.RetryAfter != 0 {
		t.Errorf("RetryAfter = %v, want 0", e.RetryAfter)
	}

	// Non-429 never carries a retry hint.
	header.Set("Retry-After", "30")
	e = FromResponse(404, header, []byte(`{"detail": "x"}`))
	if e.RetryAfter != 0 {
		t.Errorf("RetryAfter on 404 = %v, want 0", e.RetryAfter)
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(nil); got != "" {
		t.Errorf("KindOf(nil) = %q, want empty", got)
	}
	if got := KindOf(NewUnauthorizedError()); got != KindUnauthorized {
		t.Errorf("KindOf = %v, want %v", got, KindUnauthorized)
	}
	if got := KindOf(http.ErrServerClosed); got != KindInternal {
		t.Errorf("KindOf(foreign error) = %v, want %v", got, KindInternal)
	}
	if !IsKind(NewForbiddenError(), KindForbidden) {
		t.Error("IsKind should match forbidden")
	}
	if IsKind(nil, KindForbidden) {
		t.Error("IsKind(nil) must be false")
	}
}
