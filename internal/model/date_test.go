package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      string
		wantErr   bool
	}{
		{name: "day precision", input: `"2026-09-01"`, wantValid: true, want: "2026-09-01"},
		{name: "full timestamp", input: `"2026-09-01T14:30:00Z"`, wantValid: true, want: "2026-09-01"},
		{name: "null", input: `null`, wantValid: false},
		{name: "empty string", input: `""`, wantValid: false},
		{name: "garbage", input: `"next tuesday"`, wantErr: true},
		{name: "number", input: `20260901`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if d.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", d.Valid, tt.wantValid)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateInJobDecode(t *testing.T) {
	body := `{"id": "j-001", "status": "pending", "due_date": "2026-09-12", "created_at": "2026-08-29T13:00:00Z"}`

	var job Job
	if err := json.Unmarshal([]byte(body), &job); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !job.DueDate.Valid || job.DueDate.String() != "2026-09-12" {
		t.Errorf("DueDate = %+v, want valid 2026-09-12", job.DueDate)
	}

	var quote Quote
	if err := json.Unmarshal([]byte(`{"id": "q-003", "total": "7200.00"}`), &quote); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if quote.ValidUntil.Valid {
		t.Errorf("absent valid_until decoded as valid: %+v", quote.ValidUntil)
	}
}

func TestDateMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		Due  Date `json:"due"`
		None Date `json:"none"`
	}{Due: NewDate(time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC))})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(out), `{"due":"2026-09-01","none":null}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
