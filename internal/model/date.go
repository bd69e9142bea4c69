package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is how the backend serializes day-precision fields.
const dateLayout = "2006-01-02"

// Date is a nullable day-precision value. Due dates and validity windows
// arrive as "2026-09-01"; a few rows carry full timestamps, so both
// layouts decode. Absent and null both yield an invalid Date.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a valid Date for t, truncated to the day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("model: date must be a string or null: %w", err)
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, *s); err == nil {
			*d = Date{Time: t, Valid: true}
			return nil
		}
	}
	return fmt.Errorf("model: invalid date %q", *s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(dateLayout))
}

// String renders the date in wire form, empty when null.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateLayout)
}
