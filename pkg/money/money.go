// Package money normalizes monetary values at the API boundary.
//
// The backend serializes amounts inconsistently: sometimes as a JSON number,
// sometimes as a decimal-formatted string, sometimes null. Amount accepts
// all three and guarantees downstream code never sees NaN or Inf.
package money

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/aarondl/null/v8"
)

// Amount is a nullable monetary value.
//
// A null, empty-string, or non-finite backend value decodes to a null
// Amount rather than an error: a single bad field must not take down the
// whole row.
type Amount struct {
	f null.Float64
}

// New returns a valid Amount. Non-finite input yields the null Amount.
func New(value float64) Amount {
	if !isFinite(value) {
		return Null()
	}
	return Amount{f: null.Float64From(value)}
}

// Null returns the null Amount.
func Null() Amount {
	return Amount{f: null.NewFloat64(0, false)}
}

// IsNull reports whether the amount carries no value.
func (a Amount) IsNull() bool {
	return !a.f.Valid
}

// Value returns the numeric value, 0 when null.
func (a Amount) Value() float64 {
	return a.f.Float64
}

// Or returns the numeric value, or fallback when null.
func (a Amount) Or(fallback float64) float64 {
	if !a.f.Valid {
		return fallback
	}
	return a.f.Float64
}

// Ptr returns a pointer to the value, nil when null.
func (a Amount) Ptr() *float64 {
	return a.f.Ptr()
}

// UnmarshalJSON accepts a JSON number, a decimal string, or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Null()
		return nil
	}

	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Null()
			return nil
		}
		raw = s
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(value) {
		*a = Null()
		return nil
	}
	*a = New(value)
	return nil
}

// MarshalJSON emits a JSON number or null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.f.Float64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
