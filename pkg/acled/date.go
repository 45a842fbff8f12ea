package acled

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the only date form the API speaks, in queries and
// responses alike.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. The API transmits
// dates as "YYYY-MM-DD" strings; Date keeps that exact precision instead of
// smuggling a midnight time.Time through the public surface.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month, and day. Out-of-range values are
// normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string. Any other layout is an error.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return Date{t: t}, nil
}

// String renders the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// QueryValue implements Parameter.
func (d Date) QueryValue() string {
	return d.String()
}

// Time returns the date as a UTC time.Time at midnight.
func (d Date) Time() time.Time {
	return d.t
}

// Equal reports whether two dates are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler, strictly.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshaling date: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
