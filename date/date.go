// Package date provides a day-granularity calendar date used for transaction
// timestamps throughout the dashboard.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical ISO-8601 representation of a Date.
const Format = "2006-01-02"

// readFormat is permissive about single-digit month and day on input.
const readFormat = "2006-1-2"

// Date represents a calendar date with no time-of-day component.
// The zero value is the zero date and reports IsZero.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date in local time.
func Today() Date { return New(time.Now().Date()) }

// Parse parses a date in YYYY-MM-DD form, tolerating single-digit fields.
func Parse(s string) (Date, error) {
	t, err := time.Parse(readFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return New(t.Date()), nil
}

// MustParse parses a date and panics on error. Test helper.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// time returns the canonical time.Time for the date (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(Format)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
