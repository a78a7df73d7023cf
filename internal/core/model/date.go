package model

import (
	"fmt"
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// The API speaks calendar dates only: YYYY-MM-DD, timezone-naive.
const dateLayout = "2006-01-02"

// NewDate builds a date at UTC midnight.
func NewDate(year int, month time.Month, day int) types.Date {
	return types.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses exactly YYYY-MM-DD. Anything else is rejected.
func ParseDate(s string) (types.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return types.Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return types.Date{Time: t}, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(d types.Date) string {
	return d.Time.Format(dateLayout)
}

// Today is the current UTC wall-clock date.
func Today() types.Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}
