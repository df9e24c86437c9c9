// Package dateutil converts between calendar dates (plain YYYY-MM-DD
// strings) and the kitchen's fixed time zone. Every function pivots through
// 12:00 UTC on the given calendar date before converting into the zone:
// formatting a midnight instant in a negative-offset zone would shift the
// displayed day backward, while noon stays on the same calendar day for any
// real-world offset within twelve hours.
package dateutil

import (
	"strings"
	"time"
)

// Zone is the kitchen's time zone. It is configured once here, not per user.
const Zone = "America/Toronto"

const dayLayout = "2006-01-02"

var location *time.Location

func init() {
	loc, err := time.LoadLocation(Zone)
	if err != nil {
		panic("dateutil: cannot load zone " + Zone + ": " + err.Error())
	}
	location = loc
}

// Today returns the current date in the kitchen zone as YYYY-MM-DD.
func Today() string {
	return time.Now().In(location).Format(dayLayout)
}

// Valid reports whether date is a syntactically valid YYYY-MM-DD string.
func Valid(date string) bool {
	_, err := time.Parse(dayLayout, date)
	return err == nil
}

// noonPivot returns 12:00 UTC on the given calendar date.
func noonPivot(date string) (time.Time, error) {
	t, err := time.Parse(dayLayout, date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// AddDays returns the date n days after the given date, formatted in the
// kitchen zone. n may be negative.
func AddDays(date string, n int) (string, error) {
	pivot, err := noonPivot(date)
	if err != nil {
		return "", err
	}
	return pivot.AddDate(0, 0, n).In(location).Format(dayLayout), nil
}

// WeekdayOf returns the lowercase full weekday name of the given date in
// the kitchen zone ("monday" ... "sunday").
func WeekdayOf(date string) (string, error) {
	pivot, err := noonPivot(date)
	if err != nil {
		return "", err
	}
	return strings.ToLower(pivot.In(location).Weekday().String()), nil
}

// Heading returns the long display form of a date, e.g.
// "Saturday, October 25, 2025".
func Heading(date string) (string, error) {
	pivot, err := noonPivot(date)
	if err != nil {
		return "", err
	}
	return pivot.In(location).Format("Monday, January 2, 2006"), nil
}
