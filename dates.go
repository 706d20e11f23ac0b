// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetimeutil provides helpers for working with calendar dates,
// times of day and their timezone qualified variants. All values are
// immutable; every operation returns a new value.
package datetimeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int.
type Month time.Month

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// String returns the full English month name, eg. "January".
func (m Month) String() string {
	return time.Month(m).String()
}

// CalendarDate represents a date with a year, month and day.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// ISODateLayout is the extended ISO 8601 calendar date format, YYYY-MM-DD.
const ISODateLayout = "2006-01-02"

// NewCalendarDate creates a new CalendarDate from the specified year,
// month and day without validating them; use IsValid to do so.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateFromTime returns the CalendarDate for the given time.Time
// in that time's location.
func CalendarDateFromTime(when time.Time) CalendarDate {
	return CalendarDate{Year: when.Year(), Month: Month(when.Month()), Day: when.Day()}
}

// DateFromComponents builds a CalendarDate from positional components
// [year, month, day]. It returns false when fewer than three components
// are supplied or when the components do not form a valid calendar date.
// Extra components are ignored.
func DateFromComponents(parts []int) (CalendarDate, bool) {
	if len(parts) < 3 {
		return CalendarDate{}, false
	}
	cd := CalendarDate{Year: parts[0], Month: Month(parts[1]), Day: parts[2]}
	if !cd.IsValid() {
		return CalendarDate{}, false
	}
	return cd, true
}

// IsValid returns true if the date is a valid Gregorian calendar date,
// ie. the month is 1-12 and the day exists in that month for that year.
func (cd CalendarDate) IsValid() bool {
	if cd.Month < 1 || cd.Month > 12 {
		return false
	}
	return cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

// String returns the date in the extended ISO 8601 format, eg. "2020-12-31".
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Parse a date in the extended ISO 8601 format accepted by String.
func (cd *CalendarDate) Parse(val string) error {
	t, err := time.Parse(ISODateLayout, val)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format %q", val, ISODateLayout)
	}
	*cd = CalendarDateFromTime(t)
	return nil
}

// Time returns the time.Time for midnight at the start of the date in the
// specified location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date days later, or earlier for a negative amount,
// normalizing across month and year boundaries including leap years.
func (cd CalendarDate) AddDays(days int) CalendarDate {
	return CalendarDateFromTime(cd.Time(time.UTC).AddDate(0, 0, days))
}

// AddWeeks returns the date weeks*7 days later, or earlier for a negative
// amount.
func (cd CalendarDate) AddWeeks(weeks int) CalendarDate {
	return cd.AddDays(weeks * 7)
}

// Before returns true if cd is earlier than the supplied date.
func (cd CalendarDate) Before(other CalendarDate) bool {
	if cd.Year != other.Year {
		return cd.Year < other.Year
	}
	if cd.Month != other.Month {
		return cd.Month < other.Month
	}
	return cd.Day < other.Day
}

// After returns true if cd is later than the supplied date.
func (cd CalendarDate) After(other CalendarDate) bool {
	return other.Before(cd)
}
