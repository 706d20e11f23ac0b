// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutil

import (
	"fmt"
	"strconv"
	"time"
)

// LocalDateTime represents a calendar date and a time of day with no
// timezone attached.
type LocalDateTime struct {
	Date CalendarDate
	Time ClockTime
}

// NewLocalDateTime creates a new LocalDateTime from the specified date
// and time of day.
func NewLocalDateTime(date CalendarDate, tod ClockTime) LocalDateTime {
	return LocalDateTime{Date: date, Time: tod}
}

// LocalDateTimeFromTime returns the LocalDateTime for the given time.Time
// in that time's location, discarding the location.
func LocalDateTimeFromTime(t time.Time) LocalDateTime {
	return LocalDateTime{Date: CalendarDateFromTime(t), Time: ClockTimeFromTime(t)}
}

// GoTime returns the time.Time for the date and time of day in the
// specified location.
func (dt LocalDateTime) GoTime(loc *time.Location) time.Time {
	return time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour(), dt.Time.Minute(), dt.Time.Second(), 0, loc)
}

// String returns the date-time in the extended ISO 8601 format, eg.
// "2019-09-06T13:17". The seconds field is omitted when zero.
func (dt LocalDateTime) String() string {
	if dt.Time.Second() == 0 {
		return fmt.Sprintf("%vT%02d:%02d", dt.Date, dt.Time.Hour(), dt.Time.Minute())
	}
	return fmt.Sprintf("%vT%v", dt.Date, dt.Time)
}

// displayLayout is the fixed English display format used by Format,
// eg. "01 January 2000 18:00".
const displayLayout = "02 January 2006 15:04"

// Format returns the date-time as 2-digit day, full English month name,
// 4-digit year and 24-hour zero padded hour and minute.
func (dt LocalDateTime) Format() string {
	return dt.GoTime(time.UTC).Format(displayLayout)
}

// DefaultOffset is the fixed regional UTC offset, +02:00, in seconds east
// of UTC, attached by AtDefaultOffset.
const DefaultOffset = 2 * 60 * 60

// OffsetDateTime represents a LocalDateTime with a fixed UTC offset.
type OffsetDateTime struct {
	DateTime LocalDateTime
	Offset   int // seconds east of UTC
}

// AtOffset attaches the given fixed offset, in seconds east of UTC, to
// the date-time.
func (dt LocalDateTime) AtOffset(seconds int) OffsetDateTime {
	return OffsetDateTime{DateTime: dt, Offset: seconds}
}

// AtDefaultOffset attaches the fixed +02:00 regional offset to the
// date-time, unconditionally. OffsetDateTime is the form recommended for
// storing date-time values in a database.
func (dt LocalDateTime) AtDefaultOffset() OffsetDateTime {
	return dt.AtOffset(DefaultOffset)
}

// String returns the date-time in the extended ISO 8601 format with its
// offset suffix, eg. "2019-09-06T13:17+02:00". A zero offset is rendered
// as "Z".
func (odt OffsetDateTime) String() string {
	return odt.DateTime.String() + FormatOffset(odt.Offset)
}

// FormatOffset returns the ISO 8601 text for an offset in seconds east of
// UTC, eg. "+02:00", "-05:30" or "Z" for zero.
func FormatOffset(seconds int) string {
	if seconds == 0 {
		return "Z"
	}
	sign := byte('+')
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}

// ParseOffset parses an ISO 8601 offset of the form accepted by
// FormatOffset and returns it in seconds east of UTC.
func ParseOffset(val string) (int, error) {
	if val == "Z" || val == "z" {
		return 0, nil
	}
	if len(val) != 6 || (val[0] != '+' && val[0] != '-') || val[3] != ':' {
		return 0, fmt.Errorf("invalid offset %q, expected format '+02:00'", val)
	}
	hours, err := strconv.Atoi(val[1:3])
	if err != nil || hours > 18 {
		return 0, fmt.Errorf("invalid offset hours: %s", val[1:3])
	}
	minutes, err := strconv.Atoi(val[4:6])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("invalid offset minutes: %s", val[4:6])
	}
	seconds := hours*3600 + minutes*60
	if val[0] == '-' {
		seconds = -seconds
	}
	return seconds, nil
}
