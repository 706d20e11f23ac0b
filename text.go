// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutil

import (
	"strconv"
	"strings"
	"time"
)

// Field positions within the two fixed-format inputs.
const (
	dayStart   = 0 // day field of the '2 Jan 2006' format
	dayEnd     = 2
	monthStart = 4 // month field of the basic ISO format
	monthEnd   = 6
)

const (
	// BasicISODateLayout is the compact ISO 8601 calendar date format,
	// YYYYMMDD.
	BasicISODateLayout = "20060102"
	// DayMonthYearLayout is a day, abbreviated English month name and
	// 4-digit year format, eg. "06 Sep 2019".
	DayMonthYearLayout = "2 Jan 2006"
)

// ParseBasicDate parses a calendar date in the compact ISO 8601 format
// YYYYMMDD. It returns false when the month field exceeds 12, the input
// is shorter than 8 characters or the text does not form a valid date.
func ParseBasicDate(val string) (CalendarDate, bool) {
	if len(val) < monthEnd {
		return CalendarDate{}, false
	}
	month, err := strconv.Atoi(val[monthStart:monthEnd])
	if err != nil || month > 12 {
		return CalendarDate{}, false
	}
	t, err := time.Parse(BasicISODateLayout, val)
	if err != nil {
		return CalendarDate{}, false
	}
	return CalendarDateFromTime(t), true
}

// ParseDayMonthYear parses a calendar date in the form '06 Sep 2019' with
// abbreviated English month names. Single digit days may be written
// without a leading zero. It returns false when the day field exceeds 31
// or the text does not form a valid date.
func ParseDayMonthYear(val string) (CalendarDate, bool) {
	if len(val) < dayEnd {
		return CalendarDate{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(val[dayStart:dayEnd]))
	if err != nil || day > 31 {
		return CalendarDate{}, false
	}
	t, err := time.Parse(DayMonthYearLayout, val)
	if err != nil {
		return CalendarDate{}, false
	}
	return CalendarDateFromTime(t), true
}
