// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// now is the clock used by TodayDate and BeforeOrAfter.
var now = time.Now

// DatePart selects which granularity of the current date TodayDate
// reports. The zero value is not a valid selector.
type DatePart int

const (
	DateFull DatePart = iota + 1 // the whole date as YYYY-MM-DD
	DateYear
	DateMonth
	DateDay
)

var dateParts = []string{"full", "year", "month", "day"}

func (p DatePart) String() string {
	if p < DateFull || p > DateDay {
		return "invalid"
	}
	return dateParts[p-1]
}

// Parse a selector name as returned by String, in either lower or upper case.
func (p *DatePart) Parse(val string) error {
	lc := strings.ToLower(val)
	for i := range dateParts {
		if dateParts[i] == lc {
			*p = DatePart(i + 1)
			return nil
		}
	}
	return fmt.Errorf("invalid date part %q, expected one of %s", val, strings.Join(dateParts, ", "))
}

// ErrUnsupportedSelector indicates a DatePart outside the four recognized
// selectors.
var ErrUnsupportedSelector = errors.New("unsupported date part selector")

// TodayDate reports the current date, in the system's local timezone, at
// the granularity chosen by part: the whole date as YYYY-MM-DD, the
// 4-digit year, the full English month name or the day of the month. Any
// other selector fails with ErrUnsupportedSelector.
func TodayDate(part DatePart) (string, error) {
	today := CalendarDateFromTime(now())
	switch part {
	case DateFull:
		return today.String(), nil
	case DateYear:
		return strconv.Itoa(today.Year), nil
	case DateMonth:
		return today.Month.String(), nil
	case DateDay:
		return strconv.Itoa(today.Day), nil
	}
	return "", fmt.Errorf("%d: %w", part, ErrUnsupportedSelector)
}

// BeforeOrAfter reports how date relates to the current date in the
// system's local timezone, as one of "<date> is after <today>",
// "<date> is before <today>" or "<date> is today". The current date is
// captured once so the two comparisons cannot straddle midnight.
func BeforeOrAfter(date CalendarDate) string {
	today := CalendarDateFromTime(now())
	switch {
	case date.After(today):
		return fmt.Sprintf("%v is after %v", date, today)
	case date.Before(today):
		return fmt.Sprintf("%v is before %v", date, today)
	}
	return fmt.Sprintf("%v is today", date)
}
