// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutil_test

import (
	"cloudeng.io/datetimeutil"
)

func newDate(year, month, day int) datetimeutil.CalendarDate {
	return datetimeutil.NewCalendarDate(year, datetimeutil.Month(month), day)
}

func newDateTime(year, month, day, hour, minute, second int) datetimeutil.LocalDateTime {
	return datetimeutil.NewLocalDateTime(
		newDate(year, month, day),
		datetimeutil.NewClockTime(hour, minute, second))
}
