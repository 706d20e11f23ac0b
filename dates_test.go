// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutil_test

import (
	"testing"

	"cloudeng.io/datetimeutil"
)

func TestParseMonth(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month datetimeutil.Month
	}{
		{"Jan", 1},
		{"january", 1},
		{"Feb", 2},
		{"sep", 9},
		{"September", 9},
		{"DEC", 12},
	} {
		month, err := datetimeutil.ParseMonth(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
		}
		if got, want := month, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, tc := range []string{"", "janx", "montember", "13"} {
		if _, err := datetimeutil.ParseMonth(tc); err == nil {
			t.Errorf("failed to return an error: %q", tc)
		}
	}

	var month datetimeutil.Month
	if err := month.Parse("12"); err != nil {
		t.Errorf("failed: %v", err)
	}
	if got, want := month, datetimeutil.Month(12); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := month.String(), "December"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateFromComponents(t *testing.T) {
	for _, tc := range []struct {
		parts []int
		date  datetimeutil.CalendarDate
		ok    bool
	}{
		{[]int{2020, 12, 31}, newDate(2020, 12, 31), true},
		{[]int{2020, 2, 29}, newDate(2020, 2, 29), true}, // leap year
		{[]int{2021, 2, 29}, datetimeutil.CalendarDate{}, false},
		{[]int{2020, 2, 30}, datetimeutil.CalendarDate{}, false},
		{[]int{2020, 13, 1}, datetimeutil.CalendarDate{}, false},
		{[]int{2020, 0, 1}, datetimeutil.CalendarDate{}, false},
		{[]int{2020, 1, 0}, datetimeutil.CalendarDate{}, false},
		{[]int{2020, 1}, datetimeutil.CalendarDate{}, false},
		{nil, datetimeutil.CalendarDate{}, false},
		{[]int{2020, 1, 2, 99}, newDate(2020, 1, 2), true}, // extras ignored
	} {
		date, ok := datetimeutil.DateFromComponents(tc.parts)
		if got, want := ok, tc.ok; got != want {
			t.Errorf("%v: got %v, want %v", tc.parts, got, want)
		}
		if got, want := date, tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.parts, got, want)
		}
	}
}

func TestAddWeeks(t *testing.T) {
	for _, tc := range []struct {
		date  datetimeutil.CalendarDate
		weeks int
		want  datetimeutil.CalendarDate
	}{
		{newDate(2020, 1, 1), 1, newDate(2020, 1, 8)},
		{newDate(2020, 1, 1), 0, newDate(2020, 1, 1)},
		{newDate(2020, 1, 29), 1, newDate(2020, 2, 5)},
		{newDate(2020, 2, 25), 1, newDate(2020, 3, 3)},  // leap year Feb
		{newDate(2021, 2, 25), 1, newDate(2021, 3, 4)},  // non-leap Feb
		{newDate(2019, 12, 31), 1, newDate(2020, 1, 7)}, // year boundary
		{newDate(2020, 1, 1), -1, newDate(2019, 12, 25)},
		{newDate(2020, 1, 1), 52, newDate(2020, 12, 30)},
	} {
		if got, want := tc.date.AddWeeks(tc.weeks), tc.want; got != want {
			t.Errorf("%v + %v weeks: got %v, want %v", tc.date, tc.weeks, got, want)
		}
	}
}

func TestAddDays(t *testing.T) {
	for _, tc := range []struct {
		date datetimeutil.CalendarDate
		days int
		want datetimeutil.CalendarDate
	}{
		{newDate(2020, 2, 28), 1, newDate(2020, 2, 29)},
		{newDate(2021, 2, 28), 1, newDate(2021, 3, 1)},
		{newDate(2020, 12, 31), 1, newDate(2021, 1, 1)},
		{newDate(2020, 3, 1), -1, newDate(2020, 2, 29)},
	} {
		if got, want := tc.date.AddDays(tc.days), tc.want; got != want {
			t.Errorf("%v + %v days: got %v, want %v", tc.date, tc.days, got, want)
		}
	}
}

func TestCalendarDateOrdering(t *testing.T) {
	for _, tc := range []struct {
		a, b          datetimeutil.CalendarDate
		before, after bool
	}{
		{newDate(2020, 1, 1), newDate(2020, 1, 2), true, false},
		{newDate(2020, 1, 2), newDate(2020, 1, 1), false, true},
		{newDate(2020, 1, 1), newDate(2020, 1, 1), false, false},
		{newDate(2019, 12, 31), newDate(2020, 1, 1), true, false},
		{newDate(2020, 2, 28), newDate(2020, 3, 1), true, false},
	} {
		if got, want := tc.a.Before(tc.b), tc.before; got != want {
			t.Errorf("%v before %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := tc.a.After(tc.b), tc.after; got != want {
			t.Errorf("%v after %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}

func TestCalendarDateText(t *testing.T) {
	if got, want := newDate(2020, 12, 31).String(), "2020-12-31"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := newDate(987, 1, 2).String(), "0987-01-02"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	var date datetimeutil.CalendarDate
	if err := date.Parse("2019-09-06"); err != nil {
		t.Errorf("failed: %v", err)
	}
	if got, want := date, newDate(2019, 9, 6); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []string{"", "2019-9-6", "2019-13-01", "2021-02-29", "20190906"} {
		var cd datetimeutil.CalendarDate
		if err := cd.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %q", tc)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month datetimeutil.Month
		days  int
	}{
		{2020, 2, 29},
		{2021, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2021, 4, 30},
		{2021, 12, 31},
	} {
		if got, want := datetimeutil.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.month, tc.year, got, want)
		}
	}
}
