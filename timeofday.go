// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ClockTime represents a time of day with second resolution and no date
// or timezone attached.
type ClockTime uint32

const secondsPerDay = 24 * 60 * 60

// NewClockTime creates a new ClockTime from the specified hour, minute and second.
func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime(hour<<16 | minute<<8 | second)
}

// ClockTimeFromTime returns the ClockTime for the specified time.Time.
func ClockTimeFromTime(t time.Time) ClockTime {
	return NewClockTime(t.Hour(), t.Minute(), t.Second())
}

func (t ClockTime) Hour() int {
	return int(t >> 16)
}

func (t ClockTime) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t ClockTime) Second() int {
	return int(t & 0xff)
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsNumber(c) {
			return false
		}
	}
	return true
}

func (t *ClockTime) parseHourMinuteSec(h, m, s string) error {
	if !isDigits(h) || !isDigits(m) || !isDigits(s) {
		return fmt.Errorf("invalid time: %s:%s:%s", h, m, s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour: %s", h)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute: %s", m)
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec < 0 || sec > 59 {
		return fmt.Errorf("invalid second: %s", s)
	}
	*t = NewClockTime(hour, minute, sec)
	return nil
}

// Parse val in the format '08:12[:10]'.
func (t *ClockTime) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08:12[:10]'")
	}
	parts := strings.Split(strings.TrimSpace(val), ":")
	switch len(parts) {
	case 2:
		return t.parseHourMinuteSec(parts[0], parts[1], "0")
	case 3:
		return t.parseHourMinuteSec(parts[0], parts[1], parts[2])
	}
	return fmt.Errorf("invalid format, expected '08:12[:10]'")
}

// addSeconds adds the signed number of seconds to the time of day,
// wrapping at midnight in either direction. No date rollover is tracked.
func (t ClockTime) addSeconds(seconds int) ClockTime {
	total := (t.daySecond() + seconds) % secondsPerDay
	if total < 0 {
		total += secondsPerDay
	}
	return NewClockTime(total/3600, total/60%60, total%60)
}

func (t ClockTime) daySecond() int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// AddHours returns the time of day the signed number of hours later,
// wrapping modulo 24 hours.
func (t ClockTime) AddHours(hours int) ClockTime {
	return t.addSeconds(hours * 3600)
}

// AddMinutes returns the time of day the signed number of minutes later,
// wrapping modulo 24 hours.
func (t ClockTime) AddMinutes(minutes int) ClockTime {
	return t.addSeconds(minutes * 60)
}

// AddSeconds returns the time of day the signed number of seconds later,
// wrapping modulo 24 hours.
func (t ClockTime) AddSeconds(seconds int) ClockTime {
	return t.addSeconds(seconds)
}

// Duration returns the time.Duration elapsed since midnight.
func (t ClockTime) Duration() time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second
}
