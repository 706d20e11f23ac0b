// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutil

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrParse indicates text that is not a valid offset or zone
	// qualified ISO 8601 date-time.
	ErrParse = errors.New("invalid date-time")
	// ErrUnknownZone indicates a name that is not a recognized timezone
	// region identifier.
	ErrUnknownZone = errors.New("unknown time zone")
)

// Offset and zone qualified ISO 8601 date-time formats accepted by
// TimeInZone, with and without a seconds field.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

func parseZoned(val string) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as an ISO 8601 date-time: %w", val, ErrParse)
}

// TimeInZone interprets an offset or zone qualified ISO 8601 date-time
// string in the named timezone region and returns the local date-time
// observed there. The offset applied is the one the region's rules,
// including daylight saving transitions, assign to the wall-clock reading
// of the string itself; the instant the string denotes is then
// reinterpreted at that offset.
//
// It returns ErrParse if the string is not a valid zoned date-time and
// ErrUnknownZone if zone is not a recognized region identifier such as
// "Europe/Paris".
func TimeInZone(val, zone string) (LocalDateTime, error) {
	t, err := parseZoned(val)
	if err != nil {
		return LocalDateTime{}, err
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("cannot load %q: %w", zone, ErrUnknownZone)
	}
	// The offset the zone's rules assign to the string's own wall-clock
	// reading, which need not be the offset in effect at the instant.
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
	_, offset := wall.Zone()
	return LocalDateTimeFromTime(t.In(time.FixedZone(zone, offset))), nil
}
