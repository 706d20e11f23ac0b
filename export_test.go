// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutil

import "time"

// SetNowForTest replaces the clock used by TodayDate and BeforeOrAfter
// and returns a function that restores it.
func SetNowForTest(fn func() time.Time) func() {
	prev := now
	now = fn
	return func() { now = prev }
}
