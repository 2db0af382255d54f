// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"fmt"
	"time"
)

// Cutoff returns the age boundary for count units before now. now is taken in
// UTC and first truncated to the start of its unit (the hour, the day, the
// Monday of the week or the first of the month), so that every index of the
// same period lands on the same side of the boundary.
func Cutoff(now time.Time, unit Unit, count int) (time.Time, error) {
	now = now.UTC()
	y, m, d := now.Date()

	switch unit {
	case UnitHours:
		start := now.Truncate(time.Hour)
		return start.Add(-time.Duration(count) * time.Hour), nil
	case UnitDays:
		start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return start.AddDate(0, 0, -count), nil
	case UnitWeeks:
		start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		start = start.AddDate(0, 0, -((int(start.Weekday()) + 6) % 7))
		return start.AddDate(0, 0, -7*count), nil
	case UnitMonths:
		start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return start.AddDate(0, -count, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown time unit %q, expected one of %v", unit, Units)
	}
}
