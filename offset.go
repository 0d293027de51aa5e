// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package horae

import (
	"fmt"
	"math"
)

// maxOffsetMinutes bounds offsets to ±14:00, the widest real-world offset.
const maxOffsetMinutes = 14 * 60

// An Offset is a fixed distance from UTC. Hours and Minutes carry the same
// sign, and Minutes is one of 0, 15, 30 or 45 (or their negatives).
type Offset struct {
	Hours   int
	Minutes int
}

// OffsetOf converts an offset given in fractional hours, as used by the zone
// catalogue, into an Offset. Only quarter-hour fractions within ±14:00 are
// accepted.
func OffsetOf(hours float64) (Offset, error) {
	quarters := hours * 4
	if math.IsNaN(quarters) || quarters != math.Trunc(quarters) || math.Abs(hours*60) > maxOffsetMinutes {
		return Offset{}, &OffsetError{Hours: hours}
	}
	minutes := int(quarters) * 15
	return Offset{Hours: minutes / 60, Minutes: minutes % 60}, nil
}

// Seconds returns the offset in seconds.
func (o Offset) Seconds() int64 {
	return int64(o.Hours*secondsPerHour + o.Minutes*secondsPerMinute)
}

// String returns o formatted as ±HH:MM.
func (o Offset) String() string {
	sign, h, m := '+', o.Hours, o.Minutes
	if h < 0 || m < 0 {
		sign, h, m = '-', -h, -m
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}

// apply shifts the calendar fields d and t by o. Carries and borrows
// propagate from the minute into the hour, and from there into the day,
// month and year.
func (o Offset) apply(d *Date, t *Time) {
	carry := 0
	for _, u := range [...]struct {
		field *int
		delta int
		base  int
	}{
		{&t.Minute, o.Minutes, 60},
		{&t.Hour, o.Hours, 24},
	} {
		carry, *u.field = norm(0, *u.field+u.delta+carry, u.base)
	}
	d.addDays(carry)
}

// OffsetError is returned for offsets which are not on the quarter-hour grid
// or lie outside of ±14:00.
type OffsetError struct {
	Hours float64
}

// Error implements the error interface.
func (e *OffsetError) Error() string {
	return fmt.Sprintf("horae: UTC offset %v hours is not a quarter-hour within ±14:00", e.Hours)
}
