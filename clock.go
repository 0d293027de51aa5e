// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package horae

import (
	"errors"
	"math"
	"time"
)

// ErrClockBeforeEpoch is returned by Now and NowFrom if the clock reads a
// time before the epoch, or no time at all.
var ErrClockBeforeEpoch = errors.New("horae: clock reads before 1970-01-01T00:00:00Z")

// A Clock returns the current instant in seconds since the epoch.
type Clock func() float64

// SystemClock reads the system clock.
func SystemClock() float64 {
	t := time.Now()
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// Fixed returns a Clock which always returns sec.
func Fixed(sec float64) Clock {
	return func() float64 { return sec }
}

// Now returns the current instant in UTC, read from the system clock.
func Now() (DateTime, error) {
	return NowFrom(SystemClock)
}

// NowFrom returns the instant read from c in UTC.
func NowFrom(c Clock) (DateTime, error) {
	sec := c()
	if math.IsNaN(sec) || sec < 0 {
		return DateTime{}, ErrClockBeforeEpoch
	}
	return FromTimestamp(sec), nil
}
