// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package horae

import (
	"fmt"
	"time"
)

// A Date is a day in the proleptic Gregorian calendar. The Day is always valid
// for the Month and Year it is in.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return weekday(d)
}

// YearDay returns the day of the year of d, in the range [1,365] for non-leap
// years, and [1,366] in leap years.
func (d Date) YearDay() int {
	return daysSinceEpoch(d.Year, d.Month, d.Day) - daysBeforeYear(d.Year) + 1
}

// GoString implements fmt.GoStringer.
func (d Date) GoString() string {
	return fmt.Sprintf("horae.Date{Year: %d, Month: %d, Day: %d}", d.Year, d.Month, d.Day)
}

// String returns d formatted as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Format returns a textual representation of d according to layout. Time and
// timezone directives are copied to the output as literal text.
func (d Date) Format(layout string) string {
	return string(d.AppendFormat(nil, layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, layout string) []byte {
	return appendFormat(b, compile(layout), fields{date: d, has: hasDate})
}

// addDays moves d by n days, carrying into the month and year as needed.
func (d *Date) addDays(n int) {
	for ; n > 0; n-- {
		d.Day++
		if d.Day <= DaysIn(d.Month, d.Year) {
			continue
		}
		d.Day = 1
		if d.Month++; d.Month > time.December {
			d.Month = time.January
			d.Year++
		}
	}
	for ; n < 0; n++ {
		d.Day--
		if d.Day >= 1 {
			continue
		}
		if d.Month--; d.Month < time.January {
			d.Month = time.December
			d.Year--
		}
		d.Day = DaysIn(d.Month, d.Year)
	}
}

// A Time is a wall clock reading within a single day.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// String returns t formatted as HH:MM:SS.mmm.
func (t Time) String() string {
	return t.Format(TimeLayout)
}

// Format returns a textual representation of t according to layout. Date and
// timezone directives are copied to the output as literal text.
func (t Time) Format(layout string) string {
	return string(t.AppendFormat(nil, layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (t Time) AppendFormat(b []byte, layout string) []byte {
	return appendFormat(b, compile(layout), fields{clock: t, has: hasTime})
}

// Millisecond returns the millisecond part of t.
func (t Time) Millisecond() int {
	return t.Nanosecond / 1e6
}
