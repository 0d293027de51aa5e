// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package horae

import "time"

const (
	// The year of the zero Instant.
	epochYear = 1970

	// The last year a DateTime can represent.
	maxYear = 9999

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	daysPer400Years = 146097
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month m of the given year.
func DaysIn(m time.Month, year int) int {
	if m == time.February && IsLeap(year) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// leapsThrough counts the leap years in [1, year].
func leapsThrough(year int) int {
	return year/4 - year/100 + year/400
}

// leapYearsSinceEpoch counts the leap years in the closed interval
// [1970, year].
func leapYearsSinceEpoch(year int) int {
	if year < epochYear {
		return 0
	}
	return leapsThrough(year) - leapsThrough(epochYear-1)
}

// daysBeforeYear returns the number of days from the epoch to January 1st of
// year. The leap day of year itself is not included, it only counts once
// March is reached.
func daysBeforeYear(year int) int {
	return 365*(year-epochYear) + leapYearsSinceEpoch(year-1)
}

// daysSinceEpoch returns the number of days from the epoch to the given
// date. Dates before the epoch yield negative values.
func daysSinceEpoch(year int, month time.Month, day int) int {
	d := daysBeforeYear(year) + daysBefore[month-1]
	if IsLeap(year) && month >= time.March {
		d++
	}
	return d + day - 1
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// civilDate decodes a number of days since the epoch into a date. days must
// not be negative.
func civilDate(days int) Date {
	// The estimate uses the mean Gregorian year, so it is off by at most one
	// in either direction.
	year := epochYear + days*400/daysPer400Years
	for daysBeforeYear(year) > days {
		year--
	}
	for daysBeforeYear(year+1) <= days {
		year++
	}
	yday := days - daysBeforeYear(year)

	month := time.January
	for yday >= DaysIn(month, year) {
		yday -= DaysIn(month, year)
		month++
	}
	return Date{Year: year, Month: month, Day: yday + 1}
}

// civil decodes a non-negative instant, given as whole seconds and
// nanoseconds since the epoch, into its UTC calendar fields.
func civil(sec int64, nsec int32) (Date, Time) {
	days, rem := sec/secondsPerDay, int(sec%secondsPerDay)
	t := Time{
		Hour:       rem / secondsPerHour,
		Minute:     rem % secondsPerHour / secondsPerMinute,
		Second:     rem % secondsPerMinute,
		Nanosecond: int(nsec),
	}
	return civilDate(int(days)), t
}

// unixOf encodes calendar fields into whole seconds since the epoch. It is the
// inverse of civil.
func unixOf(d Date, t Time) int64 {
	days := int64(daysSinceEpoch(d.Year, d.Month, d.Day))
	return days*secondsPerDay + int64(t.Hour*secondsPerHour+t.Minute*secondsPerMinute+t.Second)
}

// weekday returns the day of the week of the given date.
func weekday(d Date) time.Weekday {
	_, wd := norm(0, daysSinceEpoch(d.Year, d.Month, d.Day)+int(time.Thursday), 7) // 1970-01-01 was a Thursday
	return time.Weekday(wd)
}
