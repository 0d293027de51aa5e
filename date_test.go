// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package horae

import (
	"strconv"
	"testing"
	"time"
)

var instants = []int64{
	0,
	1,
	59,
	86399,
	86400,
	1130590,
	68169600,  // 1972-02-29
	189298800, // 1975-12-31 23:00:00
	924688965,
	951782400, // 2000-02-29
	951868800, // 2000-03-01
	1614261599,
	2664686207,
	32410297634,
	249501574603,
	MaxTimestamp,
}

// check compares the result of civil and unixOf to package time.
func check(t *testing.T, sec int64) {
	t.Helper()
	if sec < 0 || sec > MaxTimestamp {
		return
	}
	d, c := civil(sec, 0)
	want := time.Unix(sec, 0).UTC()
	y, m, day := want.Date()
	if d.Year != y || d.Month != m || d.Day != day {
		t.Errorf("civil(%d) = %v, want %04d-%02d-%02d", sec, d, y, m, day)
	}
	h, mi, s := want.Clock()
	if c.Hour != h || c.Minute != mi || c.Second != s {
		t.Errorf("civil(%d) = %v, want %02d:%02d:%02d", sec, c, h, mi, s)
	}
	if got := unixOf(d, c); got != sec {
		t.Errorf("unixOf(civil(%d)) = %d, want %d", sec, got, sec)
	}
	if got, want := d.Weekday(), want.Weekday(); got != want {
		t.Errorf("%v.Weekday() = %v, want %v", d, got, want)
	}
	if got, want := d.YearDay(), want.YearDay(); got != want {
		t.Errorf("%v.YearDay() = %d, want %d", d, got, want)
	}
}

func TestCivil(t *testing.T) {
	for _, sec := range instants {
		t.Run(strconv.FormatInt(sec, 10), func(t *testing.T) {
			check(t, sec)
		})
	}
}

func FuzzCivil(f *testing.F) {
	for _, sec := range instants {
		f.Add(sec)
	}
	f.Fuzz(check)
}

func TestIsLeap(t *testing.T) {
	tcs := []struct {
		year int
		want bool
	}{
		{1970, false},
		{1972, true},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
		{9996, true},
	}
	for _, tc := range tcs {
		if got := IsLeap(tc.year); got != tc.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tcs := []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.January, 2021, 31},
		{time.February, 2021, 28},
		{time.February, 2020, 29},
		{time.February, 1900, 28},
		{time.February, 2000, 29},
		{time.April, 2021, 30},
		{time.December, 9999, 31},
	}
	for _, tc := range tcs {
		if got := DaysIn(tc.month, tc.year); got != tc.want {
			t.Errorf("DaysIn(%v, %d) = %d, want %d", tc.month, tc.year, got, tc.want)
		}
	}
}

func TestLeapYearsSinceEpoch(t *testing.T) {
	tcs := []struct {
		year int
		want int
	}{
		{1969, 0},
		{1970, 0},
		{1971, 0},
		{1972, 1},
		{1999, 7},
		{2000, 8},
		{2024, 14},
	}
	for _, tc := range tcs {
		if got := leapYearsSinceEpoch(tc.year); got != tc.want {
			t.Errorf("leapYearsSinceEpoch(%d) = %d, want %d", tc.year, got, tc.want)
		}
	}
}

// TestConsecutiveDays walks calendar dates in order and checks that every one
// starts exactly one day after the previous one and converts back to itself.
func TestConsecutiveDays(t *testing.T) {
	years := []int{1970, 1971, 1972, 1999, 2000, 2023, 2024, 2099, 2100, 9999}
	for _, y := range years {
		prev := unixOf(Date{y, time.January, 1}, Time{}) - secondsPerDay
		for m := time.January; m <= time.December; m++ {
			for day := 1; day <= DaysIn(m, y); day++ {
				d := Date{y, m, day}
				sec := unixOf(d, Time{})
				if sec-prev != secondsPerDay {
					t.Fatalf("unixOf(%v) = %d, %d seconds after previous day", d, sec, sec-prev)
				}
				if got, _ := civil(sec, 0); got != d {
					t.Fatalf("civil(unixOf(%v)) = %v", d, got)
				}
				prev = sec
			}
		}
	}
}

func TestAddDays(t *testing.T) {
	tcs := []struct {
		d    Date
		n    int
		want Date
	}{
		{Date{2021, 1, 31}, 1, Date{2021, 2, 1}},
		{Date{2021, 12, 31}, 1, Date{2022, 1, 1}},
		{Date{2020, 2, 28}, 1, Date{2020, 2, 29}},
		{Date{2021, 2, 28}, 1, Date{2021, 3, 1}},
		{Date{2021, 3, 1}, -1, Date{2021, 2, 28}},
		{Date{2024, 3, 1}, -1, Date{2024, 2, 29}},
		{Date{2021, 1, 1}, -1, Date{2020, 12, 31}},
		{Date{1970, 1, 1}, -1, Date{1969, 12, 31}},
		{Date{2021, 5, 5}, 0, Date{2021, 5, 5}},
	}
	for _, tc := range tcs {
		got := tc.d
		got.addDays(tc.n)
		if got != tc.want {
			t.Errorf("%v.addDays(%d) = %v, want %v", tc.d, tc.n, got, tc.want)
		}
	}
}

func TestNorm(t *testing.T) {
	tcs := []struct {
		hi, lo, base int
		nhi, nlo     int
	}{
		{0, 59, 60, 0, 59},
		{0, 60, 60, 1, 0},
		{0, 89, 60, 1, 29},
		{0, -1, 60, -1, 59},
		{0, -30, 60, -1, 30},
		{0, -60, 60, -1, 0},
		{1, 47, 24, 2, 23},
		{0, -1, 24, -1, 23},
	}
	for _, tc := range tcs {
		nhi, nlo := norm(tc.hi, tc.lo, tc.base)
		if nhi != tc.nhi || nlo != tc.nlo {
			t.Errorf("norm(%d, %d, %d) = %d, %d, want %d, %d", tc.hi, tc.lo, tc.base, nhi, nlo, tc.nhi, tc.nlo)
		}
	}
}

func TestDateString(t *testing.T) {
	d := Date{2021, time.February, 5}
	if got, want := d.String(), "2021-02-05"; got != want {
		t.Errorf("%#v.String() = %q, want %q", d, got, want)
	}
	if got, want := d.GoString(), "horae.Date{Year: 2021, Month: 2, Day: 5}"; got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
	c := Time{Hour: 7, Minute: 3, Second: 9, Nanosecond: 42_000_000}
	if got, want := c.String(), "07:03:09.042"; got != want {
		t.Errorf("%v.String() = %q, want %q", c, got, want)
	}
}
