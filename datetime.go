// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package horae contains a civil calendar engine working on seconds since the
// Unix epoch.
//
// A [DateTime] couples an instant, counted in seconds since
// 1970-01-01T00:00:00Z, with its calendar representation in a timezone from
// package [gonih.org/horae/zone]. The instant is always UTC; the calendar
// fields are local to the zone. Timezones are fixed offsets: there is no
// daylight saving time and no leap second handling. Dates before the epoch
// and after the year 9999 can not be represented.
//
// Values are formatted with a small directive language, described at
// [DateTime.Format].
package horae

import (
	"math"
	"time"

	"gonih.org/horae/zone"
)

// MaxTimestamp is the largest instant representable by a DateTime, the last
// second of the year 9999.
const MaxTimestamp = 253402300799

// A DateTime is an instant together with its calendar representation in a
// timezone.
//
// The zero value is the epoch, 1970-01-01 00:00:00 UTC.
type DateTime struct {
	date  Date
	clock Time
	sec   int64
	nsec  int32
	zone  zone.Zone
}

// FromUnix returns the DateTime of the given instant in UTC. nsec may be
// outside of [0, 999999999] and is normalized into sec. Instants before the
// epoch or after MaxTimestamp saturate to the nearest representable instant.
func FromUnix(sec, nsec int64) DateTime {
	if nsec < 0 || nsec >= 1e9 {
		n := nsec / 1e9
		sec += n
		nsec -= n * 1e9
		if nsec < 0 {
			nsec += 1e9
			sec--
		}
	}
	switch {
	case sec < 0:
		sec, nsec = 0, 0
	case sec > MaxTimestamp:
		sec, nsec = MaxTimestamp, 999999999
	}
	dt := DateTime{sec: sec, nsec: int32(nsec), zone: zone.UTC}
	dt.date, dt.clock = civil(dt.sec, dt.nsec)
	return dt
}

// FromTimestamp returns the DateTime of an instant given in (fractional)
// seconds since the epoch, in UTC. The fraction is rounded to the nearest
// nanosecond. Instants before the epoch, NaN or after MaxTimestamp saturate
// to the nearest representable instant.
func FromTimestamp(sec float64) DateTime {
	switch {
	case math.IsNaN(sec) || sec <= 0:
		return FromUnix(0, 0)
	case sec >= MaxTimestamp+1:
		return FromUnix(MaxTimestamp, 999999999)
	}
	whole, frac := math.Modf(sec)
	return FromUnix(int64(whole), int64(math.Round(frac*1e9)))
}

// FromCalendar returns the DateTime of the given UTC calendar fields. It
// returns a *RangeError if any field is out of range, which includes days not
// in the month, e.g. February 30th.
func FromCalendar(year, month, day, hour, minute, second int) (DateTime, error) {
	checks := [...]struct {
		field    string
		v, lo, hi int
	}{
		{"year", year, epochYear, maxYear},
		{"month", month, 1, 12},
		{"day", day, 1, 31},
		{"hour", hour, 0, 23},
		{"minute", minute, 0, 59},
		{"second", second, 0, 59},
	}
	for _, c := range checks {
		if c.v < c.lo || c.v > c.hi {
			return DateTime{}, &RangeError{Field: c.field, Value: c.v, Min: c.lo, Max: c.hi}
		}
	}
	if n := DaysIn(time.Month(month), year); day > n {
		return DateTime{}, &RangeError{Field: "day", Value: day, Min: 1, Max: n}
	}
	d := Date{Year: year, Month: time.Month(month), Day: day}
	t := Time{Hour: hour, Minute: minute, Second: second}
	return DateTime{date: d, clock: t, sec: unixOf(d, t), zone: zone.UTC}, nil
}

// FromCalendarIn is like FromCalendar and then moves the result into z. The
// fields still denote the UTC instant.
func FromCalendarIn(z zone.Zone, year, month, day, hour, minute, second int) (DateTime, error) {
	dt, err := FromCalendar(year, month, day, hour, minute, second)
	if err != nil {
		return DateTime{}, err
	}
	if err := dt.SetZone(z); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

// SetZone moves dt into z. The calendar fields are recomputed from the
// instant, so the instant itself never changes and zones do not accumulate.
// It returns an *OffsetError if the offset of z is not a quarter hour within
// ±14:00, leaving dt unchanged.
func (dt *DateTime) SetZone(z zone.Zone) error {
	o, err := OffsetOf(z.Offset)
	if err != nil {
		return err
	}
	d, t := civil(dt.sec, dt.nsec)
	o.apply(&d, &t)
	dt.date, dt.clock, dt.zone = d, t, z
	return nil
}

// In returns a copy of dt moved into z. It panics if the offset of z is
// invalid, which is never the case for zones from the catalogue.
func (dt DateTime) In(z zone.Zone) DateTime {
	if err := dt.SetZone(z); err != nil {
		panic(err)
	}
	return dt
}

// UTC returns a copy of dt in UTC.
func (dt DateTime) UTC() DateTime {
	return dt.In(zone.UTC)
}

// Add returns dt+d, in the same zone as dt. The result saturates at the epoch
// and at MaxTimestamp.
func (dt DateTime) Add(d time.Duration) DateTime {
	sec := int64(d / time.Second)
	nsec := int64(d % time.Second)
	return FromUnix(dt.sec+sec, int64(dt.nsec)+nsec).In(dt.Zone())
}

// Sub returns dt-d, in the same zone as dt. The result saturates at the epoch
// and at MaxTimestamp.
func (dt DateTime) Sub(d time.Duration) DateTime {
	return dt.Add(-d)
}

// Since returns the duration from u to dt. The result saturates at the
// bounds of time.Duration.
func (dt DateTime) Since(u DateTime) time.Duration {
	sec := dt.sec - u.sec
	nsec := time.Duration(dt.nsec - u.nsec)
	const maxSec = math.MaxInt64 / int64(time.Second)
	switch {
	case sec > maxSec-1:
		return math.MaxInt64
	case sec < -maxSec+1:
		return math.MinInt64
	}
	return time.Duration(sec)*time.Second + nsec
}

// fields returns the calendar fields of dt. The zero DateTime has none
// stored, they are derived from its instant instead.
func (dt DateTime) fields() (Date, Time) {
	if dt.date.Month == 0 {
		return civil(dt.sec, dt.nsec)
	}
	return dt.date, dt.clock
}

// Date returns the calendar date of dt in its zone.
func (dt DateTime) Date() Date {
	d, _ := dt.fields()
	return d
}

// Time returns the wall clock of dt in its zone.
func (dt DateTime) Time() Time {
	_, t := dt.fields()
	return t
}

// Zone returns the zone of dt.
func (dt DateTime) Zone() zone.Zone {
	if dt.zone.Abbrev == "" {
		return zone.UTC
	}
	return dt.zone
}

// Weekday returns the day of the week of dt in its zone.
func (dt DateTime) Weekday() time.Weekday {
	return weekday(dt.Date())
}

// Unix returns the instant of dt as whole seconds and nanoseconds since the
// epoch.
func (dt DateTime) Unix() (sec int64, nsec int) {
	return dt.sec, int(dt.nsec)
}

// Timestamp returns the instant of dt as fractional seconds since the epoch.
func (dt DateTime) Timestamp() float64 {
	return float64(dt.sec) + float64(dt.nsec)/1e9
}

// StdTime returns the instant of dt as a time.Time in UTC.
func (dt DateTime) StdTime() time.Time {
	return time.Unix(dt.sec, int64(dt.nsec)).UTC()
}

// Equal reports whether dt and u denote the same instant, regardless of their
// zones.
func (dt DateTime) Equal(u DateTime) bool {
	return dt.sec == u.sec && dt.nsec == u.nsec
}

// Before reports whether dt is before u.
func (dt DateTime) Before(u DateTime) bool {
	return dt.sec < u.sec || dt.sec == u.sec && dt.nsec < u.nsec
}

// After reports whether dt is after u.
func (dt DateTime) After(u DateTime) bool {
	return u.Before(dt)
}

// String returns dt formatted as YYYY-MM-DD HH:MM:SS.mmm, in its zone.
func (dt DateTime) String() string {
	return dt.Format(DefaultLayout)
}
