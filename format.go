// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package horae

import (
	"strconv"
	"strings"

	"gonih.org/horae/internal/cache"
	"gonih.org/horae/zone"
)

// These are predefined layouts for use in [DateTime.Format], [Date.Format] and
// [Time.Format].
const (
	DefaultLayout = "%yyyy-%mm-%dd %HH:%MM:%SS.%MS" // YYYY-MM-DD HH:MM:SS.mmm
	DateLayout    = "%yyyy-%mm-%dd"
	TimeLayout    = "%HH:%MM:%SS.%MS"
)

var longDayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var shortDayNames = []string{
	"Sun",
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
}

var shortMonthNames = []string{
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"May",
	"Jun",
	"Jul",
	"Aug",
	"Sep",
	"Oct",
	"Nov",
	"Dec",
}

var longMonthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// token is a single component of a layout string, either a literal separator
// or a directive. For directives, lit holds the directive as written in the
// layout, including the leading '%'.
type token struct {
	unit unit
	lit  string
}

// String implements fmt.Stringer, for debugging
func (t token) String() string {
	if t.unit == unitLiteral {
		return strconv.Quote(t.lit)
	}
	return t.unit.String()
}

// unit is the calendar field rendered by a directive.
type unit int

const (
	unitLiteral unit = iota

	unitShortDay
	unitDay
	unitShortNumMonth
	unitNumMonth
	unitShortWordMonth
	unitWordMonth
	unitShortYear
	unitYear
	unitFullYear
	unitShortHour
	unitHour
	unitShortMinute
	unitMinute
	unitShortSecond
	unitSecond
	unitMillisecond
	unitShortWeekday
	unitWeekday
	unitTimezone

	unitInvalid
)

// String implements fmt.Stringer. Except for unitLiteral, it returns the
// canonical directive of the unit.
func (u unit) String() string {
	switch u {
	case unitLiteral:
		return "<literal>"
	case unitShortDay:
		return "%d"
	case unitDay:
		return "%dd"
	case unitShortNumMonth:
		return "%m"
	case unitNumMonth:
		return "%mm"
	case unitShortWordMonth:
		return "%mmm"
	case unitWordMonth:
		return "%mmmm"
	case unitShortYear:
		return "%y"
	case unitYear:
		return "%yy"
	case unitFullYear:
		return "%yyyy"
	case unitShortHour:
		return "%H"
	case unitHour:
		return "%HH"
	case unitShortMinute:
		return "%M"
	case unitMinute:
		return "%MM"
	case unitShortSecond:
		return "%S"
	case unitSecond:
		return "%SS"
	case unitMillisecond:
		return "%MS"
	case unitShortWeekday:
		return "%wd"
	case unitWeekday:
		return "%wdd"
	case unitTimezone:
		return "%tz"
	}
	panic("invalid unit")
}

// fieldSet describes which fields of a value are available for rendering.
type fieldSet uint8

const (
	hasDate fieldSet = 1 << iota
	hasTime
	hasZone

	hasAll = hasDate | hasTime | hasZone
)

// needs returns the fields u is rendered from.
func (u unit) needs() fieldSet {
	switch {
	case u == unitTimezone:
		return hasZone
	case u >= unitShortHour && u <= unitMillisecond:
		return hasTime
	}
	return hasDate
}

// fields is the input of the renderer.
type fields struct {
	date  Date
	clock Time
	zone  zone.Zone
	has   fieldSet
}

// runUnits maps a directive letter to the units selected by runs of one, two,
// three or more of it. Runs longer than the table select its last entry.
var runUnits = map[byte][]unit{
	'd': {unitShortDay, unitDay},
	'm': {unitShortNumMonth, unitNumMonth, unitShortWordMonth, unitWordMonth},
	'y': {unitShortYear, unitYear, unitYear, unitFullYear},
	'H': {unitShortHour, unitHour},
	'M': {unitShortMinute, unitMinute},
	'S': {unitShortSecond, unitSecond},
}

// fixedUnits are directives which are not repetition sensitive, in matching
// order.
var fixedUnits = []struct {
	prefix string
	unit   unit
}{
	{"MS", unitMillisecond},
	{"tz", unitTimezone},
	{"wdd", unitWeekday},
	{"wd", unitShortWeekday},
}

// memoize compiled layout strings.
var memo cache.Cache[string, program]

// program is a compiled layout.
type program []token

// Size implements cache.Sizer.
func (p program) Size() int64 {
	return int64(len(p)) + 1
}

func compile(layout string) program {
	return memo.Get(layout, parseLayout)
}

// parseLayout splits layout into literal separators and directives. Text
// before the first '%' is literal. Every '%' starts a directive, which has to
// follow it immediately; anything after the directive up to the next '%' is
// literal. A '%' which is not followed by a known directive is copied to the
// output along with the text following it.
func parseLayout(layout string) program {
	chunks := strings.Split(layout, "%")
	prog := appendLiteral(nil, chunks[0])
	for _, c := range chunks[1:] {
		u, n := nextDirective(c)
		if u == unitLiteral {
			prog = appendLiteral(prog, "%"+c)
			continue
		}
		prog = append(prog, token{unit: u, lit: "%" + c[:n]})
		prog = appendLiteral(prog, c[n:])
	}
	return prog
}

// nextDirective returns the unit of the directive chunk starts with and its
// length in bytes. If chunk does not start with a directive, it returns
// unitLiteral.
func nextDirective(chunk string) (u unit, n int) {
	for _, f := range fixedUnits {
		if strings.HasPrefix(chunk, f.prefix) {
			return f.unit, len(f.prefix)
		}
	}
	if chunk == "" {
		return unitLiteral, 0
	}
	units, ok := runUnits[chunk[0]]
	if !ok {
		return unitLiteral, 0
	}
	for n < len(chunk) && chunk[n] == chunk[0] {
		n++
	}
	return units[min(n, len(units))-1], n
}

// appendLiteral appends a literal token to prog, merging it with a preceding
// literal.
func appendLiteral(prog program, lit string) program {
	if lit == "" {
		return prog
	}
	if n := len(prog); n > 0 && prog[n-1].unit == unitLiteral {
		prog[n-1].lit += lit
		return prog
	}
	return append(prog, token{lit: lit})
}

// Format returns a textual representation of dt in its zone, according to
// layout. Directives start with '%' and are case-sensitive:
//
//	%d    day of the month           7
//	%dd   day of the month, padded   07
//	%m    month                      1
//	%mm   month, padded              01
//	%mmm  month name, short          Jan
//	%mmmm month name                 January
//	%y    last digit of the year     7
//	%yy   last two digits of year    97
//	%yyyy year                       1997
//	%H    hour                       9
//	%HH   hour, padded               09
//	%M    minute                     5
//	%MM   minute, padded             05
//	%S    second                     3
//	%SS   second, padded             03
//	%MS   millisecond, padded        042
//	%wd   weekday name, short        Wed
//	%wdd  weekday name               Wednesday
//	%tz   zone abbreviation          CEST
//
// All other text, including a '%' not followed by a directive, is copied to the
// output unchanged.
func (dt DateTime) Format(layout string) string {
	const bufSize = 64
	var b []byte
	max := len(layout) + 16
	if max < bufSize {
		var buf [bufSize]byte
		b = buf[:0]
	} else {
		b = make([]byte, 0, max)
	}
	return string(dt.AppendFormat(b, layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (dt DateTime) AppendFormat(b []byte, layout string) []byte {
	d, t := dt.fields()
	return appendFormat(b, compile(layout), fields{date: d, clock: t, zone: dt.Zone(), has: hasAll})
}

func appendFormat(b []byte, prog program, f fields) []byte {
	for _, tok := range prog {
		if tok.unit == unitLiteral || f.has&tok.unit.needs() == 0 {
			b = append(b, tok.lit...)
			continue
		}
		switch tok.unit {
		case unitShortDay:
			b = appendInt(b, f.date.Day, 0)
		case unitDay:
			b = appendInt(b, f.date.Day, 2)
		case unitShortNumMonth:
			b = appendInt(b, int(f.date.Month), 0)
		case unitNumMonth:
			b = appendInt(b, int(f.date.Month), 2)
		case unitShortWordMonth:
			b = append(b, shortMonthNames[f.date.Month-1]...)
		case unitWordMonth:
			b = append(b, longMonthNames[f.date.Month-1]...)
		case unitShortYear:
			b = appendInt(b, f.date.Year%10, 0)
		case unitYear:
			b = appendInt(b, f.date.Year%100, 2)
		case unitFullYear:
			b = appendInt(b, f.date.Year, 4)
		case unitShortHour:
			b = appendInt(b, f.clock.Hour, 0)
		case unitHour:
			b = appendInt(b, f.clock.Hour, 2)
		case unitShortMinute:
			b = appendInt(b, f.clock.Minute, 0)
		case unitMinute:
			b = appendInt(b, f.clock.Minute, 2)
		case unitShortSecond:
			b = appendInt(b, f.clock.Second, 0)
		case unitSecond:
			b = appendInt(b, f.clock.Second, 2)
		case unitMillisecond:
			b = appendInt(b, f.clock.Millisecond(), 3)
		case unitShortWeekday:
			b = append(b, shortDayNames[weekday(f.date)]...)
		case unitWeekday:
			b = append(b, longDayNames[weekday(f.date)]...)
		case unitTimezone:
			b = append(b, f.zone.String()...)
		default:
			panic("invalid token " + tok.String())
		}
	}
	return b
}

// appendInt appends the decimal representation of the non-negative v to b,
// left-padded with zeros to width digits.
func appendInt(b []byte, v, width int) []byte {
	for w, p := 1, 10; w < width; w, p = w+1, p*10 {
		if v < p {
			b = append(b, '0')
		}
	}
	return strconv.AppendInt(b, int64(v), 10)
}
