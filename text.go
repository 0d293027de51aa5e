// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package horae

import (
	"strconv"
	"strings"
)

// textLayout is the layout of MarshalText, without the fractional seconds.
const textLayout = "%yyyy-%mm-%ddT%HH:%MM:%SS"

// MarshalText implements the encoding.TextMarshaler interface. The instant is
// formatted in UTC as YYYY-MM-DDTHH:MM:SS.nnnnnnnnnZ. The zone is not
// preserved.
func (dt DateTime) MarshalText() ([]byte, error) {
	u := dt.UTC()
	b := u.AppendFormat(make([]byte, 0, 32), textLayout)
	b = append(b, '.')
	b = appendInt(b, int(u.nsec), 9)
	return append(b, 'Z'), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// YYYY-MM-DD HH:MM:SS, optionally with 'T' instead of the space, fractional
// seconds of up to nine digits and a trailing 'Z'. The result is in UTC.
func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := parseText(string(b))
	if err == nil {
		*dt = v
	}
	return err
}

func parseText(value string) (DateTime, error) {
	p := &parser{value: value}
	year := p.atoi(4)
	p.accept("-")
	month := p.atoi(2)
	p.accept("-")
	day := p.atoi(2)
	if !p.skipByte('T') {
		p.accept(" ")
	}
	hour := p.atoi(2)
	p.accept(":")
	minute := p.atoi(2)
	p.accept(":")
	second := p.atoi(2)
	var nsec int
	if p.skipByte('.') {
		nsec = p.fraction(9)
	}
	p.skipByte('Z')
	if p.hasErr {
		return DateTime{}, &ParseError{Value: strings.Clone(value), Elem: strings.Clone(p.value)}
	}
	if len(p.value) > 0 {
		return DateTime{}, &ParseError{Value: strings.Clone(value), Message: "extra text: " + strconv.Quote(p.value)}
	}
	dt, err := FromCalendar(year, month, day, hour, minute, second)
	if err != nil {
		return DateTime{}, &ParseError{Value: strings.Clone(value), Message: err.Error()}
	}
	return FromUnix(dt.sec, int64(nsec)), nil
}

type parser struct {
	hasErr bool
	value  string
}

// skipByte skips the given byte, if the input starts with it, and reports
// whether it did.
func (p *parser) skipByte(b byte) bool {
	if len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
		return true
	}
	return false
}

// accept a literal string.
func (p *parser) accept(lit string) {
	if p.hasErr || !strings.HasPrefix(p.value, lit) {
		p.hasErr = true
		return
	}
	p.value = p.value[len(lit):]
}

// atoi accepts the next i bytes of input as an unsigned integer.
func (p *parser) atoi(i int) int {
	if p.hasErr || len(p.value) < i {
		p.hasErr = true
		return 0
	}
	var n int
	for _, c := range []byte(p.value[:i]) {
		if c < '0' || c > '9' {
			p.hasErr = true
			return 0
		}
		n = n*10 + int(c-'0')
	}
	p.value = p.value[i:]
	return n
}

// fraction accepts between one and max digits as the fractional part of a
// number, scaled to max digits.
func (p *parser) fraction(max int) int {
	var n, i int
	for i = 0; i < max && i < len(p.value) && '0' <= p.value[i] && p.value[i] <= '9'; i++ {
		n = n*10 + int(p.value[i]-'0')
	}
	if i == 0 {
		p.hasErr = true
		return 0
	}
	p.value = p.value[i:]
	for ; i < max; i++ {
		n *= 10
	}
	return n
}
