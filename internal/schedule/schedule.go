// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schedule expands recurring events into series of DateTimes.
//
// Recurrences use RFC 5545 RRULE syntax, schedules use standard five-field
// cron specs. Both are evaluated in UTC; every result is moved into the zone
// of the start value.
package schedule

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/teambition/rrule-go"

	"gonih.org/horae"
)

// DefaultLimit bounds the number of occurrences returned for rules without
// COUNT or UNTIL.
const DefaultLimit = 100

// ErrLimit is returned for a non-positive limit or count.
var ErrLimit = errors.New("limit must be positive")

// Recurrence returns the occurrences of rule, starting at start. rule is an
// RRULE value such as "FREQ=WEEKLY;BYDAY=MO,WE;COUNT=4", optionally with an
// "RRULE:" prefix. Any DTSTART in rule is replaced by start, truncated to
// whole seconds. At most limit occurrences are returned, and none after
// horae.MaxTimestamp.
func Recurrence(rule string, start horae.DateTime, limit int) ([]horae.DateTime, error) {
	if limit <= 0 {
		return nil, errors.Wrapf(ErrLimit, "expanding %q", rule)
	}
	opt, err := rrule.StrToROption(strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:"))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing recurrence rule %q", rule)
	}
	opt.Dtstart = start.StdTime().Truncate(time.Second)
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, errors.Wrapf(err, "building recurrence rule %q", rule)
	}

	var out []horae.DateTime
	next := r.Iterator()
	for len(out) < limit {
		t, ok := next()
		if !ok || t.Unix() > horae.MaxTimestamp {
			break
		}
		out = append(out, fromTime(t, start))
	}
	return out, nil
}

// Cron returns the next n firings of the standard cron spec after start. Like
// cron itself, firings are whole minutes and strictly after start. Firings
// after horae.MaxTimestamp are dropped.
func Cron(spec string, start horae.DateTime, n int) ([]horae.DateTime, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrLimit, "scheduling %q", spec)
	}
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing cron spec %q", spec)
	}

	var out []horae.DateTime
	t := start.StdTime()
	for len(out) < n {
		t = sched.Next(t)
		// Next returns the zero time for specs which never fire.
		if t.IsZero() || t.Unix() > horae.MaxTimestamp {
			break
		}
		out = append(out, fromTime(t, start))
	}
	return out, nil
}

func fromTime(t time.Time, like horae.DateTime) horae.DateTime {
	return horae.FromUnix(t.Unix(), int64(t.Nanosecond())).In(like.Zone())
}
