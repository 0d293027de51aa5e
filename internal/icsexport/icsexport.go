// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icsexport writes series of DateTimes as iCalendar (RFC 5545) files.
package icsexport

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gonih.org/horae"
)

// productID identifies the generator in the PRODID property.
const productID = "gonih.org/horae"

// uidSpace is the namespace of event UIDs.
var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://gonih.org/horae"))

// Export describes how to turn a series into calendar events.
type Export struct {
	// Summary is the title of every event.
	Summary string
	// Length is the duration of every event. Zero-length events are allowed.
	Length time.Duration
	// Stamp is the DTSTAMP of every event.
	Stamp horae.DateTime
}

// Calendar returns a calendar with one event per element of series. Event
// times are written in UTC, regardless of the zone of the series. UIDs are
// derived from the summary and start, so exporting the same series twice
// yields the same events.
func (e Export) Calendar(series []horae.DateTime) *ics.Calendar {
	cal := ics.NewCalendarFor(productID)
	cal.SetMethod(ics.MethodPublish)
	for _, start := range series {
		ev := cal.AddEvent(e.uid(start))
		ev.SetDtStampTime(e.Stamp.StdTime())
		ev.SetStartAt(start.StdTime())
		ev.SetEndAt(start.Add(e.Length).StdTime())
		ev.SetSummary(e.Summary)
	}
	return cal
}

// Write writes the calendar of series to w.
func (e Export) Write(w io.Writer, series []horae.DateTime) error {
	if err := e.Calendar(series).SerializeTo(w); err != nil {
		return errors.Wrap(err, "writing calendar")
	}
	return nil
}

func (e Export) uid(start horae.DateTime) string {
	sec, nsec := start.Unix()
	name := fmt.Sprintf("%s\x00%d.%09d", e.Summary, sec, nsec)
	return uuid.NewSHA1(uidSpace, []byte(name)).String()
}

// Write writes series to w as events of the given length, stamped with the
// current time.
func Write(w io.Writer, summary string, series []horae.DateTime, length time.Duration) error {
	now, err := horae.Now()
	if err != nil {
		return errors.Wrap(err, "stamping calendar")
	}
	return Export{Summary: summary, Length: length, Stamp: now}.Write(w, series)
}
