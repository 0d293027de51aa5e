// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icsexport_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonih.org/horae"
	"gonih.org/horae/internal/icsexport"
	"gonih.org/horae/zone"
)

func series(t *testing.T) []horae.DateTime {
	t.Helper()
	cest, err := zone.Lookup("CEST")
	require.NoError(t, err)
	var out []horae.DateTime
	for _, day := range []int{27, 28} {
		dt, err := horae.FromCalendarIn(cest, 2021, 2, day, 9, 30, 0)
		require.NoError(t, err)
		out = append(out, dt)
	}
	return out
}

func TestWrite(t *testing.T) {
	e := icsexport.Export{
		Summary: "Stand-up",
		Length:  15 * time.Minute,
		Stamp:   horae.FromTimestamp(924688965),
	}
	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, series(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "gonih.org/horae")
	assert.Contains(t, out, "DTSTART:20210227T093000Z")
	assert.Contains(t, out, "DTEND:20210227T094500Z")
	assert.Contains(t, out, "DTSTAMP:19990421T100245Z")

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)
	for i, ev := range events {
		start, err := ev.GetStartAt()
		require.NoError(t, err)
		assert.True(t, start.Equal(series(t)[i].StdTime()), "event %d starts at %v", i, start)

		end, err := ev.GetEndAt()
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, end.Sub(start))

		assert.Equal(t, "Stand-up", ev.GetProperty(ics.ComponentPropertySummary).Value)
	}
	assert.NotEqual(t, events[0].Id(), events[1].Id())
}

func TestUIDsAreStable(t *testing.T) {
	e := icsexport.Export{Summary: "Review", Length: time.Hour}
	a := e.Calendar(series(t)).Events()
	b := e.Calendar(series(t)).Events()
	require.Len(t, a, 2)
	require.Len(t, b, 2)
	assert.Equal(t, a[0].Id(), b[0].Id())
	assert.Equal(t, a[1].Id(), b[1].Id())

	other := icsexport.Export{Summary: "Retro", Length: time.Hour}.Calendar(series(t)).Events()
	assert.NotEqual(t, a[0].Id(), other[0].Id())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, icsexport.Write(&buf, "nothing", nil, time.Hour))
	assert.Contains(t, buf.String(), "END:VCALENDAR")
	assert.NotContains(t, buf.String(), "BEGIN:VEVENT")
}
