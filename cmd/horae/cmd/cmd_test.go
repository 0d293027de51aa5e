// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonih.org/horae"
)

// now is 1999-04-21 10:02:45 UTC, a Wednesday.
const now = 924688965

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"HORAE_ZONE", "HORAE_FORMAT", "HORAE_LOG_LEVEL", "HORAE_SERIES_LIMIT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	root := newRootCmd(horae.Fixed(now))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "now",
			args: []string{"now"},
			want: []string{"1999-04-21 10:02:45.000"},
		},
		{
			name: "now in zone",
			args: []string{"now", "--zone", "CHADT", "--format", "%wdd %HH:%MM %tz"},
			want: []string{"Wednesday 23:47 CHADT"},
		},
		{
			name: "convert",
			args: []string{"convert", "924688965", "-z", "MART"},
			want: []string{"1999-04-21 00:32:45.000"},
		},
		{
			name: "convert fraction",
			args: []string{"convert", "1130590.958"},
			want: []string{"1970-01-14 02:03:10.958"},
		},
		{
			name: "convert saturates",
			args: []string{"convert", "--", "-5"},
			want: []string{"1970-01-01 00:00:00.000"},
		},
		{
			name: "from",
			args: []string{"from", "2021", "12", "31", "23", "59", "59", "--zone", "Chatham Daylight Time"},
			want: []string{"2022-01-01 13:44:59.000", "1640995199"},
		},
		{
			name: "series",
			args: []string{"series", "FREQ=DAILY;COUNT=2", "--start", "1614261599", "--format", "%yyyy-%mm-%dd"},
			want: []string{"2021-02-25", "2021-02-26"},
		},
		{
			name: "series from now",
			args: []string{"series", "FREQ=YEARLY", "--limit", "2"},
			want: []string{"1999-04-21 10:02:45.000", "2000-04-21 10:02:45.000"},
		},
		{
			name: "cron",
			args: []string{"cron", "0 9 * * MON-FRI", "--start", "1614261599", "-n", "3", "--zone", "CEST", "--format", "%wd %dd %HH:%MM %tz"},
			want: []string{"Fri 26 11:00 CEST", "Mon 01 11:00 CEST", "Tue 02 11:00 CEST"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines(out))
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown zone", []string{"now", "--zone", "Mars Time"}},
		{"ambiguous zone", []string{"now", "--zone", "IST"}},
		{"bad timestamp", []string{"convert", "yesterday"}},
		{"bad field", []string{"from", "2021", "2", "x", "0", "0", "0"}},
		{"no leap day", []string{"from", "2021", "2", "29", "0", "0", "0"}},
		{"before epoch", []string{"from", "1969", "12", "31", "23", "59", "59"}},
		{"bad rule", []string{"series", "FREQ=SOMETIMES"}},
		{"bad cron", []string{"cron", "every minute"}},
		{"empty offset", []string{"zones", "--offset", "1.1"}},
		{"bad log level", []string{"now", "--log-level", "loud"}},
		{"missing config", []string{"now", "--config", "/nonexistent/horae.toml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestZones(t *testing.T) {
	out, err := run(t, "zones")
	require.NoError(t, err)
	for _, s := range []string{"ABBREV", "OFFSET", "CEST", "+02:00", "MART", "-09:30", "CHADT", "+13:45"} {
		assert.Contains(t, out, s)
	}

	out, err = run(t, "zones", "--offset", "5.75")
	require.NoError(t, err)
	assert.Contains(t, out, "Nepal Time")
	assert.Contains(t, out, "+05:45")
	assert.NotContains(t, out, "CEST")
}

func TestSeriesICS(t *testing.T) {
	out, err := run(t, "series", "FREQ=WEEKLY;COUNT=2", "--start", "1614261599", "--ics", "--summary", "Review", "--length", "30m")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:Review")
	assert.Contains(t, out, "DTSTART:20210225T135959Z")
	assert.Contains(t, out, "DTEND:20210225T142959Z")
	assert.Contains(t, out, "DTSTAMP:19990421T100245Z")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "horae.toml")
	require.NoError(t, os.WriteFile(path, []byte("zone = \"MART\"\nformat = \"%HH:%MM %tz\"\nseries_limit = 3\n"), 0o600))

	out, err := run(t, "now", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"00:32 MART"}, lines(out))

	out, err = run(t, "series", "FREQ=DAILY", "--config", path)
	require.NoError(t, err)
	assert.Len(t, lines(out), 3)

	out, err = run(t, "now", "--config", path, "--zone", "UTC", "--format", "%tz")
	require.NoError(t, err)
	assert.Equal(t, []string{"UTC"}, lines(out))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "horae v"+Version))
}
