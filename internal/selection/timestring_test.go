// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRegex(t *testing.T) {
	tests := []struct {
		name       string
		timestring string
		input      string
		wantMatch  string
		wantErr    bool
	}{
		{name: "dotted day", timestring: "%Y.%m.%d", input: "logs-2020.01.01", wantMatch: "2020.01.01"},
		{name: "dots are literal", timestring: "%Y.%m.%d", input: "logs-2020x01x01", wantMatch: ""},
		{name: "dashes", timestring: "%Y-%m-%d", input: "app-2021-12-31-000001", wantMatch: "2021-12-31"},
		{name: "hourly", timestring: "%Y.%m.%d.%H", input: "logs-2020.07.01.09", wantMatch: "2020.07.01.09"},
		{name: "week", timestring: "%Y.%W", input: "weekly-2020.24", wantMatch: "2020.24"},
		{name: "percent literal", timestring: "%%%Y", input: "x%2020", wantMatch: "%2020"},
		{name: "no directive", timestring: "logs", wantErr: true},
		{name: "unsupported directive", timestring: "%Y.%b", wantErr: true},
		{name: "repeated directive", timestring: "%Y.%Y", wantErr: true},
		{name: "trailing percent", timestring: "%Y%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := DateRegex(tt.timestring)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, re.FindString(tt.input))
		})
	}
}

func TestDateRegex_NoDirectiveSentinel(t *testing.T) {
	_, err := DateRegex("plain")
	assert.ErrorIs(t, err, ErrNoDateDirective)
}

func TestParseIndexTime(t *testing.T) {
	utc := func(y int, m time.Month, d, h int) time.Time {
		return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		stamp      string
		timestring string
		want       time.Time
		wantErr    bool
	}{
		{name: "day", stamp: "2020.01.01", timestring: "%Y.%m.%d", want: utc(2020, time.January, 1, 0)},
		{name: "hour", stamp: "2020.07.01.09", timestring: "%Y.%m.%d.%H", want: utc(2020, time.July, 1, 9)},
		{name: "month defaults to first", stamp: "2020.06", timestring: "%Y.%m", want: utc(2020, time.June, 1, 0)},
		{name: "two digit year", stamp: "20.06.15", timestring: "%y.%m.%d", want: utc(2020, time.June, 15, 0)},
		{name: "two digit year pivot", stamp: "99.06.15", timestring: "%y.%m.%d", want: utc(1999, time.June, 15, 0)},
		{name: "day of year", stamp: "2020.060", timestring: "%Y.%j", want: utc(2020, time.February, 29, 0)},
		{name: "monday week 1", stamp: "2020.01", timestring: "%Y.%W", want: utc(2020, time.January, 6, 0)},
		{name: "monday week 0", stamp: "2020.00", timestring: "%Y.%W", want: utc(2019, time.December, 30, 0)},
		{name: "monday week 25", stamp: "2020.25", timestring: "%Y.%W", want: utc(2020, time.June, 22, 0)},
		{name: "sunday week 1", stamp: "2020.01", timestring: "%Y.%U", want: utc(2020, time.January, 6, 0)},
		{name: "year starting monday", stamp: "2018.01", timestring: "%Y.%W", want: utc(2018, time.January, 1, 0)},
		{name: "bad month", stamp: "2020.13.01", timestring: "%Y.%m.%d", wantErr: true},
		{name: "bad day", stamp: "2021.02.29", timestring: "%Y.%m.%d", wantErr: true},
		{name: "zero day", stamp: "2021.02.00", timestring: "%Y.%m.%d", wantErr: true},
		{name: "bad hour", stamp: "2020.01.01.24", timestring: "%Y.%m.%d.%H", wantErr: true},
		{name: "bad day of year", stamp: "2021.366", timestring: "%Y.%j", wantErr: true},
		{name: "no match", stamp: "logs-2020.01.01", timestring: "%Y.%m.%d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIndexTime(tt.stamp, tt.timestring)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexTime(t *testing.T) {
	got, err := IndexTime("logstash-2020.06.30-000001", "%Y.%m.%d")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.June, 30, 0, 0, 0, 0, time.UTC), got)

	_, err = IndexTime(".kibana", "%Y.%m.%d")
	assert.ErrorContains(t, err, "no \"%Y.%m.%d\" date in .kibana")

	got, err = IndexTime("x-2020.13.01-2020.01.01", "%Y.%m.%d")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = IndexTime("logs-2020.13.01", "%Y.%m.%d")
	assert.ErrorContains(t, err, "month 13 out of range")

	_, err = IndexTime("logs", "logs")
	assert.ErrorIs(t, err, ErrNoDateDirective)
}
