// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intp(i int) *int { return &i }

func TestBuildSpecs(t *testing.T) {
	got := BuildSpecs(Flags{
		NewerThan:  intp(0),
		OlderThan:  intp(30),
		Prefix:     "logs-",
		Suffix:     "-hot",
		Regex:      "^logs-.*-hot$",
		Exclude:    []string{"tmp", "", "scratch"},
		TimeUnit:   "days",
		Timestring: "%Y.%m.%d",
	})

	want := []Spec{
		{Kind: KindNewerThan, Count: 0, Unit: UnitDays, Timestring: "%Y.%m.%d"},
		{Kind: KindOlderThan, Count: 30, Unit: UnitDays, Timestring: "%Y.%m.%d"},
		{Kind: KindPrefix, Value: "logs-"},
		{Kind: KindSuffix, Value: "-hot"},
		{Kind: KindRegex, Value: "^logs-.*-hot$"},
		{Kind: KindRegex, Value: "tmp", Exclude: true},
		{Kind: KindRegex, Value: "scratch", Exclude: true},
	}
	assert.Equal(t, want, got)
}

func TestBuildSpecs_Empty(t *testing.T) {
	assert.Empty(t, BuildSpecs(Flags{TimeUnit: "days", Timestring: "%Y"}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		specs   []Spec
		wantErr string
	}{
		{name: "nothing"},
		{name: "name filters", specs: []Spec{{Kind: KindPrefix, Value: "a"}, {Kind: KindRegex, Value: "b+"}}},
		{name: "time filter", specs: []Spec{{Kind: KindOlderThan, Count: 3, Unit: UnitWeeks, Timestring: "%Y.%W"}}},
		{name: "missing unit", specs: []Spec{{Kind: KindNewerThan, Count: 3, Timestring: "%Y"}}, wantErr: "--time-unit is required"},
		{name: "missing timestring", specs: []Spec{{Kind: KindOlderThan, Count: 3, Unit: UnitDays}}, wantErr: "--timestring is required"},
		{name: "negative count", specs: []Spec{{Kind: KindOlderThan, Count: -1, Unit: UnitDays, Timestring: "%Y"}}, wantErr: "must not be negative"},
		{name: "bad unit", specs: []Spec{{Kind: KindOlderThan, Count: 1, Unit: "years", Timestring: "%Y"}}, wantErr: "unknown time unit"},
		{name: "timestring without date", specs: []Spec{{Kind: KindOlderThan, Count: 1, Unit: UnitDays, Timestring: "logs"}}, wantErr: "no date directive"},
		{name: "bad regex", specs: []Spec{{Kind: KindRegex, Value: "[", Exclude: true}}, wantErr: "bad pattern"},
		{name: "empty prefix", specs: []Spec{{Kind: KindPrefix}}, wantErr: "empty prefix"},
		{name: "unknown kind", specs: []Spec{{Kind: "size"}}, wantErr: "unknown filter kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.specs, testNow)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidFilterCombination)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ZeroNow(t *testing.T) {
	specs := []Spec{{Kind: KindOlderThan, Count: 3, Unit: UnitMonths, Timestring: "%Y.%m"}}
	assert.NoError(t, Validate(specs, time.Time{}))
}

func TestSpecString(t *testing.T) {
	assert.Equal(t, `prefix "logs-"`, Spec{Kind: KindPrefix, Value: "logs-"}.String())
	assert.Equal(t, `exclude regex "tmp"`, Spec{Kind: KindRegex, Value: "tmp", Exclude: true}.String())
	assert.Equal(t, "older_than 30 days (%Y.%m.%d)",
		Spec{Kind: KindOlderThan, Count: 30, Unit: UnitDays, Timestring: "%Y.%m.%d"}.String())
}
