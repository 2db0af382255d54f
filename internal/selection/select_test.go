// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package selection

import (
	"embed"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testNow is the instant every fixture is evaluated at.
var testNow = time.Date(2020, time.July, 1, 12, 30, 0, 0, time.UTC)

// testSelectCase represents a single test case for TestSelect.
type testSelectCase struct {
	Name       string   `yaml:"name"`
	Master     []string `yaml:"master"`
	Specs      []Spec   `yaml:"specs"`
	AllIndices bool     `yaml:"allIndices"`
	Action     string   `yaml:"action"`
	Includes   []string `yaml:"includes"`
	Want       []string `yaml:"want"`
	WantErr    string   `yaml:"wantErr"`
}

var wantErrs = map[string]error{
	"no_indices":  ErrNoIndicesAvailable,
	"no_matching": ErrNoMatchingIndices,
	"invalid":     ErrInvalidFilterCombination,
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestSelect(t *testing.T) {
	var tests []testSelectCase
	require.NoError(t, loadTestData("select_cases.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got, err := Select(tt.Master, tt.Specs, Options{
				AllIndices: tt.AllIndices,
				Includes:   tt.Includes,
				Action:     tt.Action,
				Now:        testNow,
			})

			if tt.WantErr != "" {
				require.Contains(t, wantErrs, tt.WantErr)
				assert.ErrorIs(t, err, wantErrs[tt.WantErr])
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestSelect_DoesNotMutateMaster(t *testing.T) {
	master := []string{"b", "a", "c"}
	_, err := Select(master, []Spec{{Kind: KindRegex, Value: "a", Exclude: true}}, Options{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, master)
}

func TestSelect_Deterministic(t *testing.T) {
	master := []string{"logs-2020.06.30", "x", "logs-2020.01.01", "logs-2020.06.30", ".kibana"}
	specs := []Spec{
		{Kind: KindOlderThan, Count: 1, Unit: UnitDays, Timestring: "%Y.%m.%d"},
		{Kind: KindRegex, Value: "06", Exclude: true},
	}
	opts := Options{Action: ActionDelete, Now: testNow}

	first, err := Select(master, specs, opts)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Select(master, specs, opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []string{"logs-2020.01.01"}, first)
}

// Keeping is an intersection and excluding a difference, so reordering the
// specs never changes the result.
func TestSelect_OrderIndependent(t *testing.T) {
	master := []string{"logs-a-1", "logs-b-2", "logs-c-1", "metrics-a-1", "metrics-b-2"}
	specs := []Spec{
		{Kind: KindPrefix, Value: "logs-"},
		{Kind: KindRegex, Value: "-b-", Exclude: true},
		{Kind: KindSuffix, Value: "-1"},
	}

	want, err := Select(master, specs, Options{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, []string{"logs-a-1", "logs-c-1"}, want)

	reversed := slices.Clone(specs)
	slices.Reverse(reversed)
	got, err := Select(master, reversed, Options{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSelect_GuardOverAnyFilters(t *testing.T) {
	master := []string{".kibana", ".kibana_2", "kibana-int", "logs-1", ".marvel-kibana"}
	filters := [][]Spec{
		nil,
		{{Kind: KindRegex, Value: "kibana"}},
		{{Kind: KindRegex, Value: "^logs", Exclude: true}},
		{{Kind: KindRegex, Value: "."}},
	}

	for _, specs := range filters {
		got, err := Select(master, specs, Options{Action: ActionDelete, Now: testNow})
		if err != nil {
			assert.ErrorIs(t, err, ErrNoMatchingIndices)
			continue
		}
		for _, name := range got {
			assert.False(t, Guarded(name), "%s survived the guard with %v", name, specs)
		}
	}
}

func TestGuarded(t *testing.T) {
	for _, name := range []string{".kibana", ".kibana_1", ".kibana-6", "kibana-int", "kibana-int-2", ".marvel-kibana"} {
		assert.True(t, Guarded(name), name)
	}
	for _, name := range []string{"kibana", ".kibanax", ".kibana-foo", ".kibana_task_manager", "kibana-int-archive", "logs-.kibana", "my-kibana-int", ".marvel-es-1"} {
		assert.False(t, Guarded(name), name)
	}
}

func TestPrune(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Prune([]string{".kibana", "a", "kibana-int", "b"}))
	assert.Empty(t, Prune([]string{".kibana"}))
}
