// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"regexp"
	"slices"
	"time"

	"github.com/idxctl/idxctl/internal/log"
)

// ActionDelete is the action name that turns on the safety guard.
const ActionDelete = "delete"

// guardRegex matches the indices the dashboard and monitoring layers keep
// their own state in, plus their numbered variants such as .kibana_1 or
// .kibana-6. Other names sharing the prefix are user indices.
var guardRegex = regexp.MustCompile(`^(\.kibana|kibana-int|\.marvel-kibana)([_-]\d+)?$`)

// Options carries everything Select needs besides the master list and specs.
type Options struct {
	// AllIndices skips every spec that does not exclude.
	AllIndices bool
	// Includes are added after the guard if they are in the master list.
	Includes []string
	// Action is the lifecycle action the result is for.
	Action string
	// Now anchors the time filters. Zero means time.Now().
	Now time.Time
}

// Guarded reports whether the safety guard protects name from deletion.
func Guarded(name string) bool {
	return guardRegex.MatchString(name)
}

// Select runs the selection pipeline over master and returns the sorted,
// deduplicated names the action should run against.
func Select(master []string, specs []Spec, opts Options) ([]string, error) {
	if len(master) == 0 {
		return nil, ErrNoIndicesAvailable
	}

	now := anchor(opts.Now)

	if opts.AllIndices {
		log.Infof("matching all indices, ignoring filters other than --exclude")
	} else {
		log.Debugf("all filters: %v", specs)
	}

	working := slices.Clone(master)
	for _, s := range specs {
		if opts.AllIndices && !s.Exclude {
			continue
		}

		match, err := compile(s, now)
		if err != nil {
			return nil, err
		}

		log.Debugf("filter: %s", s)
		working = apply(working, match, s.Exclude)
		log.Tracef("after %s: %v", s, working)
	}

	if opts.Action == ActionDelete {
		log.Infof("pruning dashboard indices to prevent accidental deletion")
		working = Prune(working)
	}

	working = append(working, present(opts.Includes, master)...)

	slices.Sort(working)
	working = slices.Compact(working)

	if len(working) == 0 {
		log.Warnf("no indices matched provided args")
		return nil, ErrNoMatchingIndices
	}

	log.Debugf("action %s will be executed against: %v", opts.Action, working)
	return working, nil
}

// Prune removes every guarded name.
func Prune(names []string) []string {
	return apply(names, Guarded, true)
}

// apply keeps the names that match, or drops them when exclude is set.
func apply(names []string, match matcher, exclude bool) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		if match(name) == exclude {
			if exclude {
				log.Debugf("excluding %s", name)
			}
			continue
		}
		result = append(result, name)
	}
	return result
}

// present returns the includes found in master, in include order.
func present(includes, master []string) []string {
	var result []string
	for _, name := range includes {
		if !slices.Contains(master, name) {
			log.Debugf("ignoring --index %s: not in the cluster", name)
			continue
		}
		result = append(result, name)
	}
	return result
}

// anchor returns now, or the current time when now is zero.
func anchor(now time.Time) time.Time {
	if now.IsZero() {
		return time.Now()
	}
	return now
}
