// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package selection narrows a master list of index names down to the set a
// lifecycle action should run against.
//
// A selection is an ordered list of Spec values, each one a filter of a
// single Kind:
//
//   - newer_than / older_than : the date embedded in the index name, located
//     and parsed with a strftime-style Timestring, compared against a cutoff
//     of Count time units before now
//   - prefix / suffix : literal match at the start or end of the name
//   - regex : unanchored regular expression search
//
// Every Spec keeps the names it matches, or removes them when Exclude is set.
// Keeping is a set intersection and excluding a set difference, so the result
// does not depend on the order of the specs.
//
// Select runs the whole pipeline:
//
//  1. an empty master list fails with ErrNoIndicesAvailable
//  2. the specs are applied in turn; with AllIndices only excluding specs run
//  3. for the delete action, names protected by the safety guard are removed
//  4. explicitly included names that exist in the master list are added back
//  5. the result is deduplicated and sorted; an empty result fails with
//     ErrNoMatchingIndices
//
// Specs are checked by Validate before anything touches the cluster so that a
// bad combination (a time filter without a unit, say) is reported early as
// ErrInvalidFilterCombination.
package selection
