// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/idxctl/idxctl/internal/log"
)

// Kind is the filter variant of a Spec.
type Kind string

const (
	KindNewerThan Kind = "newer_than"
	KindOlderThan Kind = "older_than"
	KindPrefix    Kind = "prefix"
	KindSuffix    Kind = "suffix"
	KindRegex     Kind = "regex"
)

// IsTime reports whether the kind compares index dates.
func (k Kind) IsTime() bool {
	return k == KindNewerThan || k == KindOlderThan
}

// Unit is the time unit age filters reckon by.
type Unit string

const (
	UnitHours  Unit = "hours"
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
)

// Units lists the accepted --time-unit values.
var Units = []Unit{UnitHours, UnitDays, UnitWeeks, UnitMonths}

// Spec is a single filter. Value holds the literal or pattern for name
// filters; Count, Unit and Timestring are used by the time filters.
type Spec struct {
	Kind       Kind   `yaml:"kind" json:"kind"`
	Value      string `yaml:"value,omitempty" json:"value,omitempty"`
	Count      int    `yaml:"count,omitempty" json:"count,omitempty"`
	Unit       Unit   `yaml:"unit,omitempty" json:"unit,omitempty"`
	Timestring string `yaml:"timestring,omitempty" json:"timestring,omitempty"`
	Exclude    bool   `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// String renders the spec for log lines.
func (s Spec) String() string {
	var b strings.Builder
	if s.Exclude {
		b.WriteString("exclude ")
	}
	b.WriteString(string(s.Kind))
	if s.Kind.IsTime() {
		fmt.Fprintf(&b, " %d %s (%s)", s.Count, s.Unit, s.Timestring)
	} else {
		fmt.Fprintf(&b, " %q", s.Value)
	}
	return b.String()
}

// Flags carries the raw selection flag values from the command line. Nil
// counts mean the flag was not given.
type Flags struct {
	NewerThan  *int
	OlderThan  *int
	Prefix     string
	Suffix     string
	Regex      string
	Exclude    []string
	TimeUnit   string
	Timestring string
}

// BuildSpecs turns the parsed flags into the ordered spec list. Time filters
// come first, then the name filters and finally one excluding regex per
// --exclude value.
func BuildSpecs(f Flags) []Spec {
	//nolint:prealloc
	var specs []Spec

	if f.NewerThan != nil {
		specs = append(specs, Spec{
			Kind:       KindNewerThan,
			Count:      *f.NewerThan,
			Unit:       Unit(f.TimeUnit),
			Timestring: f.Timestring,
		})
	}
	if f.OlderThan != nil {
		specs = append(specs, Spec{
			Kind:       KindOlderThan,
			Count:      *f.OlderThan,
			Unit:       Unit(f.TimeUnit),
			Timestring: f.Timestring,
		})
	}
	if f.Prefix != "" {
		specs = append(specs, Spec{Kind: KindPrefix, Value: f.Prefix})
	}
	if f.Suffix != "" {
		specs = append(specs, Spec{Kind: KindSuffix, Value: f.Suffix})
	}
	if f.Regex != "" {
		specs = append(specs, Spec{Kind: KindRegex, Value: f.Regex})
	}
	for _, x := range f.Exclude {
		if x == "" {
			continue
		}
		specs = append(specs, Spec{Kind: KindRegex, Value: x, Exclude: true})
	}

	return specs
}

// Validate checks every spec without touching any index list. All problems
// are wrapped in ErrInvalidFilterCombination.
func Validate(specs []Spec, now time.Time) error {
	now = anchor(now)
	for _, s := range specs {
		if _, err := compile(s, now); err != nil {
			return err
		}
	}
	return nil
}

// matcher reports whether a name matches a compiled spec.
type matcher func(name string) bool

// compile validates s and returns its matcher. Cutoffs are computed from now.
func compile(s Spec, now time.Time) (matcher, error) {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidFilterCombination, s.Kind, fmt.Sprintf(format, args...))
	}

	switch s.Kind {
	case KindPrefix:
		if s.Value == "" {
			return nil, invalid("empty prefix")
		}
		return func(name string) bool { return strings.HasPrefix(name, s.Value) }, nil

	case KindSuffix:
		if s.Value == "" {
			return nil, invalid("empty suffix")
		}
		return func(name string) bool { return strings.HasSuffix(name, s.Value) }, nil

	case KindRegex:
		re, err := regexp.Compile(s.Value)
		if err != nil {
			return nil, invalid("bad pattern %q: %v", s.Value, err)
		}
		return re.MatchString, nil

	case KindNewerThan, KindOlderThan:
		if s.Unit == "" {
			return nil, invalid("--time-unit is required")
		}
		if s.Timestring == "" {
			return nil, invalid("--timestring is required")
		}
		if s.Count < 0 {
			return nil, invalid("count must not be negative, got %d", s.Count)
		}
		cutoff, err := Cutoff(now, s.Unit, s.Count)
		if err != nil {
			return nil, invalid("%v", err)
		}
		re, err := DateRegex(s.Timestring)
		if err != nil {
			return nil, invalid("%v", err)
		}
		return timeMatcher(s, re, cutoff), nil

	default:
		return nil, fmt.Errorf("%w: unknown filter kind %q", ErrInvalidFilterCombination, s.Kind)
	}
}

// timeMatcher locates the first valid date in a name and compares it to
// cutoff. Names without a parsable date never match.
func timeMatcher(s Spec, re *regexp.Regexp, cutoff time.Time) matcher {
	return func(name string) bool {
		stamp, err := firstTime(re, name)
		if err != nil {
			log.Tracef("skipping %s: %v", name, err)
			return false
		}
		if s.Kind == KindOlderThan {
			return stamp.Before(cutoff)
		}
		return stamp.After(cutoff)
	}
}
