// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// directiveWidths holds the strftime directives understood in a timestring
// and the number of digits each one occupies in an index name.
var directiveWidths = map[byte]int{
	'Y': 4, // year
	'y': 2, // year without century
	'm': 2, // month
	'd': 2, // day of month
	'H': 2, // hour
	'M': 2, // minute
	'S': 2, // second
	'j': 3, // day of year
	'W': 2, // week of year, Monday first
	'U': 2, // week of year, Sunday first
}

// ErrNoDateDirective means a timestring has nothing to parse a date from.
var ErrNoDateDirective = errors.New("timestring contains no date directive")

// DateRegex converts a strftime timestring (e.g. "%Y.%m.%d") into an
// unanchored regexp with one named group per directive. Characters other
// than directives are matched literally; "%%" matches a single "%".
func DateRegex(timestring string) (*regexp.Regexp, error) {
	expr, err := dateExpr(timestring)
	if err != nil {
		return nil, err
	}
	return regexp.Compile(expr)
}

func dateExpr(timestring string) (string, error) {
	var (
		b    strings.Builder
		seen = map[byte]bool{}
	)

	for i := 0; i < len(timestring); i++ {
		c := timestring[i]
		if c != '%' {
			b.WriteString(regexp.QuoteMeta(string(c)))
			continue
		}

		i++
		if i == len(timestring) {
			return "", fmt.Errorf("timestring %q ends with a bare %%", timestring)
		}

		d := timestring[i]
		if d == '%' {
			b.WriteString("%")
			continue
		}

		width, ok := directiveWidths[d]
		if !ok {
			return "", fmt.Errorf("unsupported directive %%%c in timestring %q", d, timestring)
		}
		if seen[d] {
			return "", fmt.Errorf("directive %%%c repeated in timestring %q", d, timestring)
		}
		seen[d] = true
		fmt.Fprintf(&b, `(?P<%c>\d{%d})`, d, width)
	}

	if len(seen) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoDateDirective, timestring)
	}

	return b.String(), nil
}

// ParseIndexTime parses stamp, which must match timestring exactly, into a UTC
// time. A timestring with a week directive resolves to the Monday of that
// week and one with a month but no day to the first of the month.
func ParseIndexTime(stamp, timestring string) (time.Time, error) {
	expr, err := dateExpr(timestring)
	if err != nil {
		return time.Time{}, err
	}

	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return time.Time{}, err
	}

	groups := re.FindStringSubmatch(stamp)
	if groups == nil {
		return time.Time{}, fmt.Errorf("%q does not match timestring %q", stamp, timestring)
	}

	return timeFromGroups(re, groups)
}

// IndexTime finds the first valid date matching timestring anywhere in name.
func IndexTime(name, timestring string) (time.Time, error) {
	re, err := DateRegex(timestring)
	if err != nil {
		return time.Time{}, err
	}

	t, err := firstTime(re, name)
	if errors.Is(err, errNoDate) {
		return time.Time{}, fmt.Errorf("no %q date in %s", timestring, name)
	}
	return t, err
}

var errNoDate = errors.New("no date")

// firstTime returns the first date-shaped substring of name that forms a
// valid date. Invalid candidates such as month 13 are skipped.
func firstTime(re *regexp.Regexp, name string) (time.Time, error) {
	var firstErr error
	for _, groups := range re.FindAllStringSubmatch(name, -1) {
		t, err := timeFromGroups(re, groups)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return time.Time{}, firstErr
	}
	return time.Time{}, errNoDate
}

// timeFromGroups assembles a time from the named groups of a DateRegex match.
func timeFromGroups(re *regexp.Regexp, groups []string) (time.Time, error) {
	fields := map[string]int{}
	for i, name := range re.SubexpNames() {
		if name == "" || i >= len(groups) {
			continue
		}
		n, err := strconv.Atoi(groups[i])
		if err != nil {
			return time.Time{}, err
		}
		fields[name] = n
	}

	get := func(name string, def int) int {
		if v, ok := fields[name]; ok {
			return v
		}
		return def
	}

	year := get("Y", 1900)
	if yy, ok := fields["y"]; ok {
		// POSIX pivot: 69-99 is the twentieth century.
		if yy >= 69 {
			year = 1900 + yy
		} else {
			year = 2000 + yy
		}
	}

	hour, minute, second := get("H", 0), get("M", 0), get("S", 0)
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("clock out of range: %02d:%02d:%02d", hour, minute, second)
	}
	clock := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	switch {
	case hasField(fields, "j"):
		yday := fields["j"]
		if yday < 1 || yday > jan1.AddDate(1, 0, -1).YearDay() {
			return time.Time{}, fmt.Errorf("day of year %d out of range for %d", yday, year)
		}
		return jan1.AddDate(0, 0, yday-1).Add(clock), nil

	case hasField(fields, "W"):
		week := fields["W"]
		if week > 53 {
			return time.Time{}, fmt.Errorf("week %d out of range", week)
		}
		firstMonday := jan1.AddDate(0, 0, (int(time.Monday)-int(jan1.Weekday())+7)%7)
		return firstMonday.AddDate(0, 0, (week-1)*7).Add(clock), nil

	case hasField(fields, "U"):
		week := fields["U"]
		if week > 53 {
			return time.Time{}, fmt.Errorf("week %d out of range", week)
		}
		firstSunday := jan1.AddDate(0, 0, (int(time.Sunday)-int(jan1.Weekday())+7)%7)
		return firstSunday.AddDate(0, 0, (week-1)*7+1).Add(clock), nil
	}

	month, day := get("m", 1), get("d", 1)
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if day < 1 || t.Day() != day {
		return time.Time{}, fmt.Errorf("day %d out of range for %d-%02d", day, year, month)
	}

	return t.Add(clock), nil
}

func hasField(fields map[string]int, name string) bool {
	_, ok := fields[name]
	return ok
}
