// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
	"time"
)

// SortRows orders rows by a comma separated list of column names. A leading
// "-" sorts that column descending and a leading "!" compares case
// sensitively. Rows missing a column sort first.
func SortRows(rows []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}
	fields := strings.Split(spec, ",")

	sort.SliceStable(rows, func(one, two int) bool {
		for _, field := range fields {
			ascending := true
			if strings.HasPrefix(field, "-") {
				field = strings.TrimPrefix(field, "-")
				ascending = false
			}

			caseSensitive := false
			if strings.HasPrefix(field, "!") {
				field = strings.TrimPrefix(field, "!")
				caseSensitive = true
			}

			oneValue := rows[one][field]
			twoValue := rows[two][field]

			// Dates compare chronologically. The age column is derived from the
			// date, so it sorts the same way.
			if field == "age" {
				oneValue, twoValue = rows[one]["date"], rows[two]["date"]
			}
			oneTime, oneOk := oneValue.(time.Time)
			twoTime, twoOk := twoValue.(time.Time)
			if oneOk && twoOk {
				if !oneTime.Equal(twoTime) {
					if ascending {
						return oneTime.Before(twoTime)
					}
					return oneTime.After(twoTime)
				}
				continue
			}

			oneStr := CellString(oneValue)
			twoStr := CellString(twoValue)
			if !caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				if ascending {
					return oneStr < twoStr
				}
				return oneStr > twoStr
			}
		}
		return false
	})
}
