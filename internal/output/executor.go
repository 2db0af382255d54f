// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/idxctl/idxctl/internal/log"
	"github.com/idxctl/idxctl/internal/selection"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "yaml", "table"}

// Executor renders the indices an action resolved to.
type Executor struct {
	// W defaults to os.Stdout.
	W      io.Writer
	Format string
	DryRun bool
	Color  bool
	Titles bool
	// Sort orders table rows, e.g. "-date,index". Empty keeps name order.
	Sort string
	// Timestring, when set, adds date and age columns to the table.
	Timestring string
	// Now anchors the age column. Zero means time.Now().
	Now time.Time
}

// Execute writes indices in the configured format.
func (e *Executor) Execute(ctx context.Context, action string, indices []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := e.W
	if w == nil {
		w = os.Stdout
	}

	log.Debugf("rendering %d indices for %s as %s", len(indices), action, e.Format)

	switch e.Format {
	case "", "text":
		for _, name := range indices {
			if e.DryRun {
				fmt.Fprintf(w, "DRY-RUN %s %s\n", action, name)
				continue
			}
			fmt.Fprintln(w, name)
		}
		return nil

	case "json":
		out, err := json.Marshal(nonNil(indices))
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err

	case "yaml":
		out, err := yaml.Marshal(nonNil(indices))
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(out)
		return err

	case "table":
		rows := e.rows(indices)
		SortRows(rows, e.Sort)

		header := ""
		if e.DryRun {
			header = "DRY-RUN " + action
		}
		TableWriter(rows, e.columns(), TableOptions{
			Color:  e.Color,
			Titles: e.Titles,
			Header: header,
		}, w)
		return nil

	default:
		return fmt.Errorf("unknown output format %q, expected one of %v", e.Format, Formats)
	}
}

// columns are the row keys the table shows, in order.
func (e *Executor) columns() []string {
	if e.Timestring == "" {
		return []string{"index"}
	}
	return []string{"index", "date", "age"}
}

// rows builds one table row per index. Names without a date leave the date
// and age cells empty.
func (e *Executor) rows(indices []string) []map[string]interface{} {
	now := e.Now
	if now.IsZero() {
		now = time.Now()
	}

	rows := make([]map[string]interface{}, 0, len(indices))
	for _, name := range indices {
		row := map[string]interface{}{"index": name}
		if e.Timestring != "" {
			if stamp, err := selection.IndexTime(name, e.Timestring); err == nil {
				row["date"] = stamp
				row["age"] = humanize.RelTime(stamp, now, "ago", "from now")
			} else {
				log.Tracef("no age for %s: %v", name, err)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// nonNil keeps an empty list rendering as [] rather than null.
func nonNil(indices []string) []string {
	if indices == nil {
		return []string{}
	}
	return slices.Clone(indices)
}
