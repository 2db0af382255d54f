// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/idxctl/idxctl/internal/config"
	"github.com/idxctl/idxctl/internal/log"
	"github.com/idxctl/idxctl/internal/meta"
	"github.com/idxctl/idxctl/internal/output"
	"github.com/idxctl/idxctl/internal/selection"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// Selection is everything selection.Select needs besides the master list.
type Selection struct {
	Specs   []selection.Spec
	Options selection.Options
}

// SelectionFromCommand reads the selection flags of an action command.
func SelectionFromCommand(cmd *cli.Command) Selection {
	f := selection.Flags{
		Prefix:     cmd.String("prefix"),
		Suffix:     cmd.String("suffix"),
		Regex:      cmd.String("regex"),
		Exclude:    stringSliceOrConfig(cmd, "exclude"),
		TimeUnit:   cmd.String("time-unit"),
		Timestring: cmd.String("timestring"),
	}
	if cmd.IsSet("newer-than") {
		n := cmd.Int("newer-than")
		f.NewerThan = &n
	}
	if cmd.IsSet("older-than") {
		n := cmd.Int("older-than")
		f.OlderThan = &n
	}

	return Selection{
		Specs: selection.BuildSpecs(f),
		Options: selection.Options{
			AllIndices: cmd.Bool("all-indices"),
			Includes:   stringSliceOrConfig(cmd, "index"),
			Action:     cmd.Name,
			Now:        GetMeta(cmd).Now,
		},
	}
}

// NewExecutor builds the output executor from the output flags. It writes to
// the root command's Writer.
func NewExecutor(cmd *cli.Command) *output.Executor {
	w := cmd.Root().Writer
	return &output.Executor{
		W:          w,
		Format:     cmd.String("output"),
		DryRun:     cmd.Bool("dry-run"),
		Color:      output.ColorEnabled(cmd.Bool("color"), cmd.IsSet("color"), w),
		Titles:     cmd.Bool("titles"),
		Sort:       cmd.String("sort"),
		Timestring: cmd.String("timestring"),
		Now:        GetMeta(cmd).Now,
	}
}

// stringSliceOrConfig returns a repeatable flag's values, or the list stored
// under the (namespaced) flag name in the config file when the flag is
// absent. Config lists are read directly so that patterns keep their commas.
func stringSliceOrConfig(cmd *cli.Command, name string) []string {
	if cmd.IsSet(name) {
		return cmd.StringSlice(name)
	}

	values, err := config.GetStringSlice(name)
	if err != nil {
		return nil
	}
	log.Debugf("%s from config: %v", name, values)
	return values
}
