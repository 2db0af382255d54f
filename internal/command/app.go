// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/idxctl/idxctl/internal/config"
	"github.com/idxctl/idxctl/internal/log"
	"github.com/idxctl/idxctl/internal/meta"
)

// InitApp builds the root command. The action named in args is the namespace
// key used when retrieving config values.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	_, ns := FindAction(args)

	cfg, err := config.Load()
	switch {
	case errors.Is(err, config.ErrNoConfigFile):
		log.Debugf("no config file, using flags and environment only")
		config.Config = config.Type{}
		cfg = config.Config
	case err != nil:
		return nil, err
	}
	config.Config.Namespace = ns
	cfg.Namespace = ns

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Now:     time.Now().UTC(),
	}

	app := &cli.Command{
		Name:  "idxctl",
		Usage: "select indices for cluster lifecycle actions",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "idxctl version info",
				HideDefault: true,
			},
		}, NewGlobalFlags(ns, cfg.Source)...),
		// Patterns given to --exclude may contain commas.
		DisableSliceFlagSeparator: true,
		Metadata: map[string]any{
			"meta": meta,
		},
	}

	for _, action := range Actions {
		app.Commands = append(app.Commands, actionCommandBuilder(action, meta))
	}
	app.Commands = append(app.Commands, completionCommandBuilder(meta))

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
