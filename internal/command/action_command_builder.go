// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/idxctl/idxctl/internal/meta"
)

// ActionCommandBuilder constructs a cli.Command for a lifecycle action using
// a consistent pattern. The builder wires metadata, appends the selection
// flags and validates them in Before so that a bad filter combination fails
// before any request is made.
type ActionCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (acb *ActionCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      acb.Name,
		Usage:     acb.Usage,
		UsageText: acb.UsageText,
		Metadata: map[string]any{
			"meta": acb.Meta,
		},
		Flags: append(acb.Flags, NewSelectionFlags(acb.Name, acb.Meta.Config.Source)...),
		// Patterns given to --exclude may contain commas.
		DisableSliceFlagSeparator: true,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, SelectionValidator(ctx, c)
		},
		Action: acb.Action,
	}
}

// actionCommandBuilder constructs the cli.Command for one lifecycle action.
func actionCommandBuilder(action Action, meta meta.Meta) *cli.Command {
	return (&ActionCommandBuilder{
		Name:      action.Name,
		Usage:     action.Usage,
		UsageText: "idxctl [global options] " + action.Name + " [selection options] [@set]",
		Action:    NewActionRunner(action.Name).Run,
		Meta:      meta,
	}).Build()
}
