// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/idxctl/idxctl/internal/log"
	"github.com/idxctl/idxctl/internal/selection"
)

// IndexLister supplies the master list of index names.
type IndexLister interface {
	ListIndices(ctx context.Context) ([]string, error)
}

// Executor receives the resolved list for an action.
type Executor interface {
	Execute(ctx context.Context, action string, indices []string) error
}

// ActionRunner encapsulates the pipeline every action subcommand runs: fetch
// the master list, select, then hand the result to the executor.
type ActionRunner struct {
	Action     string
	ListerFn   func(context.Context, *cli.Command) (IndexLister, error)
	ExecutorFn func(*cli.Command) Executor
}

// NewActionRunner creates an ActionRunner backed by the cluster client and
// the output executor.
func NewActionRunner(action string) *ActionRunner {
	return &ActionRunner{
		Action: action,
		ListerFn: func(ctx context.Context, cmd *cli.Command) (IndexLister, error) {
			return InitClusterClient(ctx, cmd)
		},
		ExecutorFn: func(cmd *cli.Command) Executor {
			return NewExecutor(cmd)
		},
	}
}

// Run executes the action with the provided context and command.
func (ar *ActionRunner) Run(ctx context.Context, cmd *cli.Command) error {
	log.Infof("job starting: %s", ar.Action)
	if cmd.Bool("dry-run") {
		log.Infof("dry run mode, no changes will be made")
	}

	sel := SelectionFromCommand(cmd)

	lister, err := ar.ListerFn(ctx, cmd)
	if err != nil {
		return err
	}

	master, err := lister.ListIndices(ctx)
	if err != nil {
		return err
	}

	indices, err := selection.Select(master, sel.Specs, sel.Options)
	if err != nil {
		return err
	}

	return ar.ExecutorFn(cmd).Execute(ctx, ar.Action, indices)
}
