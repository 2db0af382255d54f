// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/idxctl/idxctl/internal/command"
)

func TestFlagDocs(t *testing.T) {
	docs := flagDocs([]cli.Flag{
		&cli.BoolFlag{Name: "version"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output format", Value: "text", Category: "output"},
		&cli.BoolFlag{Name: "dry-run", Usage: "dry run"},
	})

	require.Len(t, docs, 2)
	assert.Equal(t, Flag{
		ID:          "output",
		Syntax:      "--output, -o <string>",
		Description: "output format",
		Default:     "text",
		Category:    "output",
	}, docs[0])
	assert.Equal(t, "--dry-run", docs[1].Syntax)
	assert.Empty(t, docs[1].Default)
}

func TestMergeAndRender(t *testing.T) {
	t.Setenv("IDXCTL_CFG_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	app, err := command.InitApp(context.Background(), []string{"idxctl"})
	require.NoError(t, err)

	subs, err := mergeSubcommands(app, Config{Subcommands: []Subcommand{
		{ID: "delete", Description: "Select indices to delete.", Examples: []Example{{Command: "idxctl delete --all-indices"}}},
	}})
	require.NoError(t, err)
	require.Len(t, subs, len(command.Actions))

	var del Subcommand
	for _, s := range subs {
		if s.ID == "delete" {
			del = s
		}
	}
	assert.Equal(t, "select indices to delete", del.Short)
	assert.Contains(t, del.Usage, "idxctl [global options] delete")

	ids := map[string]bool{}
	for _, f := range del.Flags {
		ids[f.ID] = true
	}
	for _, want := range []string{"host", "timeout", "older-than", "exclude", "all-indices"} {
		assert.True(t, ids[want], want)
	}
	assert.False(t, ids["version"])

	out := filepath.Join(t.TempDir(), "commands", "delete.md")
	tmpl := filepath.Join("..", "..", "docs", "templates", "idxctl.md.tmpl")
	require.NoError(t, render(tmpl, out, TemplateData{Subcommand: del, Version: "dev", Date: "today"}))

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "# idxctl delete")
	assert.Contains(t, string(page), "`--older-than <int>`")
	assert.Contains(t, string(page), "idxctl delete --all-indices")
}
