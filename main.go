// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/idxctl/idxctl/internal/cluster"
	"github.com/idxctl/idxctl/internal/command"
	"github.com/idxctl/idxctl/internal/config"
	"github.com/idxctl/idxctl/internal/log"
	"github.com/idxctl/idxctl/internal/output"
	"github.com/idxctl/idxctl/internal/selection"
	"github.com/idxctl/idxctl/internal/version"
)

// Exit codes.
const (
	exitOK          = 0
	exitUnavailable = 1
	exitError       = 2
	exitNoMatch     = 99
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stderr))
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// exitCode maps a run error onto the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, selection.ErrNoMatchingIndices):
		return exitNoMatch
	case errors.Is(err, cluster.ErrProviderUnavailable),
		errors.Is(err, selection.ErrNoIndicesAvailable):
		return exitUnavailable
	default:
		return exitError
	}
}

// reportError prints err as a single ERROR line on w.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, output.FormatError(err, output.ColorEnabled(false, false, w)))
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, stderr io.Writer) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		reportError(stderr, err)
		log.Debugf("app init err: err=%v", err)
		return exitUnavailable
	}

	if err := app.Run(ctx, args); err != nil {
		reportError(stderr, err)
		log.Debugf("app run err: err=%v", err)
		return exitCode(err)
	}

	return exitOK
}

func realMain(args []string, stderr io.Writer) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return exitOK
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip set processing and let the CLI handle it.
	helpFound := slices.ContainsFunc(args, func(a string) bool {
		return a == "--help" || a == "-h"
	})

	if _, action := command.FindAction(args); !helpFound && action != "completion" {
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(args, stderr)
}

// processSetOnly expands an @set argument following the action into the
// argument list stored under "<action>.<set>" in the config file. Each entry
// is split on whitespace and spliced in at the @set position.
func processSetOnly(args []string) []string {
	idx, action := command.FindAction(args)
	if idx == -1 {
		return args
	}

	set := ""
	removeIdx := -1
	for i, a := range args[idx+1:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + 1 + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	setArgs, err := config.GetStringSlice(action + "." + set)
	if err != nil {
		log.Warnf("set %s not found for %s: %v", set, action, err)
	}

	expanded := make([]string, 0, len(args)+len(setArgs))
	expanded = append(expanded, args[:removeIdx]...)
	for _, arg := range setArgs {
		expanded = append(expanded, strings.Fields(arg)...)
	}
	return append(expanded, args[removeIdx+1:]...)
}
