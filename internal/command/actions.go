// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"slices"
	"strings"
)

// Action describes one lifecycle action subcommand.
type Action struct {
	Name  string
	Usage string
}

// Actions are the lifecycle actions idxctl selects indices for. Only delete
// enables the safety guard.
var Actions = []Action{
	{Name: "alias", Usage: "select indices to add to or remove from an alias"},
	{Name: "allocation", Usage: "select indices to apply a routing allocation rule to"},
	{Name: "bloom", Usage: "select indices to disable bloom filter caching on"},
	{Name: "close", Usage: "select indices to close"},
	{Name: "delete", Usage: "select indices to delete"},
	{Name: "open", Usage: "select indices to open"},
	{Name: "optimize", Usage: "select indices to force merge"},
	{Name: "replicas", Usage: "select indices to change the replica count of"},
	{Name: "show", Usage: "show the selected indices"},
	{Name: "snapshot", Usage: "select indices to snapshot"},
}

// ActionNames returns the action names in order.
func ActionNames() []string {
	names := make([]string, 0, len(Actions))
	for _, a := range Actions {
		names = append(names, a.Name)
	}
	return names
}

// FindAction returns the position and name of the first action or completion
// subcommand in args, skipping args[0]. It returns -1 when there is none.
func FindAction(args []string) (int, string) {
	names := append(ActionNames(), "completion")
	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		if strings.HasPrefix(a, "-") {
			continue
		}
		if slices.Contains(names, a) {
			return i, a
		}
	}
	return -1, ""
}
