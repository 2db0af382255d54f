// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output is the action executor. It renders the resolved index list
// as text, JSON, YAML or a table and never modifies the cluster.
package output
