// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for idxctl. Every lifecycle
// action (delete, close, show, ...) is a subcommand that shares one set of
// index selection flags. Connection flags live on the root command and are
// inherited by every action.
package command
