// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for idxctl's user
// configuration. The configuration is a YAML document located by
// IDXCTL_CFG_FILE or, failing that, idxctl.yaml in the user's configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/idxctl.yaml or $HOME/.config/idxctl.yaml
//   - macOS: $HOME/Library/Application Support/idxctl.yaml
//   - Windows: %APPDATA%/idxctl.yaml
//
// Keys may be namespaced by action. With Namespace set to "delete", a lookup
// of "timestring" tries "delete.timestring" before "timestring". Argument sets
// used by the @name expansion live under "<action>.<name>" as string lists.
package config
