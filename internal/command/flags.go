// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/idxctl/idxctl/internal/cluster"
	"github.com/idxctl/idxctl/internal/selection"
)

// Flag categories shown in --help.
const (
	connectionCategory = "connection"
	outputCategory     = "output"
	selectionCategory  = "selection"
)

// NewGlobalFlags returns the connection and output flags. They are attached
// to the root command and inherited by every action. Values come from the
// command line, then IDXCTL_<FLAG>, then the config file at path under
// "<ns>.<flag>" and finally "<flag>".
func NewGlobalFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "host",
			Usage:    "cluster host, optionally as a URL",
			Category: connectionCategory,
			Value:    cluster.DefaultHost,
			Sources:  valueSourceChain(ns, "host", path),
		},
		&cli.IntFlag{
			Name:     "port",
			Usage:    "cluster port",
			Category: connectionCategory,
			Value:    cluster.DefaultPort,
			Sources:  valueSourceChain(ns, "port", path),
		},
		&cli.StringFlag{
			Name:     "url-prefix",
			Usage:    "path prefix when the cluster sits behind a proxy",
			Category: connectionCategory,
			Sources:  valueSourceChain(ns, "url-prefix", path),
		},
		&cli.BoolFlag{
			Name:     "use-ssl",
			Usage:    "connect over https",
			Category: connectionCategory,
			Sources:  valueSourceChain(ns, "use-ssl", path),
		},
		&cli.BoolFlag{
			Name:     "ssl-no-validate",
			Usage:    "skip TLS certificate verification",
			Category: connectionCategory,
			Sources:  valueSourceChain(ns, "ssl-no-validate", path),
		},
		&cli.StringFlag{
			Name:     "http-auth",
			Usage:    "basic auth credentials as user:password",
			Category: connectionCategory,
			Sources:  valueSourceChain(ns, "http-auth", path),
		},
		&cli.DurationFlag{
			Name:     "timeout",
			Usage:    "per request timeout",
			Category: connectionCategory,
			Value:    cluster.DefaultTimeout,
			Sources:  valueSourceChain(ns, "timeout", path),
			Validator: func(d time.Duration) error {
				return FlagValidators(d, PositiveDurationValidator)
			},
		},
		&cli.IntFlag{
			Name:     "retries",
			Usage:    "retries for failed requests",
			Category: connectionCategory,
			Value:    cluster.DefaultRetries,
			Sources:  valueSourceChain(ns, "retries", path),
			Validator: func(n int) error {
				return FlagValidators(n, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:     "aws-region",
			Usage:    "sign requests with SigV4 for this region (Amazon OpenSearch Service)",
			Category: connectionCategory,
			Sources:  valueSourceChain(ns, "aws-region", path),
		},
		&cli.StringFlag{
			Name:     "aws-profile",
			Usage:    "shared config profile for SigV4 credentials",
			Category: connectionCategory,
			Sources:  valueSourceChain(ns, "aws-profile", path),
		},
		&cli.BoolFlag{
			Name:     "dry-run",
			Usage:    "mark every selected index as a dry run",
			Category: outputCategory,
			Sources:  valueSourceChain(ns, "dry-run", path),
		},
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "output format (text, json, yaml, table)",
			Category: outputCategory,
			Value:    "text",
			Sources:  valueSourceChain(ns, "output", path),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:     "color",
			Aliases:  []string{"c"},
			Usage:    "color table and error output. Defaults to on for a terminal",
			Category: outputCategory,
			Sources:  valueSourceChain(ns, "color", path),
		},
		&cli.BoolFlag{
			Name:     "titles",
			Aliases:  []string{"t"},
			Usage:    "show column titles with table output",
			Category: outputCategory,
			Sources:  valueSourceChain(ns, "titles", path),
		},
		&cli.StringFlag{
			Name:     "sort",
			Aliases:  []string{"s"},
			Usage:    "comma-separated table columns to sort by, - for descending",
			Category: outputCategory,
			Sources:  valueSourceChain(ns, "sort", path),
		},
	}
}

// NewSelectionFlags returns the index selection flags every action takes.
// The repeatable --exclude and --index fall back to config lists in
// SelectionFromCommand rather than through a value source.
func NewSelectionFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     "newer-than",
			Usage:    "include only indices newer than n time units",
			Category: selectionCategory,
			Sources:  valueSourceChain(ns, "newer-than", path),
		},
		&cli.IntFlag{
			Name:     "older-than",
			Usage:    "include only indices older than n time units",
			Category: selectionCategory,
			Sources:  valueSourceChain(ns, "older-than", path),
		},
		&cli.StringFlag{
			Name:     "prefix",
			Usage:    "include only indices beginning with prefix",
			Category: selectionCategory,
			Sources:  valueSourceChain(ns, "prefix", path),
		},
		&cli.StringFlag{
			Name:     "suffix",
			Usage:    "include only indices ending with suffix",
			Category: selectionCategory,
			Sources:  valueSourceChain(ns, "suffix", path),
		},
		&cli.StringFlag{
			Name:     "time-unit",
			Usage:    "unit of time to reckon by (hours, days, weeks, months)",
			Category: selectionCategory,
			Sources:  valueSourceChain(ns, "time-unit", path),
			Validator: func(value string) error {
				return FlagValidators(value, TimeUnitValidator)
			},
		},
		&cli.StringFlag{
			Name:     "timestring",
			Usage:    "strftime pattern of the date in index names, e.g. %Y.%m.%d",
			Category: selectionCategory,
			Sources:  valueSourceChain(ns, "timestring", path),
		},
		&cli.StringFlag{
			Name:     "regex",
			Usage:    "include only indices matching the pattern, e.g. '^prefix-.*-suffix$'",
			Category: selectionCategory,
			Sources:  valueSourceChain(ns, "regex", path),
		},
		&cli.StringSliceFlag{
			Name:     "exclude",
			Usage:    "exclude indices matching the pattern. Repeatable",
			Category: selectionCategory,
		},
		&cli.StringSliceFlag{
			Name:     "index",
			Usage:    "add the named index to the selection. Repeatable",
			Category: selectionCategory,
		},
		&cli.BoolFlag{
			Name:     "all-indices",
			Usage:    "act on all indices, ignoring filters other than --exclude",
			Category: selectionCategory,
			Sources:  valueSourceChain(ns, "all-indices", path),
		},
	}
}

// valueSourceChain builds the env var and config file sources for a flag.
func valueSourceChain(ns string, name string, path string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar(envVarName(name)))
	return NameSpacedValueChainFromConfigFile(ns, name, path, chain)
}

// NameSpacedValueChainFromConfigFile appends namespaced and global config
// file sources for name to chain. Without a config file the chain is
// returned unchanged.
func NameSpacedValueChainFromConfigFile(ns string, name string, path string, chain cli.ValueSourceChain) cli.ValueSourceChain {
	if path == "" {
		return chain
	}

	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))

	return chain
}

func envVarName(name string) string {
	return "IDXCTL_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// units renders the accepted --time-unit values.
func units() []string {
	names := make([]string, 0, len(selection.Units))
	for _, u := range selection.Units {
		names = append(names, string(u))
	}
	return names
}
