// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/idxctl/idxctl/internal/meta"
)

const bashCompletionScript = `# bash completion for idxctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_idxctl()
{
    local cur prev cmd w
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local global="--host --port --url-prefix --use-ssl --ssl-no-validate --http-auth --timeout --retries --aws-region --aws-profile --dry-run --output -o --color -c --titles -t --sort -s"
    local selection="--newer-than --older-than --prefix --suffix --time-unit --timestring --regex --exclude --index --all-indices"

    cmd=""
    for w in "${COMP_WORDS[@]:1:COMP_CWORD-1}"; do
        case "$w" in
        {{ACTIONS_CASE}}|completion) cmd=$w; break ;;
        esac
    done

    case "$prev" in
    --output|-o)
        COMPREPLY=( $(compgen -W "text json yaml table" -- "$cur") )
        return 0
        ;;
    --time-unit)
        COMPREPLY=( $(compgen -W "hours days weeks months" -- "$cur") )
        return 0
        ;;
    esac

    case "$cmd" in
    "")
        COMPREPLY=( $(compgen -W "{{ACTIONS}} completion $global --help --version" -- "$cur") )
        ;;
    completion)
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        ;;
    *)
        COMPREPLY=( $(compgen -W "$selection $global --help" -- "$cur") )
        ;;
    esac
    return 0
}

complete -F _idxctl idxctl
`

const zshCompletionScript = `#compdef idxctl

_idxctl() {
  local -a cmds
  cmds=(
{{ACTIONS_DESCRIBED}}
    'completion:generate shell completion script'
  )

  local -a global
  global=(
  '--host[cluster host]:host'
  '--port[cluster port]:port'
  '--url-prefix[path prefix]:prefix'
  '--use-ssl[connect over https]'
  '--ssl-no-validate[skip TLS verification]'
  '--http-auth[user:password]:credentials'
  '--timeout[request timeout]:duration'
  '--retries[request retries]:retries'
  '--aws-region[SigV4 region]:region'
  '--aws-profile[SigV4 profile]:profile'
  '--dry-run[dry run]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml table)'
  '(-c --color)'{-c,--color}'[enable colored output]'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '(-s --sort)'{-s,--sort}'[sort columns]:columns'
  )

  local -a selection
  selection=(
  '--newer-than[newer than n units]:n'
  '--older-than[older than n units]:n'
  '--prefix[name prefix]:prefix'
  '--suffix[name suffix]:suffix'
  '--time-unit[unit of time]:unit:(hours days weeks months)'
  '--timestring[strftime pattern]:timestring'
  '--regex[name pattern]:regex'
  '*--exclude[exclude pattern]:regex'
  '*--index[include index]:index'
  '--all-indices[act on all indices]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'idxctl commands' cmds
    return
  fi

  case $words[2] in
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $global $selection
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _idxctl idxctl
`

// completionScript fills the action list into a script template.
func completionScript(tmpl string) string {
	names := ActionNames()

	described := make([]string, 0, len(Actions))
	for _, a := range Actions {
		described = append(described, fmt.Sprintf("    '%s:%s'", a.Name, a.Usage))
	}

	return strings.NewReplacer(
		"{{ACTIONS_CASE}}", strings.Join(names, "|"),
		"{{ACTIONS_DESCRIBED}}", strings.Join(described, "\n"),
		"{{ACTIONS}}", strings.Join(names, " "),
	).Replace(tmpl)
}

func completionCommandAction(_ context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, completionScript(bashCompletionScript))
	case "zsh":
		fmt.Fprint(w, completionScript(zshCompletionScript))
	default:
		return fmt.Errorf("usage: idxctl completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "idxctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
