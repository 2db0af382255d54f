// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen renders the markdown and man pages for every idxctl action.
// Descriptions and examples come from docs/templates/idxctl.yaml; flags are
// read from the command definitions so the pages cannot drift from --help.
//
//	go run ./tools/docsgen docs
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/idxctl/idxctl/internal/command"
)

type Config struct {
	Subcommands []Subcommand `yaml:"subcommands"`
}

type Subcommand struct {
	ID          string    `yaml:"id"`
	Short       string    `yaml:"short"`
	Description string    `yaml:"description"`
	Usage       string    `yaml:"usage"`
	Flags       []Flag    `yaml:"flags"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string `yaml:"id"`
	Syntax      string `yaml:"syntax"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	Category    string `yaml:"category,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
	IDUpper string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(2)
	}
	docs := os.Args[1]

	data, err := os.ReadFile(filepath.Join(docs, "templates", "idxctl.yaml"))
	if err != nil {
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		panic(err)
	}

	app, err := command.InitApp(context.Background(), []string{"idxctl"})
	if err != nil {
		panic(err)
	}

	subs, err := mergeSubcommands(app, config)
	if err != nil {
		panic(err)
	}

	types := []Outputs{
		{Template: filepath.Join(docs, "templates", "idxctl.md.tmpl"), Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: filepath.Join(docs, "templates", "idxctl.man.tmpl"), Folder: filepath.Join(docs, "man", "share", "man1"), Prefix: "idxctl-", Suffix: ".1"},
	}

	version := getVersion()
	for _, sub := range subs {
		metadata := TemplateData{
			Subcommand: sub,
			Date:       time.Now().Format("January 2, 2006"),
			Version:    version,
			IDUpper:    strings.ToUpper(sub.ID),
		}

		for _, t := range types {
			path := filepath.Join(t.Folder, t.Prefix+sub.ID+t.Suffix)
			fmt.Println("Generating", path)
			if err := render(t.Template, path, metadata); err != nil {
				panic(err)
			}
		}
	}
}

// mergeSubcommands pairs every action command of app with its entry in config.
// Flags are the root's inherited flags plus the action's own, sorted by name.
// An action without a config entry is documented from its usage line.
func mergeSubcommands(app *cli.Command, config Config) ([]Subcommand, error) {
	byID := map[string]Subcommand{}
	for _, sub := range config.Subcommands {
		byID[sub.ID] = sub
	}

	var subs []Subcommand
	for _, action := range command.Actions {
		cmd := app.Command(action.Name)
		if cmd == nil {
			return nil, fmt.Errorf("no command for action %s", action.Name)
		}

		sub, ok := byID[action.Name]
		if !ok {
			sub = Subcommand{ID: action.Name}
		}
		if sub.Short == "" {
			sub.Short = action.Usage
		}
		if sub.Usage == "" {
			sub.Usage = cmd.UsageText
		}

		flags := append(flagDocs(app.Flags), flagDocs(cmd.Flags)...)
		sort.Slice(flags, func(i, j int) bool {
			return flags[i].ID < flags[j].ID
		})
		sub.Flags = append(flags, sub.Flags...)

		subs = append(subs, sub)
	}

	return subs, nil
}

// flagDocs describes flags for the templates, skipping --version.
func flagDocs(flags []cli.Flag) []Flag {
	var docs []Flag
	for _, f := range flags {
		names := f.Names()
		if names[0] == "version" {
			continue
		}

		doc := Flag{ID: names[0]}

		syntax := make([]string, 0, len(names))
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}
		doc.Syntax = strings.Join(syntax, ", ")

		if dg, ok := f.(cli.DocGenerationFlag); ok {
			doc.Description = dg.GetUsage()
			if dg.TakesValue() {
				doc.Syntax += " <" + dg.TypeName() + ">"
				if v := strings.Trim(dg.GetValue(), `"`); v != "0" {
					doc.Default = v
				}
			}
		}
		if cf, ok := f.(cli.CategorizableFlag); ok {
			doc.Category = cf.GetCategory()
		}

		docs = append(docs, doc)
	}
	return docs
}

// render executes the template file tmpl into path.
func render(tmpl string, path string, data TemplateData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	t, err := template.ParseFiles(tmpl)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return t.Execute(file, data)
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
