// Copyright 2025 The EN-PL-lookup Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	dsl "github.com/ickam/EN-PL-lookup"
	"github.com/ickam/EN-PL-lookup/render"
)

func queryCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Query dictionaries",
		ArgsUsage: "[TERM]",
		Description: "Query all dictionaries in the data directories. " +
			"The default is an exact headword match.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "prefix",
				Usage:   "match headwords starting with TERM",
				Aliases: []string{"p"},
			},
			&cli.IntFlag{
				Name:    "fuzzy",
				Usage:   "match headwords within `DIST` edits of TERM",
				Aliases: []string{"f"},
			},
			&cli.IntFlag{
				Name:    "limit",
				Usage:   "return at most `N` matches per dictionary",
				Aliases: []string{"n"},
				Value:   10,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected one argument, got %d", ErrFlagParse, c.NArg())
			}
			term := c.Args().Get(0)

			for _, d := range openDictionaries(dataDirs(c, cfg)) {
				ids, err := search(d, term, c)
				if err != nil {
					return fmt.Errorf("%w: querying %s: %w", ErrDSLUtil, d.Label(), err)
				}
				if len(ids) == 0 {
					continue
				}

				fmt.Fprintln(c.App.Writer, d.Name())
				fmt.Fprintln(c.App.Writer)
				for _, id := range ids {
					e, err := d.Entry(id)
					if err != nil {
						return fmt.Errorf("%w: %w", ErrDSLUtil, err)
					}
					instrs, err := d.Render(id)
					if err != nil {
						return fmt.Errorf("%w: %w", ErrDSLUtil, err)
					}

					heading := strings.Join(e.Headwords, "; ")
					if e.PartOfSpeech != "" {
						heading += " (" + e.PartOfSpeech + ")"
					}
					fmt.Fprintln(c.App.Writer, heading)
					fmt.Fprintln(c.App.Writer, formatInstructions(instrs))
				}
			}

			return nil
		},
	}
}

func search(d *dsl.Dictionary, term string, c *cli.Context) ([]int, error) {
	limit := c.Int("limit")
	switch {
	case c.Bool("prefix"):
		return d.Prefix(term, limit)
	case c.IsSet("fuzzy"):
		return d.Fuzzy(term, c.Int("fuzzy"), limit)
	default:
		return d.Exact(term)
	}
}

// formatInstructions flattens display instructions into indented terminal
// text. Examples go on their own line; resolved links render as the target
// headword.
func formatInstructions(instrs []render.Instruction) string {
	var b strings.Builder
	b.WriteString("  ")
	for _, in := range instrs {
		switch in.Kind {
		case render.Text, render.Styled, render.Link:
			b.WriteString(in.Text)
		case render.Example:
			b.WriteString("\n    > ")
			b.WriteString(in.Source)
			if in.Target != "" {
				b.WriteString(" - ")
				b.WriteString(in.Target)
			}
		}
	}
	return b.String()
}
