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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func listCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List dictionaries",
		Description: "List all dictionaries found in the data directories " +
			"along with their size and compile diagnostics count.",
		Action: func(c *cli.Context) error {
			dicts := openDictionaries(dataDirs(c, cfg))

			tbl := table.New("LABEL", "NAME", "LANGUAGES", "ENTRIES", "DIAGNOSTICS")
			tbl.WithWriter(c.App.Writer)
			for _, d := range dicts {
				h := d.Header()
				languages := ""
				if h.IndexLanguage() != "" || h.ContentsLanguage() != "" {
					languages = h.IndexLanguage() + "-" + h.ContentsLanguage()
				}
				tbl.AddRow(d.Label(), d.Name(), languages, d.Len(), len(d.Diagnostics()))
			}
			tbl.Print()

			return nil
		},
	}
}
