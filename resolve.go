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

package dsl

import (
	"fmt"

	"github.com/ickam/EN-PL-lookup/entry"
	"github.com/ickam/EN-PL-lookup/index"
)

// resolveReferences rewrites cross-reference markers into resolved entry ids
// in a single pass after all entries are indexed. Targets that fold to an
// ambiguous headword resolve to the lowest matching id; targets with no
// match stay unresolved. Both produce a Warning diagnostic.
func resolveReferences(entries []*entry.Entry, ix *index.Index) []entry.Diagnostic {
	var diagnostics []entry.Diagnostic
	for _, e := range entries {
		e.Walk(func(n *entry.Node) {
			if n.Kind != entry.RefNode {
				return
			}
			ids, err := ix.Exact(n.RefTarget)
			if err != nil || len(ids) == 0 {
				diagnostics = append(diagnostics, entry.Diagnostic{
					Line:     e.Line,
					Severity: entry.Warning,
					Message: fmt.Sprintf("unresolved reference %q in entry %q",
						n.RefTarget, e.Headwords[0]),
				})
				return
			}
			if len(ids) > 1 {
				diagnostics = append(diagnostics, entry.Diagnostic{
					Line:     e.Line,
					Severity: entry.Warning,
					Message: fmt.Sprintf("ambiguous reference %q in entry %q matches %d entries",
						n.RefTarget, e.Headwords[0], len(ids)),
				})
			}
			// Exact returns ids in ascending order.
			n.RefID = ids[0]
		})
	}
	return diagnostics
}
