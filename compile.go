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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ickam/EN-PL-lookup/entry"
	"github.com/ickam/EN-PL-lookup/index"
	"github.com/ickam/EN-PL-lookup/render"
)

// ErrCompile indicates that a source file could not be compiled into a
// usable snapshot.
var ErrCompile = errors.New("compile failed")

// ErrNotFound indicates an entry id that does not exist in the snapshot.
var ErrNotFound = errors.New("entry not found")

// maxLineSize is the per-line buffer limit when scanning source files.
const maxLineSize = 1024 * 1024

// Snapshot is one compiled dictionary: entries, lookup index, and the
// diagnostics produced while compiling. Snapshots are immutable; all methods
// are safe for concurrent use.
type Snapshot struct {
	label       string
	header      *Header
	entries     []*entry.Entry
	index       *index.Index
	diagnostics []entry.Diagnostic
}

// Compile compiles DSL source into a Snapshot. The label identifies the
// source in errors and in [Snapshot.Label], typically a language pair like
// "EN-PL".
//
// Malformed blocks are skipped with an Error diagnostic; compilation
// continues with the following block. Compile fails only when reading the
// source fails or when no block compiles at all.
func Compile(r io.Reader, label string) (*Snapshot, error) {
	header := &Header{metadata: map[string]string{}}

	var entries []*entry.Entry
	var diagnostics []entry.Diagnostic

	var block []string
	blockStart := 0

	flush := func(endLine int) {
		if len(block) == 0 {
			return
		}
		lines := block
		start := blockStart
		block = nil

		e, diags, err := entry.Parse(lines, start)
		diagnostics = append(diagnostics, diags...)
		if err != nil {
			diagnostics = append(diagnostics, entry.Diagnostic{
				Line:     start,
				EndLine:  endLine,
				Severity: entry.Error,
				Message:  fmt.Sprintf("skipping block: %v", err),
			})
			return
		}
		e.ID = len(entries)
		e.Line = start
		entries = append(entries, e)
	}

	inHeader := true
	lineNo := 0
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for s.Scan() {
		lineNo++
		line := s.Text()

		// Lines starting with # are directives in the header and comments
		// everywhere. Neither belongs to a block.
		if strings.HasPrefix(line, "#") {
			if inHeader {
				if key, value, ok := parseDirective(line); ok {
					header.metadata[key] = value
				}
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush(lineNo - 1)
			continue
		}
		inHeader = false
		if len(block) == 0 {
			blockStart = lineNo
		}
		block = append(block, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrCompile, label, err)
	}
	flush(lineNo)

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no valid entries in %s", ErrCompile, label)
	}

	ix, err := index.New(entries, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: indexing %s: %w", ErrCompile, label, err)
	}

	diagnostics = append(diagnostics, resolveReferences(entries, ix)...)

	return &Snapshot{
		label:       label,
		header:      header,
		entries:     entries,
		index:       ix,
		diagnostics: diagnostics,
	}, nil
}

// Label returns the snapshot's source label.
func (s *Snapshot) Label() string {
	return s.label
}

// Header returns the source file's directive header.
func (s *Snapshot) Header() *Header {
	return s.header
}

// Name returns the dictionary's display name from the header, falling back
// to the label when the header has none.
func (s *Snapshot) Name() string {
	if name := s.header.Name(); name != "" {
		return name
	}
	return s.label
}

// Len returns the number of compiled entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns all compiled entries in id order. The returned slice and
// the entries it holds must not be modified.
func (s *Snapshot) Entries() []*entry.Entry {
	return s.entries
}

// Entry returns the entry with the given id.
func (s *Snapshot) Entry(id int) (*entry.Entry, error) {
	if id < 0 || id >= len(s.entries) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.entries[id], nil
}

// Diagnostics returns the diagnostics produced while compiling, in source
// order with cross-reference diagnostics last.
func (s *Snapshot) Diagnostics() []entry.Diagnostic {
	return s.diagnostics
}

// Exact returns the ids of entries whose headword set contains the term
// after folding.
func (s *Snapshot) Exact(term string) ([]int, error) {
	return s.index.Exact(term)
}

// Prefix returns up to limit ids of entries with a headword starting with
// the folded term.
func (s *Snapshot) Prefix(term string, limit int) ([]int, error) {
	return s.index.Prefix(term, limit)
}

// Fuzzy returns up to limit ids of entries with a headword within maxDist
// edits of the folded term.
func (s *Snapshot) Fuzzy(term string, maxDist, limit int) ([]int, error) {
	return s.index.Fuzzy(term, maxDist, limit)
}

// Render returns display instructions for the entry with the given id.
func (s *Snapshot) Render(id int) ([]render.Instruction, error) {
	e, err := s.Entry(id)
	if err != nil {
		return nil, err
	}
	return render.Render(e), nil
}
