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
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ianlewis/go-dictzip"

	"github.com/ickam/EN-PL-lookup/entry"
	"github.com/ickam/EN-PL-lookup/render"
)

// Dictionary is a compiled dictionary backed by a source file on disk. It
// holds the current [Snapshot] behind an atomic pointer: queries read
// whichever snapshot is current when they start, and [Dictionary.Reload]
// swaps in a new snapshot without blocking readers.
type Dictionary struct {
	path  string
	label string

	snapshot atomic.Pointer[Snapshot]

	// reloadMu serializes reloads. Readers never take it.
	reloadMu sync.Mutex
}

// OpenAll opens all dictionaries under a directory. This function will
// return all successfully opened dictionaries along with any errors that
// occurred.
func OpenAll(path string) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && isDictPath(info.Name()) {
			dict, err := Open(path)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, dict)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open opens and compiles the dictionary source at the given path. The path
// must end in .dsl, .dsl.gz, or .dsl.dz.
func Open(path string) (*Dictionary, error) {
	if !isDictPath(path) {
		return nil, fmt.Errorf("bad extension: %v", filepath.Base(path))
	}

	d := &Dictionary{
		path:  path,
		label: labelFromPath(path),
	}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload recompiles the source file and atomically swaps in the new
// snapshot. On failure the previous snapshot, if any, stays current and
// queries continue to be served from it.
func (d *Dictionary) Reload() error {
	d.reloadMu.Lock()
	defer d.reloadMu.Unlock()

	f, err := os.Open(d.path)
	if err != nil {
		return fmt.Errorf("error opening %q: %w", d.path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(d.path, ".gz"):
		z, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("error reading %q: %w", d.path, err)
		}
		defer z.Close()
		r = z
	case strings.HasSuffix(d.path, ".dz"):
		z, err := dictzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("error reading %q: %w", d.path, err)
		}
		defer z.Close()
		r = z
	}

	snapshot, err := Compile(r, d.label)
	if err != nil {
		return err
	}
	d.snapshot.Store(snapshot)
	return nil
}

// Snapshot returns the current snapshot. The snapshot remains fully usable
// after later reloads; callers holding it observe a consistent view.
func (d *Dictionary) Snapshot() *Snapshot {
	return d.snapshot.Load()
}

// Path returns the source file path.
func (d *Dictionary) Path() string {
	return d.path
}

// Label returns the dictionary's label derived from the file name, e.g.
// "EN-PL" for EN-PL.dsl.
func (d *Dictionary) Label() string {
	return d.label
}

// Name returns the current snapshot's display name.
func (d *Dictionary) Name() string {
	return d.Snapshot().Name()
}

// Header returns the current snapshot's directive header.
func (d *Dictionary) Header() *Header {
	return d.Snapshot().Header()
}

// Len returns the number of entries in the current snapshot.
func (d *Dictionary) Len() int {
	return d.Snapshot().Len()
}

// Entries returns all entries of the current snapshot in id order.
func (d *Dictionary) Entries() []*entry.Entry {
	return d.Snapshot().Entries()
}

// Entry returns the entry with the given id from the current snapshot.
func (d *Dictionary) Entry(id int) (*entry.Entry, error) {
	return d.Snapshot().Entry(id)
}

// Diagnostics returns the current snapshot's compile diagnostics.
func (d *Dictionary) Diagnostics() []entry.Diagnostic {
	return d.Snapshot().Diagnostics()
}

// Exact searches the current snapshot for an exact headword match.
func (d *Dictionary) Exact(term string) ([]int, error) {
	return d.Snapshot().Exact(term)
}

// Prefix searches the current snapshot for headwords with the given prefix.
func (d *Dictionary) Prefix(term string, limit int) ([]int, error) {
	return d.Snapshot().Prefix(term, limit)
}

// Fuzzy searches the current snapshot for headwords within maxDist edits of
// the term.
func (d *Dictionary) Fuzzy(term string, maxDist, limit int) ([]int, error) {
	return d.Snapshot().Fuzzy(term, maxDist, limit)
}

// Render returns display instructions for an entry in the current snapshot.
func (d *Dictionary) Render(id int) ([]render.Instruction, error) {
	return d.Snapshot().Render(id)
}

// isDictPath reports whether the file name has a recognized dictionary
// extension.
func isDictPath(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".dsl") ||
		strings.HasSuffix(lower, ".dsl.gz") ||
		strings.HasSuffix(lower, ".dsl.dz")
}

// labelFromPath derives the dictionary label from the file name by stripping
// the recognized extensions.
func labelFromPath(path string) string {
	name := filepath.Base(path)
	lower := strings.ToLower(name)
	for _, ext := range []string{".dsl.gz", ".dsl.dz", ".dsl"} {
		if strings.HasSuffix(lower, ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}
