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

// Package index implements the in-memory headword lookup index supporting
// exact, prefix and bounded-edit-distance fuzzy search.
package index

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/transform"

	"github.com/ickam/EN-PL-lookup/entry"
	"github.com/ickam/EN-PL-lookup/internal/folding"
	sorted "github.com/ickam/EN-PL-lookup/internal/index"
)

// ErrInvalidArgument indicates an invalid query argument. It never affects
// the index itself.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxEditDistance is the largest accepted fuzzy edit distance. Larger bounds
// degrade to a scan of most of the dictionary and are rejected to bound
// worst-case cost.
const MaxEditDistance = 3

// foldedHeadword is one headword variant keyed by its folded form.
type foldedHeadword struct {
	folded  string
	display string
	id      int
}

func (w *foldedHeadword) String() string {
	return w.folded
}

// Options are options for building an Index.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (case
	// folding, diacritic stripping, whitespace folding) on headwords and
	// query terms.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for an Index.
var DefaultOptions = &Options{
	Folder: folding.Headword,
}

// Index maps folded headword variants to entry ids. It is built once per
// compile and is read-only afterwards; all lookup methods are safe for
// concurrent use without locking.
type Index struct {
	index *sorted.Index[*foldedHeadword]

	folder func() transform.Transformer
}

// New builds an index over the given entries in a single pass. Homonym
// variants append rather than overwrite.
func New(entries []*entry.Entry, options *Options) (*Index, error) {
	folder := DefaultOptions.Folder
	if options != nil && options.Folder != nil {
		folder = options.Folder
	}

	var words []*foldedHeadword
	for _, e := range entries {
		for _, hw := range e.Headwords {
			folded, err := folding.Apply(folder(), hw)
			if err != nil {
				return nil, fmt.Errorf("folding headword %q: %w", hw, err)
			}
			if folded == "" {
				continue
			}
			words = append(words, &foldedHeadword{
				folded:  folded,
				display: hw,
				id:      e.ID,
			})
		}
	}

	return &Index{
		// The stable sort keeps equal folded forms in entry-id order.
		index:  sorted.NewIndex(words, strings.Compare),
		folder: folder,
	}, nil
}

// Exact returns the ids of all entries whose headword set contains the
// folded term, in entry-id order. A term with zero matches yields an empty
// result, not an error.
func (ix *Index) Exact(term string) ([]int, error) {
	folded, err := folding.Apply(ix.folder(), term)
	if err != nil {
		return nil, fmt.Errorf("folding term %q: %w", term, err)
	}
	if folded == "" {
		return nil, nil
	}

	var ids []int
	for _, w := range ix.index.Search(folded) {
		ids = append(ids, w.id)
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// Prefix returns up to limit entry ids whose folded headword starts with the
// folded term, ordered lexicographically by headword then by entry id. An
// empty term or non-positive limit is an invalid argument.
func (ix *Index) Prefix(term string, limit int) ([]int, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive: %d", ErrInvalidArgument, limit)
	}

	folded, err := folding.Apply(ix.folder(), term)
	if err != nil {
		return nil, fmt.Errorf("folding term %q: %w", term, err)
	}
	if folded == "" {
		return nil, fmt.Errorf("%w: empty term", ErrInvalidArgument)
	}

	var ids []int
	seen := map[int]bool{}
	for _, w := range ix.index.SearchPrefix(folded) {
		if seen[w.id] {
			continue
		}
		seen[w.id] = true
		ids = append(ids, w.id)
		if len(ids) == limit {
			break
		}
	}
	return ids, nil
}

// Fuzzy returns up to limit entry ids whose folded headword is within
// maxDist character edits (insertion, deletion, substitution) of the folded
// term, ordered by increasing distance, then headword, then entry id.
// Candidates whose length differs from the term by more than maxDist are
// excluded without computing the full distance.
func (ix *Index) Fuzzy(term string, maxDist, limit int) ([]int, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive: %d", ErrInvalidArgument, limit)
	}
	if maxDist < 0 || maxDist > MaxEditDistance {
		return nil, fmt.Errorf("%w: edit distance out of range [0, %d]: %d", ErrInvalidArgument, MaxEditDistance, maxDist)
	}

	folded, err := folding.Apply(ix.folder(), term)
	if err != nil {
		return nil, fmt.Errorf("folding term %q: %w", term, err)
	}
	if folded == "" {
		return nil, nil
	}

	termLen := utf8.RuneCountInString(folded)

	type candidate struct {
		dist int
		word *foldedHeadword
	}
	var candidates []candidate
	for _, w := range ix.index.All() {
		if d := utf8.RuneCountInString(w.folded) - termLen; d > maxDist || d < -maxDist {
			continue
		}
		d := levenshtein.ComputeDistance(folded, w.folded)
		if d <= maxDist {
			candidates = append(candidates, candidate{dist: d, word: w})
		}
	}

	// The index is already sorted by folded headword; the stable sort leaves
	// equal distances in headword order.
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.dist - b.dist
	})

	var ids []int
	seen := map[int]bool{}
	for _, c := range candidates {
		if seen[c.word.id] {
			continue
		}
		seen[c.word.id] = true
		ids = append(ids, c.word.id)
		if len(ids) == limit {
			break
		}
	}
	return ids, nil
}

// Len returns the number of indexed headword variants.
func (ix *Index) Len() int {
	return len(ix.index.All())
}
