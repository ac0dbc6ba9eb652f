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

// Package folding implements text folding transformers used to normalize
// headwords and queries before indexing and lookup.
package folding

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Headword returns a transformer that normalizes a headword or query term for
// index comparison. It decomposes the text, strips combining marks (stress
// and diacritic marks), applies Unicode case folding, recomposes, and folds
// whitespace. The same transformer must be applied to both index entries and
// query terms.
func Headword() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(foldStroke),
		cases.Fold(),
		norm.NFC,
		&WhitespaceFolder{},
	)
}

// foldStroke maps letters whose diacritic is a stroke through the base
// letter. NFD does not decompose these because the stroke is not a combining
// mark.
func foldStroke(r rune) rune {
	switch r {
	case 'ł':
		return 'l'
	case 'Ł':
		return 'L'
	case 'đ':
		return 'd'
	case 'Đ':
		return 'D'
	case 'ø':
		return 'o'
	case 'Ø':
		return 'O'
	default:
		return r
	}
}

// Apply runs t over s and returns the folded string. Transformation errors
// are reported to the caller; folding transformers themselves never fail on
// valid UTF-8.
func Apply(t transform.Transformer, s string) (string, error) {
	folded, _, err := transform.String(t, s)
	if err != nil {
		return "", err
	}
	return folded, nil
}
