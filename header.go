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
	"regexp"
	"strings"
)

// directiveRegex matches a header directive line, e.g.
//
//	#NAME "English-Polish"
//
// The value may be quoted or bare.
var directiveRegex = regexp.MustCompile(`^#([A-Z][A-Z0-9_]*)[ \t]+(.*)$`)

// Header holds the #DIRECTIVE metadata from the top of a source file.
// Unrecognized directives are kept and retrievable by key.
type Header struct {
	metadata map[string]string
}

// Value returns the value for the given directive key, or the empty string if
// the header does not contain it.
func (h *Header) Value(key string) string {
	if h == nil {
		return ""
	}
	return h.metadata[key]
}

// Name returns the dictionary's display name.
func (h *Header) Name() string {
	return h.Value("NAME")
}

// IndexLanguage returns the headword language.
func (h *Header) IndexLanguage() string {
	return h.Value("INDEX_LANGUAGE")
}

// ContentsLanguage returns the translation language.
func (h *Header) ContentsLanguage() string {
	return h.Value("CONTENTS_LANGUAGE")
}

// parseDirective parses a single header line. ok is false for # lines that
// are plain comments rather than directives.
func parseDirective(line string) (key, value string, ok bool) {
	m := directiveRegex.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	value = strings.TrimSpace(m[2])
	value = strings.Trim(value, `"`)
	return m[1], value, true
}
