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

// Package markup implements a tokenizer for the inline tag markup used in
// DSL dictionary source text.
//
// Tags are written in square brackets with matching open and close names,
// e.g. [b]bold[/b]. An open tag may carry a single argument separated by a
// space, e.g. [c green]. Literal bracket characters are escaped with a
// backslash. Unrecognized tag names are passed through as literal text so
// that unknown markup degrades to plain display instead of failing the
// entry.
package markup

// Kind is the type of a markup token.
type Kind int

const (
	// Text is a literal text run.
	Text Kind = iota

	// TagOpen is an opening tag such as [b] or [c green].
	TagOpen

	// TagClose is a closing tag such as [/b].
	TagClose

	// Escape is an escaped literal character such as \[.
	Escape
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case TagOpen:
		return "open"
	case TagClose:
		return "close"
	case Escape:
		return "escape"
	default:
		return "unknown"
	}
}

// Token is a single markup token.
type Token struct {
	// Kind is the token kind.
	Kind Kind

	// Text is the literal text for Text tokens and the decoded character for
	// Escape tokens.
	Text string

	// Name is the tag name for TagOpen and TagClose tokens.
	Name string

	// Arg is the optional tag argument for TagOpen tokens.
	Arg string
}

// knownTags is the set of recognized tag names. Anything else is passed
// through as literal text.
var knownTags = map[string]bool{
	"b":    true,
	"i":    true,
	"u":    true,
	"c":    true,
	"'":    true,
	"p":    true,
	"com":  true,
	"lang": true,
	"trn":  true,
	"ex":   true,
	"s":    true,
	"ref":  true,
}

// Known reports whether name is a recognized tag name.
func Known(name string) bool {
	return knownTags[name]
}
