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

package markup

import (
	"sort"
	"strings"
)

// Scanner scans a raw text span from start to end producing markup tokens.
// The zero value is not usable; use NewScanner.
type Scanner struct {
	src string
	pos int
	tok Token

	// depth tracks nesting per tag name so that mismatched closes can be
	// detected by the caller rather than silently ignored.
	depth map[string]int
}

// NewScanner returns a new Scanner over the given text span.
func NewScanner(src string) *Scanner {
	return &Scanner{
		src:   src,
		depth: map[string]int{},
	}
}

// Scan advances the scanner to the next token. It returns false when the end
// of the span is reached.
func (s *Scanner) Scan() bool {
	if s.pos >= len(s.src) {
		return false
	}

	switch s.src[s.pos] {
	case '\\':
		if s.pos+1 < len(s.src) {
			c := s.src[s.pos+1]
			if c == '[' || c == ']' || c == '\\' {
				s.tok = Token{Kind: Escape, Text: string(c)}
				s.pos += 2
				return true
			}
		}
		// A backslash not followed by an escapable character is literal.
		s.scanText()
		return true
	case '[':
		if tok, size, ok := s.scanTag(); ok {
			s.tok = tok
			s.pos += size
			return true
		}
		// Not a recognized tag; fall through to a literal run.
		s.scanText()
		return true
	default:
		s.scanText()
		return true
	}
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Depth returns the current nesting depth for the given tag name.
func (s *Scanner) Depth(name string) int {
	return s.depth[name]
}

// Unclosed returns the names of tags that were opened but never closed, in
// sorted order. It is meaningful once Scan has returned false.
func (s *Scanner) Unclosed() []string {
	var names []string
	for name, d := range s.depth {
		if d > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// scanTag attempts to parse a tag at the current position. It returns the
// token, the number of bytes consumed, and whether a known tag was found.
func (s *Scanner) scanTag() (Token, int, bool) {
	rest := s.src[s.pos+1:]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return Token{}, 0, false
	}

	body := rest[:end]
	size := end + 2 // brackets included

	if strings.HasPrefix(body, "/") {
		name := body[1:]
		if !Known(name) {
			return Token{}, 0, false
		}
		if s.depth[name] > 0 {
			s.depth[name]--
		}
		return Token{Kind: TagClose, Name: name}, size, true
	}

	name, arg := body, ""
	if i := strings.IndexByte(body, ' '); i >= 0 {
		name, arg = body[:i], strings.TrimSpace(body[i+1:])
	}
	if !Known(name) {
		return Token{}, 0, false
	}
	s.depth[name]++
	return Token{Kind: TagOpen, Name: name, Arg: arg}, size, true
}

// scanText scans a literal text run up to the next potential escape or tag
// start. The leading character is always consumed so that stray brackets and
// backslashes degrade to literal text.
func (s *Scanner) scanText() {
	start := s.pos
	s.pos++
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' || c == '[' {
			break
		}
		s.pos++
	}
	s.tok = Token{Kind: Text, Text: s.src[start:s.pos]}
}
