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

package markup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ickam/EN-PL-lookup/markup"
)

func scanAll(src string) ([]markup.Token, []string) {
	s := markup.NewScanner(src)
	var tokens []markup.Token
	for s.Scan() {
		tokens = append(tokens, s.Token())
	}
	return tokens, s.Unclosed()
}

func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected []markup.Token
		unclosed []string
	}{
		{
			name: "plain text",
			src:  "cat",
			expected: []markup.Token{
				{Kind: markup.Text, Text: "cat"},
			},
		},
		{
			name: "styled run",
			src:  "[b]kot[/b]",
			expected: []markup.Token{
				{Kind: markup.TagOpen, Name: "b"},
				{Kind: markup.Text, Text: "kot"},
				{Kind: markup.TagClose, Name: "b"},
			},
		},
		{
			name: "tag with argument",
			src:  "[c green]kot[/c]",
			expected: []markup.Token{
				{Kind: markup.TagOpen, Name: "c", Arg: "green"},
				{Kind: markup.Text, Text: "kot"},
				{Kind: markup.TagClose, Name: "c"},
			},
		},
		{
			name: "nested tags",
			src:  "[trn][b]cat[/b][/trn]",
			expected: []markup.Token{
				{Kind: markup.TagOpen, Name: "trn"},
				{Kind: markup.TagOpen, Name: "b"},
				{Kind: markup.Text, Text: "cat"},
				{Kind: markup.TagClose, Name: "b"},
				{Kind: markup.TagClose, Name: "trn"},
			},
		},
		{
			name: "escaped brackets",
			src:  `\[not a tag\]`,
			expected: []markup.Token{
				{Kind: markup.Escape, Text: "["},
				{Kind: markup.Text, Text: "not a tag"},
				{Kind: markup.Escape, Text: "]"},
			},
		},
		{
			name: "escaped backslash",
			src:  `a\\b`,
			expected: []markup.Token{
				{Kind: markup.Text, Text: "a"},
				{Kind: markup.Escape, Text: `\`},
				{Kind: markup.Text, Text: "b"},
			},
		},
		{
			name: "unknown tag passes through verbatim",
			src:  "[video]clip[/video]",
			expected: []markup.Token{
				{Kind: markup.Text, Text: "[video]clip[/video]"},
			},
		},
		{
			name: "unknown tag before known tag",
			src:  "[foo][b]x[/b]",
			expected: []markup.Token{
				{Kind: markup.Text, Text: "[foo]"},
				{Kind: markup.TagOpen, Name: "b"},
				{Kind: markup.Text, Text: "x"},
				{Kind: markup.TagClose, Name: "b"},
			},
		},
		{
			name: "unterminated bracket is literal",
			src:  "a [b c",
			expected: []markup.Token{
				{Kind: markup.Text, Text: "a "},
				{Kind: markup.Text, Text: "[b c"},
			},
		},
		{
			name: "unclosed tag reported",
			src:  "[b]kot",
			expected: []markup.Token{
				{Kind: markup.TagOpen, Name: "b"},
				{Kind: markup.Text, Text: "kot"},
			},
			unclosed: []string{"b"},
		},
		{
			name: "stress tag",
			src:  "k[']o[/']t",
			expected: []markup.Token{
				{Kind: markup.Text, Text: "k"},
				{Kind: markup.TagOpen, Name: "'"},
				{Kind: markup.Text, Text: "o"},
				{Kind: markup.TagClose, Name: "'"},
				{Kind: markup.Text, Text: "t"},
			},
		},
		{
			name: "mismatched close still emitted",
			src:  "kot[/b]",
			expected: []markup.Token{
				{Kind: markup.Text, Text: "kot"},
				{Kind: markup.TagClose, Name: "b"},
			},
		},
		{
			name:     "empty input",
			src:      "",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tokens, unclosed := scanAll(test.src)
			if diff := cmp.Diff(test.expected, tokens); diff != "" {
				t.Fatalf("Scan (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.unclosed, unclosed); diff != "" {
				t.Fatalf("Unclosed (-want, +got):\n%s", diff)
			}
		})
	}
}
