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

import "testing"

func TestParseDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		key   string
		value string
		ok    bool
	}{
		{
			name:  "quoted value",
			line:  `#NAME "English-Polish"`,
			key:   "NAME",
			value: "English-Polish",
			ok:    true,
		},
		{
			name:  "bare value",
			line:  `#INDEX_LANGUAGE Polish`,
			key:   "INDEX_LANGUAGE",
			value: "Polish",
			ok:    true,
		},
		{
			name:  "trailing whitespace",
			line:  "#NAME \"x\" \t",
			key:   "NAME",
			value: "x",
			ok:    true,
		},
		{
			name: "comment line",
			line: "# this is a comment",
			ok:   false,
		},
		{
			name: "directive without value",
			line: "#NAME",
			ok:   false,
		},
		{
			name: "lowercase key is a comment",
			line: "#name x",
			ok:   false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			key, value, ok := parseDirective(test.line)
			if ok != test.ok {
				t.Fatalf("parseDirective(%q): expected ok=%v, got %v", test.line, test.ok, ok)
			}
			if key != test.key || value != test.value {
				t.Errorf("parseDirective(%q) = (%q, %q); expected (%q, %q)",
					test.line, key, value, test.key, test.value)
			}
		})
	}
}
