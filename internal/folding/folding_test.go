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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeadword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase unchanged",
			input:    "kot",
			expected: "kot",
		},
		{
			name:     "case folded",
			input:    "Warszawa",
			expected: "warszawa",
		},
		{
			name:     "polish diacritics stripped",
			input:    "żółw",
			expected: "zolw",
		},
		{
			name:     "german sharp s folds",
			input:    "grüßen",
			expected: "grussen",
		},
		{
			name:     "combining acute stress mark stripped",
			input:    "kót",
			expected: "kot",
		},
		{
			name:     "internal whitespace folded",
			input:    "  guinea \t pig  ",
			expected: "guinea pig",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply(Headword(), test.input)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Apply (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWhitespaceFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "leading and trailing removed",
			input:    "  foo  ",
			expected: "foo",
		},
		{
			name:     "internal span folded",
			input:    "foo \t\n bar",
			expected: "foo bar",
		},
		{
			name:     "only whitespace",
			input:    " \t ",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply(&WhitespaceFolder{}, test.input)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Apply (-want, +got):\n%s", diff)
			}
		})
	}
}
