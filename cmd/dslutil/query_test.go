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

package main

import (
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"

	"github.com/ickam/EN-PL-lookup/render"
)

func TestFormatInstructions(t *testing.T) {
	t.Parallel()

	instrs := []render.Instruction{
		{Kind: render.Text, Text: "cat, see "},
		{Kind: render.Link, Text: "kot", TargetID: 0},
		{Kind: render.Example, Source: "Mam kota.", Target: "I have a cat."},
	}

	expected := "  cat, see kot\n    > Mam kota. - I have a cat."
	got := formatInstructions(instrs)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("formatInstructions (-want, +got):\n%s", diff)
	}

	// Terminal formatting stays ASCII.
	for _, r := range got {
		if r > unicode.MaxASCII {
			t.Fatalf("non-ASCII formatting character %q in output %q", r, got)
		}
	}
}
