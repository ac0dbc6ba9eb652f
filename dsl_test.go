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

package dsl_test

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	dsl "github.com/ickam/EN-PL-lookup"
	"github.com/ickam/EN-PL-lookup/internal/testutil"
)

const testSource = `#NAME "Test Dictionary"

kot
	1. cat

pies
	1. dog
`

func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
	}{
		{
			name: "plain",
			file: "EN-PL.dsl",
		},
		{
			name: "gzip",
			file: "EN-PL.dsl.gz",
		},
		{
			name: "dictzip",
			file: "EN-PL.dsl.dz",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.MakeTempSource(t, test.file, testSource)
			d, err := dsl.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}

			if got, want := d.Label(), "EN-PL"; got != want {
				t.Errorf("Label: expected %q, got %q", want, got)
			}
			if got, want := d.Name(), "Test Dictionary"; got != want {
				t.Errorf("Name: expected %q, got %q", want, got)
			}
			if got, want := d.Len(), 2; got != want {
				t.Errorf("Len: expected %d, got %d", want, got)
			}

			ids, err := d.Exact("pies")
			if err != nil {
				t.Fatalf("Exact: %v", err)
			}
			if diff := cmp.Diff([]int{1}, ids); diff != "" {
				t.Errorf("Exact (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestOpen_badExtension(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempSource(t, "EN-PL.txt", testSource)
	if _, err := dsl.Open(path); err == nil {
		t.Fatal("Open: expected error, got nil")
	}
}

func TestOpen_compileError(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempSource(t, "EN-PL.dsl", "")
	if _, err := dsl.Open(path); !errors.Is(err, dsl.ErrCompile) {
		t.Fatalf("Open: expected %v, got %v", dsl.ErrCompile, err)
	}
}

func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteSource(t, dir, "EN-PL.dsl", testSource)
	testutil.WriteSource(t, dir, "PL-EN.dsl.gz", "dom\n\thouse\n")
	testutil.WriteSource(t, dir, "notes.txt", "not a dictionary")
	testutil.WriteSource(t, dir, "broken.dsl", "")

	dicts, errs := dsl.OpenAll(dir)
	if len(errs) != 1 {
		t.Fatalf("OpenAll: expected 1 error, got %v", errs)
	}
	if !errors.Is(errs[0], dsl.ErrCompile) {
		t.Errorf("OpenAll: expected %v, got %v", dsl.ErrCompile, errs[0])
	}

	var labels []string
	for _, d := range dicts {
		labels = append(labels, d.Label())
	}
	if diff := cmp.Diff([]string{"EN-PL", "PL-EN"}, labels); diff != "" {
		t.Errorf("labels (-want, +got):\n%s", diff)
	}
}

func TestDictionary_Reload(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempSource(t, "EN-PL.dsl", testSource)
	d, err := dsl.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	before := d.Snapshot()

	if err := os.WriteFile(path, []byte("kos\n\tblackbird\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := d.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	// The new snapshot serves new content.
	if got, want := d.Len(), 1; got != want {
		t.Errorf("Len: expected %d, got %d", want, got)
	}
	ids, err := d.Exact("kos")
	if err != nil {
		t.Fatalf("Exact: %v", err)
	}
	if diff := cmp.Diff([]int{0}, ids); diff != "" {
		t.Errorf("Exact (-want, +got):\n%s", diff)
	}

	// A snapshot taken before the reload still serves the old content.
	ids, err = before.Exact("kot")
	if err != nil {
		t.Fatalf("Exact: %v", err)
	}
	if diff := cmp.Diff([]int{0}, ids); diff != "" {
		t.Errorf("old snapshot Exact (-want, +got):\n%s", diff)
	}
	if got, want := before.Len(), 2; got != want {
		t.Errorf("old snapshot Len: expected %d, got %d", want, got)
	}
}

func TestDictionary_Reload_failureKeepsSnapshot(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempSource(t, "EN-PL.dsl", testSource)
	d, err := dsl.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := d.Reload(); !errors.Is(err, dsl.ErrCompile) {
		t.Fatalf("Reload: expected %v, got %v", dsl.ErrCompile, err)
	}

	// The previous snapshot stays current.
	if got, want := d.Len(), 2; got != want {
		t.Errorf("Len: expected %d, got %d", want, got)
	}
	ids, err := d.Exact("kot")
	if err != nil {
		t.Fatalf("Exact: %v", err)
	}
	if diff := cmp.Diff([]int{0}, ids); diff != "" {
		t.Errorf("Exact (-want, +got):\n%s", diff)
	}
}
