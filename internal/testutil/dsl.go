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

// Package testutil provides test fixtures for dictionary source files.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// WriteSource writes DSL source to a file with the given name under dir,
// compressing it according to the name's extension (.dsl, .dsl.gz, or
// .dsl.dz), and returns the full path.
func WriteSource(t *testing.T, dir, name, source string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}()

	switch {
	case strings.HasSuffix(name, ".gz"):
		z := gzip.NewWriter(f)
		if _, err := z.Write([]byte(source)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case strings.HasSuffix(name, ".dz"):
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(source)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.WriteString(source); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

// MakeTempSource writes DSL source to a file in a fresh temporary directory
// and returns the full path. The file is removed when the test completes.
func MakeTempSource(t *testing.T, name, source string) string {
	t.Helper()
	return WriteSource(t, t.TempDir(), name, source)
}
