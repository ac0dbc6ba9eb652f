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

// Package dsl compiles DSL dictionary source files into immutable in-memory
// snapshots and serves headword lookups against them.
//
// A DSL source file starts with an optional header of #DIRECTIVE lines
// followed by headword blocks separated by blank lines. Each block has one or
// more unindented headword lines and indented body lines holding numbered
// senses written in bracket markup:
//
//	#NAME "English-Polish"
//	#INDEX_LANGUAGE "Polish"
//	#CONTENTS_LANGUAGE "English"
//
//	kot [p]rz.m.[/p]
//		1. [trn]cat[/trn] [ex][s]Mam kota.[/s][/ex]
//
// [Compile] turns a source stream into a [Snapshot]: parsed entries, a
// folded-headword lookup index, resolved cross-references and the
// diagnostics produced along the way. A Snapshot is immutable; all of its
// query methods are safe for concurrent use.
//
// [Dictionary] wraps a snapshot for a source file on disk (plain,
// gzip-compressed, or dictzip-compressed) and supports atomic [Dictionary.Reload]:
// readers always observe either the complete old snapshot or the complete new
// one, never a mix.
package dsl
