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

// Package entry implements parsing of DSL headword blocks into structured
// dictionary entries.
package entry

import (
	"fmt"
	"strings"
)

// Severity is the severity of a Diagnostic.
type Severity int

const (
	// Warning indicates a recoverable issue. The affected entry is still
	// compiled.
	Warning Severity = iota

	// Error indicates a block that could not be compiled. The block is
	// skipped; compilation continues with the next block.
	Error
)

// String implements [fmt.Stringer].
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic describes a recoverable issue found while compiling a source
// file. Diagnostics never abort compilation.
type Diagnostic struct {
	// Line is the 1-based first source line of the affected range.
	Line int

	// EndLine is the 1-based last source line of the affected range.
	EndLine int

	// Severity is the diagnostic severity.
	Severity Severity

	// Message is a human-readable description.
	Message string
}

// String implements [fmt.Stringer].
func (d Diagnostic) String() string {
	if d.EndLine > d.Line {
		return fmt.Sprintf("%d-%d: %s: %s", d.Line, d.EndLine, d.Severity, d.Message)
	}
	return fmt.Sprintf("%d: %s: %s", d.Line, d.Severity, d.Message)
}

// Entry is one compiled headword group. Entries are immutable once
// cross-reference resolution completes and are shared read-only by
// concurrent lookups.
type Entry struct {
	// ID is the compiler-assigned identifier, unique within a compiled
	// dictionary and stable for the dictionary's lifetime.
	ID int

	// Line is the 1-based source line of the block's first line.
	Line int

	// Headwords are the display forms of the headword variants in source
	// order. Always non-empty.
	Headwords []string

	// PartOfSpeech is the optional part-of-speech tag.
	PartOfSpeech string

	// Senses are the entry's numbered meanings in order.
	Senses []*Sense
}

// Sense is one numbered meaning within an Entry.
type Sense struct {
	// Number is the 1-based sense number. Numbers are re-derived from block
	// order; source numbering is not trusted.
	Number int

	// Nodes is the sense's translation tree.
	Nodes []*Node
}

// NodeKind is the kind of a translation tree node.
type NodeKind int

const (
	// TextNode is a literal text leaf.
	TextNode NodeKind = iota

	// StyledNode is an emphasis or style node wrapping children.
	StyledNode

	// ExampleNode is a usage example holding a source-language sentence and
	// a target-language sentence.
	ExampleNode

	// RefNode is a cross-reference marker leaf.
	RefNode
)

// Node is a node in a sense's translation tree. The kind determines which
// fields are meaningful; unknown markup never reaches the tree because the
// tokenizer folds it into literal text.
type Node struct {
	Kind NodeKind

	// Text is the literal text for TextNode.
	Text string

	// Style is the tag name for StyledNode. StyleArg is its optional
	// argument (e.g. a color name).
	Style    string
	StyleArg string

	// Children are the wrapped nodes for StyledNode.
	Children []*Node

	// Source and Target are the example sentences for ExampleNode. Target is
	// empty when the source format provides none.
	Source string
	Target string

	// RefTarget is the raw reference target as written in source for
	// RefNode. RefID is the resolved entry id, or -1 while unresolved.
	RefTarget string
	RefID     int
}

// Walk calls fn for every node in the entry's senses in display order,
// including nested children.
func (e *Entry) Walk(fn func(*Node)) {
	for _, s := range e.Senses {
		walkNodes(s.Nodes, fn)
	}
}

func walkNodes(nodes []*Node, fn func(*Node)) {
	for _, n := range nodes {
		fn(n)
		walkNodes(n.Children, fn)
	}
}

// FlattenText returns the concatenated visible text of the given nodes and
// their children. References contribute their raw label and examples their
// sentences so that nested content never vanishes when a tree is flattened.
func FlattenText(nodes []*Node) string {
	var b strings.Builder
	walkNodes(nodes, func(n *Node) {
		switch n.Kind {
		case TextNode:
			b.WriteString(n.Text)
		case RefNode:
			b.WriteString(n.RefTarget)
		case ExampleNode:
			b.WriteString(n.Source)
			if n.Target != "" {
				if n.Source != "" {
					b.WriteString(" ")
				}
				b.WriteString(n.Target)
			}
		}
	})
	return b.String()
}
