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

// Package render converts a compiled entry tree into an ordered sequence of
// display instructions consumable by any presentation layer.
package render

import (
	"strings"

	"github.com/ickam/EN-PL-lookup/entry"
)

// Kind is the kind of a display instruction.
type Kind int

const (
	// Text is a plain text run.
	Text Kind = iota

	// Styled is a styled text run.
	Styled

	// Example is a usage example block.
	Example

	// Link is a resolved cross-reference link.
	Link
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Styled:
		return "styled"
	case Example:
		return "example"
	case Link:
		return "link"
	default:
		return "unknown"
	}
}

// Instruction is a single display instruction.
type Instruction struct {
	// Kind is the instruction kind.
	Kind Kind

	// Text is the run content for Text and Styled, and the display label for
	// Link.
	Text string

	// Style is the style name for Styled. StyleArg is its optional argument.
	Style    string
	StyleArg string

	// Source and Target are the example sentences for Example.
	Source string
	Target string

	// TargetID is the referenced entry id for Link.
	TargetID int
}

// Render converts an entry into display instructions. It is a pure function
// of the immutable entry: deterministic output regardless of call order or
// concurrency.
//
// Unresolved cross-references render as plain text equal to their raw label
// rather than a broken link.
func Render(e *entry.Entry) []Instruction {
	var out []Instruction
	for _, s := range e.Senses {
		out = append(out, renderSense(s)...)
	}
	return out
}

func renderSense(s *entry.Sense) []Instruction {
	var instrs []Instruction
	for _, n := range s.Nodes {
		instrs = append(instrs, renderNode(n)...)
	}
	return trimRuns(instrs)
}

func renderNode(n *entry.Node) []Instruction {
	switch n.Kind {
	case entry.TextNode:
		return []Instruction{{Kind: Text, Text: n.Text}}
	case entry.StyledNode:
		return renderStyled(n)
	case entry.ExampleNode:
		return []Instruction{{Kind: Example, Source: n.Source, Target: n.Target}}
	case entry.RefNode:
		if n.RefID < 0 {
			return []Instruction{{Kind: Text, Text: n.RefTarget}}
		}
		return []Instruction{{Kind: Link, Text: n.RefTarget, TargetID: n.RefID}}
	default:
		return nil
	}
}

// renderStyled emits a styled node as styled text runs. References and
// examples nested inside the style are materialized as their own
// instructions between the runs rather than flattened away.
func renderStyled(n *entry.Node) []Instruction {
	var out []Instruction
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			out = append(out, Instruction{
				Kind:     Styled,
				Text:     text.String(),
				Style:    n.Style,
				StyleArg: n.StyleArg,
			})
			text.Reset()
		}
	}

	for _, c := range n.Children {
		switch c.Kind {
		case entry.TextNode:
			text.WriteString(c.Text)
		default:
			flush()
			out = append(out, renderNode(c)...)
		}
	}
	flush()
	return out
}

// trimRuns strips whitespace from text runs at sense and example block
// boundaries and drops runs left empty. Spacing between inline runs is
// preserved.
func trimRuns(instrs []Instruction) []Instruction {
	var out []Instruction
	for i, instr := range instrs {
		if instr.Kind == Text {
			if i == 0 || instrs[i-1].Kind == Example {
				instr.Text = strings.TrimLeft(instr.Text, " \t")
			}
			if i == len(instrs)-1 || instrs[i+1].Kind == Example {
				instr.Text = strings.TrimRight(instr.Text, " \t")
			}
			if instr.Text == "" {
				continue
			}
		}
		out = append(out, instr)
	}
	return out
}
