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

package entry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ickam/EN-PL-lookup/markup"
)

// ErrMalformedBlock indicates a block that could not be parsed into an
// entry. The block is skipped; compilation continues with the next block.
var ErrMalformedBlock = errors.New("malformed block")

// senseNumberRe matches the leading sense marker of a body line. The number
// itself is not trusted; sense numbers are re-derived from block order.
var senseNumberRe = regexp.MustCompile(`^\d+[.)][ \t]*`)

// headwordSeparator splits a headword line into variants.
const headwordSeparator = ";"

// Parse parses one headword block into an Entry. startLine is the 1-based
// source line number of the block's first line and is used for diagnostics.
//
// Returned diagnostics are warnings attached to the entry being built. A
// non-nil error means the whole block is malformed and must be skipped.
func Parse(lines []string, startLine int) (*Entry, []Diagnostic, error) {
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%w: empty block", ErrMalformedBlock)
	}
	if isIndented(lines[0]) {
		return nil, nil, fmt.Errorf("%w: body line before headword line", ErrMalformedBlock)
	}

	e := &Entry{}
	var diags []Diagnostic

	// Leading unindented lines are headword lines. A block may carry several;
	// each line may declare multiple variants. A line opening with a sense
	// marker is body even when unindented.
	i := 0
	for ; i < len(lines) && !isIndented(lines[i]) && !senseNumberRe.MatchString(lines[i]); i++ {
		nodes, pos, d := parseSpan(lines[i], startLine+i)
		diags = append(diags, d...)
		if pos != "" && e.PartOfSpeech == "" {
			e.PartOfSpeech = pos
		}
		for _, variant := range strings.Split(FlattenText(nodes), headwordSeparator) {
			if v := strings.TrimSpace(variant); v != "" {
				e.Headwords = append(e.Headwords, v)
			}
		}
	}
	if len(e.Headwords) == 0 {
		return nil, nil, fmt.Errorf("%w: no headword", ErrMalformedBlock)
	}

	var cur *Sense
	for ; i < len(lines); i++ {
		stripped := strings.TrimSpace(lines[i])
		if stripped == "" {
			continue
		}
		lineNo := startLine + i

		if m := senseNumberRe.FindString(stripped); m != "" {
			// A numbered line always opens a new sense.
			cur = &Sense{Number: len(e.Senses) + 1}
			e.Senses = append(e.Senses, cur)
			nodes, pos, d := parseSpan(stripped[len(m):], lineNo)
			diags = append(diags, d...)
			if pos != "" && e.PartOfSpeech == "" {
				e.PartOfSpeech = pos
			}
			cur.Nodes = append(cur.Nodes, nodes...)
			continue
		}

		nodes, pos, d := parseSpan(stripped, lineNo)
		diags = append(diags, d...)
		if pos != "" && e.PartOfSpeech == "" {
			e.PartOfSpeech = pos
		}
		if isBlank(nodes) {
			// A pure part-of-speech declaration line.
			continue
		}
		if cur == nil {
			// An unnumbered line before any sense is the main translation.
			cur = &Sense{Number: 1}
			e.Senses = append(e.Senses, cur)
		}
		cur.Nodes = append(cur.Nodes, nodes...)
	}

	return e, diags, nil
}

func isIndented(line string) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}

// isBlank reports whether nodes carry no visible content.
func isBlank(nodes []*Node) bool {
	for _, n := range nodes {
		if n.Kind != TextNode {
			return false
		}
		if strings.TrimSpace(n.Text) != "" {
			return false
		}
	}
	return true
}

// spanParser builds a translation tree from a tokenized text span. Frames
// mirror currently open tags; the bottom frame is the root.
type spanParser struct {
	line  int
	stack []*spanFrame
	pos   []string
	diags []Diagnostic
}

type spanFrame struct {
	name  string
	arg   string
	nodes []*Node
}

// parseSpan parses one text span into tree nodes. Part-of-speech tag content
// is diverted out of the tree and returned separately.
func parseSpan(src string, line int) ([]*Node, string, []Diagnostic) {
	p := &spanParser{
		line:  line,
		stack: []*spanFrame{{}},
	}

	s := markup.NewScanner(src)
	for s.Scan() {
		tok := s.Token()
		switch tok.Kind {
		case markup.Text, markup.Escape:
			p.text(tok.Text)
		case markup.TagOpen:
			p.stack = append(p.stack, &spanFrame{name: tok.Name, arg: tok.Arg})
		case markup.TagClose:
			p.close(tok.Name)
		}
	}

	// A tag opened but never closed is closed implicitly at the span
	// boundary and flagged as a recoverable warning.
	for len(p.stack) > 1 {
		p.warnf("unclosed tag [%s] closed at block boundary", p.top().name)
		p.pop()
	}

	root := p.stack[0]
	return root.nodes, strings.Join(p.pos, " "), p.diags
}

func (p *spanParser) top() *spanFrame {
	return p.stack[len(p.stack)-1]
}

func (p *spanParser) text(s string) {
	f := p.top()
	if n := len(f.nodes); n > 0 && f.nodes[n-1].Kind == TextNode {
		f.nodes[n-1].Text += s
		return
	}
	f.nodes = append(f.nodes, &Node{Kind: TextNode, Text: s})
}

func (p *spanParser) close(name string) {
	found := -1
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].name == name {
			found = i
			break
		}
	}
	if found < 0 {
		p.warnf("close tag [/%s] without matching open tag", name)
		return
	}
	for len(p.stack)-1 > found {
		p.warnf("unclosed tag [%s] closed by [/%s]", p.top().name, name)
		p.pop()
	}
	p.pop()
}

// pop materializes the top frame into its parent.
func (p *spanParser) pop() {
	f := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	parent := p.top()

	switch f.name {
	case "p":
		if t := strings.TrimSpace(FlattenText(f.nodes)); t != "" {
			p.pos = append(p.pos, t)
		}
	case "trn":
		// Translation markers are transparent containers.
		parent.nodes = append(parent.nodes, f.nodes...)
	case "ex":
		ex := &Node{Kind: ExampleNode}
		var target []string
		for _, n := range f.nodes {
			if n.Kind == StyledNode && n.Style == "s" {
				ex.Source += FlattenText(n.Children)
				continue
			}
			target = append(target, FlattenText([]*Node{n}))
		}
		ex.Source = strings.TrimSpace(ex.Source)
		ex.Target = strings.TrimSpace(strings.Join(target, ""))
		parent.nodes = append(parent.nodes, ex)
	case "ref":
		parent.nodes = append(parent.nodes, &Node{
			Kind:      RefNode,
			RefTarget: strings.TrimSpace(FlattenText(f.nodes)),
			RefID:     -1,
		})
	default:
		parent.nodes = append(parent.nodes, &Node{
			Kind:     StyledNode,
			Style:    f.name,
			StyleArg: f.arg,
			Children: f.nodes,
		})
	}
}

func (p *spanParser) warnf(format string, args ...any) {
	p.diags = append(p.diags, Diagnostic{
		Line:     p.line,
		EndLine:  p.line,
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
	})
}
