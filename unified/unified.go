// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package unified renders line diffs as a single column of lines with "+", "-" and " " prefixes.
//
// There are three renderings:
//
//   - [Export] produces the plain text format used to copy a diff, every line of both inputs is
//     included.
//   - [Format] produces hunks with a configurable amount of context, similar to diff -u.
//   - [Inline] produces every line of both inputs, with long runs of unchanged lines optionally
//     collapsed into a marker (see [linediff.Collapse]).
//
// Format and Inline support terminal colors via [TerminalColors]. Replaced lines are highlighted
// word by word.
//
// Important: The output of Format and Inline is not guaranteed to be stable and may change with
// minor version upgrades. DO NOT rely on the output being stable.
package unified

import (
	"fmt"
	"strings"

	"znkr.io/linediff"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/edits"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const reset = "\033[0m"

// Export returns all lines of ops in the plain text format used to copy a diff:
//
//   - unchanged lines are prefixed with two spaces,
//   - deleted lines and the original side of a replaced line are prefixed with "- ",
//   - inserted lines and the modified side of a replaced line are prefixed with "+ ".
//
// Lines are separated by a newline character, there is no newline after the last line.
func Export(ops []linediff.LineOp) string {
	lines := make([]string, 0, len(ops))
	for _, op := range ops {
		switch op.Op {
		case linediff.Equal:
			lines = append(lines, "  "+op.X.Content)
		case linediff.Delete:
			lines = append(lines, "- "+op.X.Content)
		case linediff.Insert:
			lines = append(lines, "+ "+op.Y.Content)
		case linediff.Replace:
			lines = append(lines, "- "+op.X.Content, "+ "+op.Y.Content)
		default:
			panic("never reached")
		}
	}
	return strings.Join(lines, "\n")
}

// Format returns the changes in ops as hunks in unified format. Every hunk starts with a
// "@@ -l,s +l,s @@" header and contains the changed lines and up to [Context] unchanged lines
// before and after them. Identical inputs produce no output.
//
// The following options are supported: [Context], [TerminalColors]
func Format(ops []linediff.LineOp, opts ...linediff.Option) string {
	cfg := config.FromOptions(opts, config.Context|config.Colors)

	// Line positions of every op in x and y.
	xpos, ypos := make([]int, len(ops)+1), make([]int, len(ops)+1)
	for i, op := range ops {
		xpos[i+1], ypos[i+1] = xpos[i], ypos[i]
		if op.Op != linediff.Insert {
			xpos[i+1]++
		}
		if op.Op != linediff.Delete {
			ypos[i+1]++
		}
	}

	p := printer{cc: cfg.Colors}
	changed := func(i int) bool { return ops[i].Op != linediff.Equal }
	for _, h := range edits.Hunks(len(ops), changed, cfg.Context) {
		s0, s1, t0, t1 := xpos[h.Pos], xpos[h.End], ypos[h.Pos], ypos[h.End]
		p.span(p.cc.HunkHeader, fmt.Sprintf("@@ -%d,%d +%d,%d @@", s0+1, s1-s0, t0+1, t1-t0))
		p.b.WriteByte('\n')
		for _, op := range ops[h.Pos:h.End] {
			p.op(op)
		}
	}
	return p.b.String()
}

// Inline returns every item as one or two lines in unified format. Collapsed items are rendered
// as a single marker line.
//
// The following options are supported: [TerminalColors]
func Inline(items []linediff.Item, opts ...linediff.Option) string {
	cfg := config.FromOptions(opts, config.Colors)
	p := printer{cc: cfg.Colors}
	for _, it := range items {
		if it.Collapsed() {
			p.span(p.cc.Collapsed, Marker(it.Hidden))
			p.b.WriteByte('\n')
			continue
		}
		p.op(it.Op)
	}
	return p.b.String()
}

// Marker returns the text that stands in for n hidden unchanged lines.
func Marker(n int) string {
	if n == 1 {
		return "⋯ 1 unchanged line ⋯"
	}
	return fmt.Sprintf("⋯ %d unchanged lines ⋯", n)
}

type printer struct {
	b  strings.Builder
	cc config.ColorConfig
}

func (p *printer) op(op linediff.LineOp) {
	switch op.Op {
	case linediff.Equal:
		p.line(prefixMatch, p.cc.Match, op.X.Content)
	case linediff.Delete:
		p.line(prefixDelete, p.cc.Delete, op.X.Content)
	case linediff.Insert:
		p.line(prefixInsert, p.cc.Insert, op.Y.Content)
	case linediff.Replace:
		x, y := op.Segments()
		p.words(prefixDelete, p.cc.Delete, p.cc.DeleteWord, x)
		p.words(prefixInsert, p.cc.Insert, p.cc.InsertWord, y)
	default:
		panic("never reached")
	}
}

func (p *printer) line(prefix, code, text string) {
	p.span(code, prefix+text)
	p.b.WriteByte('\n')
}

// words writes a line with changed segments in wordCode and everything else in code.
func (p *printer) words(prefix, code, wordCode string, segs []linediff.Segment) {
	p.span(code, prefix)
	for _, seg := range segs {
		if seg.Changed {
			p.span(wordCode, seg.Text)
		} else {
			p.span(code, seg.Text)
		}
	}
	p.b.WriteByte('\n')
}

func (p *printer) span(code, text string) {
	if !p.cc.Enabled || code == "" {
		p.b.WriteString(text)
		return
	}
	p.b.WriteString(code)
	p.b.WriteString(text)
	p.b.WriteString(reset)
}
