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

// Package sidebyside lays out line diffs in two columns, the original text on the left and the
// modified text on the right.
package sidebyside

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/unified"
)

// Side is one half of a row.
type Side struct {
	Line     linediff.Line      // Index is -1 if the side is a placeholder.
	Segments []linediff.Segment // Empty for placeholders and empty lines.
}

// Placeholder reports whether the side has no line.
func (s Side) Placeholder() bool { return s.Line.Index < 0 }

// Row is a single row of a side-by-side view.
type Row struct {
	Op          linediff.Op
	Hidden      int // Number of hidden unchanged lines if the row is a collapsed marker.
	Left, Right Side
}

// Rows returns one row for every item. Inserted lines have a placeholder on the left, deleted
// lines on the right, and collapsed markers on both sides.
func Rows(items []linediff.Item) []Row {
	placeholder := Side{Line: linediff.Line{Index: -1}}
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		if it.Collapsed() {
			rows = append(rows, Row{Op: linediff.Equal, Hidden: it.Hidden, Left: placeholder, Right: placeholder})
			continue
		}
		x, y := it.Op.Segments()
		rows = append(rows, Row{
			Op:    it.Op.Op,
			Left:  Side{Line: it.Op.X, Segments: x},
			Right: Side{Line: it.Op.Y, Segments: y},
		})
	}
	return rows
}

// MinWidth is the smallest width supported by [Format].
const MinWidth = 20

// Format returns the items as two columns that fit into width terminal cells. Lines that are too
// long are truncated. Tabs are expanded to multiples of 8 columns.
//
// The following options are supported: unified.TerminalColors
func Format(items []linediff.Item, width int, opts ...linediff.Option) string {
	cfg := config.FromOptions(opts, config.Colors)
	rows := Rows(items)

	l := layout{cc: cfg.Colors, num: numWidth(rows)}
	l.col = (max(width, MinWidth) - cond.StringWidth(separator)) / 2
	l.text = max(1, l.col-l.num-3)

	var b strings.Builder
	for _, r := range rows {
		if r.Hidden > 0 {
			b.WriteString(l.paint(l.cc.Collapsed, unified.Marker(r.Hidden)))
			b.WriteByte('\n')
			continue
		}
		left := l.side(r.Op, r.Left, true)
		right := l.side(r.Op, r.Right, false)
		b.WriteString(strings.TrimRight(left+separator+right, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

const separator = " │ "

// cond fixes ambiguous width characters to one cell independent of the locale.
var cond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

const tabWidth = 8

type layout struct {
	cc   config.ColorConfig
	num  int // width of line numbers
	col  int // width of a column
	text int // width of the text in a column
}

// side renders one side of a row. The left side is padded to the column width.
func (l *layout) side(op linediff.Op, s Side, left bool) string {
	if s.Placeholder() {
		if left {
			return strings.Repeat(" ", l.col)
		}
		return ""
	}

	sign, code, wordCode := " ", l.cc.Match, l.cc.Match
	switch {
	case op == linediff.Equal:
	case left:
		sign, code, wordCode = "-", l.cc.Delete, l.cc.DeleteWord
	default:
		sign, code, wordCode = "+", l.cc.Insert, l.cc.InsertWord
	}
	if op != linediff.Replace {
		wordCode = code
	}

	var b strings.Builder
	num := strconv.Itoa(s.Line.Index + 1)
	b.WriteString(l.paint(code, strings.Repeat(" ", l.num-len(num))+num+" "+sign+" "))

	segs, w := Fit(ExpandTabs(s.Segments), l.text)
	for _, seg := range segs {
		if seg.Changed {
			b.WriteString(l.paint(wordCode, seg.Text))
		} else {
			b.WriteString(l.paint(code, seg.Text))
		}
	}
	if left {
		b.WriteString(strings.Repeat(" ", l.text-w))
	}
	return b.String()
}

func (l *layout) paint(code, text string) string {
	if !l.cc.Enabled || code == "" || text == "" {
		return text
	}
	return code + text + "\033[0m"
}

// numWidth returns the number of digits of the largest line number in rows.
func numWidth(rows []Row) int {
	n := 0
	for _, r := range rows {
		n = max(n, r.Left.Line.Index+1, r.Right.Line.Index+1)
	}
	return len(strconv.Itoa(n))
}

// ExpandTabs replaces tabs with spaces up to the next multiple of 8 columns.
func ExpandTabs(segs []linediff.Segment) []linediff.Segment {
	out := make([]linediff.Segment, 0, len(segs))
	col := 0
	for _, seg := range segs {
		if !strings.ContainsRune(seg.Text, '\t') {
			col += cond.StringWidth(seg.Text)
			out = append(out, seg)
			continue
		}
		var b strings.Builder
		for _, r := range seg.Text {
			if r == '\t' {
				next := (col/tabWidth + 1) * tabWidth
				b.WriteString(strings.Repeat(" ", next-col))
				col = next
				continue
			}
			b.WriteRune(r)
			col += cond.RuneWidth(r)
		}
		out = append(out, linediff.Segment{Text: b.String(), Changed: seg.Changed})
	}
	return out
}

// Fit truncates segs to at most w terminal cells, marking the cut with an ellipsis. It returns
// the segments and their width.
func Fit(segs []linediff.Segment, w int) ([]linediff.Segment, int) {
	total := 0
	for _, seg := range segs {
		total += cond.StringWidth(seg.Text)
	}
	if total <= w {
		return segs, total
	}

	const ellipsis = "…"
	left := w - cond.StringWidth(ellipsis)
	var out []linediff.Segment
	for _, seg := range segs {
		sw := cond.StringWidth(seg.Text)
		if sw <= left {
			out = append(out, seg)
			left -= sw
			continue
		}
		if t := cond.Truncate(seg.Text, left, ""); t != "" {
			out = append(out, linediff.Segment{Text: t, Changed: seg.Changed})
			left -= cond.StringWidth(t)
		}
		break
	}
	out = append(out, linediff.Segment{Text: ellipsis})
	return out, w - left
}
