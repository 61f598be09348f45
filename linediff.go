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

package linediff

import (
	"strings"

	"znkr.io/linediff/internal/approx"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/lcs"
	"znkr.io/linediff/internal/tokenize"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal   Op = iota // Lines or words match
	Insert            // A line or word that only exists in the modified text
	Delete            // A line or word that only exists in the original text
	Replace           // A line that changed in place, only used for lines
)

// Line is a single line of one of the two input texts.
type Line struct {
	Index   int    // Zero-based position in the input text, -1 if unset.
	Content string // The line without the newline character.
}

// LineOp describes a single edit of a line-by-line diff.
//
//   - For Equal, X and Y contain the matching lines. Their content is only guaranteed to be
//     identical if neither [IgnoreCase] nor [IgnoreWhitespace] is used.
//   - For Delete, X contains the deleted line and Y is unset (Index -1).
//   - For Insert, Y contains the inserted line and X is unset (Index -1).
//   - For Replace, X is the line from the original text and Y the line that replaced it. Words
//     contains the word-by-word diff between the two.
type LineOp struct {
	Op    Op
	X, Y  Line
	Words []WordOp
}

// WordOp describes a single edit of a word-by-word diff of a replaced line.
//
// Words are maximal runs of non-whitespace characters; whitespace runs are words too.
//
//   - For Equal, X and Y contain the matching words.
//   - For Delete, X contains the deleted word and Y is empty.
//   - For Insert, Y contains the inserted word and X is empty.
type WordOp struct {
	Op   Op
	X, Y string
}

// Result is the outcome of [Compute].
type Result struct {
	Ops      []LineOp  // All edits necessary to turn the original text into the modified text.
	Stats    Stats     // Aggregated statistics over Ops.
	Warnings []Warning // Degradations applied because the input was too large.
}

var unset = Line{Index: -1}

// Compute compares original and modified line by line and returns the changes necessary to convert
// from one to the other.
//
// Lines are separated by '\n'. An empty text has no lines, any other text has one line more than it
// has newline characters. In particular, a text ending in a newline character has an empty last
// line.
//
// Compute returns one op for every line in both texts. If two texts are identical, all ops are
// [Equal]. A single deleted line that is directly followed by a single inserted line (or vice versa)
// is reported as one [Replace] that contains a word-by-word diff of both lines. Longer runs of
// changed lines are reported as individual [Delete] and [Insert] ops.
//
// The following options are supported: [IgnoreCase], [IgnoreWhitespace], [MaxLineCells],
// [MaxWordCells]
func Compute(original, modified string, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.IgnoreCase|config.IgnoreWhitespace|config.MaxLineCells|config.MaxWordCells)
	key := keyFunc(cfg)

	xlines, ylines := splitLines(original), splitLines(modified)
	xkeys, ykeys := mapSlice(xlines, key), mapSlice(ylines, key)

	var res Result
	var script []lcs.Edit
	if n, m := lcs.Size(xkeys, ykeys); exceeds(n, m, cfg.MaxLineCells) {
		script = approx.Align(xkeys, ykeys, approx.Timeout)
		res.warn(WarnLineLimit)
	} else {
		script = lcs.Align(xkeys, ykeys)
	}

	res.Ops = classify(script, xlines, ylines)
	for i := range res.Ops {
		op := &res.Ops[i]
		if op.Op != Replace {
			continue
		}
		var ok bool
		op.Words, ok = words(op.X.Content, op.Y.Content, key, cfg.MaxWordCells)
		if !ok {
			res.warn(WarnWordLimit)
		}
	}
	res.Stats = ComputeStats(res.Ops)
	return res
}

// classify translates an alignment into line ops, pairing single deletes and inserts.
func classify(script []lcs.Edit, xlines, ylines []string) []LineOp {
	line := func(lines []string, i int) Line {
		if i < 0 {
			return unset
		}
		return Line{Index: i, Content: lines[i]}
	}

	ops := make([]LineOp, 0, len(script))
	for i := 0; i < len(script); {
		if e := script[i]; e.Op == lcs.Match {
			ops = append(ops, LineOp{Op: Equal, X: line(xlines, e.S), Y: line(ylines, e.T)})
			i++
			continue
		}

		j := i + 1
		for j < len(script) && script[j].Op != lcs.Match {
			j++
		}
		run := script[i:j]
		if len(run) == 2 && run[0].Op != run[1].Op {
			s, t := run[0].S, run[1].T
			if run[0].Op == lcs.Insert {
				s, t = run[1].S, run[0].T
			}
			ops = append(ops, LineOp{Op: Replace, X: line(xlines, s), Y: line(ylines, t)})
		} else {
			for _, e := range run {
				switch e.Op {
				case lcs.Delete:
					ops = append(ops, LineOp{Op: Delete, X: line(xlines, e.S), Y: unset})
				case lcs.Insert:
					ops = append(ops, LineOp{Op: Insert, X: unset, Y: line(ylines, e.T)})
				default:
					panic("never reached")
				}
			}
		}
		i = j
	}
	return ops
}

// words computes the word-by-word diff of x and y. If the diff is too large to compute, it returns
// the replacement of all of x by all of y and false.
func words(x, y string, key func(string) string, limit int) ([]WordOp, bool) {
	xtokens, ytokens := tokenize.Split(x), tokenize.Split(y)
	xkeys, ykeys := mapSlice(xtokens, key), mapSlice(ytokens, key)

	if n, m := lcs.Size(xkeys, ykeys); exceeds(n, m, limit) {
		var out []WordOp
		if x != "" {
			out = append(out, WordOp{Op: Delete, X: x})
		}
		if y != "" {
			out = append(out, WordOp{Op: Insert, Y: y})
		}
		return out, false
	}

	script := lcs.Align(xkeys, ykeys)
	out := make([]WordOp, 0, len(script))
	for _, e := range script {
		switch e.Op {
		case lcs.Match:
			out = append(out, WordOp{Op: Equal, X: xtokens[e.S], Y: ytokens[e.T]})
		case lcs.Delete:
			out = append(out, WordOp{Op: Delete, X: xtokens[e.S]})
		case lcs.Insert:
			out = append(out, WordOp{Op: Insert, Y: ytokens[e.T]})
		}
	}
	return out, true
}

// splitLines splits text into lines without the newline characters.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// exceeds reports if a table of n×m cells is larger than limit.
func exceeds(n, m, limit int) bool {
	if n == 0 || m == 0 {
		return false
	}
	return n > limit/m
}

func mapSlice(in []string, f func(string) string) []string {
	if f == nil {
		return in
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = f(s)
	}
	return out
}
