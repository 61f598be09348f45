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
	"fmt"
	"slices"
)

// Stats summarizes a line-by-line diff.
type Stats struct {
	TotalOriginalLines int // Number of lines in the original text.
	TotalModifiedLines int // Number of lines in the modified text.
	UnchangedCount     int // Number of Equal ops.
	AddedCount         int // Number of Insert ops.
	RemovedCount       int // Number of Delete ops.
	ModifiedCount      int // Number of Replace ops.

	// SimilarityPercent is the number of unchanged lines divided by the number of lines in the
	// longer text, in percent. Two empty texts are 100% similar.
	SimilarityPercent float64
}

// ComputeStats computes the statistics of ops.
func ComputeStats(ops []LineOp) Stats {
	var s Stats
	for _, op := range ops {
		switch op.Op {
		case Equal:
			s.UnchangedCount++
			s.TotalOriginalLines++
			s.TotalModifiedLines++
		case Insert:
			s.AddedCount++
			s.TotalModifiedLines++
		case Delete:
			s.RemovedCount++
			s.TotalOriginalLines++
		case Replace:
			s.ModifiedCount++
			s.TotalOriginalLines++
			s.TotalModifiedLines++
		default:
			panic("never reached")
		}
	}
	s.SimilarityPercent = 100
	if n := max(s.TotalOriginalLines, s.TotalModifiedLines); n > 0 {
		s.SimilarityPercent = 100 * float64(s.UnchangedCount) / float64(n)
	}
	return s
}

// Changes returns the number of changed lines, that is all lines that are not unchanged.
func (s Stats) Changes() int {
	return s.AddedCount + s.RemovedCount + s.ModifiedCount
}

func (s Stats) String() string {
	return fmt.Sprintf("%d lines → %d lines: %d unchanged, %d added, %d removed, %d modified (%.1f%% similar)",
		s.TotalOriginalLines, s.TotalModifiedLines,
		s.UnchangedCount, s.AddedCount, s.RemovedCount, s.ModifiedCount,
		s.SimilarityPercent)
}

// Warning describes a degradation that was applied because an input was too large.
type Warning int

const (
	// WarnLineLimit reports that the line-by-line diff was computed with an approximation,
	// see [MaxLineCells].
	WarnLineLimit Warning = iota + 1

	// WarnWordLimit reports that at least one replaced line has no word-by-word diff, see
	// [MaxWordCells].
	WarnWordLimit
)

func (w Warning) String() string {
	switch w {
	case WarnLineLimit:
		return "input too large for an exact line diff, lines were aligned approximately"
	case WarnWordLimit:
		return "line too long for a word diff, highlighting the whole line instead"
	default:
		return fmt.Sprintf("Warning(%d)", int(w))
	}
}

func (r *Result) warn(w Warning) {
	if !slices.Contains(r.Warnings, w) {
		r.Warnings = append(r.Warnings, w)
	}
}
