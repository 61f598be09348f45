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

// Package lcs aligns two sequences using the classic longest common subsequence table.
//
// The aligner is used at two granularities: once for the lines of two documents and once for the
// tokens of every pair of lines that was classified as a replacement. It runs in O(NM) time and
// space where N and M are the lengths of the inputs after their common suffix is removed. Callers
// are expected to check [Size] against a limit before calling [Align] on large inputs.
//
// # Tie-break
//
// The edit script is recovered by walking the table backwards from the last cell. If the current
// elements are equal, the walk moves diagonally and records a match. Otherwise it moves to the
// neighbor with the longer subsequence; if both neighbors are equal, the walk consumes an element
// of y first (an insertion). Because the walk runs backwards, this places deletions before
// insertions in the forward script whenever both choices lead to an optimal alignment:
//
//	x = [a, b, c], y = [a, B, c]  =>  match a, delete b, insert B, match c
package lcs

import "slices"

// Op describes an edit operation.
type Op uint8

const (
	Match  Op = iota // Two elements match
	Delete           // An element of x is deleted
	Insert           // An element of y is inserted
)

func (op Op) String() string {
	switch op {
	case Match:
		return "M"
	case Delete:
		return "D"
	case Insert:
		return "I"
	default:
		panic("never reached")
	}
}

// Edit describes a single edit of an alignment.
//
//   - For Match, S is the index into x and T the index into y.
//   - For Delete, S is the index into x and T is -1.
//   - For Insert, T is the index into y and S is -1.
type Edit struct {
	Op   Op
	S, T int
}

// Size returns the dimensions of the table [Align] builds for x and y.
func Size[T comparable](x, y []T) (n, m int) {
	k := suffix(x, y, func(a, b T) bool { return a == b })
	return len(x) - k, len(y) - k
}

// Align computes an alignment of x and y with a maximal number of matches.
//
// The output contains one edit for every element of x and y. Concatenating the elements of x in
// all Match and Delete edits yields x, concatenating the elements of y in all Match and Insert
// edits yields y.
func Align[T comparable](x, y []T) []Edit {
	return AlignFunc(x, y, func(a, b T) bool { return a == b })
}

// AlignFunc is like [Align] but uses eq to compare elements.
func AlignFunc[T any](x, y []T, eq func(a, b T) bool) []Edit {
	// The backtrack below starts at the end of both inputs and always prefers a match, that is, it
	// consumes the common suffix before anything else. Doing that up front keeps the table small.
	k := suffix(x, y, eq)
	n, m := len(x)-k, len(y)-k

	w := m + 1
	table := make([]int32, (n+1)*w)
	for i := 1; i <= n; i++ {
		prev, row := table[(i-1)*w:i*w], table[i*w:(i+1)*w]
		for j := 1; j <= m; j++ {
			if eq(x[i-1], y[j-1]) {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(prev[j], row[j-1])
			}
		}
	}

	// The script is built backwards and reversed at the end.
	script := make([]Edit, 0, n+m+k)
	for d := range k {
		script = append(script, Edit{Match, len(x) - 1 - d, len(y) - 1 - d})
	}
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && eq(x[i-1], y[j-1]):
			script = append(script, Edit{Match, i - 1, j - 1})
			i--
			j--
		case i > 0 && (j == 0 || table[(i-1)*w+j] > table[i*w+j-1]):
			script = append(script, Edit{Delete, i - 1, -1})
			i--
		default:
			script = append(script, Edit{Insert, -1, j - 1})
			j--
		}
	}
	slices.Reverse(script)
	return script
}

// suffix returns the length of the common suffix of x and y.
func suffix[T any](x, y []T, eq func(a, b T) bool) int {
	n, m := len(x), len(y)
	k := 0
	for k < n && k < m && eq(x[n-1-k], y[m-1-k]) {
		k++
	}
	return k
}
