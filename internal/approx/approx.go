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

// Package approx aligns inputs that are too large for an exact LCS table.
//
// The alignment is computed with the Myers' O(ND) implementation in go-diff on a rune encoding of
// the input, where every distinct element is mapped to its own rune. Myers' algorithm finds a
// shortest edit script, but go-diff bounds its runtime with a deadline. After the deadline passes
// the result is still a valid alignment, just not necessarily a minimal one.
package approx

import (
	"time"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/linediff/internal/lcs"
)

// Timeout is the default deadline for [Align].
const Timeout = 2 * time.Second

// maxID is the number of distinct elements that can be encoded as valid runes (surrogates are
// skipped).
const maxID = utf8.MaxRune - (0xe000 - 0xd800)

// Align aligns x and y and returns the same representation as [lcs.Align].
//
// If timeout is <= 0, there is no deadline.
func Align(x, y []string, timeout time.Duration) []lcs.Edit {
	rx, ry, ok := encode(x, y)
	if !ok {
		return replaceAll(len(x), len(y))
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = timeout
	diffs := dmp.DiffMainRunes(rx, ry, false)

	script := make([]lcs.Edit, 0, len(x)+len(y))
	s, t := 0, 0
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			for range n {
				script = append(script, lcs.Edit{Op: lcs.Match, S: s, T: t})
				s++
				t++
			}
		case diffmatchpatch.DiffDelete:
			for range n {
				script = append(script, lcs.Edit{Op: lcs.Delete, S: s, T: -1})
				s++
			}
		case diffmatchpatch.DiffInsert:
			for range n {
				script = append(script, lcs.Edit{Op: lcs.Insert, S: -1, T: t})
				t++
			}
		}
	}
	if s != len(x) || t != len(y) {
		// Never expected, but a wrong script must not escape this package.
		return replaceAll(len(x), len(y))
	}
	return script
}

// encode maps every distinct element of x and y to a distinct valid rune.
func encode(x, y []string) (rx, ry []rune, ok bool) {
	ids := make(map[string]rune, len(x))
	next := 0
	id := func(s string) (rune, bool) {
		if r, found := ids[s]; found {
			return r, true
		}
		if next >= maxID {
			return 0, false
		}
		r := rune(next)
		if r >= 0xd800 {
			r += 0xe000 - 0xd800
		}
		next++
		ids[s] = r
		return r, true
	}

	rx = make([]rune, len(x))
	for i, s := range x {
		if rx[i], ok = id(s); !ok {
			return nil, nil, false
		}
	}
	ry = make([]rune, len(y))
	for i, s := range y {
		if ry[i], ok = id(s); !ok {
			return nil, nil, false
		}
	}
	return rx, ry, true
}

// replaceAll returns a script that deletes all of x and inserts all of y.
func replaceAll(n, m int) []lcs.Edit {
	script := make([]lcs.Edit, 0, n+m)
	for s := range n {
		script = append(script, lcs.Edit{Op: lcs.Delete, S: s, T: -1})
	}
	for t := range m {
		script = append(script, lcs.Edit{Op: lcs.Insert, S: -1, T: t})
	}
	return script
}
