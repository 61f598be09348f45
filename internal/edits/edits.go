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

// Package edits groups a sequence of edits into hunks of changes with surrounding context.
package edits

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	Pos, End int // Start and end of the hunk in the edit sequence.
	Edits    int // Number of changed edits in this hunk.
}

// Hunks finds all hunks in a sequence of n edits, where changed reports if the i-th edit is a
// change. Every hunk includes up to context unchanged edits before and after its changes. Hunks
// with touching or overlapping context are merged.
func Hunks(n int, changed func(i int) bool, context int) []Hunk {
	context = max(0, context)

	var hunks []Hunk
	for i := 0; i < n; {
		if !changed(i) {
			i++
			continue
		}

		// Find the end of this run of changes.
		j, edits := i, 0
		for j < n && changed(j) {
			j++
			edits++
		}

		pos, end := max(0, i-context), min(n, j+context)

		// If the context windows for this new hunk and the previous hunk overlap, continue filling
		// that hunk.
		if len(hunks) > 0 && hunks[len(hunks)-1].End >= pos {
			h := &hunks[len(hunks)-1]
			h.End = end
			h.Edits += edits
		} else {
			hunks = append(hunks, Hunk{Pos: pos, End: end, Edits: edits})
		}
		i = j
	}
	return hunks
}
