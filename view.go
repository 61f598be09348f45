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

// DefaultCollapseThreshold is the shortest run of unchanged lines that [Collapse] hides by default.
const DefaultCollapseThreshold = 3

// Item is an element of a collapsed view. It's either a single op or a marker that stands for a
// run of hidden unchanged lines.
type Item struct {
	Pos    int    // Index into the ops passed to Collapse of Op or of the first hidden op.
	Hidden int    // Number of hidden Equal ops, 0 if the item is not a marker.
	Op     LineOp // The op at Pos, unset for markers.
}

// Collapsed reports whether the item is a marker for hidden lines.
func (it Item) Collapsed() bool { return it.Hidden > 0 }

// Collapse replaces every run of at least k consecutive [Equal] ops with a single marker. Shorter
// runs and all other ops are returned as is. Values of k < 1 are treated as 1.
//
// Collapse only changes the presentation, statistics are always computed from the uncollapsed ops.
func Collapse(ops []LineOp, k int) []Item {
	k = max(1, k)
	items := make([]Item, 0, len(ops))
	for i := 0; i < len(ops); {
		j := i
		for j < len(ops) && ops[j].Op == Equal {
			j++
		}
		if run := j - i; run >= k {
			items = append(items, Item{Pos: i, Hidden: run})
			i = j
			continue
		}
		if j == i {
			j++ // not an Equal op
		}
		for ; i < j; i++ {
			items = append(items, Item{Pos: i, Op: ops[i]})
		}
	}
	return items
}

// Changes returns the position of the first op of every change cluster in ops. A change cluster is
// a maximal run of consecutive ops that are not [Equal].
func Changes(ops []LineOp) []int {
	var pos []int
	for i, op := range ops {
		if op.Op != Equal && (i == 0 || ops[i-1].Op == Equal) {
			pos = append(pos, i)
		}
	}
	return pos
}

// Navigator steps through the change clusters of a diff. The zero value has no changes.
//
// A new Navigator has no current change. The first call to Next moves to the first change and the
// first call to Prev moves to the last change. Both wrap around at the ends.
type Navigator struct {
	stops []int
	cur   int // index into stops, -1 if there's no current change
}

// NewNavigator creates a Navigator for the change clusters in ops.
func NewNavigator(ops []LineOp) *Navigator {
	return &Navigator{stops: Changes(ops), cur: -1}
}

// Len returns the number of change clusters.
func (n *Navigator) Len() int { return len(n.stops) }

// Index returns the zero-based index of the current change cluster or -1 if there's none.
func (n *Navigator) Index() int {
	if len(n.stops) == 0 {
		return -1
	}
	return n.cur
}

// Current returns the position of the current change cluster in the ops.
func (n *Navigator) Current() (pos int, ok bool) {
	if n.Index() < 0 {
		return -1, false
	}
	return n.stops[n.cur], true
}

// Next moves to the next change cluster and returns its position in the ops. After the last
// cluster, it moves to the first one. If there are no changes, it returns false.
func (n *Navigator) Next() (pos int, ok bool) {
	if len(n.stops) == 0 {
		return -1, false
	}
	n.cur = (n.cur + 1) % len(n.stops)
	return n.stops[n.cur], true
}

// Prev moves to the previous change cluster and returns its position in the ops. Before the first
// cluster, it moves to the last one. If there are no changes, it returns false.
func (n *Navigator) Prev() (pos int, ok bool) {
	if len(n.stops) == 0 {
		return -1, false
	}
	if n.cur <= 0 {
		n.cur = len(n.stops)
	}
	n.cur--
	return n.stops[n.cur], true
}

// Segment is a piece of a line that is either changed or unchanged.
type Segment struct {
	Text    string
	Changed bool
}

// Segments returns the segments of the original line X and the modified line Y of op. Adjacent
// segments with the same state are merged and empty lines have no segments.
//
// For Equal ops, all text is unchanged; for Insert and Delete ops, all text is changed; for
// Replace ops the segments are derived from the word-by-word diff.
func (op LineOp) Segments() (x, y []Segment) {
	switch op.Op {
	case Equal:
		x = appendSegment(x, op.X.Content, false)
		y = appendSegment(y, op.Y.Content, false)
	case Delete:
		x = appendSegment(x, op.X.Content, true)
	case Insert:
		y = appendSegment(y, op.Y.Content, true)
	case Replace:
		for _, w := range op.Words {
			switch w.Op {
			case Equal:
				x = appendSegment(x, w.X, false)
				y = appendSegment(y, w.Y, false)
			case Delete:
				x = appendSegment(x, w.X, true)
			case Insert:
				y = appendSegment(y, w.Y, true)
			}
		}
	default:
		panic("never reached")
	}
	return x, y
}

func appendSegment(segs []Segment, text string, changed bool) []Segment {
	if text == "" {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].Changed == changed {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, Segment{Text: text, Changed: changed})
}
