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

package lcs

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "replace-in-the-middle",
			x:    []string{"line1", "line2", "line3"},
			y:    []string{"line1", "lineB", "line3"},
			want: "MDIM",
		},
		{
			name: "disjoint",
			x:    []string{"a", "b"},
			y:    []string{"c", "d"},
			want: "DDII",
		},
		{
			name: "repeated-element",
			x:    []string{"a", "a"},
			y:    []string{"a"},
			want: "DM",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DDMDMIMMI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Run("align", func(t *testing.T) {
				got := render(Align(tt.x, tt.y))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Align(...) differs [-want,+got]:\n%s", diff)
				}
			})

			t.Run("align_func", func(t *testing.T) {
				got := render(AlignFunc(tt.x, tt.y, func(a, b string) bool { return a == b }))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("AlignFunc(...) differs [-want,+got]:\n%s", diff)
				}
			})
		})
	}
}

func TestAlignIndices(t *testing.T) {
	x := []string{"line1", "line2", "line3"}
	y := []string{"line1", "lineB", "line3"}
	want := []Edit{
		{Match, 0, 0},
		{Delete, 1, -1},
		{Insert, -1, 1},
		{Match, 2, 2},
	}
	got := Align(x, y)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Align(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestAlignFuncEquality(t *testing.T) {
	x := []string{"Hello", "World"}
	y := []string{"hello", "world", "!"}
	got := render(AlignFunc(x, y, strings.EqualFold))
	if diff := cmp.Diff("MMI", got); diff != "" {
		t.Errorf("AlignFunc(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		n, m int
	}{
		{"empty", nil, nil, 0, 0},
		{"identical", []string{"a", "b"}, []string{"a", "b"}, 0, 0},
		{"common-suffix", []string{"a", "b", "c"}, []string{"x", "c"}, 2, 1},
		{"common-prefix-is-kept", []string{"a", "b"}, []string{"a", "c"}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, m := Size(tt.x, tt.y)
			if n != tt.n || m != tt.m {
				t.Errorf("Size(...) = %d, %d, want %d, %d", n, m, tt.n, tt.m)
			}
		})
	}
}

// TestAlignRandom checks the structural invariants of the alignment and that the number of matches
// is the length of the longest common subsequence.
func TestAlignRandom(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for i := range 500 {
		x := randomSeq(rng, rng.IntN(20), 4)
		y := randomSeq(rng, rng.IntN(20), 4)
		script := Align(x, y)

		var gotX, gotY []int
		for _, e := range script {
			switch e.Op {
			case Match:
				if x[e.S] != y[e.T] {
					t.Fatalf("case %d: match of unequal elements x[%d]=%d, y[%d]=%d", i, e.S, x[e.S], e.T, y[e.T])
				}
				gotX = append(gotX, x[e.S])
				gotY = append(gotY, y[e.T])
			case Delete:
				gotX = append(gotX, x[e.S])
			case Insert:
				gotY = append(gotY, y[e.T])
			}
		}
		if diff := cmp.Diff(x, gotX, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("case %d: x is not reconstructed [-want,+got]:\n%s", i, diff)
		}
		if diff := cmp.Diff(y, gotY, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("case %d: y is not reconstructed [-want,+got]:\n%s", i, diff)
		}
		if got, want := matches(script), naiveLen(x, y); got != want {
			t.Fatalf("case %d: Align(%v, %v) has %d matches, want %d", i, x, y, got, want)
		}
	}
}

func BenchmarkAlign(b *testing.B) {
	for _, n := range []int{100, 1000, 3000} {
		name := fmt.Sprintf("N=%d", n)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			x := randomSeq(rng, n, 100)
			y := randomSeq(rng, n, 100)
			for b.Loop() {
				_ = Align(x, y)
			}
		})
	}
}

func randomSeq(rng *rand.Rand, n, alphabet int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = rng.IntN(alphabet)
	}
	return s
}

func matches(script []Edit) int {
	n := 0
	for _, e := range script {
		if e.Op == Match {
			n++
		}
	}
	return n
}

func naiveLen(x, y []int) int {
	prev := make([]int, len(y)+1)
	for i := range x {
		cur := make([]int, len(y)+1)
		for j := range y {
			if x[i] == y[j] {
				cur[j+1] = prev[j] + 1
			} else {
				cur[j+1] = max(prev[j+1], cur[j])
			}
		}
		prev = cur
	}
	return prev[len(y)]
}

func render(script []Edit) string {
	var sb strings.Builder
	for _, e := range script {
		sb.WriteString(e.Op.String())
	}
	return sb.String()
}
