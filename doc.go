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

// Package linediff compares two texts line by line and highlights the changed words within modified
// lines.
//
// The main function is [Compute]. It aligns the lines of both texts using a longest common
// subsequence, classifies every line as unchanged, added, removed or modified, and computes a
// word-by-word diff for every modified line:
//
//	res := linediff.Compute("line1\nline2\nline3", "line1\nlineB\nline3")
//	for _, op := range res.Ops {
//		fmt.Println(op.Op, op.X.Content, op.Y.Content)
//	}
//	fmt.Println(res.Stats)
//
// The result can be presented in different ways without recomputing the diff: [Collapse] hides long
// runs of unchanged lines, [Navigator] steps between changes, and [LineOp.Segments] splits lines
// into changed and unchanged parts for highlighting.
//
// Comparison can ignore case ([IgnoreCase]) and whitespace ([IgnoreWhitespace]). Both options only
// affect how lines and words are compared, the ops always contain the text as it was passed in.
//
// Performance: Compute takes O(NM) time and space, where N and M are the number of lines in both
// texts. Inputs beyond a configurable size ([MaxLineCells], [MaxWordCells]) are handled with
// degraded quality instead of failing, the degradation is reported in [Result.Warnings].
//
// For presentations of a result, please see [znkr.io/linediff/unified] and
// [znkr.io/linediff/sidebyside].
//
// [znkr.io/linediff/unified]: https://pkg.go.dev/znkr.io/linediff/unified
// [znkr.io/linediff/sidebyside]: https://pkg.go.dev/znkr.io/linediff/sidebyside
package linediff
