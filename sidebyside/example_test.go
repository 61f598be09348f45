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

package sidebyside_test

import (
	"fmt"

	"znkr.io/linediff"
	"znkr.io/linediff/sidebyside"
)

func ExampleFormat() {
	res := linediff.Compute("line1\nline2\nline3", "line1\nlineB\nline3")
	items := linediff.Collapse(res.Ops, linediff.DefaultCollapseThreshold)
	fmt.Print(sidebyside.Format(items, 40))
	// Output:
	// 1   line1          │ 1   line1
	// 2 - line2          │ 2 + lineB
	// 3   line3          │ 3   line3
}
