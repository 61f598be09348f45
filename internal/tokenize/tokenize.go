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

// Package tokenize splits a line into words and whitespace.
package tokenize

import "unicode"

// Split splits s into maximal runs of whitespace and maximal runs of non-whitespace characters.
//
// Split is lossless, concatenating the returned tokens yields s. Whitespace is determined by
// [unicode.IsSpace]. Invalid UTF-8 bytes count as non-whitespace.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	start := 0
	inSpace := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i > start && space != inSpace {
			tokens = append(tokens, s[start:i])
			start = i
		}
		inSpace = space
	}
	return append(tokens, s[start:])
}
