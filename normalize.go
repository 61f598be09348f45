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

	"znkr.io/linediff/internal/config"
)

// keyFunc returns the function that maps a line or word to the key it's compared by, or nil if
// lines and words are compared as is.
func keyFunc(cfg config.Config) func(string) string {
	switch {
	case cfg.IgnoreCase && cfg.IgnoreWhitespace:
		return func(s string) string { return strings.ToLower(collapseWhitespace(s)) }
	case cfg.IgnoreCase:
		return strings.ToLower
	case cfg.IgnoreWhitespace:
		return collapseWhitespace
	default:
		return nil
	}
}

// collapseWhitespace replaces all runs of whitespace with a single space and trims the result.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
