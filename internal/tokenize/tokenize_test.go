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

package tokenize

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single-word", "hello", []string{"hello"}},
		{"only-whitespace", " \t ", []string{" \t "}},
		{"words", "the quick fox", []string{"the", " ", "quick", " ", "fox"}},
		{"runs", "a   b", []string{"a", "   ", "b"}},
		{"leading-and-trailing", "  x  ", []string{"  ", "x", "  "}},
		{"punctuation-stays-with-word", "f(a, b)", []string{"f(a,", " ", "b)"}},
		{"tabs-and-carriage-return", "a\tb\r", []string{"a", "\t", "b", "\r"}},
		{"unicode", "日本 語 x", []string{"日本", " ", "語", " ", "x"}},
		{"invalid-utf8", "a\xffb c", []string{"a\xffb", " ", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) differs [-want,+got]:\n%s", tt.in, diff)
			}
			if joined := strings.Join(got, ""); joined != tt.in {
				t.Errorf("Split(%q) is not lossless, joined tokens are %q", tt.in, joined)
			}
			for i := 1; i < len(got); i++ {
				if isSpace(got[i]) == isSpace(got[i-1]) {
					t.Errorf("Split(%q): tokens %q and %q are not maximal runs", tt.in, got[i-1], got[i])
				}
			}
		})
	}
}

// isSpace reports whether token is a whitespace token.
func isSpace(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	return token != "" && unicode.IsSpace(r)
}
