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

package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"znkr.io/linediff/internal/highlight"
)

type styles struct {
	r          *lipgloss.Renderer
	match      lipgloss.Style
	delete     lipgloss.Style
	insert     lipgloss.Style
	deleteWord lipgloss.Style
	insertWord lipgloss.Style
	gutter     lipgloss.Style
	marker     lipgloss.Style
	status     lipgloss.Style
}

// Colors are loosely based on the One Dark theme.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		r:          r,
		match:      r.NewStyle(),
		delete:     r.NewStyle().Foreground(lipgloss.Color("#e06c75")),
		insert:     r.NewStyle().Foreground(lipgloss.Color("#98c379")),
		deleteWord: r.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#8b2f37")),
		insertWord: r.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#2f6b2f")),
		gutter:     r.NewStyle().Foreground(lipgloss.Color("#5c6370")),
		marker:     r.NewStyle().Foreground(lipgloss.Color("#5c6370")).Italic(true),
		status:     r.NewStyle().Foreground(lipgloss.Color("#282c34")).Background(lipgloss.Color("#abb2bf")),
	}
}

// token renders a syntax highlighted token.
func (s styles) token(tok highlight.Token) string {
	if tok.Style.Foreground == "" && !tok.Style.Bold {
		return tok.Text
	}
	st := s.r.NewStyle().Bold(tok.Style.Bold)
	if tok.Style.Foreground != "" {
		st = st.Foreground(lipgloss.Color(tok.Style.Foreground))
	}
	return st.Render(tok.Text)
}
