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

// Package bubbletea provides an interactive terminal viewer for line diffs.
package bubbletea

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/highlight"
	"znkr.io/linediff/sidebyside"
	"znkr.io/linediff/unified"
)

// scrollOff is the number of lines kept visible above a change when jumping to it.
const scrollOff = 2

// Model is the bubbletea model of the diff viewer.
type Model struct {
	res       linediff.Result
	nav       *linediff.Navigator
	keys      keyMap
	styles    styles
	language  string
	clipboard func(string) error
	threshold int

	collapsed  bool
	sideBySide bool

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	offsets  []int // first rendered line of every op
	message  string
}

// Option configures a Model.
type Option func(*Model)

// WithRenderer sets the lipgloss renderer used for all styles.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.styles = newStyles(r)
	}
}

// WithLanguage enables syntax highlighting of unchanged lines for the given chroma language.
func WithLanguage(language string) Option {
	return func(m *Model) {
		m.language = language
	}
}

// WithClipboard sets the function used to copy the exported diff. Without it, copying is
// unavailable.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.clipboard = write
	}
}

// WithSideBySide starts the viewer in side-by-side mode.
func WithSideBySide() Option {
	return func(m *Model) {
		m.sideBySide = true
	}
}

// WithCollapse starts the viewer with runs of at least k unchanged lines collapsed.
func WithCollapse(k int) Option {
	return func(m *Model) {
		m.collapsed = true
		m.threshold = max(1, k)
	}
}

// NewModel creates a viewer for res.
func NewModel(res linediff.Result, opts ...Option) Model {
	m := Model{
		res:       res,
		nav:       linediff.NewNavigator(res.Ops),
		keys:      defaultKeyMap(),
		styles:    newStyles(lipgloss.DefaultRenderer()),
		threshold: linediff.DefaultCollapseThreshold,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if len(res.Warnings) > 0 {
		m.message = res.Warnings[0].String()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

type copiedMsg struct{ err error }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := max(1, msg.Height-1) // status bar
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width, m.viewport.Height = msg.Width, h
		}
		m.render()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.message = "diff copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if pos, ok := m.nav.Next(); ok {
				m.scrollTo(pos)
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if pos, ok := m.nav.Prev(); ok {
				m.scrollTo(pos)
			}
			return m, nil
		case key.Matches(msg, m.keys.Collapse):
			m.collapsed = !m.collapsed
			m.render()
			m.keepCurrent()
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.sideBySide = !m.sideBySide
			m.render()
			m.keepCurrent()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			if m.clipboard == nil {
				m.message = "clipboard unavailable"
				return m, nil
			}
			write, text := m.clipboard, unified.Export(m.res.Ops)
			return m, func() tea.Msg { return copiedMsg{err: write(text)} }
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return m.viewport.View() + "\n" + m.statusBar()
}

// scrollTo scrolls the viewport to the op at pos.
func (m *Model) scrollTo(pos int) {
	if pos < len(m.offsets) {
		m.viewport.SetYOffset(max(0, m.offsets[pos]-scrollOff))
	}
}

// keepCurrent keeps the current change in view after the content changed.
func (m *Model) keepCurrent() {
	if pos, ok := m.nav.Current(); ok {
		m.scrollTo(pos)
	}
}

func (m *Model) items() []linediff.Item {
	k := math.MaxInt
	if m.collapsed {
		k = m.threshold
	}
	return linediff.Collapse(m.res.Ops, k)
}

// render renders all items into the viewport and records the line offsets of all ops.
func (m *Model) render() {
	if !m.ready {
		return
	}
	items := m.items()
	m.offsets = make([]int, len(m.res.Ops))

	var lines []string
	if m.sideBySide {
		lines = m.renderSideBySide(items)
	} else {
		lines = m.renderUnified(items)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) renderUnified(items []linediff.Item) []string {
	num := numWidth(m.res.Stats)
	var lines []string
	for _, it := range items {
		if it.Collapsed() {
			for p := it.Pos; p < it.Pos+it.Hidden; p++ {
				m.offsets[p] = len(lines)
			}
			lines = append(lines, m.styles.marker.Render(unified.Marker(it.Hidden)))
			continue
		}

		op := it.Op
		m.offsets[it.Pos] = len(lines)
		x, y := op.Segments()
		s := m.styles
		switch op.Op {
		case linediff.Equal:
			lines = append(lines, m.gutter(num, op.X, op.Y)+" "+m.highlight(op.X.Content))
		case linediff.Delete:
			lines = append(lines, m.gutter(num, op.X, op.Y)+m.segments("-", x, s.delete, s.delete))
		case linediff.Insert:
			lines = append(lines, m.gutter(num, op.X, op.Y)+m.segments("+", y, s.insert, s.insert))
		case linediff.Replace:
			lines = append(lines,
				m.gutter(num, op.X, linediff.Line{Index: -1})+m.segments("-", x, s.delete, s.deleteWord),
				m.gutter(num, linediff.Line{Index: -1}, op.Y)+m.segments("+", y, s.insert, s.insertWord),
			)
		default:
			panic("never reached")
		}
	}
	return lines
}

func (m *Model) renderSideBySide(items []linediff.Item) []string {
	num := numWidth(m.res.Stats)
	col := max(sidebyside.MinWidth, m.width-3) / 2
	text := max(1, col-num-3)
	s := m.styles

	side := func(op linediff.Op, l linediff.Line, segs []linediff.Segment, left bool) string {
		if l.Index < 0 {
			return strings.Repeat(" ", col)
		}
		sign, line, word := " ", s.match, s.match
		switch {
		case op == linediff.Equal:
		case left:
			sign, line, word = "-", s.delete, s.deleteWord
		default:
			sign, line, word = "+", s.insert, s.insertWord
		}
		if op != linediff.Replace {
			word = line
		}
		segs, w := sidebyside.Fit(sidebyside.ExpandTabs(segs), text)
		n := strconv.Itoa(l.Index + 1)
		return s.gutter.Render(strings.Repeat(" ", num-len(n))+n) + " " +
			m.segments(sign, segs, line, word) + strings.Repeat(" ", text-w+1)
	}

	var lines []string
	for i, r := range sidebyside.Rows(items) {
		pos := items[i].Pos
		if r.Hidden > 0 {
			for p := pos; p < pos+r.Hidden; p++ {
				m.offsets[p] = len(lines)
			}
			lines = append(lines, s.marker.Render(unified.Marker(r.Hidden)))
			continue
		}
		m.offsets[pos] = len(lines)
		lines = append(lines, side(r.Op, r.Left.Line, r.Left.Segments, true)+
			s.gutter.Render("│")+" "+
			side(r.Op, r.Right.Line, r.Right.Segments, false))
	}
	return lines
}

// gutter renders the line numbers of x and y.
func (m *Model) gutter(num int, x, y linediff.Line) string {
	f := func(l linediff.Line) string {
		if l.Index < 0 {
			return strings.Repeat(" ", num)
		}
		n := strconv.Itoa(l.Index + 1)
		return strings.Repeat(" ", num-len(n)) + n
	}
	return m.styles.gutter.Render(f(x)+" "+f(y)) + " "
}

// segments renders a sign followed by segments, changed segments use word and the rest line.
func (m *Model) segments(sign string, segs []linediff.Segment, line, word lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(line.Render(sign))
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		if seg.Changed {
			b.WriteString(word.Render(seg.Text))
		} else {
			b.WriteString(line.Render(seg.Text))
		}
	}
	return b.String()
}

// highlight renders an unchanged line, syntax highlighted if a language is set.
func (m *Model) highlight(line string) string {
	segs := sidebyside.ExpandTabs([]linediff.Segment{{Text: line}})
	if len(segs) == 0 {
		return ""
	}
	line = segs[0].Text
	if m.language == "" || line == "" {
		return line
	}
	tokens := highlight.Line(m.language, line)
	if tokens == nil {
		return line
	}
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(m.styles.token(tok))
	}
	return b.String()
}

func (m Model) statusBar() string {
	var change string
	switch n, i := m.nav.Len(), m.nav.Index(); {
	case n == 0:
		change = "no changes"
	case n == 1 && i < 0:
		change = "1 change"
	case i < 0:
		change = fmt.Sprintf("%d changes", n)
	default:
		change = fmt.Sprintf("change %d/%d", i+1, n)
	}

	st := m.res.Stats
	summary := fmt.Sprintf("+%d -%d ~%d %.1f%% similar", st.AddedCount, st.RemovedCount, st.ModifiedCount, st.SimilarityPercent)

	mode := "unified"
	if m.sideBySide {
		mode = "side-by-side"
	}
	if m.collapsed {
		mode += " collapsed"
	}

	left := " " + change + " │ " + summary + " │ " + mode
	right := m.position()
	if hint := m.message; hint != "" || lipgloss.Width(left)+lipgloss.Width(m.keys.hints())+len(right)+3 <= m.width {
		if hint == "" {
			hint = m.keys.hints()
		}
		right = hint + " " + right
	}
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-1)
	return m.styles.status.Render(left + strings.Repeat(" ", gap) + right + " ")
}

// position describes the scroll position like less does.
func (m Model) position() string {
	switch top, bot := m.viewport.AtTop(), m.viewport.AtBottom(); {
	case top && bot:
		return "All"
	case top:
		return "Top"
	case bot:
		return "Bot"
	default:
		return fmt.Sprintf("%d%%", int(math.Round(m.viewport.ScrollPercent()*100)))
	}
}

// numWidth returns the number of digits needed for line numbers.
func numWidth(st linediff.Stats) int {
	return len(strconv.Itoa(max(st.TotalOriginalLines, st.TotalModifiedLines)))
}
