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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/bubbletea"
	"znkr.io/linediff/internal/highlight"
	"znkr.io/linediff/sidebyside"
	"znkr.io/linediff/unified"
)

// Output modes.
const (
	ModeExport     = "export"
	ModeUnified    = "unified"
	ModeInline     = "inline"
	ModeSideBySide = "side-by-side"
	ModeStats      = "stats"
)

// Config holds the command line configuration.
type Config struct {
	IgnoreCase       bool
	IgnoreWhitespace bool
	Mode             string
	Context          int
	Collapse         int // 0 disables collapsing
	Color            string
	Width            int
	MaxLineCells     int
	MaxWordCells     int
	Copy             bool
	Interactive      bool
	Verbose          bool
}

// App compares two inputs and writes the result.
type App struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Clipboard func(string) error
	RunViewer func(tea.Model) error
	Config    Config
}

// NewApp returns an App that uses the process' standard streams, the system clipboard and a
// full screen terminal UI.
func NewApp() *App {
	return &App{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Clipboard: clipboard.WriteAll,
		RunViewer: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// Run compares the file at original with the file at modified. A path of "-" reads standard
// input.
func (a *App) Run(ctx context.Context, original, modified string) error {
	logger := a.logger()

	if original == "-" && modified == "-" {
		return errors.New("only one input can be read from stdin")
	}

	var x, y string
	var g errgroup.Group
	g.Go(func() (err error) {
		x, err = a.read(original)
		return err
	})
	g.Go(func() (err error) {
		y, err = a.read(modified)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res := linediff.Compute(x, y, a.computeOptions()...)
	logger.Debug("computed diff",
		"original", original,
		"modified", modified,
		"changed", res.Stats.Changes(),
		"stats", res.Stats.String(),
	)
	for _, w := range res.Warnings {
		logger.Warn(w.String())
	}

	if a.Config.Copy {
		if a.Clipboard == nil {
			return errors.New("copying diff: no clipboard available")
		}
		if err := a.Clipboard(unified.Export(res.Ops)); err != nil {
			return fmt.Errorf("copying diff: %w", err)
		}
		logger.Info("copied diff to clipboard")
	}

	if a.Config.Interactive {
		return a.view(res, modified)
	}
	return a.write(res)
}

func (a *App) read(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(a.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}

func (a *App) computeOptions() []linediff.Option {
	var opts []linediff.Option
	if a.Config.IgnoreCase {
		opts = append(opts, linediff.IgnoreCase())
	}
	if a.Config.IgnoreWhitespace {
		opts = append(opts, linediff.IgnoreWhitespace())
	}
	if a.Config.MaxLineCells > 0 {
		opts = append(opts, linediff.MaxLineCells(a.Config.MaxLineCells))
	}
	if a.Config.MaxWordCells > 0 {
		opts = append(opts, linediff.MaxWordCells(a.Config.MaxWordCells))
	}
	return opts
}

func (a *App) items(ops []linediff.LineOp) []linediff.Item {
	k := math.MaxInt
	if a.Config.Collapse > 0 {
		k = a.Config.Collapse
	}
	return linediff.Collapse(ops, k)
}

func (a *App) colors() ([]linediff.Option, error) {
	switch a.Config.Color {
	case "always":
	case "never":
		return nil, nil
	case "", "auto":
		if termenv.NewOutput(a.Stdout).Profile == termenv.Ascii {
			return nil, nil
		}
	default:
		return nil, fmt.Errorf("invalid color mode %q", a.Config.Color)
	}
	return []linediff.Option{unified.TerminalColors()}, nil
}

func (a *App) write(res linediff.Result) error {
	colors, err := a.colors()
	if err != nil {
		return err
	}

	var out string
	switch a.Config.Mode {
	case ModeExport:
		if len(res.Ops) > 0 {
			out = unified.Export(res.Ops) + "\n"
		}
	case "", ModeUnified:
		out = unified.Format(res.Ops, append(colors, unified.Context(a.Config.Context))...)
	case ModeInline:
		out = unified.Inline(a.items(res.Ops), colors...)
	case ModeSideBySide:
		out = sidebyside.Format(a.items(res.Ops), a.Config.Width, colors...)
	case ModeStats:
		out = res.Stats.String() + "\n"
	default:
		return fmt.Errorf("invalid mode %q", a.Config.Mode)
	}

	if _, err := io.WriteString(a.Stdout, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (a *App) view(res linediff.Result, path string) error {
	opts := []bubbletea.Option{bubbletea.WithClipboard(a.Clipboard)}
	if path != "-" {
		if lang := highlight.Language(path); lang != "" {
			opts = append(opts, bubbletea.WithLanguage(lang))
		}
	}
	if a.Config.Mode == ModeSideBySide {
		opts = append(opts, bubbletea.WithSideBySide())
	}
	if a.Config.Collapse > 0 {
		opts = append(opts, bubbletea.WithCollapse(a.Config.Collapse))
	}
	if err := a.RunViewer(bubbletea.NewModel(res, opts...)); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func (a *App) logger() *slog.Logger {
	level := slog.LevelWarn
	if a.Config.Verbose {
		level = slog.LevelDebug
	}
	w := a.Stderr
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
