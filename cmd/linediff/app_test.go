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

package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	main "znkr.io/linediff/cmd/linediff"
	"znkr.io/linediff/internal/bubbletea"
)

func writeInputs(t *testing.T, x, y string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	xpath, ypath := filepath.Join(dir, "x.txt"), filepath.Join(dir, "y.txt")
	require.NoError(t, os.WriteFile(xpath, []byte(x), 0o644))
	require.NoError(t, os.WriteFile(ypath, []byte(y), 0o644))
	return xpath, ypath
}

func newApp(cfg main.Config) (*main.App, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	if cfg.Color == "" {
		cfg.Color = "never"
	}
	app := &main.App{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
		Config: cfg,
	}
	return app, &stdout, &stderr
}

func TestApp_Run_Modes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  main.Config
		want string
	}{
		{
			name: "unified",
			cfg:  main.Config{Mode: main.ModeUnified, Context: 3},
			want: "@@ -1,3 +1,3 @@\n a\n-b\n+x\n c\n",
		},
		{
			name: "unified-without-context",
			cfg:  main.Config{Mode: main.ModeUnified},
			want: "@@ -2,1 +2,1 @@\n-b\n+x\n",
		},
		{
			name: "export",
			cfg:  main.Config{Mode: main.ModeExport},
			want: "  a\n- b\n+ x\n  c\n",
		},
		{
			name: "inline",
			cfg:  main.Config{Mode: main.ModeInline},
			want: " a\n-b\n+x\n c\n",
		},
		{
			name: "stats",
			cfg:  main.Config{Mode: main.ModeStats},
			want: "3 lines → 3 lines: 2 unchanged, 0 added, 0 removed, 1 modified (66.7% similar)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			xpath, ypath := writeInputs(t, "a\nb\nc", "a\nx\nc")
			app, stdout, _ := newApp(tt.cfg)

			err := app.Run(context.Background(), xpath, ypath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestApp_Run_SideBySide(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "a\nb", "a\nx")
	app, stdout, _ := newApp(main.Config{Mode: main.ModeSideBySide, Width: 40})

	err := app.Run(context.Background(), xpath, ypath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, " │ ")
	}
	assert.Contains(t, lines[1], "b")
	assert.Contains(t, lines[1], "x")
}

func TestApp_Run_IdenticalInputs(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "same\n", "same\n")
	app, stdout, _ := newApp(main.Config{Mode: main.ModeUnified, Context: 3})

	err := app.Run(context.Background(), xpath, ypath)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
}

func TestApp_Run_ReadsFromStdin(t *testing.T) {
	t.Parallel()

	_, ypath := writeInputs(t, "", "one\ntwo")
	app, stdout, _ := newApp(main.Config{Mode: main.ModeExport})
	app.Stdin = strings.NewReader("one")

	err := app.Run(context.Background(), "-", ypath)
	require.NoError(t, err)
	assert.Equal(t, "  one\n+ two\n", stdout.String())
}

func TestApp_Run_RejectsTwoStdinInputs(t *testing.T) {
	t.Parallel()

	app, _, _ := newApp(main.Config{})
	err := app.Run(context.Background(), "-", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestApp_Run_MissingFile(t *testing.T) {
	t.Parallel()

	xpath, _ := writeInputs(t, "a", "b")
	app, _, _ := newApp(main.Config{})

	err := app.Run(context.Background(), xpath, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApp_Run_InvalidMode(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "a", "b")
	app, _, _ := newApp(main.Config{Mode: "columns"})

	err := app.Run(context.Background(), xpath, ypath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid mode "columns"`)
}

func TestApp_Run_Colors(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "a\nb", "a")
	app, stdout, _ := newApp(main.Config{Mode: main.ModeUnified, Color: "always"})

	err := app.Run(context.Background(), xpath, ypath)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "\033[31m-b\033[0m")
}

func TestApp_Run_CopiesExport(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "a\nb", "a\nc")
	app, _, _ := newApp(main.Config{Mode: main.ModeStats, Copy: true})
	var copied string
	app.Clipboard = func(s string) error {
		copied = s
		return nil
	}

	err := app.Run(context.Background(), xpath, ypath)
	require.NoError(t, err)
	assert.Equal(t, "  a\n- b\n+ c", copied)
}

func TestApp_Run_CopyFailure(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "a", "b")
	app, _, _ := newApp(main.Config{Copy: true})
	errNoClipboard := errors.New("no clipboard")
	app.Clipboard = func(string) error { return errNoClipboard }

	err := app.Run(context.Background(), xpath, ypath)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoClipboard)
}

func TestApp_Run_Interactive(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "a", "b")
	app, stdout, _ := newApp(main.Config{Interactive: true})
	var viewed tea.Model
	app.RunViewer = func(m tea.Model) error {
		viewed = m
		return nil
	}

	err := app.Run(context.Background(), xpath, ypath)
	require.NoError(t, err)
	assert.IsType(t, bubbletea.Model{}, viewed)
	assert.Empty(t, stdout.String())
}

func TestApp_Run_LogsWarnings(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "a b", "a c")
	app, stdout, stderr := newApp(main.Config{Mode: main.ModeExport, MaxWordCells: 1})

	err := app.Run(context.Background(), xpath, ypath)
	require.NoError(t, err)
	assert.Equal(t, "- a b\n+ a c\n", stdout.String())
	assert.Contains(t, stderr.String(), "level=WARN")
	assert.Contains(t, stderr.String(), "line too long for a word diff")
}

func TestApp_Run_Verbose(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "a", "a")
	app, _, stderr := newApp(main.Config{Mode: main.ModeStats})
	require.NoError(t, app.Run(context.Background(), xpath, ypath))
	assert.Empty(t, stderr.String())

	app.Config.Verbose = true
	require.NoError(t, app.Run(context.Background(), xpath, ypath))
	assert.Contains(t, stderr.String(), "level=DEBUG")
	assert.Contains(t, stderr.String(), "computed diff")
	assert.Contains(t, stderr.String(), "changed=0")
}

func TestRootCmd_Flags(t *testing.T) {
	t.Parallel()

	xpath, ypath := writeInputs(t, "Hello  World", "hello world")
	var stdout bytes.Buffer
	app := &main.App{Stderr: &bytes.Buffer{}}
	cmd := main.NewRootCmd(app)
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--mode", "stats", "-i", "-w", xpath, ypath})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1 lines → 1 lines: 1 unchanged, 0 added, 0 removed, 0 modified (100.0% similar)\n", stdout.String())
	assert.Equal(t, 3, app.Config.Context)
}

func TestRootCmd_RequiresTwoArguments(t *testing.T) {
	t.Parallel()

	app := &main.App{Stdout: &bytes.Buffer{}}
	cmd := main.NewRootCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"only-one.txt"})

	assert.Error(t, cmd.Execute())
}
