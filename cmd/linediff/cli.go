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
	"github.com/spf13/cobra"
	"znkr.io/linediff/internal/config"
)

// NewRootCmd returns the linediff command that runs app.
func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linediff [flags] ORIGINAL MODIFIED",
		Short: "Compare two texts line by line and word by word.",
		Long: `Compare two texts line by line. Replaced lines are compared word by word.

Either input can be "-" to read it from stdin.

Example: linediff --mode side-by-side old.txt new.txt`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Stdout == nil {
				app.Stdout = cmd.OutOrStdout()
			}
			return app.Run(cmd.Context(), args[0], args[1])
		},
	}

	cfg := &app.Config
	f := cmd.Flags()
	f.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "Ignore differences in case")
	f.BoolVarP(&cfg.IgnoreWhitespace, "ignore-whitespace", "w", false, "Ignore differences in whitespace")
	f.StringVarP(&cfg.Mode, "mode", "m", ModeUnified, "Output mode: export, unified, inline, side-by-side, or stats")
	f.IntVarP(&cfg.Context, "context", "U", config.Default.Context, "Number of unchanged lines around changes in unified mode")
	f.IntVar(&cfg.Collapse, "collapse", 0, "Collapse runs of at least this many unchanged lines, 0 disables collapsing")
	f.StringVar(&cfg.Color, "color", "auto", "Colorize output: auto, always, or never")
	f.IntVar(&cfg.Width, "width", 120, "Width of the side-by-side output")
	f.IntVar(&cfg.MaxLineCells, "max-line-cells", config.Default.MaxLineCells, "Largest line table that is aligned exactly")
	f.IntVar(&cfg.MaxWordCells, "max-word-cells", config.Default.MaxWordCells, "Largest word table that is aligned for a replaced line")
	f.BoolVarP(&cfg.Copy, "copy", "c", false, "Copy the diff to the clipboard")
	f.BoolVarP(&cfg.Interactive, "interactive", "I", false, "Browse the diff in an interactive viewer")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log details to stderr")

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return cmd
}

// Execute runs the linediff command with the process' arguments.
func Execute() error {
	return NewRootCmd(NewApp()).Execute()
}
