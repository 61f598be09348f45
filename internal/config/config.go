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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// linediff.Option.
package config

// Config collects all configurable parameters for functions in this module.
type Config struct {
	// If set, comparison keys are lower-cased at line and word level.
	IgnoreCase bool

	// If set, comparison keys have whitespace runs collapsed to a single space and are trimmed at
	// line and word level.
	IgnoreWhitespace bool

	// MaxLineCells is the largest line-level LCS table (rows × columns) that is computed exactly.
	// Larger inputs are aligned with a faster, approximate algorithm.
	MaxLineCells int

	// MaxWordCells is the largest word-level LCS table that is computed for a single replaced line.
	// Larger lines are reported as a whole-line replacement without word highlights.
	MaxWordCells int

	// Context is the number of unchanged lines to include before and after changes in hunked
	// output.
	Context int

	// Colors configures ANSI coloring of unified output. Coloring is off if Colors.Enabled is
	// false.
	Colors ColorConfig
}

// ColorConfig holds the SGR escape sequences used for unified output.
type ColorConfig struct {
	Enabled    bool
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
	DeleteWord string
	InsertWord string
	Collapsed  string
}

// DefaultColors are the colors used when coloring is enabled without further customization.
var DefaultColors = ColorConfig{
	Enabled:    true,
	HunkHeader: "\033[36m",
	Match:      "",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
	DeleteWord: "\033[7;31m",
	InsertWord: "\033[7;32m",
	Collapsed:  "\033[2m",
}

// Default is the default configuration.
var Default = Config{
	IgnoreCase:       false,
	IgnoreWhitespace: false,
	MaxLineCells:     5000 * 5000,
	MaxWordCells:     500 * 500,
	Context:          3,
	Colors:           ColorConfig{},
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	IgnoreCase Flag = 1 << iota
	IgnoreWhitespace
	MaxLineCells
	MaxWordCells
	Context
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case IgnoreCase:
		return "linediff.IgnoreCase"
	case IgnoreWhitespace:
		return "linediff.IgnoreWhitespace"
	case MaxLineCells:
		return "linediff.MaxLineCells"
	case MaxWordCells:
		return "linediff.MaxWordCells"
	case Context:
		return "unified.Context"
	case Colors:
		return "unified.TerminalColors"
	default:
		panic("never reached")
	}
}
