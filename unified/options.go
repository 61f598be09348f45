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

package unified

import (
	"znkr.io/linediff"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/unified/color"
)

// Context sets the number of unchanged lines to include before and after the changes in every
// hunk returned by [Format]. The default is 3.
func Context(n int) linediff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// TerminalColors enables colored output using ANSI escape sequences. Without options, hunk headers
// are cyan, deleted lines red, inserted lines green, and changed words within replaced lines are
// highlighted in reverse video. Individual colors can be changed with the options in the
// [color] package.
func TerminalColors(opts ...color.Option) linediff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = config.DefaultColors
		for _, opt := range opts {
			opt(&cfg.Colors)
		}
		return config.Colors
	}
}
