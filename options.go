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

import "znkr.io/linediff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// IgnoreCase compares lines and words case-insensitively. The ops returned still contain the
// original text.
func IgnoreCase() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreCase = true
		return config.IgnoreCase
	}
}

// IgnoreWhitespace compares lines and words with all runs of whitespace collapsed to a single space
// and leading and trailing whitespace removed. The ops returned still contain the original text.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// MaxLineCells limits the size of the table used to compute the line-by-line diff. The size is the
// product of the number of lines in both texts, not counting their common suffix. The default is
// 5000×5000.
//
// If the limit is exceeded, [Compute] uses a faster algorithm that might not find the longest
// common subsequence of lines and reports [WarnLineLimit].
func MaxLineCells(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxLineCells = max(0, n)
		return config.MaxLineCells
	}
}

// MaxWordCells limits the size of the table used to compute the word-by-word diff of a replaced
// line. The size is the product of the number of words in both lines, not counting their common
// suffix. The default is 500×500.
//
// If the limit is exceeded, [Compute] reports the whole line as replaced and reports
// [WarnWordLimit].
func MaxWordCells(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxWordCells = max(0, n)
		return config.MaxWordCells
	}
}
