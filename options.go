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

package diffcheck

import "znkr.io/diffcheck/internal/config"

// Option configures the behavior of comparison and rendering functions.
type Option = config.Option

// IgnoreWhitespace collapses all runs of whitespace to a single space and trims leading and
// trailing whitespace before comparing. Because line breaks are whitespace too, a line by line
// comparison of two preprocessed texts compares a single line each.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// IgnoreCase lowercases both inputs before comparing.
func IgnoreCase() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreCase = true
		return config.IgnoreCase
	}
}

// WordLevel compares words instead of lines. Words are separated by runs of whitespace.
func WordLevel() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.WordLevel = true
		return config.WordLevel
	}
}

// LineNumbers controls if renderers print line numbers. The default is true.
//
// The option is accepted by [Process] so the same set of options can be used for comparing and
// rendering, it doesn't change the comparison.
func LineNumbers(show bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LineNumbers = show
		return config.LineNumbers
	}
}
