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

package render

import (
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/internal/config"
	"znkr.io/diffcheck/render/color"
)

// Inline highlights the parts of a removed line that differ from the added line it was replaced
// with and vice versa.
//
// Within a block of consecutive removed and added lines, the k-th removed line is paired with the
// k-th added line. The differences are computed character by character and cleaned up to align
// with word boundaries where possible. Inline has no effect on word level results.
func Inline() diffcheck.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Inline = true
		return config.Inline
	}
}

// TerminalColors enables colored output using ANSI escape sequences. Without options, removed
// lines are red, added lines are green, and highlighted parts are printed in bold on a red or
// green background.
func TerminalColors(opts ...color.Option) diffcheck.Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		colors := cc
		cfg.Colors = &colors
		return config.Colors
	}
}
