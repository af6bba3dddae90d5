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

// Package color configures the colors used by [znkr.io/diffcheck/render.TerminalColors].
//
// Colors are given as SGR parameters, e.g. Deletes(1, 31) prints removed lines in bold red.
package color

import (
	"fmt"
	"strings"

	"znkr.io/diffcheck/internal/config"
)

// A Option makes it possible to configure custom colors in render.TerminalColors.
type Option func(*config.ColorConfig)

// LineNumbers colors the line number column.
func LineNumbers(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.LineNumber = code
	}
}

// Matches colors unchanged lines and words.
func Matches(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Match = code
	}
}

// Deletes colors removed lines.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors added lines.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

// DeletedSpans colors removed words and the highlighted parts of removed lines.
func DeletedSpans(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.DeleteSpan = code
	}
}

// InsertedSpans colors added words and the highlighted parts of added lines.
func InsertedSpans(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.InsertSpan = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
