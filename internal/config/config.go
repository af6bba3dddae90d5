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
// diffcheck.Option.
package config

// Config collects all configurable parameters for comparison and rendering functions in this
// module.
type Config struct {
	// If set, runs of whitespace are collapsed to a single space and the text is trimmed before
	// tokenization.
	IgnoreWhitespace bool

	// If set, both inputs are lowercased before tokenization.
	IgnoreCase bool

	// If set, renderers print line numbers. This has no influence on the comparison itself.
	LineNumbers bool

	// If set, the inputs are split into words instead of lines.
	WordLevel bool

	// If set, renderers highlight the differing parts of removed and added lines.
	Inline bool

	// Colors used by renderers, nil disables colors.
	Colors *ColorConfig
}

// ColorConfig holds the ANSI escape sequences used by renderers.
type ColorConfig struct {
	LineNumber string
	Match      string
	Delete     string
	Insert     string
	DeleteSpan string
	InsertSpan string
	Reset      string
}

// DefaultColors is the color scheme used if no custom colors are configured.
var DefaultColors = ColorConfig{
	LineNumber: "\033[2m",
	Match:      "",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
	DeleteSpan: "\033[1;97;41m",
	InsertSpan: "\033[1;97;42m",
	Reset:      "\033[0m",
}

// Default is the default configuration.
var Default = Config{
	IgnoreWhitespace: false,
	IgnoreCase:       false,
	LineNumbers:      true,
	WordLevel:        false,
	Inline:           false,
	Colors:           nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	IgnoreWhitespace Flag = 1 << iota
	IgnoreCase
	LineNumbers
	WordLevel
	Inline
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
	case IgnoreWhitespace:
		return "diffcheck.IgnoreWhitespace"
	case IgnoreCase:
		return "diffcheck.IgnoreCase"
	case LineNumbers:
		return "diffcheck.LineNumbers"
	case WordLevel:
		return "diffcheck.WordLevel"
	case Inline:
		return "render.Inline"
	case Colors:
		return "render.TerminalColors"
	default:
		panic("never reached")
	}
}
