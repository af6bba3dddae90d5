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
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/render"
	"znkr.io/diffcheck/render/color"
)

// config is the configuration of a single run. It can be read from a TOML file, flags override
// the values from the file.
type config struct {
	IgnoreCase       bool   `toml:"ignore-case"`
	IgnoreWhitespace bool   `toml:"ignore-whitespace"`
	WordLevel        bool   `toml:"word-level"`
	LineNumbers      bool   `toml:"line-numbers"`
	Inline           bool   `toml:"inline"`
	Color            string `toml:"color"` // auto, always, or never
	JSON             bool   `toml:"json"`
	Stats            bool   `toml:"stats"`
	Colors           colors `toml:"colors"`
}

// colors holds SGR parameters for the terminal colors, unset entries use the default colors.
type colors struct {
	LineNumbers   []int `toml:"line-numbers"`
	Matches       []int `toml:"matches"`
	Deletes       []int `toml:"deletes"`
	Inserts       []int `toml:"inserts"`
	DeletedSpans  []int `toml:"deleted-spans"`
	InsertedSpans []int `toml:"inserted-spans"`
}

func defaultConfig() config {
	return config{
		LineNumbers: true,
		Color:       "auto",
	}
}

// loadConfig reads the TOML file at path into cfg. Keys that don't correspond to a configuration
// entry are reported as an error.
func loadConfig(cfg *config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("reading config file: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg.validate()
}

func (cfg *config) validate() error {
	switch cfg.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color mode %q, must be one of auto, always, never", cfg.Color)
	}
}

// processOptions returns the options for diffcheck.Process.
func (cfg *config) processOptions() []diffcheck.Option {
	var opts []diffcheck.Option
	if cfg.IgnoreCase {
		opts = append(opts, diffcheck.IgnoreCase())
	}
	if cfg.IgnoreWhitespace {
		opts = append(opts, diffcheck.IgnoreWhitespace())
	}
	if cfg.WordLevel {
		opts = append(opts, diffcheck.WordLevel())
	}
	return opts
}

// renderOptions returns the options for render.Text. isTerminal reports if the output is written
// to a terminal, it's used to resolve the "auto" color mode.
func (cfg *config) renderOptions(isTerminal bool) []diffcheck.Option {
	opts := []diffcheck.Option{diffcheck.LineNumbers(cfg.LineNumbers)}
	if cfg.Inline && !cfg.WordLevel {
		opts = append(opts, render.Inline())
	}
	if cfg.Color == "always" || cfg.Color == "auto" && isTerminal {
		opts = append(opts, render.TerminalColors(cfg.Colors.options()...))
	}
	return opts
}

func (c colors) options() []color.Option {
	var opts []color.Option
	add := func(params []int, opt func(...int) color.Option) {
		if len(params) > 0 {
			opts = append(opts, opt(params...))
		}
	}
	add(c.LineNumbers, color.LineNumbers)
	add(c.Matches, color.Matches)
	add(c.Deletes, color.Deletes)
	add(c.Inserts, color.Inserts)
	add(c.DeletedSpans, color.DeletedSpans)
	add(c.InsertedSpans, color.InsertedSpans)
	return opts
}
