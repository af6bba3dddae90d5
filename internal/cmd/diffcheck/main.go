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

// diffcheck compares two text files line by line or word by word.
//
// Usage:
//
//	diffcheck [flags] original modified
//
// One of the files may be "-" to read it from stdin. Defaults for all flags can be stored in a
// TOML file passed with -config, for example:
//
//	ignore-case = true
//	inline = true
//	color = "always"
//
//	[colors]
//	deletes = [1, 31]
//
// The exit status is 0 if the inputs are the same, 1 if they differ, and 2 if an error occurred.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/render"
)

func main() {
	differ, err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if differ {
		os.Exit(1)
	}
}

// run compares the files named in args and writes the result to stdout. It returns true if the
// files differ.
func run(args []string, stdin io.Reader, stdout io.Writer) (bool, error) {
	cfg, files, err := parseArgs(args)
	if err != nil {
		return false, err
	}

	original, err := readInput(files[0], stdin)
	if err != nil {
		return false, err
	}
	modified, err := readInput(files[1], stdin)
	if err != nil {
		return false, err
	}

	res := diffcheck.Process(original, modified, cfg.processOptions()...)
	st := res.Stats()

	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		out := struct {
			diffcheck.Result
			Stats diffcheck.Stats `json:"stats"`
		}{res, st}
		if err := enc.Encode(out); err != nil {
			return false, fmt.Errorf("writing json: %v", err)
		}
		return st.Modifications > 0, nil
	}

	if _, err := io.WriteString(stdout, render.Text(res, cfg.renderOptions(isTerminal(stdout))...)); err != nil {
		return false, fmt.Errorf("writing output: %v", err)
	}
	if cfg.Stats {
		if _, err := fmt.Fprintln(stdout, render.Summary(st)); err != nil {
			return false, fmt.Errorf("writing output: %v", err)
		}
	}
	return st.Modifications > 0, nil
}

// parseArgs reads the configuration file, if any, and applies the flags in args on top of it.
func parseArgs(args []string) (config, []string, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("diffcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFile := fs.String("config", "", "TOML file with default settings")
	ignoreCase := fs.Bool("i", cfg.IgnoreCase, "ignore case differences")
	ignoreWhitespace := fs.Bool("w", cfg.IgnoreWhitespace, "ignore whitespace differences")
	words := fs.Bool("words", cfg.WordLevel, "compare words instead of lines")
	lineNumbers := fs.Bool("n", cfg.LineNumbers, "print line numbers")
	inline := fs.Bool("inline", cfg.Inline, "highlight changes within lines")
	colorMode := fs.String("color", cfg.Color, "use colors: auto, always, or never")
	jsonOut := fs.Bool("json", cfg.JSON, "print the result as JSON")
	stats := fs.Bool("stats", cfg.Stats, "print a summary after the diff")
	if err := fs.Parse(args); err != nil {
		return config{}, nil, err
	}

	if *configFile != "" {
		if err := loadConfig(&cfg, *configFile); err != nil {
			return config{}, nil, err
		}
	}

	// Only flags given on the command line override the configuration file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.IgnoreCase = *ignoreCase
		case "w":
			cfg.IgnoreWhitespace = *ignoreWhitespace
		case "words":
			cfg.WordLevel = *words
		case "n":
			cfg.LineNumbers = *lineNumbers
		case "inline":
			cfg.Inline = *inline
		case "color":
			cfg.Color = *colorMode
		case "json":
			cfg.JSON = *jsonOut
		case "stats":
			cfg.Stats = *stats
		}
	})
	if err := cfg.validate(); err != nil {
		return config{}, nil, err
	}

	files := fs.Args()
	if len(files) != 2 {
		return config{}, nil, fmt.Errorf("expected 2 files, got %d: %v", len(files), files)
	}
	if files[0] == "-" && files[1] == "-" {
		return config{}, nil, errors.New("only one input can be read from stdin")
	}
	return cfg, files, nil
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %v", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %v", name, err)
	}
	return string(b), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
