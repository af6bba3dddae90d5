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

// diff runs one of the implementations used for benchmarking on two inputs.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/txtar"
	"znkr.io/diffcheck/internal/benchmarks"
)

type config struct {
	lib   string
	edits bool
	x, y  string
	txtar string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "diffcheck", "library to use for diffing")
	flag.BoolVar(&cfg.edits, "edits", false, "only print the number of edits")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.Parse()

	switch {
	case cfg.txtar != "" && flag.CommandLine.NArg() != 0:
		fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
		os.Exit(1)
	case cfg.txtar == "" && flag.CommandLine.NArg() != 2:
		fmt.Fprintf(os.Stderr, "error: usage: diff <x> <y>\n")
		os.Exit(1)
	case cfg.txtar == "":
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	lib, ok := benchmarks.Lookup(cfg.lib)
	if !ok {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	x, y, err := inputs(cfg)
	if err != nil {
		return err
	}

	out := lib.Diff(x, y)
	if cfg.edits {
		_, err = fmt.Println(benchmarks.Edits(out))
		return err
	}
	_, err = os.Stdout.WriteString(out)
	return err
}

func inputs(cfg config) (string, string, error) {
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return "", "", err
		}
		var x, y string
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				x = string(f.Data)
			case "y":
				y = string(f.Data)
			}
		}
		return x, y, nil
	}
	x, err := os.ReadFile(cfg.x)
	if err != nil {
		return "", "", err
	}
	y, err := os.ReadFile(cfg.y)
	if err != nil {
		return "", "", err
	}
	return string(x), string(y), nil
}
