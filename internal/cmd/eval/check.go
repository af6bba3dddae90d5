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

	"znkr.io/diffcheck"
	"znkr.io/diffcheck/internal/tokens"
)

// variant is a combination of options to evaluate.
type variant struct {
	name             string
	ignoreCase       bool
	ignoreWhitespace bool
	wordLevel        bool
}

var variants = []variant{
	{name: "default"},
	{name: "ignore-case", ignoreCase: true},
	{name: "ignore-whitespace", ignoreWhitespace: true},
	{name: "words", wordLevel: true},
	{name: "words-ignore-case", wordLevel: true, ignoreCase: true},
}

func (v variant) options() []diffcheck.Option {
	var opts []diffcheck.Option
	if v.ignoreCase {
		opts = append(opts, diffcheck.IgnoreCase())
	}
	if v.ignoreWhitespace {
		opts = append(opts, diffcheck.IgnoreWhitespace())
	}
	if v.wordLevel {
		opts = append(opts, diffcheck.WordLevel())
	}
	return opts
}

// split returns the tokens Process compares for s.
func (v variant) split(s string) []string {
	return tokens.Splitter(v.wordLevel)(tokens.Preprocess(s, v.ignoreCase, v.ignoreWhitespace))
}

func (v variant) join(toks []string) string {
	if v.wordLevel {
		return strings.Join(toks, " ")
	}
	return strings.Join(toks, "\n")
}

// check validates res, the result of comparing original and modified with v, and returns a
// description of every violated property.
func check(v variant, original, modified string, res diffcheck.Result) []string {
	var problems []string
	x, y := v.split(original), v.split(modified)

	if got, want := res.OriginalText(), v.join(x); got != want {
		problems = append(problems, fmt.Sprintf("original is different after replaying changes. got:\n%s\nwant:\n%s", got, want))
	}
	if got, want := res.ModifiedText(), v.join(y); got != want {
		problems = append(problems, fmt.Sprintf("modified is different after replaying changes. got:\n%s\nwant:\n%s", got, want))
	}

	var unchanged int
	for i, c := range res.Changes {
		if c.Kind == diffcheck.Unchanged {
			unchanged++
		}
		switch {
		case v.wordLevel && c.LineNumber != 0:
			problems = append(problems, fmt.Sprintf("change %d has line number %d in word mode", i, c.LineNumber))
		case !v.wordLevel && c.LineNumber != i+1:
			problems = append(problems, fmt.Sprintf("change %d has line number %d, want %d", i, c.LineNumber, i+1))
		}
	}

	st := res.Stats()
	if st.Modifications != st.Additions+st.Deletions || st.TotalLines != len(res.Changes) {
		problems = append(problems, fmt.Sprintf("inconsistent stats: %+v for %d changes", st, len(res.Changes)))
	}
	if unchanged+st.Deletions != len(x) || unchanged+st.Additions != len(y) {
		problems = append(problems, fmt.Sprintf("stats %+v don't add up to %d original and %d modified tokens", st, len(x), len(y)))
	}
	if v.join(x) == v.join(y) && len(x) == len(y) && st.Modifications != 0 {
		problems = append(problems, fmt.Sprintf("identical inputs have %d modifications", st.Modifications))
	}
	return problems
}
