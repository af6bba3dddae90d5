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

// Package benchmarks compares the line level comparison of diffcheck with other diff libraries.
package benchmarks

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	"github.com/pmezard/go-difflib/difflib"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/diff/textdiff"
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/render"
)

// Impl is a diff implementation. Diff returns a line based diff of x and y where every removed
// line starts with "-" and every added line starts with "+". Not all implementations produce a
// unified diff, but all of them are close enough to count edits.
type Impl struct {
	Name string
	Diff func(x, y string) string
}

var Impls = []Impl{
	{
		Name: "diffcheck",
		Diff: func(x, y string) string {
			return render.Text(diffcheck.Process(x, y), diffcheck.LineNumbers(false))
		},
	},
	{
		Name: "diffcheck-ignore-case",
		Diff: func(x, y string) string {
			return render.Text(diffcheck.Process(x, y, diffcheck.IgnoreCase()), diffcheck.LineNumbers(false))
		},
	},
	{
		Name: "znkr",
		Diff: func(x, y string) string {
			return textdiff.Unified(x, y, textdiff.IndentHeuristic())
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y string) string {
			return string(gointernal.Diff("x", []byte(x), "y", []byte(y)))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y string) string {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(x, y)
			diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(rx, ry, false), lines)

			var sb strings.Builder
			for _, d := range diffs {
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					writeLines(&sb, "+", d.Text)
				case diffmatchpatch.DiffDelete:
					writeLines(&sb, "-", d.Text)
				case diffmatchpatch.DiffEqual:
					writeLines(&sb, " ", d.Text)
				}
			}
			return sb.String()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y string) string {
			return godebug.Diff(x, y)
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y string) string {
			d := mb0lines{x: strings.SplitAfter(x, "\n"), y: strings.SplitAfter(y, "\n")}
			var sb strings.Builder
			a := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				for ; a < ch.A; a++ {
					writeLines(&sb, " ", d.x[a])
				}
				for i := range ch.Del {
					writeLines(&sb, "-", d.x[ch.A+i])
				}
				for i := range ch.Ins {
					writeLines(&sb, "+", d.y[ch.B+i])
				}
				a += ch.Del
			}
			for ; a < len(d.x); a++ {
				writeLines(&sb, " ", d.x[a])
			}
			return sb.String()
		},
	},
	{
		Name: "difflib",
		Diff: func(x, y string) string {
			out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(x),
				B:        difflib.SplitLines(y),
				FromFile: "x",
				ToFile:   "y",
				Context:  3,
			})
			if err != nil {
				panic(err)
			}
			return out
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y string) string {
			return udiff.Unified("x", "y", x, y)
		},
	},
}

// Lookup returns the implementation with the given name.
func Lookup(name string) (Impl, bool) {
	for _, impl := range Impls {
		if impl.Name == name {
			return impl, true
		}
	}
	return Impl{}, false
}

// writeLines writes every line of text prefixed with prefix. The last line is terminated with a
// newline even if text isn't.
func writeLines(sb *strings.Builder, prefix, text string) {
	for line := range strings.Lines(text) {
		sb.WriteString(prefix)
		sb.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			sb.WriteByte('\n')
		}
	}
}

// Edits counts the removed and added lines in the output of an implementation. Header lines of
// unified diffs are not counted.
func Edits(out string) int {
	n := 0
	for line := range strings.Lines(out) {
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			n++
		}
	}
	return n
}

type mb0lines struct {
	x []string
	y []string
}

func (d mb0lines) Equal(i, j int) bool { return d.x[i] == d.y[j] }
