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

// Package render prints the result of a comparison for humans.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/internal/config"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Markers for removed and added text inside a line when colors are disabled. These are the same
// markers that git diff --word-diff=plain uses.
const (
	startDelete = "[-"
	endDelete   = "-]"
	startInsert = "{+"
	endInsert   = "+}"
)

// Text returns a human readable representation of r.
//
// For line level results, every change is printed on its own line, prefixed with " " for
// unchanged, "-" for removed, and "+" for added lines and, unless disabled with
// [diffcheck.LineNumbers], the line number of the change. For word level results, the words are
// printed in a single line with removed and added words enclosed in "[-...-]" and "{+...+}".
//
// The following options are supported: [diffcheck.LineNumbers], [Inline], [TerminalColors]
//
// If r has no changes, the output is empty.
func Text(r diffcheck.Result, opts ...diffcheck.Option) string {
	cfg := config.FromOptions(opts, config.LineNumbers|config.Inline|config.Colors)
	p := printer{colors: cfg.Colors}
	if r.WordLevel {
		p.words(r.Changes)
	} else {
		p.lines(r.Changes, cfg)
	}
	return p.b.String()
}

// Summary returns a one line summary of st.
func Summary(st diffcheck.Stats) string {
	return fmt.Sprintf("+%d -%d (%d modifications, %d changes)", st.Additions, st.Deletions, st.Modifications, st.TotalLines)
}

type printer struct {
	b      strings.Builder
	colors *config.ColorConfig // nil if colors are disabled
}

func (p *printer) paint(code, s string) {
	if p.colors == nil || code == "" || s == "" {
		p.b.WriteString(s)
		return
	}
	p.b.WriteString(code)
	p.b.WriteString(s)
	p.b.WriteString(p.colors.Reset)
}

// span writes a changed part of a line or a run of changed words.
func (p *printer) span(kind diffcheck.Kind, s string) {
	switch {
	case p.colors != nil && kind == diffcheck.Removed:
		p.paint(p.colors.DeleteSpan, s)
	case p.colors != nil && kind == diffcheck.Added:
		p.paint(p.colors.InsertSpan, s)
	case kind == diffcheck.Removed:
		p.b.WriteString(startDelete + s + endDelete)
	case kind == diffcheck.Added:
		p.b.WriteString(startInsert + s + endInsert)
	default:
		p.b.WriteString(s)
	}
}

func (p *printer) code(kind diffcheck.Kind) string {
	if p.colors == nil {
		return ""
	}
	switch kind {
	case diffcheck.Removed:
		return p.colors.Delete
	case diffcheck.Added:
		return p.colors.Insert
	default:
		return p.colors.Match
	}
}

func (p *printer) lines(changes []diffcheck.Change, cfg config.Config) {
	var spans map[int][]diffmatchpatch.Diff
	if cfg.Inline {
		spans = inlineSpans(changes)
	}
	width := len(strconv.Itoa(len(changes)))
	for i, c := range changes {
		if cfg.LineNumbers {
			if p.colors != nil {
				p.paint(p.colors.LineNumber, fmt.Sprintf("%*d", width, c.LineNumber))
			} else {
				fmt.Fprintf(&p.b, "%*d", width, c.LineNumber)
			}
			p.b.WriteByte(' ')
		}

		code := p.code(c.Kind)
		prefix := prefixMatch
		switch c.Kind {
		case diffcheck.Removed:
			prefix = prefixDelete
		case diffcheck.Added:
			prefix = prefixInsert
		}

		diffs, ok := spans[i]
		if !ok {
			p.paint(code, prefix+c.Value)
			p.b.WriteByte('\n')
			continue
		}
		p.paint(code, prefix)
		for _, d := range diffs {
			switch {
			case d.Type == diffmatchpatch.DiffEqual:
				p.paint(code, d.Text)
			case d.Type == diffmatchpatch.DiffDelete && c.Kind == diffcheck.Removed:
				p.span(diffcheck.Removed, d.Text)
			case d.Type == diffmatchpatch.DiffInsert && c.Kind == diffcheck.Added:
				p.span(diffcheck.Added, d.Text)
			}
		}
		p.b.WriteByte('\n')
	}
}

// inlineSpans pairs up the removed and added lines of every block of consecutive changes and
// computes the character level differences for each pair. The k-th removed line of a block is
// paired with the k-th added line, leftovers are printed without spans. The result maps the index
// of each paired change to the differences of its pair.
func inlineSpans(changes []diffcheck.Change) map[int][]diffmatchpatch.Diff {
	spans := make(map[int][]diffmatchpatch.Diff)
	dmp := diffmatchpatch.New()
	var removed, added []int
	flush := func() {
		for k := range min(len(removed), len(added)) {
			r, a := removed[k], added[k]
			diffs := dmp.DiffMain(changes[r].Value, changes[a].Value, false)
			diffs = dmp.DiffCleanupSemantic(diffs)
			spans[r], spans[a] = diffs, diffs
		}
		removed, added = removed[:0], added[:0]
	}
	for i, c := range changes {
		switch c.Kind {
		case diffcheck.Removed:
			removed = append(removed, i)
		case diffcheck.Added:
			added = append(added, i)
		default:
			flush()
		}
	}
	flush()
	return spans
}

func (p *printer) words(changes []diffcheck.Change) {
	if len(changes) == 0 {
		return
	}
	for i := 0; i < len(changes); {
		kind := changes[i].Kind
		var run strings.Builder
		for ; i < len(changes) && changes[i].Kind == kind; i++ {
			run.WriteString(changes[i].Value)
		}
		text := strings.TrimSuffix(run.String(), " ")
		if kind == diffcheck.Unchanged {
			p.paint(p.code(kind), text)
		} else {
			p.span(kind, text)
		}
		if i < len(changes) {
			p.b.WriteByte(' ')
		}
	}
	p.b.WriteByte('\n')
}
