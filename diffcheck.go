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

import (
	"fmt"
	"strings"

	"znkr.io/diffcheck/internal/config"
	"znkr.io/diffcheck/internal/lcs"
	"znkr.io/diffcheck/internal/tokens"
)

// Kind describes how a line or word changed.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind -linecomment
type Kind int

const (
	Unchanged Kind = iota // unchanged
	Removed               // removed
	Added                 // added
)

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if k < Unchanged || k > Added {
		return nil, fmt.Errorf("invalid kind: %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	for c := Unchanged; c <= Added; c++ {
		if string(text) == c.String() {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("invalid kind: %q", text)
}

// Change describes a single line or word of a comparison.
//
//   - In line mode, Value is the line without the line terminator and LineNumber is the 1-based
//     position of the change in the list of changes.
//   - In word mode, Value is the word followed by a single space and LineNumber is unset (zero).
type Change struct {
	Kind       Kind   `json:"type"`
	Value      string `json:"value"`
	LineNumber int    `json:"lineNumber,omitempty"`
}

// Result is the outcome of comparing two texts.
type Result struct {
	Original  string   `json:"original"` // The original input, unmodified.
	Modified  string   `json:"modified"` // The modified input, unmodified.
	Changes   []Change `json:"diffs"`    // Every token of both inputs, in order.
	WordLevel bool     `json:"wordLevel"`
}

// Stats summarizes the changes of a comparison.
type Stats struct {
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"` // Additions + Deletions, replacements are not paired.
	TotalLines    int `json:"totalLines"`    // Number of changes, including unchanged ones.
}

// Process compares original and modified and returns the changes necessary to convert one into
// the other.
//
// Both inputs are first normalized by [IgnoreCase] and [IgnoreWhitespace] and then split into
// lines or, with [WordLevel], words. An empty input has no lines. If original and modified are
// identical, every change is [Unchanged].
//
// The following options are supported: [IgnoreWhitespace], [IgnoreCase], [WordLevel],
// [LineNumbers]
//
// Changes are derived from the values of a longest common subsequence, not from their positions:
// a token that differs from its counterpart is removed only if no token with the same value is
// part of the common subsequence. For inputs with many repeated lines this can produce a diff
// that aligns differently from other diff tools.
func Process(original, modified string, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace|config.IgnoreCase|config.LineNumbers|config.WordLevel)

	split := tokens.Splitter(cfg.WordLevel)
	x := split(tokens.Preprocess(original, cfg.IgnoreCase, cfg.IgnoreWhitespace))
	y := split(tokens.Preprocess(modified, cfg.IgnoreCase, cfg.IgnoreWhitespace))

	return Result{
		Original:  original,
		Modified:  modified,
		Changes:   changes(x, y, cfg.WordLevel),
		WordLevel: cfg.WordLevel,
	}
}

func changes(x, y []string, wordLevel bool) []Change {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}

	common := lcs.Common(x, y)
	inCommon := make(map[string]struct{}, len(common))
	for _, e := range common {
		inCommon[e] = struct{}{}
	}

	out := make([]Change, 0, len(x)+len(y)-len(common))
	emit := func(kind Kind, value string) {
		c := Change{Kind: kind, Value: value}
		if wordLevel {
			c.Value += " "
		} else {
			c.LineNumber = len(out) + 1
		}
		out = append(out, c)
	}

	s, t := 0, 0
	for s < len(x) || t < len(y) {
		switch {
		case s < len(x) && t < len(y):
			if x[s] == y[t] {
				emit(Unchanged, x[s])
				s++
				t++
			} else if _, ok := inCommon[x[s]]; !ok {
				emit(Removed, x[s])
				s++
			} else {
				emit(Added, y[t])
				t++
			}
		case s < len(x):
			emit(Removed, x[s])
			s++
		default:
			emit(Added, y[t])
			t++
		}
	}
	return out
}

// ComputeStats counts the additions and deletions in changes.
func ComputeStats(changes []Change) Stats {
	var st Stats
	for _, c := range changes {
		switch c.Kind {
		case Added:
			st.Additions++
		case Removed:
			st.Deletions++
		}
	}
	st.Modifications = st.Additions + st.Deletions
	st.TotalLines = len(changes)
	return st
}

// Stats returns the statistics for the changes in r.
func (r Result) Stats() Stats { return ComputeStats(r.Changes) }

// OriginalText reassembles the normalized original input from the unchanged and removed changes.
//
// In line mode, the lines are joined with '\n'. In word mode, the words are joined with a single
// space.
func (r Result) OriginalText() string { return r.replay(Removed) }

// ModifiedText reassembles the normalized modified input from the unchanged and added changes.
//
// In line mode, the lines are joined with '\n'. In word mode, the words are joined with a single
// space.
func (r Result) ModifiedText() string { return r.replay(Added) }

func (r Result) replay(side Kind) string {
	var sb strings.Builder
	first := true
	for _, c := range r.Changes {
		if c.Kind != Unchanged && c.Kind != side {
			continue
		}
		if r.WordLevel {
			sb.WriteString(c.Value)
			continue
		}
		if !first {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.Value)
		first = false
	}
	if r.WordLevel {
		return strings.TrimSuffix(sb.String(), " ")
	}
	return sb.String()
}
