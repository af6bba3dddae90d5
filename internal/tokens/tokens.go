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

// Package tokens prepares text for comparison: it normalizes the input and splits it into the
// tokens (lines or words) that are aligned by the diff.
package tokens

import (
	"strings"
)

// Preprocess applies the normalizations selected by ignoreCase and ignoreWhitespace to s.
//
// Case folding happens before whitespace handling. With ignoreWhitespace, every run of Unicode
// whitespace (including line breaks) becomes a single space and the result is trimmed.
func Preprocess(s string, ignoreCase, ignoreWhitespace bool) string {
	if ignoreCase {
		s = strings.ToLower(s)
	}
	if ignoreWhitespace {
		s = strings.Join(strings.Fields(s), " ")
	}
	return s
}

// Lines splits s on '\n'. The lines don't contain the newline character. An empty input has no
// lines, a trailing newline results in a last empty line.
func Lines(s string) []string {
	if len(s) == 0 {
		return nil
	}
	return strings.Split(s, "\n")
}

// Words splits s around runs of whitespace. Leading and trailing whitespace don't produce empty
// words.
func Words(s string) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	return words
}

// Splitter returns the tokenizer for the requested granularity.
func Splitter(wordLevel bool) func(string) []string {
	if wordLevel {
		return Words
	}
	return Lines
}
