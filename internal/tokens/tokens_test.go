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

package tokens

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name             string
		in               string
		ignoreCase       bool
		ignoreWhitespace bool
		want             string
	}{
		{
			name: "unchanged",
			in:   "Hello  World\n",
			want: "Hello  World\n",
		},
		{
			name:       "ignore-case",
			in:         "Hello  WORLD\n",
			ignoreCase: true,
			want:       "hello  world\n",
		},
		{
			name:             "ignore-whitespace",
			in:               "  a   b\t\tc \n d  ",
			ignoreWhitespace: true,
			want:             "a b c d",
		},
		{
			name:             "ignore-whitespace-unicode",
			in:               "a\u00a0 \u2003b",
			ignoreWhitespace: true,
			want:             "a b",
		},
		{
			name:             "ignore-whitespace-only-whitespace",
			in:               " \n\t ",
			ignoreWhitespace: true,
			want:             "",
		},
		{
			name:             "both",
			in:               "A   B\nC",
			ignoreCase:       true,
			ignoreWhitespace: true,
			want:             "a b c",
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preprocess(tt.in, tt.ignoreCase, tt.ignoreWhitespace)
			if got != tt.want {
				t.Errorf("Preprocess(%q, %v, %v) = %q, want %q", tt.in, tt.ignoreCase, tt.ignoreWhitespace, got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\nb\nc", []string{"a", "b", "c"}},
		{"a\n", []string{"a", ""}},
		{"\n", []string{"", ""}},
		{"a\r\nb", []string{"a\r", "b"}},
	}
	for _, tt := range tests {
		got := Lines(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Lines(%q) result is different [-want,+got]:\n%s", tt.in, diff)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"the quick fox", []string{"the", "quick", "fox"}},
		{"  the\tquick\n\nfox  ", []string{"the", "quick", "fox"}},
	}
	for _, tt := range tests {
		got := Words(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Words(%q) result is different [-want,+got]:\n%s", tt.in, diff)
		}
	}
}

func TestSplitter(t *testing.T) {
	const in = "a b\nc"
	if diff := cmp.Diff([]string{"a b", "c"}, Splitter(false)(in)); diff != "" {
		t.Errorf("Splitter(false) result is different [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, Splitter(true)(in)); diff != "" {
		t.Errorf("Splitter(true) result is different [-want,+got]:\n%s", diff)
	}
}
