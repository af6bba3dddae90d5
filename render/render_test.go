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

package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/render/color"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		x, y  string
		words bool
		opts  []diffcheck.Option
		want  string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:  "empty-words",
			words: true,
			want:  "",
		},
		{
			name: "simple-edit",
			x:    "a\nb\nc",
			y:    "a\nx\nc",
			want: "1  a\n2 -b\n3 +x\n4  c\n",
		},
		{
			name: "no-line-numbers",
			x:    "a\nb\nc",
			y:    "a\nx\nc",
			opts: []diffcheck.Option{diffcheck.LineNumbers(false)},
			want: " a\n-b\n+x\n c\n",
		},
		{
			name: "line-numbers-are-aligned",
			y:    "a\nb\nc\nd\ne\nf\ng\nh\ni\nj",
			want: " 1 +a\n 2 +b\n 3 +c\n 4 +d\n 5 +e\n 6 +f\n 7 +g\n 8 +h\n 9 +i\n10 +j\n",
		},
		{
			name: "colors",
			x:    "a\nb\nc",
			y:    "a\nx\nc",
			opts: []diffcheck.Option{TerminalColors()},
			want: "\033[2m1\033[0m  a\n" +
				"\033[2m2\033[0m \033[31m-b\033[0m\n" +
				"\033[2m3\033[0m \033[32m+x\033[0m\n" +
				"\033[2m4\033[0m  c\n",
		},
		{
			name: "custom-colors",
			x:    "a",
			y:    "b",
			opts: []diffcheck.Option{
				diffcheck.LineNumbers(false),
				TerminalColors(color.Deletes(35), color.Inserts(36)),
			},
			want: "\033[35m-a\033[0m\n\033[36m+b\033[0m\n",
		},
		{
			name: "inline",
			x:    "hello world\nfoo bar baz",
			y:    "hello big world\nfoo baz",
			opts: []diffcheck.Option{diffcheck.LineNumbers(false), Inline()},
			want: "-hello world\n-foo [-bar -]baz\n+hello {+big +}world\n+foo baz\n",
		},
		{
			name: "inline-leftovers",
			x:    "a",
			y:    "b\nc",
			opts: []diffcheck.Option{diffcheck.LineNumbers(false), Inline()},
			want: "-[-a-]\n+{+b+}\n+c\n",
		},
		{
			name: "inline-colors",
			x:    "hello world",
			y:    "hello big world",
			opts: []diffcheck.Option{diffcheck.LineNumbers(false), Inline(), TerminalColors()},
			want: "\033[31m-\033[0m\033[31mhello \033[0m\033[31mworld\033[0m\n" +
				"\033[32m+\033[0m\033[32mhello \033[0m\033[1;97;42mbig \033[0m\033[32mworld\033[0m\n",
		},
		{
			name:  "words",
			x:     "the quick fox",
			y:     "the slow fox",
			words: true,
			want:  "the [-quick-] {+slow+} fox\n",
		},
		{
			name:  "words-runs",
			x:     "a b c d",
			y:     "a x y d",
			words: true,
			want:  "a [-b c-] {+x y+} d\n",
		},
		{
			name:  "words-colors",
			x:     "the quick fox",
			y:     "the slow fox",
			words: true,
			opts:  []diffcheck.Option{TerminalColors()},
			want:  "the \033[1;97;41mquick\033[0m \033[1;97;42mslow\033[0m fox\n",
		},
		{
			name:  "words-ignore-line-numbers-and-inline",
			x:     "a b",
			y:     "a c",
			words: true,
			opts:  []diffcheck.Option{diffcheck.LineNumbers(true), Inline()},
			want:  "a [-b-] {+c+}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []diffcheck.Option
			if tt.words {
				opts = append(opts, diffcheck.WordLevel())
			}
			res := diffcheck.Process(tt.x, tt.y, opts...)
			got := Text(res, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Text(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestTextNotAllowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Text(...) with diffcheck.IgnoreCase did not panic")
		}
	}()
	Text(diffcheck.Process("a", "b"), diffcheck.IgnoreCase())
}

func TestSummary(t *testing.T) {
	got := Summary(diffcheck.Process("a\nb\nc", "a\nx\nc").Stats())
	want := "+1 -1 (2 modifications, 4 changes)"
	if got != want {
		t.Errorf("Summary(...) = %q, want %q", got, want)
	}
}
