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

// Package lcs computes the longest common subsequence of two token slices with the classic
// dynamic programming algorithm.
//
// Time and space complexity are O(NM) with N = len(a) and M = len(b).
package lcs

import "slices"

// table is the (N+1)x(M+1) dynamic programming table stored in a single slice. Row i and column
// j hold the length of the longest common subsequence of a[:i] and b[:j].
type table struct {
	cells []int
	width int
}

func (t *table) at(i, j int) int { return t.cells[i*t.width+j] }

func fill[T comparable](a, b []T) table {
	n, m := len(a), len(b)
	t := table{
		cells: make([]int, (n+1)*(m+1)),
		width: m + 1,
	}
	for i := 1; i <= n; i++ {
		row := t.cells[i*t.width : (i+1)*t.width]
		prev := t.cells[(i-1)*t.width : i*t.width]
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(prev[j], row[j-1])
			}
		}
	}
	return t
}

// Common returns the elements of a longest common subsequence of a and b in order.
//
// If several longest common subsequences exist, the one found by walking the table backwards from
// the end of both inputs is returned: equal elements are always taken, otherwise the walk moves
// to a[:i-1] if that keeps a strictly longer subsequence than b[:j-1] and to b[:j-1] otherwise.
func Common[T comparable](a, b []T) []T {
	t := fill(a, b)
	i, j := len(a), len(b)
	out := make([]T, 0, t.at(i, j))
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out = append(out, a[i-1])
			i--
			j--
		case t.at(i-1, j) > t.at(i, j-1):
			i--
		default:
			j--
		}
	}
	slices.Reverse(out)
	return out
}

// Length returns the length of the longest common subsequence of a and b.
func Length[T comparable](a, b []T) int {
	t := fill(a, b)
	return t.at(len(a), len(b))
}
