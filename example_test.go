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

package diffcheck_test

import (
	"fmt"

	"znkr.io/diffcheck"
)

func ExampleProcess() {
	x := "a\nb\nc"
	y := "a\nx\nc"

	res := diffcheck.Process(x, y)
	for _, c := range res.Changes {
		switch c.Kind {
		case diffcheck.Unchanged:
			fmt.Printf("%d  %s\n", c.LineNumber, c.Value)
		case diffcheck.Removed:
			fmt.Printf("%d -%s\n", c.LineNumber, c.Value)
		case diffcheck.Added:
			fmt.Printf("%d +%s\n", c.LineNumber, c.Value)
		default:
			panic("never reached")
		}
	}
	// Output:
	// 1  a
	// 2 -b
	// 3 +x
	// 4  c
}

func ExampleWordLevel() {
	res := diffcheck.Process("the quick fox", "the slow fox", diffcheck.WordLevel())
	for _, c := range res.Changes {
		fmt.Printf("%-9s %q\n", c.Kind, c.Value)
	}
	// Output:
	// unchanged "the "
	// removed   "quick "
	// added     "slow "
	// unchanged "fox "
}

func ExampleIgnoreCase() {
	res := diffcheck.Process("Hello", "hello", diffcheck.IgnoreCase())
	fmt.Println(res.Changes)
	// Output:
	// [{unchanged hello 1}]
}

func ExampleComputeStats() {
	res := diffcheck.Process("a\nb\nc", "a\nx\nc")
	fmt.Printf("%+v\n", diffcheck.ComputeStats(res.Changes))
	// Output:
	// {Additions:1 Deletions:1 Modifications:2 TotalLines:4}
}
