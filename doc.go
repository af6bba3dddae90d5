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

// Package diffcheck compares two texts line by line or word by word and classifies every line or
// word as unchanged, removed, or added.
//
// The main functions are [Process], which computes the changes for two texts, and
// [ComputeStats], which summarizes them. Comparison can ignore case ([IgnoreCase]) and whitespace
// differences ([IgnoreWhitespace]) and can work on words instead of lines ([WordLevel]).
//
// Performance: The alignment is based on a longest common subsequence computed by dynamic
// programming. Time and space complexity are O(NM) where N and M are the number of tokens in the
// two inputs. Callers comparing large inputs interactively should debounce or cache calls.
//
// Note: For printing a result, please see [znkr.io/diffcheck/render].
//
// [znkr.io/diffcheck/render]: https://pkg.go.dev/znkr.io/diffcheck/render
package diffcheck
