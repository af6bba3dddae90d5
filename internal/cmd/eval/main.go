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

// eval validates the comparison algorithm on the history of a git repository. For every file
// changed by a commit, it compares the old and new version with a number of option variants and
// checks that the changes replay to both inputs, that line numbers are consecutive, and that the
// statistics add up.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"znkr.io/diffcheck"
	"znkr.io/diffcheck/internal/cmd/eval/internal/git"
)

type config struct {
	repo     string
	sample   int
	parallel int
	stats    string
	maxCells int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.IntVar(&cfg.maxCells, "max-cells", 1<<26, "skip files whose comparison table has more cells than this")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type note struct {
	prefix string
	msg    string
}

type change struct {
	commitID string
	filename string
	old, new string
}

type result struct {
	commitID string
	file     string
	variant  string
	N, M     int
	D        int
	duration time.Duration
}

// binary reports if s looks like the contents of a binary file.
func binary(s string) bool {
	return strings.IndexByte(s[:min(len(s), 8000)], 0) >= 0
}

// sample picks n distinct commits at random.
func sample(commitIDs []string, n int) []string {
	if n <= 0 || n >= len(commitIDs) {
		return commitIDs
	}
	picked := make(map[int]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		i := rand.IntN(len(commitIDs))
		if _, ok := picked[i]; ok {
			continue
		}
		out = append(out, commitIDs[i])
		picked[i] = struct{}{}
	}
	return out
}

func run(cfg *config) error {
	start := time.Now()
	notes := make(chan note)
	done := make(chan struct{})
	var commitsDone atomic.Int64
	var processed atomic.Int64
	var skipped atomic.Int64

	var stats *os.File
	if cfg.stats != "" {
		var err error
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer stats.Close()
	}

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %v", err)
	}

	commitIDs, err := repo.RevList()
	if err != nil {
		repo.Close()
		return fmt.Errorf("reading rev-list: %v", err)
	}
	commitIDs = sample(commitIDs, cfg.sample)
	if len(commitIDs) == 0 {
		repo.Close()
		return fmt.Errorf("no commits found in %s", cfg.repo)
	}

	// Read commits.
	changes := make(chan change)
	var changesWG sync.WaitGroup
	chunkSize := max(1, len(commitIDs)/(4*runtime.GOMAXPROCS(0)))
	for chunk := range slices.Chunk(commitIDs, chunkSize) {
		changesWG.Add(1)
		go func() {
			defer changesWG.Done()
			for _, commitID := range chunk {
				files, err := repo.Changes(commitID)
				if err != nil {
					notes <- note{prefix: commitID, msg: fmt.Sprintf("error processing commit: %v", err)}
				}
				for _, file := range files {
					original, err := repo.Blob(file.OldID)
					if err != nil {
						notes <- note{prefix: commitID + ":" + file.Name, msg: err.Error()}
						continue
					}
					modified, err := repo.Blob(file.NewID)
					if err != nil {
						notes <- note{prefix: commitID + ":" + file.Name, msg: err.Error()}
						continue
					}
					if binary(original) || binary(modified) {
						continue
					}
					changes <- change{commitID: commitID, filename: file.Name, old: original, new: modified}
				}
				commitsDone.Add(1)
			}
		}()
	}

	// Evaluate changes.
	var processWG sync.WaitGroup
	var results chan result
	if cfg.stats != "" {
		results = make(chan result)
	}
	for range cfg.parallel {
		processWG.Add(1)
		go func() {
			defer processWG.Done()
			for change := range changes {
				for _, v := range variants {
					N, M := len(v.split(change.old)), len(v.split(change.new))
					if (N+1)*(M+1) > cfg.maxCells {
						skipped.Add(1)
						continue
					}

					start := time.Now()
					res := diffcheck.Process(change.old, change.new, v.options()...)
					duration := time.Since(start)

					for _, problem := range check(v, change.old, change.new, res) {
						notes <- note{
							prefix: change.commitID + ":" + change.filename + " (" + v.name + ")",
							msg:    problem,
						}
					}
					if results != nil {
						results <- result{
							commitID: change.commitID,
							file:     change.filename,
							variant:  v.name,
							N:        N,
							M:        M,
							D:        res.Stats().Modifications,
							duration: duration,
						}
					}
				}
				processed.Add(1)
			}
		}()
	}

	// Render progress
	var ioWG sync.WaitGroup
	render := func() {
		const width = 60
		commits := commitsDone.Load()
		processed := processed.Load()
		progress := float64(commits) / float64(len(commitIDs))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var commitsPerSec, procPerSec int
		if commits > 0 {
			commitsPerSec = int((time.Duration(commits) * time.Second) / time.Since(start))
		}
		if processed > 0 {
			procPerSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Printf("\r[%-*s] % 3.1f%% (%d commits/s, %d evals/s, %d skipped) ", width, bar, 100*progress, commitsPerSec, procPerSec, skipped.Load())
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()

			case <-ticker.C:
				render()

			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()
	var statsWG sync.WaitGroup
	if results != nil {
		statsWG.Add(1)
		go func() {
			defer statsWG.Done()
			w := bufio.NewWriter(stats)
			w.WriteString("commit_id,file,variant,N,M,D,duration_ns\n")
			for result := range results {
				_, err := fmt.Fprintf(w, "%s,%s,%s,%d,%d,%d,%d\n", result.commitID, result.file, result.variant, result.N, result.M, result.D, result.duration.Nanoseconds())
				if err != nil {
					notes <- note{prefix: result.commitID + ":" + result.file, msg: fmt.Sprintf("failed to write stats: %v", err)}
				}
			}
			if err := w.Flush(); err != nil {
				notes <- note{msg: fmt.Sprintf("failed to flush stats: %v", err)}
			}
		}()
	}

	// Shutdown
	changesWG.Wait()
	close(changes)
	processWG.Wait()
	if results != nil {
		close(results)
	}
	statsWG.Wait()
	close(done)
	ioWG.Wait()

	if err := repo.Close(); err != nil {
		return fmt.Errorf("closing git repository: %v", err)
	}
	return nil
}
